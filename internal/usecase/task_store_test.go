package usecase

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/runoshun/vassist/internal/domain"
	"github.com/runoshun/vassist/internal/infra/taskfile"
	"github.com/runoshun/vassist/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskStore_Load(t *testing.T) {
	file := testutil.NewMockTaskFile("buy milk", "", "  call mom  ", "buy milk")
	store := NewTaskStore(file, &testutil.MockSpeaker{}, nil)

	tasks := store.Load()

	assert.Equal(t, []string{"buy milk", "call mom", "buy milk"}, domain.TaskTexts(tasks))
}

func TestTaskStore_Load_MissingFile(t *testing.T) {
	store := NewTaskStore(testutil.NewMockTaskFile(), &testutil.MockSpeaker{}, nil)

	assert.Empty(t, store.Load())
}

func TestTaskStore_Load_ReadError(t *testing.T) {
	file := testutil.NewMockTaskFile("stale")
	file.LoadErr = errors.New("permission denied")
	speaker := &testutil.MockSpeaker{}
	store := NewTaskStore(file, speaker, nil)

	tasks := store.Load()

	assert.Empty(t, tasks)
	assert.Empty(t, speaker.Spoken, "load failures are logged, not spoken")
}

func TestTaskStore_Add(t *testing.T) {
	file := testutil.NewMockTaskFile()
	speaker := &testutil.MockSpeaker{}
	store := NewTaskStore(file, speaker, nil)
	store.Load()

	store.Add("  buy milk ")

	assert.Equal(t, []string{"buy milk"}, domain.TaskTexts(store.Tasks()))
	assert.Equal(t, []string{"buy milk"}, file.Lines)
	assert.Equal(t, []string{"Task added: buy milk"}, speaker.Spoken)
}

func TestTaskStore_Add_Empty(t *testing.T) {
	file := testutil.NewMockTaskFile()
	speaker := &testutil.MockSpeaker{}
	store := NewTaskStore(file, speaker, nil)

	store.Add("   ")

	assert.Zero(t, store.Len())
	assert.Zero(t, file.Saves)
	assert.Equal(t, []string{msgTaskPrompt}, speaker.Spoken)
}

func TestTaskStore_Add_SaveFailureKeepsMemory(t *testing.T) {
	file := testutil.NewMockTaskFile("first")
	speaker := &testutil.MockSpeaker{}
	store := NewTaskStore(file, speaker, nil)
	store.Load()
	file.SaveErr = errors.New("disk full")

	store.Add("second")

	assert.Equal(t, []string{"first", "second"}, domain.TaskTexts(store.Tasks()))
	assert.Equal(t, []string{"first"}, file.Lines)
	assert.Equal(t, []string{msgTaskSaveError, "Task added: second"}, speaker.Spoken)
}

func TestTaskStore_Save_ReturnsError(t *testing.T) {
	file := testutil.NewMockTaskFile()
	file.SaveErr = errors.New("read-only file system")
	store := NewTaskStore(file, &testutil.MockSpeaker{}, nil)

	err := store.Save()

	assert.ErrorIs(t, err, file.SaveErr)
}

func TestTaskStore_Summarize(t *testing.T) {
	store := NewTaskStore(testutil.NewMockTaskFile("buy milk", "call mom"), &testutil.MockSpeaker{}, nil)
	assert.Equal(t, msgTasksEmpty, store.Summarize())

	store.Load()
	assert.Equal(t,
		"Here are your current to-do items: Number 1: buy milk. Number 2: call mom.",
		store.Summarize())
}

func TestTaskStore_Clear_Twice(t *testing.T) {
	file := testutil.NewMockTaskFile("a", "b")
	speaker := &testutil.MockSpeaker{}
	store := NewTaskStore(file, speaker, nil)
	store.Load()

	store.Clear()
	assert.Empty(t, store.Tasks())
	assert.Empty(t, file.Lines)

	store.Clear()
	assert.Empty(t, store.Tasks())
	assert.Empty(t, file.Lines)
	assert.Equal(t, 2, speaker.Count(msgTasksCleared))
}

func TestTaskStore_Clear_SaveFailure(t *testing.T) {
	file := testutil.NewMockTaskFile("a")
	speaker := &testutil.MockSpeaker{}
	store := NewTaskStore(file, speaker, nil)
	store.Load()
	file.SaveErr = errors.New("disk full")

	store.Clear()

	assert.Empty(t, store.Tasks())
	assert.Equal(t, []string{msgTaskSaveError, msgTasksCleared}, speaker.Spoken)
}

func TestTaskStore_RoundTripWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.DefaultTasksFileName)
	speaker := &testutil.MockSpeaker{}

	store := NewTaskStore(taskfile.New(path), speaker, nil)
	store.Load()
	store.Add("buy milk")
	store.Add("call mom")
	store.Add("buy milk")

	reloaded := NewTaskStore(taskfile.New(path), speaker, nil)
	first := reloaded.Load()
	require.NoError(t, reloaded.Save())
	second := reloaded.Load()

	if diff := cmp.Diff(store.Tasks(), first); diff != "" {
		t.Errorf("reload mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("save(load()) mismatch (-want +got):\n%s", diff)
	}
}
