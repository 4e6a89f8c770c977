package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/runoshun/vassist/internal/app"
	"github.com/runoshun/vassist/internal/testutil"
)

// cliFixture holds the doubles behind a root command.
type cliFixture struct {
	speaker  *testutil.MockSpeaker
	file     *testutil.MockTaskFile
	listener *testutil.MockListener
	loader   *testutil.MockConfigLoader
	manager  *testutil.MockConfigManager
	opts     app.Options
}

func newCLIFixture(lines ...string) *cliFixture {
	return &cliFixture{
		speaker:  &testutil.MockSpeaker{},
		file:     testutil.NewMockTaskFile(lines...),
		listener: testutil.NewMockListener(),
		loader:   testutil.NewMockConfigLoader(),
		manager:  testutil.NewMockConfigManager(),
	}
}

func (f *cliFixture) factory(opts app.Options) (*app.Container, error) {
	f.opts = opts
	return app.NewWithDeps(app.Container{
		Speaker:       f.speaker,
		Listener:      f.listener,
		TaskFile:      f.file,
		Browser:       &testutil.MockBrowser{},
		Launcher:      &testutil.MockLauncher{Present: map[string]bool{}},
		Weather:       &testutil.MockWeatherProvider{},
		News:          &testutil.MockNewsProvider{},
		Encyclopedia:  testutil.NewMockEncyclopedia(),
		ConfigLoader:  f.loader,
		ConfigManager: f.manager,
		AppConfig:     f.loader.Config,
	}), nil
}

// run executes the root command and returns stdout and stderr.
func (f *cliFixture) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return f.runContext(t, context.Background(), args...)
}

func (f *cliFixture) runContext(t *testing.T, ctx context.Context, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCommand(f.factory, "test-version")
	root.SetArgs(args)
	root.SetIn(&bytes.Buffer{})
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}
