package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{name: "fits", text: "Good Evening!", width: 20, want: []string{"Good Evening!"}},
		{name: "breaks on spaces", text: "Headline number 1: rain expected", width: 16,
			want: []string{"Headline number", "1: rain expected"}},
		{name: "long word kept whole", text: "see https://www.youtube.com now", width: 10,
			want: []string{"see", "https://www.youtube.com", "now"}},
		{name: "collapses runs of spaces", text: "a   b", width: 10, want: []string{"a b"}},
		{name: "empty", text: "", width: 10, want: []string{""}},
		{name: "no width", text: "a b", width: 0, want: []string{"a b"}},
		{name: "wide runes", text: "東京 天気", width: 4, want: []string{"東京", "天気"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrap(tt.text, tt.width))
		})
	}
}
