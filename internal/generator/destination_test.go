package generator

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klauern/taskgen/internal/util"
)

func answer(s string) PromptFunc {
	return func(string) (string, error) { return s, nil }
}

func TestResolveDestination_EmptyAnswerUsesDefault(t *testing.T) {
	def := t.TempDir()

	for name, prompt := range map[string]PromptFunc{
		"empty":      answer(""),
		"whitespace": answer("  \n"),
		"nil prompt": nil,
	} {
		t.Run(name, func(t *testing.T) {
			got, err := ResolveDestination(def, prompt)
			require.NoError(t, err)
			assert.Equal(t, def, got)
		})
	}
}

func TestResolveDestination_AnswerWins(t *testing.T) {
	def := t.TempDir()
	other := t.TempDir()

	got, err := ResolveDestination(def, answer(other))
	require.NoError(t, err)
	assert.Equal(t, other, got)
}

func TestResolveDestination_AsksQuestion(t *testing.T) {
	var asked string
	prompt := func(q string) (string, error) {
		asked = q
		return "", nil
	}

	_, err := ResolveDestination(t.TempDir(), prompt)
	require.NoError(t, err)
	assert.Equal(t, DestinationQuestion, asked)
}

func TestResolveDestination_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "tasks")

	got, err := ResolveDestination("unused", answer(dir))
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestResolveDestination_ExistingDirectoryIsNoop(t *testing.T) {
	dir := t.TempDir()
	util.WriteFile(t, filepath.Join(dir, "keep.txt"), "keep")

	_, err := ResolveDestination(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, "keep", util.ReadFile(t, filepath.Join(dir, "keep.txt")))
}

func TestResolveDestination_Errors(t *testing.T) {
	file := filepath.Join(t.TempDir(), "taken")
	util.WriteFile(t, file, "not a directory")

	tests := map[string]struct {
		def    string
		prompt PromptFunc
	}{
		"path is a file":        {def: file},
		"parent is a file":      {def: filepath.Join(file, "sub")},
		"no directory anywhere": {def: "", prompt: answer("")},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ResolveDestination(tt.def, tt.prompt)
			if !errors.Is(err, ErrDirectoryCreation) {
				t.Errorf("ResolveDestination() error = %v, want %v", err, ErrDirectoryCreation)
			}
		})
	}
}

func TestResolveDestination_PromptError(t *testing.T) {
	boom := errors.New("terminal gone")
	prompt := func(string) (string, error) { return "", boom }

	_, err := ResolveDestination(t.TempDir(), prompt)
	assert.ErrorIs(t, err, boom)
}
