package generator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// DestinationQuestion is asked before the destination directory is chosen.
const DestinationQuestion = "Where do you want to save the file? (Press enter for the current directory)"

// DirPerm is the mode used for destination directories taskgen creates.
const DirPerm fs.FileMode = 0o744

// PromptFunc asks the operator a question and returns the answer. An empty
// answer, including end of input, means "use the default".
type PromptFunc func(question string) (string, error)

// ResolveDestination asks where to save the file and makes sure the chosen
// directory exists. A nil prompt or an empty answer selects def.
func ResolveDestination(def string, prompt PromptFunc) (string, error) {
	dir := def
	if prompt != nil {
		answer, err := prompt(DestinationQuestion)
		if err != nil {
			return "", fmt.Errorf("failed to read destination: %w", err)
		}
		if answer = strings.TrimSpace(answer); answer != "" {
			dir = answer
		}
	}

	if err := ensureDir(dir); err != nil {
		return "", err
	}
	return dir, nil
}

func ensureDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("%w: no directory given", ErrDirectoryCreation)
	}

	info, err := os.Stat(dir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return fmt.Errorf("%w: %s is not a directory", ErrDirectoryCreation, dir)
		}
		return nil
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s: %w", ErrDirectoryCreation, dir, err)
	}

	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDirectoryCreation, dir, err)
	}
	return nil
}
