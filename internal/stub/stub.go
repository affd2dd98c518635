// Package stub locates the task stubs that generated task files start from.
//
// A stub for type "basic" is the file src/Stubs/BasicTask.php below the
// project root. Stubs shipped with taskgen are embedded and used when the
// project does not provide its own.
package stub

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/klauern/taskgen/internal/util"
)

// ErrTemplateNotFound is returned when no readable stub exists for a type.
var ErrTemplateNotFound = errors.New("task stub not found")

const (
	// Dir is the stub directory relative to the project root.
	Dir = "src/Stubs"
	// FileSuffix is appended to the capitalized type to form the stub file name.
	FileSuffix = "Task.php"
	// BuiltinSource is reported as the source of embedded stubs.
	BuiltinSource = "builtin"
)

// Placeholder tokens a stub is expected to contain.
const (
	TokenFrequency   = "DummyFrequency"
	TokenConstraint  = "DummyConstraint"
	TokenCommand     = "DummyCommand"
	TokenPath        = "DummyPath"
	TokenDescription = "DummyDescription"
)

// Tokens lists every placeholder token in substitution order.
var Tokens = []string{
	TokenFrequency,
	TokenConstraint,
	TokenCommand,
	TokenPath,
	TokenDescription,
}

//go:embed stubs/*.php
var builtinStubs embed.FS

// Template is the raw text of a stub.
type Template struct {
	Type    string
	Source  string
	Content string
}

// MissingTokens returns the placeholder tokens that do not occur in the stub.
func (t *Template) MissingTokens() []string {
	var missing []string
	for _, token := range Tokens {
		if !strings.Contains(t.Content, token) {
			missing = append(missing, token)
		}
	}
	return missing
}

// Store loads stubs from a project root, falling back to the embedded ones.
type Store struct {
	projectRoot string
	builtin     fs.FS
}

// New creates a store rooted at projectRoot.
func New(projectRoot string) *Store {
	return &Store{
		projectRoot: projectRoot,
		builtin:     builtinStubs,
	}
}

// FileName returns the stub file name for a task type: the type is
// lower-cased, only its first letter upper-cased and FileSuffix appended.
func FileName(typ string) string {
	lower := strings.ToLower(strings.TrimSpace(typ))
	_, size := utf8.DecodeRuneInString(lower)
	return cases.Upper(language.Und).String(lower[:size]) + lower[size:] + FileSuffix
}

// Path returns where the project stub for typ is expected on disk.
func (s *Store) Path(typ string) (string, error) {
	return util.BuildPath(s.projectRoot, Dir, FileName(typ))
}

// Load returns the stub for the given task type.
func (s *Store) Load(typ string) (*Template, error) {
	name := FileName(typ)
	if name == FileSuffix {
		return nil, fmt.Errorf("%w: empty task type", ErrTemplateNotFound)
	}

	stubPath, err := s.Path(typ)
	if err != nil {
		return nil, err
	}

	// #nosec G304 - stubPath is derived from the configured project root
	data, err := os.ReadFile(stubPath)
	switch {
	case err == nil:
		return &Template{Type: typ, Source: stubPath, Content: string(data)}, nil
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %s: %w", ErrTemplateNotFound, stubPath, err)
	}

	data, err = fs.ReadFile(s.builtin, path.Join("stubs", name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, stubPath)
	}

	return &Template{Type: typ, Source: BuiltinSource, Content: string(data)}, nil
}

// Types returns the task types that have an embedded stub.
func (s *Store) Types() []string {
	entries, err := fs.ReadDir(s.builtin, "stubs")
	if err != nil {
		return nil
	}

	types := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, FileSuffix) {
			continue
		}
		types = append(types, strings.ToLower(strings.TrimSuffix(name, FileSuffix)))
	}
	sort.Strings(types)
	return types
}
