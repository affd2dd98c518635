// Package generator turns a task stub into a task file.
//
// A run moves through a fixed sequence of states: the stub is loaded,
// its placeholder tokens are substituted, the destination is resolved and
// the file is written. Any error ends the run in StateFailed and is returned
// to the caller unchanged apart from added context.
package generator

import (
	"context"
	"fmt"
	"os"

	"github.com/klauern/taskgen/internal/logging"
	"github.com/klauern/taskgen/internal/stub"
	"github.com/klauern/taskgen/internal/util"
)

// State is a step of a generation run.
type State int

const (
	StateStart State = iota
	StateTemplateLoaded
	StateSubstituted
	StateDestinationResolved
	StateWritten
	StateSuccess
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateTemplateLoaded:
		return "template-loaded"
	case StateSubstituted:
		return "substituted"
	case StateDestinationResolved:
		return "destination-resolved"
	case StateWritten:
		return "written"
	case StateSuccess:
		return "success"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// FilePerm is the mode of written task files.
const FilePerm os.FileMode = 0o644

// TemplateLoader returns the stub for a task type.
type TemplateLoader interface {
	Load(typ string) (*stub.Template, error)
}

// Options configures a Generator.
type Options struct {
	// SourcePath is the directory used when the prompt gives no answer.
	SourcePath string
	// Suffix is appended to the task name to form the file name.
	Suffix string
	// Prompt asks for the destination directory. Nil means SourcePath is used.
	Prompt PromptFunc
	// DryRun stops after substitution without touching the filesystem.
	DryRun bool
}

// Output is the generated file ready to be persisted.
type Output struct {
	Dir      string
	Filename string
	Content  string
}

// Path returns the full path of the output file.
func (o Output) Path() (string, error) {
	return util.BuildPath(o.Dir, o.Filename)
}

// Result describes how far a run got.
type Result struct {
	State  State
	Source string
	Output Output
	// Path is where the file was written. Empty on dry runs and failures.
	Path string
}

// Written reports whether the run wrote a file.
func (r *Result) Written() bool {
	return r.State == StateSuccess && r.Path != ""
}

// Generator runs generation requests against a stub store.
type Generator struct {
	stubs TemplateLoader
	opts  Options
}

// New creates a generator loading stubs from stubs.
func New(stubs TemplateLoader, opts Options) *Generator {
	return &Generator{stubs: stubs, opts: opts}
}

// Run executes one generation run.
func (g *Generator) Run(ctx context.Context, req Request) (*Result, error) {
	logger := logging.WithContext(ctx).With(logging.Task(req.TaskName))
	res := &Result{State: StateStart}

	advance := func(s State) {
		res.State = s
		logger.Debug("generation state changed", logging.State(s.String()))
	}
	fail := func(err error) (*Result, error) {
		logger.Debug("generation failed", logging.State(res.State.String()), logging.Err(err))
		res.State = StateFailed
		res.Path = ""
		return res, err
	}

	if req.TaskName == "" {
		return fail(ErrMissingArgument)
	}

	tmpl, err := g.stubs.Load(req.Type)
	if err != nil {
		return fail(fmt.Errorf("failed to load stub %q: %w", req.Type, err))
	}
	res.Source = tmpl.Source
	if missing := tmpl.MissingTokens(); len(missing) > 0 {
		logger.Debug("stub lacks placeholder tokens", logging.Type(req.Type), "missing", missing)
	}
	advance(StateTemplateLoaded)

	res.Output.Content = Substitute(tmpl.Content, req)
	res.Output.Filename = OutputName(req.TaskName, g.opts.Suffix)
	advance(StateSubstituted)

	if g.opts.DryRun {
		advance(StateSuccess)
		return res, nil
	}

	dir, err := ResolveDestination(g.opts.SourcePath, g.opts.Prompt)
	if err != nil {
		return fail(err)
	}
	res.Output.Dir = dir

	path, err := res.Output.Path()
	if err != nil {
		return fail(err)
	}
	advance(StateDestinationResolved)

	if err := os.WriteFile(path, []byte(res.Output.Content), FilePerm); err != nil {
		return fail(fmt.Errorf("%w: %s: %w", ErrWriteFailed, path, err))
	}
	res.Path = path
	advance(StateWritten)

	logger.Info("task file written", logging.Path(path), logging.Type(req.Type))
	advance(StateSuccess)
	return res, nil
}
