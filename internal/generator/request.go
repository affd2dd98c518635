package generator

import (
	"fmt"
	"strings"
)

// Option names accepted by NewRequest.
const (
	OptFrequency   = "frequency"
	OptConstraint  = "constraint"
	OptIn          = "in"
	OptRun         = "run"
	OptDescription = "description"
	OptType        = "type"
)

// Defaults holds the value of every option when none is given.
var Defaults = map[string]string{
	OptFrequency:   "everyThirtyMinutes",
	OptConstraint:  "weekdays",
	OptIn:          "path/to/your/command",
	OptRun:         "command/to/execute",
	OptDescription: "Task description",
	OptType:        "basic",
}

// DefaultOptions returns a fresh option map filled with Defaults.
func DefaultOptions() map[string]any {
	opts := make(map[string]any, len(Defaults))
	for k, v := range Defaults {
		opts[k] = v
	}
	return opts
}

// Request is the validated input of a single generation run.
type Request struct {
	TaskName    string
	Type        string
	Frequency   string
	Constraint  string
	Command     string
	Path        string
	Description string
}

// NewRequest validates raw options and builds a Request. Every option except
// "type" must be present and hold a string; a missing type falls back to
// the default stub.
func NewRequest(taskName string, options map[string]any) (Request, error) {
	if strings.TrimSpace(taskName) == "" {
		return Request{}, ErrMissingArgument
	}

	req := Request{TaskName: taskName}

	fields := []struct {
		name string
		dst  *string
	}{
		{OptFrequency, &req.Frequency},
		{OptConstraint, &req.Constraint},
		{OptRun, &req.Command},
		{OptIn, &req.Path},
		{OptDescription, &req.Description},
	}
	for _, f := range fields {
		v, err := optionString(options, f.name)
		if err != nil {
			return Request{}, err
		}
		*f.dst = v
	}

	typ := Defaults[OptType]
	if _, ok := options[OptType]; ok {
		v, err := optionString(options, OptType)
		if err != nil {
			return Request{}, err
		}
		typ = v
	}
	req.Type = strings.ToLower(typ)

	return req, nil
}

func optionString(options map[string]any, name string) (string, error) {
	raw, ok := options[name]
	if !ok || raw == nil {
		return "", fmt.Errorf("%w '%s'", ErrMissingOption, name)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: '%s' is %T", ErrInvalidOptionType, name, raw)
	}
	return s, nil
}
