// Package schedule translates the named frequencies and constraints used in
// task files into cron expressions, so a freshly generated task can report
// when it would first run.
//
// It only knows the common names. A task using anything else is still valid
// for the scheduler; it just gets no preview.
package schedule

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

var (
	// ErrUnknownFrequency is returned for a frequency without a known expression.
	ErrUnknownFrequency = errors.New("unknown frequency")
	// ErrUnknownConstraint is returned for a constraint without a known day set.
	ErrUnknownConstraint = errors.New("unknown constraint")
)

// frequencies maps frequency names to standard five-field expressions.
var frequencies = map[string]string{
	"everyMinute":         "* * * * *",
	"everyFiveMinutes":    "*/5 * * * *",
	"everyTenMinutes":     "*/10 * * * *",
	"everyFifteenMinutes": "*/15 * * * *",
	"everyThirtyMinutes":  "*/30 * * * *",
	"hourly":              "0 * * * *",
	"daily":               "0 0 * * *",
	"weekly":              "0 0 * * 0",
	"monthly":             "0 0 1 * *",
	"quarterly":           "0 0 1 */3 *",
	"yearly":              "0 0 1 1 *",
}

// constraints maps day constraints to a day-of-week field.
var constraints = map[string]string{
	"weekdays":   "1-5",
	"weekends":   "0,6",
	"sundays":    "0",
	"mondays":    "1",
	"tuesdays":   "2",
	"wednesdays": "3",
	"thursdays":  "4",
	"fridays":    "5",
	"saturdays":  "6",
}

// Preview is the cron form of a task schedule and its next run.
type Preview struct {
	Expression string
	Next       time.Time
}

// Expression builds the cron expression for a frequency restricted by a day
// constraint. An empty constraint leaves the frequency's days alone.
func Expression(frequency, constraint string) (string, error) {
	frequency = strings.TrimRight(strings.TrimSpace(frequency), "()")
	constraint = strings.TrimRight(strings.TrimSpace(constraint), "()")

	expr, ok := frequencies[frequency]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFrequency, frequency)
	}
	if constraint == "" {
		return expr, nil
	}

	dow, ok := constraints[constraint]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownConstraint, constraint)
	}

	fields := strings.Fields(expr)
	fields[4] = dow
	return strings.Join(fields, " "), nil
}

// Describe returns the expression for frequency and constraint and the first
// time after from that it fires.
func Describe(frequency, constraint string, from time.Time) (Preview, error) {
	expr, err := Expression(frequency, constraint)
	if err != nil {
		return Preview{}, err
	}

	sched, err := cron.ParseStandard(expr)
	if err != nil {
		return Preview{}, fmt.Errorf("invalid cron expression %q: %w", expr, err)
	}

	return Preview{Expression: expr, Next: sched.Next(from)}, nil
}

// Frequencies returns the known frequency names.
func Frequencies() []string {
	return sortedKeys(frequencies)
}

// Constraints returns the known constraint names.
func Constraints() []string {
	return sortedKeys(constraints)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
