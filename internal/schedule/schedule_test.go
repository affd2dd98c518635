package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpression(t *testing.T) {
	tests := []struct {
		name       string
		frequency  string
		constraint string
		want       string
		wantErr    error
	}{
		{
			name:       "defaults",
			frequency:  "everyThirtyMinutes",
			constraint: "weekdays",
			want:       "*/30 * * * 1-5",
		},
		{
			name:       "call parens ignored",
			frequency:  "daily()",
			constraint: "weekends()",
			want:       "0 0 * * 0,6",
		},
		{
			name:      "no constraint",
			frequency: "monthly",
			want:      "0 0 1 * *",
		},
		{
			name:       "constraint replaces weekly day",
			frequency:  "weekly",
			constraint: "fridays",
			want:       "0 0 * * 5",
		},
		{
			name:       "unknown frequency",
			frequency:  "everyFortnight",
			constraint: "weekdays",
			wantErr:    ErrUnknownFrequency,
		},
		{
			name:       "unknown constraint",
			frequency:  "hourly",
			constraint: "holidays",
			wantErr:    ErrUnknownConstraint,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expression(tt.frequency, tt.constraint)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDescribe(t *testing.T) {
	// Thursday
	thursday := time.Date(2026, time.October, 15, 10, 5, 0, 0, time.UTC)
	// Saturday
	saturday := time.Date(2026, time.October, 17, 10, 5, 0, 0, time.UTC)

	tests := map[string]struct {
		from time.Time
		want time.Time
	}{
		"same day":      {from: thursday, want: time.Date(2026, time.October, 15, 10, 30, 0, 0, time.UTC)},
		"skips weekend": {from: saturday, want: time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p, err := Describe("everyThirtyMinutes", "weekdays", tt.from)
			require.NoError(t, err)
			assert.Equal(t, "*/30 * * * 1-5", p.Expression)
			assert.True(t, tt.want.Equal(p.Next), "next = %v, want %v", p.Next, tt.want)
		})
	}
}

func TestDescribe_Unknown(t *testing.T) {
	_, err := Describe("whenever", "", time.Now())
	assert.ErrorIs(t, err, ErrUnknownFrequency)
}

func TestEveryExpressionParses(t *testing.T) {
	for _, f := range Frequencies() {
		for _, c := range append(Constraints(), "") {
			_, err := Describe(f, c, time.Now())
			assert.NoError(t, err, "frequency %q constraint %q", f, c)
		}
	}
}

func TestNames(t *testing.T) {
	assert.Contains(t, Frequencies(), "everyThirtyMinutes")
	assert.Contains(t, Constraints(), "weekdays")
	assert.IsNonDecreasing(t, Frequencies())
}
