package script

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]int
		cond string
		want bool
	}{
		{"and_true", map[string]int{"X": 5, "Y": 3}, "X > 3 AND Y < 10", true},
		{"and_false", map[string]int{"X": 2, "Y": 3}, "X > 3 AND Y < 10", false},
		{"or_left", map[string]int{"X": 1, "Y": 5}, "X<2 OR Y<2", true},
		{"or_right", map[string]int{"X": 5, "Y": 1}, "X<2 OR Y<2", true},
		{"or_neither", map[string]int{"X": 5, "Y": 5}, "X<2 OR Y<2", false},
		{"le_equal", map[string]int{"X": 3}, "X <= 3", true},
		{"le_no_spaces", map[string]int{"X": 3}, "X<=3", true},
		{"ge", map[string]int{"X": 2}, "X >= 3", false},
		{"eq", map[string]int{"X": 3}, "X == 3", true},
		{"ne", map[string]int{"X": 3}, "X != 3", false},
		{"arithmetic_operands", map[string]int{"X": 3, "Y": 1}, "X+1 > Y+2", true},
		{"spaced_arithmetic", map[string]int{"X": 3}, "X + 1 == 4", true},
		{"negative_literal", map[string]int{"X": -4}, "X < -3", true},
		{"negated_variable", map[string]int{"A": 2}, "-A < 0", true},
		{"negated_both_sides", map[string]int{"A": 2, "B": 5}, "-A > -B", true},
		{"and_binds_tighter", map[string]int{"A": 1, "B": 0, "C": 1}, "A == 1 AND B == 1 OR C == 1", true},
		{"keyword_prefix_variable", map[string]int{"ORE": 2, "ANDY": 2}, "ORE == ANDY", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			vars := NewVars()
			for k, v := range tc.vars {
				vars.Set(k, v)
			}
			got, err := vars.Evaluate(tc.cond)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEvaluateRejects(t *testing.T) {
	vars := NewVars()
	vars.Set("X", 1)

	for _, cond := range []string{
		"",
		"X",
		"X > ",
		"> 1",
		"X > 1 AND",
		"X = 1",
		"X < 1 < 2",
	} {
		t.Run(cond, func(t *testing.T) {
			_, err := vars.Evaluate(cond)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCondition), "got %v", err)
		})
	}

	_, err := vars.Evaluate("missing > 1")
	assert.True(t, errors.Is(err, ErrInvalidExpression), "got %v", err)
}
