package constraints_test

import (
	"testing"

	"retail/internal/pkg/constraints"

	"github.com/stretchr/testify/assert"
)

func TestIntRange(t *testing.T) {
	check := constraints.IntRange(0, 2)

	tests := []struct {
		name  string
		value int
		want  bool
	}{
		{"below_min", -1, false},
		{"min_is_inclusive", 0, true},
		{"inside", 1, true},
		{"max_is_exclusive", 2, false},
		{"above_max", 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, check.Verify(tt.value))
		})
	}
}

func TestStringOptions(t *testing.T) {
	check := constraints.StringOptions("InStore", "Collection", "Delivery")

	t.Run("member_passes", func(t *testing.T) {
		assert.True(t, check.Verify("InStore"))
		assert.True(t, check.Verify("Delivery"))
	})

	t.Run("comparison_is_case_sensitive", func(t *testing.T) {
		assert.False(t, check.Verify("instore"))
		assert.False(t, check.Verify("COLLECTION"))
	})

	t.Run("non_member_fails", func(t *testing.T) {
		assert.False(t, check.Verify("Pickup"))
		assert.False(t, check.Verify(""))
	})
}

func TestStringOptionsFold(t *testing.T) {
	check := constraints.StringOptionsFold("jan", "feb", "mar")

	t.Run("member_passes_any_case", func(t *testing.T) {
		assert.True(t, check.Verify("jan"))
		assert.True(t, check.Verify("Jan"))
		assert.True(t, check.Verify("FEB"))
	})

	t.Run("non_member_fails", func(t *testing.T) {
		assert.False(t, check.Verify("apr"))
	})
}

func TestLength(t *testing.T) {
	check := constraints.Length(1, 31)

	t.Run("empty_fails", func(t *testing.T) {
		assert.False(t, check.Verify(""))
	})

	t.Run("single_char_passes", func(t *testing.T) {
		assert.True(t, check.Verify("a"))
	})

	t.Run("thirty_chars_passes", func(t *testing.T) {
		assert.True(t, check.Verify("abcdefghijklmnopqrstuvwxyzabcd"))
	})

	t.Run("thirty_one_chars_fails", func(t *testing.T) {
		assert.False(t, check.Verify("abcdefghijklmnopqrstuvwxyzabcde"))
	})
}

func TestConstraintsAreStateless(t *testing.T) {
	// The same constraint value must give the same verdicts on repeated use.
	check := constraints.IntRange(1, 32)
	for i := 0; i < 3; i++ {
		assert.True(t, check.Verify(31))
		assert.False(t, check.Verify(32))
	}
}
