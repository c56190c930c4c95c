package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntBetween_Bounds(t *testing.T) {
	src := NewSource(1)
	for range 1000 {
		v := src.IntBetween(3, 7)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 7)
	}
}

func TestPick_Deterministic(t *testing.T) {
	values := []string{"a", "b", "c", "d"}

	a := NewSource(5)
	b := NewSource(5)
	for range 100 {
		assert.Equal(t, Pick(a, values), Pick(b, values))
	}
}

func TestUniqueEmail_NeverRepeats(t *testing.T) {
	src := NewSource(1)
	seen := make(map[string]bool)
	for range 500 {
		email, err := src.UniqueEmail("Asha Rao")
		require.NoError(t, err)
		assert.False(t, seen[email], "email %s issued twice", email)
		seen[email] = true
	}
}

func TestUniqueEmail_ReportsExhaustion(t *testing.T) {
	src := NewSource(1)
	src.emailAttempts = 1

	// With a single attempt per call there are at most three free
	// candidates (one per domain); the pool must report exhaustion
	// instead of looping or duplicating.
	var err error
	for range 4 {
		if _, err = src.UniqueEmail("Asha Rao"); err != nil {
			break
		}
	}
	assert.ErrorIs(t, err, ErrEmailsExhausted)
}
