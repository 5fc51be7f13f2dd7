package gen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniqueReturnsFirstFreeCandidate(t *testing.T) {
	candidates := []string{"taken-1", "taken-2", "free"}
	i := 0
	produce := func() (string, error) {
		c := candidates[i%len(candidates)]
		i++
		return c, nil
	}
	exists := func(c string) (bool, error) { return c != "free", nil }

	got, err := Unique(produce, exists, 10)
	require.NoError(t, err)
	assert.Equal(t, "free", got)
	assert.Equal(t, 3, i)
}

func TestUniqueExhaustsBudget(t *testing.T) {
	calls := 0
	produce := func() (string, error) {
		calls++
		return "taken", nil
	}
	exists := func(string) (bool, error) { return true, nil }

	_, err := Unique(produce, exists, 25)
	assert.ErrorIs(t, err, ErrExhaustedCandidateSpace)
	assert.Equal(t, 25, calls)
}

func TestUniqueUnboundedKeepsTrying(t *testing.T) {
	attempt := 0
	produce := func() (int, error) {
		attempt++
		return attempt, nil
	}
	exists := func(n int) (bool, error) { return n < DefaultUniqueAttempts+500, nil }

	got, err := Unique(produce, exists, -1)
	require.NoError(t, err)
	assert.Equal(t, DefaultUniqueAttempts+500, got)
}

func TestUniquePropagatesErrors(t *testing.T) {
	produceErr := errors.New("produce failed")
	existsErr := errors.New("exists failed")

	_, err := Unique(
		func() (string, error) { return "", produceErr },
		func(string) (bool, error) { return false, nil },
		5,
	)
	assert.ErrorIs(t, err, produceErr)

	_, err = Unique(
		func() (string, error) { return "x", nil },
		func(string) (bool, error) { return false, existsErr },
		5,
	)
	assert.ErrorIs(t, err, existsErr)
}
