package vigenere

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveShift(t *testing.T) {
	assert.Equal(t, 0, SolveShift("E"))
	assert.Equal(t, 12, SolveShift("Q"))
	assert.Equal(t, 21, SolveShift("ZZZZ"))
	assert.Equal(t, 3, SolveShift(EncryptSequence(Filter(readFixture(t, "two_cities.txt")), 3)))
}

func TestSolveShift_TiesGoToSmallestShift(t *testing.T) {
	// Every shift of a full alphabet is the same uniform distribution.
	assert.Equal(t, 0, SolveShift("ABCDEFGHIJKLMNOPQRSTUVWXYZ"))
	// So is every shift of an empty column.
	assert.Equal(t, 0, SolveShift(""))
}

func TestSolveKey(t *testing.T) {
	letters := Filter(readFixture(t, "two_cities_lemon.txt"))

	key, err := SolveKey(context.Background(), letters, 5)
	require.NoError(t, err)
	assert.Equal(t, "LEMON", key)

	key, err = SolveKey(context.Background(), letters, 10)
	require.NoError(t, err)
	assert.Equal(t, "LEMONLEMON", key)
}

func TestSolveKey_InvalidLength(t *testing.T) {
	_, err := SolveKey(context.Background(), "ABC", 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidKeyLength))
}

func TestSolveKey_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := SolveKey(ctx, "LXFOPVEFRNHR", 3)
	assert.ErrorIs(t, err, context.Canceled)
}
