package vigenere

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

// SolveShift finds the Caesar shift whose decryption of column lies closest
// to English. Shifts are tried in ascending order and only a strictly lower
// deviation replaces the current best, so ties go to the smallest shift.
func SolveShift(column string) int {
	bestShift := 0
	minDeviation := math.Inf(1)
	for shift := 0; shift < alphabetSize; shift++ {
		deviation := Deviation(DecryptSequence(column, shift))
		if deviation < minDeviation {
			minDeviation = deviation
			bestShift = shift
		}
	}
	return bestShift
}

// SolveKey solves each of the keyLength columns of letters independently and
// returns the key they spell. Columns are solved concurrently; the key is
// assembled in column order.
func SolveKey(ctx context.Context, letters string, keyLength int) (string, error) {
	shifts, err := solveShifts(ctx, letters, keyLength)
	if err != nil {
		return "", err
	}
	return shiftsToKey(shifts), nil
}

func solveShifts(ctx context.Context, letters string, keyLength int) ([]int, error) {
	if keyLength < 1 {
		return nil, fmt.Errorf("solve key of length %d: %w", keyLength, ErrInvalidKeyLength)
	}

	columns := SplitColumns(letters, keyLength)
	shifts := make([]int, keyLength)

	g, gctx := errgroup.WithContext(ctx)
	for i, column := range columns {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			shifts[i] = SolveShift(column)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return shifts, nil
}

func shiftsToKey(shifts []int) string {
	key := make([]byte, len(shifts))
	for i, shift := range shifts {
		key[i] = byte(shift) + 'A'
	}
	return string(key)
}

func keyToShifts(key string) []int {
	shifts := make([]int, len(key))
	for i := 0; i < len(key); i++ {
		shifts[i] = int(key[i] - 'A')
	}
	return shifts
}
