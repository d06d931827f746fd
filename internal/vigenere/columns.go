package vigenere

import "fmt"

// SplitColumns deals letters round-robin into keyLength columns: column i
// holds every letter whose index j satisfies j % keyLength == i. Columns past
// the end of a short text are empty. It panics if keyLength < 1.
func SplitColumns(letters string, keyLength int) []string {
	if keyLength < 1 {
		panic(fmt.Sprintf("vigenere: cannot split into %d columns", keyLength))
	}

	columns := make([][]byte, keyLength)
	for i := range columns {
		columns[i] = make([]byte, 0, len(letters)/keyLength+1)
	}
	for j := 0; j < len(letters); j++ {
		columns[j%keyLength] = append(columns[j%keyLength], letters[j])
	}

	out := make([]string, keyLength)
	for i, column := range columns {
		out[i] = string(column)
	}
	return out
}
