package vigenere

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"punctuation only", "!!! ---", ""},
		{"digits dropped", "a1b2c3", "ABC"},
		{"mixed case", "Attack at Dawn!", "ATTACKATDAWN"},
		{"non-latin dropped", "naïve café", "NAVECAF"},
		{"newlines", "ab\ncd\r\n", "ABCD"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filter(tt.in))
		})
	}
}

func TestFilter_Idempotent(t *testing.T) {
	for _, in := range []string{"", "Hello, World!", "LXFOPVEFRNHR", "¿Qué pasa? 42"} {
		once := Filter(in)
		assert.Equal(t, once, Filter(once), "input %q", in)
		assert.LessOrEqual(t, len(once), len(in))
	}
}
