// Package vigenere recovers the key of a Vigenère ciphertext by matching
// letter frequencies against English, and encrypts or decrypts text under a
// known key while keeping case, spacing and punctuation in place.
package vigenere

import "strings"

const alphabetSize = 26

// checkLetter reports whether char is an ASCII Latin letter.
func checkLetter(char rune) bool {
	return ('A' <= char && char <= 'Z') || ('a' <= char && char <= 'z')
}

func isUpper(char rune) bool {
	return 'A' <= char && char <= 'Z'
}

func toUpper(char rune) rune {
	if 'a' <= char && char <= 'z' {
		return char - 'a' + 'A'
	}
	return char
}

// Filter drops every character that is not an A-Z letter and upper-cases the rest.
func Filter(text string) string {
	var letters strings.Builder
	letters.Grow(len(text))
	for _, char := range text {
		if checkLetter(char) {
			letters.WriteRune(toUpper(char))
		}
	}
	return letters.String()
}
