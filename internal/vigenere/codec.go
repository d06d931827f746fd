package vigenere

import "fmt"

// shiftBy rotates an uppercase letter forward by shift, wrapping around the alphabet.
func shiftBy(char byte, shift int) byte {
	if char < 'A' || char > 'Z' {
		panic(fmt.Sprintf("vigenere: %q is not an uppercase letter", char))
	}
	offset := (int(char-'A') + shift) % alphabetSize
	if offset < 0 {
		offset += alphabetSize
	}
	return byte(offset) + 'A'
}

// DecryptLetter returns the letter shift positions before c, wrapping modulo 26.
// It panics if c is not in 'A'..'Z'.
func DecryptLetter(c byte, shift int) byte {
	return shiftBy(c, -shift)
}

// EncryptLetter is the inverse of DecryptLetter.
func EncryptLetter(c byte, shift int) byte {
	return shiftBy(c, shift)
}

// DecryptSequence applies DecryptLetter with the same shift to every letter.
func DecryptSequence(letters string, shift int) string {
	out := make([]byte, len(letters))
	for i := 0; i < len(letters); i++ {
		out[i] = DecryptLetter(letters[i], shift)
	}
	return string(out)
}

// EncryptSequence applies EncryptLetter with the same shift to every letter.
func EncryptSequence(letters string, shift int) string {
	out := make([]byte, len(letters))
	for i := 0; i < len(letters); i++ {
		out[i] = EncryptLetter(letters[i], shift)
	}
	return string(out)
}

// decryptWithKey decrypts filtered letters, cycling the key shifts by position.
func decryptWithKey(letters string, shifts []int) string {
	if len(shifts) == 0 {
		return letters
	}
	out := make([]byte, len(letters))
	for i := 0; i < len(letters); i++ {
		out[i] = DecryptLetter(letters[i], shifts[i%len(shifts)])
	}
	return string(out)
}
