package vigenere

// Decrypt walks ciphertext and decrypts each letter with the key letter at
// (letters seen so far) mod len(key). Case is kept; other characters are
// copied and do not advance the key. Key letters are case-insensitive and
// non-letters in the key are ignored. An empty key returns ciphertext as is.
// The output always has the same byte length as the input.
func Decrypt(ciphertext, key string) string {
	return applyKey(ciphertext, key, DecryptLetter)
}

// Encrypt is the inverse of Decrypt.
func Encrypt(plaintext, key string) string {
	return applyKey(plaintext, key, EncryptLetter)
}

// DecryptText is Decrypt with ErrInvalidKey for a key without letters.
func DecryptText(ciphertext, key string) (string, error) {
	if Filter(key) == "" {
		return "", ErrInvalidKey
	}
	return Decrypt(ciphertext, key), nil
}

// EncryptText is Encrypt with ErrInvalidKey for a key without letters.
func EncryptText(plaintext, key string) (string, error) {
	if Filter(key) == "" {
		return "", ErrInvalidKey
	}
	return Encrypt(plaintext, key), nil
}

func applyKey(text, key string, shiftLetter func(byte, int) byte) string {
	shifts := keyToShifts(Filter(key))
	if len(shifts) == 0 {
		return text
	}

	// Bytes, not runes: anything outside A-Z, including invalid UTF-8, is
	// copied through untouched so the output keeps the input's length.
	out := make([]byte, len(text))
	seen := 0
	for i := 0; i < len(text); i++ {
		char := rune(text[i])
		if !checkLetter(char) {
			out[i] = text[i]
			continue
		}
		shifted := shiftLetter(byte(toUpper(char)), shifts[seen%len(shifts)])
		if !isUpper(char) {
			shifted += 'a' - 'A'
		}
		out[i] = shifted
		seen++
	}
	return string(out)
}
