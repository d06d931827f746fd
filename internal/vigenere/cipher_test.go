package vigenere

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncrypt(t *testing.T) {
	assert.Equal(t, "LXFOPVEFRNHR", Encrypt("ATTACKATDAWN", "LEMON"))
	assert.Equal(t, "Rijvs, Uyvjn!", Encrypt("Hello, World!", "key"))
}

func TestDecrypt_PreservesCaseAndLayout(t *testing.T) {
	got := Decrypt("Lxfopv ef rnhr!", "LEMON")
	assert.Equal(t, "Attack at dawn!", got)

	got = Decrypt("LxFo-PvEf RnHr", "lemon")
	assert.Equal(t, "AtTa-CkAt DaWn", got)
}

func TestDecrypt_EmptyKey(t *testing.T) {
	assert.Equal(t, "Some text", Decrypt("Some text", ""))
	assert.Equal(t, "Some text", Decrypt("Some text", "123"))
}

func TestRoundTrip(t *testing.T) {
	plaintext := readFixture(t, "two_cities.txt")
	for _, key := range []string{"A", "LEMON", "Crypto", "ZZZZZZZZZZZZZZZZZ", "Q W-E"} {
		ciphertext := Encrypt(plaintext, key)
		assert.Len(t, ciphertext, len(plaintext))
		assert.Equal(t, plaintext, Decrypt(ciphertext, key), "key %q", key)
	}
}

func TestDecrypt_KeepsByteLength(t *testing.T) {
	got := Decrypt("AB\xffCD", "B")
	assert.Equal(t, "ZA\xffBC", got)
	assert.Len(t, got, 5)

	in := "Naïve café, déjà vu"
	got = Encrypt(in, "KEY")
	assert.Len(t, got, len(in))
	assert.Equal(t, in, Decrypt(got, "KEY"))
}

func TestRoundTrip_Fixture(t *testing.T) {
	assert.Equal(t, readFixture(t, "two_cities_lemon.txt"), Encrypt(readFixture(t, "two_cities.txt"), "LEMON"))
}

func TestEncryptText_InvalidKey(t *testing.T) {
	_, err := EncryptText("hello", "1234")
	assert.ErrorIs(t, err, ErrInvalidKey)

	_, err = DecryptText("hello", "")
	assert.ErrorIs(t, err, ErrInvalidKey)

	out, err := DecryptText("Rijvs, Uyvjn!", "KEY")
	require.NoError(t, err)
	assert.Equal(t, "Hello, World!", out)
}
