package doccrypto

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/and161185/ijazah-ledger/internal/errs"
)

func TestHash_KnownVector(t *testing.T) {
	t.Parallel()

	require.Equal(t, "0xba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", Hash([]byte("abc")))
	require.Equal(t, Hash([]byte("abc")), Hash([]byte("abc")))
	require.NotEqual(t, Hash([]byte("abc")), Hash([]byte("abd")))
}

func TestGenerate_Sizes(t *testing.T) {
	t.Parallel()

	k, err := GenerateKey()
	require.NoError(t, err)
	require.Len(t, k, 32)
	iv, err := GenerateIV()
	require.NoError(t, err)
	require.Len(t, iv, 16)

	k2, _ := GenerateKey()
	require.False(t, bytes.Equal(k, k2))
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	t.Parallel()

	key, _ := GenerateKey()
	iv, _ := GenerateIV()
	for _, n := range []int{0, 1, 15, 16, 17, 4096} {
		doc := bytes.Repeat([]byte{0x5a}, n)
		ct, err := Encrypt(doc, key, iv)
		require.NoError(t, err)
		require.Equal(t, 0, len(ct)%16)
		require.Greater(t, len(ct), n)

		pt, err := Decrypt(ct, key, iv)
		require.NoError(t, err)
		require.Equal(t, doc, pt)
	}
}

func TestDecrypt_WrongKeyOrPadding(t *testing.T) {
	t.Parallel()

	key, _ := GenerateKey()
	iv, _ := GenerateIV()
	ct, err := Encrypt([]byte(strings.Repeat("diploma", 10)), key, iv)
	require.NoError(t, err)

	other, _ := GenerateKey()
	if pt, err := Decrypt(ct, other, iv); err == nil {
		// A wrong key produces valid-looking padding with probability ~1/256.
		require.NotEqual(t, []byte(strings.Repeat("diploma", 10)), pt)
	} else {
		require.ErrorIs(t, err, errs.ErrDecrypt)
	}

	_, err = Decrypt(ct[:len(ct)-1], key, iv)
	require.ErrorIs(t, err, errs.ErrDecrypt)

	_, err = Decrypt(nil, key, iv)
	require.ErrorIs(t, err, errs.ErrDecrypt)

	_, err = Decrypt(ct, key[:16], iv)
	require.ErrorIs(t, err, errs.ErrDecrypt)

	_, err = Encrypt([]byte("x"), key, iv[:8])
	require.ErrorIs(t, err, errs.ErrDecrypt)
}

func TestEncodeDecodeKey(t *testing.T) {
	t.Parallel()

	key, _ := GenerateKey()
	got, err := DecodeKey(EncodeKey(key))
	require.NoError(t, err)
	require.Equal(t, key, got)

	_, err = DecodeKey("%%%")
	require.Error(t, err)
}
