package keystore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/and161185/ijazah-ledger/internal/crypto/ethsig"
	"github.com/and161185/ijazah-ledger/internal/errs"
)

func TestSealOpen_RoundTrip(t *testing.T) {
	t.Parallel()

	key, err := ethsig.GenerateKey()
	require.NoError(t, err)

	f, err := Seal(key, []byte("correct horse"))
	require.NoError(t, err)
	require.Equal(t, ethsig.Address(key).Hex(), f.Address)
	require.Len(t, f.KDF.Salt, saltLen)

	got, err := Open(f, []byte("correct horse"))
	require.NoError(t, err)
	require.Equal(t, ethsig.Address(key), ethsig.Address(got))
}

func TestOpen_WrongPassphrase(t *testing.T) {
	t.Parallel()

	key, _ := ethsig.GenerateKey()
	f, err := Seal(key, []byte("pw"))
	require.NoError(t, err)

	_, err = Open(f, []byte("pw2"))
	require.ErrorIs(t, err, ErrWrongPassphrase)
	require.ErrorIs(t, err, errs.ErrDecrypt)
}

func TestOpen_AddressIsBound(t *testing.T) {
	t.Parallel()

	key, _ := ethsig.GenerateKey()
	other, _ := ethsig.GenerateKey()
	f, err := Seal(key, []byte("pw"))
	require.NoError(t, err)

	f.Address = ethsig.Address(other).Hex()
	_, err = Open(f, []byte("pw"))
	require.ErrorIs(t, err, ErrWrongPassphrase)
}

func TestSeal_EmptyPassphrase(t *testing.T) {
	t.Parallel()

	key, _ := ethsig.GenerateKey()
	_, err := Seal(key, nil)
	require.Error(t, err)
}

func TestSaveLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "wallet.json")
	_, err := Load(path)
	require.ErrorIs(t, err, errs.ErrNotFound)

	key, _ := ethsig.GenerateKey()
	f, err := Seal(key, []byte("pw"))
	require.NoError(t, err)
	require.NoError(t, Save(path, f))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, f, loaded)

	got, err := Open(loaded, []byte("pw"))
	require.NoError(t, err)
	require.Equal(t, ethsig.Address(key), ethsig.Address(got))
}
