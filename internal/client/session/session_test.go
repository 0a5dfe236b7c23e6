package session

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/and161185/ijazah-ledger/internal/client/wallet"
	"github.com/and161185/ijazah-ledger/internal/crypto/ethsig"
	"github.com/and161185/ijazah-ledger/internal/errs"
	"github.com/and161185/ijazah-ledger/internal/model"
)

// fakeAuth verifies signatures the way the server does.
type fakeAuth struct {
	now        time.Time
	issuers    map[common.Address]bool
	challenges map[uuid.UUID]model.Challenge
	logins     int
	forceAddr  *common.Address
}

func newFakeAuth() *fakeAuth {
	return &fakeAuth{
		now:        time.Now().UTC().Truncate(time.Second),
		issuers:    map[common.Address]bool{},
		challenges: map[uuid.UUID]model.Challenge{},
	}
}

func (f *fakeAuth) Challenge(_ context.Context, account common.Address) (model.Challenge, error) {
	c := model.Challenge{ID: uuid.Must(uuid.NewV4()), Address: account, Message: "nonce " + account.Hex(), IssuedAt: f.now, ExpiresAt: f.now.Add(5 * time.Minute)}
	f.challenges[c.ID] = c
	return c, nil
}

func (f *fakeAuth) Login(_ context.Context, id uuid.UUID, account common.Address, sig []byte) (model.Session, error) {
	f.logins++
	c, ok := f.challenges[id]
	delete(f.challenges, id)
	if !ok || c.Address != account {
		return model.Session{}, errs.ErrInvalidSignature
	}
	signer, err := ethsig.RecoverText(c.Message, sig)
	if err != nil || signer != account {
		return model.Session{}, errs.ErrInvalidSignature
	}
	addr := account
	if f.forceAddr != nil {
		addr = *f.forceAddr
	}
	return model.Session{
		Address:         addr,
		IsIssuer:        f.issuers[account],
		AuthenticatedAt: f.now,
		ExpiresAt:       f.now.Add(24 * time.Hour),
		Token:           "tok-" + account.Hex(),
	}, nil
}

// badSigner signs with a different key than the account it claims.
type badSigner struct {
	*wallet.Keyring
	other *wallet.Keyring
}

func (b badSigner) SignText(ctx context.Context, _ common.Address, msg string) ([]byte, error) {
	acc := b.other.Accounts()[0]
	return b.other.SignText(ctx, acc, msg)
}

func keyring(t *testing.T, n int) (*wallet.Keyring, []common.Address) {
	t.Helper()
	k := wallet.NewKeyring(nil)
	var addrs []common.Address
	for i := 0; i < n; i++ {
		key, err := ethsig.GenerateKey()
		require.NoError(t, err)
		addrs = append(addrs, k.Add(key))
	}
	return k, addrs
}

func newManager(t *testing.T, w wallet.Wallet, api AuthAPI, store Persister, now time.Time) *Manager {
	t.Helper()
	m := NewManager(w, api, store, zaptest.NewLogger(t))
	m.now = func() time.Time { return now }
	t.Cleanup(m.Close)
	return m
}

func TestAuthenticate_Success(t *testing.T) {
	k, addrs := keyring(t, 1)
	api := newFakeAuth()
	api.issuers[addrs[0]] = true
	m := newManager(t, k, api, nil, api.now.Add(time.Minute))

	s, err := m.Authenticate(context.Background())
	require.NoError(t, err)
	require.Equal(t, addrs[0], s.Address)
	require.True(t, s.IsIssuer)
	require.Equal(t, 24*time.Hour, s.ExpiresAt.Sub(s.AuthenticatedAt))

	require.True(t, m.Valid(api.now.Add(time.Hour)))
	require.False(t, m.Valid(api.now.Add(25*time.Hour)))

	tok, err := m.Token()
	require.NoError(t, err)
	require.Equal(t, "tok-"+addrs[0].Hex(), tok)
}

func TestAuthenticate_NoAccount(t *testing.T) {
	m := newManager(t, wallet.NewKeyring(nil), newFakeAuth(), nil, time.Now())
	_, err := m.Authenticate(context.Background())
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestAuthenticate_Cancelled(t *testing.T) {
	key, err := ethsig.GenerateKey()
	require.NoError(t, err)
	k := wallet.NewKeyring(func(context.Context, common.Address, string) (bool, error) { return false, nil })
	k.Add(key)
	api := newFakeAuth()
	m := newManager(t, k, api, nil, api.now)

	_, err = m.Authenticate(context.Background())
	require.ErrorIs(t, err, errs.ErrCancelled)
	require.NotErrorIs(t, err, errs.ErrInvalidSignature)
	require.Zero(t, api.logins)
	_, ok := m.Current()
	require.False(t, ok)
}

func TestAuthenticate_InvalidSignature(t *testing.T) {
	k, _ := keyring(t, 1)
	other, _ := keyring(t, 1)
	api := newFakeAuth()
	m := newManager(t, badSigner{Keyring: k, other: other}, api, nil, api.now)

	_, err := m.Authenticate(context.Background())
	require.ErrorIs(t, err, errs.ErrInvalidSignature)
	require.NotErrorIs(t, err, errs.ErrCancelled)
	require.Equal(t, 1, api.logins)
}

func TestAuthenticate_SessionForOtherAddress(t *testing.T) {
	k, _ := keyring(t, 1)
	api := newFakeAuth()
	other := common.HexToAddress("0x00000000000000000000000000000000000000ff")
	api.forceAddr = &other
	m := newManager(t, k, api, nil, api.now)

	_, err := m.Authenticate(context.Background())
	require.ErrorIs(t, err, errs.ErrInvalidSignature)
}

func TestAccountSwitch_InvalidatesSession(t *testing.T) {
	k, addrs := keyring(t, 2)
	api := newFakeAuth()
	m := newManager(t, k, api, nil, api.now)

	_, err := m.Authenticate(context.Background())
	require.NoError(t, err)
	require.True(t, m.Valid(api.now))

	require.NoError(t, k.Select(addrs[1]))
	require.False(t, m.Valid(api.now))

	// switching back does not resurrect it
	require.NoError(t, k.Select(addrs[0]))
	_, ok := m.Current()
	require.False(t, ok)
	_, err = m.Token()
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestLogout(t *testing.T) {
	k, _ := keyring(t, 1)
	api := newFakeAuth()
	m := newManager(t, k, api, nil, api.now)
	_, err := m.Authenticate(context.Background())
	require.NoError(t, err)
	require.NoError(t, m.Logout())
	require.False(t, m.Valid(api.now))
}

func TestFileStore_PersistsAcrossManagers(t *testing.T) {
	k, _ := keyring(t, 1)
	api := newFakeAuth()
	path := filepath.Join(t.TempDir(), "ijz", "session.json")
	store := NewFileStore(path)

	m1 := newManager(t, k, api, store, api.now)
	s, err := m1.Authenticate(context.Background())
	require.NoError(t, err)
	require.FileExists(t, path)

	m2 := NewManager(k, api, store, nil)
	defer m2.Close()
	got, ok := m2.Current()
	require.True(t, ok)
	require.Equal(t, s.Token, got.Token)
	require.Equal(t, s.Address, got.Address)

	require.NoError(t, m2.Logout())
	require.NoFileExists(t, path)
}

func TestFileStore_DropsSessionForOtherAccount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileStore(path)
	require.NoError(t, store.Save(model.Session{
		Address:   common.HexToAddress("0x00000000000000000000000000000000000000aa"),
		ExpiresAt: time.Now().Add(time.Hour),
		Token:     "t",
	}))

	k, _ := keyring(t, 1)
	m := newManager(t, k, newFakeAuth(), store, time.Now())
	_, ok := m.Current()
	require.False(t, ok)
	require.NoFileExists(t, path)
}

func TestFileStore_LoadMissing(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "none.json")).Load()
	require.NoError(t, err)
	require.Nil(t, s)
}
