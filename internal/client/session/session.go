// Package session runs the wallet nonce-challenge login and holds the
// resulting session for the currently selected account.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/and161185/ijazah-ledger/internal/client/wallet"
	"github.com/and161185/ijazah-ledger/internal/errs"
	"github.com/and161185/ijazah-ledger/internal/model"
)

// ErrNoAccount is returned when the wallet exposes no account.
var ErrNoAccount = fmt.Errorf("%w: no wallet account connected", errs.ErrUnauthorized)

// AuthAPI is the server side of the challenge protocol.
type AuthAPI interface {
	Challenge(ctx context.Context, account common.Address) (model.Challenge, error)
	Login(ctx context.Context, challengeID uuid.UUID, account common.Address, sig []byte) (model.Session, error)
}

// Persister stores a session between process runs.
type Persister interface {
	Load() (*model.Session, error)
	Save(s model.Session) error
	Clear() error
}

// Manager holds at most one session and drops it whenever the wallet's
// selected account changes.
type Manager struct {
	mu     sync.Mutex
	wallet wallet.Wallet
	api    AuthAPI
	store  Persister
	log    *zap.Logger
	sess   *model.Session
	sub    wallet.Subscription
	now    func() time.Time
}

// NewManager wires the wallet and auth API. store may be nil; a stored
// session is only adopted if it is still valid for the selected account.
func NewManager(w wallet.Wallet, api AuthAPI, store Persister, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	m := &Manager{wallet: w, api: api, store: store, log: log, now: time.Now}
	if store != nil {
		if s, err := store.Load(); err == nil && s != nil {
			if s.ValidFor(m.account(), m.now()) {
				m.sess = s
			} else {
				_ = store.Clear()
			}
		}
	}
	m.sub = w.OnAccountsChanged(m.accountsChanged)
	return m
}

func (m *Manager) account() common.Address {
	if accs := m.wallet.Accounts(); len(accs) > 0 {
		return accs[0]
	}
	return common.Address{}
}

func (m *Manager) accountsChanged(accs []common.Address) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sess == nil {
		return
	}
	if len(accs) == 0 || accs[0] != m.sess.Address {
		m.log.Info("wallet account changed, session cleared", zap.String("address", m.sess.Address.Hex()))
		m.clearLocked()
	}
}

func (m *Manager) clearLocked() {
	m.sess = nil
	if m.store != nil {
		if err := m.store.Clear(); err != nil {
			m.log.Warn("clear stored session", zap.Error(err))
		}
	}
}

// Authenticate signs a fresh challenge with the selected account and
// stores the new session. Signature and cancellation failures are
// returned as errs.ErrInvalidSignature and errs.ErrCancelled; nothing is retried.
func (m *Manager) Authenticate(ctx context.Context) (model.Session, error) {
	account := m.account()
	if account == (common.Address{}) {
		return model.Session{}, ErrNoAccount
	}

	ch, err := m.api.Challenge(ctx, account)
	if err != nil {
		return model.Session{}, fmt.Errorf("request challenge: %w", err)
	}
	sig, err := m.wallet.SignText(ctx, account, ch.Message)
	if err != nil {
		return model.Session{}, fmt.Errorf("sign challenge: %w", err)
	}
	s, err := m.api.Login(ctx, ch.ID, account, sig)
	if err != nil {
		return model.Session{}, fmt.Errorf("login: %w", err)
	}
	if s.Address != account {
		return model.Session{}, fmt.Errorf("%w: session issued for %s", errs.ErrInvalidSignature, s.Address.Hex())
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// the account may have switched while the user was signing
	if m.account() != account {
		return model.Session{}, fmt.Errorf("%w: account changed during login", errs.ErrCancelled)
	}
	m.sess = &s
	if m.store != nil {
		if err := m.store.Save(s); err != nil {
			m.log.Warn("persist session", zap.Error(err))
		}
	}
	return s, nil
}

// Current returns the session if it is still valid.
func (m *Manager) Current() (model.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sess == nil {
		return model.Session{}, false
	}
	if !m.sess.ValidFor(m.account(), m.now()) {
		m.clearLocked()
		return model.Session{}, false
	}
	return *m.sess, true
}

// Valid reports whether a session exists for the selected account at now.
func (m *Manager) Valid(now time.Time) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sess != nil && m.sess.ValidFor(m.account(), now)
}

// Token returns the bearer token of the current session.
func (m *Manager) Token() (string, error) {
	s, ok := m.Current()
	if !ok {
		return "", fmt.Errorf("%w: login required", errs.ErrUnauthorized)
	}
	return s.Token, nil
}

// Logout drops the session.
func (m *Manager) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sess = nil
	if m.store != nil {
		if err := m.store.Clear(); err != nil && !errors.Is(err, errs.ErrNotFound) {
			return err
		}
	}
	return nil
}

// Close stops listening for account changes.
func (m *Manager) Close() { m.sub.Unsubscribe() }
