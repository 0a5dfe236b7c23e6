// Package wallet provides the signing wallet used by the session and
// issuance flows. Keys never leave the wallet; callers only see
// addresses and signatures.
package wallet

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/and161185/ijazah-ledger/internal/crypto/ethsig"
	"github.com/and161185/ijazah-ledger/internal/crypto/keystore"
	"github.com/and161185/ijazah-ledger/internal/errs"
)

// Subscription is an account change registration.
type Subscription interface {
	Unsubscribe()
}

// Wallet signs personal messages on behalf of its accounts.
type Wallet interface {
	// Accounts lists available accounts, the selected one first.
	Accounts() []common.Address
	// SignText produces an EIP-191 personal signature. A declined prompt
	// yields errs.ErrCancelled.
	SignText(ctx context.Context, account common.Address, msg string) ([]byte, error)
	// OnAccountsChanged registers h for every change of the account list
	// or selection.
	OnAccountsChanged(h func([]common.Address)) Subscription
}

// ConfirmFunc asks the key holder to approve a signature.
type ConfirmFunc func(ctx context.Context, account common.Address, msg string) (bool, error)

// Keyring is an in-process wallet holding decrypted keys.
type Keyring struct {
	mu       sync.Mutex
	keys     map[common.Address]*ecdsa.PrivateKey
	order    []common.Address
	selected common.Address
	confirm  ConfirmFunc
	handlers map[int]func([]common.Address)
	nextID   int
}

// NewKeyring returns an empty keyring. A nil confirm approves every request.
func NewKeyring(confirm ConfirmFunc) *Keyring {
	return &Keyring{
		keys:     make(map[common.Address]*ecdsa.PrivateKey),
		confirm:  confirm,
		handlers: make(map[int]func([]common.Address)),
	}
}

// OpenKeyfile loads a sealed keyfile into a new single-account keyring.
func OpenKeyfile(path string, passphrase []byte, confirm ConfirmFunc) (*Keyring, error) {
	f, err := keystore.Load(path)
	if err != nil {
		return nil, err
	}
	key, err := keystore.Open(f, passphrase)
	if err != nil {
		return nil, err
	}
	k := NewKeyring(confirm)
	k.Add(key)
	return k, nil
}

// Add imports key. The first key added becomes the selected account.
func (k *Keyring) Add(key *ecdsa.PrivateKey) common.Address {
	addr := ethsig.Address(key)
	k.mu.Lock()
	if _, ok := k.keys[addr]; !ok {
		k.order = append(k.order, addr)
	}
	k.keys[addr] = key
	if k.selected == (common.Address{}) {
		k.selected = addr
	}
	accounts, handlers := k.snapshotLocked()
	k.mu.Unlock()

	notify(handlers, accounts)
	return addr
}

// Select makes addr the active account.
func (k *Keyring) Select(addr common.Address) error {
	k.mu.Lock()
	if _, ok := k.keys[addr]; !ok {
		k.mu.Unlock()
		return fmt.Errorf("%w: account %s not in wallet", errs.ErrInvalidArgument, addr.Hex())
	}
	if k.selected == addr {
		k.mu.Unlock()
		return nil
	}
	k.selected = addr
	accounts, handlers := k.snapshotLocked()
	k.mu.Unlock()

	notify(handlers, accounts)
	return nil
}

// Remove drops addr. Removing the selected account selects the next one.
func (k *Keyring) Remove(addr common.Address) {
	k.mu.Lock()
	if _, ok := k.keys[addr]; !ok {
		k.mu.Unlock()
		return
	}
	delete(k.keys, addr)
	for i, a := range k.order {
		if a == addr {
			k.order = append(k.order[:i], k.order[i+1:]...)
			break
		}
	}
	if k.selected == addr {
		k.selected = common.Address{}
		if len(k.order) > 0 {
			k.selected = k.order[0]
		}
	}
	accounts, handlers := k.snapshotLocked()
	k.mu.Unlock()

	notify(handlers, accounts)
}

// Selected returns the active account.
func (k *Keyring) Selected() (common.Address, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.selected, k.selected != (common.Address{})
}

func (k *Keyring) Accounts() []common.Address {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.accountsLocked()
}

func (k *Keyring) accountsLocked() []common.Address {
	if k.selected == (common.Address{}) {
		return nil
	}
	out := make([]common.Address, 0, len(k.order))
	out = append(out, k.selected)
	for _, a := range k.order {
		if a != k.selected {
			out = append(out, a)
		}
	}
	return out
}

func (k *Keyring) snapshotLocked() ([]common.Address, []func([]common.Address)) {
	hs := make([]func([]common.Address), 0, len(k.handlers))
	for _, h := range k.handlers {
		hs = append(hs, h)
	}
	return k.accountsLocked(), hs
}

func notify(handlers []func([]common.Address), accounts []common.Address) {
	for _, h := range handlers {
		h(accounts)
	}
}

func (k *Keyring) SignText(ctx context.Context, account common.Address, msg string) ([]byte, error) {
	k.mu.Lock()
	key, ok := k.keys[account]
	confirm := k.confirm
	k.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: account %s not in wallet", errs.ErrInvalidArgument, account.Hex())
	}

	if confirm != nil {
		approved, err := confirm(ctx, account, msg)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrCancelled, err)
		}
		if !approved {
			return nil, errs.ErrCancelled
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrCancelled, err)
	}
	return ethsig.SignText(key, msg)
}

type subscription struct {
	once sync.Once
	fn   func()
}

func (s *subscription) Unsubscribe() { s.once.Do(s.fn) }

func (k *Keyring) OnAccountsChanged(h func([]common.Address)) Subscription {
	k.mu.Lock()
	id := k.nextID
	k.nextID++
	k.handlers[id] = h
	k.mu.Unlock()

	return &subscription{fn: func() {
		k.mu.Lock()
		delete(k.handlers, id)
		k.mu.Unlock()
	}}
}
