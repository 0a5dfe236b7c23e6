// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/and161185/ijazah-ledger/internal/model"
)

// LedgerRepository is the credential ledger state. Every mutating call is one
// serialized transaction that checks the caller's capability under the ledger lock.
type LedgerRepository interface {
	// Bootstrap creates the ledger instance once and returns the stored genesis.
	Bootstrap(ctx context.Context, genesis model.LedgerInfo) (model.LedgerInfo, error)
	// Info returns instance metadata and the diploma count.
	Info(ctx context.Context) (model.LedgerInfo, error)

	// Mint records a new diploma owned by in.Recipient; caller needs CanMint.
	Mint(ctx context.Context, caller common.Address, in model.NewDiploma, now time.Time) (model.Diploma, model.LedgerEvent, error)
	// Revoke deactivates a diploma once; caller needs CanRevoke.
	Revoke(ctx context.Context, caller common.Address, id uint64, reason string, now time.Time) (model.LedgerEvent, error)
	// Transfer moves ownership; caller must be the current owner.
	Transfer(ctx context.Context, caller, to common.Address, id uint64, now time.Time) (model.LedgerEvent, error)
	// SetIssuer grants or removes the issuer role; caller needs CanManageRoles.
	// A no-op returns changed=false and no event.
	SetIssuer(ctx context.Context, caller, account common.Address, grant bool, now time.Time) (bool, *model.LedgerEvent, error)

	// Get loads a diploma by id.
	Get(ctx context.Context, id uint64) (*model.Diploma, error)
	// Total returns the number of minted diplomas.
	Total(ctx context.Context) (uint64, error)
	// Roles lists roles held by account.
	Roles(ctx context.Context, account common.Address) ([]model.Role, error)
	// ListEvents pages the public event log, newest first.
	ListEvents(ctx context.Context, f model.EventFilter) ([]model.LedgerEvent, error)
	// ListDiplomas pages records, newest first.
	ListDiplomas(ctx context.Context, f model.DiplomaFilter) ([]model.Diploma, error)
}
