// Package verification checks a shared diploma against the ledger: it
// downloads and decrypts the artifact named in the link, re-hashes it and
// compares the digest with the one recorded at mint time.
package verification

import (
	"context"
	"fmt"

	"github.com/and161185/ijazah-ledger/internal/client/sharelink"
	"github.com/and161185/ijazah-ledger/internal/crypto/doccrypto"
	"github.com/and161185/ijazah-ledger/internal/errs"
	"github.com/and161185/ijazah-ledger/internal/model"
)

// Status is the verdict shown to a verifier.
type Status string

const (
	StatusValid   Status = "valid"
	StatusRevoked Status = "revoked"
	StatusInvalid Status = "invalid" // active record, document hash differs
)

// Ledger is the read side the verifier needs.
type Ledger interface {
	VerifyDiploma(ctx context.Context, id uint64) (exists, active bool, err error)
	GetDiplomaDetails(ctx context.Context, id uint64) (*model.Diploma, error)
	VerifyHash(ctx context.Context, id uint64, candidate string) (bool, error)
	RevocationReason(ctx context.Context, id uint64) (string, error)
}

// Downloader fetches ciphertext by cid.
type Downloader interface {
	Download(ctx context.Context, cid string) ([]byte, error)
}

// Report is the outcome of one verification.
type Report struct {
	Status           Status
	Diploma          model.Diploma
	ComputedHash     string // empty for id-only checks
	HashMatch        bool
	RevocationReason string
	Document         []byte // decrypted plaintext, nil for id-only checks
}

// Verifier runs verifications. Safe for concurrent use.
type Verifier struct {
	ledger Ledger
	store  Downloader
}

func New(ledger Ledger, store Downloader) *Verifier {
	return &Verifier{ledger: ledger, store: store}
}

// VerifyURL parses a share link and verifies it.
func (v *Verifier) VerifyURL(ctx context.Context, raw string) (*Report, error) {
	link, ok := sharelink.Parse(raw)
	if !ok {
		return nil, fmt.Errorf("%w: invalid verification link", errs.ErrInvalidArgument)
	}
	return v.VerifyLink(ctx, link)
}

// VerifyLink performs the full document check.
func (v *Verifier) VerifyLink(ctx context.Context, link sharelink.Link) (*Report, error) {
	rep, err := v.lookup(ctx, link.DiplomaID)
	if err != nil {
		return nil, err
	}
	ct, err := v.store.Download(ctx, link.CID)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", link.CID, err)
	}
	pt, err := doccrypto.Decrypt(ct, link.Key, link.IV)
	if err != nil {
		return nil, err
	}
	rep.Document = pt
	rep.ComputedHash = doccrypto.Hash(pt)
	if rep.HashMatch, err = v.ledger.VerifyHash(ctx, link.DiplomaID, rep.ComputedHash); err != nil {
		return nil, fmt.Errorf("verify hash: %w", err)
	}
	if rep.Status == StatusValid && !rep.HashMatch {
		rep.Status = StatusInvalid
	}
	return rep, nil
}

// VerifyByID reports the ledger state of a diploma without a document.
func (v *Verifier) VerifyByID(ctx context.Context, id uint64) (*Report, error) {
	return v.lookup(ctx, id)
}

func (v *Verifier) lookup(ctx context.Context, id uint64) (*Report, error) {
	exists, active, err := v.ledger.VerifyDiploma(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("verify diploma: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("diploma %d: %w", id, errs.ErrNotFound)
	}
	d, err := v.ledger.GetDiplomaDetails(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("diploma details: %w", err)
	}
	rep := &Report{Status: StatusValid, Diploma: *d}
	if !active {
		rep.Status = StatusRevoked
		if rep.RevocationReason, err = v.ledger.RevocationReason(ctx, id); err != nil {
			return nil, fmt.Errorf("revocation reason: %w", err)
		}
	}
	return rep, nil
}
