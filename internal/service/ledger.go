// Package service contains application services for the diploma ledger and wallet authentication.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	pkgcrypto "github.com/and161185/ijazah-ledger/internal/crypto"
	"github.com/and161185/ijazah-ledger/internal/errs"
	"github.com/and161185/ijazah-ledger/internal/model"
	"github.com/and161185/ijazah-ledger/internal/repository"
)

// LedgerService defines the credential ledger operations.
type LedgerService interface {
	// IssueDiploma mints a new diploma for in.Recipient.
	IssueDiploma(ctx context.Context, caller common.Address, in model.NewDiploma) (model.Diploma, model.LedgerEvent, error)
	// RevokeDiploma permanently deactivates a diploma.
	RevokeDiploma(ctx context.Context, caller common.Address, id uint64, reason string) (model.LedgerEvent, error)
	// TransferFrom moves a diploma to another owner.
	TransferFrom(ctx context.Context, caller, to common.Address, id uint64) (model.LedgerEvent, error)
	// AddIssuer grants the issuer role; changed is false when already granted.
	AddIssuer(ctx context.Context, caller, account common.Address) (changed bool, err error)
	// RemoveIssuer removes the issuer role; changed is false when not held.
	RemoveIssuer(ctx context.Context, caller, account common.Address) (changed bool, err error)

	// VerifyDiploma reports existence and status. Unknown ids are not an error.
	VerifyDiploma(ctx context.Context, id uint64) (exists, active bool, err error)
	// VerifyHash compares candidate with the stored document hash.
	VerifyHash(ctx context.Context, id uint64, candidate string) (bool, error)
	// GetDiplomaDetails returns the full record.
	GetDiplomaDetails(ctx context.Context, id uint64) (*model.Diploma, error)
	// GetTotalDiplomas returns the number of minted diplomas.
	GetTotalDiplomas(ctx context.Context) (uint64, error)
	// IsIssuer reports whether account holds the issuer role.
	IsIssuer(ctx context.Context, account common.Address) (bool, error)
	// IsAdmin reports whether account holds the admin role.
	IsAdmin(ctx context.Context, account common.Address) (bool, error)
	// RevocationReason returns the stored reason, empty while active.
	RevocationReason(ctx context.Context, id uint64) (string, error)
	// TokenURI returns the storage cid of the encrypted document.
	TokenURI(ctx context.Context, id uint64) (string, error)
	// ListEvents pages the public event log.
	ListEvents(ctx context.Context, f model.EventFilter) ([]model.LedgerEvent, error)
	// ListDiplomas pages diploma records.
	ListDiplomas(ctx context.Context, f model.DiplomaFilter) ([]model.Diploma, error)
	// Info returns ledger instance metadata.
	Info(ctx context.Context) (model.LedgerInfo, error)
}

// EventPublisher receives committed ledger events.
type EventPublisher interface {
	Publish(ev model.LedgerEvent)
}

type LedgerServiceImpl struct {
	repo repository.LedgerRepository
	pub  EventPublisher
	log  *zap.Logger
	now  func() time.Time
}

// NewLedgerService constructs LedgerService. pub may be nil.
func NewLedgerService(repo repository.LedgerRepository, pub EventPublisher, log *zap.Logger) *LedgerServiceImpl {
	if log == nil {
		log = zap.NewNop()
	}
	return &LedgerServiceImpl{repo: repo, pub: pub, log: log, now: func() time.Time { return time.Now().UTC() }}
}

// Bootstrap creates the ledger instance on first start. On later starts the
// configured admin must match the stored one.
func (s *LedgerServiceImpl) Bootstrap(ctx context.Context, admin common.Address, chainID uint64, network string) (model.LedgerInfo, error) {
	if admin == (common.Address{}) {
		return model.LedgerInfo{}, fmt.Errorf("validation: empty admin address: %w", errs.ErrInvalidArgument)
	}
	now := s.now()
	genesis := model.LedgerInfo{
		ContractAddress: pkgcrypto.InstanceAddress(admin, chainID, now),
		Admin:           admin,
		ChainID:         chainID,
		Network:         network,
		CreatedAt:       now,
	}
	info, err := s.repo.Bootstrap(ctx, genesis)
	if err != nil {
		return model.LedgerInfo{}, fmt.Errorf("bootstrap ledger: %w", err)
	}
	if info.Admin != admin {
		return model.LedgerInfo{}, fmt.Errorf("validation: configured admin %s does not match ledger admin %s", admin.Hex(), info.Admin.Hex())
	}
	return info, nil
}

func (s *LedgerServiceImpl) publish(ev model.LedgerEvent) {
	s.log.Info("ledger event",
		zap.Uint64("seq", ev.Seq),
		zap.String("kind", string(ev.Kind)),
		zap.String("subject", ev.Subject),
		zap.String("actor", ev.Actor.Hex()),
		zap.String("tx", ev.TxHash))
	if s.pub != nil {
		s.pub.Publish(ev)
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("validation: "+format+": %w", append(args, errs.ErrInvalidArgument)...)
}

// IssueDiploma validates input and mints in one ledger transaction.
// Validation rules:
// - recipient is not the zero address
// - documentHash is 32 bytes of hex, with or without 0x
// - cid, studentName and nim are not blank
func (s *LedgerServiceImpl) IssueDiploma(ctx context.Context, caller common.Address, in model.NewDiploma) (model.Diploma, model.LedgerEvent, error) {
	if in.Recipient == (common.Address{}) {
		return model.Diploma{}, model.LedgerEvent{}, invalid("zero recipient")
	}
	hash, err := pkgcrypto.NormalizeDigest(in.DocumentHash)
	if err != nil {
		return model.Diploma{}, model.LedgerEvent{}, fmt.Errorf("validation: document hash: %w", err)
	}
	in.DocumentHash = hash
	in.CID = strings.TrimSpace(in.CID)
	in.StudentName = strings.TrimSpace(in.StudentName)
	in.NIM = strings.TrimSpace(in.NIM)
	switch {
	case in.CID == "":
		return model.Diploma{}, model.LedgerEvent{}, invalid("empty cid")
	case in.StudentName == "":
		return model.Diploma{}, model.LedgerEvent{}, invalid("empty student name")
	case in.NIM == "":
		return model.Diploma{}, model.LedgerEvent{}, invalid("empty nim")
	}

	d, ev, err := s.repo.Mint(ctx, caller, in, s.now())
	if err != nil {
		return model.Diploma{}, model.LedgerEvent{}, err
	}
	s.publish(ev)
	return d, ev, nil
}

// RevokeDiploma validates the reason and revokes.
func (s *LedgerServiceImpl) RevokeDiploma(ctx context.Context, caller common.Address, id uint64, reason string) (model.LedgerEvent, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return model.LedgerEvent{}, invalid("empty revocation reason")
	}
	if n := utf8.RuneCountInString(reason); n > model.MaxReasonLen {
		return model.LedgerEvent{}, invalid("revocation reason too long (%d > %d)", n, model.MaxReasonLen)
	}
	ev, err := s.repo.Revoke(ctx, caller, id, reason, s.now())
	if err != nil {
		return model.LedgerEvent{}, err
	}
	s.publish(ev)
	return ev, nil
}

// TransferFrom moves ownership from caller to to.
func (s *LedgerServiceImpl) TransferFrom(ctx context.Context, caller, to common.Address, id uint64) (model.LedgerEvent, error) {
	if to == (common.Address{}) {
		return model.LedgerEvent{}, invalid("zero recipient")
	}
	ev, err := s.repo.Transfer(ctx, caller, to, id, s.now())
	if err != nil {
		return model.LedgerEvent{}, err
	}
	s.publish(ev)
	return ev, nil
}

func (s *LedgerServiceImpl) setIssuer(ctx context.Context, caller, account common.Address, grant bool) (bool, error) {
	if account == (common.Address{}) {
		return false, invalid("zero account")
	}
	changed, ev, err := s.repo.SetIssuer(ctx, caller, account, grant, s.now())
	if err != nil {
		return false, err
	}
	if ev != nil {
		s.publish(*ev)
	}
	return changed, nil
}

// AddIssuer grants the issuer role.
func (s *LedgerServiceImpl) AddIssuer(ctx context.Context, caller, account common.Address) (bool, error) {
	return s.setIssuer(ctx, caller, account, true)
}

// RemoveIssuer removes the issuer role. The admin role is unaffected.
func (s *LedgerServiceImpl) RemoveIssuer(ctx context.Context, caller, account common.Address) (bool, error) {
	return s.setIssuer(ctx, caller, account, false)
}

// VerifyDiploma reports whether the diploma exists and is active.
func (s *LedgerServiceImpl) VerifyDiploma(ctx context.Context, id uint64) (bool, bool, error) {
	d, err := s.repo.Get(ctx, id)
	if errors.Is(err, errs.ErrNotFound) {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}
	return true, d.IsActive, nil
}

// VerifyHash is false for unknown ids and malformed candidates.
func (s *LedgerServiceImpl) VerifyHash(ctx context.Context, id uint64, candidate string) (bool, error) {
	want, err := pkgcrypto.NormalizeDigest(candidate)
	if err != nil {
		return false, nil
	}
	d, err := s.repo.Get(ctx, id)
	if errors.Is(err, errs.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return d.DocumentHash == want, nil
}

// GetDiplomaDetails returns the record or ErrNotFound.
func (s *LedgerServiceImpl) GetDiplomaDetails(ctx context.Context, id uint64) (*model.Diploma, error) {
	return s.repo.Get(ctx, id)
}

// GetTotalDiplomas returns the mint counter.
func (s *LedgerServiceImpl) GetTotalDiplomas(ctx context.Context) (uint64, error) {
	return s.repo.Total(ctx)
}

func (s *LedgerServiceImpl) hasRole(ctx context.Context, account common.Address, want model.Role) (bool, error) {
	roles, err := s.repo.Roles(ctx, account)
	if err != nil {
		return false, err
	}
	for _, r := range roles {
		if r == want {
			return true, nil
		}
	}
	return false, nil
}

// IsIssuer reports issuer role membership.
func (s *LedgerServiceImpl) IsIssuer(ctx context.Context, account common.Address) (bool, error) {
	return s.hasRole(ctx, account, model.RoleIssuer)
}

// IsAdmin reports admin role membership.
func (s *LedgerServiceImpl) IsAdmin(ctx context.Context, account common.Address) (bool, error) {
	return s.hasRole(ctx, account, model.RoleAdmin)
}

// RevocationReason returns the reason, or ErrNotFound.
func (s *LedgerServiceImpl) RevocationReason(ctx context.Context, id uint64) (string, error) {
	d, err := s.repo.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return d.RevocationReason, nil
}

// TokenURI returns the document cid, or ErrNotFound.
func (s *LedgerServiceImpl) TokenURI(ctx context.Context, id uint64) (string, error) {
	d, err := s.repo.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return d.CID, nil
}

// ListEvents validates the status filter and pages events.
func (s *LedgerServiceImpl) ListEvents(ctx context.Context, f model.EventFilter) ([]model.LedgerEvent, error) {
	if f.Status == "" {
		f.Status = model.StatusAll
	}
	if _, ok := model.ParseStatus(string(f.Status)); !ok {
		return nil, invalid("unknown status %q", f.Status)
	}
	f.Query = strings.TrimSpace(f.Query)
	return s.repo.ListEvents(ctx, f)
}

// ListDiplomas validates the status filter and pages records.
func (s *LedgerServiceImpl) ListDiplomas(ctx context.Context, f model.DiplomaFilter) ([]model.Diploma, error) {
	if f.Status == "" {
		f.Status = model.StatusAll
	}
	if _, ok := model.ParseStatus(string(f.Status)); !ok {
		return nil, invalid("unknown status %q", f.Status)
	}
	f.Query = strings.TrimSpace(f.Query)
	return s.repo.ListDiplomas(ctx, f)
}

// Info returns ledger metadata.
func (s *LedgerServiceImpl) Info(ctx context.Context) (model.LedgerInfo, error) {
	return s.repo.Info(ctx)
}
