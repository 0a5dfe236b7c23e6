package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/and161185/ijazah-ledger/internal/errs"
	"github.com/and161185/ijazah-ledger/internal/model"
	"github.com/and161185/ijazah-ledger/internal/repository"
)

var (
	admin   = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	issuer  = common.HexToAddress("0x00000000000000000000000000000000000000b2")
	student = common.HexToAddress("0x00000000000000000000000000000000000000d3")
	nobody  = common.HexToAddress("0x00000000000000000000000000000000000000e4")
	docHash = "0x" + strings.Repeat("ab", 32)
)

// fakeLedger is an in-memory LedgerRepository with the same capability rules.
type fakeLedger struct {
	info     *model.LedgerInfo
	diplomas []model.Diploma
	roles    map[common.Address]map[model.Role]bool
	seq      uint64
	getErr   error
}

var _ repository.LedgerRepository = (*fakeLedger)(nil)

func newFakeLedger() *fakeLedger {
	return &fakeLedger{roles: map[common.Address]map[model.Role]bool{
		admin:  {model.RoleAdmin: true, model.RoleIssuer: true},
		issuer: {model.RoleIssuer: true},
	}}
}

func (f *fakeLedger) caps(a common.Address) model.Capability {
	var rs []model.Role
	for r := range f.roles[a] {
		rs = append(rs, r)
	}
	return model.CapabilitiesOf(rs...)
}

func (f *fakeLedger) event(kind model.EventKind, subject string, actor common.Address, now time.Time) model.LedgerEvent {
	f.seq++
	return model.LedgerEvent{Seq: f.seq, TxHash: "0x" + strconv.FormatUint(f.seq, 16), Kind: kind, Subject: subject, Actor: actor, CreatedAt: now}
}

func (f *fakeLedger) Bootstrap(_ context.Context, g model.LedgerInfo) (model.LedgerInfo, error) {
	if f.info == nil {
		f.info = &g
	}
	return *f.info, nil
}

func (f *fakeLedger) Info(context.Context) (model.LedgerInfo, error) {
	if f.info == nil {
		return model.LedgerInfo{}, errors.New("ledger not initialized")
	}
	i := *f.info
	i.TotalDiplomas = uint64(len(f.diplomas))
	return i, nil
}

func (f *fakeLedger) Mint(_ context.Context, caller common.Address, in model.NewDiploma, now time.Time) (model.Diploma, model.LedgerEvent, error) {
	if !f.caps(caller).Has(model.CanMint) {
		return model.Diploma{}, model.LedgerEvent{}, errs.ErrUnauthorized
	}
	d := model.Diploma{
		ID: uint64(len(f.diplomas)), Owner: in.Recipient, Issuer: caller, DocumentHash: in.DocumentHash, CID: in.CID,
		Signature: in.Signature, StudentName: in.StudentName, NIM: in.NIM, IssuedAt: now, IsActive: true,
	}
	f.diplomas = append(f.diplomas, d)
	ev := f.event(model.EventDiplomaIssued, strconv.FormatUint(d.ID, 10), caller, now)
	ev.Status = model.StatusActive
	return d, ev, nil
}

func (f *fakeLedger) Revoke(_ context.Context, caller common.Address, id uint64, reason string, now time.Time) (model.LedgerEvent, error) {
	if !f.caps(caller).Has(model.CanRevoke) {
		return model.LedgerEvent{}, errs.ErrUnauthorized
	}
	if id >= uint64(len(f.diplomas)) {
		return model.LedgerEvent{}, errs.ErrNotFound
	}
	d := &f.diplomas[id]
	if !d.IsActive {
		return model.LedgerEvent{}, errs.ErrAlreadyRevoked
	}
	d.IsActive, d.RevocationReason, d.RevokedAt, d.RevokedBy = false, reason, now, caller
	ev := f.event(model.EventDiplomaRevoked, strconv.FormatUint(id, 10), caller, now)
	ev.Status = model.StatusRevoked
	return ev, nil
}

func (f *fakeLedger) Transfer(_ context.Context, caller, to common.Address, id uint64, now time.Time) (model.LedgerEvent, error) {
	if id >= uint64(len(f.diplomas)) {
		return model.LedgerEvent{}, errs.ErrNotFound
	}
	d := &f.diplomas[id]
	if d.Owner != caller {
		return model.LedgerEvent{}, errs.ErrUnauthorized
	}
	d.Owner = to
	ev := f.event(model.EventTransfer, strconv.FormatUint(id, 10), caller, now)
	ev.Status = d.Status()
	return ev, nil
}

func (f *fakeLedger) SetIssuer(_ context.Context, caller, account common.Address, grant bool, now time.Time) (bool, *model.LedgerEvent, error) {
	if !f.caps(caller).Has(model.CanManageRoles) {
		return false, nil, errs.ErrUnauthorized
	}
	if f.roles[account] == nil {
		f.roles[account] = map[model.Role]bool{}
	}
	if f.roles[account][model.RoleIssuer] == grant {
		return false, nil, nil
	}
	f.roles[account][model.RoleIssuer] = grant
	kind := model.EventIssuerAdded
	if !grant {
		kind = model.EventIssuerRemoved
	}
	ev := f.event(kind, account.Hex(), caller, now)
	return true, &ev, nil
}

func (f *fakeLedger) Get(_ context.Context, id uint64) (*model.Diploma, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if id >= uint64(len(f.diplomas)) {
		return nil, errs.ErrNotFound
	}
	d := f.diplomas[id]
	return &d, nil
}

func (f *fakeLedger) Total(context.Context) (uint64, error) { return uint64(len(f.diplomas)), nil }

func (f *fakeLedger) Roles(_ context.Context, a common.Address) ([]model.Role, error) {
	var out []model.Role
	for _, r := range []model.Role{model.RoleAdmin, model.RoleIssuer} {
		if f.roles[a][r] {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeLedger) ListEvents(context.Context, model.EventFilter) ([]model.LedgerEvent, error) {
	return nil, nil
}

func (f *fakeLedger) ListDiplomas(_ context.Context, flt model.DiplomaFilter) ([]model.Diploma, error) {
	var out []model.Diploma
	for i := len(f.diplomas) - 1; i >= 0; i-- {
		d := f.diplomas[i]
		if flt.Owner != (common.Address{}) && d.Owner != flt.Owner {
			continue
		}
		if flt.Status != model.StatusAll && d.Status() != flt.Status {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

type recordingPublisher struct{ got []model.LedgerEvent }

func (p *recordingPublisher) Publish(ev model.LedgerEvent) { p.got = append(p.got, ev) }

func newLedger(t *testing.T) (*LedgerServiceImpl, *fakeLedger, *recordingPublisher) {
	t.Helper()
	repo := newFakeLedger()
	pub := &recordingPublisher{}
	return NewLedgerService(repo, pub, zaptest.NewLogger(t)), repo, pub
}

func validDiploma() model.NewDiploma {
	return model.NewDiploma{
		Recipient: student, DocumentHash: docHash, CID: "bafyabc", Signature: "0xsig",
		StudentName: "Siti Aminah", NIM: "1301200001",
	}
}

func TestLedger_IssueDiploma_Validation(t *testing.T) {
	t.Parallel()
	s, _, pub := newLedger(t)
	ctx := context.Background()

	cases := map[string]func(*model.NewDiploma){
		"zero recipient": func(d *model.NewDiploma) { d.Recipient = common.Address{} },
		"short hash":     func(d *model.NewDiploma) { d.DocumentHash = "0xabcd" },
		"non hex hash":   func(d *model.NewDiploma) { d.DocumentHash = strings.Repeat("zz", 32) },
		"empty cid":      func(d *model.NewDiploma) { d.CID = "  " },
		"empty name":     func(d *model.NewDiploma) { d.StudentName = "" },
		"empty nim":      func(d *model.NewDiploma) { d.NIM = "" },
	}
	for name, mut := range cases {
		in := validDiploma()
		mut(&in)
		_, _, err := s.IssueDiploma(ctx, issuer, in)
		require.ErrorIs(t, err, errs.ErrInvalidArgument, name)
	}
	require.Empty(t, pub.got)
}

func TestLedger_IssueDiploma_SequentialIDsAndNormalizedHash(t *testing.T) {
	t.Parallel()
	s, _, pub := newLedger(t)
	ctx := context.Background()

	in := validDiploma()
	in.DocumentHash = strings.ToUpper(strings.Repeat("ab", 32))
	d0, ev, err := s.IssueDiploma(ctx, issuer, in)
	require.NoError(t, err)
	require.Equal(t, uint64(0), d0.ID)
	require.Equal(t, docHash, d0.DocumentHash)
	require.Equal(t, model.EventDiplomaIssued, ev.Kind)

	d1, _, err := s.IssueDiploma(ctx, admin, validDiploma())
	require.NoError(t, err)
	require.Equal(t, uint64(1), d1.ID)

	total, err := s.GetTotalDiplomas(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(2), total)
	require.Len(t, pub.got, 2)

	_, _, err = s.IssueDiploma(ctx, nobody, validDiploma())
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	require.Len(t, pub.got, 2)
}

func TestLedger_RevokeDiploma(t *testing.T) {
	t.Parallel()
	s, _, pub := newLedger(t)
	ctx := context.Background()
	_, _, err := s.IssueDiploma(ctx, issuer, validDiploma())
	require.NoError(t, err)

	_, err = s.RevokeDiploma(ctx, issuer, 0, "   ")
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
	_, err = s.RevokeDiploma(ctx, issuer, 0, strings.Repeat("é", model.MaxReasonLen+1))
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
	_, err = s.RevokeDiploma(ctx, nobody, 0, "fraud")
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	_, err = s.RevokeDiploma(ctx, issuer, 7, "fraud")
	require.ErrorIs(t, err, errs.ErrNotFound)

	reason := strings.Repeat("é", model.MaxReasonLen)
	ev, err := s.RevokeDiploma(ctx, issuer, 0, "  "+reason+" ")
	require.NoError(t, err)
	require.Equal(t, model.EventDiplomaRevoked, ev.Kind)

	_, err = s.RevokeDiploma(ctx, issuer, 0, "again")
	require.ErrorIs(t, err, errs.ErrAlreadyRevoked)

	got, err := s.RevocationReason(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, reason, got)

	exists, active, err := s.VerifyDiploma(ctx, 0)
	require.NoError(t, err)
	require.True(t, exists)
	require.False(t, active)
	require.Len(t, pub.got, 2)
}

func TestLedger_ReadsOnUnknownID(t *testing.T) {
	t.Parallel()
	s, repo, _ := newLedger(t)
	ctx := context.Background()

	exists, active, err := s.VerifyDiploma(ctx, 3)
	require.NoError(t, err)
	require.False(t, exists)
	require.False(t, active)

	ok, err := s.VerifyHash(ctx, 3, docHash)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = s.GetDiplomaDetails(ctx, 3)
	require.ErrorIs(t, err, errs.ErrNotFound)
	_, err = s.RevocationReason(ctx, 3)
	require.ErrorIs(t, err, errs.ErrNotFound)
	_, err = s.TokenURI(ctx, 3)
	require.ErrorIs(t, err, errs.ErrNotFound)

	repo.getErr = errors.New("db down")
	_, _, err = s.VerifyDiploma(ctx, 3)
	require.Error(t, err)
}

func TestLedger_VerifyHash(t *testing.T) {
	t.Parallel()
	s, _, _ := newLedger(t)
	ctx := context.Background()
	_, _, err := s.IssueDiploma(ctx, issuer, validDiploma())
	require.NoError(t, err)

	for _, cand := range []string{docHash, strings.TrimPrefix(docHash, "0x"), strings.ToUpper(docHash[2:]), "0X" + docHash[2:]} {
		ok, err := s.VerifyHash(ctx, 0, cand)
		require.NoError(t, err)
		require.True(t, ok, cand)
	}
	for _, cand := range []string{"0x" + strings.Repeat("cd", 32), "garbage", ""} {
		ok, err := s.VerifyHash(ctx, 0, cand)
		require.NoError(t, err)
		require.False(t, ok, cand)
	}

	uri, err := s.TokenURI(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, "bafyabc", uri)
}

func TestLedger_TransferKeepsIssuerAndStatus(t *testing.T) {
	t.Parallel()
	s, _, _ := newLedger(t)
	ctx := context.Background()
	_, _, err := s.IssueDiploma(ctx, issuer, validDiploma())
	require.NoError(t, err)

	_, err = s.TransferFrom(ctx, student, common.Address{}, 0)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
	_, err = s.TransferFrom(ctx, issuer, nobody, 0)
	require.ErrorIs(t, err, errs.ErrUnauthorized)

	_, err = s.TransferFrom(ctx, student, nobody, 0)
	require.NoError(t, err)
	d, err := s.GetDiplomaDetails(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, nobody, d.Owner)
	require.Equal(t, issuer, d.Issuer)
	require.True(t, d.IsActive)

	owned, err := s.ListDiplomas(ctx, model.DiplomaFilter{Owner: nobody})
	require.NoError(t, err)
	require.Len(t, owned, 1)
}

func TestLedger_IssuerManagement(t *testing.T) {
	t.Parallel()
	s, _, pub := newLedger(t)
	ctx := context.Background()

	_, err := s.AddIssuer(ctx, issuer, nobody)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	_, err = s.AddIssuer(ctx, admin, common.Address{})
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	changed, err := s.AddIssuer(ctx, admin, nobody)
	require.NoError(t, err)
	require.True(t, changed)
	changed, err = s.AddIssuer(ctx, admin, nobody)
	require.NoError(t, err)
	require.False(t, changed)
	require.Len(t, pub.got, 1)

	ok, err := s.IsIssuer(ctx, nobody)
	require.NoError(t, err)
	require.True(t, ok)

	changed, err = s.RemoveIssuer(ctx, admin, nobody)
	require.NoError(t, err)
	require.True(t, changed)
	ok, err = s.IsIssuer(ctx, nobody)
	require.NoError(t, err)
	require.False(t, ok)

	// removing the admin's issuer role keeps the admin role
	_, err = s.RemoveIssuer(ctx, admin, admin)
	require.NoError(t, err)
	isAdmin, err := s.IsAdmin(ctx, admin)
	require.NoError(t, err)
	require.True(t, isAdmin)
	_, _, err = s.IssueDiploma(ctx, admin, validDiploma())
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestLedger_ListFiltersRejectUnknownStatus(t *testing.T) {
	t.Parallel()
	s, _, _ := newLedger(t)
	ctx := context.Background()

	_, err := s.ListEvents(ctx, model.EventFilter{Status: "pending"})
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
	_, err = s.ListDiplomas(ctx, model.DiplomaFilter{Status: "pending"})
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
	_, err = s.ListEvents(ctx, model.EventFilter{})
	require.NoError(t, err)
}

func TestLedger_Bootstrap(t *testing.T) {
	t.Parallel()
	s, _, _ := newLedger(t)
	ctx := context.Background()

	info, err := s.Bootstrap(ctx, admin, 11155111, "sepolia")
	require.NoError(t, err)
	require.Equal(t, admin, info.Admin)
	require.NotEqual(t, common.Address{}, info.ContractAddress)

	again, err := s.Bootstrap(ctx, admin, 11155111, "sepolia")
	require.NoError(t, err)
	require.Equal(t, info.ContractAddress, again.ContractAddress)

	_, err = s.Bootstrap(ctx, nobody, 11155111, "sepolia")
	require.Error(t, err)
	_, err = s.Bootstrap(ctx, common.Address{}, 1, "x")
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}
