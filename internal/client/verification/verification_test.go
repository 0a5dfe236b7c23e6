package verification

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/and161185/ijazah-ledger/internal/client/sharelink"
	"github.com/and161185/ijazah-ledger/internal/crypto/doccrypto"
	"github.com/and161185/ijazah-ledger/internal/errs"
	"github.com/and161185/ijazah-ledger/internal/model"
)

type fakeLedger struct {
	diplomas map[uint64]model.Diploma
	err      error
}

func (f *fakeLedger) VerifyDiploma(_ context.Context, id uint64) (bool, bool, error) {
	if f.err != nil {
		return false, false, f.err
	}
	d, ok := f.diplomas[id]
	return ok, ok && d.IsActive, nil
}

func (f *fakeLedger) GetDiplomaDetails(_ context.Context, id uint64) (*model.Diploma, error) {
	d, ok := f.diplomas[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &d, nil
}

func (f *fakeLedger) VerifyHash(_ context.Context, id uint64, h string) (bool, error) {
	d, ok := f.diplomas[id]
	return ok && d.DocumentHash == h, nil
}

func (f *fakeLedger) RevocationReason(_ context.Context, id uint64) (string, error) {
	return f.diplomas[id].RevocationReason, nil
}

type fakeStore map[string][]byte

func (f fakeStore) Download(_ context.Context, cid string) ([]byte, error) {
	b, ok := f[cid]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return b, nil
}

type fixture struct {
	v    *Verifier
	l    *fakeLedger
	link sharelink.Link
	doc  []byte
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	doc := []byte("%PDF-1.4 ijazah budi")
	key, err := doccrypto.GenerateKey()
	require.NoError(t, err)
	iv, err := doccrypto.GenerateIV()
	require.NoError(t, err)
	ct, err := doccrypto.Encrypt(doc, key, iv)
	require.NoError(t, err)

	l := &fakeLedger{diplomas: map[uint64]model.Diploma{
		0: {ID: 0, Owner: common.HexToAddress("0xb2"), DocumentHash: doccrypto.Hash(doc), CID: "local-1", StudentName: "Budi", IsActive: true},
	}}
	store := fakeStore{"local-1": ct}
	return &fixture{
		v:    New(l, store),
		l:    l,
		link: sharelink.Link{DiplomaID: 0, Key: key, IV: iv, CID: "local-1"},
		doc:  doc,
	}
}

func TestVerifyLink_Valid(t *testing.T) {
	f := newFixture(t)
	rep, err := f.v.VerifyURL(context.Background(), sharelink.Build("https://x/verify", f.link))
	require.NoError(t, err)
	require.Equal(t, StatusValid, rep.Status)
	require.True(t, rep.HashMatch)
	require.Equal(t, f.doc, rep.Document)
	require.Equal(t, "Budi", rep.Diploma.StudentName)
}

func TestVerifyLink_Revoked(t *testing.T) {
	f := newFixture(t)
	d := f.l.diplomas[0]
	d.IsActive, d.RevocationReason = false, "typo in NIM"
	f.l.diplomas[0] = d

	rep, err := f.v.VerifyLink(context.Background(), f.link)
	require.NoError(t, err)
	require.Equal(t, StatusRevoked, rep.Status)
	require.Equal(t, "typo in NIM", rep.RevocationReason)
	require.True(t, rep.HashMatch)
}

func TestVerifyLink_HashMismatch(t *testing.T) {
	f := newFixture(t)
	d := f.l.diplomas[0]
	d.DocumentHash = doccrypto.Hash([]byte("another document"))
	f.l.diplomas[0] = d

	rep, err := f.v.VerifyLink(context.Background(), f.link)
	require.NoError(t, err)
	require.Equal(t, StatusInvalid, rep.Status)
	require.False(t, rep.HashMatch)
}

func TestVerifyLink_Failures(t *testing.T) {
	f := newFixture(t)

	link := f.link
	link.DiplomaID = 9
	_, err := f.v.VerifyLink(context.Background(), link)
	require.ErrorIs(t, err, errs.ErrNotFound)

	link = f.link
	link.Key = link.Key[:16]
	_, err = f.v.VerifyLink(context.Background(), link)
	require.ErrorIs(t, err, errs.ErrDecrypt)

	link = f.link
	link.CID = "local-missing"
	_, err = f.v.VerifyLink(context.Background(), link)
	require.ErrorIs(t, err, errs.ErrNotFound)

	_, err = f.v.VerifyURL(context.Background(), "https://x/verify#diplomaId=0&key=abc")
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	f.l.err = errs.ErrStorageUnavailable
	_, err = f.v.VerifyLink(context.Background(), f.link)
	require.ErrorIs(t, err, errs.ErrStorageUnavailable)
}

func TestVerifyByID(t *testing.T) {
	f := newFixture(t)
	rep, err := f.v.VerifyByID(context.Background(), 0)
	require.NoError(t, err)
	require.Equal(t, StatusValid, rep.Status)
	require.Empty(t, rep.ComputedHash)
	require.Nil(t, rep.Document)

	_, err = f.v.VerifyByID(context.Background(), 3)
	require.ErrorIs(t, err, errs.ErrNotFound)
}
