package issuance

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/and161185/ijazah-ledger/internal/client/sharelink"
	"github.com/and161185/ijazah-ledger/internal/client/wallet"
	"github.com/and161185/ijazah-ledger/internal/crypto/doccrypto"
	"github.com/and161185/ijazah-ledger/internal/crypto/ethsig"
	"github.com/and161185/ijazah-ledger/internal/errs"
	"github.com/and161185/ijazah-ledger/internal/model"
)

var student = common.HexToAddress("0x00000000000000000000000000000000000000b2")

type fakeStore struct {
	mu    sync.Mutex
	data  map[string][]byte
	err   error
	block chan struct{}
}

func (f *fakeStore) Upload(ctx context.Context, data []byte, filename string) (string, error) {
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if f.err != nil {
		return "", f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.data == nil {
		f.data = map[string][]byte{}
	}
	cid := "local-" + filename
	f.data[cid] = data
	return cid, nil
}

type fakeMinter struct {
	mu    sync.Mutex
	calls []model.NewDiploma
	err   error
}

func (f *fakeMinter) IssueDiploma(_ context.Context, in model.NewDiploma) (uint64, model.LedgerEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, in)
	if f.err != nil {
		return 0, model.LedgerEvent{}, f.err
	}
	id := uint64(len(f.calls) - 1)
	return id, model.LedgerEvent{Seq: 1, TxHash: "0xtx", Kind: model.EventDiplomaIssued, Subject: "0"}, nil
}

func (f *fakeMinter) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func newKeyring(t *testing.T, confirm wallet.ConfirmFunc) (*wallet.Keyring, common.Address) {
	t.Helper()
	key, err := ethsig.GenerateKey()
	require.NoError(t, err)
	k := wallet.NewKeyring(confirm)
	return k, k.Add(key)
}

func request() Request {
	return Request{Document: []byte("%PDF-1.4 ijazah"), Filename: "../budi.pdf", Recipient: student, StudentName: "Budi", NIM: "1301"}
}

func TestRun_Success(t *testing.T) {
	store := &fakeStore{}
	minter := &fakeMinter{}
	w, issuer := newKeyring(t, nil)
	p := New(store, minter, w, "https://ijazah.example/verify", zaptest.NewLogger(t))
	p.now = func() time.Time { return time.UnixMilli(1700000000123) }

	var steps []Step
	p.Observe(func(s Step, _ string) { steps = append(steps, s) })

	res, err := p.Run(context.Background(), request())
	require.NoError(t, err)
	require.Equal(t, []Step{StepHashing, StepKeyGeneration, StepEncrypting, StepUploading, StepSigning, StepSubmitting, StepDone}, steps)
	step, msg := p.State()
	require.Equal(t, StepDone, step)
	require.Empty(t, msg)

	require.Equal(t, "local-budi.pdf", res.CID)
	require.Equal(t, doccrypto.Hash(request().Document), res.DocumentHash)

	// the stored artifact is ciphertext that decrypts with the link material
	ct := store.data[res.CID]
	require.NotEqual(t, request().Document, ct)
	pt, err := doccrypto.Decrypt(ct, res.Key, res.IV)
	require.NoError(t, err)
	require.Equal(t, request().Document, pt)

	require.Len(t, minter.calls, 1)
	got := minter.calls[0]
	require.Equal(t, student, got.Recipient)
	require.Equal(t, res.DocumentHash, got.DocumentHash)
	require.Equal(t, res.Signature, got.Signature)

	msgJSON, err := json.Marshal(signedMessage{Hash: res.DocumentHash, StudentName: "Budi", NIM: "1301", CID: res.CID, Timestamp: 1700000000123})
	require.NoError(t, err)
	require.Contains(t, string(msgJSON), `{"hash":"0x`)
	sig, err := ethsig.DecodeSignature(res.Signature)
	require.NoError(t, err)
	signer, err := ethsig.RecoverText(string(msgJSON), sig)
	require.NoError(t, err)
	require.Equal(t, issuer, signer)

	link, ok := sharelink.Parse(res.VerifyURL)
	require.True(t, ok)
	require.Equal(t, sharelink.Link{DiplomaID: res.DiplomaID, Key: res.Key, IV: res.IV, CID: res.CID}, link)
}

func TestRun_UploadFailureNeverMints(t *testing.T) {
	minter := &fakeMinter{}
	w, _ := newKeyring(t, nil)
	p := New(&fakeStore{err: errs.ErrStorageUnavailable}, minter, w, "https://x/verify", nil)

	_, err := p.Run(context.Background(), request())
	require.ErrorIs(t, err, errs.ErrStorageUnavailable)
	step, msg := p.State()
	require.Equal(t, StepError, step)
	require.Contains(t, msg, "uploading")
	require.Zero(t, minter.count())
}

func TestRun_DeclinedSignatureNeverMints(t *testing.T) {
	minter := &fakeMinter{}
	w, _ := newKeyring(t, func(context.Context, common.Address, string) (bool, error) { return false, nil })
	p := New(&fakeStore{}, minter, w, "https://x/verify", nil)

	_, err := p.Run(context.Background(), request())
	require.ErrorIs(t, err, errs.ErrCancelled)
	_, msg := p.State()
	require.Contains(t, msg, "signing")
	require.Zero(t, minter.count())
}

func TestRun_MintFailureReported(t *testing.T) {
	minter := &fakeMinter{err: errs.ErrUnauthorized}
	w, _ := newKeyring(t, nil)
	p := New(&fakeStore{}, minter, w, "https://x/verify", nil)

	_, err := p.Run(context.Background(), request())
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	_, msg := p.State()
	require.Contains(t, msg, "submitting")
}

func TestRun_InvalidInput(t *testing.T) {
	w, _ := newKeyring(t, nil)
	p := New(&fakeStore{}, &fakeMinter{}, w, "https://x/verify", nil)

	for name, mut := range map[string]func(*Request){
		"empty document": func(r *Request) { r.Document = nil },
		"no recipient":   func(r *Request) { r.Recipient = common.Address{} },
		"no nim":         func(r *Request) { r.NIM = " " },
	} {
		req := request()
		mut(&req)
		_, err := p.Run(context.Background(), req)
		require.ErrorIs(t, err, errs.ErrInvalidArgument, name)
		_, msg := p.State()
		require.Contains(t, msg, "hashing", name)
	}
}

func TestRun_NoAccount(t *testing.T) {
	minter := &fakeMinter{}
	p := New(&fakeStore{}, minter, wallet.NewKeyring(nil), "https://x/verify", nil)
	_, err := p.Run(context.Background(), request())
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	require.Zero(t, minter.count())
}

func TestRun_SingleFlight(t *testing.T) {
	store := &fakeStore{block: make(chan struct{})}
	minter := &fakeMinter{}
	w, _ := newKeyring(t, nil)
	p := New(store, minter, w, "https://x/verify", nil)

	uploading := make(chan struct{})
	var once sync.Once
	p.Observe(func(s Step, _ string) {
		if s == StepUploading {
			once.Do(func() { close(uploading) })
		}
	})

	done := make(chan error, 1)
	go func() {
		_, err := p.Run(context.Background(), request())
		done <- err
	}()
	<-uploading

	_, err := p.Run(context.Background(), request())
	require.True(t, errors.Is(err, errs.ErrInFlight))
	step, _ := p.State()
	require.Equal(t, StepUploading, step)

	close(store.block)
	require.NoError(t, <-done)
	require.Equal(t, 1, minter.count())

	// the guard is released once the first run finishes
	_, err = p.Run(context.Background(), request())
	require.NoError(t, err)
	require.Equal(t, 2, minter.count())
}
