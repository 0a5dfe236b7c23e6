// Package issuance runs the client side of minting a diploma: hash,
// encrypt, upload, sign, then submit. The ledger write is always the last
// step, so a failure anywhere earlier leaves the ledger untouched.
package issuance

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/and161185/ijazah-ledger/internal/client/sharelink"
	"github.com/and161185/ijazah-ledger/internal/client/wallet"
	"github.com/and161185/ijazah-ledger/internal/crypto/doccrypto"
	"github.com/and161185/ijazah-ledger/internal/crypto/ethsig"
	"github.com/and161185/ijazah-ledger/internal/errs"
	"github.com/and161185/ijazah-ledger/internal/model"
)

// Step is a pipeline state.
type Step string

const (
	StepIdle          Step = "idle"
	StepHashing       Step = "hashing"
	StepKeyGeneration Step = "key-generation"
	StepEncrypting    Step = "encrypting"
	StepUploading     Step = "uploading"
	StepSigning       Step = "signing"
	StepSubmitting    Step = "submitting"
	StepDone          Step = "done"
	StepError         Step = "error"
)

// Uploader stores ciphertext.
type Uploader interface {
	Upload(ctx context.Context, data []byte, filename string) (string, error)
}

// Minter submits the mint.
type Minter interface {
	IssueDiploma(ctx context.Context, in model.NewDiploma) (uint64, model.LedgerEvent, error)
}

// Request is one diploma to issue.
type Request struct {
	Document    []byte
	Filename    string
	Recipient   common.Address
	StudentName string
	NIM         string
}

// Result is what a finished run hands back to the issuer.
type Result struct {
	DiplomaID    uint64
	Event        model.LedgerEvent
	DocumentHash string
	CID          string
	Key          []byte
	IV           []byte
	Signature    string
	VerifyURL    string
}

// Observer is told about every step change. Message is set on StepError.
type Observer func(step Step, message string)

// Pipeline runs at most one issuance at a time.
type Pipeline struct {
	store      Uploader
	ledger     Minter
	wallet     wallet.Wallet
	verifyBase string
	log        *zap.Logger
	now        func() time.Time

	running atomic.Bool

	mu        sync.Mutex
	step      Step
	message   string
	observers []Observer
}

// New wires a pipeline. verifyBase is the page the share link points to.
func New(store Uploader, ledger Minter, w wallet.Wallet, verifyBase string, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{
		store:      store,
		ledger:     ledger,
		wallet:     w,
		verifyBase: verifyBase,
		log:        log,
		now:        time.Now,
		step:       StepIdle,
	}
}

// Observe registers fn for step changes.
func (p *Pipeline) Observe(fn Observer) {
	p.mu.Lock()
	p.observers = append(p.observers, fn)
	p.mu.Unlock()
}

// State returns the current step and, after a failure, its message.
func (p *Pipeline) State() (Step, string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.step, p.message
}

func (p *Pipeline) enter(step Step, message string) {
	p.mu.Lock()
	p.step, p.message = step, message
	obs := append([]Observer(nil), p.observers...)
	p.mu.Unlock()
	for _, fn := range obs {
		fn(step, message)
	}
}

// signedMessage is the issuance metadata the issuer signs. Field order is
// part of the format.
type signedMessage struct {
	Hash        string `json:"hash"`
	StudentName string `json:"studentName"`
	NIM         string `json:"nim"`
	CID         string `json:"cid"`
	Timestamp   int64  `json:"timestamp"`
}

// Run executes the whole pipeline. A call made while another is in
// flight fails with errs.ErrInFlight and does not touch the state.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Result, error) {
	if !p.running.CompareAndSwap(false, true) {
		return nil, errs.ErrInFlight
	}
	defer p.running.Store(false)

	res, step, err := p.run(ctx, req)
	if err != nil {
		err = fmt.Errorf("%s: %w", step, err)
		p.enter(StepError, err.Error())
		p.log.Warn("issuance failed", zap.String("step", string(step)), zap.Error(err))
		return nil, err
	}
	p.enter(StepDone, "")
	p.log.Info("diploma issued",
		zap.Uint64("diploma_id", res.DiplomaID),
		zap.String("cid", res.CID),
		zap.String("tx", res.Event.TxHash))
	return res, nil
}

func (p *Pipeline) run(ctx context.Context, req Request) (*Result, Step, error) {
	p.enter(StepHashing, "")
	if len(req.Document) == 0 {
		return nil, StepHashing, fmt.Errorf("%w: empty document", errs.ErrInvalidArgument)
	}
	if req.Recipient == (common.Address{}) {
		return nil, StepHashing, fmt.Errorf("%w: recipient address required", errs.ErrInvalidArgument)
	}
	if strings.TrimSpace(req.StudentName) == "" || strings.TrimSpace(req.NIM) == "" {
		return nil, StepHashing, fmt.Errorf("%w: student name and NIM required", errs.ErrInvalidArgument)
	}
	res := &Result{DocumentHash: doccrypto.Hash(req.Document)}

	p.enter(StepKeyGeneration, "")
	var err error
	if res.Key, err = doccrypto.GenerateKey(); err != nil {
		return nil, StepKeyGeneration, err
	}
	if res.IV, err = doccrypto.GenerateIV(); err != nil {
		return nil, StepKeyGeneration, err
	}

	p.enter(StepEncrypting, "")
	ct, err := doccrypto.Encrypt(req.Document, res.Key, res.IV)
	if err != nil {
		return nil, StepEncrypting, err
	}

	p.enter(StepUploading, "")
	if err := ctx.Err(); err != nil {
		return nil, StepUploading, err
	}
	name := path.Base(req.Filename)
	if name == "." || name == "/" {
		name = "diploma.pdf"
	}
	if res.CID, err = p.store.Upload(ctx, ct, name); err != nil {
		return nil, StepUploading, err
	}

	p.enter(StepSigning, "")
	accounts := p.wallet.Accounts()
	if len(accounts) == 0 {
		return nil, StepSigning, fmt.Errorf("%w: no wallet account", errs.ErrUnauthorized)
	}
	msg, err := json.Marshal(signedMessage{
		Hash:        res.DocumentHash,
		StudentName: req.StudentName,
		NIM:         req.NIM,
		CID:         res.CID,
		Timestamp:   p.now().UnixMilli(),
	})
	if err != nil {
		return nil, StepSigning, err
	}
	sig, err := p.wallet.SignText(ctx, accounts[0], string(msg))
	if err != nil {
		return nil, StepSigning, err
	}
	res.Signature = ethsig.EncodeSignature(sig)

	p.enter(StepSubmitting, "")
	if err := ctx.Err(); err != nil {
		return nil, StepSubmitting, err
	}
	res.DiplomaID, res.Event, err = p.ledger.IssueDiploma(ctx, model.NewDiploma{
		Recipient:    req.Recipient,
		DocumentHash: res.DocumentHash,
		CID:          res.CID,
		Signature:    res.Signature,
		StudentName:  req.StudentName,
		NIM:          req.NIM,
	})
	if err != nil {
		return nil, StepSubmitting, err
	}
	res.VerifyURL = sharelink.Build(p.verifyBase, sharelink.Link{
		DiplomaID: res.DiplomaID,
		Key:       res.Key,
		IV:        res.IV,
		CID:       res.CID,
	})
	return res, StepSubmitting, nil
}
