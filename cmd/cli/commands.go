package main

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"

	pb "github.com/and161185/ijazah-ledger/gen/go/ijazah/v1"
	"github.com/and161185/ijazah-ledger/internal/client/issuance"
	"github.com/and161185/ijazah-ledger/internal/client/session"
	"github.com/and161185/ijazah-ledger/internal/client/verification"
	"github.com/and161185/ijazah-ledger/internal/convert"
	"github.com/and161185/ijazah-ledger/internal/crypto/ethsig"
	"github.com/and161185/ijazah-ledger/internal/crypto/keystore"
	"github.com/and161185/ijazah-ledger/internal/errs"
	"github.com/and161185/ijazah-ledger/internal/model"
)

var errUsage = errors.New("usage")

type command func(ctx context.Context, a *app, args []string) error

var commands = map[string]command{
	"wallet":   cmdWallet,
	"login":    cmdLogin,
	"logout":   cmdLogout,
	"whoami":   cmdWhoami,
	"mint":     cmdMint,
	"revoke":   cmdRevoke,
	"verify":   cmdVerify,
	"details":  cmdDetails,
	"ledger":   cmdLedger,
	"records":  cmdRecords,
	"issuer":   cmdIssuer,
	"transfer": cmdTransfer,
	"info":     cmdInfo,
}

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	badColor  = color.New(color.FgRed)
	stepColor = color.New(color.FgCyan)
)

func need(ok bool, msg string) error {
	if !ok {
		fmt.Fprintln(os.Stderr, msg)
		return errUsage
	}
	return nil
}

func parseAddr(flagName, s string) (common.Address, error) {
	addr, err := ethsig.ParseAddress(s)
	if err != nil {
		return common.Address{}, fmt.Errorf("-%s: %w", flagName, err)
	}
	return addr, nil
}

// ---- wallet ----

func cmdWallet(_ context.Context, a *app, args []string) error {
	if len(args) < 1 {
		return errUsage
	}
	switch args[0] {
	case "new", "import":
		fs := flag.NewFlagSet("wallet "+args[0], flag.ExitOnError)
		hexKey := fs.String("key", "", "private key (hex)")
		force := fs.Bool("force", false, "overwrite an existing keyfile")
		_ = fs.Parse(args[1:])
		return writeWallet(a, args[0] == "import", *hexKey, *force)
	case "show":
		f, err := keystore.Load(a.walletPath)
		if err != nil {
			return err
		}
		printJSON(a.out, map[string]string{"address": f.Address, "keyfile": a.walletPath})
		return nil
	}
	return errUsage
}

func writeWallet(a *app, imported bool, hexKey string, force bool) error {
	if imported && hexKey == "" {
		return need(false, "need -key")
	}
	if a.pass == "" {
		return errors.New("wallet passphrase required (-pass or $IJAZAH_PASSPHRASE)")
	}
	if _, err := os.Stat(a.walletPath); err == nil && !force {
		return fmt.Errorf("%w: keyfile %s (use -force)", errs.ErrAlreadyExists, a.walletPath)
	}

	var (
		key *ecdsa.PrivateKey
		err error
	)
	if imported {
		key, err = ethsig.KeyFromHex(hexKey)
	} else {
		key, err = ethsig.GenerateKey()
	}
	if err != nil {
		return err
	}
	f, err := keystore.Seal(key, []byte(a.pass))
	if err != nil {
		return err
	}
	if err := keystore.Save(a.walletPath, f); err != nil {
		return err
	}
	// a session of the previous key is useless now
	_ = session.NewFileStore(sessionPath()).Clear()
	printJSON(a.out, map[string]string{"address": f.Address, "keyfile": a.walletPath})
	return nil
}

// ---- session ----

type sessionView struct {
	Address         string    `json:"address"`
	IsIssuer        bool      `json:"isIssuer"`
	AuthenticatedAt time.Time `json:"authenticatedAt"`
	ExpiresAt       time.Time `json:"expiresAt"`
	Valid           bool      `json:"valid"`
}

func viewSession(s model.Session, now time.Time) sessionView {
	return sessionView{
		Address:         s.Address.Hex(),
		IsIssuer:        s.IsIssuer,
		AuthenticatedAt: s.AuthenticatedAt.UTC(),
		ExpiresAt:       s.ExpiresAt.UTC(),
		Valid:           s.ValidFor(s.Address, now),
	}
}

func cmdLogin(ctx context.Context, a *app, _ []string) error {
	m, err := a.session(ctx)
	if err != nil {
		return err
	}
	s, err := m.Authenticate(ctx)
	if err != nil {
		return err
	}
	okColor.Fprintf(os.Stderr, "authenticated as %s\n", s.Address.Hex())
	printJSON(a.out, viewSession(s, time.Now()))
	return nil
}

func cmdLogout(_ context.Context, a *app, _ []string) error {
	if err := session.NewFileStore(sessionPath()).Clear(); err != nil && !errors.Is(err, errs.ErrNotFound) {
		return err
	}
	fmt.Fprintln(a.out, "ok")
	return nil
}

func cmdWhoami(_ context.Context, a *app, _ []string) error {
	s, err := session.NewFileStore(sessionPath()).Load()
	if err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("%w: not logged in", errs.ErrUnauthorized)
	}
	printJSON(a.out, viewSession(*s, time.Now()))
	return nil
}

// ---- issuance ----

type mintView struct {
	DiplomaID    uint64 `json:"diplomaId"`
	CID          string `json:"cid"`
	DocumentHash string `json:"documentHash"`
	TxHash       string `json:"txHash"`
	Block        uint64 `json:"block"`
	VerifyURL    string `json:"verifyUrl"`
}

func cmdMint(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("mint", flag.ExitOnError)
	file := fs.String("file", "", "diploma document ('-'=stdin)")
	to := fs.String("to", "", "recipient address")
	name := fs.String("name", "", "student name")
	nim := fs.String("nim", "", "student number (NIM)")
	_ = fs.Parse(args)
	if err := need(*file != "" && *to != "" && *name != "" && *nim != "", "need -file -to -name -nim"); err != nil {
		return err
	}

	recipient, err := parseAddr("to", *to)
	if err != nil {
		return err
	}
	doc, err := readAll(*file)
	if err != nil {
		return err
	}
	l, err := a.ledger(ctx, true)
	if err != nil {
		return err
	}

	p := issuance.New(a.storage(), l, a.wallet, a.cfg.VerifyBase, a.log)
	p.Observe(func(step issuance.Step, msg string) {
		switch step {
		case issuance.StepError:
			badColor.Fprintf(os.Stderr, "  ✗ %s\n", msg)
		case issuance.StepDone:
			okColor.Fprintln(os.Stderr, "  ✓ done")
		default:
			stepColor.Fprintf(os.Stderr, "  … %s\n", step)
		}
	})
	res, err := p.Run(ctx, issuance.Request{
		Document:    doc,
		Filename:    filepath.Base(*file),
		Recipient:   recipient,
		StudentName: *name,
		NIM:         *nim,
	})
	if err != nil {
		return err
	}
	printJSON(a.out, mintView{
		DiplomaID:    res.DiplomaID,
		CID:          res.CID,
		DocumentHash: res.DocumentHash,
		TxHash:       res.Event.TxHash,
		Block:        res.Event.Seq,
		VerifyURL:    res.VerifyURL,
	})
	return nil
}

func cmdRevoke(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("revoke", flag.ExitOnError)
	id := fs.Int64("id", -1, "diploma id")
	reason := fs.String("reason", "", "revocation reason")
	_ = fs.Parse(args)
	if err := need(*id >= 0 && strings.TrimSpace(*reason) != "", "need -id and -reason"); err != nil {
		return err
	}

	l, err := a.ledger(ctx, true)
	if err != nil {
		return err
	}
	ev, err := l.RevokeDiploma(ctx, uint64(*id), *reason)
	if err != nil {
		return err
	}
	printJSON(a.out, convert.ToProtoEvent(ev))
	return nil
}

func cmdTransfer(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("transfer", flag.ExitOnError)
	id := fs.Int64("id", -1, "diploma id")
	to := fs.String("to", "", "new owner address")
	_ = fs.Parse(args)
	if err := need(*id >= 0 && *to != "", "need -id and -to"); err != nil {
		return err
	}
	dst, err := parseAddr("to", *to)
	if err != nil {
		return err
	}

	l, err := a.ledger(ctx, true)
	if err != nil {
		return err
	}
	ev, err := l.TransferFrom(ctx, dst, uint64(*id))
	if err != nil {
		return err
	}
	printJSON(a.out, convert.ToProtoEvent(ev))
	return nil
}

// ---- verification ----

type verifyView struct {
	Status           verification.Status `json:"status"`
	DiplomaID        uint64              `json:"diplomaId"`
	StudentName      string              `json:"studentName"`
	NIM              string              `json:"nim"`
	Owner            string              `json:"owner"`
	Issuer           string              `json:"issuer"`
	IssuedAt         time.Time           `json:"issuedAt"`
	DocumentHash     string              `json:"documentHash"`
	ComputedHash     string              `json:"computedHash,omitempty"`
	HashMatch        *bool               `json:"hashMatch,omitempty"`
	RevocationReason string              `json:"revocationReason,omitempty"`
}

func viewReport(r *verification.Report) verifyView {
	v := verifyView{
		Status:           r.Status,
		DiplomaID:        r.Diploma.ID,
		StudentName:      r.Diploma.StudentName,
		NIM:              r.Diploma.NIM,
		Owner:            r.Diploma.Owner.Hex(),
		Issuer:           r.Diploma.Issuer.Hex(),
		IssuedAt:         r.Diploma.IssuedAt.UTC(),
		DocumentHash:     r.Diploma.DocumentHash,
		ComputedHash:     r.ComputedHash,
		RevocationReason: r.RevocationReason,
	}
	if r.ComputedHash != "" {
		match := r.HashMatch
		v.HashMatch = &match
	}
	return v
}

func cmdVerify(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	link := fs.String("url", "", "verification link")
	id := fs.Int64("id", -1, "diploma id (ledger state only)")
	out := fs.String("out", "", "write the decrypted document here")
	_ = fs.Parse(args)
	if err := need((*link != "") != (*id >= 0), "need -url or -id"); err != nil {
		return err
	}

	l, err := a.ledger(ctx, false)
	if err != nil {
		return err
	}
	v := verification.New(l, a.storage())

	var rep *verification.Report
	if *link != "" {
		rep, err = v.VerifyURL(ctx, *link)
	} else {
		rep, err = v.VerifyByID(ctx, uint64(*id))
	}
	if err != nil {
		return err
	}
	if *out != "" && rep.Document != nil {
		if err := os.WriteFile(*out, rep.Document, 0o600); err != nil {
			return err
		}
	}
	printStatus(os.Stderr, rep)
	printJSON(a.out, viewReport(rep))
	return nil
}

func printStatus(w io.Writer, r *verification.Report) {
	switch r.Status {
	case verification.StatusValid:
		okColor.Fprintf(w, "✓ diploma #%d is valid\n", r.Diploma.ID)
	case verification.StatusRevoked:
		warnColor.Fprintf(w, "⚠ diploma #%d was revoked: %s\n", r.Diploma.ID, r.RevocationReason)
	default:
		badColor.Fprintf(w, "✗ diploma #%d does not match the ledger record\n", r.Diploma.ID)
	}
}

// ---- reads ----

func cmdDetails(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("details", flag.ExitOnError)
	id := fs.Int64("id", -1, "diploma id")
	_ = fs.Parse(args)
	if err := need(*id >= 0, "need -id"); err != nil {
		return err
	}
	l, err := a.ledger(ctx, false)
	if err != nil {
		return err
	}
	d, err := l.GetDiplomaDetails(ctx, uint64(*id))
	if err != nil {
		return err
	}
	printJSON(a.out, convert.ToProtoDiploma(*d))
	return nil
}

func parseStatusFlag(s string) (model.DiplomaStatus, error) {
	st, ok := model.ParseStatus(s)
	if !ok {
		return "", fmt.Errorf("%w: -status must be all, active or revoked", errs.ErrInvalidArgument)
	}
	return st, nil
}

func cmdLedger(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("ledger", flag.ExitOnError)
	st := fs.String("status", "all", "all|active|revoked")
	q := fs.String("q", "", "tx hash, id, block, NIM or name")
	offset := fs.Int("offset", 0, "offset")
	limit := fs.Int("limit", 20, "limit")
	_ = fs.Parse(args)

	status, err := parseStatusFlag(*st)
	if err != nil {
		return err
	}
	l, err := a.ledger(ctx, false)
	if err != nil {
		return err
	}
	evs, err := l.ListEvents(ctx, model.EventFilter{Status: status, Query: *q, Offset: *offset, Limit: *limit})
	if err != nil {
		return err
	}
	printJSON(a.out, &pb.ListEventsResponse{Events: convert.ToProtoEvents(evs)})
	return nil
}

func cmdRecords(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("records", flag.ExitOnError)
	owner := fs.String("owner", "", "owner address")
	st := fs.String("status", "all", "all|active|revoked")
	q := fs.String("q", "", "id, NIM, CID or name")
	offset := fs.Int("offset", 0, "offset")
	limit := fs.Int("limit", 20, "limit")
	_ = fs.Parse(args)

	f := model.DiplomaFilter{Query: *q, Offset: *offset, Limit: *limit}
	var err error
	if f.Status, err = parseStatusFlag(*st); err != nil {
		return err
	}
	if *owner != "" {
		if f.Owner, err = parseAddr("owner", *owner); err != nil {
			return err
		}
	}
	l, err := a.ledger(ctx, false)
	if err != nil {
		return err
	}
	ds, err := l.ListDiplomas(ctx, f)
	if err != nil {
		return err
	}
	printJSON(a.out, &pb.ListDiplomasResponse{Diplomas: convert.ToProtoDiplomas(ds)})
	return nil
}

func cmdIssuer(ctx context.Context, a *app, args []string) error {
	if len(args) < 1 {
		return errUsage
	}
	sub := args[0]
	fs := flag.NewFlagSet("issuer "+sub, flag.ExitOnError)
	addrFlag := fs.String("addr", "", "account address")
	_ = fs.Parse(args[1:])
	if err := need(*addrFlag != "", "need -addr"); err != nil {
		return err
	}
	account, err := parseAddr("addr", *addrFlag)
	if err != nil {
		return err
	}

	switch sub {
	case "check":
		l, err := a.ledger(ctx, false)
		if err != nil {
			return err
		}
		issuer, admin, err := l.IsIssuer(ctx, account)
		if err != nil {
			return err
		}
		printJSON(a.out, map[string]any{"address": account.Hex(), "isIssuer": issuer, "isAdmin": admin})
		return nil
	case "add", "remove":
		l, err := a.ledger(ctx, true)
		if err != nil {
			return err
		}
		change := l.AddIssuer
		if sub == "remove" {
			change = l.RemoveIssuer
		}
		changed, err := change(ctx, account)
		if err != nil {
			return err
		}
		printJSON(a.out, map[string]any{"address": account.Hex(), "changed": changed})
		return nil
	}
	return errUsage
}

func cmdInfo(ctx context.Context, a *app, _ []string) error {
	l, err := a.ledger(ctx, false)
	if err != nil {
		return err
	}
	info, err := l.Info(ctx)
	if err != nil {
		return err
	}
	printJSON(a.out, convert.ToProtoInfo(info))
	return nil
}
