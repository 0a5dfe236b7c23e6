package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/and161185/ijazah-ledger/internal/client/remote"
	"github.com/and161185/ijazah-ledger/internal/client/session"
	"github.com/and161185/ijazah-ledger/internal/client/wallet"
	"github.com/and161185/ijazah-ledger/internal/config"
	"github.com/and161185/ijazah-ledger/internal/deploy"
	"github.com/and161185/ijazah-ledger/internal/errs"
)

// app holds the lazily opened connection, wallet and session of one
// invocation.
type app struct {
	cfg        config.Client
	walletPath string
	pass       string
	yes        bool

	in  io.Reader
	out io.Writer
	log *zap.Logger

	linesOnce sync.Once
	lines     chan string

	cc     *grpc.ClientConn
	wallet *wallet.Keyring
	sess   *session.Manager
}

func newApp(cfg config.Client, walletPath, pass string, yes bool) *app {
	return &app{
		cfg:        cfg,
		walletPath: walletPath,
		pass:       pass,
		yes:        yes,
		in:         os.Stdin,
		out:        os.Stdout,
		log:        zap.NewNop(),
	}
}

func (a *app) close() {
	if a.sess != nil {
		a.sess.Close()
	}
	if a.cc != nil {
		_ = a.cc.Close()
	}
}

func (a *app) opts() remote.Options { return remote.Options{Timeout: a.cfg.Timeout} }

// endpoint returns the gRPC address and, when it came from the deployment
// record, that record.
func (a *app) endpoint() (string, *deploy.Record, error) {
	if a.cfg.Server != "" {
		return a.cfg.Server, nil, nil
	}
	f, err := deploy.Load(a.cfg.Deployments)
	if err != nil {
		return "", nil, err
	}
	rec, err := f.Lookup(a.cfg.Network)
	if err != nil {
		return "", nil, err
	}
	if rec.Endpoint == "" {
		return "", nil, fmt.Errorf("%w: deployment %s has no endpoint; pass -server", errs.ErrNotFound, rec.Network)
	}
	return rec.Endpoint, &rec, nil
}

// conn dials once and, for deployment-resolved endpoints, checks that the
// server runs the recorded ledger instance.
func (a *app) conn(ctx context.Context) (*grpc.ClientConn, error) {
	if a.cc != nil {
		return a.cc, nil
	}
	addr, rec, err := a.endpoint()
	if err != nil {
		return nil, err
	}
	cc, err := dial(ctx, addr, a.cfg)
	if err != nil {
		return nil, err
	}
	if rec != nil {
		info, err := remote.NewLedger(cc, nil, a.opts()).Info(ctx)
		if err != nil {
			_ = cc.Close()
			return nil, err
		}
		if err := checkDeployment(*rec, info.ContractAddress); err != nil {
			_ = cc.Close()
			return nil, err
		}
	}
	a.cc = cc
	return cc, nil
}

func checkDeployment(rec deploy.Record, got common.Address) error {
	if !strings.EqualFold(rec.Address, got.Hex()) {
		return fmt.Errorf("deployment mismatch on %s: record has %s, server runs %s", rec.Network, rec.Address, got.Hex())
	}
	return nil
}

// ledger returns a read-only client, or with authed a client whose writes
// carry the session token, logging in first when needed.
func (a *app) ledger(ctx context.Context, authed bool) (*remote.Ledger, error) {
	cc, err := a.conn(ctx)
	if err != nil {
		return nil, err
	}
	if !authed {
		return remote.NewLedger(cc, nil, a.opts()), nil
	}
	m, err := a.session(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := m.Current(); !ok {
		if _, err := m.Authenticate(ctx); err != nil {
			return nil, err
		}
	}
	return remote.NewLedger(cc, m, a.opts()), nil
}

func (a *app) storage() *remote.Storage {
	return remote.NewStorage(a.cfg.StorageURL, &http.Client{}, a.opts())
}

func (a *app) openWallet() (*wallet.Keyring, error) {
	if a.wallet != nil {
		return a.wallet, nil
	}
	if a.pass == "" {
		return nil, errors.New("wallet passphrase required (-pass or $IJAZAH_PASSPHRASE)")
	}
	confirm := a.confirm
	if a.yes {
		confirm = nil
	}
	w, err := wallet.OpenKeyfile(a.walletPath, []byte(a.pass), confirm)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, fmt.Errorf("%w (run `ijz wallet new`)", err)
		}
		return nil, err
	}
	a.wallet = w
	return w, nil
}

func (a *app) session(ctx context.Context) (*session.Manager, error) {
	if a.sess != nil {
		return a.sess, nil
	}
	w, err := a.openWallet()
	if err != nil {
		return nil, err
	}
	cc, err := a.conn(ctx)
	if err != nil {
		return nil, err
	}
	a.sess = session.NewManager(w, remote.NewAuth(cc, a.opts()), session.NewFileStore(sessionPath()), a.log)
	return a.sess, nil
}

// confirm shows the message to sign and waits for y/n.
func (a *app) confirm(ctx context.Context, account common.Address, msg string) (bool, error) {
	prompt := color.New(color.FgYellow)
	prompt.Fprintf(os.Stderr, "\nSignature request for %s:\n", account.Hex())
	fmt.Fprintln(os.Stderr, msg)
	prompt.Fprint(os.Stderr, "\nSign? (y/n): ")

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case s, ok := <-a.inputLines():
		if !ok {
			return false, nil
		}
		s = strings.ToLower(strings.TrimSpace(s))
		return s == "y" || s == "yes", nil
	}
}

// inputLines starts the single reader of a.in; every prompt shares its
// buffer so answers typed ahead are not lost.
func (a *app) inputLines() <-chan string {
	a.linesOnce.Do(func() {
		a.lines = make(chan string)
		r := bufio.NewReader(a.in)
		go func() {
			defer close(a.lines)
			for {
				s, err := r.ReadString('\n')
				if s != "" {
					a.lines <- s
				}
				if err != nil {
					return
				}
			}
		}()
	})
	return a.lines
}
