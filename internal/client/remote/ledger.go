package remote

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/emptypb"

	pb "github.com/and161185/ijazah-ledger/gen/go/ijazah/v1"
	"github.com/and161185/ijazah-ledger/internal/convert"
	"github.com/and161185/ijazah-ledger/internal/errs"
	"github.com/and161185/ijazah-ledger/internal/model"
)

// TokenSource supplies the bearer token for write calls.
type TokenSource interface {
	Token() (string, error)
}

// Ledger is the client side of ijazah.pb.Ledger.
type Ledger struct {
	c      pb.LedgerClient
	tokens TokenSource
	opts   Options
}

// NewLedger wraps cc. tokens may be nil for read-only use.
func NewLedger(cc grpc.ClientConnInterface, tokens TokenSource, opts Options) *Ledger {
	return &Ledger{c: pb.NewLedgerClient(cc), tokens: tokens, opts: opts.withDefaults()}
}

func ledgerErr(err error) error { return fromStatus(err, errs.ErrUnauthorized) }

func (l *Ledger) authed(ctx context.Context) (context.Context, error) {
	if l.tokens == nil {
		return nil, fmt.Errorf("%w: login required", errs.ErrUnauthorized)
	}
	tok, err := l.tokens.Token()
	if err != nil {
		return nil, err
	}
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+tok), nil
}

func (l *Ledger) write(ctx context.Context, fn func(context.Context) error) error {
	actx, err := l.authed(ctx)
	if err != nil {
		return err
	}
	return ledgerErr(l.opts.once(actx, fn))
}

func (l *Ledger) IssueDiploma(ctx context.Context, in model.NewDiploma) (uint64, model.LedgerEvent, error) {
	var resp *pb.IssueDiplomaResponse
	err := l.write(ctx, func(ctx context.Context) (err error) {
		resp, err = l.c.IssueDiploma(ctx, convert.ToProtoIssueRequest(in))
		return err
	})
	if err != nil {
		return 0, model.LedgerEvent{}, err
	}
	ev, err := convert.FromProtoEvent(resp.GetEvent())
	return resp.GetDiplomaId(), ev, err
}

func (l *Ledger) RevokeDiploma(ctx context.Context, id uint64, reason string) (model.LedgerEvent, error) {
	var resp *pb.EventResponse
	err := l.write(ctx, func(ctx context.Context) (err error) {
		resp, err = l.c.RevokeDiploma(ctx, &pb.RevokeDiplomaRequest{DiplomaId: id, Reason: reason})
		return err
	})
	if err != nil {
		return model.LedgerEvent{}, err
	}
	return convert.FromProtoEvent(resp.GetEvent())
}

func (l *Ledger) TransferFrom(ctx context.Context, to common.Address, id uint64) (model.LedgerEvent, error) {
	var resp *pb.EventResponse
	err := l.write(ctx, func(ctx context.Context) (err error) {
		resp, err = l.c.TransferFrom(ctx, &pb.TransferRequest{To: to.Hex(), DiplomaId: id})
		return err
	})
	if err != nil {
		return model.LedgerEvent{}, err
	}
	return convert.FromProtoEvent(resp.GetEvent())
}

func (l *Ledger) AddIssuer(ctx context.Context, account common.Address) (bool, error) {
	var resp *pb.RoleChangeResponse
	err := l.write(ctx, func(ctx context.Context) (err error) {
		resp, err = l.c.AddIssuer(ctx, &pb.AddressRequest{Address: account.Hex()})
		return err
	})
	if err != nil {
		return false, err
	}
	return resp.GetChanged(), nil
}

func (l *Ledger) RemoveIssuer(ctx context.Context, account common.Address) (bool, error) {
	var resp *pb.RoleChangeResponse
	err := l.write(ctx, func(ctx context.Context) (err error) {
		resp, err = l.c.RemoveIssuer(ctx, &pb.AddressRequest{Address: account.Hex()})
		return err
	})
	if err != nil {
		return false, err
	}
	return resp.GetChanged(), nil
}

// VerifyDiploma is retried once on transport failure.
func (l *Ledger) VerifyDiploma(ctx context.Context, id uint64) (exists, active bool, err error) {
	var resp *pb.VerifyDiplomaResponse
	err = l.opts.read(ctx, func(ctx context.Context) (err error) {
		resp, err = l.c.VerifyDiploma(ctx, &pb.DiplomaIdRequest{DiplomaId: id})
		return err
	})
	if err != nil {
		return false, false, ledgerErr(err)
	}
	return resp.GetExists(), resp.GetIsActive(), nil
}

// VerifyHash is retried once on transport failure.
func (l *Ledger) VerifyHash(ctx context.Context, id uint64, candidate string) (bool, error) {
	var resp *pb.VerifyHashResponse
	err := l.opts.read(ctx, func(ctx context.Context) (err error) {
		resp, err = l.c.VerifyHash(ctx, &pb.VerifyHashRequest{DiplomaId: id, DocumentHash: candidate})
		return err
	})
	if err != nil {
		return false, ledgerErr(err)
	}
	return resp.GetMatch(), nil
}

// GetDiplomaDetails is retried once on transport failure.
func (l *Ledger) GetDiplomaDetails(ctx context.Context, id uint64) (*model.Diploma, error) {
	var resp *pb.DiplomaResponse
	err := l.opts.read(ctx, func(ctx context.Context) (err error) {
		resp, err = l.c.GetDiplomaDetails(ctx, &pb.DiplomaIdRequest{DiplomaId: id})
		return err
	})
	if err != nil {
		return nil, ledgerErr(err)
	}
	d, err := convert.FromProtoDiploma(resp.GetDiploma())
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// RevocationReason is retried once on transport failure.
func (l *Ledger) RevocationReason(ctx context.Context, id uint64) (string, error) {
	var resp *pb.RevocationReasonResponse
	err := l.opts.read(ctx, func(ctx context.Context) (err error) {
		resp, err = l.c.RevocationReasons(ctx, &pb.DiplomaIdRequest{DiplomaId: id})
		return err
	})
	if err != nil {
		return "", ledgerErr(err)
	}
	return resp.GetReason(), nil
}

func (l *Ledger) GetTotalDiplomas(ctx context.Context) (uint64, error) {
	var resp *pb.TotalResponse
	err := l.opts.once(ctx, func(ctx context.Context) (err error) {
		resp, err = l.c.GetTotalDiplomas(ctx, &emptypb.Empty{})
		return err
	})
	if err != nil {
		return 0, ledgerErr(err)
	}
	return resp.GetTotal(), nil
}

func (l *Ledger) IsIssuer(ctx context.Context, account common.Address) (issuer, admin bool, err error) {
	var resp *pb.IsIssuerResponse
	err = l.opts.once(ctx, func(ctx context.Context) (err error) {
		resp, err = l.c.IsIssuer(ctx, &pb.AddressRequest{Address: account.Hex()})
		return err
	})
	if err != nil {
		return false, false, ledgerErr(err)
	}
	return resp.GetIsIssuer(), resp.GetIsAdmin(), nil
}

func (l *Ledger) TokenURI(ctx context.Context, id uint64) (string, error) {
	var resp *pb.TokenUriResponse
	err := l.opts.once(ctx, func(ctx context.Context) (err error) {
		resp, err = l.c.TokenURI(ctx, &pb.DiplomaIdRequest{DiplomaId: id})
		return err
	})
	if err != nil {
		return "", ledgerErr(err)
	}
	return resp.GetUri(), nil
}

func (l *Ledger) ListEvents(ctx context.Context, f model.EventFilter) ([]model.LedgerEvent, error) {
	var resp *pb.ListEventsResponse
	err := l.opts.once(ctx, func(ctx context.Context) (err error) {
		resp, err = l.c.ListEvents(ctx, &pb.ListEventsRequest{Status: string(f.Status), Q: f.Query, Offset: int32(f.Offset), Limit: int32(f.Limit)})
		return err
	})
	if err != nil {
		return nil, ledgerErr(err)
	}
	out := make([]model.LedgerEvent, 0, len(resp.GetEvents()))
	for _, w := range resp.GetEvents() {
		ev, err := convert.FromProtoEvent(w)
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, nil
}

func (l *Ledger) ListDiplomas(ctx context.Context, f model.DiplomaFilter) ([]model.Diploma, error) {
	req := &pb.ListDiplomasRequest{Status: string(f.Status), Q: f.Query, Offset: int32(f.Offset), Limit: int32(f.Limit)}
	if f.Owner != (common.Address{}) {
		req.Owner = f.Owner.Hex()
	}
	var resp *pb.ListDiplomasResponse
	err := l.opts.once(ctx, func(ctx context.Context) (err error) {
		resp, err = l.c.ListDiplomas(ctx, req)
		return err
	})
	if err != nil {
		return nil, ledgerErr(err)
	}
	out := make([]model.Diploma, 0, len(resp.GetDiplomas()))
	for _, w := range resp.GetDiplomas() {
		d, err := convert.FromProtoDiploma(w)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (l *Ledger) Info(ctx context.Context) (model.LedgerInfo, error) {
	var resp *pb.InfoResponse
	err := l.opts.once(ctx, func(ctx context.Context) (err error) {
		resp, err = l.c.Info(ctx, &emptypb.Empty{})
		return err
	})
	if err != nil {
		return model.LedgerInfo{}, ledgerErr(err)
	}
	return convert.FromProtoInfo(resp)
}
