package remote

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gofrs/uuid/v5"
	"google.golang.org/grpc"

	pb "github.com/and161185/ijazah-ledger/gen/go/ijazah/v1"
	"github.com/and161185/ijazah-ledger/internal/convert"
	"github.com/and161185/ijazah-ledger/internal/crypto/ethsig"
	"github.com/and161185/ijazah-ledger/internal/errs"
	"github.com/and161185/ijazah-ledger/internal/model"
)

// Auth is the client side of ijazah.pb.Auth. Neither call is retried.
type Auth struct {
	c    pb.AuthClient
	opts Options
}

func NewAuth(cc grpc.ClientConnInterface, opts Options) *Auth {
	return &Auth{c: pb.NewAuthClient(cc), opts: opts.withDefaults()}
}

func (a *Auth) Challenge(ctx context.Context, account common.Address) (model.Challenge, error) {
	var resp *pb.ChallengeResponse
	err := a.opts.once(ctx, func(ctx context.Context) (err error) {
		resp, err = a.c.Challenge(ctx, &pb.ChallengeRequest{Address: account.Hex()})
		return err
	})
	if err != nil {
		return model.Challenge{}, fromStatus(err, errs.ErrInvalidSignature)
	}
	return convert.FromProtoChallenge(resp, account)
}

func (a *Auth) Login(ctx context.Context, challengeID uuid.UUID, account common.Address, sig []byte) (model.Session, error) {
	var resp *pb.LoginResponse
	err := a.opts.once(ctx, func(ctx context.Context) (err error) {
		resp, err = a.c.Login(ctx, &pb.LoginRequest{
			ChallengeId: challengeID.String(),
			Address:     account.Hex(),
			Signature:   ethsig.EncodeSignature(sig),
		})
		return err
	})
	if err != nil {
		return model.Session{}, fromStatus(err, errs.ErrInvalidSignature)
	}
	return convert.FromProtoSession(resp)
}
