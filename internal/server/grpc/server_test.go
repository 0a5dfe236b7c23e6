package grpcserver

import (
	"context"
	"net"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"

	pb "github.com/and161185/ijazah-ledger/gen/go/ijazah/v1"
	"github.com/and161185/ijazah-ledger/internal/crypto/ethsig"
	"github.com/and161185/ijazah-ledger/internal/errs"
	"github.com/and161185/ijazah-ledger/internal/model"
	"github.com/and161185/ijazah-ledger/internal/service"
)

type fakeAuth struct {
	mu         sync.Mutex
	key        []byte
	lastIP     string
	challenges map[uuid.UUID]common.Address
}

var _ service.AuthService = (*fakeAuth)(nil)

func (f *fakeAuth) Challenge(_ context.Context, addr common.Address) (model.Challenge, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := uuid.Must(uuid.NewV4())
	if f.challenges == nil {
		f.challenges = map[uuid.UUID]common.Address{}
	}
	f.challenges[id] = addr
	return model.Challenge{ID: id, Address: addr, Message: "sign " + id.String(), ExpiresAt: time.Now().Add(time.Minute)}, nil
}

func (f *fakeAuth) Login(_ context.Context, id uuid.UUID, addr common.Address, sig []byte, ip string) (model.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastIP = ip
	signer, err := ethsig.RecoverText("sign "+id.String(), sig)
	if err != nil || f.challenges[id] != addr || signer != addr {
		return model.Session{}, errs.ErrInvalidSignature
	}
	now := time.Now().UTC()
	claims := service.SessionClaims{RegisteredClaims: jwt.RegisteredClaims{
		Subject: strings.ToLower(addr.Hex()), IssuedAt: jwt.NewNumericDate(now), ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(f.key)
	if err != nil {
		return model.Session{}, err
	}
	return model.Session{Address: addr, AuthenticatedAt: now, ExpiresAt: now.Add(time.Hour), Token: tok}, nil
}

// fakeLedgerSvc keeps diplomas in memory; only issuers in the set may mint.
type fakeLedgerSvc struct {
	mu       sync.Mutex
	issuers  map[common.Address]bool
	diplomas []model.Diploma
}

var _ service.LedgerService = (*fakeLedgerSvc)(nil)

func (f *fakeLedgerSvc) get(id uint64) (*model.Diploma, error) {
	if id >= uint64(len(f.diplomas)) {
		return nil, errs.ErrNotFound
	}
	return &f.diplomas[id], nil
}

func (f *fakeLedgerSvc) IssueDiploma(_ context.Context, caller common.Address, in model.NewDiploma) (model.Diploma, model.LedgerEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.issuers[caller] {
		return model.Diploma{}, model.LedgerEvent{}, errs.ErrUnauthorized
	}
	if in.CID == "" {
		return model.Diploma{}, model.LedgerEvent{}, errs.ErrInvalidArgument
	}
	d := model.Diploma{ID: uint64(len(f.diplomas)), Owner: in.Recipient, Issuer: caller, DocumentHash: in.DocumentHash,
		CID: in.CID, StudentName: in.StudentName, NIM: in.NIM, IsActive: true, IssuedAt: time.Now()}
	f.diplomas = append(f.diplomas, d)
	ev := model.LedgerEvent{Seq: d.ID + 1, Kind: model.EventDiplomaIssued, Subject: strconv.FormatUint(d.ID, 10), Actor: caller}
	return d, ev, nil
}

func (f *fakeLedgerSvc) RevokeDiploma(_ context.Context, caller common.Address, id uint64, reason string) (model.LedgerEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.issuers[caller] {
		return model.LedgerEvent{}, errs.ErrUnauthorized
	}
	d, err := f.get(id)
	if err != nil {
		return model.LedgerEvent{}, err
	}
	if !d.IsActive {
		return model.LedgerEvent{}, errs.ErrAlreadyRevoked
	}
	d.IsActive, d.RevocationReason = false, reason
	return model.LedgerEvent{Kind: model.EventDiplomaRevoked, Subject: strconv.FormatUint(id, 10), Actor: caller}, nil
}

func (f *fakeLedgerSvc) TransferFrom(_ context.Context, caller, to common.Address, id uint64) (model.LedgerEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, err := f.get(id)
	if err != nil {
		return model.LedgerEvent{}, err
	}
	if d.Owner != caller {
		return model.LedgerEvent{}, errs.ErrUnauthorized
	}
	d.Owner = to
	return model.LedgerEvent{Kind: model.EventTransfer, Subject: strconv.FormatUint(id, 10), Actor: caller}, nil
}

func (f *fakeLedgerSvc) AddIssuer(_ context.Context, _, account common.Address) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	was := f.issuers[account]
	f.issuers[account] = true
	return !was, nil
}

func (f *fakeLedgerSvc) RemoveIssuer(_ context.Context, _, account common.Address) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	was := f.issuers[account]
	delete(f.issuers, account)
	return was, nil
}

func (f *fakeLedgerSvc) VerifyDiploma(_ context.Context, id uint64) (bool, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, err := f.get(id)
	if err != nil {
		return false, false, nil
	}
	return true, d.IsActive, nil
}

func (f *fakeLedgerSvc) VerifyHash(_ context.Context, id uint64, candidate string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, err := f.get(id)
	if err != nil {
		return false, nil
	}
	return d.DocumentHash == candidate, nil
}

func (f *fakeLedgerSvc) GetDiplomaDetails(_ context.Context, id uint64) (*model.Diploma, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, err := f.get(id)
	if err != nil {
		return nil, err
	}
	c := *d
	return &c, nil
}

func (f *fakeLedgerSvc) GetTotalDiplomas(context.Context) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return uint64(len(f.diplomas)), nil
}

func (f *fakeLedgerSvc) IsIssuer(_ context.Context, a common.Address) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.issuers[a], nil
}

func (f *fakeLedgerSvc) IsAdmin(context.Context, common.Address) (bool, error) { return false, nil }

func (f *fakeLedgerSvc) RevocationReason(ctx context.Context, id uint64) (string, error) {
	d, err := f.GetDiplomaDetails(ctx, id)
	if err != nil {
		return "", err
	}
	return d.RevocationReason, nil
}

func (f *fakeLedgerSvc) TokenURI(ctx context.Context, id uint64) (string, error) {
	d, err := f.GetDiplomaDetails(ctx, id)
	if err != nil {
		return "", err
	}
	return d.CID, nil
}

func (f *fakeLedgerSvc) ListEvents(_ context.Context, flt model.EventFilter) ([]model.LedgerEvent, error) {
	if flt.Status == "bogus" {
		return nil, errs.ErrInvalidArgument
	}
	return []model.LedgerEvent{{Seq: 1, Kind: model.EventDiplomaIssued, Subject: "0"}}, nil
}

func (f *fakeLedgerSvc) ListDiplomas(_ context.Context, flt model.DiplomaFilter) ([]model.Diploma, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Diploma
	for _, d := range f.diplomas {
		if flt.Owner == (common.Address{}) || d.Owner == flt.Owner {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeLedgerSvc) Info(context.Context) (model.LedgerInfo, error) {
	return model.LedgerInfo{ContractAddress: holder, Admin: holder, ChainID: 1337, Network: "ganache"}, nil
}

const bufSize = 1 << 20

func startBufGRPC(t *testing.T, srv *Server) (*grpc.ClientConn, func()) {
	t.Helper()
	lis := bufconn.Listen(bufSize)
	log := zaptest.NewLogger(t)
	gs := grpc.NewServer(grpc.ChainUnaryInterceptor(RecoverUnary(log), AuthUnary(srv.signKey), LoggingUnary(log)))
	pb.RegisterLedgerServer(gs, srv)
	pb.RegisterAuthServer(gs, srv)
	go func() { _ = gs.Serve(lis) }()
	dialer := func(context.Context, string) (net.Conn, error) { return lis.Dial() }
	//nolint:staticcheck // DialContext is supported through 1.x; migrate when grpc.NewClient is stable
	cc, err := grpc.DialContext(context.Background(), "bufnet",
		grpc.WithContextDialer(dialer), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	stop := func() { _ = cc.Close(); gs.Stop(); _ = lis.Close() }
	return cc, stop
}

func bearer(ctx context.Context, tok string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+tok)
}

func login(t *testing.T, ac pb.AuthClient) (common.Address, string) {
	t.Helper()
	key, err := ethsig.GenerateKey()
	require.NoError(t, err)
	addr := ethsig.Address(key)

	ch, err := ac.Challenge(context.Background(), &pb.ChallengeRequest{Address: addr.Hex()})
	require.NoError(t, err)
	sig, err := ethsig.SignText(key, ch.GetMessage())
	require.NoError(t, err)
	lr, err := ac.Login(context.Background(), &pb.LoginRequest{
		ChallengeId: ch.GetChallengeId(), Address: strings.ToLower(addr.Hex()), Signature: ethsig.EncodeSignature(sig),
	})
	require.NoError(t, err)
	require.Equal(t, addr.Hex(), lr.GetAddress())
	return addr, lr.GetAccessToken()
}

func TestServer_E2E_IssueVerifyRevoke(t *testing.T) {
	t.Parallel()

	signKey := []byte("test-secret")
	ledger := &fakeLedgerSvc{issuers: map[common.Address]bool{}}
	srv := New(&fakeAuth{key: signKey}, ledger, signKey)
	cc, stop := startBufGRPC(t, srv)
	defer stop()

	ac := pb.NewAuthClient(cc)
	lc := pb.NewLedgerClient(cc)
	ctx := context.Background()

	addr, tok := login(t, ac)
	_, err := ledger.AddIssuer(ctx, addr, addr)
	require.NoError(t, err)
	authed := bearer(ctx, tok)

	// writes need a token
	req := &pb.IssueDiplomaRequest{Recipient: holder.Hex(), DocumentHash: "0xab", Cid: "bafy1", StudentName: "A", Nim: "1"}
	_, err = lc.IssueDiploma(ctx, req)
	require.Equal(t, codes.Unauthenticated, status.Code(err))
	_, err = lc.IssueDiploma(bearer(ctx, "garbage"), req)
	require.Equal(t, codes.Unauthenticated, status.Code(err))

	resp, err := lc.IssueDiploma(authed, req)
	require.NoError(t, err)
	require.Equal(t, uint64(0), resp.GetDiplomaId())
	require.NotNil(t, resp.GetEvent().DiplomaId)
	require.Equal(t, "DiplomaIssued", resp.GetEvent().GetKind())

	_, err = lc.IssueDiploma(authed, &pb.IssueDiplomaRequest{Recipient: "0x12", Cid: "x"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	v, err := lc.VerifyDiploma(ctx, &pb.DiplomaIdRequest{DiplomaId: 0})
	require.NoError(t, err)
	require.True(t, v.GetExists())
	require.True(t, v.GetIsActive())

	h, err := lc.VerifyHash(ctx, &pb.VerifyHashRequest{DiplomaId: 0, DocumentHash: "0xab"})
	require.NoError(t, err)
	require.True(t, h.GetMatch())

	_, err = lc.RevokeDiploma(authed, &pb.RevokeDiplomaRequest{DiplomaId: 0, Reason: "typo"})
	require.NoError(t, err)
	_, err = lc.RevokeDiploma(authed, &pb.RevokeDiplomaRequest{DiplomaId: 0, Reason: "typo"})
	require.Equal(t, codes.FailedPrecondition, status.Code(err))
	_, err = lc.RevokeDiploma(authed, &pb.RevokeDiplomaRequest{DiplomaId: 4, Reason: "x"})
	require.Equal(t, codes.NotFound, status.Code(err))

	r, err := lc.RevocationReasons(ctx, &pb.DiplomaIdRequest{DiplomaId: 0})
	require.NoError(t, err)
	require.Equal(t, "typo", r.GetReason())

	d, err := lc.GetDiplomaDetails(ctx, &pb.DiplomaIdRequest{DiplomaId: 0})
	require.NoError(t, err)
	require.False(t, d.GetDiploma().GetIsActive())
	require.Equal(t, addr.Hex(), d.GetDiploma().GetIssuer())

	_, err = lc.GetDiplomaDetails(ctx, &pb.DiplomaIdRequest{DiplomaId: 9})
	require.Equal(t, codes.NotFound, status.Code(err))

	total, err := lc.GetTotalDiplomas(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	require.Equal(t, uint64(1), total.GetTotal())

	uri, err := lc.TokenURI(ctx, &pb.DiplomaIdRequest{DiplomaId: 0})
	require.NoError(t, err)
	require.Equal(t, "bafy1", uri.GetUri())
}

func TestServer_E2E_RolesTransferAndLists(t *testing.T) {
	t.Parallel()

	signKey := []byte("test-secret")
	ledger := &fakeLedgerSvc{issuers: map[common.Address]bool{}}
	srv := New(&fakeAuth{key: signKey}, ledger, signKey)
	cc, stop := startBufGRPC(t, srv)
	defer stop()

	ac := pb.NewAuthClient(cc)
	lc := pb.NewLedgerClient(cc)
	ctx := context.Background()

	addr, tok := login(t, ac)
	authed := bearer(ctx, tok)

	_, err := lc.IssueDiploma(authed, &pb.IssueDiplomaRequest{Recipient: holder.Hex(), Cid: "c"})
	require.Equal(t, codes.PermissionDenied, status.Code(err))

	ch, err := lc.AddIssuer(authed, &pb.AddressRequest{Address: addr.Hex()})
	require.NoError(t, err)
	require.True(t, ch.GetChanged())
	ch, err = lc.AddIssuer(authed, &pb.AddressRequest{Address: addr.Hex()})
	require.NoError(t, err)
	require.False(t, ch.GetChanged())

	is, err := lc.IsIssuer(ctx, &pb.AddressRequest{Address: addr.Hex()})
	require.NoError(t, err)
	require.True(t, is.GetIsIssuer())
	_, err = lc.IsIssuer(ctx, &pb.AddressRequest{Address: "nope"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	// mint to self, then transfer away
	_, err = lc.IssueDiploma(authed, &pb.IssueDiplomaRequest{Recipient: addr.Hex(), Cid: "c"})
	require.NoError(t, err)
	_, err = lc.TransferFrom(authed, &pb.TransferRequest{To: holder.Hex(), DiplomaId: 0})
	require.NoError(t, err)
	_, err = lc.TransferFrom(authed, &pb.TransferRequest{To: holder.Hex(), DiplomaId: 0})
	require.Equal(t, codes.PermissionDenied, status.Code(err))

	owned, err := lc.ListDiplomas(ctx, &pb.ListDiplomasRequest{Owner: holder.Hex()})
	require.NoError(t, err)
	require.Len(t, owned.GetDiplomas(), 1)

	evs, err := lc.ListEvents(ctx, &pb.ListEventsRequest{})
	require.NoError(t, err)
	require.Len(t, evs.GetEvents(), 1)
	_, err = lc.ListEvents(ctx, &pb.ListEventsRequest{Status: "bogus"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	info, err := lc.Info(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	require.Equal(t, uint64(1337), info.GetChainId())

	rm, err := lc.RemoveIssuer(authed, &pb.AddressRequest{Address: addr.Hex()})
	require.NoError(t, err)
	require.True(t, rm.GetChanged())
}

func TestServer_Login_BadInputs(t *testing.T) {
	t.Parallel()

	signKey := []byte("k")
	srv := New(&fakeAuth{key: signKey}, &fakeLedgerSvc{issuers: map[common.Address]bool{}}, signKey)
	cc, stop := startBufGRPC(t, srv)
	defer stop()
	ac := pb.NewAuthClient(cc)
	ctx := context.Background()

	_, err := ac.Challenge(ctx, &pb.ChallengeRequest{Address: "xyz"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = ac.Login(ctx, &pb.LoginRequest{ChallengeId: "not-a-uuid", Address: holder.Hex(), Signature: "0x00"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	ch, err := ac.Challenge(ctx, &pb.ChallengeRequest{Address: holder.Hex()})
	require.NoError(t, err)
	_, err = ac.Login(ctx, &pb.LoginRequest{ChallengeId: ch.GetChallengeId(), Address: holder.Hex(), Signature: "0x1234"})
	require.Equal(t, codes.Unauthenticated, status.Code(err))

	other, err := ethsig.GenerateKey()
	require.NoError(t, err)
	sig, err := ethsig.SignText(other, ch.GetMessage())
	require.NoError(t, err)
	_, err = ac.Login(ctx, &pb.LoginRequest{ChallengeId: ch.GetChallengeId(), Address: holder.Hex(), Signature: ethsig.EncodeSignature(sig)})
	require.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestToStatus_Mapping(t *testing.T) {
	t.Parallel()
	cases := map[error]codes.Code{
		errs.ErrNotFound:         codes.NotFound,
		errs.ErrUnauthorized:     codes.PermissionDenied,
		errs.ErrAlreadyRevoked:   codes.FailedPrecondition,
		errs.ErrInvalidArgument:  codes.InvalidArgument,
		errs.ErrInvalidSignature: codes.Unauthenticated,
		errs.ErrRateLimited:      codes.ResourceExhausted,
		errs.ErrDecrypt:          codes.Internal,
	}
	for err, want := range cases {
		require.Equal(t, want, status.Code(toStatus("op", err)), err.Error())
	}
	require.NoError(t, toStatus("op", nil))
}
