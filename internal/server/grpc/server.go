// Package grpcserver exposes the ijazah ledger and auth gRPC handlers.
package grpcserver

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	pb "github.com/and161185/ijazah-ledger/gen/go/ijazah/v1"
	"github.com/and161185/ijazah-ledger/internal/convert"
	"github.com/and161185/ijazah-ledger/internal/crypto/ethsig"
	"github.com/and161185/ijazah-ledger/internal/model"
	"github.com/and161185/ijazah-ledger/internal/service"
)

// Server wires services into gRPC handlers for both ijazah.v1 services.
type Server struct {
	pb.UnimplementedLedgerServer
	pb.UnimplementedAuthServer

	auth    service.AuthService
	ledger  service.LedgerService
	signKey []byte
}

var (
	_ pb.LedgerServer = (*Server)(nil)
	_ pb.AuthServer   = (*Server)(nil)
)

// New constructs a gRPC server with injected services.
func New(auth service.AuthService, ledger service.LedgerService, signKey []byte) *Server {
	return &Server{auth: auth, ledger: ledger, signKey: signKey}
}

// --- Auth ---

// remoteIP returns the peer host without the port so every connection from
// one host shares a lockout bucket.
func remoteIP(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return ""
	}
	addr := p.Addr.String()
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}

func parseAddr(field, s string) (common.Address, error) {
	a, err := ethsig.ParseAddress(s)
	if err != nil {
		return common.Address{}, status.Errorf(codes.InvalidArgument, "bad %s", field)
	}
	return a, nil
}

// Challenge issues a nonce message for the wallet to sign.
func (s *Server) Challenge(ctx context.Context, req *pb.ChallengeRequest) (*pb.ChallengeResponse, error) {
	addr, err := parseAddr("address", req.GetAddress())
	if err != nil {
		return nil, err
	}
	c, err := s.auth.Challenge(ctx, addr)
	if err != nil {
		return nil, toStatus("challenge", err)
	}
	return convert.ToProtoChallenge(c), nil
}

// Login verifies the signed challenge and returns a session token.
func (s *Server) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	id, err := uuid.FromString(req.GetChallengeId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "bad challenge id")
	}
	addr, err := parseAddr("address", req.GetAddress())
	if err != nil {
		return nil, err
	}
	sig, err := ethsig.DecodeSignature(req.GetSignature())
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid signature")
	}
	sess, err := s.auth.Login(ctx, id, addr, sig, remoteIP(ctx))
	if err != nil {
		return nil, toStatus("login", err)
	}
	return convert.ToProtoSession(sess), nil
}

// --- Ledger writes ---

// IssueDiploma mints a diploma as the authenticated issuer.
func (s *Server) IssueDiploma(ctx context.Context, req *pb.IssueDiplomaRequest) (*pb.IssueDiplomaResponse, error) {
	caller, err := s.callerFromCtx(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	in, err := convert.FromProtoIssueRequest(req)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "bad request: %v", err)
	}
	d, ev, err := s.ledger.IssueDiploma(ctx, caller, in)
	if err != nil {
		return nil, toStatus("issue", err)
	}
	return &pb.IssueDiplomaResponse{DiplomaId: d.ID, Event: convert.ToProtoEvent(ev)}, nil
}

// RevokeDiploma revokes a diploma as the authenticated issuer.
func (s *Server) RevokeDiploma(ctx context.Context, req *pb.RevokeDiplomaRequest) (*pb.EventResponse, error) {
	caller, err := s.callerFromCtx(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	ev, err := s.ledger.RevokeDiploma(ctx, caller, req.GetDiplomaId(), req.GetReason())
	if err != nil {
		return nil, toStatus("revoke", err)
	}
	return &pb.EventResponse{Event: convert.ToProtoEvent(ev)}, nil
}

// TransferFrom moves a diploma owned by the caller.
func (s *Server) TransferFrom(ctx context.Context, req *pb.TransferRequest) (*pb.EventResponse, error) {
	caller, err := s.callerFromCtx(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	to, err := parseAddr("to", req.GetTo())
	if err != nil {
		return nil, err
	}
	ev, err := s.ledger.TransferFrom(ctx, caller, to, req.GetDiplomaId())
	if err != nil {
		return nil, toStatus("transfer", err)
	}
	return &pb.EventResponse{Event: convert.ToProtoEvent(ev)}, nil
}

func (s *Server) changeIssuer(ctx context.Context, req *pb.AddressRequest, grant bool) (*pb.RoleChangeResponse, error) {
	caller, err := s.callerFromCtx(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	account, err := parseAddr("address", req.GetAddress())
	if err != nil {
		return nil, err
	}
	op := s.ledger.AddIssuer
	if !grant {
		op = s.ledger.RemoveIssuer
	}
	changed, err := op(ctx, caller, account)
	if err != nil {
		return nil, toStatus("set issuer", err)
	}
	return &pb.RoleChangeResponse{Changed: changed}, nil
}

// AddIssuer grants the issuer role (admin only).
func (s *Server) AddIssuer(ctx context.Context, req *pb.AddressRequest) (*pb.RoleChangeResponse, error) {
	return s.changeIssuer(ctx, req, true)
}

// RemoveIssuer removes the issuer role (admin only).
func (s *Server) RemoveIssuer(ctx context.Context, req *pb.AddressRequest) (*pb.RoleChangeResponse, error) {
	return s.changeIssuer(ctx, req, false)
}

// --- Ledger reads (public) ---

func (s *Server) VerifyDiploma(ctx context.Context, req *pb.DiplomaIdRequest) (*pb.VerifyDiplomaResponse, error) {
	exists, active, err := s.ledger.VerifyDiploma(ctx, req.GetDiplomaId())
	if err != nil {
		return nil, toStatus("verify", err)
	}
	return &pb.VerifyDiplomaResponse{Exists: exists, IsActive: active}, nil
}

func (s *Server) VerifyHash(ctx context.Context, req *pb.VerifyHashRequest) (*pb.VerifyHashResponse, error) {
	ok, err := s.ledger.VerifyHash(ctx, req.GetDiplomaId(), req.GetDocumentHash())
	if err != nil {
		return nil, toStatus("verify hash", err)
	}
	return &pb.VerifyHashResponse{Match: ok}, nil
}

func (s *Server) GetDiplomaDetails(ctx context.Context, req *pb.DiplomaIdRequest) (*pb.DiplomaResponse, error) {
	d, err := s.ledger.GetDiplomaDetails(ctx, req.GetDiplomaId())
	if err != nil {
		return nil, toStatus("details", err)
	}
	return &pb.DiplomaResponse{Diploma: convert.ToProtoDiploma(*d)}, nil
}

func (s *Server) GetTotalDiplomas(ctx context.Context, _ *emptypb.Empty) (*pb.TotalResponse, error) {
	n, err := s.ledger.GetTotalDiplomas(ctx)
	if err != nil {
		return nil, toStatus("total", err)
	}
	return &pb.TotalResponse{Total: n}, nil
}

func (s *Server) IsIssuer(ctx context.Context, req *pb.AddressRequest) (*pb.IsIssuerResponse, error) {
	account, err := parseAddr("address", req.GetAddress())
	if err != nil {
		return nil, err
	}
	issuer, err := s.ledger.IsIssuer(ctx, account)
	if err != nil {
		return nil, toStatus("is issuer", err)
	}
	admin, err := s.ledger.IsAdmin(ctx, account)
	if err != nil {
		return nil, toStatus("is admin", err)
	}
	return &pb.IsIssuerResponse{IsIssuer: issuer, IsAdmin: admin}, nil
}

func (s *Server) RevocationReasons(ctx context.Context, req *pb.DiplomaIdRequest) (*pb.RevocationReasonResponse, error) {
	r, err := s.ledger.RevocationReason(ctx, req.GetDiplomaId())
	if err != nil {
		return nil, toStatus("revocation reason", err)
	}
	return &pb.RevocationReasonResponse{Reason: r}, nil
}

func (s *Server) TokenURI(ctx context.Context, req *pb.DiplomaIdRequest) (*pb.TokenUriResponse, error) {
	uri, err := s.ledger.TokenURI(ctx, req.GetDiplomaId())
	if err != nil {
		return nil, toStatus("token uri", err)
	}
	return &pb.TokenUriResponse{Uri: uri}, nil
}

func (s *Server) ListEvents(ctx context.Context, req *pb.ListEventsRequest) (*pb.ListEventsResponse, error) {
	evs, err := s.ledger.ListEvents(ctx, model.EventFilter{
		Status: model.DiplomaStatus(req.GetStatus()), Query: req.GetQ(), Offset: int(req.GetOffset()), Limit: int(req.GetLimit()),
	})
	if err != nil {
		return nil, toStatus("list events", err)
	}
	return &pb.ListEventsResponse{Events: convert.ToProtoEvents(evs)}, nil
}

func (s *Server) ListDiplomas(ctx context.Context, req *pb.ListDiplomasRequest) (*pb.ListDiplomasResponse, error) {
	f := model.DiplomaFilter{
		Status: model.DiplomaStatus(req.GetStatus()), Query: req.GetQ(), Offset: int(req.GetOffset()), Limit: int(req.GetLimit()),
	}
	if req.GetOwner() != "" {
		owner, err := parseAddr("owner", req.GetOwner())
		if err != nil {
			return nil, err
		}
		f.Owner = owner
	}
	ds, err := s.ledger.ListDiplomas(ctx, f)
	if err != nil {
		return nil, toStatus("list diplomas", err)
	}
	return &pb.ListDiplomasResponse{Diplomas: convert.ToProtoDiplomas(ds)}, nil
}

func (s *Server) Info(ctx context.Context, _ *emptypb.Empty) (*pb.InfoResponse, error) {
	info, err := s.ledger.Info(ctx)
	if err != nil {
		return nil, toStatus("info", err)
	}
	return convert.ToProtoInfo(info), nil
}

// --- Auth helpers ---

// callerFromCtx returns the caller resolved by AuthUnary, or verifies the
// bearer token itself when the interceptor is not installed.
func (s *Server) callerFromCtx(ctx context.Context) (common.Address, error) {
	if a, ok := CallerFromCtx(ctx); ok {
		return a, nil
	}
	tok, err := bearerTokenFromMD(ctx)
	if err != nil {
		return common.Address{}, err
	}
	return ParseSessionToken(s.signKey, tok)
}

// ParseSessionToken verifies an HS256 session JWT and returns its subject address.
func ParseSessionToken(signKey []byte, tok string) (common.Address, error) {
	var claims service.SessionClaims
	parsed, err := jwt.ParseWithClaims(tok, &claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return signKey, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil || !parsed.Valid {
		return common.Address{}, errors.New("invalid token")
	}

	v := jwt.NewValidator(jwt.WithLeeway(30 * time.Second))
	if err := v.Validate(&claims); err != nil {
		return common.Address{}, errors.New("token expired or not valid yet")
	}

	if !common.IsHexAddress(claims.Subject) {
		return common.Address{}, errors.New("bad subject")
	}
	return common.HexToAddress(claims.Subject), nil
}

func bearerTokenFromMD(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", errors.New("no metadata")
	}
	for _, v := range md.Get("authorization") {
		v = strings.TrimSpace(v)
		if len(v) >= 7 && strings.EqualFold(v[:7], "bearer ") {
			t := strings.TrimSpace(v[7:])
			if t != "" {
				return t, nil
			}
		}
	}
	return "", errors.New("no bearer token")
}
