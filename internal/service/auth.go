package service

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	pkgcrypto "github.com/and161185/ijazah-ledger/internal/crypto"
	"github.com/and161185/ijazah-ledger/internal/crypto/ethsig"
	"github.com/and161185/ijazah-ledger/internal/errs"
	"github.com/and161185/ijazah-ledger/internal/limiter"
	"github.com/and161185/ijazah-ledger/internal/model"
	"github.com/and161185/ijazah-ledger/internal/repository"
)

// Session and challenge lifetimes.
const (
	ChallengeTTL = 5 * time.Minute
	SessionTTL   = 24 * time.Hour
)

// SessionKeyPurpose is the HKDF label for deriving the JWT signing key.
const SessionKeyPurpose = "ijazah-session"

const challengeText = "Sign this message to authenticate with Digital Diploma System.\n\nNonce: %s\nTimestamp: %d"

// ChallengeMessage formats the text a wallet signs to log in.
func ChallengeMessage(nonce string, at time.Time) string {
	return fmt.Sprintf(challengeText, nonce, at.UnixMilli())
}

// SessionClaims are the JWT claims of a wallet session. Subject is the
// lowercase hex address.
type SessionClaims struct {
	IsIssuer bool `json:"iss_role"`
	jwt.RegisteredClaims
}

// RoleLookup returns the roles held by an account.
type RoleLookup interface {
	Roles(ctx context.Context, account common.Address) ([]model.Role, error)
}

// AuthService defines wallet challenge-response authentication.
type AuthService interface {
	// Challenge issues a single-use nonce message for address.
	Challenge(ctx context.Context, address common.Address) (model.Challenge, error)
	// Login checks the signed challenge and issues a session token.
	Login(ctx context.Context, challengeID uuid.UUID, address common.Address, sig []byte, ip string) (model.Session, error)
}

type AuthServiceImpl struct {
	challenges repository.ChallengeRepository
	roles      RoleLookup
	signKey    []byte
	sessionTTL time.Duration
	lim        limiter.Limiter
	log        *zap.Logger
	now        func() time.Time
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(
	challenges repository.ChallengeRepository, roles RoleLookup, signKey []byte, sessionTTL time.Duration,
	lim limiter.Limiter, log *zap.Logger,
) *AuthServiceImpl {
	if sessionTTL <= 0 {
		sessionTTL = SessionTTL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthServiceImpl{
		challenges: challenges,
		roles:      roles,
		signKey:    signKey,
		sessionTTL: sessionTTL,
		lim:        lim,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Challenge stores a fresh 32-byte nonce message bound to address.
func (s *AuthServiceImpl) Challenge(ctx context.Context, address common.Address) (model.Challenge, error) {
	if address == (common.Address{}) {
		return model.Challenge{}, fmt.Errorf("validation: zero address: %w", errs.ErrInvalidArgument)
	}
	id, err := uuid.NewV4()
	if err != nil {
		return model.Challenge{}, err
	}
	nonce, err := pkgcrypto.RandBytes(32)
	if err != nil {
		return model.Challenge{}, err
	}
	now := s.now()
	c := model.Challenge{
		ID:        id,
		Address:   address,
		Message:   ChallengeMessage(hex.EncodeToString(nonce), now),
		IssuedAt:  now,
		ExpiresAt: now.Add(ChallengeTTL),
	}
	if err := s.challenges.Create(ctx, c); err != nil {
		return model.Challenge{}, fmt.Errorf("store challenge: %w", err)
	}
	return c, nil
}

// Login consumes the challenge, recovers the signer and issues a JWT.
// Unknown, used and expired challenges, and signer mismatches, all count
// as limiter failures and return ErrInvalidSignature.
func (s *AuthServiceImpl) Login(
	ctx context.Context, challengeID uuid.UUID, address common.Address, sig []byte, ip string,
) (model.Session, error) {
	key := limiter.KeyFor(address.Hex(), ip)

	allowed, _, err := s.lim.Allow(ctx, key)
	if err != nil {
		return model.Session{}, err
	}
	if !allowed {
		return model.Session{}, errs.ErrRateLimited
	}

	if err := s.checkSignature(ctx, challengeID, address, sig); err != nil {
		if !errors.Is(err, errs.ErrInvalidSignature) {
			return model.Session{}, err
		}
		s.log.Warn("login rejected", zap.String("address", address.Hex()), zap.Error(err))
		if blocked, _, ferr := s.lim.Failure(ctx, key); ferr == nil && blocked {
			return model.Session{}, errs.ErrRateLimited
		}
		return model.Session{}, errs.ErrInvalidSignature
	}

	// best-effort reset
	_ = s.lim.Success(ctx, key)

	roles, err := s.roles.Roles(ctx, address)
	if err != nil {
		return model.Session{}, fmt.Errorf("load roles: %w", err)
	}
	isIssuer := model.CapabilitiesOf(roles...).Has(model.CanMint)

	now := s.now()
	exp := now.Add(s.sessionTTL)
	token, err := s.issueAccessToken(address, isIssuer, now, exp)
	if err != nil {
		return model.Session{}, err
	}
	return model.Session{
		Address:         address,
		IsIssuer:        isIssuer,
		AuthenticatedAt: now,
		ExpiresAt:       exp,
		Token:           token,
	}, nil
}

func (s *AuthServiceImpl) checkSignature(ctx context.Context, challengeID uuid.UUID, address common.Address, sig []byte) error {
	c, err := s.challenges.Consume(ctx, challengeID, s.now())
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return fmt.Errorf("challenge unknown, used or expired: %w", errs.ErrInvalidSignature)
		}
		return err
	}
	if c.Address != address {
		return fmt.Errorf("challenge bound to another address: %w", errs.ErrInvalidSignature)
	}
	signer, err := ethsig.RecoverText(c.Message, sig)
	if err != nil {
		return err
	}
	if signer != address {
		return fmt.Errorf("signer %s: %w", signer.Hex(), errs.ErrInvalidSignature)
	}
	return nil
}

// issueAccessToken creates a signed HS256 JWT for the given wallet.
func (s *AuthServiceImpl) issueAccessToken(address common.Address, isIssuer bool, now, exp time.Time) (string, error) {
	claims := SessionClaims{
		IsIssuer: isIssuer,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strings.ToLower(address.Hex()),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.signKey)
}
