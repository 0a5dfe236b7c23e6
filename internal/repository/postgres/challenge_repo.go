package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/and161185/ijazah-ledger/internal/errs"
	"github.com/and161185/ijazah-ledger/internal/model"
)

// ChallengeRepo implements ChallengeRepository using PostgreSQL.
type ChallengeRepo struct{ db *DB }

// NewChallengeRepo constructs a challenge repository.
func NewChallengeRepo(db *DB) *ChallengeRepo { return &ChallengeRepo{db: db} }

// Create stores a fresh challenge.
func (r *ChallengeRepo) Create(ctx context.Context, c model.Challenge) error {
	const q = `
INSERT INTO auth_challenges (id, address, message, issued_at, expires_at)
VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Pool.Exec(ctx, q, c.ID, c.Address.Hex(), c.Message, c.IssuedAt, c.ExpiresAt)
	if err != nil {
		if isUniqueViolation(err) {
			return errs.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Consume marks the challenge used and returns it. Used, expired and unknown
// challenges all yield ErrNotFound.
func (r *ChallengeRepo) Consume(ctx context.Context, id uuid.UUID, now time.Time) (*model.Challenge, error) {
	const q = `
UPDATE auth_challenges
SET used_at=$2
WHERE id=$1 AND used_at IS NULL AND expires_at > $2
RETURNING address, message, issued_at, expires_at`
	var (
		c    = model.Challenge{ID: id}
		addr string
	)
	if err := r.db.Pool.QueryRow(ctx, q, id, now).Scan(&addr, &c.Message, &c.IssuedAt, &c.ExpiresAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	c.Address = common.HexToAddress(addr)
	return &c, nil
}

// DeleteExpired removes challenges that expired before the given time.
func (r *ChallengeRepo) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM auth_challenges WHERE expires_at < $1`, before)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
