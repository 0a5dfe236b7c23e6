package limiter

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PG is a PostgreSQL-backed limiter implementation with sliding window and lockout.
type PG struct {
	pool   pgxQuerier
	policy Policy
	now    func() time.Time
}

type pgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// NewPG constructs a PostgreSQL-backed limiter.
func NewPG(pool *pgxpool.Pool, p Policy) *PG {
	return NewPGWithQuerier(pool, p)
}

// NewPGWithQuerier constructs a limiter over any pgx-compatible querier.
func NewPGWithQuerier(q pgxQuerier, p Policy) *PG {
	if p.MaxFails <= 0 {
		p = DefaultPolicy
	}
	return &PG{pool: q, policy: p, now: time.Now}
}

// Allow reports whether login is currently allowed and a retry-after duration.
func (l *PG) Allow(ctx context.Context, k Key) (bool, time.Duration, error) {
	const q = `SELECT blocked_until FROM auth_limiter WHERE subject=$1 AND ip_hash=$2`
	var blockedUntil time.Time
	err := l.pool.QueryRow(ctx, q, k.Subject, k.IPHash).Scan(&blockedUntil)
	switch {
	case err == nil:
		if now := l.now(); blockedUntil.After(now) {
			return false, blockedUntil.Sub(now), nil
		}
		return true, 0, nil
	case errors.Is(err, pgx.ErrNoRows):
		return true, 0, nil
	default:
		return false, 0, err
	}
}

// Success resets counters for the bucket.
func (l *PG) Success(ctx context.Context, k Key) error {
	const q = `
INSERT INTO auth_limiter (subject, ip_hash, fail_count, blocked_until, updated_at)
VALUES ($1, $2, 0, 'epoch', $3)
ON CONFLICT (subject, ip_hash)
DO UPDATE SET fail_count=0, blocked_until='epoch', updated_at=$3`
	_, err := l.pool.Exec(ctx, q, k.Subject, k.IPHash, l.now())
	return err
}

// Failure records a failed attempt; may set a block until a future time.
// Failures older than the window restart the count.
func (l *PG) Failure(ctx context.Context, k Key) (bool, time.Duration, error) {
	now := l.now()

	const q = `
INSERT INTO auth_limiter (subject, ip_hash, fail_count, blocked_until, updated_at)
VALUES ($1, $2, 1, 'epoch', $3)
ON CONFLICT (subject, ip_hash) DO UPDATE
SET
  fail_count = CASE WHEN $3 - auth_limiter.updated_at > $4::interval THEN 1 ELSE auth_limiter.fail_count + 1 END,
  updated_at = $3
RETURNING fail_count`
	var fails int
	if err := l.pool.QueryRow(ctx, q, k.Subject, k.IPHash, now, l.policy.Window).Scan(&fails); err != nil {
		return false, 0, err
	}
	if fails >= l.policy.MaxFails {
		const upd = `UPDATE auth_limiter SET blocked_until=$3 WHERE subject=$1 AND ip_hash=$2`
		if _, err := l.pool.Exec(ctx, upd, k.Subject, k.IPHash, now.Add(l.policy.BlockFor)); err != nil {
			return false, 0, err
		}
		return true, l.policy.BlockFor, nil
	}
	return false, 0, nil
}

// Prune drops buckets untouched since before and not currently blocked.
func (l *PG) Prune(ctx context.Context, before time.Time) (int64, error) {
	const q = `DELETE FROM auth_limiter WHERE updated_at < $1 AND blocked_until < $1`
	tag, err := l.pool.Exec(ctx, q, before)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
