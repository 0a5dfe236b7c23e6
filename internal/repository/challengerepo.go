package repository

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/ijazah-ledger/internal/model"
)

// ChallengeRepository stores single-use login challenges.
type ChallengeRepository interface {
	// Create stores a fresh challenge.
	Create(ctx context.Context, c model.Challenge) error
	// Consume atomically marks an unexpired, unused challenge as used and returns it.
	Consume(ctx context.Context, id uuid.UUID, now time.Time) (*model.Challenge, error)
	// DeleteExpired removes challenges that expired before the given time.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
