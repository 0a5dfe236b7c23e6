// Package limiter throttles failed wallet logins per account and client address.
package limiter

import (
	"context"
	"crypto/sha256"
	"strings"
	"time"
)

// Key identifies a throttling bucket: the claimed account and the hashed client IP.
type Key struct {
	Subject string
	IPHash  []byte
}

// KeyFor builds a bucket key. Subjects are case-folded so checksummed and
// lowercase forms of one address share a bucket.
func KeyFor(subject, ip string) Key {
	return Key{Subject: strings.ToLower(strings.TrimSpace(subject)), IPHash: HashIP(ip)}
}

// HashIP returns a stable hash for an IP string to avoid storing raw addresses.
func HashIP(ip string) []byte {
	h := sha256.Sum256([]byte(ip))
	return h[:]
}

// Policy configures the sliding window and lockout.
type Policy struct {
	Window   time.Duration
	MaxFails int
	BlockFor time.Duration
}

// DefaultPolicy allows five failures per fifteen minutes, then blocks for fifteen minutes.
var DefaultPolicy = Policy{Window: 15 * time.Minute, MaxFails: 5, BlockFor: 15 * time.Minute}

// Limiter controls login attempts and temporary lockouts.
type Limiter interface {
	// Allow reports whether login is currently allowed and optional retry-after.
	Allow(ctx context.Context, k Key) (bool, time.Duration, error)
	// Success resets counters after a successful login.
	Success(ctx context.Context, k Key) error
	// Failure records a failed attempt; may place a temporary block.
	Failure(ctx context.Context, k Key) (bool, time.Duration, error)
}
