package model

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gofrs/uuid/v5"
)

// Challenge is a single-use nonce message bound to one address.
type Challenge struct {
	ID        uuid.UUID
	Address   common.Address
	Message   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Session is an authenticated wallet session plus the bearer token the server issued for it.
type Session struct {
	Address         common.Address
	IsIssuer        bool
	AuthenticatedAt time.Time
	ExpiresAt       time.Time
	Token           string
}

// ValidFor reports whether the session is usable by the given account at now.
func (s Session) ValidFor(account common.Address, now time.Time) bool {
	if s.Token == "" || s.Address == (common.Address{}) {
		return false
	}
	return s.Address == account && now.Before(s.ExpiresAt)
}
