// Package crypto implements server-side hashing, identifiers and key derivation for the ledger.
package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/sha3"

	"github.com/and161185/ijazah-ledger/internal/errs"
)

// IssuerRoleName is hashed into the published issuer role identifier.
const IssuerRoleName = "ISSUER_ROLE"

// RandBytes returns n cryptographically secure random bytes.
func RandBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	_, err := rand.Read(b)
	return b, err
}

// Keccak256 hashes the concatenation of parts with legacy Keccak-256.
func Keccak256(parts ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}

// Keccak256Hex is Keccak256 rendered as "0x" + lowercase hex.
func Keccak256Hex(parts ...[]byte) string {
	return "0x" + hex.EncodeToString(Keccak256(parts...))
}

// IssuerRoleHash returns keccak256("ISSUER_ROLE").
func IssuerRoleHash() string { return Keccak256Hex([]byte(IssuerRoleName)) }

// TxHash derives the transaction hash of a ledger event from its position and body.
func TxHash(contract common.Address, seq uint64, kind string, payload []byte) string {
	var n [8]byte
	binary.BigEndian.PutUint64(n[:], seq)
	return Keccak256Hex(contract.Bytes(), n[:], []byte(kind), payload)
}

// InstanceAddress derives the ledger instance address from its genesis parameters.
func InstanceAddress(admin common.Address, chainID uint64, at time.Time) common.Address {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], chainID)
	binary.BigEndian.PutUint64(b[8:], uint64(at.UnixNano()))
	h := Keccak256(admin.Bytes(), b[:])
	return common.BytesToAddress(h[12:])
}

// NormalizeDigest accepts a 32-byte hex digest with or without 0x and returns "0x" + lowercase hex.
func NormalizeDigest(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		s = s[2:]
	}
	if len(s) != 2*sha256.Size {
		return "", fmt.Errorf("%w: digest must be %d hex characters", errs.ErrInvalidArgument, 2*sha256.Size)
	}
	if _, err := hex.DecodeString(s); err != nil {
		return "", fmt.Errorf("%w: digest is not hex", errs.ErrInvalidArgument)
	}
	return "0x" + strings.ToLower(s), nil
}

// DeriveKey expands a configured secret into an n-byte purpose-bound key via HKDF-SHA256.
func DeriveKey(secret []byte, purpose string, n int) ([]byte, error) {
	r := hkdf.New(sha256.New, secret, nil, []byte(purpose))
	key := make([]byte, n)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, err
	}
	return key, nil
}
