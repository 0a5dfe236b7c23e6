// Package ethsig signs and recovers EIP-191 personal messages for wallet authentication.
package ethsig

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/and161185/ijazah-ledger/internal/errs"
)

// SignatureLen is the length of an [R || S || V] signature.
const SignatureLen = 65

// SignText signs msg with the personal_sign prefix. V is returned as 27/28.
func SignText(key *ecdsa.PrivateKey, msg string) ([]byte, error) {
	sig, err := ethcrypto.Sign(accounts.TextHash([]byte(msg)), key)
	if err != nil {
		return nil, err
	}
	sig[64] += 27
	return sig, nil
}

// RecoverText returns the address that produced sig over msg.
// Both 0/1 and 27/28 recovery ids are accepted.
func RecoverText(msg string, sig []byte) (common.Address, error) {
	if len(sig) != SignatureLen {
		return common.Address{}, fmt.Errorf("%w: signature must be %d bytes", errs.ErrInvalidSignature, SignatureLen)
	}
	s := make([]byte, SignatureLen)
	copy(s, sig)
	if s[64] >= 27 {
		s[64] -= 27
	}
	if s[64] > 1 {
		return common.Address{}, fmt.Errorf("%w: bad recovery id", errs.ErrInvalidSignature)
	}
	pub, err := ethcrypto.SigToPub(accounts.TextHash([]byte(msg)), s)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", errs.ErrInvalidSignature, err)
	}
	return ethcrypto.PubkeyToAddress(*pub), nil
}

// Address returns the account controlled by key.
func Address(key *ecdsa.PrivateKey) common.Address {
	return ethcrypto.PubkeyToAddress(key.PublicKey)
}

// GenerateKey creates a new secp256k1 account key.
func GenerateKey() (*ecdsa.PrivateKey, error) { return ethcrypto.GenerateKey() }

// KeyFromHex parses a hex private key with or without 0x.
func KeyFromHex(s string) (*ecdsa.PrivateKey, error) {
	return ethcrypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(s), "0x"))
}

// KeyBytes serialises the private scalar.
func KeyBytes(key *ecdsa.PrivateKey) []byte { return ethcrypto.FromECDSA(key) }

// KeyFromBytes is the inverse of KeyBytes.
func KeyFromBytes(b []byte) (*ecdsa.PrivateKey, error) { return ethcrypto.ToECDSA(b) }

// ParseAddress accepts a 20-byte hex address in any letter case.
func ParseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: bad address %q", errs.ErrInvalidArgument, s)
	}
	return common.HexToAddress(s), nil
}

// EncodeSignature renders a signature as 0x-prefixed hex.
func EncodeSignature(sig []byte) string { return hexutil.Encode(sig) }

// DecodeSignature parses a 0x-prefixed hex signature.
func DecodeSignature(s string) ([]byte, error) {
	b, err := hexutil.Decode(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidSignature, err)
	}
	if len(b) != SignatureLen {
		return nil, errors.Join(errs.ErrInvalidSignature, fmt.Errorf("signature length %d", len(b)))
	}
	return b, nil
}
