// Package keystore seals wallet private keys at rest with a passphrase.
//
// The passphrase is stretched with Argon2id into a key-encryption key, and the
// private scalar is sealed with XChaCha20-Poly1305 bound to the account address.
package keystore

import (
	"crypto/ecdsa"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"

	"github.com/and161185/ijazah-ledger/internal/crypto/ethsig"
	"github.com/and161185/ijazah-ledger/internal/errs"
)

// Version is the current keyfile format.
const Version = 1

// Argon2id parameters for passphrase stretching.
const (
	argonTime    uint32 = 3
	argonMemory  uint32 = 64 * 1024
	argonThreads uint8  = 1
	kekLen       uint32 = chacha20poly1305.KeySize
	saltLen             = 16
)

// KDFParams records how the key-encryption key was derived.
type KDFParams struct {
	Salt    []byte `json:"salt"`
	Time    uint32 `json:"time"`
	Memory  uint32 `json:"memory"`
	Threads uint8  `json:"threads"`
}

// File is the on-disk wallet keyfile.
type File struct {
	Version int       `json:"version"`
	Address string    `json:"address"`
	KDF     KDFParams `json:"kdf"`
	Sealed  []byte    `json:"sealed"` // nonce || AEAD(private key), AAD = address
}

// ErrWrongPassphrase is returned when the keyfile does not open.
var ErrWrongPassphrase = fmt.Errorf("%w: wrong passphrase or corrupted keyfile", errs.ErrDecrypt)

func deriveKEK(passphrase []byte, p KDFParams) []byte {
	return argon2.IDKey(passphrase, p.Salt, p.Time, p.Memory, p.Threads, kekLen)
}

// Seal encrypts key under passphrase.
func Seal(key *ecdsa.PrivateKey, passphrase []byte) (*File, error) {
	if len(passphrase) == 0 {
		return nil, errors.New("validation: empty passphrase")
	}
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	p := KDFParams{Salt: salt, Time: argonTime, Memory: argonMemory, Threads: argonThreads}
	aead, err := chacha20poly1305.NewX(deriveKEK(passphrase, p))
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	addr := ethsig.Address(key)
	plain := ethsig.KeyBytes(key)
	sealed := make([]byte, 0, len(nonce)+len(plain)+aead.Overhead())
	sealed = append(sealed, nonce...)
	sealed = aead.Seal(sealed, nonce, plain, addr.Bytes())
	return &File{Version: Version, Address: addr.Hex(), KDF: p, Sealed: sealed}, nil
}

// Open decrypts the private key and checks it matches the recorded address.
func Open(f *File, passphrase []byte) (*ecdsa.PrivateKey, error) {
	if f == nil || f.Version != Version {
		return nil, errors.New("unsupported keyfile version")
	}
	if len(f.Sealed) < chacha20poly1305.NonceSizeX {
		return nil, ErrWrongPassphrase
	}
	addr, err := ethsig.ParseAddress(f.Address)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.NewX(deriveKEK(passphrase, f.KDF))
	if err != nil {
		return nil, err
	}
	nonce := f.Sealed[:chacha20poly1305.NonceSizeX]
	plain, err := aead.Open(nil, nonce, f.Sealed[chacha20poly1305.NonceSizeX:], addr.Bytes())
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	key, err := ethsig.KeyFromBytes(plain)
	if err != nil {
		return nil, err
	}
	if ethsig.Address(key) != addr {
		return nil, ErrWrongPassphrase
	}
	return key, nil
}

// Save writes f to path with owner-only permissions.
func Save(path string, f *File) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

// Load reads a keyfile; a missing file is reported as errs.ErrNotFound.
func Load(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("keyfile %s: %w", path, errs.ErrNotFound)
		}
		return nil, err
	}
	var f File
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("keyfile %s: %w", path, err)
	}
	return &f, nil
}
