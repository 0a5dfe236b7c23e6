// Package doccrypto hashes and encrypts diploma documents on the client before upload.
//
// Documents are encrypted with AES-256-CBC and PKCS#7 padding. The key and IV never
// reach the server; they travel only in the verification link fragment.
package doccrypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/and161185/ijazah-ledger/internal/errs"
)

// Sizes of the symmetric material.
const (
	KeySize = 32
	IVSize  = aes.BlockSize
)

// Hash returns "0x" + lowercase hex SHA-256 of doc.
func Hash(doc []byte) string {
	sum := sha256.Sum256(doc)
	return "0x" + hex.EncodeToString(sum[:])
}

// GenerateKey returns a fresh random AES-256 key.
func GenerateKey() ([]byte, error) { return random(KeySize) }

// GenerateIV returns a fresh random CBC IV.
func GenerateIV() ([]byte, error) { return random(IVSize) }

func random(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

// Encrypt pads doc with PKCS#7 and encrypts it with AES-256-CBC.
func Encrypt(doc, key, iv []byte) ([]byte, error) {
	block, err := newBlock(key, iv)
	if err != nil {
		return nil, err
	}
	pad := aes.BlockSize - len(doc)%aes.BlockSize
	buf := make([]byte, len(doc)+pad)
	copy(buf, doc)
	copy(buf[len(doc):], bytes.Repeat([]byte{byte(pad)}, pad))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(buf, buf)
	return buf, nil
}

// Decrypt reverses Encrypt. Any wrong key, truncated input or bad padding yields errs.ErrDecrypt.
func Decrypt(ct, key, iv []byte) ([]byte, error) {
	block, err := newBlock(key, iv)
	if err != nil {
		return nil, err
	}
	if len(ct) == 0 || len(ct)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext is not block aligned", errs.ErrDecrypt)
	}
	out := make([]byte, len(ct))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, ct)

	pad := int(out[len(out)-1])
	if pad == 0 || pad > aes.BlockSize {
		return nil, fmt.Errorf("%w: bad padding", errs.ErrDecrypt)
	}
	for _, b := range out[len(out)-pad:] {
		if int(b) != pad {
			return nil, fmt.Errorf("%w: bad padding", errs.ErrDecrypt)
		}
	}
	return out[:len(out)-pad], nil
}

func newBlock(key, iv []byte) (cipher.Block, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: key must be %d bytes", errs.ErrDecrypt, KeySize)
	}
	if len(iv) != IVSize {
		return nil, fmt.Errorf("%w: iv must be %d bytes", errs.ErrDecrypt, IVSize)
	}
	return aes.NewCipher(key)
}

// EncodeKey renders key material for the verification link.
func EncodeKey(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

// DecodeKey parses key material from the verification link.
func DecodeKey(s string) ([]byte, error) { return base64.StdEncoding.DecodeString(s) }
