// Package sharelink encodes the verification link handed to diploma
// holders. Decryption material lives only in the URL fragment, which
// browsers never send to a server.
package sharelink

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/and161185/ijazah-ledger/internal/crypto/doccrypto"
)

// Link is the content of a verification fragment.
type Link struct {
	DiplomaID uint64
	Key       []byte
	IV        []byte
	CID       string
}

// Build returns <base>#diplomaId=..&key=..&iv=..&cid=..; any fragment
// already on base is replaced.
func Build(base string, l Link) string {
	base, _, _ = strings.Cut(base, "#")
	var b strings.Builder
	b.WriteString(base)
	b.WriteString("#diplomaId=")
	b.WriteString(strconv.FormatUint(l.DiplomaID, 10))
	b.WriteString("&key=")
	b.WriteString(url.QueryEscape(doccrypto.EncodeKey(l.Key)))
	b.WriteString("&iv=")
	b.WriteString(url.QueryEscape(doccrypto.EncodeKey(l.IV)))
	b.WriteString("&cid=")
	b.WriteString(url.QueryEscape(l.CID))
	return b.String()
}

// Parse accepts a full URL or just its fragment. It reports false when
// any field is missing or malformed.
func Parse(s string) (Link, bool) {
	s = strings.TrimSpace(s)
	if _, frag, ok := strings.Cut(s, "#"); ok {
		s = frag
	}
	vals, err := url.ParseQuery(s)
	if err != nil {
		return Link{}, false
	}
	rawID, rawKey, rawIV, cid := vals.Get("diplomaId"), vals.Get("key"), vals.Get("iv"), vals.Get("cid")
	if rawID == "" || rawKey == "" || rawIV == "" || cid == "" {
		return Link{}, false
	}
	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil {
		return Link{}, false
	}
	key, err := doccrypto.DecodeKey(rawKey)
	if err != nil {
		return Link{}, false
	}
	iv, err := doccrypto.DecodeKey(rawIV)
	if err != nil {
		return Link{}, false
	}
	return Link{DiplomaID: id, Key: key, IV: iv, CID: cid}, true
}
