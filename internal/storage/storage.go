// Package storage keeps encrypted diploma documents in content stores:
// a local directory, a Filebase S3/IPFS bucket, and a router over both.
package storage

import (
	"context"
	"strings"
	"time"
)

// Backend names reported with downloaded objects.
const (
	BackendLocal = "local"
	BackendIPFS  = "ipfs"
)

// Metadata describes a stored object.
type Metadata struct {
	Filename   string    `json:"filename"`
	Size       int       `json:"size"`
	UploadedAt time.Time `json:"uploadedAt"`
	CID        string    `json:"cid"`
}

// Object is a downloaded document with the backend that served it.
type Object struct {
	Data     []byte
	Metadata *Metadata
	Backend  string
}

// Store is a content store for encrypted documents.
type Store interface {
	// Put stores data and returns its content identifier.
	Put(ctx context.Context, data []byte, filename string) (string, error)
	// Get loads an object. Unknown cids yield errs.ErrNotFound and
	// backend failures errs.ErrStorageUnavailable.
	Get(ctx context.Context, cid string) (Object, error)
	// Name identifies the backend.
	Name() string
}

// IsPinnedCID reports whether cid belongs to the pinning service: IPFS
// CIDv0/CIDv1 identifiers or bucket keys that never resolved to a CID.
func IsPinnedCID(cid string) bool {
	return strings.HasPrefix(cid, "Qm") || strings.HasPrefix(cid, "bafy") || strings.HasPrefix(cid, filebaseKeyPrefix)
}
