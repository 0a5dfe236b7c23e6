package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	pkgcrypto "github.com/and161185/ijazah-ledger/internal/crypto"
	"github.com/and161185/ijazah-ledger/internal/errs"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// LocalStore keeps objects as <cid>.enc plus <cid>.meta.json in one directory.
type LocalStore struct {
	dir   string
	now   func() time.Time
	write func(name string, data []byte, perm os.FileMode) error
}

// NewLocalStore creates dir if needed.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir, now: time.Now, write: os.WriteFile}, nil
}

// Name returns BackendLocal.
func (s *LocalStore) Name() string { return BackendLocal }

func randomBase36(n int) (string, error) {
	b, err := pkgcrypto.RandBytes(n)
	if err != nil {
		return "", err
	}
	for i := range b {
		b[i] = base36[int(b[i])%len(base36)]
	}
	return string(b), nil
}

func newLocalCID(at time.Time) (string, error) {
	suffix, err := randomBase36(8)
	if err != nil {
		return "", err
	}
	return "local-" + strconv.FormatInt(at.UnixMilli(), 36) + "-" + suffix, nil
}

// checkLocalCID rejects identifiers that could escape the store directory.
func checkLocalCID(cid string) error {
	if cid == "" || cid == "." || cid == ".." ||
		strings.ContainsAny(cid, `/\`) || strings.Contains(cid, "..") || strings.ContainsRune(cid, 0) {
		return fmt.Errorf("%w: bad cid %q", errs.ErrInvalidArgument, cid)
	}
	return nil
}

func (s *LocalStore) paths(cid string) (data, meta string) {
	return filepath.Join(s.dir, cid+".enc"), filepath.Join(s.dir, cid+".meta.json")
}

// Put writes the object and its metadata.
func (s *LocalStore) Put(_ context.Context, data []byte, filename string) (string, error) {
	now := s.now().UTC()
	cid, err := newLocalCID(now)
	if err != nil {
		return "", err
	}
	dataPath, metaPath := s.paths(cid)
	meta, err := json.MarshalIndent(Metadata{Filename: filename, Size: len(data), UploadedAt: now, CID: cid}, "", "  ")
	if err != nil {
		return "", err
	}
	if err := s.write(dataPath, data, 0o644); err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrStorageUnavailable, err)
	}
	if err := s.write(metaPath, meta, 0o644); err != nil {
		_ = os.Remove(dataPath)
		return "", fmt.Errorf("%w: %v", errs.ErrStorageUnavailable, err)
	}
	return cid, nil
}

// Get reads the object. Missing metadata is not an error.
func (s *LocalStore) Get(_ context.Context, cid string) (Object, error) {
	if err := checkLocalCID(cid); err != nil {
		return Object{}, err
	}
	dataPath, metaPath := s.paths(cid)
	data, err := os.ReadFile(dataPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Object{}, errs.ErrNotFound
		}
		return Object{}, fmt.Errorf("%w: %v", errs.ErrStorageUnavailable, err)
	}
	obj := Object{Data: data, Backend: BackendLocal}
	if b, err := os.ReadFile(metaPath); err == nil {
		var m Metadata
		if json.Unmarshal(b, &m) == nil {
			obj.Metadata = &m
		}
	}
	return obj, nil
}
