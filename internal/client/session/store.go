package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/and161185/ijazah-ledger/internal/crypto/ethsig"
	"github.com/and161185/ijazah-ledger/internal/model"
)

type sessionFile struct {
	AccessToken     string    `json:"access_token"`
	Address         string    `json:"address"`
	IsIssuer        bool      `json:"is_issuer"`
	AuthenticatedAt time.Time `json:"authenticated_at"`
	ExpiresAt       time.Time `json:"expires_at"`
}

// FileStore persists the session as JSON readable only by the owner.
type FileStore struct{ path string }

func NewFileStore(path string) *FileStore { return &FileStore{path: path} }

// Load returns nil without error when nothing is stored.
func (f *FileStore) Load() (*model.Session, error) {
	b, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var sf sessionFile
	if err := json.Unmarshal(b, &sf); err != nil {
		return nil, err
	}
	addr, err := ethsig.ParseAddress(sf.Address)
	if err != nil {
		return nil, err
	}
	return &model.Session{
		Address:         addr,
		IsIssuer:        sf.IsIssuer,
		AuthenticatedAt: sf.AuthenticatedAt,
		ExpiresAt:       sf.ExpiresAt,
		Token:           sf.AccessToken,
	}, nil
}

func (f *FileStore) Save(s model.Session) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(sessionFile{
		AccessToken:     s.Token,
		Address:         s.Address.Hex(),
		IsIssuer:        s.IsIssuer,
		AuthenticatedAt: s.AuthenticatedAt,
		ExpiresAt:       s.ExpiresAt,
	}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, b, 0o600)
}

func (f *FileStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
