package remote

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/and161185/ijazah-ledger/internal/errs"
	"github.com/and161185/ijazah-ledger/internal/storage"
)

// Storage talks to the HTTP storage API.
type Storage struct {
	base string
	http *http.Client
	opts Options
}

// NewStorage targets base, e.g. http://localhost:8080.
func NewStorage(base string, hc *http.Client, opts Options) *Storage {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Storage{base: strings.TrimRight(base, "/"), http: hc, opts: opts.withDefaults()}
}

type apiError struct {
	Error string `json:"error"`
}

func (s *Storage) do(req *http.Request, out any) error {
	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrStorageUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var ae apiError
		_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&ae)
		msg := ae.Error
		if msg == "" {
			msg = resp.Status
		}
		switch {
		case resp.StatusCode == http.StatusNotFound:
			return fmt.Errorf("%w: %s", errs.ErrNotFound, msg)
		case resp.StatusCode >= 500:
			return fmt.Errorf("%w: %s", errs.ErrStorageUnavailable, msg)
		default:
			return fmt.Errorf("%w: %s", errs.ErrInvalidArgument, msg)
		}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", errs.ErrStorageUnavailable, err)
	}
	return nil
}

// Upload stores ciphertext and returns its cid. Never retried.
func (s *Storage) Upload(ctx context.Context, data []byte, filename string) (string, error) {
	body, err := json.Marshal(map[string]string{
		"data":     base64.StdEncoding.EncodeToString(data),
		"filename": filename,
	})
	if err != nil {
		return "", err
	}
	var out struct {
		CID string `json:"cid"`
	}
	err = s.opts.once(ctx, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.base+"/api/upload", bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		return s.do(req, &out)
	})
	if err != nil {
		return "", err
	}
	if out.CID == "" {
		return "", fmt.Errorf("%w: empty cid", errs.ErrStorageUnavailable)
	}
	return out.CID, nil
}

func escapeCID(cid string) string {
	parts := strings.Split(cid, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}

// Fetch downloads an object with its metadata, retrying once on
// transport failure.
func (s *Storage) Fetch(ctx context.Context, cid string) (storage.Object, error) {
	var out struct {
		Data     string            `json:"data"`
		Storage  string            `json:"storage"`
		Metadata *storage.Metadata `json:"metadata"`
	}
	err := s.opts.read(ctx, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.base+"/api/files/"+escapeCID(cid), nil)
		if err != nil {
			return err
		}
		return s.do(req, &out)
	})
	if err != nil {
		return storage.Object{}, err
	}
	data, err := base64.StdEncoding.DecodeString(out.Data)
	if err != nil {
		return storage.Object{}, fmt.Errorf("%w: bad payload encoding", errs.ErrStorageUnavailable)
	}
	return storage.Object{Data: data, Backend: out.Storage, Metadata: out.Metadata}, nil
}

// Download returns only the ciphertext.
func (s *Storage) Download(ctx context.Context, cid string) ([]byte, error) {
	obj, err := s.Fetch(ctx, cid)
	if err != nil {
		return nil, err
	}
	return obj.Data, nil
}
