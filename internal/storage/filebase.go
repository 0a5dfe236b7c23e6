package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/and161185/ijazah-ledger/internal/errs"
)

const (
	filebaseKeyPrefix = "diplomas/"

	DefaultFilebaseEndpoint = "https://s3.filebase.com"
	DefaultFilebaseRegion   = "us-east-1"
	DefaultFilebaseGateway  = "https://ipfs.filebase.io/ipfs"
)

// s3API is the part of the S3 client the store uses.
type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadObject(ctx context.Context, in *s3.HeadObjectInput, opts ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	GetObject(ctx context.Context, in *s3.GetObjectInput, opts ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// FilebaseConfig configures the Filebase bucket.
type FilebaseConfig struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	Gateway   string
}

// Enabled reports whether credentials and a bucket are configured.
func (c FilebaseConfig) Enabled() bool {
	return c.Bucket != "" && c.AccessKey != "" && c.SecretKey != ""
}

// FilebaseStore pins objects through the Filebase S3 API and reads them
// back through the IPFS gateway, falling back to S3.
type FilebaseStore struct {
	api     s3API
	bucket  string
	gateway string
	http    *http.Client
	now     func() time.Time
}

// NewFilebaseStore builds an S3 client for the Filebase endpoint.
func NewFilebaseStore(cfg FilebaseConfig, hc *http.Client) (*FilebaseStore, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("%w: filebase bucket and credentials are required", errs.ErrInvalidArgument)
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultFilebaseEndpoint
	}
	if cfg.Region == "" {
		cfg.Region = DefaultFilebaseRegion
	}
	client := s3.New(s3.Options{
		Region:                     cfg.Region,
		BaseEndpoint:               aws.String(cfg.Endpoint),
		Credentials:                aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
		UsePathStyle:               true,
		RequestChecksumCalculation: aws.RequestChecksumCalculationWhenRequired,
		ResponseChecksumValidation: aws.ResponseChecksumValidationWhenRequired,
	})
	return newFilebaseStore(client, cfg.Bucket, cfg.Gateway, hc), nil
}

func newFilebaseStore(api s3API, bucket, gateway string, hc *http.Client) *FilebaseStore {
	if gateway == "" {
		gateway = DefaultFilebaseGateway
	}
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	return &FilebaseStore{
		api:     api,
		bucket:  bucket,
		gateway: strings.TrimRight(gateway, "/"),
		http:    hc,
		now:     time.Now,
	}
}

// Name returns BackendIPFS.
func (s *FilebaseStore) Name() string { return BackendIPFS }

// Put uploads under diplomas/<ms>-<filename>.enc and returns the IPFS CID
// Filebase assigns, or the object key when none is reported.
func (s *FilebaseStore) Put(ctx context.Context, data []byte, filename string) (string, error) {
	now := s.now().UTC()
	key := filebaseKeyPrefix + strconv.FormatInt(now.UnixMilli(), 10) + "-" + filename + ".enc"
	_, err := s.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/octet-stream"),
		Metadata: map[string]string{
			"filename":   filename,
			"uploadedAt": now.Format(time.RFC3339Nano),
			"encrypted":  "true",
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: put object: %v", errs.ErrStorageUnavailable, err)
	}

	head, err := s.api.HeadObject(ctx, &s3.HeadObjectInput{Bucket: aws.String(s.bucket), Key: aws.String(key)})
	if err != nil {
		return key, nil
	}
	if cid := metaValue(head.Metadata, "cid"); cid != "" {
		return cid, nil
	}
	return key, nil
}

// Get loads via the gateway for IPFS CIDs and via S3 otherwise.
func (s *FilebaseStore) Get(ctx context.Context, cid string) (Object, error) {
	if !strings.HasPrefix(cid, "Qm") && !strings.HasPrefix(cid, "bafy") {
		return s.fromBucket(ctx, cid)
	}
	data, gwErr := s.fromGateway(ctx, cid)
	if gwErr == nil {
		return Object{Data: data, Backend: BackendIPFS, Metadata: &Metadata{CID: cid, Size: len(data)}}, nil
	}
	obj, err := s.fromBucket(ctx, cid)
	if errors.Is(err, errs.ErrNotFound) && !errors.Is(gwErr, errs.ErrNotFound) {
		// a CID is never a bucket key, so the miss says nothing; the gateway failure does
		return Object{}, fmt.Errorf("%w: gateway: %v", errs.ErrStorageUnavailable, gwErr)
	}
	return obj, err
}

func (s *FilebaseStore) fromGateway(ctx context.Context, cid string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.gateway+"/"+cid, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, errs.ErrNotFound
	default:
		return nil, fmt.Errorf("gateway status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (s *FilebaseStore) fromBucket(ctx context.Context, key string) (Object, error) {
	out, err := s.api.GetObject(ctx, &s3.GetObjectInput{Bucket: aws.String(s.bucket), Key: aws.String(key)})
	if err != nil {
		var nsk *types.NoSuchKey
		var nf *types.NotFound
		if errors.As(err, &nsk) || errors.As(err, &nf) {
			return Object{}, errs.ErrNotFound
		}
		return Object{}, fmt.Errorf("%w: get object: %v", errs.ErrStorageUnavailable, err)
	}
	defer out.Body.Close()
	data, err := io.ReadAll(out.Body)
	if err != nil {
		return Object{}, fmt.Errorf("%w: read object: %v", errs.ErrStorageUnavailable, err)
	}
	meta := &Metadata{CID: key, Size: len(data), Filename: metaValue(out.Metadata, "filename")}
	if ts := metaValue(out.Metadata, "uploadedAt"); ts != "" {
		if at, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			meta.UploadedAt = at
		}
	}
	return Object{Data: data, Backend: BackendIPFS, Metadata: meta}, nil
}

// metaValue looks up user metadata case-insensitively; S3 lowercases keys.
func metaValue(m map[string]string, key string) string {
	if v, ok := m[key]; ok {
		return v
	}
	for k, v := range m {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}
