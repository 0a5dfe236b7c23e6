package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/require"

	"github.com/and161185/ijazah-ledger/internal/errs"
)

type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
	meta    map[string]map[string]string
	cid     string
	putErr  error
	getErr  error
	heads   int
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}, meta: map[string]map[string]string{}}
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return nil, f.putErr
	}
	b, _ := io.ReadAll(in.Body)
	f.objects[aws.ToString(in.Key)] = b
	f.meta[aws.ToString(in.Key)] = in.Metadata
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) HeadObject(_ context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.heads++
	md := map[string]string{}
	if f.cid != "" {
		md["cid"] = f.cid
	}
	return &s3.HeadObjectOutput{Metadata: md}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	b, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(b)), Metadata: f.meta[aws.ToString(in.Key)]}, nil
}

func TestFilebase_PutUsesReportedCID(t *testing.T) {
	api := newFakeS3()
	api.cid = "bafybeigdyrzt"
	s := newFilebaseStore(api, "bucket", "", nil)
	s.now = func() time.Time { return time.UnixMilli(1700000000000) }

	cid, err := s.Put(context.Background(), []byte("enc"), "doc.pdf")
	require.NoError(t, err)
	require.Equal(t, "bafybeigdyrzt", cid)

	md := api.meta["diplomas/1700000000000-doc.pdf.enc"]
	require.Equal(t, "doc.pdf", md["filename"])
	require.Equal(t, "true", md["encrypted"])
	require.NotEmpty(t, md["uploadedAt"])
}

func TestFilebase_PutFallsBackToKey(t *testing.T) {
	api := newFakeS3()
	s := newFilebaseStore(api, "bucket", "", nil)
	s.now = func() time.Time { return time.UnixMilli(5) }

	cid, err := s.Put(context.Background(), []byte("enc"), "a.pdf")
	require.NoError(t, err)
	require.Equal(t, "diplomas/5-a.pdf.enc", cid)
	require.True(t, IsPinnedCID(cid))

	obj, err := s.Get(context.Background(), cid)
	require.NoError(t, err)
	require.Equal(t, []byte("enc"), obj.Data)
	require.Equal(t, "a.pdf", obj.Metadata.Filename)
}

func TestFilebase_PutError(t *testing.T) {
	api := newFakeS3()
	api.putErr = errors.New("connection reset")
	s := newFilebaseStore(api, "bucket", "", nil)
	_, err := s.Put(context.Background(), []byte("x"), "x")
	require.ErrorIs(t, err, errs.ErrStorageUnavailable)
}

func TestFilebase_GetViaGateway(t *testing.T) {
	gw := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/QmTest" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("from-gateway"))
	}))
	defer gw.Close()

	s := newFilebaseStore(newFakeS3(), "bucket", gw.URL+"/", gw.Client())
	obj, err := s.Get(context.Background(), "QmTest")
	require.NoError(t, err)
	require.Equal(t, []byte("from-gateway"), obj.Data)
	require.Equal(t, BackendIPFS, obj.Backend)
}

func TestFilebase_GatewayFailureFallsBackToBucket(t *testing.T) {
	gw := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer gw.Close()

	api := newFakeS3()
	api.objects["bafyabc"] = []byte("from-bucket")
	s := newFilebaseStore(api, "bucket", gw.URL, gw.Client())

	obj, err := s.Get(context.Background(), "bafyabc")
	require.NoError(t, err)
	require.Equal(t, []byte("from-bucket"), obj.Data)
}

func TestFilebase_GatewayOutageIsUnavailable(t *testing.T) {
	gw := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer gw.Close()

	s := newFilebaseStore(newFakeS3(), "bucket", gw.URL, gw.Client())
	_, err := s.Get(context.Background(), "bafyabc")
	require.ErrorIs(t, err, errs.ErrStorageUnavailable)
	require.Contains(t, err.Error(), "503")
}

func TestFilebase_GatewayMissIsNotFound(t *testing.T) {
	gw := httptest.NewServer(http.NotFoundHandler())
	defer gw.Close()

	s := newFilebaseStore(newFakeS3(), "bucket", gw.URL, gw.Client())
	_, err := s.Get(context.Background(), "QmMissing")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestFilebase_GetErrors(t *testing.T) {
	api := newFakeS3()
	s := newFilebaseStore(api, "bucket", "", nil)

	_, err := s.Get(context.Background(), "diplomas/missing.enc")
	require.ErrorIs(t, err, errs.ErrNotFound)

	api.getErr = errors.New("timeout")
	_, err = s.Get(context.Background(), "diplomas/missing.enc")
	require.ErrorIs(t, err, errs.ErrStorageUnavailable)
}

func TestFilebaseConfig_Enabled(t *testing.T) {
	require.False(t, FilebaseConfig{}.Enabled())
	require.True(t, FilebaseConfig{Bucket: "b", AccessKey: "k", SecretKey: "s"}.Enabled())

	_, err := NewFilebaseStore(FilebaseConfig{Bucket: "b"}, nil)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	s, err := NewFilebaseStore(FilebaseConfig{Bucket: "b", AccessKey: "k", SecretKey: "s"}, nil)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(s.gateway, "https://"))
}

func TestMetaValue_CaseInsensitive(t *testing.T) {
	require.Equal(t, "v", metaValue(map[string]string{"Uploadedat": "v"}, "uploadedAt"))
	require.Empty(t, metaValue(nil, "cid"))
}
