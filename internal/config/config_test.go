package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const admin = "0x90F8bf6A479f320ead074411a4B0e7944Ea8c9C1"

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoad_DefaultsNeedSecrets(t *testing.T) {
	c, err := load("", env(nil))
	require.NoError(t, err)
	require.Equal(t, ":50051", c.GRPC.Addr)
	require.Equal(t, "localhost", c.Ledger.Network)
	require.Equal(t, 24*time.Hour, c.Auth.SessionTTL)

	err = c.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "jwt_secret")
	require.Contains(t, err.Error(), "ledger.admin")
}

func TestLoad_YAMLAndEnv(t *testing.T) {
	p := writeFile(t, `
grpc:
  addr: ":9000"
http:
  max_upload_bytes: 1024
auth:
  jwt_secret: "file-secret-should-be-overridden"
  session_ttl: 12h
ledger:
  admin: "`+admin+`"
  chain_id: 11155111
storage:
  filebase:
    bucket: diplomas
`)
	c, err := load(p, env(map[string]string{
		"IJAZAH_JWT_SECRET":          "0123456789abcdef0123",
		"IJAZAH_FILEBASE_ACCESS_KEY": "ak",
		"IJAZAH_FILEBASE_SECRET_KEY": "sk",
	}))
	require.NoError(t, err)
	require.Equal(t, ":9000", c.GRPC.Addr)
	require.Equal(t, ":8080", c.HTTP.Addr)
	require.Equal(t, int64(1024), c.HTTP.MaxUploadBytes)
	require.Equal(t, "0123456789abcdef0123", c.Auth.JWTSecret)
	require.Equal(t, 12*time.Hour, c.Auth.SessionTTL)
	require.Equal(t, "sepolia", c.Ledger.Network)
	require.True(t, c.Storage.Filebase.Store().Enabled())
	require.NoError(t, c.Validate())

	a, err := c.Ledger.AdminAddress()
	require.NoError(t, err)
	require.Equal(t, admin, a.Hex())
}

func TestLoad_BadChainID(t *testing.T) {
	_, err := load("", env(map[string]string{"IJAZAH_CHAIN_ID": "x"}))
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := load(filepath.Join(t.TempDir(), "nope.yaml"), env(nil))
	require.Error(t, err)
}

func TestValidate_Problems(t *testing.T) {
	c := Defaults()
	c.Auth.JWTSecret = "0123456789abcdef"
	c.Ledger.Admin = admin
	require.NoError(t, c.Validate())

	c.GRPC.TLSCert = "cert.pem"
	c.Storage.Filebase.Bucket = "b"
	err := c.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "tls_key")
	require.Contains(t, err.Error(), "secret_key")
}

func TestLimiterPolicy(t *testing.T) {
	p := Defaults().Auth.LimiterPolicy()
	require.Equal(t, 5, p.MaxFails)
	require.Equal(t, 15*time.Minute, p.Window)
}

func TestClient_SaveLoad(t *testing.T) {
	p := filepath.Join(t.TempDir(), "ijz", "config.yaml")

	c, err := LoadClient(p)
	require.NoError(t, err)
	require.Equal(t, 15*time.Second, c.Timeout)

	c.Server = "ledger.example:50051"
	c.Network = "sepolia"
	require.NoError(t, SaveClient(p, c))

	st, err := os.Stat(p)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), st.Mode().Perm())

	got, err := LoadClient(p)
	require.NoError(t, err)
	require.Equal(t, "ledger.example:50051", got.Server)
	require.Equal(t, "sepolia", got.Network)
}

func TestClientEnv(t *testing.T) {
	c := ClientDefaults()
	require.NoError(t, applyClientEnv(&c, env(map[string]string{"IJAZAH_TIMEOUT": "3s", "IJAZAH_SERVER": "h:1"})))
	require.Equal(t, 3*time.Second, c.Timeout)
	require.Equal(t, "h:1", c.Server)
	require.Error(t, applyClientEnv(&c, env(map[string]string{"IJAZAH_TIMEOUT": "soon"})))
}
