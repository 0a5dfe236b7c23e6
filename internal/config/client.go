package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Client is the CLI configuration stored in the user config dir.
type Client struct {
	// Server is the gRPC endpoint. Empty means use the deployment record.
	Server string `yaml:"server"`
	// StorageURL is the HTTP storage API base.
	StorageURL  string        `yaml:"storage_url"`
	Network     string        `yaml:"network"`
	Deployments string        `yaml:"deployments_file"`
	VerifyBase  string        `yaml:"verify_base"`
	Timeout     time.Duration `yaml:"timeout"`
	CACert      string        `yaml:"cacert"`
	Insecure    bool          `yaml:"insecure"`
	Plaintext   bool          `yaml:"plaintext"`
}

// ClientDefaults targets a local development server.
func ClientDefaults() Client {
	return Client{
		StorageURL:  "http://localhost:8080",
		Deployments: "deployments.json",
		VerifyBase:  "http://localhost:8080/verify",
		Timeout:     15 * time.Second,
	}
}

// LoadClient reads path over ClientDefaults; a missing file is not an error.
func LoadClient(path string) (Client, error) {
	c := ClientDefaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c, applyClientEnv(&c, os.Getenv)
		}
		return Client{}, fmt.Errorf("config load: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Client{}, fmt.Errorf("config unmarshal: %w", err)
	}
	return c, applyClientEnv(&c, os.Getenv)
}

// SaveClient writes c to path with owner-only permissions.
func SaveClient(path string, c Client) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

func applyClientEnv(c *Client, getenv func(string) string) error {
	if v := getenv(EnvPrefix + "SERVER"); v != "" {
		c.Server = v
	}
	if v := getenv(EnvPrefix + "STORAGE_URL"); v != "" {
		c.StorageURL = v
	}
	if v := getenv(EnvPrefix + "NETWORK"); v != "" {
		c.Network = v
	}
	if v := getenv(EnvPrefix + "TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sTIMEOUT: %w", EnvPrefix, err)
		}
		c.Timeout = d
	}
	return nil
}
