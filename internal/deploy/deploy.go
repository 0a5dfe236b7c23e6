// Package deploy reads and writes deployments.json, the record that tells
// clients where a ledger instance lives on each network.
package deploy

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/and161185/ijazah-ledger/internal/errs"
	"github.com/and161185/ijazah-ledger/internal/model"
)

// ContractName keys the ledger entry inside a network.
const ContractName = "IjazahNFT"

// DefaultNetwork is used when neither network nor chain id is given.
const DefaultNetwork = "development"

var knownChains = map[uint64]string{
	1:        "mainnet",
	1337:     "ganache",
	31337:    "localhost",
	11155111: "sepolia",
}

// NetworkName returns the conventional name for a chain id.
func NetworkName(chainID uint64) string {
	if name, ok := knownChains[chainID]; ok {
		return name
	}
	return "chain-" + strconv.FormatUint(chainID, 10)
}

// Record is one deployed ledger instance.
type Record struct {
	Address        string    `json:"address"`
	Network        string    `json:"network"`
	ChainID        uint64    `json:"chainId"`
	Endpoint       string    `json:"endpoint,omitempty"`
	DeployedAt     time.Time `json:"deployedAt"`
	Admin          string    `json:"admin"`
	IssuerRoleHash string    `json:"issuerRoleHash"`
}

// FromInfo builds a record for a bootstrapped ledger.
func FromInfo(info model.LedgerInfo, endpoint string) Record {
	return Record{
		Address:        info.ContractAddress.Hex(),
		Network:        info.Network,
		ChainID:        info.ChainID,
		Endpoint:       endpoint,
		DeployedAt:     info.CreatedAt.UTC(),
		Admin:          info.Admin.Hex(),
		IssuerRoleHash: info.IssuerRoleHash,
	}
}

// File maps network -> contract name -> record.
type File map[string]map[string]Record

// Load reads path. A missing file yields an empty File.
func Load(path string) (File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return File{}, nil
		}
		return nil, fmt.Errorf("read deployments: %w", err)
	}
	f := File{}
	if len(strings.TrimSpace(string(b))) == 0 {
		return f, nil
	}
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse deployments %s: %w", path, err)
	}
	return f, nil
}

// Save writes f atomically, keeping other networks' entries intact.
func Save(path string, f File) error {
	b, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create deployments dir: %w", err)
		}
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".deployments-*.json")
	if err != nil {
		return fmt.Errorf("write deployments: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(append(b, '\n')); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write deployments: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write deployments: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Put stores r under its network.
func (f File) Put(r Record) {
	if f[r.Network] == nil {
		f[r.Network] = map[string]Record{}
	}
	f[r.Network][ContractName] = r
}

// Networks lists the networks that carry a ledger record.
func (f File) Networks() []string {
	out := make([]string, 0, len(f))
	for name, contracts := range f {
		if _, ok := contracts[ContractName]; ok {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Lookup finds the record by network name or decimal chain id.
func (f File) Lookup(networkOrChain string) (Record, error) {
	key := strings.TrimSpace(networkOrChain)
	if key == "" {
		key = DefaultNetwork
	}
	if r, ok := f[key][ContractName]; ok {
		return r, nil
	}
	if id, err := strconv.ParseUint(key, 10, 64); err == nil {
		for _, name := range f.Networks() {
			if r := f[name][ContractName]; r.ChainID == id {
				return r, nil
			}
		}
	}
	return Record{}, fmt.Errorf("%w: no deployment for network %q", errs.ErrNotFound, key)
}

// Upsert loads path, replaces r's network entry and saves it back.
func Upsert(path string, r Record) error {
	f, err := Load(path)
	if err != nil {
		return err
	}
	f.Put(r)
	return Save(path, f)
}
