package deploy

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/and161185/ijazah-ledger/internal/errs"
	"github.com/and161185/ijazah-ledger/internal/model"
)

func TestLoad_Missing(t *testing.T) {
	f, err := Load(filepath.Join(t.TempDir(), "deployments.json"))
	require.NoError(t, err)
	require.Empty(t, f)
}

func TestLoad_Garbage(t *testing.T) {
	p := filepath.Join(t.TempDir(), "deployments.json")
	require.NoError(t, os.WriteFile(p, []byte("{nope"), 0o644))
	_, err := Load(p)
	require.Error(t, err)
}

func TestUpsert_KeepsOtherNetworks(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "deployments.json")

	require.NoError(t, Upsert(p, Record{Address: "0xA", Network: "sepolia", ChainID: 11155111}))
	require.NoError(t, Upsert(p, Record{Address: "0xB", Network: "localhost", ChainID: 31337}))
	require.NoError(t, Upsert(p, Record{Address: "0xC", Network: "sepolia", ChainID: 11155111}))

	f, err := Load(p)
	require.NoError(t, err)
	require.Equal(t, []string{"localhost", "sepolia"}, f.Networks())

	r, err := f.Lookup("sepolia")
	require.NoError(t, err)
	require.Equal(t, "0xC", r.Address)

	r, err = f.Lookup("31337")
	require.NoError(t, err)
	require.Equal(t, "0xB", r.Address)

	_, err = f.Lookup("ganache")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestSave_FileShape(t *testing.T) {
	p := filepath.Join(t.TempDir(), "deployments.json")
	f := File{}
	f.Put(Record{Address: "0xA", Network: "development", ChainID: 1337, DeployedAt: time.Unix(0, 0).UTC()})
	require.NoError(t, Save(p, f))

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	require.Contains(t, string(b), `"development": {`)
	require.Contains(t, string(b), `"IjazahNFT": {`)
	require.Contains(t, string(b), `"chainId": 1337`)

	r, err := f.Lookup("")
	require.NoError(t, err)
	require.Equal(t, "0xA", r.Address)
}

func TestFromInfo(t *testing.T) {
	admin := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	contract := common.HexToAddress("0x00000000000000000000000000000000000000bb")
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	r := FromInfo(model.LedgerInfo{
		ContractAddress: contract,
		Admin:           admin,
		ChainID:         31337,
		Network:         "localhost",
		IssuerRoleHash:  "0xrole",
		CreatedAt:       at,
	}, "localhost:50051")

	require.Equal(t, contract.Hex(), r.Address)
	require.Equal(t, admin.Hex(), r.Admin)
	require.Equal(t, "localhost:50051", r.Endpoint)
	require.Equal(t, at, r.DeployedAt)
}

func TestNetworkName(t *testing.T) {
	require.Equal(t, "sepolia", NetworkName(11155111))
	require.Equal(t, "ganache", NetworkName(1337))
	require.Equal(t, "chain-42", NetworkName(42))
}
