// Command ijz is the wallet-holding client of the diploma ledger.
package main

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/and161185/ijazah-ledger/internal/config"
)

// ---- config paths ----

func cfgDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "ijazah")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "ijazah")
}

func configPath() string  { return filepath.Join(cfgDir(), "config.yaml") }
func walletPath() string  { return filepath.Join(cfgDir(), "wallet.json") }
func sessionPath() string { return filepath.Join(cfgDir(), "session.json") }

// ---- grpc dial ----

func loadTLS(caPath string, insecureSkip bool) (credentials.TransportCredentials, error) {
	if insecureSkip {
		return credentials.NewTLS(&tls.Config{InsecureSkipVerify: true}), nil
	}
	if caPath == "" {
		return credentials.NewClientTLSFromCert(nil, ""), nil
	}
	pem, err := os.ReadFile(caPath)
	if err != nil {
		return nil, err
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, errors.New("bad CA cert")
	}
	return credentials.NewTLS(&tls.Config{RootCAs: pool}), nil
}

func dial(ctx context.Context, addr string, c config.Client) (*grpc.ClientConn, error) {
	creds := insecure.NewCredentials()
	if !c.Plaintext {
		var err error
		if creds, err = loadTLS(c.CACert, c.Insecure); err != nil {
			return nil, err
		}
	}
	//nolint:staticcheck // DialContext is supported through 1.x; migrate when grpc.NewClient is stable
	return grpc.DialContext(ctx, addr, grpc.WithTransportCredentials(creds))
}

// ---- utils ----

func readAll(p string) ([]byte, error) {
	if p == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(p)
}

var protoOut = protojson.MarshalOptions{Multiline: true, Indent: "  ", EmitUnpopulated: true}

func printJSON(w io.Writer, v any) {
	if m, ok := v.(proto.Message); ok {
		if b, err := protoOut.Marshal(m); err == nil {
			_, _ = fmt.Fprintln(w, string(b))
		}
		return
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func usage() {
	fmt.Fprintf(os.Stderr, `ijz CLI
Usage:
  ijz [-config file] [-server HOST:PORT] [-network name|chainId] [-storage URL]
      [-cacert file | -insecure | -plaintext] [-wallet file] [-pass phrase] [-y] <cmd> [args]

Commands:
  version
  wallet new    [-force]                         (creates a sealed keyfile)
  wallet import -key <hex> [-force]
  wallet show
  login                                          (signs a nonce, saves session)
  logout
  whoami
  mint     -file <pdf> -to <addr> -name <student> -nim <nim>
  revoke   -id <n> -reason <text>
  verify   -url <share link> | -id <n>  [-out file]
  details  -id <n>
  ledger   [-status all|active|revoked] [-q text] [-offset n] [-limit n]
  records  [-owner addr] [-status s] [-q text] [-offset n] [-limit n]
  issuer   add|remove|check -addr <addr>
  transfer -id <n> -to <addr>
  info
`)
	os.Exit(2)
}

// ---- main ----

var (
	version   = "dev"
	buildDate = "unknown"
)

// main loads client configuration, applies global flag overrides and
// dispatches the subcommand.
func main() {
	// global flags
	cfgFile := flag.String("config", configPath(), "client config (YAML)")
	server := flag.String("server", "", "ledger gRPC addr (default: deployment record)")
	network := flag.String("network", "", "network name or chain id")
	storageURL := flag.String("storage", "", "storage API base URL")
	caPath := flag.String("cacert", "", "CA cert (PEM)")
	insecureSkip := flag.Bool("insecure", false, "skip cert verify (dev)")
	plaintext := flag.Bool("plaintext", false, "connect without TLS (dev)")
	keyfile := flag.String("wallet", walletPath(), "wallet keyfile")
	pass := flag.String("pass", "", "wallet passphrase (default $IJAZAH_PASSPHRASE)")
	yes := flag.Bool("y", false, "sign without confirmation")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
	}
	cmd := flag.Arg(0)
	if cmd == "version" {
		fmt.Printf("ijz %s (%s)\n", version, buildDate)
		return
	}

	cfg, err := config.LoadClient(*cfgFile)
	if err != nil {
		fail(err)
	}
	if *server != "" {
		cfg.Server = *server
	}
	if *network != "" {
		cfg.Network = *network
	}
	if *storageURL != "" {
		cfg.StorageURL = *storageURL
	}
	if *caPath != "" {
		cfg.CACert = *caPath
	}
	cfg.Insecure = cfg.Insecure || *insecureSkip
	cfg.Plaintext = cfg.Plaintext || *plaintext
	if *pass == "" {
		*pass = os.Getenv(config.EnvPrefix + "PASSPHRASE")
	}

	a := newApp(cfg, *keyfile, *pass, *yes)
	defer a.close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	run, ok := commands[cmd]
	if !ok {
		usage()
	}
	if err := run(ctx, a, flag.Args()[1:]); err != nil {
		if errors.Is(err, errUsage) {
			usage()
		}
		fail(err)
	}
}

// ---- helpers ----

func fail(err error) {
	if s, ok := status.FromError(err); ok {
		fmt.Fprintf(os.Stderr, "rpc error: code=%s msg=%s\n", s.Code(), s.Message())
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
