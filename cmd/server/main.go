// Command ijazah-server starts the diploma ledger: the gRPC ledger and auth
// services plus the HTTP storage and public ledger API.
package main

import (
	"context"
	"errors"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	pb "github.com/and161185/ijazah-ledger/gen/go/ijazah/v1"
	"github.com/and161185/ijazah-ledger/internal/config"
	"github.com/and161185/ijazah-ledger/internal/crypto"
	"github.com/and161185/ijazah-ledger/internal/deploy"
	"github.com/and161185/ijazah-ledger/internal/events"
	"github.com/and161185/ijazah-ledger/internal/limiter"
	"github.com/and161185/ijazah-ledger/internal/migrate"
	"github.com/and161185/ijazah-ledger/internal/repository/postgres"
	grpcserver "github.com/and161185/ijazah-ledger/internal/server/grpc"
	"github.com/and161185/ijazah-ledger/internal/server/httpapi"
	"github.com/and161185/ijazah-ledger/internal/service"
	"github.com/and161185/ijazah-ledger/internal/storage"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

const shutdownTimeout = 5 * time.Second

// main loads configuration, runs migrations, bootstraps the ledger and serves
// gRPC and HTTP until SIGINT/SIGTERM.
func main() {
	// Flags
	cfgPath := flag.String("config", "", "YAML config file")
	addr := flag.String("addr", "", "gRPC listen address (overrides config)")
	httpAddr := flag.String("http-addr", "", "HTTP listen address (overrides config)")
	dsn := flag.String("dsn", "", "PostgreSQL DSN (overrides config)")
	dev := flag.Bool("dev", false, "development logging and server reflection")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		// no logger yet
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	if *addr != "" {
		cfg.GRPC.Addr = *addr
	}
	if *httpAddr != "" {
		cfg.HTTP.Addr = *httpAddr
	}
	if *dsn != "" {
		cfg.Database.DSN = *dsn
	}
	cfg.Dev = cfg.Dev || *dev

	logger, _ := zap.NewProduction()
	if cfg.Dev {
		logger, _ = zap.NewDevelopment()
	}
	defer func() { _ = logger.Sync() }()
	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("grpc", cfg.GRPC.Addr),
		zap.String("http", cfg.HTTP.Addr),
		zap.String("network", cfg.Ledger.Network),
	)

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid config", zap.Error(err))
	}
	admin, err := cfg.Ledger.AdminAddress()
	if err != nil {
		logger.Fatal("ledger admin", zap.Error(err))
	}

	// Context with OS signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ver, err := migrate.Up(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("migrate up", zap.Error(err))
	}
	logger.Info("schema ready", zap.Int64("version", ver))

	// DB pool
	pool, err := pgxpool.New(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("pgxpool.New", zap.Error(err))
	}

	// Repositories
	db := &postgres.DB{Pool: pool}
	defer db.Close()
	ledgerRepo := postgres.NewLedgerRepo(db)
	challengeRepo := postgres.NewChallengeRepo(db)

	lim := limiter.NewPG(pool, cfg.Auth.LimiterPolicy())
	broker := events.NewBroker(64)
	defer broker.Close()

	signKey, err := crypto.DeriveKey([]byte(cfg.Auth.JWTSecret), service.SessionKeyPurpose, 32)
	if err != nil {
		logger.Fatal("derive session key", zap.Error(err))
	}

	// Services
	ledgerSvc := service.NewLedgerService(ledgerRepo, broker, logger.Named("ledger"))
	authSvc := service.NewAuthService(challengeRepo, ledgerRepo, signKey, cfg.Auth.SessionTTL, lim, logger.Named("auth"))

	info, err := ledgerSvc.Bootstrap(ctx, admin, cfg.Ledger.ChainID, cfg.Ledger.Network)
	if err != nil {
		logger.Fatal("ledger bootstrap", zap.Error(err))
	}
	endpoint := cfg.Ledger.PublicEndpoint
	if endpoint == "" {
		endpoint = cfg.GRPC.Addr
	}
	if err := deploy.Upsert(cfg.Ledger.Deployments, deploy.FromInfo(info, endpoint)); err != nil {
		logger.Fatal("write deployment record", zap.Error(err))
	}
	logger.Info("ledger ready",
		zap.String("contract", info.ContractAddress.Hex()),
		zap.String("admin", info.Admin.Hex()),
		zap.Uint64("chainId", info.ChainID),
		zap.Uint64("totalDiplomas", info.TotalDiplomas),
	)

	// Storage
	local, err := storage.NewLocalStore(cfg.Storage.LocalDir)
	if err != nil {
		logger.Fatal("local store", zap.Error(err))
	}
	var pinned storage.Store
	if fb := cfg.Storage.Filebase.Store(); fb.Enabled() {
		if pinned, err = storage.NewFilebaseStore(fb, &http.Client{Timeout: 30 * time.Second}); err != nil {
			logger.Fatal("filebase store", zap.Error(err))
		}
		logger.Info("pinning enabled", zap.String("bucket", fb.Bucket))
	}
	store := storage.NewRouter(local, pinned, logger.Named("storage"))

	// gRPC server with interceptors
	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			grpcserver.RecoverUnary(logger),
			grpcserver.AuthUnary(signKey),
			grpcserver.LoggingUnary(logger),
		),
	}
	if cfg.GRPC.TLS() {
		creds, err := credentials.NewServerTLSFromFile(cfg.GRPC.TLSCert, cfg.GRPC.TLSKey)
		if err != nil {
			logger.Fatal("failed to load TLS cert/key", zap.Error(err))
		}
		opts = append(opts, grpc.Creds(creds))
	}
	s := grpc.NewServer(opts...)

	app := grpcserver.New(authSvc, ledgerSvc, signKey)
	pb.RegisterLedgerServer(s, app)
	pb.RegisterAuthServer(s, app)

	// Health & reflection (dev)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	if cfg.Dev {
		reflection.Register(s)
	}

	// Listen
	lis, err := net.Listen("tcp", cfg.GRPC.Addr)
	if err != nil {
		logger.Fatal("listen", zap.Error(err))
	}
	hsrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           httpapi.New(store, ledgerSvc, broker, logger, cfg.HTTP.MaxUploadBytes).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() {
		logger.Info("listening (gRPC)", zap.String("addr", cfg.GRPC.Addr), zap.Bool("tls", cfg.GRPC.TLS()))
		errCh <- s.Serve(lis)
	}()
	go func() {
		logger.Info("listening (HTTP)", zap.String("addr", cfg.HTTP.Addr))
		if err := hsrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	go janitor(ctx, logger, cfg.Maintenance.Interval, challengeRepo, lim)

	// Wait for stop
	select {
	case <-ctx.Done():
		// graceful shutdown
		hs.Shutdown()
		shutdownHTTP(hsrv, logger)
		done := make(chan struct{})
		go func() {
			s.GracefulStop()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(shutdownTimeout):
			s.Stop()
		}
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("shutdown complete")
}

func shutdownHTTP(srv *http.Server, log *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn("http shutdown", zap.Error(err))
		_ = srv.Close()
	}
}

type challengePruner interface {
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

type limiterPruner interface {
	Prune(ctx context.Context, before time.Time) (int64, error)
}

// janitor drops expired challenges and stale limiter rows.
func janitor(ctx context.Context, log *zap.Logger, every time.Duration, ch challengePruner, lim limiterPruner) {
	if every <= 0 {
		return
	}
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			n, err := ch.DeleteExpired(ctx, now.UTC())
			if err != nil {
				log.Warn("prune challenges", zap.Error(err))
			}
			m, err := lim.Prune(ctx, now.UTC().Add(-24*time.Hour))
			if err != nil {
				log.Warn("prune limiter", zap.Error(err))
			}
			if n > 0 || m > 0 {
				log.Debug("janitor", zap.Int64("challenges", n), zap.Int64("limiter", m))
			}
		}
	}
}
