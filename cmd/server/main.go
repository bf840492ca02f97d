package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/health"

	grpcadapter "github.com/simaogato/ledger-backend/internal/adapter/grpc"
	"github.com/simaogato/ledger-backend/internal/adapter/repository/memory"
	"github.com/simaogato/ledger-backend/internal/adapter/repository/postgres"
	"github.com/simaogato/ledger-backend/internal/config"
	"github.com/simaogato/ledger-backend/internal/domain"
	"github.com/simaogato/ledger-backend/internal/logging"
	"github.com/simaogato/ledger-backend/internal/usecase/ledger"
	"github.com/simaogato/ledger-backend/internal/usecase/seeder"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ledger: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Configuration and logging
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, _, err := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	// 2. Initialize the ledger store
	repo, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	// 3. Initialize services (use cases)
	ledgerService := ledger.NewLedgerService(repo, logger.Named("ledger"))

	seeds, err := seeder.ParseAccounts(cfg.SeedAccounts)
	if err != nil {
		return fmt.Errorf("invalid %s_SEED_ACCOUNTS: %w", config.Prefix, err)
	}
	if len(seeds) > 0 {
		accountSeeder := seeder.NewAccountSeeder(repo, logger.Named("seeder"))
		if err := accountSeeder.Seed(ctx, seeds); err != nil {
			return fmt.Errorf("failed to seed accounts: %w", err)
		}
	}

	// 4. Start gRPC server
	grpcServer, healthServer := grpcadapter.NewGRPCServer(
		grpcadapter.NewServer(ledgerService),
		logger.Named("grpc"),
		grpclib.MaxConcurrentStreams(1024),
		grpclib.MaxRecvMsgSize(32*1024*1024),
		grpclib.MaxSendMsgSize(32*1024*1024),
	)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.GRPCAddr, err)
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("gRPC server listening", zap.String("addr", lis.Addr().String()), zap.String("store", cfg.Store))
		serveErr <- grpcServer.Serve(lis)
	}()
	grpcadapter.SetServing(healthServer, true)

	// Graceful shutdown
	return waitForShutdown(grpcServer, healthServer, serveErr, cfg.ShutdownTimeout, logger)
}

// openStore builds the configured ledger store and returns its cleanup func
func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (domain.LedgerRepository, func(), error) {
	policy := cfg.RetryPolicy()

	if cfg.Store == config.StoreMemory {
		logger.Warn("using in-memory store; state is lost on exit")
		return memory.NewStore(policy, logger.Named("memory")), func() {}, nil
	}

	db, err := postgres.NewDB(ctx, cfg.DB.URL, postgres.PoolConfig{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
		ConnectTimeout:  cfg.DB.ConnectTimeout,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	closeDB := func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close database", zap.Error(err))
		}
	}

	migrator, err := postgres.NewMigrator(cfg.DB.URL, postgres.Dialect(cfg.DB.Dialect), logger.Named("migrate"))
	if err != nil {
		closeDB()
		return nil, nil, err
	}
	if cfg.DB.Migrate {
		if err := migrator.Up(ctx); err != nil {
			closeDB()
			return nil, nil, err
		}
		logger.Info("schema up to date", zap.String("dialect", cfg.DB.Dialect))
	}

	return postgres.NewLedgerRepository(db, migrator, policy, logger.Named("postgres")), closeDB, nil
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the
// server, forcing it down once timeout has passed.
func waitForShutdown(grpcServer *grpclib.Server, healthServer *health.Server, serveErr <-chan error, timeout time.Duration, logger *zap.Logger) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(sigChan)

	select {
	case sig := <-sigChan:
		logger.Info("shutting down gracefully", zap.String("signal", sig.String()))
	case err := <-serveErr:
		if err != nil && !errors.Is(err, grpclib.ErrServerStopped) {
			return fmt.Errorf("gRPC server failed: %w", err)
		}
		return nil
	}

	grpcadapter.SetServing(healthServer, false)

	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		logger.Info("gRPC server stopped")
	case <-time.After(timeout):
		logger.Warn("graceful stop timed out, forcing", zap.Duration("timeout", timeout))
		grpcServer.Stop()
	}

	return nil
}
