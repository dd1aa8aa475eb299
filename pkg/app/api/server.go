// Package api implements app.Runner for the API server process.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apphttp "github.com/chainsafe/evm-transfers/pkg/app/http"
	"github.com/chainsafe/evm-transfers/pkg/config"
	"github.com/chainsafe/evm-transfers/pkg/ethereum"
	transferservice "github.com/chainsafe/evm-transfers/pkg/transfer/service"
)

const defaultRequestTimeout = 60 * time.Second

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.Config
}

// NewServer initializes new api server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

// Run connects to the node, serves the read-only transfer API and blocks until shutdown.
func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting API server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
	)

	client, err := ethereum.NewClient(ctx, &cfg.Ethereum, logger)
	if err != nil {
		return fmt.Errorf("connect ethereum: %w", err)
	}
	defer client.Close()

	svc, err := NewTransferService(client, &cfg.Ethereum, logger)
	if err != nil {
		return err
	}

	router := s.setupRouter(svc, logger)

	return apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)
}

// NewTransferService builds the logged transfer service from the Ethereum settings
func NewTransferService(
	client transferservice.ChainClient,
	cfg *config.EthereumConfig,
	logger *zap.Logger,
) (transferservice.Service, error) {
	svc, err := transferservice.NewService(client, transferservice.Options{
		GasCeiling:          cfg.GasCeiling,
		AuthorizationWindow: cfg.AuthorizationWindow,
		ReceiptPollInterval: cfg.ReceiptPollInterval,
		TokenArtifact:       cfg.TokenArtifact,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create transfer service: %w", err)
	}
	return transferservice.NewLog(svc, logger), nil
}

func (s *Server) setupRouter(svc transferservice.Service, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(defaultRequestTimeout))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if s.cfg.Monitoring.Enabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	// Readiness, balance and history endpoints
	transferservice.RegisterRoutes(r, svc, logger)

	return r
}
