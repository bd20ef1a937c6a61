// Command carder-server starts the carder back office: the gRPC API plus the
// HTTP listener for payment callbacks, metrics and health checks.
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	pb "github.com/and161185/carder/gen/go/carder/v1"
	"github.com/and161185/carder/internal/config"
	"github.com/and161185/carder/internal/limiter"
	"github.com/and161185/carder/internal/metrics"
	"github.com/and161185/carder/internal/migrate"
	"github.com/and161185/carder/internal/payment"
	"github.com/and161185/carder/internal/policy"
	"github.com/and161185/carder/internal/pricing"
	"github.com/and161185/carder/internal/repository"
	"github.com/and161185/carder/internal/repository/postgres"
	grpcserver "github.com/and161185/carder/internal/server/grpc"
	httpserver "github.com/and161185/carder/internal/server/http"
	"github.com/and161185/carder/internal/service"
	"github.com/and161185/carder/internal/session"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// main loads configuration, runs migrations and serves gRPC and HTTP until
// SIGINT or SIGTERM.
func main() {
	cfg, err := config.Load(os.Args[1:], os.Getenv)
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(2)
	}

	logger, _ := zap.NewProduction()
	if cfg.Dev {
		logger, _ = zap.NewDevelopment()
	}
	defer func() { _ = logger.Sync() }()
	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("addr", cfg.Addr),
		zap.String("httpAddr", cfg.HTTPAddr),
		zap.String("sessions", cfg.SessionBackend),
	)

	// Context with OS signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	schema, err := migrate.Up(ctx, cfg.DSN, logger)
	if err != nil {
		logger.Fatal("migrate up", zap.Error(err))
	}
	logger.Info("schema ready", zap.Int64("version", schema))

	db, err := postgres.New(ctx, cfg.DSN)
	if err != nil {
		logger.Fatal("pgxpool.New", zap.Error(err))
	}
	defer db.Close()

	m := metrics.New()
	m.SetBuildInfo(version, buildDate)

	// Repositories
	users := postgres.NewUserRepo(db)
	orgs := postgres.NewOrganisationRepo(db)
	policies := postgres.NewPolicyRepo(db)
	events := postgres.NewEventRepo(db)
	catalog := postgres.NewCatalogRepo(db)
	orders := postgres.NewOrderRepo(db)
	licenses := postgres.NewLicenseRepo(db)

	var store repository.SessionRepository = postgres.NewSessionRepo(db)
	if cfg.SessionBackend == config.BackendMemory {
		store = session.NewMemoryStore()
	}
	sessions := session.NewManager(store, session.Options{
		TokenTTL: cfg.UICTTL,
		IdleTTL:  cfg.IdleTTL,
		Logger:   logger,
		Metrics:  m,
	})
	go sessions.RunJanitor(ctx, cfg.JanitorInterval)

	lim := limiter.NewPG(db.Pool, cfg.LimiterWindow, cfg.LimiterMaxFails, cfg.LimiterBlock)
	authz := policy.NewAuthorizer(policies, logger, m)
	engine := pricing.NewEngine(catalog)
	sandbox := payment.NewSandbox(cfg.PaymentBaseURL)

	// Services
	svc := grpcserver.Services{
		Auth:          service.NewAuthService(users, sessions, lim, service.LogNotifier{Log: logger}, logger),
		Organisations: service.NewOrganisationService(orgs, authz),
		Events:        service.NewEventService(events, authz),
		Policies:      service.NewPolicyService(policies, events, licenses, authz),
		Catalog:       service.NewCatalogService(catalog, authz),
		Cart:          service.NewCartService(engine, catalog, sessions),
		Checkout: service.NewCheckoutService(orders, licenses, engine, sandbox, sessions, authz,
			service.CheckoutConfig{CallbackBaseURL: cfg.CallbackBaseURL}, logger, m),
		Licensing: service.NewLicensingService(licenses, events, authz, m),
	}
	tokens := grpcserver.NewTokens([]byte(cfg.SigningKey), cfg.JWTTTL)

	// gRPC server with interceptors
	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			grpcserver.RecoverUnary(logger),
			grpcserver.LoggingUnary(logger),
			grpcserver.MetricsUnary(m),
			grpcserver.RateLimitUnary(cfg.RateLimit, cfg.RateBurst),
			grpcserver.SessionUnary(sessions, tokens, logger, grpcserver.PublicMethods...),
		),
	}
	if cfg.TLSCert != "" {
		creds, err := credentials.NewServerTLSFromFile(cfg.TLSCert, cfg.TLSKey)
		if err != nil {
			logger.Fatal("failed to load TLS cert/key", zap.Error(err))
		}
		opts = append(opts, grpc.Creds(creds))
	} else {
		logger.Warn("serving gRPC without TLS")
	}
	s := grpc.NewServer(opts...)
	pb.RegisterBackofficeServer(s, grpcserver.New(svc, sessions, tokens))

	// Health & reflection (dev)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	if cfg.Dev {
		reflection.Register(s)
	}

	hopt := httpserver.Options{
		Checkout: svc.Checkout,
		Sessions: sessions,
		Tokens:   tokens,
		Metrics:  m.Handler(),
		Sandbox:  sandbox,
		Ping:     db.Pool.Ping,
		Logger:   logger,
	}
	hsrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpserver.New(hopt),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Listen
	lis, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		logger.Fatal("listen", zap.Error(err))
	}

	errCh := make(chan error, 2)
	go func() {
		logger.Info("listening (gRPC)", zap.String("addr", cfg.Addr))
		errCh <- s.Serve(lis)
	}()
	go func() {
		logger.Info("listening (HTTP)", zap.String("addr", cfg.HTTPAddr))
		if err := hsrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for stop
	select {
	case <-ctx.Done():
		hs.Shutdown()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := hsrv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("http shutdown", zap.Error(err))
		}
		// graceful shutdown
		done := make(chan struct{})
		go func() {
			s.GracefulStop()
			close(done)
		}()
		select {
		case <-done:
		case <-shutdownCtx.Done():
			s.Stop()
		}
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("shutdown complete")
}
