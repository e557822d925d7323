package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/anami-scheduler/internal/audit"
	"github.com/BruksfildServices01/anami-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/anami-scheduler/internal/db"
	"github.com/BruksfildServices01/anami-scheduler/internal/logging"
	"github.com/BruksfildServices01/anami-scheduler/internal/middleware"
	"github.com/BruksfildServices01/anami-scheduler/internal/routes"
	"github.com/BruksfildServices01/anami-scheduler/internal/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logging.New(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled:      cfg.OTelEnabled,
		OTLPEndpoint: cfg.OTelEndpoint,
		SampleRatio:  cfg.OTelSampleRatio,
	})
	if err != nil {
		return err
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = dbpkg.Close(db) }()

	if err := dbpkg.Migrate(db); err != nil {
		return err
	}

	auditDispatcher := audit.NewDispatcher(audit.New(db), log, cfg.AuditQueueSize)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.AccessLog(log),
		middleware.CORSMiddleware(cfg.CORSOrigins),
	)

	routes.RegisterRoutes(r, db, cfg, log, auditDispatcher)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           otelhttp.NewHandler(r, telemetry.ServiceName),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown", zap.Error(err))
	}
	if err := auditDispatcher.Close(shutdownCtx); err != nil {
		log.Warn("audit queue not drained", zap.Error(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Warn("tracing shutdown", zap.Error(err))
	}

	return nil
}
