// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal services packages.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	cataloghandler "sportreg/internal/catalog/handler"
	catalogstore "sportreg/internal/catalog/store"
	enrollmenthandler "sportreg/internal/enrollment/handler"
	enrollmentmetrics "sportreg/internal/enrollment/metrics"
	enrollmentservice "sportreg/internal/enrollment/service"
	enrollmentstore "sportreg/internal/enrollment/store"
	httpapi "sportreg/internal/http"
	identityhandler "sportreg/internal/identity/handler"
	identitymetrics "sportreg/internal/identity/metrics"
	"sportreg/internal/identity/secrets"
	identityservice "sportreg/internal/identity/service"
	identitystore "sportreg/internal/identity/store"
	"sportreg/internal/platform/config"
	"sportreg/internal/platform/database"
	"sportreg/internal/platform/httpserver"
	"sportreg/internal/platform/logger"
	platformredis "sportreg/internal/platform/redis"
	"sportreg/internal/token"
)

func main() {
	log := logger.New()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("database unavailable", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Error("schema provisioning failed", "error", err)
		os.Exit(1)
	}

	var sports catalogstore.Store = catalogstore.NewPostgres(db)
	cache, err := platformredis.New(cfg.RedisURL)
	if err != nil {
		log.Error("redis unavailable", "error", err)
		os.Exit(1)
	}
	if cache != nil {
		defer cache.Close()
		sports = catalogstore.NewCached(sports, cache.Client, log)
		log.Info("sport catalog cache enabled")
	}

	tokens := token.NewService(cfg.ParticipantTokenKey, cfg.JudgeTokenKey)
	hasher := secrets.NewHasher(cfg.BcryptCost)

	identitySvc := identityservice.New(
		identitystore.NewPostgres(db), hasher, tokens, identitymetrics.New())
	enrollmentSvc := enrollmentservice.New(
		enrollmentstore.NewPostgres(db), enrollmentmetrics.New())

	router := httpapi.NewRouter(httpapi.Deps{
		Identity:   identityhandler.New(identitySvc, log),
		Enrollment: enrollmenthandler.New(enrollmentSvc, log),
		Catalog:    cataloghandler.New(sports, log),
		Verifier:   tokens,
		Logger:     log,
	})

	srv := httpserver.New(cfg.Addr, router)
	log.Info("starting sportreg", "addr", cfg.Addr)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
	log.Info("shutdown complete")
}
