package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sitedoctor/internal/capabilities"
	"sitedoctor/internal/changelog"
	"sitedoctor/internal/doctor"
	"sitedoctor/internal/doctor/checks"
	doctormetrics "sitedoctor/internal/doctor/metrics"
	"sitedoctor/internal/doctor/ports"
	"sitedoctor/internal/flash"
	"sitedoctor/internal/fsprobe"
	"sitedoctor/internal/identity"
	"sitedoctor/internal/platform/config"
	"sitedoctor/internal/platform/httpserver"
	"sitedoctor/internal/platform/logger"
	"sitedoctor/internal/platform/postgres"
	"sitedoctor/internal/platform/redis"
	"sitedoctor/internal/siteconfig"
	httptransport "sitedoctor/internal/transport/http"
)

// main wires high-level dependencies and keeps the server lifecycle
// small. Diagnostic logic lives in the internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	slog.SetDefault(log)

	ctx := context.Background()

	// Optional backing stores: without Postgres the row checks see an
	// empty store, without Redis the flash store is process-local.
	pool, err := postgres.New(ctx, cfg.Postgres)
	if err != nil {
		fatal(log, "postgres setup failed", err)
	}
	var rows ports.RowCounter = changelog.NewMemoryCounter()
	if pool != nil {
		defer pool.Close()
		rows = changelog.NewPostgresCounter(pool)
	}

	redisClient, err := redis.New(cfg.Redis)
	if err != nil {
		fatal(log, "redis setup failed", err)
	}
	var store flash.Store = flash.NewMemoryStore()
	if redisClient != nil {
		defer redisClient.Close()
		store = flash.NewRedisStore(redisClient.Client, cfg.Doctor.FlashTTL)
	}

	siteCfg, err := siteconfig.Load(cfg.Doctor.SiteConfigPath)
	if err != nil {
		log.Warn("site configuration not loaded; checks see an empty config",
			"path", cfg.Doctor.SiteConfigPath,
			"error", err,
		)
		siteCfg = siteconfig.FromMap(nil)
	}

	reg := doctor.NewRegistry()
	if err := checks.RegisterAll(reg, checks.Options{
		DefaultPasswords: cfg.Doctor.DefaultPasswords,
	}); err != nil {
		fatal(log, "check registration failed", err)
	}

	ident := identity.New(cfg.Server.JWTSigningKey, nil)

	deps := doctor.Collaborators{
		Config: siteCfg,
		FS: fsprobe.New(map[string]string{
			"cache":  cfg.Doctor.CacheDir,
			"config": cfg.Doctor.ConfigDir,
			"files":  cfg.Doctor.FilesDir,
		}),
		Rows:     rows,
		Identity: ident,
		Caps:     capabilities.New(nil),
	}

	sink := doctor.NewSink(flash.NewPresenter(store), log)
	runner := doctor.NewRunner(reg, doctor.DefaultRouteTable(), sink, deps, log, doctormetrics.New())

	handler := httptransport.NewHandler(runner, store, log)
	router := httptransport.NewRouter(handler, ident)

	srv := httpserver.New(cfg.Server.Addr, router)

	log.Info("starting sitedoctor", "addr", cfg.Server.Addr, "checks", reg.Len())

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fatal(log, "server error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	if err := httpserver.Shutdown(srv, 10*time.Second); err != nil {
		fatal(log, "graceful shutdown failed", err)
	}
	log.Info("shut down cleanly")
}

func fatal(log *slog.Logger, msg string, err error) {
	log.Error(msg, "error", err)
	os.Exit(1)
}
