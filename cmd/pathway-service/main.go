package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/housinglink/pathways/pkg/cache"
	"github.com/housinglink/pathways/pkg/common/config"
	"github.com/housinglink/pathways/pkg/common/database"
	"github.com/housinglink/pathways/pkg/common/logger"
	"github.com/housinglink/pathways/pkg/corrections"
	"github.com/housinglink/pathways/pkg/middleware"
	"github.com/housinglink/pathways/pkg/pathways"
	"github.com/housinglink/pathways/pkg/pipeline"
	"github.com/housinglink/pathways/pkg/placements"
	"github.com/housinglink/pathways/pkg/routes"
	"github.com/housinglink/pathways/pkg/vacancies"
)

func main() {
	logger.Init()
	cfg := config.Load()

	db, err := database.GetPostgres()
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to connect to postgres")
	}

	vacRepo, err := vacancies.NewRepository(db)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to migrate vacancy tables")
	}
	runRepo, err := pipeline.NewRepository(db)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to migrate pipeline tables")
	}

	catalog, err := corrections.Load(cfg.CorrectionsPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to load correction catalog")
	}
	thresholds, err := placements.LoadGapThresholds(cfg.GapThresholdsPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to load gap thresholds")
	}
	vocab, err := routes.LoadVocabulary(cfg.EndReasonCatalogPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to load end reason vocabulary")
	}

	window, err := pathways.ParseWindow(cfg.PathwayWindowStart, cfg.PathwayWindowEnd, nil)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to parse analysis window")
	}

	tables := cache.NewTableCache(database.GetRedis(), cfg.TableCacheTTL)
	runner := pipeline.NewRunner(catalog, thresholds, vocab)

	// Reads only: the table comes from the latest persisted run (or the
	// shared cache); this service never runs the pipeline itself.
	source := pipeline.NewService(runRepo, vacRepo, runner, tables, nil, nil)
	svc := pathways.NewService(source, runner, window)
	handler := pathways.NewHTTPHandler(svc)

	router := mux.NewRouter()
	router.Use(middleware.Recovery, middleware.Logging)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	}).Methods(http.MethodGet)

	router.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ready"}`))
	}).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	if cfg.AuthIssuer != "" {
		auth, err := middleware.NewAuthenticator(cfg.AuthIssuer, cfg.AuthClientID, cfg.AuthClientSecret)
		if err != nil {
			logger.Log.WithError(err).Fatal("failed to configure authentication")
		}
		api.Use(middleware.Authenticate(auth))
	}
	handler.Register(api)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Log.WithFields(map[string]interface{}{
			"host": cfg.ServerHost,
			"port": cfg.ServerPort,
		}).Info("Pathway Service started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.WithError(err).Fatal("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down Pathway Service...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Log.WithError(err).Error("server forced to shutdown")
	}

	logger.Log.Info("Pathway Service stopped")
}
