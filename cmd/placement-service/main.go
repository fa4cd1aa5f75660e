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
	"github.com/housinglink/pathways/pkg/common/kafka"
	"github.com/housinglink/pathways/pkg/common/logger"
	"github.com/housinglink/pathways/pkg/corrections"
	"github.com/housinglink/pathways/pkg/middleware"
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

	tables := cache.NewTableCache(database.GetRedis(), cfg.TableCacheTTL)

	producer := kafka.NewProducer(cfg.PlacementsTopic)
	defer producer.Close()

	var dlqProducer *kafka.Producer
	if cfg.PipelineDLQTopic != "" {
		dlqProducer = kafka.NewProducer(cfg.PipelineDLQTopic)
		defer dlqProducer.Close()
	}

	runner := pipeline.NewRunner(catalog, thresholds, vocab)
	svc := pipeline.NewService(runRepo, vacRepo, runner, tables, producer, dlqProducer)
	handler := pipeline.NewHTTPHandler(svc)

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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		logger.Log.WithFields(map[string]interface{}{
			"host": cfg.ServerHost,
			"port": cfg.ServerPort,
		}).Info("Placement Service started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.WithError(err).Fatal("failed to start server")
		}
	}()

	consumer := kafka.NewConsumer(cfg.VacancyTopic, cfg.KafkaGroupID)
	defer consumer.Close()
	go func() {
		if err := consumer.Consume(ctx, svc.HandleVacancyEvent); err != nil && err != context.Canceled {
			logger.Log.WithError(err).Error("vacancy consumer stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down Placement Service...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Log.WithError(err).Error("server forced to shutdown")
	}

	logger.Log.Info("Placement Service stopped")
}
