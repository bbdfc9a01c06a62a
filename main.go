package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"influencer-crm-service/analytics"
	"influencer-crm-service/api"
	"influencer-crm-service/auth"
	"influencer-crm-service/config"
	"influencer-crm-service/core"
	"influencer-crm-service/database"
	"influencer-crm-service/importer"
	"influencer-crm-service/metrics"
	"influencer-crm-service/ocr"
	"influencer-crm-service/repositories"
	"influencer-crm-service/services"
	"influencer-crm-service/storage"
	"influencer-crm-service/validation"
	"influencer-crm-service/workers/invoices"
	"influencer-crm-service/workers/shipments"
)

func main() {
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logger, err := core.NewLogger(*cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg.DSN)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := database.Migrate(logger, db); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	files, err := storage.NewLocalStore(cfg.UploadsDirectory)
	if err != nil {
		logger.Fatal("Failed to prepare uploads directory", zap.Error(err))
	}

	tokens := auth.NewTokenManager(cfg.Auth)
	validate := validation.New()
	recorder := metrics.New()

	influencerService := services.NewInfluencerService(logger, repositories.NewInfluencerStore(db))
	shipmentService := services.NewShipmentService(logger, repositories.NewShipmentRepository(db))
	invoiceService := services.NewInvoiceService(logger, repositories.NewInvoiceRepository(db), files, ocr.NewTextExtractor(logger, cfg.MaxUploadBytes), cfg.MaxUploadBytes)

	svc := api.Services{
		Users:       services.NewUserService(logger, repositories.NewUserRepository(db), tokens),
		Tenancy:     services.NewTenancyService(logger, repositories.NewFirmStore(db), repositories.NewStoreStore(db)),
		Influencers: influencerService,
		Campaigns:   services.NewCampaignService(logger, repositories.NewCampaignRepository(db)),
		Products:    services.NewProductService(logger, repositories.NewProductStore(db)),
		Documents:   services.NewFinancialDocumentService(logger, repositories.NewFinancialDocumentStore(db)),
		Shipments:   shipmentService,
		Invoices:    invoiceService,
		Payouts:     services.NewPayoutService(logger, repositories.NewPayoutRepository(db)),
		Metrics:     services.NewMetricService(logger, repositories.NewMetricStore(db)),
		Analytics:   analytics.NewService(logger, repositories.NewAnalyticsRepository(db)),
		Importer:    importer.New(logger, influencerService, validate),
		Ping: func(ctx context.Context) error {
			return database.Ping(ctx, db)
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	orchestrator := core.NewOrchestrator(logger, []core.Worker{
		shipments.NewWorker(logger, cfg, shipmentService, recorder),
		invoices.NewWorker(logger, cfg.OCRSchedule, invoiceService, recorder),
	})

	c, err := orchestrator.Start(ctx)
	if err != nil {
		logger.Fatal("Failed to start workers", zap.Error(err))
	}

	server := &http.Server{
		Addr:              net.JoinHostPort("", cfg.HTTPPort),
		Handler:           api.NewHandler(logger, cfg, svc, tokens, validate, recorder).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", zap.Error(err))
			stop()
		}
	}()

	// Wait for termination signal to exit gracefully
	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP server shutdown incomplete", zap.Error(err))
	}
	// Stop waits for running worker ticks; ctx is already cancelled so they wind down.
	<-c.Stop().Done()

	closeDB(logger, db)
}

func closeDB(logger *zap.Logger, db *gorm.DB) {
	if err := database.Close(db); err != nil {
		logger.Warn("Failed to close database", zap.Error(err))
	}
}
