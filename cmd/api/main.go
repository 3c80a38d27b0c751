// Package main is the entry point for the neighborhood dues API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/iuran-warga/backend/config"
	"github.com/iuran-warga/backend/internal/application/usecase/auth"
	"github.com/iuran-warga/backend/internal/application/usecase/billing"
	"github.com/iuran-warga/backend/internal/application/usecase/directory"
	"github.com/iuran-warga/backend/internal/application/usecase/ledger"
	"github.com/iuran-warga/backend/internal/application/usecase/notification"
	"github.com/iuran-warga/backend/internal/application/usecase/payment"
	"github.com/iuran-warga/backend/internal/infra/db"
	"github.com/iuran-warga/backend/internal/infra/server/router"
	"github.com/iuran-warga/backend/internal/integration/adapters"
	"github.com/iuran-warga/backend/internal/integration/entrypoint/controller"
	"github.com/iuran-warga/backend/internal/integration/entrypoint/middleware"
	"github.com/iuran-warga/backend/internal/integration/persistence"
	"github.com/iuran-warga/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Iuran Warga API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.BillingCycleModel{},
		&model.PaymentClaimModel{},
		&model.DirectoryEntryModel{},
		&model.LedgerEntryModel{},
		&model.PublishedPeriodModel{},
		&model.NotificationModel{},
		&model.NotificationDismissalModel{},
		&model.DeviceTokenModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Redis backs the login rate limiter.
	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		slog.Error("Invalid REDIS_URL", "error", err)
		os.Exit(1)
	}
	redisClient := redis.NewClient(redisOpts)
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("Failed to close redis connection", "error", err)
		}
	}()

	// Create repositories
	userRepo := persistence.NewUserRepository(database.DB())
	cycleRepo := persistence.NewBillingCycleRepository(database.DB())
	claimRepo := persistence.NewPaymentClaimRepository(database.DB())
	directoryRepo := persistence.NewDirectoryRepository(database.DB())
	ledgerRepo := persistence.NewLedgerRepository(database.DB())
	publicationRepo := persistence.NewPublicationRepository(database.DB())
	notificationRepo := persistence.NewNotificationRepository(database.DB())
	deviceTokenRepo := persistence.NewDeviceTokenRepository(database.DB())

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.TokenExpiry)
	pushSender := adapters.NewFCMPushSender(&cfg.Push)
	imageStore, err := adapters.NewLocalImageStore(cfg.Upload.Dir, cfg.Upload.PublicPath)
	if err != nil {
		slog.Error("Failed to initialize image store", "error", err)
		os.Exit(1)
	}

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, deviceTokenRepo, passwordService, tokenService)
	profileUseCase := auth.NewGetProfileUseCase(userRepo)

	// Create billing cycle use cases
	createCycleUseCase := billing.NewCreateCycleUseCase(cycleRepo, notificationRepo, deviceTokenRepo, pushSender)
	listCyclesUseCase := billing.NewListCyclesUseCase(cycleRepo, claimRepo)
	getCycleUseCase := billing.NewGetCycleUseCase(cycleRepo)

	// Create payment claim use cases
	submitClaimUseCase := payment.NewSubmitClaimUseCase(claimRepo, cycleRepo, imageStore)
	resubmitClaimUseCase := payment.NewResubmitClaimUseCase(claimRepo, imageStore)
	reviewClaimUseCase := payment.NewReviewClaimUseCase(claimRepo, cycleRepo, imageStore)
	listOpenClaimsUseCase := payment.NewListOpenClaimsUseCase(claimRepo, cycleRepo, userRepo)
	getClaimUseCase := payment.NewGetClaimUseCase(claimRepo, cycleRepo, userRepo)
	historyUseCase := payment.NewListVerifiedHistoryUseCase(claimRepo, cycleRepo, userRepo)

	// Create directory use cases
	listDirectoryUseCase := directory.NewListDirectoryUseCase(directoryRepo, claimRepo)
	getEntryUseCase := directory.NewGetEntryUseCase(directoryRepo, claimRepo)
	syncDirectoryUseCase := directory.NewSyncDirectoryUseCase(directoryRepo, userRepo)
	setMonthStatusUseCase := directory.NewSetMonthStatusUseCase(directoryRepo)
	updateAddressUseCase := directory.NewUpdateAddressUseCase(directoryRepo)
	paymentStatsUseCase := directory.NewPaymentStatsUseCase(directoryRepo, claimRepo)

	// Create ledger use cases
	recordEntryUseCase := ledger.NewRecordEntryUseCase(ledgerRepo, imageStore)
	updateEntryUseCase := ledger.NewUpdateEntryUseCase(ledgerRepo, imageStore)
	deleteEntryUseCase := ledger.NewDeleteEntryUseCase(ledgerRepo)
	getLedgerEntryUseCase := ledger.NewGetEntryUseCase(ledgerRepo)
	listEntriesUseCase := ledger.NewListEntriesUseCase(ledgerRepo)
	summarizeUseCase := ledger.NewSummarizeUseCase(ledgerRepo)
	listPeriodsUseCase := ledger.NewListPeriodsUseCase(ledgerRepo, publicationRepo)
	publishPeriodUseCase := ledger.NewPublishPeriodUseCase(publicationRepo, userRepo, deviceTokenRepo, pushSender)
	residentSummaryUseCase := ledger.NewResidentSummaryUseCase(ledgerRepo, publicationRepo)
	importClaimsUseCase := ledger.NewImportVerifiedClaimsUseCase(claimRepo, cycleRepo, userRepo, ledgerRepo)
	exportReportUseCase := ledger.NewExportReportUseCase(ledgerRepo)

	// Create notification use cases
	listNotificationsUseCase := notification.NewListNotificationsUseCase(notificationRepo)
	dismissNotificationUseCase := notification.NewDismissNotificationUseCase(notificationRepo)

	// Create controllers
	healthController := controller.NewHealthController(database.HealthCheck)
	authController := controller.NewAuthController(registerUseCase, loginUseCase, profileUseCase)
	billingController := controller.NewBillingController(createCycleUseCase, listCyclesUseCase, getCycleUseCase)
	paymentController := controller.NewPaymentController(
		submitClaimUseCase,
		resubmitClaimUseCase,
		reviewClaimUseCase,
		listOpenClaimsUseCase,
		getClaimUseCase,
		historyUseCase,
	)
	directoryController := controller.NewDirectoryController(
		listDirectoryUseCase,
		getEntryUseCase,
		syncDirectoryUseCase,
		setMonthStatusUseCase,
		updateAddressUseCase,
		paymentStatsUseCase,
	)
	ledgerController := controller.NewLedgerController(
		recordEntryUseCase,
		updateEntryUseCase,
		deleteEntryUseCase,
		getLedgerEntryUseCase,
		listEntriesUseCase,
		summarizeUseCase,
		listPeriodsUseCase,
		publishPeriodUseCase,
		residentSummaryUseCase,
		importClaimsUseCase,
		exportReportUseCase,
	)
	notificationController := controller.NewNotificationController(listNotificationsUseCase, dismissNotificationUseCase)

	// Create middleware
	loginRateLimiter := middleware.NewRateLimiter(redisClient)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Setup router
	r := router.NewRouter(
		&cfg.Upload,
		healthController,
		authController,
		billingController,
		paymentController,
		directoryController,
		ledgerController,
		notificationController,
		loginRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
