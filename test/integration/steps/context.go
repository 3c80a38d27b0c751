// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/iuran-warga/backend/config"
	"github.com/iuran-warga/backend/internal/application/usecase/auth"
	"github.com/iuran-warga/backend/internal/application/usecase/billing"
	"github.com/iuran-warga/backend/internal/application/usecase/directory"
	"github.com/iuran-warga/backend/internal/application/usecase/ledger"
	"github.com/iuran-warga/backend/internal/application/usecase/notification"
	"github.com/iuran-warga/backend/internal/application/usecase/payment"
	"github.com/iuran-warga/backend/internal/domain/entity"
	"github.com/iuran-warga/backend/internal/infra/server/router"
	"github.com/iuran-warga/backend/internal/integration/adapters"
	"github.com/iuran-warga/backend/internal/integration/entrypoint/controller"
	"github.com/iuran-warga/backend/internal/integration/entrypoint/middleware"
	"github.com/iuran-warga/backend/internal/integration/persistence"
	"github.com/iuran-warga/backend/internal/integration/persistence/model"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// Backing services
	db          *gorm.DB
	mr          *miniredis.Miniredis
	redisClient *redis.Client
	imageDir    string

	// Seeding
	passwordService func(password string) (string, error)

	// Auth tokens by KK
	tokens map[string]string

	// Captured ids
	cycleID string
	claimID string
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc, err := newTestContext()
		if err != nil {
			return ctx, err
		}
		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if tc := GetTestContext(ctx); tc != nil {
			tc.teardown()
		}
		return ctx, nil
	})

	registerAccountSteps(ctx)
	registerBillingSteps(ctx)
	registerPaymentSteps(ctx)
	registerDirectorySteps(ctx)
	registerLedgerSteps(ctx)
	registerResponseSteps(ctx)
}

// newTestContext wires the full application over an in-memory sqlite
// database, a miniredis instance and a temporary upload directory.
func newTestContext() (*TestContext, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open test database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
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
		return nil, fmt.Errorf("failed to migrate test database: %w", err)
	}

	mr, err := miniredis.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start miniredis: %w", err)
	}
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	imageDir, err := os.MkdirTemp("", "iuran-uploads-*")
	if err != nil {
		return nil, err
	}

	uploadCfg := &config.UploadConfig{Dir: imageDir, PublicPath: "/public/uploads"}
	pushCfg := &config.PushConfig{Enabled: false}

	userRepo := persistence.NewUserRepository(db)
	cycleRepo := persistence.NewBillingCycleRepository(db)
	claimRepo := persistence.NewPaymentClaimRepository(db)
	directoryRepo := persistence.NewDirectoryRepository(db)
	ledgerRepo := persistence.NewLedgerRepository(db)
	publicationRepo := persistence.NewPublicationRepository(db)
	notificationRepo := persistence.NewNotificationRepository(db)
	deviceTokenRepo := persistence.NewDeviceTokenRepository(db)

	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService("integration-secret", time.Hour)
	pushSender := adapters.NewFCMPushSender(pushCfg)
	imageStore, err := adapters.NewLocalImageStore(uploadCfg.Dir, uploadCfg.PublicPath)
	if err != nil {
		return nil, err
	}

	healthController := controller.NewHealthController(func() bool { return true })
	authController := controller.NewAuthController(
		auth.NewRegisterUserUseCase(userRepo, passwordService),
		auth.NewLoginUserUseCase(userRepo, deviceTokenRepo, passwordService, tokenService),
		auth.NewGetProfileUseCase(userRepo),
	)
	billingController := controller.NewBillingController(
		billing.NewCreateCycleUseCase(cycleRepo, notificationRepo, deviceTokenRepo, pushSender),
		billing.NewListCyclesUseCase(cycleRepo, claimRepo),
		billing.NewGetCycleUseCase(cycleRepo),
	)
	paymentController := controller.NewPaymentController(
		payment.NewSubmitClaimUseCase(claimRepo, cycleRepo, imageStore),
		payment.NewResubmitClaimUseCase(claimRepo, imageStore),
		payment.NewReviewClaimUseCase(claimRepo, cycleRepo, imageStore),
		payment.NewListOpenClaimsUseCase(claimRepo, cycleRepo, userRepo),
		payment.NewGetClaimUseCase(claimRepo, cycleRepo, userRepo),
		payment.NewListVerifiedHistoryUseCase(claimRepo, cycleRepo, userRepo),
	)
	directoryController := controller.NewDirectoryController(
		directory.NewListDirectoryUseCase(directoryRepo, claimRepo),
		directory.NewGetEntryUseCase(directoryRepo, claimRepo),
		directory.NewSyncDirectoryUseCase(directoryRepo, userRepo),
		directory.NewSetMonthStatusUseCase(directoryRepo),
		directory.NewUpdateAddressUseCase(directoryRepo),
		directory.NewPaymentStatsUseCase(directoryRepo, claimRepo),
	)
	ledgerController := controller.NewLedgerController(
		ledger.NewRecordEntryUseCase(ledgerRepo, imageStore),
		ledger.NewUpdateEntryUseCase(ledgerRepo, imageStore),
		ledger.NewDeleteEntryUseCase(ledgerRepo),
		ledger.NewGetEntryUseCase(ledgerRepo),
		ledger.NewListEntriesUseCase(ledgerRepo),
		ledger.NewSummarizeUseCase(ledgerRepo),
		ledger.NewListPeriodsUseCase(ledgerRepo, publicationRepo),
		ledger.NewPublishPeriodUseCase(publicationRepo, userRepo, deviceTokenRepo, pushSender),
		ledger.NewResidentSummaryUseCase(ledgerRepo, publicationRepo),
		ledger.NewImportVerifiedClaimsUseCase(claimRepo, cycleRepo, userRepo, ledgerRepo),
		ledger.NewExportReportUseCase(ledgerRepo),
	)
	notificationController := controller.NewNotificationController(
		notification.NewListNotificationsUseCase(notificationRepo),
		notification.NewDismissNotificationUseCase(notificationRepo),
	)

	r := router.NewRouter(
		uploadCfg,
		healthController,
		authController,
		billingController,
		paymentController,
		directoryController,
		ledgerController,
		notificationController,
		middleware.NewRateLimiter(redisClient),
		middleware.NewAuthMiddleware(tokenService),
	)

	tc := &TestContext{
		db:          db,
		mr:          mr,
		redisClient: redisClient,
		imageDir:    imageDir,
		tokens:      make(map[string]string),
		passwordService: func(password string) (string, error) {
			return passwordService.HashPassword(password)
		},
	}
	tc.engine = r.Setup("test")
	tc.server = httptest.NewServer(tc.engine)
	return tc, nil
}

// teardown releases everything the scenario allocated.
func (tc *TestContext) teardown() {
	if tc.server != nil {
		tc.server.Close()
	}
	if tc.redisClient != nil {
		_ = tc.redisClient.Close()
	}
	if tc.mr != nil {
		tc.mr.Close()
	}
	if tc.imageDir != "" {
		_ = os.RemoveAll(tc.imageDir)
	}
	if tc.db != nil {
		if sqlDB, err := tc.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}

// seedAccount creates an account with the given role directly in the
// database, bypassing registration so admin and chair accounts can exist.
func (tc *TestContext) seedAccount(kk, name, password string, role entity.Role) error {
	hash, err := tc.passwordService(password)
	if err != nil {
		return err
	}
	user := entity.NewUser(kk, name, hash)
	user.Role = role
	return tc.db.Create(model.UserFromEntity(user)).Error
}

// doJSON performs a request against the test server with an optional bearer
// token and JSON body, capturing the response.
func (tc *TestContext) doJSON(method, path, token string, body interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, tc.server.URL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := tc.server.Client().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	return err
}

// responseField resolves a dot-separated path into the JSON response body.
func (tc *TestContext) responseField(path string) (interface{}, error) {
	var decoded interface{}
	if err := json.Unmarshal(tc.responseBody, &decoded); err != nil {
		return nil, fmt.Errorf("response is not JSON: %w", err)
	}

	current := decoded
	for _, part := range strings.Split(path, ".") {
		obj, ok := current.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("field %q not found in response", path)
		}
		current, ok = obj[part]
		if !ok {
			return nil, fmt.Errorf("field %q not found in response", path)
		}
	}
	return current, nil
}
