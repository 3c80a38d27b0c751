// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/iuran-warga/backend/config"
	"github.com/iuran-warga/backend/internal/domain/entity"
	"github.com/iuran-warga/backend/internal/integration/entrypoint/controller"
	"github.com/iuran-warga/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	uploadCfg              *config.UploadConfig
	healthController       *controller.HealthController
	authController         *controller.AuthController
	billingController      *controller.BillingController
	paymentController      *controller.PaymentController
	directoryController    *controller.DirectoryController
	ledgerController       *controller.LedgerController
	notificationController *controller.NotificationController
	loginRateLimiter       *middleware.RateLimiter
	authMiddleware         *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	uploadCfg *config.UploadConfig,
	healthController *controller.HealthController,
	authController *controller.AuthController,
	billingController *controller.BillingController,
	paymentController *controller.PaymentController,
	directoryController *controller.DirectoryController,
	ledgerController *controller.LedgerController,
	notificationController *controller.NotificationController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		uploadCfg:              uploadCfg,
		healthController:       healthController,
		authController:         authController,
		billingController:      billingController,
		paymentController:      paymentController,
		directoryController:    directoryController,
		ledgerController:       ledgerController,
		notificationController: notificationController,
		loginRateLimiter:       loginRateLimiter,
		authMiddleware:         authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Uploaded proof and receipt images are served as static files.
	if r.uploadCfg != nil {
		r.engine.Static(r.uploadCfg.PublicPath, r.uploadCfg.Dir)
	}

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.GET("/profile", r.authMiddleware.Authenticate(), r.authController.Profile)
			}
		}

		// Billing cycle routes (require authentication)
		if r.billingController != nil && r.authMiddleware != nil {
			tagihan := v1.Group("/tagihan")
			tagihan.Use(r.authMiddleware.Authenticate())
			{
				tagihan.GET("", r.billingController.List)
				tagihan.GET("/:id", r.billingController.Get)
				tagihan.POST("",
					r.authMiddleware.RequireRoles(entity.RoleAdmin),
					r.billingController.Create)
			}
		}

		// Payment claim routes (require authentication)
		if r.paymentController != nil && r.authMiddleware != nil {
			payments := v1.Group("/payments")
			payments.Use(r.authMiddleware.Authenticate())
			{
				payments.POST("", r.paymentController.Submit)
				payments.GET("", r.paymentController.ListOpen)
				payments.GET("/history", r.paymentController.History)
				payments.GET("/:id", r.paymentController.Get)
				payments.POST("/:id/resubmit", r.paymentController.Resubmit)
				payments.POST("/:id/review",
					r.authMiddleware.RequireRoles(entity.RoleAdmin, entity.RoleRT),
					r.paymentController.Review)
			}
		}

		// Resident directory routes (admin and chair only)
		if r.directoryController != nil && r.authMiddleware != nil {
			warga := v1.Group("/warga")
			warga.Use(r.authMiddleware.Authenticate())
			warga.Use(r.authMiddleware.RequireRoles(entity.RoleAdmin, entity.RoleRT))
			{
				warga.GET("", r.directoryController.List)
				warga.GET("/stats", r.directoryController.Stats)
				warga.GET("/:id", r.directoryController.Get)
				warga.POST("/sync",
					r.authMiddleware.RequireRoles(entity.RoleAdmin),
					r.directoryController.Sync)
				warga.PATCH("/:id/status",
					r.authMiddleware.RequireRoles(entity.RoleAdmin),
					r.directoryController.SetMonthStatus)
				warga.PATCH("/:id/alamat",
					r.authMiddleware.RequireRoles(entity.RoleAdmin),
					r.directoryController.UpdateAddress)
			}
		}

		// Financial report routes (require authentication)
		if r.ledgerController != nil && r.authMiddleware != nil {
			laporan := v1.Group("/laporan")
			laporan.Use(r.authMiddleware.Authenticate())
			{
				// Resident-facing, gated on publication.
				laporan.GET("/published", r.ledgerController.Published)
				laporan.GET("/resident", r.ledgerController.ResidentSummary)

				// Admin and chair views.
				admin := laporan.Group("")
				admin.Use(r.authMiddleware.RequireRoles(entity.RoleAdmin, entity.RoleRT))
				{
					admin.GET("", r.ledgerController.List)
					admin.GET("/summary", r.ledgerController.Summary)
					admin.GET("/periods", r.ledgerController.Periods)
					admin.GET("/export", r.ledgerController.Export)
					admin.GET("/:id", r.ledgerController.Get)
				}

				// Mutations are admin only.
				mutate := laporan.Group("")
				mutate.Use(r.authMiddleware.RequireRoles(entity.RoleAdmin))
				{
					mutate.POST("", r.ledgerController.Record)
					mutate.POST("/publish", r.ledgerController.Publish)
					mutate.POST("/import-payments", r.ledgerController.ImportPayments)
					mutate.PATCH("/:id", r.ledgerController.Update)
					mutate.DELETE("/:id", r.ledgerController.Delete)
				}
			}
		}

		// Notification routes (require authentication)
		if r.notificationController != nil && r.authMiddleware != nil {
			notifications := v1.Group("/notifications")
			notifications.Use(r.authMiddleware.Authenticate())
			{
				notifications.GET("", r.notificationController.List)
				notifications.DELETE("/:id", r.notificationController.Dismiss)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
