package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/goalfield/field-scheduler/internal/config"
	"github.com/goalfield/field-scheduler/internal/handlers"
	infraRepo "github.com/goalfield/field-scheduler/internal/infra/repository"
	"github.com/goalfield/field-scheduler/internal/middleware"
	"github.com/goalfield/field-scheduler/internal/policy"
	"github.com/goalfield/field-scheduler/internal/realtime"
	"github.com/goalfield/field-scheduler/internal/storage"
	ucBooking "github.com/goalfield/field-scheduler/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	log zerolog.Logger,
	events realtime.Broadcaster,
	hub *realtime.Hub,
	media storage.MediaStore,
) {

	// ======================================================
	// INFRA
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	listBookingsUC := ucBooking.NewList(bookingRepo)
	createBookingUC := ucBooking.NewCreate(bookingRepo, events)
	updateBookingUC := ucBooking.NewUpdate(bookingRepo, events)
	deleteBookingUC := ucBooking.NewDelete(bookingRepo, events)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	googleAuthHandler := handlers.NewGoogleAuthHandler(db, cfg, log)
	serviceHandler := handlers.NewServiceHandler(db, media, log)
	userHandler := handlers.NewUserHandler(db)
	statsHandler := handlers.NewStatsHandler(db)
	exportHandler := handlers.NewExportHandler(db, log)

	bookingHandler := handlers.NewBookingHandler(
		listBookingsUC,
		createBookingUC,
		updateBookingUC,
		deleteBookingUC,
	)

	// ======================================================
	// REALTIME + METRICS
	// ======================================================
	if hub != nil {
		r.GET("/ws", hub.HandleWS)
	}
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/register-admin",
			middleware.AuthMiddleware(db, cfg),
			middleware.Require(policy.RegisterAdmin),
			authHandler.RegisterAdmin,
		)
		api.GET("/auth/google", googleAuthHandler.Login)
		api.GET("/auth/google/callback", googleAuthHandler.Callback)

		// ------------------------------
		// SERVICES (public read)
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/services/:id", serviceHandler.Get)

		// ------------------------------
		// SERVICES (admin write)
		// ------------------------------
		catalog := api.Group("/services")
		catalog.Use(middleware.AuthMiddleware(db, cfg), middleware.Require(policy.ManageCatalog))
		{
			catalog.POST("", serviceHandler.Create)
			catalog.PUT("/:id", serviceHandler.Update)
			catalog.DELETE("/:id", serviceHandler.Delete)
		}

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(db, cfg))
		{
			// BOOKINGS
			secured.GET("/bookings", bookingHandler.List)
			secured.POST("/bookings", bookingHandler.Create)
			secured.PUT("/bookings/:id", bookingHandler.Update)
			secured.DELETE("/bookings/:id", bookingHandler.Delete)
			secured.GET("/bookings/export",
				middleware.Require(policy.ExportData),
				exportHandler.Bookings,
			)

			// USERS
			secured.GET("/users", middleware.Require(policy.ListUsers), userHandler.List)
			secured.GET("/users/me", userHandler.GetMe)
			secured.PUT("/users/me", userHandler.UpdateMe)

			// ADMIN STATS
			secured.GET("/stats", middleware.Require(policy.ViewStats), statsHandler.Get)
		}
	}
}
