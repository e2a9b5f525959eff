package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agroconnect/agroconnect-api/internal/audit"
	"github.com/agroconnect/agroconnect-api/internal/cache"
	"github.com/agroconnect/agroconnect-api/internal/config"
	"github.com/agroconnect/agroconnect-api/internal/handlers"
	infraRepo "github.com/agroconnect/agroconnect-api/internal/infra/repository"
	"github.com/agroconnect/agroconnect-api/internal/middleware"
	ucRequest "github.com/agroconnect/agroconnect-api/internal/usecase/request"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cc *cache.Cache, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	requestRepo := infraRepo.NewRequestGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — RESOURCE REQUESTS
	// ======================================================
	createRequestUC := ucRequest.NewCreateRequest(requestRepo, auditDispatcher)
	respondUC := ucRequest.NewRespondToRequest(requestRepo, auditDispatcher)
	listForOwnerUC := ucRequest.NewListRequestsForOwner(requestRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	cropHandler := handlers.NewCropHandler(db, cc, auditDispatcher)
	resourceHandler := handlers.NewResourceHandler(db, cc, auditDispatcher)
	requestHandler := handlers.NewRequestHandler(
		createRequestUC,
		respondUC,
		listForOwnerUC,
		cc,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/auth/me", authHandler.Me)

			secured.GET("/crops", cropHandler.List)
			secured.POST("/crops", cropHandler.Create)
			secured.PATCH("/crops/:id/status", cropHandler.UpdateStatus)

			secured.GET("/resources", resourceHandler.List)
			secured.POST("/resources", resourceHandler.Create)

			// static segment before the :id route group
			secured.GET("/resources/requests", requestHandler.ListForOwner)
			secured.POST("/resources/:id/request", requestHandler.Create)
			secured.PATCH("/resources/requests/:id/respond", requestHandler.Respond)
		}
	}
}
