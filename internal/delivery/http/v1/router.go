package v1

import (
	"net/http"

	"go-medlink-backend/config"
	"go-medlink-backend/internal/delivery/http/middleware"
	"go-medlink-backend/internal/delivery/http/response"
	"go-medlink-backend/internal/domain"
	"go-medlink-backend/pkg/auth"
	"go-medlink-backend/pkg/redis"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ProfileUC     domain.ProfileUsecase
	PostUC        domain.PostUsecase
	ConnectionUC  domain.ConnectionUsecase
	FollowUC      domain.FollowUsecase
	CareerUC      domain.CareerUsecase
	InstitutionUC domain.InstitutionUsecase
	JobUC         domain.JobUsecase
	EventUC       domain.EventUsecase
	StoreGuard    domain.StoreGuard
	JWKSProvider  *auth.Provider
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.GlobalRateLimitMiddleware(deps.Config))

	v1 := r.Group("/v1")

	// Health Check reports the cached store readiness state
	v1.GET("/health", func(c *gin.Context) {
		cache := "unavailable"
		if redis.IsAvailable() {
			cache = "ok"
		}
		if deps.StoreGuard != nil && !deps.StoreGuard.Ready(c.Request.Context()) {
			response.Success(c, http.StatusOK, "Degraded: datastore unreachable", gin.H{"store": "unavailable", "cache": cache})
			return
		}
		response.Success(c, http.StatusOK, "System operational", gin.H{"store": "ok", "cache": cache})
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWKSProvider, deps.Config, deps.ProfileUC))
	{
		NewProfileHandler(v1, protected, deps.ProfileUC)
		NewPostHandler(v1, protected, deps.PostUC)
		NewConnectionHandler(v1, protected, deps.ConnectionUC)
		NewFollowHandler(v1, protected, deps.FollowUC)
		NewCareerHandler(v1, protected, deps.CareerUC)
		NewInstitutionHandler(v1, protected, deps.InstitutionUC)
		NewJobHandler(v1, protected, deps.JobUC)
		NewEventHandler(v1, protected, deps.EventUC)
	}

	return r
}
