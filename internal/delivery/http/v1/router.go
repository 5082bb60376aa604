package v1

import (
	"time"

	"tradenomi-backend/config"
	"tradenomi-backend/internal/delivery/http/middleware"
	"tradenomi-backend/internal/domain"
	"tradenomi-backend/internal/usecase"
	"tradenomi-backend/pkg/auth"
	"tradenomi-backend/pkg/logger"
	"tradenomi-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ProfileUC   domain.ProfileUsecase
	SettingsUC  domain.SettingsUsecase
	AdUC        domain.AdUsecase
	ContactUC   domain.ContactUsecase
	CatalogUC   domain.CatalogUsecase
	PhotoUC     domain.PhotoUsecase
	HealthUC    usecase.HealthUsecase
	Sessions    *auth.Sessions
	RateLimiter *middleware.RateLimiter
	Config      *config.Config

	// ImageDir is served under /kuvat when photos are kept on local disk.
	ImageDir string
}

func NewRouter(deps RouterDeps) *gin.Engine {
	// Request bodies are checked with the same rules and Finnish messages as the usecases.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	} else {
		logger.Log.Warn("gin validator engine is not validator/v10; custom rules not registered")
	}

	r := gin.New()

	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	limiter := deps.RateLimiter
	if limiter == nil {
		limiter = middleware.NewRateLimiter(nil)
	}
	if deps.Config.RateLimitGlobalThreshold > 0 {
		window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
		r.Use(limiter.Middleware(middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))
	}

	if deps.HealthUC != nil {
		NewHealthHandler(r, deps.HealthUC)
	}
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if deps.ImageDir != "" {
		r.Static("/kuvat", deps.ImageDir)
	}

	api := r.Group("/api")

	// Public routes
	NewCatalogHandler(api, deps.CatalogUC)
	NewErrorLogHandler(api)

	// Session routes
	protected := api.Group("")
	protected.Use(middleware.SessionMiddleware(deps.Sessions, deps.ProfileUC))
	{
		writes := limiter.Middleware(middleware.WriteRateLimitConfig())

		NewProfileHandler(protected, deps.ProfileUC)
		NewSettingsHandler(protected, deps.SettingsUC)
		NewAdHandler(protected, deps.AdUC, writes)
		NewContactHandler(protected, deps.ContactUC, writes)
		if deps.PhotoUC != nil {
			NewPhotoHandler(protected, deps.PhotoUC, writes)
		}
	}

	return r
}
