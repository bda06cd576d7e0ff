package v1

import (
	"net/http"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	AccountUC      domain.AccountUsecase
	AuthUC         domain.AuthUsecase
	JobUC          domain.JobUsecase
	SavedJobUC     domain.SavedJobUsecase
	RecommendUC    domain.RecommendationUsecase
	NotificationUC domain.NotificationUsecase
	AlertUC        domain.AlertUsecase
	Tokens         *auth.TokenManager
	Config         *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	api := r.Group("")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Login gets its own strict rate limit
	login := api.Group("")
	login.Use(middleware.RateLimit(middleware.LoginRateLimitConfig(
		deps.Config.RateLimitLoginThreshold,
		deps.Config.RateLimitWindowSeconds,
	)))

	// Session materialization requires a valid token
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))

	NewAccountHandler(api, deps.AccountUC)
	NewAuthHandler(login, protected, deps.AuthUC, deps.Tokens)
	NewJobHandler(api, deps.JobUC)
	NewSavedJobHandler(api, deps.SavedJobUC)
	NewRecommendationHandler(api, deps.RecommendUC)
	NewNotificationHandler(api, deps.NotificationUC)
	NewAlertHandler(api, deps.AlertUC)

	return r
}
