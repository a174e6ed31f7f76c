package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dtroode/freejob-server/internal/api/http/handler"
	"github.com/dtroode/freejob-server/internal/api/http/middleware"
	"github.com/dtroode/freejob-server/internal/logger"
	"github.com/dtroode/freejob-server/internal/metrics"
	"github.com/dtroode/freejob-server/internal/model"
)

// TokenService is the part of the token service used by routes and bearer authentication.
type TokenService interface {
	handler.TokenService
	middleware.Authenticator
}

// Dependencies holds everything the router wires into handlers.
type Dependencies struct {
	AuthService    handler.AuthService
	TokenService   TokenService
	UserService    handler.UserService
	OfferService   handler.OfferService
	ResumeService  handler.ResumeService
	ContextManager model.ContextManager
	Pinger         handler.Pinger
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer
	AllowedOrigins []string
	Logger         *logger.Logger
}

// Router builds the gin engine for the FreeJob API.
type Router struct {
	deps Dependencies
}

// New creates new Router instance.
func New(deps Dependencies) *Router {
	return &Router{deps: deps}
}

// Register builds the engine with middleware and all routes.
func (r *Router) Register() *gin.Engine {
	handler.RegisterValidation()

	engine := gin.New()
	engine.Use(gin.Recovery())
	if len(r.deps.AllowedOrigins) > 0 {
		engine.Use(cors.New(cors.Config{
			AllowOrigins:     r.deps.AllowedOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	engine.Use(middleware.NewLogging(r.deps.Logger).Handle)
	if r.deps.Metrics != nil {
		engine.Use(middleware.NewMetrics(r.deps.Metrics).Handle)
	}

	r.registerOpsRoutes(engine)

	v1 := engine.Group("/v1")
	authenticate := middleware.NewAuthenticate(r.deps.TokenService, r.deps.ContextManager, r.deps.Logger).Handle

	r.registerAuthRoutes(v1, authenticate)
	r.registerUserRoutes(v1.Group("/users", authenticate))
	r.registerOfferRoutes(v1.Group("/offers", authenticate))

	return engine
}

func (r *Router) registerOpsRoutes(engine *gin.Engine) {
	if r.deps.Pinger != nil {
		engine.GET("/healthz", handler.NewHealth(r.deps.Pinger, r.deps.Logger).Check)
	}
	if r.deps.Gatherer != nil {
		engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(r.deps.Gatherer, promhttp.HandlerOpts{})))
	}
}

func (r *Router) registerAuthRoutes(v1 *gin.RouterGroup, authenticate gin.HandlerFunc) {
	h := handler.NewAuth(r.deps.AuthService, r.deps.TokenService, r.deps.ContextManager, r.deps.Metrics, r.deps.Logger)

	auth := v1.Group("/auth")
	auth.POST("/register", h.Register)
	auth.GET("/email-available", h.EmailAvailable)
	auth.POST("/login", h.Login)
	auth.POST("/refresh", h.Refresh)
	auth.POST("/logout", h.Logout)
	auth.POST("/logout-all", authenticate, h.LogoutAll)
}

func (r *Router) registerUserRoutes(users *gin.RouterGroup) {
	h := handler.NewUser(r.deps.UserService, r.deps.ContextManager, r.deps.Logger)
	users.GET("", h.Me)
	users.GET("/all", h.List)

	resume := handler.NewResume(r.deps.ResumeService, r.deps.ContextManager, r.deps.Logger)
	users.PUT("/resume", resume.Upload)
	users.GET("/resume", resume.Download)
	users.DELETE("/resume", resume.Delete)
}

func (r *Router) registerOfferRoutes(offers *gin.RouterGroup) {
	h := handler.NewOffer(r.deps.OfferService, r.deps.ContextManager, r.deps.Logger)
	offers.POST("", h.Create)
	offers.GET("", h.List)
	offers.GET("/:id", h.Get)
	offers.PUT("/:id", h.Update)
	offers.DELETE("/:id", h.Delete)
	offers.POST("/:id/apply", h.Apply)
	offers.POST("/:id/archive", h.Archive)
}
