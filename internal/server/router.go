package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mealloan/backend/internal/auth"
	"github.com/mealloan/backend/internal/config"
	"github.com/mealloan/backend/internal/http/handlers"
	"github.com/mealloan/backend/internal/http/middleware"
	"github.com/mealloan/backend/internal/version"
)

const maxRequestBodyBytes = 1 << 20

type Dependencies struct {
	Pinger        handlers.Pinger
	AuthHandler   *handlers.AuthHandler
	LoanHandler   *handlers.LoanHandler
	ClientHandler *handlers.ClientHandler
	JWTManager    *auth.JWTManager
}

func NewRouter(cfg config.Config, logger *slog.Logger, deps Dependencies) *gin.Engine {
	if cfg.Env == "prod" || cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(func(c *gin.Context) {
		logger.Info("request", "method", c.Request.Method, "path", c.Request.URL.Path)
		c.Next()
	})
	r.Use(middleware.RequestBodyLimit(maxRequestBodyBytes))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	health := handlers.NewHealthHandler(deps.Pinger)
	meta := handlers.NewMetaHandler(cfg.Env, version.Version)

	r.GET("/health", health.Health)
	r.GET("/ready", health.Ready)
	r.GET("/v1/meta", meta.GetMeta)

	if deps.AuthHandler != nil {
		r.POST("/login", deps.AuthHandler.Login)
	}

	if deps.JWTManager != nil {
		if deps.LoanHandler != nil {
			loans := r.Group("")
			loans.Use(middleware.RequireAuth(deps.JWTManager))
			loans.POST("/loans", deps.LoanHandler.CreateLoan)
			loans.GET("/api/loans", deps.LoanHandler.ListLoans)
		}
		if deps.ClientHandler != nil {
			clients := r.Group("/v1/clients")
			clients.Use(middleware.RequireAuth(deps.JWTManager))
			clients.POST("", deps.ClientHandler.Register)
			clients.GET("/:idNumber", deps.ClientHandler.GetClient)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
	})

	return r
}
