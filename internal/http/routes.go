package http

import (
	"time"

	"tasklist_api/internal/config"
	"tasklist_api/internal/http/handlers"
	"tasklist_api/internal/http/middleware"
	"tasklist_api/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, cfg *config.Config, version string) {
	hub := ws.NewHub()
	h := handlers.NewHandler(db, hub)
	healthHandler := handlers.NewHealthHandler(db, version)

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	// Task event feed
	r.GET("/ws", h.WS(hub))

	apiRateWindow := time.Duration(cfg.APIRateWindow) * time.Second
	authRateWindow := time.Duration(cfg.AuthRateWindow) * time.Second
	writeRateWindow := time.Duration(cfg.WriteRateWindow) * time.Second

	api := r.Group("/api")
	if middleware.RedisEnabled() {
		api.Use(middleware.RedisRateLimit(cfg.APIRateLimit, apiRateWindow))
	} else {
		api.Use(middleware.SimpleRateLimit(cfg.APIRateLimit, apiRateWindow))
	}

	// Auth (stricter limit, no JWT)
	authRL := middleware.RedisRateLimit(cfg.AuthRateLimit, authRateWindow)
	api.POST("/auth/register", authRL, h.Register)
	api.POST("/auth/login", authRL, h.Login)

	// Per-user limiter for mutating task endpoints
	writeRL := middleware.UserRateLimit(cfg.WriteRateLimit, writeRateWindow)

	// Tasks, scoped to the path user id
	tasks := api.Group("/:user_id/tasks")
	tasks.Use(middleware.JWT())
	{
		tasks.GET("", h.ListTasks)
		tasks.POST("", writeRL, h.CreateTask)
		tasks.GET("/:task_id", h.GetTask)
		tasks.PUT("/:task_id", writeRL, h.UpdateTask)
		tasks.DELETE("/:task_id", writeRL, h.DeleteTask)
		tasks.PATCH("/:task_id/complete", writeRL, h.ToggleTask)
	}
}
