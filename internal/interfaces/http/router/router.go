// Package router 提供 HTTP 路由配置
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"genai-relay-api/internal/config"
	"genai-relay-api/internal/interfaces/http/handler"
	"genai-relay-api/internal/interfaces/http/middleware"
)

// Router HTTP 路由器
type Router struct {
	engine *gin.Engine
	cfg    *config.Config

	generation *handler.GenerationHandler
	health     *handler.HealthHandler
}

// New 创建新的路由器
func New(cfg *config.Config, generation *handler.GenerationHandler, health *handler.HealthHandler) *Router {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := &Router{
		engine:     gin.New(),
		cfg:        cfg,
		generation: generation,
		health:     health,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

// Engine 返回 Gin Engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// setupMiddleware 配置中间件
func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery())

	// 追踪先于请求 ID 注入，使日志同时带上 trace_id 与 request_id
	if r.cfg.Observability.Tracing.Enabled {
		r.engine.Use(middleware.Trace(r.cfg.App.Name, "/health", "/live", "/ready", r.cfg.Observability.Metrics.Path))
		r.engine.Use(middleware.TraceContext())
	}
	r.engine.Use(middleware.RequestID())

	r.engine.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: r.cfg.Security.CORS.AllowedOrigins,
		AllowedMethods: r.cfg.Security.CORS.AllowedMethods,
		AllowedHeaders: r.cfg.Security.CORS.AllowedHeaders,
	}))

	if r.cfg.Observability.Metrics.Enabled {
		r.engine.Use(middleware.Metrics())
	}
}

// setupRoutes 配置路由
func (r *Router) setupRoutes() {
	// 系统端点
	r.engine.GET("/health", r.health.Health)
	r.engine.GET("/ready", r.health.Ready)
	r.engine.GET("/live", r.health.Live)

	if r.cfg.Observability.Metrics.Enabled {
		r.engine.GET(r.cfg.Observability.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	// 生成端点
	r.engine.POST("/generate-text", r.generation.GenerateText)
	r.engine.POST("/generate-from-image", r.generation.GenerateFromImage)
	r.engine.POST("/generate-from-document", r.generation.GenerateFromDocument)
	r.engine.POST("/generate-from-audio", r.generation.GenerateFromAudio)
}
