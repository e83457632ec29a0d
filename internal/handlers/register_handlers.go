package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/sheik32/Sistema-de-inventario-seguro/cmd/docs"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/core/ports"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/middleware"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/platform/config"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/validation"
)

// RegisterRoutes sets up the action endpoint and its middleware.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *ports.ServiceContainer) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	h := newAccionesHandler(cfg, services, validation.New(cfg.Limits, cfg.Ranges))

	// One endpoint pair: reads by query string, writes by JSON body. Per-IP
	// admission applies to both.
	exec := r.Group("/exec", middleware.RateLimit(middleware.NewIPLimiter(cfg.RateLimitPerMinute)))
	{
		exec.GET("", h.doGet)
		exec.POST("", h.doPost)
	}

	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes serves the swagger UI outside production.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
