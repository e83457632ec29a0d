package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/sheik32/Sistema-de-inventario-seguro/internal/dto"
)

// NewIPLimiter builds a per-IP limiter admitting maxPerMinute requests.
func NewIPLimiter(maxPerMinute int) *limiter.Limiter {
	rate, _ := limiter.NewRateFromFormatted(fmt.Sprintf("%d-M", maxPerMinute))
	return limiter.New(memory.NewStore(), rate)
}

// RateLimit creates a Gin middleware for rate limiting requests by client
// IP. Rejections use the uniform envelope so callers need no special case.
func RateLimit(limiterInstance *limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		lctx, err := limiterInstance.Get(c.Request.Context(), ip)
		if err != nil {
			GetLoggerFromCtx(c.Request.Context()).Error("Failed to get rate limit context",
				slog.String("ip", ip), slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Error("Error al procesar la solicitud"))
			return
		}

		if lctx.Reached {
			GetLoggerFromCtx(c.Request.Context()).Warn("Rate limit exceeded",
				slog.String("ip", ip), slog.Int64("limit", lctx.Limit), slog.Int64("remaining_requests", lctx.Remaining))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.Error("Demasiadas solicitudes. Intente nuevamente en un momento."))
			return
		}

		c.Next()
	}
}
