package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sheik32/Sistema-de-inventario-seguro/internal/dto"
)

// Recovery converts panics into the generic internal-error envelope. The
// panic value is logged with the request-scoped logger and never reaches the
// caller.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		GetLoggerFromCtx(c.Request.Context()).Error("Panic recovered during dispatch",
			slog.Any("panic", recovered),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Error("Error al procesar la solicitud"))
	})
}
