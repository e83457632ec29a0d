package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sheik32/Sistema-de-inventario-seguro/internal/apperrors"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/core/ports"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/dto"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/middleware"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/platform/config"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/sanitize"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/validation"
)

// accionesHandler dispatches the action-based protocol.
type accionesHandler struct {
	cfg       *config.Config
	services  *ports.ServiceContainer
	validador *validation.Validador
}

func newAccionesHandler(cfg *config.Config, services *ports.ServiceContainer, v *validation.Validador) *accionesHandler {
	return &accionesHandler{cfg: cfg, services: services, validador: v}
}

// doGet godoc
// @Summary Dispatch a read action
// @Description Executes one of the read actions selected by the `action` query parameter
// @Tags acciones
// @Produce json
// @Param action query string true "Action name" Enums(iniciar,resetear,getCategorias,buscarProducto,getInventario,getResumenDiario,getData)
// @Param query query string false "Search term for buscarProducto"
// @Param sheetName query string false "Sheet name for getData"
// @Success 200 {object} dto.Respuesta
// @Failure 400 {object} dto.Respuesta
// @Router /exec [get]
func (h *accionesHandler) doGet(c *gin.Context) {
	var q dto.AccionGet
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("Acción no válida o faltan parámetros"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.cfg.RequestTimeout)
	defer cancel()

	accion := sanitize.Text(q.Action, 50)
	query := sanitize.Text(q.Query, 100)
	hoja := sanitize.Text(q.SheetName, 50)

	switch accion {
	case "iniciar":
		h.iniciar(c, ctx)
	case "resetear":
		h.resetear(c, ctx)
	case "getCategorias":
		registros, err := h.services.Categoria.GetCategorias(ctx)
		h.responderLectura(c, registros, err)
	case "buscarProducto":
		if query == "" {
			c.JSON(http.StatusBadRequest, dto.Error("Parámetro de búsqueda requerido"))
			return
		}
		h.buscarProducto(c, ctx, query)
	case "getInventario":
		registros, err := h.services.Producto.GetInventario(ctx)
		h.responderLectura(c, registros, err)
	case "getResumenDiario":
		registros, err := h.services.Resumen.GetResumenDiario(ctx)
		h.responderLectura(c, registros, err)
	case "getData":
		if hoja == "" {
			c.JSON(http.StatusBadRequest, dto.Error("Acción no válida o faltan parámetros"))
			return
		}
		registros, err := h.services.Producto.GetData(ctx, hoja)
		h.responderLectura(c, registros, err)
	default:
		c.JSON(http.StatusBadRequest, dto.Error("Acción no válida o faltan parámetros"))
	}
}

// doPost godoc
// @Summary Dispatch a write action
// @Description Executes one of the write actions selected by the `action` body field
// @Tags acciones
// @Accept json
// @Produce json
// @Param request body dto.AccionPost true "Action payload"
// @Success 200 {object} dto.Respuesta
// @Failure 400 {object} dto.Respuesta
// @Router /exec [post]
func (h *accionesHandler) doPost(c *gin.Context) {
	var req dto.AccionPost
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("No se recibieron datos en la solicitud"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.cfg.RequestTimeout)
	defer cancel()

	switch sanitize.Text(req.Action, 50) {
	case "agregarCategoria":
		h.agregarCategoria(c, ctx, req)
	case "agregarProducto":
		h.agregarProducto(c, ctx, req)
	case "registrarTransaccion":
		h.registrarTransaccion(c, ctx, req)
	default:
		c.JSON(http.StatusBadRequest, dto.Error("Acción no reconocida"))
	}
}

// responderLectura maps a read result onto the envelope. Store-level detail
// never reaches the caller.
func (h *accionesHandler) responderLectura(c *gin.Context, registros []ports.Record, err error) {
	if err != nil {
		h.responderFallo(c, err, "Error al procesar la solicitud")
		return
	}
	if len(registros) == 0 {
		c.JSON(http.StatusOK, dto.Advertencia("No hay datos disponibles"))
		return
	}
	c.JSON(http.StatusOK, dto.Exito(registros, ""))
}

// responderFallo maps an error class onto a fixed, non-leaking envelope.
func (h *accionesHandler) responderFallo(c *gin.Context, err error, mensaje string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.Error("No hay datos disponibles"))
	case errors.Is(err, apperrors.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		logger.Warn("Outbound call timed out", slog.String("error", err.Error()))
		c.JSON(http.StatusGatewayTimeout, dto.Error("Tiempo de espera agotado. Intente nuevamente."))
	default:
		logger.Error("Request failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Error(mensaje))
	}
}
