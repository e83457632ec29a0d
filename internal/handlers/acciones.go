package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sheik32/Sistema-de-inventario-seguro/internal/core/domain"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/dto"
)

// Per-action handlers. Each one validates, calls exactly one facade and
// translates the outcome into the envelope.

func (h *accionesHandler) iniciar(c *gin.Context, ctx context.Context) {
	if err := h.services.Admin.Iniciar(ctx); err != nil {
		h.responderFallo(c, err, "Error al inicializar la base de datos")
		return
	}
	c.JSON(http.StatusOK, dto.Exito(nil, "Base de datos inicializada correctamente"))
}

func (h *accionesHandler) resetear(c *gin.Context, ctx context.Context) {
	if err := h.services.Admin.Resetear(ctx); err != nil {
		h.responderFallo(c, err, "Error al resetear la base de datos")
		return
	}
	c.JSON(http.StatusOK, dto.Exito(nil, "Base de datos reseteada correctamente"))
}

// buscarProducto assumes the router already rejected an empty query.
func (h *accionesHandler) buscarProducto(c *gin.Context, ctx context.Context, query string) {
	registros, err := h.services.Producto.BuscarProducto(ctx, query)
	if err != nil {
		h.responderFallo(c, err, "Error al procesar la solicitud")
		return
	}
	if len(registros) == 0 {
		c.JSON(http.StatusOK, dto.Advertencia("Producto no encontrado"))
		return
	}
	c.JSON(http.StatusOK, dto.Exito(registros, ""))
}

func (h *accionesHandler) agregarCategoria(c *gin.Context, ctx context.Context, req dto.AccionPost) {
	categoria, errores := h.validador.Categoria(req.Nombre)
	if len(errores) > 0 {
		c.JSON(http.StatusBadRequest, dto.Error(strings.Join(errores, ". ")))
		return
	}
	creada, err := h.services.Categoria.AgregarCategoria(ctx, *categoria)
	if err != nil {
		h.responderFallo(c, err, "Error al guardar la categoría")
		return
	}
	c.JSON(http.StatusOK, dto.Exito(creada, "Categoría agregada exitosamente."))
}

func (h *accionesHandler) agregarProducto(c *gin.Context, ctx context.Context, req dto.AccionPost) {
	producto, errores := h.validador.Producto(req.ToProductoInput())
	if len(errores) > 0 {
		c.JSON(http.StatusBadRequest, dto.Error(strings.Join(errores, ". ")))
		return
	}
	creado, err := h.services.Producto.AgregarProducto(ctx, *producto)
	if err != nil {
		h.responderFallo(c, err, "Error al guardar el producto")
		return
	}
	c.JSON(http.StatusOK, dto.Exito(creado, "Producto registrado exitosamente."))
}

func (h *accionesHandler) registrarTransaccion(c *gin.Context, ctx context.Context, req dto.AccionPost) {
	txn, errores := h.validador.Transaccion(req.ToTransaccionInput())
	if len(errores) > 0 {
		c.JSON(http.StatusBadRequest, dto.Error(strings.Join(errores, ". ")))
		return
	}

	resultado, err := h.services.Ledger.RegistrarTransaccion(ctx, *txn)
	switch resultado {
	case domain.ResultadoOK:
		c.JSON(http.StatusOK, dto.Exito(nil, "Transacción registrada exitosamente"))
	case domain.ProductoNoEncontrado:
		c.JSON(http.StatusNotFound, dto.Error("Producto no encontrado"))
	case domain.StockInsuficiente:
		c.JSON(http.StatusOK, dto.Advertencia("Stock insuficiente para completar la venta"))
	case domain.LimiteStockExcedido:
		c.JSON(http.StatusOK, dto.Advertencia("La compra excede el límite máximo de stock"))
	case domain.ErrorEscrituraLibro:
		h.responderFallo(c, err, "Error al registrar la transacción")
	case domain.ErrorInventario:
		h.responderFallo(c, err, "Error al actualizar el inventario")
	default:
		h.responderFallo(c, err, "Error al procesar la solicitud")
	}
}
