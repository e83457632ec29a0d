// Package client is the outbound side of the action protocol. It runs the
// same sanitize/validate pipeline as the server before anything leaves the
// process, and every call passes the shared sliding-window limiter first, so
// an over-eager caller is rejected locally instead of burning server quota.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sheik32/Sistema-de-inventario-seguro/internal/apperrors"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/dto"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/platform/config"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/ratelimit"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/sanitize"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/validation"
)

// APIClient talks to the /exec endpoint.
type APIClient struct {
	baseURL   string
	http      *http.Client
	limiter   *ratelimit.Limiter
	validador *validation.Validador
}

// New builds an APIClient against baseURL. The limiter is shared by every
// call made through this client.
func New(baseURL string, cfg *config.Config, limiter *ratelimit.Limiter, opts ...Option) *APIClient {
	c := &APIClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      &http.Client{Timeout: cfg.RequestTimeout},
		limiter:   limiter,
		validador: validation.New(cfg.Limits, cfg.Ranges),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Option configures an APIClient.
type Option func(*APIClient)

// WithHTTPClient replaces the underlying HTTP client. Tests use it to point
// at an httptest server transport or to shorten the timeout.
func WithHTTPClient(h *http.Client) Option {
	return func(c *APIClient) { c.http = h }
}

// Iniciar initializes the remote datastore.
func (c *APIClient) Iniciar(ctx context.Context) (*dto.Respuesta, error) {
	return c.get(ctx, url.Values{"action": {"iniciar"}})
}

// Resetear resets the remote datastore.
func (c *APIClient) Resetear(ctx context.Context) (*dto.Respuesta, error) {
	return c.get(ctx, url.Values{"action": {"resetear"}})
}

// GetCategorias lists the categories.
func (c *APIClient) GetCategorias(ctx context.Context) (*dto.Respuesta, error) {
	return c.get(ctx, url.Values{"action": {"getCategorias"}})
}

// GetInventario lists the products.
func (c *APIClient) GetInventario(ctx context.Context) (*dto.Respuesta, error) {
	return c.get(ctx, url.Values{"action": {"getInventario"}})
}

// GetResumenDiario reads the daily summary.
func (c *APIClient) GetResumenDiario(ctx context.Context) (*dto.Respuesta, error) {
	return c.get(ctx, url.Values{"action": {"getResumenDiario"}})
}

// BuscarProducto searches products by id, code or name.
func (c *APIClient) BuscarProducto(ctx context.Context, query string) (*dto.Respuesta, error) {
	limpio := sanitize.Text(query, 100)
	if limpio == "" {
		return nil, fmt.Errorf("parámetro de búsqueda requerido: %w", apperrors.ErrValidation)
	}
	return c.get(ctx, url.Values{"action": {"buscarProducto"}, "query": {limpio}})
}

// AgregarCategoria creates a category. Validation runs locally first.
func (c *APIClient) AgregarCategoria(ctx context.Context, nombre string) (*dto.Respuesta, error) {
	categoria, errores := c.validador.Categoria(nombre)
	if len(errores) > 0 {
		return nil, fmt.Errorf("%s: %w", strings.Join(errores, ". "), apperrors.ErrValidation)
	}
	return c.post(ctx, map[string]any{
		"action": "agregarCategoria",
		"nombre": categoria.Nombre,
	})
}

// AgregarProducto creates a product. Validation runs locally first; the
// normalized values, not the raw input, go over the wire.
func (c *APIClient) AgregarProducto(ctx context.Context, raw validation.ProductoInput) (*dto.Respuesta, error) {
	producto, errores := c.validador.Producto(raw)
	if len(errores) > 0 {
		return nil, fmt.Errorf("%s: %w", strings.Join(errores, ". "), apperrors.ErrValidation)
	}
	return c.post(ctx, map[string]any{
		"action":        "agregarProducto",
		"nombre":        producto.Nombre,
		"codigo":        producto.Codigo,
		"categoria":     producto.Categoria,
		"precio_compra": producto.PrecioCompra.InexactFloat64(),
		"precio_venta":  producto.PrecioVenta.InexactFloat64(),
		"stock":         producto.Stock,
	})
}

// RegistrarTransaccion records a purchase or sale.
func (c *APIClient) RegistrarTransaccion(ctx context.Context, raw validation.TransaccionInput) (*dto.Respuesta, error) {
	txn, errores := c.validador.Transaccion(raw)
	if len(errores) > 0 {
		return nil, fmt.Errorf("%s: %w", strings.Join(errores, ". "), apperrors.ErrValidation)
	}
	return c.post(ctx, map[string]any{
		"action":      "registrarTransaccion",
		"producto_id": txn.ProductoID,
		"cantidad":    txn.Cantidad,
		"precio":      txn.Precio.InexactFloat64(),
		"type":        string(txn.Tipo),
		"extra_data":  txn.ExtraData,
	})
}

func (c *APIClient) get(ctx context.Context, params url.Values) (*dto.Respuesta, error) {
	if !c.limiter.Allow() {
		return nil, fmt.Errorf("demasiadas solicitudes: %w", apperrors.ErrRateLimited)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/exec?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *APIClient) post(ctx context.Context, body map[string]any) (*dto.Respuesta, error) {
	if !c.limiter.Allow() {
		return nil, fmt.Errorf("demasiadas solicitudes: %w", apperrors.ErrRateLimited)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/exec", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

// do executes the request and decodes the envelope. HTTP status is secondary
// transport detail; callers branch on Respuesta.Status.
func (c *APIClient) do(req *http.Request) (*dto.Respuesta, error) {
	res, err := c.http.Do(req)
	if err != nil {
		var ne interface{ Timeout() bool }
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
			return nil, fmt.Errorf("tiempo de espera agotado: %w", apperrors.ErrTimeout)
		}
		return nil, err
	}
	defer res.Body.Close()

	cuerpo, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	var resp dto.Respuesta
	if err := json.Unmarshal(cuerpo, &resp); err != nil {
		return nil, fmt.Errorf("respuesta no válida del servidor: %w", apperrors.ErrInternal)
	}
	if res.StatusCode == http.StatusTooManyRequests {
		return &resp, fmt.Errorf("demasiadas solicitudes: %w", apperrors.ErrRateLimited)
	}
	return &resp, nil
}

// NewDefaultLimiter builds the limiter the client side shares: the same
// per-minute budget the server enforces, checked before any network I/O.
func NewDefaultLimiter(cfg *config.Config) *ratelimit.Limiter {
	return ratelimit.New(cfg.RateLimitPerMinute, time.Minute)
}
