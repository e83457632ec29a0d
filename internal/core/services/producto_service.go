package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sheik32/Sistema-de-inventario-seguro/internal/apperrors"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/core/domain"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/core/ports"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/sanitize"
)

// ProductoService owns product creation, inventory reads and search.
type ProductoService struct {
	store ports.TabularStore
}

// NewProductoService creates a new ProductoService.
func NewProductoService(store ports.TabularStore) *ProductoService {
	return &ProductoService{store: store}
}

// AgregarProducto appends a validated product with a generated id and
// creation timestamp.
func (s *ProductoService) AgregarProducto(ctx context.Context, producto domain.Producto) (*domain.Producto, error) {
	producto.ID = NewID()
	producto.FechaCreado = time.Now().UTC()

	fila := []any{
		producto.ID,
		producto.Nombre,
		producto.Codigo,
		producto.Categoria,
		producto.PrecioCompra.InexactFloat64(),
		producto.PrecioVenta.InexactFloat64(),
		producto.Stock,
		producto.FechaCreado,
	}
	if err := s.store.AppendRow(ctx, domain.HojaProductos.Nombre, fila); err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}
	return &producto, nil
}

// GetInventario returns every stored product row.
func (s *ProductoService) GetInventario(ctx context.Context) ([]ports.Record, error) {
	registros, err := s.store.ReadAll(ctx, domain.HojaProductos.Nombre)
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory: %w", err)
	}
	return registros, nil
}

// BuscarProducto filters the inventory by a case-insensitive substring match
// against id, code and name. An empty result slice is a valid outcome, not
// an error.
func (s *ProductoService) BuscarProducto(ctx context.Context, query string) ([]ports.Record, error) {
	registros, err := s.GetInventario(ctx)
	if err != nil {
		return nil, err
	}

	buscado := strings.ToLower(strings.TrimSpace(query))
	resultados := make([]ports.Record, 0)
	for _, r := range registros {
		id := strings.ToLower(sanitize.Text(r["id"], 0))
		codigo := strings.ToLower(sanitize.Text(r["código"], 0))
		nombre := strings.ToLower(sanitize.Text(r["nombre"], 0))
		if strings.Contains(id, buscado) || strings.Contains(codigo, buscado) || strings.Contains(nombre, buscado) {
			resultados = append(resultados, r)
		}
	}
	return resultados, nil
}

// GetData exposes a raw read of one known sheet.
func (s *ProductoService) GetData(ctx context.Context, hoja string) ([]ports.Record, error) {
	if _, ok := domain.EsquemaPorNombre(hoja); !ok {
		return nil, fmt.Errorf("hoja desconocida %q: %w", hoja, apperrors.ErrNotFound)
	}
	registros, err := s.store.ReadAll(ctx, hoja)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", hoja, err)
	}
	return registros, nil
}
