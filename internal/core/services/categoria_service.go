package services

import (
	"context"
	"fmt"

	"github.com/sheik32/Sistema-de-inventario-seguro/internal/core/domain"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/core/ports"
)

// CategoriaService owns category creation and listing.
type CategoriaService struct {
	store ports.TabularStore
}

// NewCategoriaService creates a new CategoriaService.
func NewCategoriaService(store ports.TabularStore) *CategoriaService {
	return &CategoriaService{store: store}
}

// AgregarCategoria appends a validated category with a freshly generated id.
func (s *CategoriaService) AgregarCategoria(ctx context.Context, categoria domain.Categoria) (*domain.Categoria, error) {
	categoria.ID = NewID()
	if err := s.store.AppendRow(ctx, domain.HojaCategorias.Nombre, []any{categoria.ID, categoria.Nombre}); err != nil {
		return nil, fmt.Errorf("failed to save category: %w", err)
	}
	return &categoria, nil
}

// GetCategorias returns every stored category.
func (s *CategoriaService) GetCategorias(ctx context.Context) ([]ports.Record, error) {
	registros, err := s.store.ReadAll(ctx, domain.HojaCategorias.Nombre)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return registros, nil
}
