package services

import (
	"context"
	"fmt"

	"github.com/sheik32/Sistema-de-inventario-seguro/internal/core/domain"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/core/ports"
)

// AdminService owns datastore initialization and reset.
type AdminService struct {
	store ports.TabularStore
}

// NewAdminService creates a new AdminService.
func NewAdminService(store ports.TabularStore) *AdminService {
	return &AdminService{store: store}
}

// Iniciar creates every known sheet if missing and resets it to its header
// row.
func (s *AdminService) Iniciar(ctx context.Context) error {
	for _, esquema := range domain.Esquemas() {
		if err := s.store.EnsureSheet(ctx, esquema); err != nil {
			return fmt.Errorf("failed to initialize sheet %q: %w", esquema.Nombre, err)
		}
	}
	return nil
}

// Resetear drops the known sheets and recreates them empty.
func (s *AdminService) Resetear(ctx context.Context) error {
	for _, esquema := range domain.Esquemas() {
		if err := s.store.DropSheet(ctx, esquema.Nombre); err != nil {
			return fmt.Errorf("failed to drop sheet %q: %w", esquema.Nombre, err)
		}
	}
	return s.Iniciar(ctx)
}
