package services

import (
	"context"
	"fmt"

	"github.com/sheik32/Sistema-de-inventario-seguro/internal/core/domain"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/core/ports"
)

// ResumenService reads the daily summary that the store precomputes. The
// aggregate is derived data; this service never writes it.
type ResumenService struct {
	store ports.TabularStore
}

// NewResumenService creates a new ResumenService.
func NewResumenService(store ports.TabularStore) *ResumenService {
	return &ResumenService{store: store}
}

// GetResumenDiario returns the stored daily aggregates.
func (s *ResumenService) GetResumenDiario(ctx context.Context) ([]ports.Record, error) {
	registros, err := s.store.ReadAll(ctx, domain.HojaResumen.Nombre)
	if err != nil {
		return nil, fmt.Errorf("failed to read daily summary: %w", err)
	}
	return registros, nil
}
