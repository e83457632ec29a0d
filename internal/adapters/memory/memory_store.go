// Package memory provides an in-memory TabularStore used by tests and by
// local development runs that have no spreadsheet configured.
package memory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/sheik32/Sistema-de-inventario-seguro/internal/apperrors"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/core/domain"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/core/ports"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/sanitize"
)

type hoja struct {
	esquema domain.EsquemaHoja
	filas   [][]any
}

// Store keeps sheets as ordered slices of rows behind one mutex. The lock
// serializes individual operations only; like the real store it offers no
// transaction spanning a read and a later write.
type Store struct {
	mu     sync.RWMutex
	hojas  map[string]*hoja
	logger *slog.Logger
}

// NewStore builds an empty Store.
func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{hojas: make(map[string]*hoja), logger: logger}
}

func (s *Store) EnsureSheet(_ context.Context, esquema domain.EsquemaHoja) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hojas[esquema.Nombre] = &hoja{esquema: esquema}
	return nil
}

func (s *Store) DropSheet(_ context.Context, nombre string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.hojas, nombre)
	return nil
}

func (s *Store) AppendRow(_ context.Context, nombre string, valores []any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.hojas[nombre]
	if !ok {
		return fmt.Errorf("hoja %q: %w", nombre, apperrors.ErrNotFound)
	}
	fila := make([]any, len(valores))
	copy(fila, valores)
	h.filas = append(h.filas, fila)
	return nil
}

func (s *Store) ReadAll(_ context.Context, nombre string) ([]ports.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.hojas[nombre]
	if !ok {
		return nil, fmt.Errorf("hoja %q: %w", nombre, apperrors.ErrNotFound)
	}

	registros := make([]ports.Record, 0, len(h.filas))
	for i, fila := range h.filas {
		registro, vacia, err := h.esquema.MapRow(fila)
		if err != nil {
			s.logger.Warn("Row failed schema coercion, dropped",
				slog.String("sheet", nombre), slog.Int("row", i+2), slog.String("error", err.Error()))
			continue
		}
		if vacia {
			continue
		}
		registros = append(registros, registro)
	}
	return registros, nil
}

func (s *Store) UpdateCell(_ context.Context, nombre string, fila, columna int, valor any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.hojas[nombre]
	if !ok {
		return fmt.Errorf("hoja %q: %w", nombre, apperrors.ErrNotFound)
	}
	idx := fila - 2 // row 1 is the header
	if idx < 0 || idx >= len(h.filas) || columna < 0 || columna >= len(h.esquema.Headers) {
		return fmt.Errorf("celda fuera de rango (%d,%d): %w", fila, columna, apperrors.ErrStoreWrite)
	}
	for len(h.filas[idx]) <= columna {
		h.filas[idx] = append(h.filas[idx], nil)
	}
	h.filas[idx][columna] = valor
	return nil
}

func (s *Store) DeleteLastRow(_ context.Context, nombre string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.hojas[nombre]
	if !ok {
		return fmt.Errorf("hoja %q: %w", nombre, apperrors.ErrNotFound)
	}
	if len(h.filas) == 0 {
		return fmt.Errorf("hoja %q sin filas: %w", nombre, apperrors.ErrStoreWrite)
	}
	h.filas = h.filas[:len(h.filas)-1]
	return nil
}

func (s *Store) FindRowByID(_ context.Context, nombre string, columnaID int, id string) (*ports.FoundRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.hojas[nombre]
	if !ok {
		return nil, fmt.Errorf("hoja %q: %w", nombre, apperrors.ErrNotFound)
	}
	buscado := strings.ToLower(strings.TrimSpace(id))
	for i, fila := range h.filas {
		var celda any
		if columnaID < len(fila) {
			celda = fila[columnaID]
		}
		if strings.ToLower(sanitize.Text(celda, 0)) == buscado {
			valores := make([]any, len(fila))
			copy(valores, fila)
			return &ports.FoundRow{Values: valores, Row: i + 2}, nil
		}
	}
	return nil, fmt.Errorf("id %q en hoja %q: %w", id, nombre, apperrors.ErrNotFound)
}

var _ ports.TabularStore = (*Store)(nil)
