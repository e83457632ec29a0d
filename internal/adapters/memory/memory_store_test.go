package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheik32/Sistema-de-inventario-seguro/internal/adapters/memory"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/apperrors"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/core/domain"
)

func newProductStore(t *testing.T) *memory.Store {
	t.Helper()
	s := memory.NewStore(nil)
	require.NoError(t, s.EnsureSheet(context.Background(), domain.HojaProductos))
	return s
}

func TestReadAllCoercesBySchema(t *testing.T) {
	ctx := context.Background()
	s := newProductStore(t)

	// Numeric-looking code must survive as text under the declared schema.
	require.NoError(t, s.AppendRow(ctx, "Productos", []any{"id-1", "Tornillo", "0101", "Ferreteria", "1.50", 2.00, 100, nil}))

	registros, err := s.ReadAll(ctx, "Productos")
	require.NoError(t, err)
	require.Len(t, registros, 1)

	assert.Equal(t, "0101", registros[0]["código"])
	assert.Equal(t, 1.50, registros[0]["precio_compra"])
	assert.Equal(t, 2.00, registros[0]["precio_venta"])
	assert.Equal(t, float64(100), registros[0]["stock"])
}

func TestReadAllFiltersEmptyAndInvalidRows(t *testing.T) {
	ctx := context.Background()
	s := newProductStore(t)

	require.NoError(t, s.AppendRow(ctx, "Productos", []any{"id-1", "Tornillo", "TRN-01", "Ferreteria", 1.5, 2.0, 100, nil}))
	require.NoError(t, s.AppendRow(ctx, "Productos", []any{"", "", "", "", "", "", "", ""}))
	// Price cell fails numeric coercion: row dropped, not guessed.
	require.NoError(t, s.AppendRow(ctx, "Productos", []any{"id-2", "Tuerca", "TRC-01", "Ferreteria", "abc", 2.0, 5, nil}))

	registros, err := s.ReadAll(ctx, "Productos")
	require.NoError(t, err)
	require.Len(t, registros, 1)
	assert.Equal(t, "id-1", registros[0]["id"])
}

func TestReadAllDistinguishesEmptyFromMissing(t *testing.T) {
	ctx := context.Background()
	s := newProductStore(t)

	registros, err := s.ReadAll(ctx, "Productos")
	require.NoError(t, err)
	assert.Empty(t, registros)

	_, err = s.ReadAll(ctx, "NoExiste")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFindRowByIDCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	s := newProductStore(t)

	require.NoError(t, s.AppendRow(ctx, "Productos", []any{"id-ABC", "Tornillo", "TRN-01", "F", 1.5, 2.0, 100, nil}))
	require.NoError(t, s.AppendRow(ctx, "Productos", []any{"id-DEF", "Tuerca", "TRC-01", "F", 1.0, 1.5, 50, nil}))

	fila, err := s.FindRowByID(ctx, "Productos", domain.ProductoColID, "ID-abc")
	require.NoError(t, err)
	assert.Equal(t, 2, fila.Row)
	assert.Equal(t, "id-ABC", fila.Values[domain.ProductoColID])

	_, err = s.FindRowByID(ctx, "Productos", domain.ProductoColID, "id-XYZ")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateCellAndDeleteLastRow(t *testing.T) {
	ctx := context.Background()
	s := newProductStore(t)

	require.NoError(t, s.AppendRow(ctx, "Productos", []any{"id-1", "Tornillo", "TRN-01", "F", 1.5, 2.0, 100, nil}))

	require.NoError(t, s.UpdateCell(ctx, "Productos", 2, domain.ProductoColStock, int64(70)))
	fila, err := s.FindRowByID(ctx, "Productos", domain.ProductoColID, "id-1")
	require.NoError(t, err)
	assert.Equal(t, int64(70), fila.Values[domain.ProductoColStock])

	assert.ErrorIs(t, s.UpdateCell(ctx, "Productos", 9, 0, "x"), apperrors.ErrStoreWrite)

	require.NoError(t, s.DeleteLastRow(ctx, "Productos"))
	assert.ErrorIs(t, s.DeleteLastRow(ctx, "Productos"), apperrors.ErrStoreWrite)
}

func TestEnsureSheetResetsContents(t *testing.T) {
	ctx := context.Background()
	s := newProductStore(t)

	require.NoError(t, s.AppendRow(ctx, "Productos", []any{"id-1", "Tornillo", "TRN-01", "F", 1.5, 2.0, 100, nil}))
	require.NoError(t, s.EnsureSheet(ctx, domain.HojaProductos))

	registros, err := s.ReadAll(ctx, "Productos")
	require.NoError(t, err)
	assert.Empty(t, registros)
}
