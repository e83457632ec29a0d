package ports

import (
	"context"

	"github.com/sheik32/Sistema-de-inventario-seguro/internal/core/domain"
)

// Record is one sheet row keyed by header name, with cell values already
// coerced to the column's declared type.
type Record map[string]any

// FoundRow is the result of an exact-id lookup. Row is the 1-based sheet row
// number (row 1 is the header), ready to be passed to UpdateCell.
type FoundRow struct {
	Values []any
	Row    int
}

// TabularStore is the only gateway to the external row/column persistence
// layer. Implementations provide no cross-row transactions and no
// compare-and-swap: the read-modify-write sequence of the ledger protocol is
// inherently racy against concurrent writers and callers must not assume
// otherwise.
//
// Row arguments are 1-based sheet rows; column arguments are 0-based and
// line up with the schema header order.
type TabularStore interface {
	// EnsureSheet creates the sheet if missing, clears its contents and
	// writes the schema's header row.
	EnsureSheet(ctx context.Context, esquema domain.EsquemaHoja) error

	// DropSheet removes a sheet entirely. Dropping a missing sheet is not an
	// error.
	DropSheet(ctx context.Context, nombre string) error

	// AppendRow appends one row of ordered values after the last data row.
	AppendRow(ctx context.Context, hoja string, valores []any) error

	// ReadAll returns every data row as a Record, using the first row as
	// field names. Rows whose cells all sanitize to empty are filtered out;
	// rows that fail schema coercion are dropped and logged, never guessed.
	// A sheet with no data rows yields an empty slice; a missing sheet
	// yields apperrors.ErrNotFound.
	ReadAll(ctx context.Context, hoja string) ([]Record, error)

	// UpdateCell overwrites a single cell.
	UpdateCell(ctx context.Context, hoja string, fila, columna int, valor any) error

	// DeleteLastRow removes the last data row. Only used by the ledger's
	// compensating delete.
	DeleteLastRow(ctx context.Context, hoja string) error

	// FindRowByID scans for the first row whose id column matches id as a
	// case-insensitive exact string. Returns apperrors.ErrNotFound when no
	// row matches.
	FindRowByID(ctx context.Context, hoja string, columnaID int, id string) (*FoundRow, error)
}
