package ports

import (
	"context"

	"github.com/sheik32/Sistema-de-inventario-seguro/internal/core/domain"
)

// Service facades consumed by the HTTP handlers. Handlers validate and
// normalize input first; facades only ever see validated domain values.

// AdminSvcFacade owns datastore initialization.
type AdminSvcFacade interface {
	// Iniciar creates or resets every known sheet with its header row.
	Iniciar(ctx context.Context) error
	// Resetear drops the known sheets and recreates them empty.
	Resetear(ctx context.Context) error
}

// CategoriaSvcFacade owns category creation and listing.
type CategoriaSvcFacade interface {
	AgregarCategoria(ctx context.Context, categoria domain.Categoria) (*domain.Categoria, error)
	GetCategorias(ctx context.Context) ([]Record, error)
}

// ProductoSvcFacade owns product creation, inventory reads and search.
type ProductoSvcFacade interface {
	AgregarProducto(ctx context.Context, producto domain.Producto) (*domain.Producto, error)
	GetInventario(ctx context.Context) ([]Record, error)
	// BuscarProducto returns the products whose id, code or name contain the
	// query (case-insensitive). An empty slice is a valid no-match result.
	BuscarProducto(ctx context.Context, query string) ([]Record, error)
	// GetData exposes a raw sheet read for known sheet names.
	GetData(ctx context.Context, hoja string) ([]Record, error)
}

// LedgerSvcFacade owns the stock-adjusting transaction protocol. It is the
// sole writer of ledger rows and the sole mutator of product stock/prices.
type LedgerSvcFacade interface {
	RegistrarTransaccion(ctx context.Context, txn domain.Transaccion) (domain.CodigoResultado, error)
}

// ResumenSvcFacade reads the precomputed daily summary.
type ResumenSvcFacade interface {
	GetResumenDiario(ctx context.Context) ([]Record, error)
}

// ServiceContainer bundles every facade for route registration.
type ServiceContainer struct {
	Admin     AdminSvcFacade
	Categoria CategoriaSvcFacade
	Producto  ProductoSvcFacade
	Ledger    LedgerSvcFacade
	Resumen   ResumenSvcFacade
}
