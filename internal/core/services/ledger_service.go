package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sheik32/Sistema-de-inventario-seguro/internal/apperrors"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/core/domain"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/core/ports"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/platform/config"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/sanitize"
)

// LedgerService runs the stock-adjusting transaction protocol. It is the
// sole writer of ledger rows and the sole mutator of product stock and
// prices.
//
// The locate-then-update sequence is not protected by any lock: the store
// offers no compare-and-swap, so two concurrent transactions against the
// same product can lose an update. Known limitation of the external store.
type LedgerService struct {
	store  ports.TabularStore
	rangos config.NumericRanges
	logger *slog.Logger
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(store ports.TabularStore, rangos config.NumericRanges, logger *slog.Logger) *LedgerService {
	if logger == nil {
		logger = slog.Default()
	}
	return &LedgerService{store: store, rangos: rangos, logger: logger}
}

// pasoSaga is one forward action with its optional undo. Committed steps are
// compensated in reverse order when a later step fails.
type pasoSaga struct {
	nombre    string
	ejecutar  func(context.Context) error
	compensar func(context.Context) error
}

// RegistrarTransaccion validates nothing itself — it expects an already
// validated transaction — and drives the protocol:
//
//	locate product → check stock → append ledger row → update stock cell →
//	update drifted price cell (best effort).
//
// A failed stock update triggers a compensating delete of the just-appended
// ledger row. Compensation is best effort: when it also fails, the orphan
// ledger entry is logged for manual reconciliation and the caller still gets
// the inventory-update failure, because the ledger/stock pair was briefly
// inconsistent either way.
func (s *LedgerService) RegistrarTransaccion(ctx context.Context, txn domain.Transaccion) (domain.CodigoResultado, error) {
	esCompra := txn.Tipo == domain.Compra
	hojaLibro := domain.HojaVentas
	colPrecio := domain.ProductoColPrecioVenta
	if esCompra {
		hojaLibro = domain.HojaCompras
		colPrecio = domain.ProductoColPrecioCompra
	}

	fila, err := s.store.FindRowByID(ctx, domain.HojaProductos.Nombre, domain.ProductoColID, txn.ProductoID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.ProductoNoEncontrado, fmt.Errorf("producto %q: %w", txn.ProductoID, apperrors.ErrNotFound)
		}
		return "", fmt.Errorf("failed to locate product %q: %w", txn.ProductoID, err)
	}

	// A missing or unreadable stock cell counts as zero.
	stockActual := int64(sanitize.Number(celda(fila.Values, domain.ProductoColStock), 0, math.Inf(1), 0))

	var nuevoStock int64
	if esCompra {
		nuevoStock = stockActual + txn.Cantidad
		if nuevoStock > s.rangos.StockMax {
			return domain.LimiteStockExcedido, fmt.Errorf("stock %d excede el máximo %d: %w", nuevoStock, s.rangos.StockMax, apperrors.ErrStockLimit)
		}
	} else {
		if txn.Cantidad > stockActual {
			return domain.StockInsuficiente, fmt.Errorf("stock %d, solicitado %d: %w", stockActual, txn.Cantidad, apperrors.ErrInsufficientStock)
		}
		nuevoStock = stockActual - txn.Cantidad
	}

	txn.ID = NewID()
	txn.Fecha = time.Now().UTC()
	filaLibro := []any{txn.ID, txn.ProductoID, txn.Cantidad, txn.Precio.InexactFloat64(), txn.Fecha, txn.ExtraData}

	logger := s.logger.With(
		slog.String("transaction_id", txn.ID),
		slog.String("product_id", txn.ProductoID),
		slog.String("type", string(txn.Tipo)),
	)

	pasos := []pasoSaga{
		{
			nombre: "append_ledger",
			ejecutar: func(ctx context.Context) error {
				return s.store.AppendRow(ctx, hojaLibro.Nombre, filaLibro)
			},
			compensar: func(ctx context.Context) error {
				return s.store.DeleteLastRow(ctx, hojaLibro.Nombre)
			},
		},
		{
			nombre: "update_stock",
			ejecutar: func(ctx context.Context) error {
				return s.store.UpdateCell(ctx, domain.HojaProductos.Nombre, fila.Row, domain.ProductoColStock, nuevoStock)
			},
		},
	}

	if nombre, err := s.ejecutarSaga(ctx, logger, pasos); err != nil {
		if nombre == "append_ledger" {
			return domain.ErrorEscrituraLibro, fmt.Errorf("failed to append ledger row: %w: %w", err, apperrors.ErrStoreWrite)
		}
		// Surfaced even when compensation succeeded: the ledger/stock pair
		// was inconsistent for a moment and the caller must know.
		return domain.ErrorInventario, fmt.Errorf("failed to update stock: %w: %w", err, apperrors.ErrStoreWrite)
	}

	s.actualizarPrecioDesviado(ctx, logger, fila, colPrecio, txn.Precio)

	logger.Info("Transaction registered",
		slog.Int64("quantity", txn.Cantidad),
		slog.Int64("new_stock", nuevoStock),
	)
	return domain.ResultadoOK, nil
}

// ejecutarSaga runs the steps in order. On the first failure it compensates
// every committed step in reverse and returns the failing step's name. A
// compensation failure is swallowed for control flow but logged for manual
// reconciliation.
func (s *LedgerService) ejecutarSaga(ctx context.Context, logger *slog.Logger, pasos []pasoSaga) (string, error) {
	var hechos []pasoSaga
	for _, paso := range pasos {
		if err := paso.ejecutar(ctx); err != nil {
			for i := len(hechos) - 1; i >= 0; i-- {
				if hechos[i].compensar == nil {
					continue
				}
				if cerr := hechos[i].compensar(ctx); cerr != nil {
					logger.Error("Compensation failed, manual reconciliation required",
						slog.Bool("reconciliation_needed", true),
						slog.String("step", hechos[i].nombre),
						slog.String("failed_step", paso.nombre),
						slog.String("error", cerr.Error()),
					)
				}
			}
			return paso.nombre, err
		}
		hechos = append(hechos, paso)
	}
	return "", nil
}

// actualizarPrecioDesviado syncs the product's matching price field with the
// latest transaction price. Best effort: the ledger row and stock are
// already committed, so a failure here downgrades to a warning.
func (s *LedgerService) actualizarPrecioDesviado(ctx context.Context, logger *slog.Logger, fila *ports.FoundRow, colPrecio int, precio decimal.Decimal) {
	almacenado := decimal.NewFromFloat(sanitize.Number(celda(fila.Values, colPrecio), 0, math.Inf(1), 0))
	if precio.Equal(almacenado) {
		return
	}
	if err := s.store.UpdateCell(ctx, domain.HojaProductos.Nombre, fila.Row, colPrecio, precio.InexactFloat64()); err != nil {
		logger.Warn("Price drift update failed",
			slog.String("stored_price", almacenado.String()),
			slog.String("transaction_price", precio.String()),
			slog.String("error", err.Error()),
		)
	}
}

func celda(valores []any, columna int) any {
	if columna < len(valores) {
		return valores[columna]
	}
	return nil
}
