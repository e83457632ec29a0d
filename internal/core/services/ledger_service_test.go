package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/sheik32/Sistema-de-inventario-seguro/internal/adapters/memory"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/apperrors"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/core/domain"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/core/ports"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/core/services"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/platform/config"
)

var rangosTest = config.NumericRanges{
	PrecioMin: 0.01, PrecioMax: 999999.99,
	CantidadMin: 1, CantidadMax: 999999,
	StockMin: 0, StockMax: 999999,
}

// storeConFallos wraps the memory store and fails selected operations, to
// exercise the partial-failure paths of the protocol.
type storeConFallos struct {
	ports.TabularStore
	failAppend      bool
	failDelete      bool
	failUpdateFrom  int // fail UpdateCell calls numbered >= this (1-based); 0 disables
	updateCallCount int
}

func (s *storeConFallos) AppendRow(ctx context.Context, hoja string, valores []any) error {
	if s.failAppend {
		return assert.AnError
	}
	return s.TabularStore.AppendRow(ctx, hoja, valores)
}

func (s *storeConFallos) UpdateCell(ctx context.Context, hoja string, fila, columna int, valor any) error {
	s.updateCallCount++
	if s.failUpdateFrom > 0 && s.updateCallCount >= s.failUpdateFrom {
		return assert.AnError
	}
	return s.TabularStore.UpdateCell(ctx, hoja, fila, columna, valor)
}

func (s *storeConFallos) DeleteLastRow(ctx context.Context, hoja string) error {
	if s.failDelete {
		return assert.AnError
	}
	return s.TabularStore.DeleteLastRow(ctx, hoja)
}

type LedgerServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	store  *memory.Store
	faulty *storeConFallos
	svc    *services.LedgerService
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memory.NewStore(nil)
	s.faulty = &storeConFallos{TabularStore: s.store}
	s.svc = services.NewLedgerService(s.faulty, rangosTest, nil)

	for _, esquema := range domain.Esquemas() {
		s.Require().NoError(s.store.EnsureSheet(s.ctx, esquema))
	}
	s.Require().NoError(s.store.AppendRow(s.ctx, "Productos",
		[]any{"id-TRN01", "Tornillo", "TRN-01", "Ferreteria", 1.50, 2.00, 100, nil}))
}

func (s *LedgerServiceTestSuite) stock() int64 {
	fila, err := s.store.FindRowByID(s.ctx, "Productos", domain.ProductoColID, "id-TRN01")
	s.Require().NoError(err)
	switch v := fila.Values[domain.ProductoColStock].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		s.FailNowf("unexpected stock cell type", "%T", v)
		return 0
	}
}

func (s *LedgerServiceTestSuite) filasLibro(hoja string) []ports.Record {
	registros, err := s.store.ReadAll(s.ctx, hoja)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil
	}
	s.Require().NoError(err)
	return registros
}

func (s *LedgerServiceTestSuite) venta(cantidad int64, precio float64) domain.Transaccion {
	return domain.Transaccion{
		ProductoID: "id-TRN01",
		Cantidad:   cantidad,
		Precio:     decimal.NewFromFloat(precio),
		Tipo:       domain.Venta,
		ExtraData:  "Cliente X",
	}
}

func (s *LedgerServiceTestSuite) TestVentaDescuentaStock() {
	codigo, err := s.svc.RegistrarTransaccion(s.ctx, s.venta(30, 2.00))

	s.Require().NoError(err)
	s.Equal(domain.ResultadoOK, codigo)
	s.Equal(int64(70), s.stock())

	filas := s.filasLibro("Ventas")
	s.Require().Len(filas, 1)
	s.Equal("id-TRN01", filas[0]["producto_id"])
	s.Equal(float64(30), filas[0]["cantidad"])
	s.Equal("Cliente X", filas[0]["cliente"])
}

func (s *LedgerServiceTestSuite) TestCompraSumaStock() {
	txn := s.venta(50, 1.50)
	txn.Tipo = domain.Compra
	txn.ExtraData = "Proveedor Y"

	codigo, err := s.svc.RegistrarTransaccion(s.ctx, txn)

	s.Require().NoError(err)
	s.Equal(domain.ResultadoOK, codigo)
	s.Equal(int64(150), s.stock())
	s.Len(s.filasLibro("Compras"), 1)
	s.Empty(s.filasLibro("Ventas"))
}

func (s *LedgerServiceTestSuite) TestVentaStockInsuficiente() {
	codigo, err := s.svc.RegistrarTransaccion(s.ctx, s.venta(1000, 2.00))

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrInsufficientStock)
	s.Equal(domain.StockInsuficiente, codigo)
	// Authoritative rejection happens before any write.
	s.Equal(int64(100), s.stock())
	s.Empty(s.filasLibro("Ventas"))
}

func (s *LedgerServiceTestSuite) TestCompraExcedeLimiteDeStock() {
	txn := s.venta(999_950, 1.50)
	txn.Tipo = domain.Compra

	codigo, err := s.svc.RegistrarTransaccion(s.ctx, txn)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrStockLimit)
	s.Equal(domain.LimiteStockExcedido, codigo)
	s.Equal(int64(100), s.stock())
	s.Empty(s.filasLibro("Compras"))
}

func (s *LedgerServiceTestSuite) TestProductoNoEncontrado() {
	txn := s.venta(1, 2.00)
	txn.ProductoID = "id-NOEXISTE"

	codigo, err := s.svc.RegistrarTransaccion(s.ctx, txn)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.Equal(domain.ProductoNoEncontrado, codigo)
	s.Equal(int64(100), s.stock())
}

func (s *LedgerServiceTestSuite) TestFalloAlEscribirLibro() {
	s.faulty.failAppend = true

	codigo, err := s.svc.RegistrarTransaccion(s.ctx, s.venta(30, 2.00))

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrStoreWrite)
	s.Equal(domain.ErrorEscrituraLibro, codigo)
	s.Equal(int64(100), s.stock())
	s.Empty(s.filasLibro("Ventas"))
}

func (s *LedgerServiceTestSuite) TestFalloDeInventarioCompensaElLibro() {
	s.faulty.failUpdateFrom = 1

	codigo, err := s.svc.RegistrarTransaccion(s.ctx, s.venta(30, 2.00))

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrStoreWrite)
	s.Equal(domain.ErrorInventario, codigo)
	// The compensating delete removed the just-appended row.
	s.Empty(s.filasLibro("Ventas"))
	s.Equal(int64(100), s.stock())
}

func (s *LedgerServiceTestSuite) TestFalloDeCompensacionDejaFilaHuerfana() {
	s.faulty.failUpdateFrom = 1
	s.faulty.failDelete = true

	codigo, err := s.svc.RegistrarTransaccion(s.ctx, s.venta(30, 2.00))

	s.Require().Error(err)
	s.Equal(domain.ErrorInventario, codigo)
	// Compensation failure is swallowed: the orphan ledger row remains and
	// the stock is unchanged. Reconciliation is manual.
	s.Len(s.filasLibro("Ventas"), 1)
	s.Equal(int64(100), s.stock())
}

func (s *LedgerServiceTestSuite) TestPrecioDesviadoSeActualiza() {
	codigo, err := s.svc.RegistrarTransaccion(s.ctx, s.venta(10, 2.50))

	s.Require().NoError(err)
	s.Equal(domain.ResultadoOK, codigo)

	fila, err := s.store.FindRowByID(s.ctx, "Productos", domain.ProductoColID, "id-TRN01")
	s.Require().NoError(err)
	s.Equal(2.50, fila.Values[domain.ProductoColPrecioVenta])
}

func (s *LedgerServiceTestSuite) TestPrecioSinDesvioNoSeReescribe() {
	_, err := s.svc.RegistrarTransaccion(s.ctx, s.venta(10, 2.00))
	s.Require().NoError(err)
	// Only the stock cell was touched.
	s.Equal(1, s.faulty.updateCallCount)
}

func (s *LedgerServiceTestSuite) TestFalloDePrecioDesviadoNoRompeLaTransaccion() {
	// First update (stock) succeeds, second (price drift) fails.
	s.faulty.failUpdateFrom = 2

	codigo, err := s.svc.RegistrarTransaccion(s.ctx, s.venta(10, 2.50))

	s.Require().NoError(err)
	s.Equal(domain.ResultadoOK, codigo)
	s.Equal(int64(90), s.stock())
	s.Len(s.filasLibro("Ventas"), 1)
}

func (s *LedgerServiceTestSuite) TestStockIlegibleSeTrataComoCero() {
	s.Require().NoError(s.store.AppendRow(s.ctx, "Productos",
		[]any{"id-RARO", "Raro", "RR-01", "Ferreteria", 1.0, 2.0, "no-numerico", nil}))

	codigo, err := s.svc.RegistrarTransaccion(s.ctx, domain.Transaccion{
		ProductoID: "id-RARO", Cantidad: 1, Precio: decimal.NewFromFloat(2.0), Tipo: domain.Venta,
	})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrInsufficientStock)
	s.Equal(domain.StockInsuficiente, codigo)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
