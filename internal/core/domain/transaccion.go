package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TipoTransaccion distinguishes purchases from sales.
type TipoTransaccion string

const (
	Compra TipoTransaccion = "compra"
	Venta  TipoTransaccion = "venta"
)

// Transaccion is an append-only ledger entry against a product. Once
// appended it is never mutated; a compensating delete may remove it when a
// dependent stock update fails.
type Transaccion struct {
	ID         string          `json:"id"`
	ProductoID string          `json:"producto_id"`
	Cantidad   int64           `json:"cantidad"`
	Precio     decimal.Decimal `json:"precio"`
	Fecha      time.Time       `json:"fecha"`
	ExtraData  string          `json:"extra_data"`
	Tipo       TipoTransaccion `json:"type"`
}

// CodigoResultado identifies the terminal state of the transaction protocol.
type CodigoResultado string

const (
	ResultadoOK          CodigoResultado = "SUCCESS"
	ProductoNoEncontrado CodigoResultado = "PRODUCT_NOT_FOUND"
	StockInsuficiente    CodigoResultado = "INSUFFICIENT_STOCK"
	LimiteStockExcedido  CodigoResultado = "STOCK_LIMIT_EXCEEDED"
	ErrorEscrituraLibro  CodigoResultado = "LEDGER_WRITE_FAILED"
	ErrorInventario      CodigoResultado = "INVENTORY_UPDATE_FAILED"
)
