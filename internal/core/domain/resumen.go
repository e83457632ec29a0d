package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ResumenDiario is a derived, read-only daily aggregate. It is precomputed
// inside the store; this service only reads it back.
type ResumenDiario struct {
	Fecha             time.Time       `json:"fecha"`
	TotalVentas       decimal.Decimal `json:"total_ventas"`
	TotalCompras      decimal.Decimal `json:"total_compras"`
	Ganancia          decimal.Decimal `json:"ganancia"`
	ProductosVendidos int64           `json:"productos_vendidos"`
}
