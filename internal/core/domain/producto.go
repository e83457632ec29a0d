package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto is an inventory item. Stock never goes below zero; PrecioCompra
// and PrecioVenta track the price of the latest purchase/sale transaction
// and are not editable directly after creation.
type Producto struct {
	ID           string          `json:"id"`
	Nombre       string          `json:"nombre"`
	Codigo       string          `json:"codigo"`
	Categoria    string          `json:"categoria"`
	PrecioCompra decimal.Decimal `json:"precio_compra"`
	PrecioVenta  decimal.Decimal `json:"precio_venta"`
	Stock        int64           `json:"stock"`
	FechaCreado  time.Time       `json:"fecha_creado"`
}

// Column positions in the Productos sheet (0-based, matching the header row).
const (
	ProductoColID           = 0
	ProductoColNombre       = 1
	ProductoColCodigo       = 2
	ProductoColCategoria    = 3
	ProductoColPrecioCompra = 4
	ProductoColPrecioVenta  = 5
	ProductoColStock        = 6
	ProductoColFechaCreado  = 7
)
