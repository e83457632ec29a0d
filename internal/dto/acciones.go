package dto

import "github.com/sheik32/Sistema-de-inventario-seguro/internal/validation"

// AccionGet carries the query parameters of a read action.
type AccionGet struct {
	Action    string `form:"action" binding:"required,max=50"`
	Query     string `form:"query"`
	SheetName string `form:"sheetName"`
}

// AccionPost is the body of a write action. Every payload field is untyped:
// the validation pipeline decides what each raw value is, so string-typed
// numbers and missing fields flow through sanitization instead of failing
// the bind.
type AccionPost struct {
	Action string `json:"action" binding:"required,max=50"`

	// agregarCategoria / agregarProducto
	Nombre       any `json:"nombre"`
	Codigo       any `json:"codigo"`
	Categoria    any `json:"categoria"`
	PrecioCompra any `json:"precio_compra"`
	PrecioVenta  any `json:"precio_venta"`
	Stock        any `json:"stock"`

	// registrarTransaccion
	ProductoID any `json:"producto_id"`
	Cantidad   any `json:"cantidad"`
	Precio     any `json:"precio"`
	Type       any `json:"type"`
	ExtraData  any `json:"extra_data"`
}

// ToProductoInput maps the raw body onto the product validation input.
func (r AccionPost) ToProductoInput() validation.ProductoInput {
	return validation.ProductoInput{
		Nombre:       r.Nombre,
		Codigo:       r.Codigo,
		Categoria:    r.Categoria,
		PrecioCompra: r.PrecioCompra,
		PrecioVenta:  r.PrecioVenta,
		Stock:        r.Stock,
	}
}

// ToTransaccionInput maps the raw body onto the transaction validation input.
func (r AccionPost) ToTransaccionInput() validation.TransaccionInput {
	return validation.TransaccionInput{
		ProductoID: r.ProductoID,
		Cantidad:   r.Cantidad,
		Precio:     r.Precio,
		Tipo:       r.Type,
		ExtraData:  r.ExtraData,
	}
}
