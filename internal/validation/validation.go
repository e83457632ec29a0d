// Package validation accepts or rejects sanitized input against the business
// rules, producing normalized domain records or a list of field errors. The
// same pipeline runs on both the serving side and the calling side; the
// server remains authoritative.
package validation

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/sheik32/Sistema-de-inventario-seguro/internal/core/domain"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/platform/config"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/sanitize"
)

// ProductoInput carries the raw, untrusted fields of a product creation
// request. Numeric fields are `any` so string-typed numbers survive until
// sanitization decides what they are.
type ProductoInput struct {
	Nombre       any
	Codigo       any
	Categoria    any
	PrecioCompra any
	PrecioVenta  any
	Stock        any
}

// TransaccionInput carries the raw fields of a transaction request.
type TransaccionInput struct {
	ProductoID any
	Cantidad   any
	Precio     any
	Tipo       any
	ExtraData  any
}

// Validador validates raw records against the configured limits and ranges.
type Validador struct {
	limites  config.FieldLimits
	rangos   config.NumericRanges
	validate *validator.Validate
}

// New builds a Validador. The category name limit applies to both the
// category entity and the product's category field.
func New(limites config.FieldLimits, rangos config.NumericRanges) *Validador {
	v := validator.New()
	// Letters, digits, hyphen and underscore only.
	_ = v.RegisterValidation("codigo_producto", func(fl validator.FieldLevel) bool {
		for _, r := range fl.Field().String() {
			switch {
			case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			default:
				return false
			}
		}
		return true
	})
	return &Validador{limites: limites, rangos: rangos, validate: v}
}

// Categoria validates a category creation request.
func (v *Validador) Categoria(nombre any) (*domain.Categoria, []string) {
	limpio := sanitize.Text(nombre, v.limites.Categoria)
	if limpio == "" {
		return nil, []string{"El nombre de la categoría es requerido"}
	}
	return &domain.Categoria{Nombre: limpio}, nil
}

// Producto validates a product creation request. On success every numeric
// field is clamped into range and stock is floored to an integer; the input
// is never returned, only a fresh normalized record.
func (v *Validador) Producto(raw ProductoInput) (*domain.Producto, []string) {
	var errores []string

	nombre := sanitize.Text(raw.Nombre, v.limites.Nombre)
	if nombre == "" {
		errores = append(errores, "El nombre es requerido")
	}

	codigo := sanitize.Text(raw.Codigo, v.limites.Codigo)
	if codigo == "" {
		errores = append(errores, "El código no puede estar vacío")
	} else if err := v.validate.Var(codigo, "codigo_producto"); err != nil {
		errores = append(errores, "El código solo puede contener letras, números, guiones y guiones bajos")
	}

	categoria := sanitize.Text(raw.Categoria, v.limites.Categoria)
	if categoria == "" {
		errores = append(errores, "La categoría es requerida")
	}

	// Clamping suppresses out-of-range values; only a missing or unparseable
	// price falls back to the zero default and trips the minimum check.
	precioCompra := sanitize.Number(raw.PrecioCompra, v.rangos.PrecioMin, v.rangos.PrecioMax, 0)
	if precioCompra < v.rangos.PrecioMin {
		errores = append(errores, fmt.Sprintf("El precio de compra debe ser al menos %g", v.rangos.PrecioMin))
	}

	precioVenta := sanitize.Number(raw.PrecioVenta, v.rangos.PrecioMin, v.rangos.PrecioMax, 0)
	if precioVenta < v.rangos.PrecioMin {
		errores = append(errores, fmt.Sprintf("El precio de venta debe ser al menos %g", v.rangos.PrecioMin))
	}

	stock := math.Floor(sanitize.Number(raw.Stock, float64(v.rangos.StockMin), float64(v.rangos.StockMax), 0))
	if stock < 0 {
		// Unreachable given the clamp floor, kept as defense in depth.
		errores = append(errores, "El stock no puede ser negativo")
	}

	if len(errores) > 0 {
		return nil, errores
	}

	return &domain.Producto{
		Nombre:       nombre,
		Codigo:       codigo,
		Categoria:    categoria,
		PrecioCompra: decimal.NewFromFloat(precioCompra),
		PrecioVenta:  decimal.NewFromFloat(precioVenta),
		Stock:        int64(stock),
	}, nil
}

// Transaccion validates a purchase/sale request. The extra-data limit is
// selected by the transaction type: supplier for purchases, customer for
// sales.
func (v *Validador) Transaccion(raw TransaccionInput) (*domain.Transaccion, []string) {
	var errores []string

	productoID := sanitize.Text(raw.ProductoID, 100)
	if productoID == "" {
		errores = append(errores, "El ID del producto es requerido")
	}

	cantidad := sanitize.Number(raw.Cantidad, float64(v.rangos.CantidadMin), float64(v.rangos.CantidadMax), 0)
	if cantidad < float64(v.rangos.CantidadMin) {
		errores = append(errores, fmt.Sprintf("La cantidad debe ser al menos %d", v.rangos.CantidadMin))
	}

	precio := sanitize.Number(raw.Precio, v.rangos.PrecioMin, v.rangos.PrecioMax, 0)
	if precio < v.rangos.PrecioMin {
		errores = append(errores, fmt.Sprintf("El precio debe ser al menos %g", v.rangos.PrecioMin))
	}

	tipo := strings.ToLower(sanitize.Text(raw.Tipo, 20))
	if tipo != string(domain.Compra) && tipo != string(domain.Venta) {
		errores = append(errores, "Tipo de transacción inválido")
	}

	maxExtra := v.limites.Cliente
	if tipo == string(domain.Compra) {
		maxExtra = v.limites.Proveedor
	}
	extraData := sanitize.Text(raw.ExtraData, maxExtra)

	if len(errores) > 0 {
		return nil, errores
	}

	return &domain.Transaccion{
		ProductoID: productoID,
		Cantidad:   int64(math.Floor(cantidad)),
		Precio:     decimal.NewFromFloat(precio),
		Tipo:       domain.TipoTransaccion(tipo),
		ExtraData:  extraData,
	}, nil
}
