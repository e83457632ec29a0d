package validation_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheik32/Sistema-de-inventario-seguro/internal/core/domain"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/platform/config"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/validation"
)

func newValidador() *validation.Validador {
	return validation.New(
		config.FieldLimits{Nombre: 200, Codigo: 50, Categoria: 100, Proveedor: 100, Cliente: 100},
		config.NumericRanges{PrecioMin: 0.01, PrecioMax: 999999.99, CantidadMin: 1, CantidadMax: 999999, StockMin: 0, StockMax: 999999},
	)
}

func TestCategoria(t *testing.T) {
	v := newValidador()

	t.Run("valid name", func(t *testing.T) {
		cat, errs := v.Categoria("  Ferreteria  ")
		require.Empty(t, errs)
		assert.Equal(t, "Ferreteria", cat.Nombre)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		cat, errs := v.Categoria("   ")
		assert.Nil(t, cat)
		assert.Equal(t, []string{"El nombre de la categoría es requerido"}, errs)
	})

	t.Run("name truncated to limit", func(t *testing.T) {
		cat, errs := v.Categoria(strings.Repeat("x", 300))
		require.Empty(t, errs)
		assert.Len(t, cat.Nombre, 100)
	})
}

func TestProducto(t *testing.T) {
	v := newValidador()

	valido := validation.ProductoInput{
		Nombre:       "Tornillo",
		Codigo:       "TRN-01",
		Categoria:    "Ferreteria",
		PrecioCompra: 1.50,
		PrecioVenta:  2.00,
		Stock:        100,
	}

	t.Run("valid product normalized", func(t *testing.T) {
		p, errs := v.Producto(valido)
		require.Empty(t, errs)
		assert.Equal(t, "Tornillo", p.Nombre)
		assert.Equal(t, "TRN-01", p.Codigo)
		assert.True(t, p.PrecioCompra.Equal(decimal.NewFromFloat(1.50)))
		assert.True(t, p.PrecioVenta.Equal(decimal.NewFromFloat(2.00)))
		assert.Equal(t, int64(100), p.Stock)
	})

	t.Run("invariants hold for every accepted product", func(t *testing.T) {
		inputs := []validation.ProductoInput{
			valido,
			{Nombre: "A", Codigo: "a_b-C9", Categoria: "c", PrecioCompra: "0.005", PrecioVenta: 5000000, Stock: "99.9"},
			{Nombre: "B", Codigo: "X", Categoria: "c", PrecioCompra: 0.01, PrecioVenta: 0.01, Stock: nil},
		}
		min := decimal.NewFromFloat(0.01)
		for _, in := range inputs {
			p, errs := v.Producto(in)
			if p == nil {
				continue
			}
			require.Empty(t, errs)
			assert.GreaterOrEqual(t, p.Stock, int64(0))
			assert.True(t, p.PrecioCompra.GreaterThanOrEqual(min))
			assert.True(t, p.PrecioVenta.GreaterThanOrEqual(min))
			for _, r := range p.Codigo {
				assert.Contains(t, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_", string(r))
			}
		}
	})

	t.Run("empty and malformed codes are distinct errors", func(t *testing.T) {
		in := valido
		in.Codigo = "   "
		_, errs := v.Producto(in)
		assert.Contains(t, errs, "El código no puede estar vacío")

		in.Codigo = "TRN 01!"
		_, errs = v.Producto(in)
		assert.Contains(t, errs, "El código solo puede contener letras, números, guiones y guiones bajos")
	})

	t.Run("missing price errors, out-of-range price clamps silently", func(t *testing.T) {
		in := valido
		in.PrecioCompra = nil
		_, errs := v.Producto(in)
		assert.Contains(t, errs, "El precio de compra debe ser al menos 0.01")

		in.PrecioCompra = -4.0
		p, errs := v.Producto(in)
		require.Empty(t, errs)
		assert.True(t, p.PrecioCompra.Equal(decimal.NewFromFloat(0.01)))
	})

	t.Run("stock defaults to zero and floors fractions", func(t *testing.T) {
		in := valido
		in.Stock = "12.9"
		p, errs := v.Producto(in)
		require.Empty(t, errs)
		assert.Equal(t, int64(12), p.Stock)
	})

	t.Run("accumulates all field errors", func(t *testing.T) {
		p, errs := v.Producto(validation.ProductoInput{})
		assert.Nil(t, p)
		assert.GreaterOrEqual(t, len(errs), 4)
	})
}

func TestTransaccion(t *testing.T) {
	v := newValidador()

	valida := validation.TransaccionInput{
		ProductoID: "id-ABC123",
		Cantidad:   30,
		Precio:     2.00,
		Tipo:       "venta",
		ExtraData:  "Cliente X",
	}

	t.Run("valid sale normalized", func(t *testing.T) {
		txn, errs := v.Transaccion(valida)
		require.Empty(t, errs)
		assert.Equal(t, domain.Venta, txn.Tipo)
		assert.Equal(t, int64(30), txn.Cantidad)
		assert.Equal(t, "Cliente X", txn.ExtraData)
	})

	t.Run("type is case-insensitive and normalized to lowercase", func(t *testing.T) {
		in := valida
		in.Tipo = "COMPRA"
		txn, errs := v.Transaccion(in)
		require.Empty(t, errs)
		assert.Equal(t, domain.Compra, txn.Tipo)
	})

	t.Run("unknown type rejected", func(t *testing.T) {
		in := valida
		in.Tipo = "prestamo"
		txn, errs := v.Transaccion(in)
		assert.Nil(t, txn)
		assert.Contains(t, errs, "Tipo de transacción inválido")
	})

	t.Run("missing product id rejected", func(t *testing.T) {
		in := valida
		in.ProductoID = "  "
		_, errs := v.Transaccion(in)
		assert.Contains(t, errs, "El ID del producto es requerido")
	})

	t.Run("quantity below minimum rejected, fractional floored", func(t *testing.T) {
		in := valida
		in.Cantidad = 0
		_, errs := v.Transaccion(in)
		assert.Contains(t, errs, "La cantidad debe ser al menos 1")

		in.Cantidad = "3.7"
		txn, errs := v.Transaccion(in)
		require.Empty(t, errs)
		assert.Equal(t, int64(3), txn.Cantidad)
	})

	t.Run("extra data truncated by type-selected limit", func(t *testing.T) {
		in := valida
		in.ExtraData = strings.Repeat("c", 150)
		txn, errs := v.Transaccion(in)
		require.Empty(t, errs)
		assert.Len(t, txn.ExtraData, 100)
	})
}
