package domain

// TipoColumna declares how a sheet column must be read back. Cell values are
// coerced against the declared type instead of sniffed, so an alphanumeric
// product code that happens to look numeric is never mangled.
type TipoColumna int

const (
	ColTexto TipoColumna = iota
	ColCodigo
	ColNumero
	ColFecha
)

// EsquemaHoja describes one sheet of the tabular store: its name, header row
// and the declared type per column. IDColumna is the 0-based column holding
// the row id used by exact-id lookups.
type EsquemaHoja struct {
	Nombre    string
	Headers   []string
	Tipos     []TipoColumna
	IDColumna int
}

var (
	HojaCategorias = EsquemaHoja{
		Nombre:  "Categorias",
		Headers: []string{"id", "nombre"},
		Tipos:   []TipoColumna{ColTexto, ColTexto},
	}

	HojaProductos = EsquemaHoja{
		Nombre:  "Productos",
		Headers: []string{"id", "nombre", "código", "categoría", "precio_compra", "precio_venta", "stock", "fecha_creado"},
		Tipos:   []TipoColumna{ColTexto, ColTexto, ColCodigo, ColTexto, ColNumero, ColNumero, ColNumero, ColFecha},
	}

	HojaCompras = EsquemaHoja{
		Nombre:  "Compras",
		Headers: []string{"id", "producto_id", "cantidad", "precio_compra", "fecha", "proveedor"},
		Tipos:   []TipoColumna{ColTexto, ColTexto, ColNumero, ColNumero, ColFecha, ColTexto},
	}

	HojaVentas = EsquemaHoja{
		Nombre:  "Ventas",
		Headers: []string{"id", "producto_id", "cantidad", "precio_venta", "fecha", "cliente"},
		Tipos:   []TipoColumna{ColTexto, ColTexto, ColNumero, ColNumero, ColFecha, ColTexto},
	}

	HojaResumen = EsquemaHoja{
		Nombre:  "resumen_diario",
		Headers: []string{"fecha", "total_ventas", "total_compras", "ganancia", "productos_vendidos"},
		Tipos:   []TipoColumna{ColFecha, ColNumero, ColNumero, ColNumero, ColNumero},
	}
)

// Esquemas lists every sheet the datastore is initialized with.
func Esquemas() []EsquemaHoja {
	return []EsquemaHoja{HojaCategorias, HojaProductos, HojaCompras, HojaVentas, HojaResumen}
}

// EsquemaPorNombre resolves a sheet schema by name. The second return is
// false for unknown sheets.
func EsquemaPorNombre(nombre string) (EsquemaHoja, bool) {
	for _, e := range Esquemas() {
		if e.Nombre == nombre {
			return e, true
		}
	}
	return EsquemaHoja{}, false
}
