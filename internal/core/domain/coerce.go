package domain

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sheik32/Sistema-de-inventario-seguro/internal/sanitize"
)

// MapRow coerces one row of raw cell values against the schema's declared
// column types and returns it keyed by header. The second return is true for
// rows whose cells all sanitize to empty (such rows are filtered out by
// readers). Cells that cannot be coerced fail the whole row; readers flag it
// instead of guessing a type.
func (e EsquemaHoja) MapRow(valores []any) (map[string]any, bool, error) {
	registro := make(map[string]any, len(e.Headers))
	vacia := true

	for i, header := range e.Headers {
		var celda any
		if i < len(valores) {
			celda = valores[i]
		}

		switch e.Tipos[i] {
		case ColTexto, ColCodigo:
			s := sanitize.Text(celda, 0)
			if s != "" {
				vacia = false
			}
			registro[header] = s

		case ColNumero:
			s := sanitize.Text(celda, 0)
			if s == "" {
				registro[header] = ""
				continue
			}
			vacia = false
			switch n := celda.(type) {
			case float64:
				registro[header] = n
			case int64:
				registro[header] = float64(n)
			case int:
				registro[header] = float64(n)
			default:
				f, err := strconv.ParseFloat(s, 64)
				if err != nil {
					return nil, false, fmt.Errorf("columna %q: valor no numérico %q", header, s)
				}
				registro[header] = f
			}

		case ColFecha:
			switch f := celda.(type) {
			case nil:
				registro[header] = ""
			case time.Time:
				vacia = false
				registro[header] = f
			default:
				s := sanitize.Text(celda, 0)
				if s == "" {
					registro[header] = ""
					continue
				}
				vacia = false
				t, err := time.Parse(time.RFC3339, s)
				if err != nil {
					return nil, false, fmt.Errorf("columna %q: valor no es una fecha: %q", header, s)
				}
				registro[header] = t
			}
		}
	}

	return registro, vacia, nil
}
