// Command cliente is a terminal client for the inventory server. It shares
// the server's validation pipeline, so bad input is rejected locally before
// any request is made.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/sheik32/Sistema-de-inventario-seguro/internal/apperrors"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/client"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/dto"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/platform/config"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/validation"
)

var (
	verde    = color.New(color.FgGreen)
	amarillo = color.New(color.FgYellow)
	rojo     = color.New(color.FgRed)
)

func main() {
	servidor := flag.String("server", "http://localhost:8080", "URL base del servidor")
	flag.Usage = uso
	flag.Parse()

	if flag.NArg() == 0 {
		uso()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		rojo.Fprintln(os.Stderr, "Error de configuración:", err)
		os.Exit(1)
	}

	api := client.New(*servidor, cfg, client.NewDefaultLimiter(cfg))
	ctx := context.Background()

	comando := flag.Arg(0)
	args := flag.Args()[1:]

	resp, err := ejecutar(ctx, api, comando, args)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			rojo.Fprintln(os.Stderr, "Entrada inválida:", err)
		case errors.Is(err, apperrors.ErrRateLimited):
			amarillo.Fprintln(os.Stderr, "Demasiadas solicitudes. Intente nuevamente en un momento.")
		case errors.Is(err, apperrors.ErrTimeout):
			rojo.Fprintln(os.Stderr, "Tiempo de espera agotado. Intente nuevamente.")
		default:
			rojo.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}

	imprimir(resp)
	if resp.Status == dto.EstadoError {
		os.Exit(1)
	}
}

func ejecutar(ctx context.Context, api *client.APIClient, comando string, args []string) (*dto.Respuesta, error) {
	switch comando {
	case "iniciar":
		return api.Iniciar(ctx)
	case "resetear":
		return api.Resetear(ctx)
	case "categorias":
		return api.GetCategorias(ctx)
	case "inventario":
		return api.GetInventario(ctx)
	case "resumen":
		return api.GetResumenDiario(ctx)
	case "buscar":
		return api.BuscarProducto(ctx, strings.Join(args, " "))
	case "agregar-categoria":
		return api.AgregarCategoria(ctx, strings.Join(args, " "))
	case "agregar-producto":
		return agregarProducto(ctx, api, args)
	case "compra":
		return transaccion(ctx, api, "compra", args)
	case "venta":
		return transaccion(ctx, api, "venta", args)
	default:
		return nil, fmt.Errorf("comando desconocido %q: %w", comando, apperrors.ErrValidation)
	}
}

func agregarProducto(ctx context.Context, api *client.APIClient, args []string) (*dto.Respuesta, error) {
	fs := flag.NewFlagSet("agregar-producto", flag.ExitOnError)
	nombre := fs.String("nombre", "", "nombre del producto")
	codigo := fs.String("codigo", "", "código del producto")
	categoria := fs.String("categoria", "", "categoría")
	precioCompra := fs.Float64("precio-compra", 0, "precio de compra")
	precioVenta := fs.Float64("precio-venta", 0, "precio de venta")
	stock := fs.Int("stock", 0, "stock inicial")
	_ = fs.Parse(args)

	return api.AgregarProducto(ctx, validation.ProductoInput{
		Nombre:       *nombre,
		Codigo:       *codigo,
		Categoria:    *categoria,
		PrecioCompra: *precioCompra,
		PrecioVenta:  *precioVenta,
		Stock:        *stock,
	})
}

func transaccion(ctx context.Context, api *client.APIClient, tipo string, args []string) (*dto.Respuesta, error) {
	fs := flag.NewFlagSet(tipo, flag.ExitOnError)
	producto := fs.String("producto", "", "id del producto")
	cantidad := fs.Int("cantidad", 0, "cantidad")
	precio := fs.Float64("precio", 0, "precio unitario")
	extra := fs.String("extra", "", "proveedor o cliente")
	_ = fs.Parse(args)

	return api.RegistrarTransaccion(ctx, validation.TransaccionInput{
		ProductoID: *producto,
		Cantidad:   *cantidad,
		Precio:     *precio,
		Tipo:       tipo,
		ExtraData:  *extra,
	})
}

func imprimir(resp *dto.Respuesta) {
	switch resp.Status {
	case dto.EstadoExito:
		if resp.Message != "" {
			verde.Println(resp.Message)
		}
	case dto.EstadoAdvertencia:
		amarillo.Println(resp.Message)
	default:
		rojo.Println(resp.Message)
	}

	if resp.Data == nil {
		return
	}
	salida, err := json.MarshalIndent(resp.Data, "", "  ")
	if err != nil {
		rojo.Fprintln(os.Stderr, "Error al formatear la respuesta:", err)
		return
	}
	fmt.Println(string(salida))
}

func uso() {
	fmt.Fprintf(os.Stderr, `Uso: cliente [-server URL] <comando> [argumentos]

Comandos:
  iniciar                        inicializa la base de datos
  resetear                       resetea la base de datos
  categorias                     lista las categorías
  inventario                     lista los productos
  resumen                        muestra el resumen diario
  buscar <texto>                 busca productos por id, código o nombre
  agregar-categoria <nombre>     crea una categoría
  agregar-producto [-flags]      crea un producto
  compra|venta [-flags]          registra una transacción

Flags de agregar-producto: -nombre -codigo -categoria -precio-compra -precio-venta -stock
Flags de compra/venta:     -producto -cantidad -precio -extra
`)
}
