package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ncastellon/comercial-api/internal/application/billing"
	"github.com/ncastellon/comercial-api/internal/application/inventory"
	"github.com/ncastellon/comercial-api/internal/application/usecase"
	"github.com/ncastellon/comercial-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ArticuloUC   *usecase.ArticuloUseCase
	MovimientoUC *inventory.RegistrarMovimientoUseCase
	TipoMovRepo  repository.TipoMovimientoRepository
	ClienteUC    *billing.ClienteUseCase
	CrearVentaUC *billing.CrearVentaUseCase
	DevolucionUC *billing.DevolucionUseCase
	TipoCambioUC *billing.TipoCambioUseCase
	JWTSecret    string
}

// Router registra las rutas de la API. Todas las rutas del negocio requieren
// Bearer Token; el usuario del token queda como autor de lo que crea.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Artículos y su historial de movimientos
	articulos := api.Group("/articulos")
	articuloHandler := NewArticuloHandler(deps.ArticuloUC)
	movimientoHandler := NewMovimientoHandler(deps.MovimientoUC, deps.TipoMovRepo)
	articulos.Post("/", articuloHandler.Create)
	articulos.Get("/", articuloHandler.List)
	articulos.Get("/:id", articuloHandler.GetByID)
	articulos.Get("/:id/movimientos", movimientoHandler.ListarPorArticulo)

	// Libro de movimientos
	movimientos := api.Group("/movimientos")
	movimientos.Post("/", movimientoHandler.Registrar)
	movimientos.Put("/:id", movimientoHandler.Revisar)
	movimientos.Delete("/:id", movimientoHandler.Revertir)
	api.Get("/tipos-movimiento", movimientoHandler.ListarTipos)

	// Clientes
	clientes := api.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)

	// Ventas y sus devoluciones
	ventas := api.Group("/ventas")
	ventaHandler := NewVentaHandler(deps.CrearVentaUC)
	devolucionHandler := NewDevolucionHandler(deps.DevolucionUC)
	ventas.Post("/", ventaHandler.Create)
	ventas.Get("/", ventaHandler.List)
	// Antes de /:id para que "consecutivo" no se capture como ID.
	ventas.Get("/consecutivo", ventaHandler.UltimoNumero)
	ventas.Get("/:id", ventaHandler.GetByID)
	ventas.Get("/:id/devoluciones", devolucionHandler.ListByVenta)

	// Devoluciones (notas de crédito)
	devoluciones := api.Group("/devoluciones")
	devoluciones.Post("/", devolucionHandler.Create)
	devoluciones.Get("/:id", devolucionHandler.GetByID)

	// Tipo de cambio oficial
	tipoCambio := api.Group("/tipo-cambio")
	tipoCambioHandler := NewTipoCambioHandler(deps.TipoCambioUC)
	tipoCambio.Get("/", tipoCambioHandler.Vigente)
	tipoCambio.Post("/", tipoCambioHandler.Registrar)
	tipoCambio.Get("/historial", tipoCambioHandler.Historial)
}
