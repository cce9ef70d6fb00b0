package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ncastellon/comercial-api/internal/application/billing"
	"github.com/ncastellon/comercial-api/internal/application/dto"
)

// VentaHandler maneja las peticiones HTTP de facturación.
type VentaHandler struct {
	uc *billing.CrearVentaUseCase
}

// NewVentaHandler construye el handler.
func NewVentaHandler(uc *billing.CrearVentaUseCase) *VentaHandler {
	return &VentaHandler{uc: uc}
}

// Create godoc
// @Summary      Crear venta (factura)
// @Description  Descuenta inventario línea por línea, congela el tipo de
// @Description  cambio y asigna el rango de números consecutivos en una sola
// @Description  transacción. numero_inicial permite saltar el contador hacia
// @Description  adelante (nunca hacia atrás).
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearVentaRequest  true  "cliente_id, moneda, tipo_pago, detalles"
// @Success      201   {object}  dto.VentaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ventas [post]
func (h *VentaHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.CrearVenta(c.Context(), GetUsuario(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID godoc
// @Summary      Obtener venta con detalle
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {object}  dto.VentaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id} [get]
func (h *VentaHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetVenta(c.Context(), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(resp)
}

// UltimoNumero godoc
// @Summary      Último número de factura consumido
// @Description  Lectura informativa del contador, sin bloqueo. Útil para
// @Description  decidir un numero_inicial manual.
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]int64
// @Router       /api/ventas/consecutivo [get]
func (h *VentaHandler) UltimoNumero(c *fiber.Ctx) error {
	ultimo, err := h.uc.UltimoNumero(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"ultimo_numero": ultimo})
}

// List godoc
// @Summary      Listar ventas
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Máximo de resultados (default 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {array}  dto.VentaResponse
// @Router       /api/ventas [get]
func (h *VentaHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	list, err := h.uc.Listar(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"ventas": list, "page": dto.PageResponse{Limit: page.Limit, Offset: page.Offset}})
}
