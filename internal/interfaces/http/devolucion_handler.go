package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ncastellon/comercial-api/internal/application/billing"
	"github.com/ncastellon/comercial-api/internal/application/dto"
)

// DevolucionHandler maneja las peticiones HTTP de devoluciones (notas de crédito).
type DevolucionHandler struct {
	uc *billing.DevolucionUseCase
}

// NewDevolucionHandler construye el handler.
func NewDevolucionHandler(uc *billing.DevolucionUseCase) *DevolucionHandler {
	return &DevolucionHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar devolución
// @Description  Valida cada línea contra lo vendido menos lo ya devuelto y
// @Description  reingresa el stock en la misma transacción. Las devoluciones
// @Description  confirmadas son inmutables.
// @Tags         devoluciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DevolucionRequest  true  "venta_id, detalles"
// @Success      201   {object}  dto.DevolucionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/devoluciones [post]
func (h *DevolucionHandler) Create(c *fiber.Ctx) error {
	var in dto.DevolucionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.RegistrarDevolucion(c.Context(), GetUsuario(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID godoc
// @Summary      Obtener devolución
// @Tags         devoluciones
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la devolución"
// @Success      200  {object}  dto.DevolucionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/devoluciones/{id} [get]
func (h *DevolucionHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(resp)
}

// ListByVenta godoc
// @Summary      Listar devoluciones de una venta
// @Tags         devoluciones
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {array}  dto.DevolucionResponse
// @Router       /api/ventas/{id}/devoluciones [get]
func (h *DevolucionHandler) ListByVenta(c *fiber.Ctx) error {
	list, err := h.uc.ListarPorVenta(c.Context(), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"devoluciones": list})
}
