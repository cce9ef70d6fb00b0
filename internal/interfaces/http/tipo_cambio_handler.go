package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ncastellon/comercial-api/internal/application/billing"
	"github.com/ncastellon/comercial-api/internal/application/dto"
	"github.com/ncastellon/comercial-api/internal/domain/entity"
)

// TipoCambioHandler maneja las peticiones HTTP del tipo de cambio oficial.
type TipoCambioHandler struct {
	uc *billing.TipoCambioUseCase
}

// NewTipoCambioHandler construye el handler.
func NewTipoCambioHandler(uc *billing.TipoCambioUseCase) *TipoCambioHandler {
	return &TipoCambioHandler{uc: uc}
}

// Vigente godoc
// @Summary      Tipo de cambio vigente
// @Tags         tipo-cambio
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/tipo-cambio [get]
func (h *TipoCambioHandler) Vigente(c *fiber.Ctx) error {
	valor, err := h.uc.Vigente(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"valor": valor})
}

// Registrar godoc
// @Summary      Registrar tipo de cambio del día
// @Tags         tipo-cambio
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarTipoCambioRequest  true  "fecha (opcional, default hoy) y valor"
// @Success      201   {object}  dto.TipoCambioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tipo-cambio [post]
func (h *TipoCambioHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarTipoCambioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	fecha := time.Now()
	if in.Fecha != "" {
		t, err := time.Parse("2006-01-02", in.Fecha)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha: formato esperado YYYY-MM-DD"})
		}
		fecha = t
	}
	tc, err := h.uc.Registrar(c.Context(), fecha, in.Valor)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tipoCambioToResponse(tc))
}

// Historial godoc
// @Summary      Historial de tipos de cambio
// @Tags         tipo-cambio
// @Security     Bearer
// @Produce      json
// @Param        desde  query  string  true  "Fecha inicial (YYYY-MM-DD)"
// @Param        hasta  query  string  true  "Fecha final (YYYY-MM-DD)"
// @Success      200  {array}  dto.TipoCambioResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/tipo-cambio/historial [get]
func (h *TipoCambioHandler) Historial(c *fiber.Ctx) error {
	desde, err := time.Parse("2006-01-02", c.Query("desde"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "desde: formato esperado YYYY-MM-DD"})
	}
	hasta, err := time.Parse("2006-01-02", c.Query("hasta"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "hasta: formato esperado YYYY-MM-DD"})
	}
	registros, err := h.uc.Historial(c.Context(), desde, hasta)
	if err != nil {
		return responderError(c, err)
	}
	out := make([]dto.TipoCambioResponse, 0, len(registros))
	for _, tc := range registros {
		out = append(out, tipoCambioToResponse(tc))
	}
	return c.JSON(fiber.Map{"tipos_cambio": out})
}

func tipoCambioToResponse(tc *entity.TipoCambio) dto.TipoCambioResponse {
	return dto.TipoCambioResponse{
		ID:    tc.ID,
		Fecha: tc.Fecha.Format("2006-01-02"),
		Valor: tc.Valor,
	}
}
