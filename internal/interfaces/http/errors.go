package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ncastellon/comercial-api/internal/application/dto"
	"github.com/ncastellon/comercial-api/internal/domain"
)

// responderError traduce los errores de dominio a respuestas HTTP. Los
// conflictos de concurrencia (ErrConflicto) devuelven 409 para que el cliente
// reintente la operación.
func responderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrArticuloDesconocido):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ARTICULO_DESCONOCIDO", Message: "artículo no encontrado"})
	case errors.Is(err, domain.ErrVentaDesconocida):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "VENTA_DESCONOCIDA", Message: "venta no encontrada"})
	case errors.Is(err, domain.ErrTipoMovDesconocido):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "TIPO_MOVIMIENTO_DESCONOCIDO", Message: "tipo de movimiento no encontrado"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el recurso ya existe"})
	case errors.Is(err, domain.ErrStockInsuficiente):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STOCK_INSUFICIENTE", Message: "stock insuficiente"})
	case errors.Is(err, domain.ErrDevolucionExcede):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DEVOLUCION_EXCEDE", Message: "la devolución excede lo vendido"})
	case errors.Is(err, domain.ErrRangoSolapado):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "RANGO_SOLAPADO", Message: "el número inicial se solapa con números ya consumidos"})
	case errors.Is(err, domain.ErrConflicto):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICTO", Message: "conflicto de concurrencia, reintente la operación"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autorizado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
