package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ncastellon/comercial-api/internal/application/dto"
	"github.com/ncastellon/comercial-api/internal/application/inventory"
	"github.com/ncastellon/comercial-api/internal/domain/entity"
	"github.com/ncastellon/comercial-api/internal/domain/repository"
)

// MovimientoHandler maneja las peticiones HTTP del libro de movimientos.
type MovimientoHandler struct {
	uc          *inventory.RegistrarMovimientoUseCase
	tipoMovRepo repository.TipoMovimientoRepository
}

// NewMovimientoHandler construye el handler.
func NewMovimientoHandler(uc *inventory.RegistrarMovimientoUseCase, tipoMovRepo repository.TipoMovimientoRepository) *MovimientoHandler {
	return &MovimientoHandler{uc: uc, tipoMovRepo: tipoMovRepo}
}

// Registrar godoc
// @Summary      Registrar movimiento de inventario
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarMovimientoRequest  true  "inventario_item_id, tipo_movimiento_id, cantidad, costo_unitario_dolar (entradas)"
// @Success      201   {object}  dto.MovimientoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movimientos [post]
func (h *MovimientoHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.uc.Registrar(c.Context(), inventory.MovimientoInput{
		InventarioItemID:   in.InventarioItemID,
		TipoMovimientoID:   in.TipoMovimientoID,
		Cantidad:           in.Cantidad,
		CostoUnitarioDolar: in.CostoUnitarioDolar,
		Observacion:        in.Observacion,
		Usuario:            GetUsuario(c),
	})
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(movimientoToResponse(mov))
}

// Revisar godoc
// @Summary      Revisar (editar) un movimiento
// @Description  Revierte el efecto original y aplica el nuevo en una sola
// @Description  operación. La validación de stock es contra el stock posterior
// @Description  a la reversión.
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del movimiento"
// @Param        body  body  dto.RevisarMovimientoRequest  true  "campos a cambiar"
// @Success      200   {object}  dto.MovimientoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movimientos/{id} [put]
func (h *MovimientoHandler) Revisar(c *fiber.Ctx) error {
	var in dto.RevisarMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.uc.Revisar(c.Context(), c.Params("id"), inventory.RevisionInput{
		Cantidad:           in.Cantidad,
		TipoMovimientoID:   in.TipoMovimientoID,
		CostoUnitarioDolar: in.CostoUnitarioDolar,
		Observacion:        in.Observacion,
	})
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(movimientoToResponse(mov))
}

// Revertir godoc
// @Summary      Revertir (eliminar) un movimiento
// @Description  Deshace el efecto sobre el stock y elimina el registro. Falla
// @Description  si el stock resultante quedaría negativo.
// @Tags         movimientos
// @Security     Bearer
// @Param        id  path  string  true  "ID del movimiento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/movimientos/{id} [delete]
func (h *MovimientoHandler) Revertir(c *fiber.Ctx) error {
	if err := h.uc.Revertir(c.Context(), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListarPorArticulo godoc
// @Summary      Listar movimientos de un artículo
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del artículo"
// @Param        desde   query  string  false  "Fecha inicial (YYYY-MM-DD)"
// @Param        hasta   query  string  false  "Fecha final (YYYY-MM-DD)"
// @Param        limit   query  int     false  "Máximo de resultados (default 20)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {array}  dto.MovimientoResponse
// @Router       /api/articulos/{id}/movimientos [get]
func (h *MovimientoHandler) ListarPorArticulo(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()

	var desde, hasta *time.Time
	if s := c.Query("desde"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "desde: formato esperado YYYY-MM-DD"})
		}
		desde = &t
	}
	if s := c.Query("hasta"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "hasta: formato esperado YYYY-MM-DD"})
		}
		hasta = &t
	}

	movs, err := h.uc.ListarPorItem(c.Context(), c.Params("id"), desde, hasta, page.Limit, page.Offset)
	if err != nil {
		return responderError(c, err)
	}
	out := make([]dto.MovimientoResponse, 0, len(movs))
	for _, mov := range movs {
		out = append(out, movimientoToResponse(mov))
	}
	return c.JSON(fiber.Map{"movimientos": out, "page": dto.PageResponse{Limit: page.Limit, Offset: page.Offset}})
}

// ListarTipos godoc
// @Summary      Listar tipos de movimiento
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.TipoMovimiento
// @Router       /api/tipos-movimiento [get]
func (h *MovimientoHandler) ListarTipos(c *fiber.Ctx) error {
	tipos, err := h.tipoMovRepo.List(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"tipos": tipos})
}

func movimientoToResponse(mov *entity.Movimiento) dto.MovimientoResponse {
	return dto.MovimientoResponse{
		ID:                   mov.ID,
		InventarioItemID:     mov.InventarioItemID,
		TipoMovimientoID:     mov.TipoMovimientoID,
		ReferenciaID:         mov.ReferenciaID,
		Cantidad:             mov.Cantidad,
		Observacion:          mov.Observacion,
		Usuario:              mov.Usuario,
		TipoCambio:           mov.TipoCambioValor,
		CostoUnitarioDolar:   mov.CostoUnitarioDolar,
		CostoUnitarioCordoba: mov.CostoUnitarioCordoba,
		Fecha:                mov.CreatedAt.Format("2006-01-02"),
	}
}
