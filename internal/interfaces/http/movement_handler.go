package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/estoquepro/estoque-api/internal/application/dto"
	"github.com/estoquepro/estoque-api/internal/application/stock"
	"github.com/estoquepro/estoque-api/internal/domain"
)

// MovementHandler trata o registro e a consulta de movimentos de estoque
// (protegido).
type MovementHandler struct {
	register  *stock.RegisterMovementUseCase
	query     *stock.StockUseCase
	validator *validator.Validate
}

// NewMovementHandler constrói o handler.
func NewMovementHandler(register *stock.RegisterMovementUseCase, query *stock.StockUseCase) *MovementHandler {
	return &MovementHandler{register: register, query: query, validator: validator.New()}
}

// RegisterEntry godoc
// @Summary      Registrar entrada de estoque
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterEntryRequest  true  "sku, quantity, nf, date, location"
// @Success      201   {object}  dto.EntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movements/entries [post]
func (h *MovementHandler) RegisterEntry(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.validator.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	resp, err := h.register.RegisterEntry(c.Context(), userID, in)
	if err != nil {
		return movementError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// RegisterExit godoc
// @Summary      Registrar saída de estoque
// @Description  Com nf_origem, a baixa exige saldo no lote referenciado. Sem nf_origem, exige saldo agregado do SKU; a distribuição por lote acontece por FIFO na leitura.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterExitRequest  true  "sku, quantity, nf_origem, date"
// @Success      201   {object}  dto.ExitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements/exits [post]
func (h *MovementHandler) RegisterExit(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterExitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.validator.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	resp, err := h.register.RegisterExit(c.Context(), userID, in)
	if err != nil {
		return movementError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListEntries godoc
// @Summary      Histórico de entradas
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        sku     query  string  false  "filtrar por SKU"
// @Param        limit   query  int     false  "tamanho da página"
// @Param        offset  query  int     false  "deslocamento"
// @Success      200  {object}  dto.EntryListResponse
// @Router       /api/movements/entries [get]
func (h *MovementHandler) ListEntries(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros inválidos"})
	}
	page.DefaultPage()
	resp, err := h.query.ListEntries(c.Context(), c.Query("sku"), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}

// ListExits godoc
// @Summary      Histórico de saídas
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        sku     query  string  false  "filtrar por SKU"
// @Param        limit   query  int     false  "tamanho da página"
// @Param        offset  query  int     false  "deslocamento"
// @Success      200  {object}  dto.ExitListResponse
// @Router       /api/movements/exits [get]
func (h *MovementHandler) ListExits(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros inválidos"})
	}
	page.DefaultPage()
	resp, err := h.query.ListExits(c.Context(), c.Query("sku"), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}

// DeleteEntry godoc
// @Summary      Excluir entrada
// @Tags         movements
// @Security     Bearer
// @Param        id  path  string  true  "ID da entrada"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/entries/{id} [delete]
func (h *MovementHandler) DeleteEntry(c *fiber.Ctx) error {
	if err := h.register.DeleteEntry(c.Context(), c.Params("id")); err != nil {
		return movementError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteExit godoc
// @Summary      Excluir saída
// @Tags         movements
// @Security     Bearer
// @Param        id  path  string  true  "ID da saída"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/exits/{id} [delete]
func (h *MovementHandler) DeleteExit(c *fiber.Ctx) error {
	if err := h.register.DeleteExit(c.Context(), c.Params("id")); err != nil {
		return movementError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// movementError mapeia erros de domínio dos movimentos para HTTP.
func movementError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso não encontrado"})
	case errors.Is(err, domain.ErrLotNotFound):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "LOT_NOT_FOUND", Message: "lote informado não existe para este SKU"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "estoque insuficiente"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
