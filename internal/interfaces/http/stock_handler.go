package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/estoquepro/estoque-api/internal/application/dto"
	"github.com/estoquepro/estoque-api/internal/application/stock"
	"github.com/estoquepro/estoque-api/internal/domain"
)

// StockHandler expõe as consultas de estoque reconciliado (protegido).
// Cada requisição recalcula do log completo; não há cache entre chamadas.
type StockHandler struct {
	uc *stock.StockUseCase
}

// NewStockHandler constrói o handler.
func NewStockHandler(uc *stock.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List godoc
// @Summary      Snapshot de estoque por produto
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "tamanho da página"
// @Param        offset  query  int  false  "deslocamento"
// @Success      200  {object}  dto.StockListResponse
// @Router       /api/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros inválidos"})
	}
	page.DefaultPage()
	resp, err := h.uc.ListStock(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}

// GetBySKU godoc
// @Summary      Saldo atual e status de um SKU
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        sku  path  string  true  "SKU"
// @Success      200  {object}  dto.StockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{sku} [get]
func (h *StockHandler) GetBySKU(c *fiber.Ctx) error {
	resp, err := h.uc.GetStock(c.Context(), c.Params("sku"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}

// GetLots godoc
// @Summary      Lotes com saldo positivo de um SKU
// @Description  Lotes reconciliados do mais antigo ao mais novo, com as saídas sem NF distribuídas por FIFO. Anomalias absorvidas aparecem em diagnostics.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        sku  path  string  true  "SKU"
// @Success      200  {object}  dto.LotListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{sku}/lots [get]
func (h *StockHandler) GetLots(c *fiber.Ctx) error {
	resp, err := h.uc.GetLots(c.Context(), c.Params("sku"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}
