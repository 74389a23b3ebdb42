package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterEntryRequest body para POST /api/movements/entries.
// Quantity aceita decimal na borda (planilhas importadas trazem fração) e é
// truncada para inteiro antes de chegar ao domínio.
type RegisterEntryRequest struct {
	SKU      string          `json:"sku" validate:"required"`
	Quantity decimal.Decimal `json:"quantity" validate:"required"`
	NF       string          `json:"nf"`
	Date     *time.Time      `json:"date"`
	Location string          `json:"location"`
}

// RegisterExitRequest body para POST /api/movements/exits.
// NFOrigem vazia significa baixa sem lote (distribuída por FIFO na leitura).
type RegisterExitRequest struct {
	SKU      string          `json:"sku" validate:"required"`
	Quantity decimal.Decimal `json:"quantity" validate:"required"`
	NFOrigem string          `json:"nf_origem"`
	Date     *time.Time      `json:"date"`
}

// EntryResponse saída de uma entrada registrada.
type EntryResponse struct {
	ID        string    `json:"id"`
	SKU       string    `json:"sku"`
	Quantity  int       `json:"quantity"`
	NF        string    `json:"nf"`
	Date      time.Time `json:"date"`
	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by,omitempty"`
}

// ExitResponse saída de uma baixa registrada.
type ExitResponse struct {
	ID        string    `json:"id"`
	SKU       string    `json:"sku"`
	Quantity  int       `json:"quantity"`
	NFOrigem  string    `json:"nf_origem,omitempty"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by,omitempty"`
}

// EntryListResponse lista paginada de entradas.
type EntryListResponse struct {
	Items []EntryResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// ExitListResponse lista paginada de saídas.
type ExitListResponse struct {
	Items []ExitResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
