package dto

import "time"

// StockResponse visão agregada de um SKU: saldo atual e classificação frente
// ao estoque mínimo. Quantity pode ser negativa em históricos inconsistentes.
type StockResponse struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
	MinStock int    `json:"min_stock"`
	Status   string `json:"status"` // ok | low | empty
}

// StockListResponse snapshots por produto.
type StockListResponse struct {
	Items []StockResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// LotResponse saldo de um lote com quantidade positiva.
type LotResponse struct {
	Label     string    `json:"label"` // NF original ou "Sem NF"
	Remaining int       `json:"remaining"`
	Date      time.Time `json:"date"`
	Location  string    `json:"location,omitempty"`
}

// OrphanExitResponse saída cuja NF de origem não corresponde a lote algum.
type OrphanExitResponse struct {
	Ref      string `json:"ref"`
	Quantity int    `json:"quantity"`
}

// LotDiagnosticsResponse anomalias absorvidas na reconciliação, expostas para
// revisão do operador sem alterar o contrato numérico principal.
type LotDiagnosticsResponse struct {
	Orphans       []OrphanExitResponse `json:"orphans,omitempty"`
	Undistributed int                  `json:"undistributed,omitempty"`
}

// LotListResponse lotes reconciliados de um SKU, do mais antigo ao mais novo.
type LotListResponse struct {
	SKU         string                  `json:"sku"`
	Lots        []LotResponse           `json:"lots"`
	Diagnostics *LotDiagnosticsResponse `json:"diagnostics,omitempty"`
}
