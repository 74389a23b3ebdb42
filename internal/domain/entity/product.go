package entity

import "time"

// Product representa um produto controlado pelo estoque. SKU é o identificador
// de negócio, único e imutável; MinStock é o limiar usado na classificação
// ok/low/empty (0 = usar o padrão da política).
type Product struct {
	ID          string
	SKU         string
	Name        string
	Description string
	MinStock    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
