package dto

import "time"

// CreateProductRequest entrada para criar um produto.
// MinStock zero ou ausente recebe o padrão da política de estoque.
type CreateProductRequest struct {
	SKU         string `json:"sku" validate:"required,min=1,max=100"`
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
	MinStock    int    `json:"min_stock" validate:"omitempty,min=0"`
}

// UpdateProductRequest entrada para atualizar um produto (SKU é imutável).
type UpdateProductRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	MinStock    *int    `json:"min_stock" validate:"omitempty,min=0"`
}

// ProductResponse saída de um produto.
type ProductResponse struct {
	ID          string    `json:"id"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	MinStock    int       `json:"min_stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductListResponse lista paginada de produtos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
