package repository

import "github.com/estoquepro/estoque-api/internal/domain/entity"

// EntryRepository porta de persistência do log de entradas (append-only do
// ponto de vista do motor; edições e exclusões acontecem por fora e o motor
// apenas recalcula do estado que receber).
type EntryRepository interface {
	Create(entry *entity.Entry) error
	GetByID(id string) (*entity.Entry, error)
	// ListBySKU devolve todas as entradas do SKU, sem garantia de ordem.
	ListBySKU(sku string) ([]entity.Entry, error)
	List(sku string, limit, offset int) ([]entity.Entry, error)
	Delete(id string) error
}

// ExitRepository porta de persistência do log de saídas.
type ExitRepository interface {
	Create(exit *entity.Exit) error
	GetByID(id string) (*entity.Exit, error)
	ListBySKU(sku string) ([]entity.Exit, error)
	List(sku string, limit, offset int) ([]entity.Exit, error)
	Delete(id string) error
}
