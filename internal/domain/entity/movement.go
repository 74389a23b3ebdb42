package entity

import "time"

// Entry representa uma entrada de estoque (movimento de chegada).
// NF é o número da nota fiscal do fornecedor e identifica o lote; pode estar
// vazio em registros legados ou manuais. Date é a ordem cronológica usada
// pelo motor de reconciliação; o log não garante ordenação na leitura.
type Entry struct {
	ID        string
	SKU       string
	Quantity  int
	NF        string
	Date      time.Time
	Location  string // local de armazenagem (texto livre, opcional)
	CreatedAt time.Time
	CreatedBy string // UserID
}

// Exit representa uma saída de estoque. NFOrigem aponta o lote do qual a
// quantidade foi retirada; vazio significa que a baixa será distribuída por
// FIFO entre os lotes existentes.
type Exit struct {
	ID        string
	SKU       string
	Quantity  int
	NFOrigem  string
	Date      time.Time
	CreatedAt time.Time
	CreatedBy string
}
