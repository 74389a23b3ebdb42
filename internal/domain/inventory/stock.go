package inventory

import "github.com/estoquepro/estoque-api/internal/domain/entity"

// Status classifica a quantidade atual frente ao estoque mínimo do produto.
type Status string

const (
	StatusOK    Status = "ok"
	StatusLow   Status = "low"
	StatusEmpty Status = "empty"
)

// DefaultMinStock é o limiar aplicado quando o produto não define o próprio
// estoque mínimo. Precisa ser positivo: com zero o status "low" seria
// inalcançável.
const DefaultMinStock = 5

// StockSnapshot é a visão agregada de um SKU: soma de entradas menos saídas,
// independente do detalhe por lote. Quantity pode ser negativa quando o
// histórico está inconsistente; o valor é reportado como está.
type StockSnapshot struct {
	SKU      string
	Quantity int
	MinStock int
	Status   Status
}

// ComputeStock soma entradas menos saídas do SKU e classifica o resultado.
// minStock <= 0 cai no padrão da política. Função pura, sem estado entre
// chamadas; quantidades fracionárias devem ter sido truncadas na borda.
func ComputeStock(sku string, entries []entity.Entry, exits []entity.Exit, minStock int) StockSnapshot {
	if minStock <= 0 {
		minStock = DefaultMinStock
	}
	qty := 0
	for _, e := range entries {
		if e.Quantity > 0 {
			qty += e.Quantity
		}
	}
	for _, x := range exits {
		if x.Quantity > 0 {
			qty -= x.Quantity
		}
	}
	return StockSnapshot{
		SKU:      sku,
		Quantity: qty,
		MinStock: minStock,
		Status:   classify(qty, minStock),
	}
}

// classify aplica a regra: empty quando zero exato, low entre zero e o
// mínimo, ok nos demais casos (inclusive negativo, que é sinal de problema de
// integridade a montante e não deve ser mascarado pelo status).
func classify(qty, minStock int) Status {
	switch {
	case qty == 0:
		return StatusEmpty
	case qty > 0 && qty < minStock:
		return StatusLow
	default:
		return StatusOK
	}
}
