package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/estoquepro/estoque-api/internal/domain/entity"
	"github.com/estoquepro/estoque-api/internal/domain/inventory"
)

// Fronteiras da classificação com minStock = 3:
// 0 -> empty, 2 -> low, 3 -> ok.
func TestComputeStock_FronteirasDeStatus(t *testing.T) {
	cases := []struct {
		name     string
		in, out  int
		expected inventory.Status
	}{
		{"zerado", 5, 5, inventory.StatusEmpty},
		{"abaixo do minimo", 5, 3, inventory.StatusLow},
		{"no minimo", 5, 2, inventory.StatusOK},
		{"acima do minimo", 9, 2, inventory.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entries := []entity.Entry{{SKU: "A", Quantity: tc.in, Date: d1}}
			exits := []entity.Exit{{SKU: "A", Quantity: tc.out, Date: d2}}
			snap := inventory.ComputeStock("A", entries, exits, 3)
			assert.Equal(t, tc.in-tc.out, snap.Quantity)
			assert.Equal(t, tc.expected, snap.Status)
		})
	}
}

// minStock não definido (<= 0) cai no padrão da política, que é positivo
// justamente para que "low" seja alcançável.
func TestComputeStock_MinimoPadrao(t *testing.T) {
	entries := []entity.Entry{{SKU: "A", Quantity: inventory.DefaultMinStock - 1, Date: d1}}
	snap := inventory.ComputeStock("A", entries, nil, 0)
	assert.Equal(t, inventory.DefaultMinStock, snap.MinStock)
	assert.Equal(t, inventory.StatusLow, snap.Status)
}

// Saídas acima do que entrou: total negativo reportado como está (sinal de
// problema de integridade, nunca grampeado).
func TestComputeStock_SaldoNegativoNaoEGrampeado(t *testing.T) {
	entries := []entity.Entry{{SKU: "A", Quantity: 2, Date: d1}}
	exits := []entity.Exit{{SKU: "A", Quantity: 5, Date: d2}}
	snap := inventory.ComputeStock("A", entries, exits, 3)
	assert.Equal(t, -3, snap.Quantity)
}

// O total do SKU independe do detalhe de lotes: saídas órfãs contam aqui.
func TestComputeStock_IndependeDosLotes(t *testing.T) {
	entries := []entity.Entry{{SKU: "A", Quantity: 5, NF: "100", Date: d1}}
	exits := []entity.Exit{{SKU: "A", Quantity: 3, NFOrigem: "999", Date: d2}}
	snap := inventory.ComputeStock("A", entries, exits, 3)
	assert.Equal(t, 2, snap.Quantity)
	assert.Equal(t, inventory.StatusLow, snap.Status)
}
