package inventory_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/estoquepro/estoque-api/internal/domain/inventory"
)

func TestLotKey(t *testing.T) {
	// referências equivalentes ao balde sem NF
	assert.True(t, inventory.IsNoLot(""))
	assert.True(t, inventory.IsNoLot("   "))
	assert.True(t, inventory.IsNoLot("Sem NF"))
	assert.True(t, inventory.IsNoLot("sem nf"))
	assert.True(t, inventory.IsNoLot("SEM NF"))

	// diferenças incidentais de caixa e espaço não fragmentam o lote
	assert.Equal(t, inventory.LotKey("NF-123"), inventory.LotKey(" nf-123 "))

	// referências distintas continuam distintas
	assert.NotEqual(t, inventory.LotKey("100"), inventory.LotKey("200"))
	assert.False(t, inventory.IsNoLot("100"))
}

// LotKey é chamada de requisições HTTP paralelas; rodar com -race aqui pega
// qualquer estado compartilhado na normalização.
func TestLotKey_ChamadasConcorrentes(t *testing.T) {
	refs := []string{"NF-123", " nf-123 ", "Sem NF", "200", "ÁGUA-01", "água-01"}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				for _, r := range refs {
					_ = inventory.LotKey(r)
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, inventory.LotKey("NF-123"), inventory.LotKey(" nf-123 "))
}
