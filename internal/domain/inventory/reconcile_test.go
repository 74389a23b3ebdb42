package inventory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estoquepro/estoque-api/internal/domain/entity"
	"github.com/estoquepro/estoque-api/internal/domain/inventory"
)

var (
	d1 = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	d2 = time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	d3 = time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC)
)

func entry(nf string, qty int, date time.Time) entity.Entry {
	return entity.Entry{SKU: "A", Quantity: qty, NF: nf, Date: date}
}

func exit(nfOrigem string, qty int, date time.Time) entity.Exit {
	return entity.Exit{SKU: "A", Quantity: qty, NFOrigem: nfOrigem, Date: date}
}

// Cenário simples: uma entrada com NF, uma saída direta da mesma NF.
func TestComputeLots_EntradaESaidaDireta(t *testing.T) {
	entries := []entity.Entry{entry("100", 10, d1)}
	exits := []entity.Exit{exit("100", 4, d2)}

	lots, diag := inventory.ComputeLots(entries, exits)
	require.Len(t, lots, 1)
	assert.Equal(t, "100", lots[0].Label)
	assert.Equal(t, 6, lots[0].Remaining)
	assert.Empty(t, diag.Orphans)
	assert.Zero(t, diag.Undistributed)

	snap := inventory.ComputeStock("A", entries, exits, 0)
	assert.Equal(t, 6, snap.Quantity)
}

// Saída legada sem NF deve drenar primeiro o lote mais antigo (FIFO):
// lote 100 zera por inteiro antes de tocar o lote 200.
func TestComputeLots_SaidaSemNFDrenaLoteMaisAntigo(t *testing.T) {
	entries := []entity.Entry{
		entry("100", 5, d1),
		entry("200", 5, d2),
	}
	exits := []entity.Exit{exit("", 6, d3)}

	lots, diag := inventory.ComputeLots(entries, exits)
	require.Len(t, lots, 1, "o lote 100 zera e sai da visão")
	assert.Equal(t, "200", lots[0].Label)
	assert.Equal(t, 4, lots[0].Remaining)
	assert.Zero(t, diag.Undistributed)

	snap := inventory.ComputeStock("A", entries, exits, 0)
	assert.Equal(t, 4, snap.Quantity)
}

// FIFO nunca reparte a baixa entre lotes sem antes esgotar o mais antigo.
func TestComputeLots_FIFOEsgotaAntesDeRepartir(t *testing.T) {
	entries := []entity.Entry{
		entry("A1", 5, d1),
		entry("B2", 5, d2),
	}
	exits := []entity.Exit{exit("", 7, d3)}

	lots, _ := inventory.ComputeLots(entries, exits)
	require.Len(t, lots, 1)
	assert.Equal(t, "B2", lots[0].Label)
	assert.Equal(t, 3, lots[0].Remaining)
}

// Saída com NF que nunca existiu: o detalhe por lote fica intacto, mas o
// total do SKU continua descontando a saída.
func TestComputeLots_NFOrfaNaoTocaLotes(t *testing.T) {
	entries := []entity.Entry{entry("100", 5, d1)}
	exits := []entity.Exit{exit("999", 3, d2)}

	lots, diag := inventory.ComputeLots(entries, exits)
	require.Len(t, lots, 1)
	assert.Equal(t, 5, lots[0].Remaining)
	require.Len(t, diag.Orphans, 1)
	assert.Equal(t, "999", diag.Orphans[0].Ref)
	assert.Equal(t, 3, diag.Orphans[0].Quantity)

	snap := inventory.ComputeStock("A", entries, exits, 0)
	assert.Equal(t, 2, snap.Quantity)
}

// NF nula, vazia e "Sem NF" (em qualquer caixa) caem no mesmo balde e são
// distribuídas juntas.
func TestComputeLots_NormalizacaoSemNF(t *testing.T) {
	entries := []entity.Entry{
		entry("100", 10, d1),
	}
	exits := []entity.Exit{
		exit("", 2, d2),
		exit("   ", 2, d2),
		exit("Sem NF", 2, d2),
		exit("SEM NF", 2, d2),
	}

	lots, diag := inventory.ComputeLots(entries, exits)
	require.Len(t, lots, 1)
	assert.Equal(t, 2, lots[0].Remaining, "as quatro saídas devem ser tratadas como o mesmo balde sem NF")
	assert.Empty(t, diag.Orphans)
}

// Entradas sem NF formam o próprio lote, rotulado "Sem NF".
func TestComputeLots_EntradaSemNFViraLoteProprio(t *testing.T) {
	entries := []entity.Entry{
		entry("", 8, d1),
		entry("200", 3, d2),
	}

	lots, _ := inventory.ComputeLots(entries, nil)
	require.Len(t, lots, 2)
	assert.Equal(t, inventory.NoLotLabel, lots[0].Label)
	assert.Equal(t, 8, lots[0].Remaining)
	assert.Equal(t, "200", lots[1].Label)
}

// Chaves diferem só por caixa e espaços: devem agregar no mesmo lote.
func TestComputeLots_ChaveNormalizadaPorCaixa(t *testing.T) {
	entries := []entity.Entry{
		entry("nf-10", 4, d1),
		entry("  NF-10 ", 6, d2),
	}

	lots, _ := inventory.ComputeLots(entries, nil)
	require.Len(t, lots, 1)
	assert.Equal(t, 10, lots[0].Remaining)
	assert.Equal(t, d1, lots[0].Date, "a data do lote é a da entrada mais antiga")
}

// A data mais antiga vale mesmo quando as entradas chegam fora de ordem;
// o log de movimentos não garante ordenação.
func TestComputeLots_DataMinimaIndependeDaOrdem(t *testing.T) {
	entries := []entity.Entry{
		entry("100", 2, d3),
		entry("100", 2, d1),
		entry("200", 5, d2),
	}
	exits := []entity.Exit{exit("", 3, d3)}

	lots, _ := inventory.ComputeLots(entries, exits)
	require.Len(t, lots, 2)
	// lote 100 (data d1) é consumido primeiro: 4 - 3 = 1
	assert.Equal(t, "100", lots[0].Label)
	assert.Equal(t, 1, lots[0].Remaining)
	assert.Equal(t, 5, lots[1].Remaining)
}

// Empate de data: desempate determinístico pela chave do lote.
func TestComputeLots_EmpateDeDataDesempataPorChave(t *testing.T) {
	entries := []entity.Entry{
		entry("B", 5, d1),
		entry("A", 5, d1),
	}
	exits := []entity.Exit{exit("", 5, d2)}

	lots, _ := inventory.ComputeLots(entries, exits)
	require.Len(t, lots, 1)
	assert.Equal(t, "B", lots[0].Label, "com datas iguais, a chave menor é consumida primeiro")
}

// Resíduo FIFO irresolúvel: nenhum lote fica negativo e a sobra aparece no
// diagnóstico; o total do SKU reflete o saldo real (negativo).
func TestComputeLots_ResiduoFIFONaoNegativaLotes(t *testing.T) {
	entries := []entity.Entry{entry("100", 5, d1)}
	exits := []entity.Exit{exit("", 8, d2)}

	lots, diag := inventory.ComputeLots(entries, exits)
	assert.Empty(t, lots)
	assert.Equal(t, 3, diag.Undistributed)

	snap := inventory.ComputeStock("A", entries, exits, 0)
	assert.Equal(t, -3, snap.Quantity, "o total nunca é grampeado em zero")
}

// Conservação: com todas as saídas referenciando lotes existentes, o total do
// SKU coincide com a soma dos saldos por lote.
func TestConservacao_TotalIgualSomaDosLotes(t *testing.T) {
	entries := []entity.Entry{
		entry("100", 10, d1),
		entry("200", 7, d2),
		entry("300", 4, d3),
	}
	exits := []entity.Exit{
		exit("100", 3, d2),
		exit("200", 7, d3),
		exit("300", 1, d3),
	}

	lots, diag := inventory.ComputeLots(entries, exits)
	assert.Empty(t, diag.Orphans)
	assert.Zero(t, diag.Undistributed)

	sum := 0
	for _, l := range lots {
		sum += l.Remaining
	}
	snap := inventory.ComputeStock("A", entries, exits, 0)
	assert.Equal(t, snap.Quantity, sum)
}

// Idempotência: duas chamadas sobre o mesmo snapshot produzem o mesmo
// resultado (função pura, sem estado escondido).
func TestComputeLots_Idempotente(t *testing.T) {
	entries := []entity.Entry{
		entry("100", 5, d1),
		entry("", 3, d2),
	}
	exits := []entity.Exit{
		exit("", 4, d3),
		exit("100", 1, d3),
	}

	first, diag1 := inventory.ComputeLots(entries, exits)
	second, diag2 := inventory.ComputeLots(entries, exits)
	assert.Equal(t, first, second)
	assert.Equal(t, diag1, diag2)
}

// Quantidade negativa (registro corrompido de importação) conta como zero em
// vez de derrubar o cálculo inteiro.
func TestComputeLots_QuantidadeNegativaContaComoZero(t *testing.T) {
	entries := []entity.Entry{
		entry("100", -4, d1),
		entry("100", 6, d2),
	}

	lots, _ := inventory.ComputeLots(entries, nil)
	require.Len(t, lots, 1)
	assert.Equal(t, 6, lots[0].Remaining)
}
