package inventory

import (
	"sort"

	"github.com/estoquepro/estoque-api/internal/domain/entity"
)

// OrphanExit registra uma saída cuja NF de origem não corresponde a nenhum
// lote conhecido. A quantidade some do detalhe por lote, mas continua valendo
// no total do SKU (ComputeStock é calculado de forma independente).
type OrphanExit struct {
	Ref      string
	Quantity int
}

// Diagnostics acumula as anomalias absorvidas durante a reconciliação.
// São sinais de qualidade de dados, não erros: o resultado numérico principal
// não depende deles.
type Diagnostics struct {
	Orphans       []OrphanExit // saídas com NF de origem desconhecida
	Undistributed int          // resíduo sem NF que nenhum lote conseguiu absorver
}

// ComputeLots reconcilia as entradas e saídas de um SKU e devolve os lotes
// com saldo positivo, ordenados da entrada mais antiga para a mais recente.
// Saídas com NF de origem são abatidas do lote referenciado; saídas sem NF
// são distribuídas por FIFO (lote mais antigo primeiro). Função pura:
// recalculada por inteiro a cada chamada, sem estado entre chamadas.
func ComputeLots(entries []entity.Entry, exits []entity.Exit) ([]LotBalance, Diagnostics) {
	lots := aggregateLots(entries)

	var diag Diagnostics
	diag.Orphans = allocateDirect(lots, exits)
	diag.Undistributed = distributeFIFO(lots, noLotTotal(exits))

	keys := sortedKeys(lots)
	balances := make([]LotBalance, 0, len(keys))
	for _, k := range keys {
		lot := lots[k]
		if lot.Remaining() <= 0 {
			continue
		}
		label := lot.Ref
		if k == noLotKey {
			label = NoLotLabel
		}
		balances = append(balances, LotBalance{
			Label:     label,
			Remaining: lot.Remaining(),
			Date:      lot.Date,
			Location:  lot.Location,
		})
	}
	return balances, diag
}

// aggregateLots agrupa as entradas por chave de lote normalizada, somando as
// quantidades e fixando a data mais antiga vista por chave. O log de
// movimentos não garante ordenação, então o mínimo é rastreado aqui em vez de
// exigir entrada pré-ordenada.
func aggregateLots(entries []entity.Entry) map[string]*Lot {
	lots := make(map[string]*Lot)
	for _, e := range entries {
		qty := e.Quantity
		if qty < 0 {
			// registros parciais de importações tolerantes contam como zero
			qty = 0
		}
		key := LotKey(e.NF)
		lot, ok := lots[key]
		if !ok {
			lot = &Lot{Ref: e.NF, Date: e.Date, Location: e.Location}
			lots[key] = lot
		}
		lot.Inbound += qty
		if e.Date.Before(lot.Date) {
			lot.Date = e.Date
			if e.Location != "" {
				lot.Location = e.Location
			}
		}
	}
	return lots
}

// allocateDirect abate dos lotes as saídas que trazem NF de origem explícita.
// Saídas cuja NF não corresponde a lote algum (lote apagado depois, referência
// antiga ou com erro de digitação) são devolvidas como órfãs.
func allocateDirect(lots map[string]*Lot, exits []entity.Exit) []OrphanExit {
	var orphans []OrphanExit
	for _, x := range exits {
		if IsNoLot(x.NFOrigem) {
			continue
		}
		qty := x.Quantity
		if qty < 0 {
			qty = 0
		}
		key := LotKey(x.NFOrigem)
		lot, ok := lots[key]
		if !ok {
			orphans = append(orphans, OrphanExit{Ref: x.NFOrigem, Quantity: qty})
			continue
		}
		lot.Outbound += qty
	}
	return orphans
}

// noLotTotal soma as saídas sem NF de origem, o resíduo a distribuir por FIFO.
func noLotTotal(exits []entity.Exit) int {
	total := 0
	for _, x := range exits {
		if !IsNoLot(x.NFOrigem) {
			continue
		}
		if x.Quantity > 0 {
			total += x.Quantity
		}
	}
	return total
}

// distributeFIFO consome o resíduo sem NF lote a lote, do mais antigo para o
// mais recente, sem nunca deixar um lote negativo. Devolve o que sobrou quando
// as saídas superam todo o estoque conhecido (histórico inconsistente; o total
// do SKU continua refletindo o saldo real).
func distributeFIFO(lots map[string]*Lot, remaining int) int {
	if remaining <= 0 {
		return 0
	}
	for _, k := range sortedKeys(lots) {
		lot := lots[k]
		available := lot.Remaining()
		if available <= 0 {
			continue
		}
		take := available
		if remaining < take {
			take = remaining
		}
		lot.Outbound += take
		remaining -= take
		if remaining == 0 {
			break
		}
	}
	return remaining
}

// sortedKeys devolve as chaves dos lotes em ordem FIFO: data de entrada mais
// antiga primeiro, com desempate determinístico pela própria chave.
func sortedKeys(lots map[string]*Lot) []string {
	keys := make([]string, 0, len(lots))
	for k := range lots {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := lots[keys[i]], lots[keys[j]]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return keys[i] < keys[j]
	})
	return keys
}
