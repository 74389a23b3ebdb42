package inventory

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// NoLotLabel é o rótulo apresentado para o conjunto de movimentos sem NF de
// origem. Entradas e saídas com NF nula, vazia ou igual a este rótulo (em
// qualquer caixa) caem no mesmo balde.
const NoLotLabel = "Sem NF"

// noLotKey é a chave canônica interna do balde sem NF.
const noLotKey = ""

// LotKey normaliza uma referência de NF para a chave de agrupamento de lotes:
// espaços das pontas removidos e caixa normalizada por case folding Unicode,
// de modo que diferenças incidentais de digitação não fragmentem um lote.
// Referências vazias ou "Sem NF" normalizam para a chave canônica do balde
// sem lote. O Caser é local porque cases.Caser não é seguro para uso
// concorrente e LotKey roda em requisições paralelas.
func LotKey(ref string) string {
	r := strings.TrimSpace(ref)
	if r == "" {
		return noLotKey
	}
	fold := cases.Fold()
	folded := fold.String(r)
	if folded == fold.String(NoLotLabel) {
		return noLotKey
	}
	return folded
}

// IsNoLot informa se a referência pertence ao balde sem NF.
func IsNoLot(ref string) bool {
	return LotKey(ref) == noLotKey
}

// Lot é o estado reconciliado de um lote: total que entrou, total baixado
// (direto ou via FIFO), data da entrada mais antiga e local de armazenagem.
// Derivado a cada chamada; nunca persistido.
type Lot struct {
	Ref      string // referência original da primeira entrada vista (para exibição)
	Inbound  int
	Outbound int
	Date     time.Time // data da entrada mais antiga do lote
	Location string
}

// Remaining devolve o saldo do lote. Pode ser negativo quando o histórico já
// está inconsistente (baixas diretas acima do que entrou).
func (l *Lot) Remaining() int {
	return l.Inbound - l.Outbound
}

// LotBalance é a visão de um lote com saldo positivo, pronta para consumo
// por interfaces que oferecem "baixar do lote X".
type LotBalance struct {
	Label     string
	Remaining int
	Date      time.Time
	Location  string
}
