package stock

import (
	"context"

	"github.com/estoquepro/estoque-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de banco, passando
// repositórios atados a essa transação. Garante que a checagem de
// disponibilidade e a gravação do movimento enxerguem o mesmo snapshot do log.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		entryRepo repository.EntryRepository,
		exitRepo repository.ExitRepository,
	) error) error
}
