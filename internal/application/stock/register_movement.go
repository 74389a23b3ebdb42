package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/estoquepro/estoque-api/internal/application/dto"
	"github.com/estoquepro/estoque-api/internal/domain"
	"github.com/estoquepro/estoque-api/internal/domain/entity"
	"github.com/estoquepro/estoque-api/internal/domain/inventory"
	"github.com/estoquepro/estoque-api/internal/domain/repository"
)

// RegisterMovementUseCase grava entradas e saídas de forma transacional.
// O motor de reconciliação é deliberadamente permissivo; a rejeição de
// operações inviáveis ("não há saldo nesse lote") acontece aqui, antes da
// escrita, sobre uma reconciliação fresca dentro da mesma transação.
type RegisterMovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewRegisterMovementUseCase constrói o caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, productRepo: productRepo}
}

// truncateQty trunca a quantidade decimal da borda para o inteiro do domínio.
// Importações tolerantes podem mandar fração; o motor assume inteiros.
func truncateQty(d decimal.Decimal) int {
	return int(d.IntPart())
}

// RegisterEntry valida e grava uma entrada de estoque.
func (uc *RegisterMovementUseCase) RegisterEntry(ctx context.Context, userID string, in dto.RegisterEntryRequest) (*dto.EntryResponse, error) {
	qty := truncateQty(in.Quantity)
	if in.SKU == "" || qty <= 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	entry := &entity.Entry{
		ID:        uuid.New().String(),
		SKU:       in.SKU,
		Quantity:  qty,
		NF:        in.NF,
		Date:      date,
		Location:  in.Location,
		CreatedAt: now,
		CreatedBy: userID,
	}

	err = uc.txRunner.Run(ctx, func(entryRepo repository.EntryRepository, _ repository.ExitRepository) error {
		return entryRepo.Create(entry)
	})
	if err != nil {
		return nil, err
	}
	return toEntryResponse(entry), nil
}

// RegisterExit valida e grava uma saída de estoque. Com NF de origem
// explícita, exige que o lote exista e tenha saldo suficiente; sem NF, exige
// saldo agregado do SKU. A checagem e a gravação compartilham a transação
// para que nenhuma escrita concorrente invalide a decisão.
func (uc *RegisterMovementUseCase) RegisterExit(ctx context.Context, userID string, in dto.RegisterExitRequest) (*dto.ExitResponse, error) {
	qty := truncateQty(in.Quantity)
	if in.SKU == "" || qty <= 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	exit := &entity.Exit{
		ID:        uuid.New().String(),
		SKU:       in.SKU,
		Quantity:  qty,
		NFOrigem:  in.NFOrigem,
		Date:      date,
		CreatedAt: now,
		CreatedBy: userID,
	}

	err = uc.txRunner.Run(ctx, func(entryRepo repository.EntryRepository, exitRepo repository.ExitRepository) error {
		entries, err := entryRepo.ListBySKU(in.SKU)
		if err != nil {
			return err
		}
		exits, err := exitRepo.ListBySKU(in.SKU)
		if err != nil {
			return err
		}
		if err := checkAvailability(entries, exits, in.NFOrigem, qty); err != nil {
			return err
		}
		return exitRepo.Create(exit)
	})
	if err != nil {
		return nil, err
	}
	return toExitResponse(exit), nil
}

// checkAvailability aplica a política de rejeição na escrita. O histórico já
// gravado pode estar inconsistente (edições externas); aqui só se decide se a
// nova saída cabe no que a reconciliação atual enxerga.
func checkAvailability(entries []entity.Entry, exits []entity.Exit, nfOrigem string, qty int) error {
	if inventory.IsNoLot(nfOrigem) {
		snap := inventory.ComputeStock("", entries, exits, 0)
		if snap.Quantity < qty {
			return domain.ErrInsufficientStock
		}
		return nil
	}

	key := inventory.LotKey(nfOrigem)
	known := false
	for _, e := range entries {
		if inventory.LotKey(e.NF) == key {
			known = true
			break
		}
	}
	if !known {
		return domain.ErrLotNotFound
	}
	lots, _ := inventory.ComputeLots(entries, exits)
	for _, l := range lots {
		if inventory.LotKey(l.Label) == key {
			if l.Remaining < qty {
				return domain.ErrInsufficientStock
			}
			return nil
		}
	}
	// lote conhecido, mas já sem saldo positivo
	return domain.ErrInsufficientStock
}

// DeleteEntry remove uma entrada do log; o próximo recálculo reflete o novo estado.
func (uc *RegisterMovementUseCase) DeleteEntry(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(entryRepo repository.EntryRepository, _ repository.ExitRepository) error {
		existing, err := entryRepo.GetByID(id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		return entryRepo.Delete(id)
	})
}

// DeleteExit remove uma saída do log.
func (uc *RegisterMovementUseCase) DeleteExit(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(_ repository.EntryRepository, exitRepo repository.ExitRepository) error {
		existing, err := exitRepo.GetByID(id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		return exitRepo.Delete(id)
	})
}

func toEntryResponse(e *entity.Entry) *dto.EntryResponse {
	return &dto.EntryResponse{
		ID:        e.ID,
		SKU:       e.SKU,
		Quantity:  e.Quantity,
		NF:        e.NF,
		Date:      e.Date,
		Location:  e.Location,
		CreatedAt: e.CreatedAt,
		CreatedBy: e.CreatedBy,
	}
}

func toExitResponse(x *entity.Exit) *dto.ExitResponse {
	return &dto.ExitResponse{
		ID:        x.ID,
		SKU:       x.SKU,
		Quantity:  x.Quantity,
		NFOrigem:  x.NFOrigem,
		Date:      x.Date,
		CreatedAt: x.CreatedAt,
		CreatedBy: x.CreatedBy,
	}
}
