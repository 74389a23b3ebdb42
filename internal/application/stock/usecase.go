package stock

import (
	"context"

	"github.com/estoquepro/estoque-api/internal/application/dto"
	"github.com/estoquepro/estoque-api/internal/domain"
	"github.com/estoquepro/estoque-api/internal/domain/inventory"
	"github.com/estoquepro/estoque-api/internal/domain/repository"
)

// StockUseCase consultas de estoque: saldo agregado e lotes reconciliados.
// Cada chamada carrega o próprio snapshot do log de movimentos e recalcula do
// zero (consistência de snapshot; nenhum cache entre requisições).
type StockUseCase struct {
	productRepo repository.ProductRepository
	entryRepo   repository.EntryRepository
	exitRepo    repository.ExitRepository
}

// NewStockUseCase constrói o caso de uso.
func NewStockUseCase(
	productRepo repository.ProductRepository,
	entryRepo repository.EntryRepository,
	exitRepo repository.ExitRepository,
) *StockUseCase {
	return &StockUseCase{productRepo: productRepo, entryRepo: entryRepo, exitRepo: exitRepo}
}

// GetStock devolve o saldo atual e o status de um SKU.
func (uc *StockUseCase) GetStock(ctx context.Context, sku string) (*dto.StockResponse, error) {
	product, err := uc.productRepo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	entries, err := uc.entryRepo.ListBySKU(sku)
	if err != nil {
		return nil, err
	}
	exits, err := uc.exitRepo.ListBySKU(sku)
	if err != nil {
		return nil, err
	}
	snap := inventory.ComputeStock(sku, entries, exits, product.MinStock)
	return toStockResponse(snap), nil
}

// GetLots devolve os lotes com saldo positivo de um SKU, do mais antigo ao
// mais recente, mais o diagnóstico das anomalias absorvidas na reconciliação.
func (uc *StockUseCase) GetLots(ctx context.Context, sku string) (*dto.LotListResponse, error) {
	product, err := uc.productRepo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	entries, err := uc.entryRepo.ListBySKU(sku)
	if err != nil {
		return nil, err
	}
	exits, err := uc.exitRepo.ListBySKU(sku)
	if err != nil {
		return nil, err
	}
	lots, diag := inventory.ComputeLots(entries, exits)

	resp := &dto.LotListResponse{SKU: sku, Lots: make([]dto.LotResponse, 0, len(lots))}
	for _, l := range lots {
		resp.Lots = append(resp.Lots, dto.LotResponse{
			Label:     l.Label,
			Remaining: l.Remaining,
			Date:      l.Date,
			Location:  l.Location,
		})
	}
	if len(diag.Orphans) > 0 || diag.Undistributed > 0 {
		d := &dto.LotDiagnosticsResponse{Undistributed: diag.Undistributed}
		for _, o := range diag.Orphans {
			d.Orphans = append(d.Orphans, dto.OrphanExitResponse{Ref: o.Ref, Quantity: o.Quantity})
		}
		resp.Diagnostics = d
	}
	return resp, nil
}

// ListStock devolve o snapshot de cada produto da página.
func (uc *StockUseCase) ListStock(ctx context.Context, limit, offset int) (*dto.StockListResponse, error) {
	products, err := uc.productRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockResponse, 0, len(products))
	for _, p := range products {
		entries, err := uc.entryRepo.ListBySKU(p.SKU)
		if err != nil {
			return nil, err
		}
		exits, err := uc.exitRepo.ListBySKU(p.SKU)
		if err != nil {
			return nil, err
		}
		snap := inventory.ComputeStock(p.SKU, entries, exits, p.MinStock)
		items = append(items, *toStockResponse(snap))
	}
	return &dto.StockListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListEntries devolve o histórico de entradas, opcionalmente filtrado por SKU.
func (uc *StockUseCase) ListEntries(ctx context.Context, sku string, limit, offset int) (*dto.EntryListResponse, error) {
	entries, err := uc.entryRepo.List(sku, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EntryResponse, 0, len(entries))
	for i := range entries {
		items = append(items, *toEntryResponse(&entries[i]))
	}
	return &dto.EntryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListExits devolve o histórico de saídas, opcionalmente filtrado por SKU.
func (uc *StockUseCase) ListExits(ctx context.Context, sku string, limit, offset int) (*dto.ExitListResponse, error) {
	exits, err := uc.exitRepo.List(sku, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExitResponse, 0, len(exits))
	for i := range exits {
		items = append(items, *toExitResponse(&exits[i]))
	}
	return &dto.ExitListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toStockResponse(s inventory.StockSnapshot) *dto.StockResponse {
	return &dto.StockResponse{
		SKU:      s.SKU,
		Quantity: s.Quantity,
		MinStock: s.MinStock,
		Status:   string(s.Status),
	}
}
