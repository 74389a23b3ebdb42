package stock_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estoquepro/estoque-api/internal/application/dto"
	"github.com/estoquepro/estoque-api/internal/application/stock"
	"github.com/estoquepro/estoque-api/internal/domain"
	"github.com/estoquepro/estoque-api/internal/domain/entity"
	"github.com/estoquepro/estoque-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product // por SKU
}

func (f *fakeProductRepo) Create(p *entity.Product) error { f.products[p.SKU] = p; return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}
func (f *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	return f.products[sku], nil
}
func (f *fakeProductRepo) Update(p *entity.Product) error { f.products[p.SKU] = p; return nil }
func (f *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}
func (f *fakeProductRepo) Delete(id string) error { return nil }

type fakeEntryRepo struct {
	entries []entity.Entry
}

func (f *fakeEntryRepo) Create(e *entity.Entry) error {
	f.entries = append(f.entries, *e)
	return nil
}
func (f *fakeEntryRepo) GetByID(id string) (*entity.Entry, error) {
	for i := range f.entries {
		if f.entries[i].ID == id {
			return &f.entries[i], nil
		}
	}
	return nil, nil
}
func (f *fakeEntryRepo) ListBySKU(sku string) ([]entity.Entry, error) {
	var out []entity.Entry
	for _, e := range f.entries {
		if e.SKU == sku {
			out = append(out, e)
		}
	}
	return out, nil
}
func (f *fakeEntryRepo) List(sku string, limit, offset int) ([]entity.Entry, error) {
	return f.ListBySKU(sku)
}
func (f *fakeEntryRepo) Delete(id string) error {
	for i := range f.entries {
		if f.entries[i].ID == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeExitRepo struct {
	exits []entity.Exit
}

func (f *fakeExitRepo) Create(x *entity.Exit) error {
	f.exits = append(f.exits, *x)
	return nil
}
func (f *fakeExitRepo) GetByID(id string) (*entity.Exit, error) {
	for i := range f.exits {
		if f.exits[i].ID == id {
			return &f.exits[i], nil
		}
	}
	return nil, nil
}
func (f *fakeExitRepo) ListBySKU(sku string) ([]entity.Exit, error) {
	var out []entity.Exit
	for _, x := range f.exits {
		if x.SKU == sku {
			out = append(out, x)
		}
	}
	return out, nil
}
func (f *fakeExitRepo) List(sku string, limit, offset int) ([]entity.Exit, error) {
	return f.ListBySKU(sku)
}
func (f *fakeExitRepo) Delete(id string) error {
	for i := range f.exits {
		if f.exits[i].ID == id {
			f.exits = append(f.exits[:i], f.exits[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeTxRunner struct {
	entryRepo *fakeEntryRepo
	exitRepo  *fakeExitRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(repository.EntryRepository, repository.ExitRepository) error) error {
	return fn(f.entryRepo, f.exitRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	products *fakeProductRepo
	entries  *fakeEntryRepo
	exits    *fakeExitRepo
	query    *stock.StockUseCase
	register *stock.RegisterMovementUseCase
}

func newFixture() *fixture {
	products := &fakeProductRepo{products: map[string]*entity.Product{
		"CANETA": {ID: "p1", SKU: "CANETA", Name: "Caneta azul", MinStock: 3},
	}}
	entries := &fakeEntryRepo{}
	exits := &fakeExitRepo{}
	return &fixture{
		products: products,
		entries:  entries,
		exits:    exits,
		query:    stock.NewStockUseCase(products, entries, exits),
		register: stock.NewRegisterMovementUseCase(&fakeTxRunner{entryRepo: entries, exitRepo: exits}, products),
	}
}

func qty(n string) decimal.Decimal {
	d, _ := decimal.NewFromString(n)
	return d
}

var testDate = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestGetStock_ProdutoInexistente(t *testing.T) {
	f := newFixture()
	_, err := f.query.GetStock(context.Background(), "NAO-EXISTE")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetStock_CalculaSaldoEStatus(t *testing.T) {
	f := newFixture()
	f.entries.entries = []entity.Entry{
		{SKU: "CANETA", Quantity: 10, NF: "100", Date: testDate},
	}
	f.exits.exits = []entity.Exit{
		{SKU: "CANETA", Quantity: 8, NFOrigem: "100", Date: testDate.AddDate(0, 0, 1)},
	}

	resp, err := f.query.GetStock(context.Background(), "CANETA")
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Quantity)
	assert.Equal(t, "low", resp.Status, "2 < min_stock(3) deve classificar como low")
}

func TestGetLots_ExpoeDiagnosticoDeOrfas(t *testing.T) {
	f := newFixture()
	f.entries.entries = []entity.Entry{
		{SKU: "CANETA", Quantity: 5, NF: "100", Date: testDate},
	}
	f.exits.exits = []entity.Exit{
		{SKU: "CANETA", Quantity: 3, NFOrigem: "999", Date: testDate.AddDate(0, 0, 1)},
	}

	resp, err := f.query.GetLots(context.Background(), "CANETA")
	require.NoError(t, err)
	require.Len(t, resp.Lots, 1)
	assert.Equal(t, 5, resp.Lots[0].Remaining, "saída órfã não toca o detalhe por lote")
	require.NotNil(t, resp.Diagnostics)
	require.Len(t, resp.Diagnostics.Orphans, 1)
	assert.Equal(t, "999", resp.Diagnostics.Orphans[0].Ref)
}

func TestGetLots_SemAnomaliasNaoTemDiagnostico(t *testing.T) {
	f := newFixture()
	f.entries.entries = []entity.Entry{
		{SKU: "CANETA", Quantity: 5, NF: "100", Date: testDate},
	}

	resp, err := f.query.GetLots(context.Background(), "CANETA")
	require.NoError(t, err)
	assert.Nil(t, resp.Diagnostics)
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro de movimentos
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterEntry_TruncaQuantidadeFracionaria(t *testing.T) {
	f := newFixture()
	resp, err := f.register.RegisterEntry(context.Background(), "u1", dto.RegisterEntryRequest{
		SKU:      "CANETA",
		Quantity: qty("7.9"),
		NF:       "100",
	})
	require.NoError(t, err)
	assert.Equal(t, 7, resp.Quantity, "fração é truncada na borda, o domínio só vê inteiros")
}

func TestRegisterMovement_RespostaIncluiAutor(t *testing.T) {
	f := newFixture()
	entry, err := f.register.RegisterEntry(context.Background(), "u1", dto.RegisterEntryRequest{
		SKU:      "CANETA",
		Quantity: qty("10"),
		NF:       "100",
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", entry.CreatedBy)

	exit, err := f.register.RegisterExit(context.Background(), "u2", dto.RegisterExitRequest{
		SKU:      "CANETA",
		Quantity: qty("4"),
		NFOrigem: "100",
	})
	require.NoError(t, err)
	assert.Equal(t, "u2", exit.CreatedBy)
}

func TestRegisterEntry_QuantidadeInvalida(t *testing.T) {
	f := newFixture()
	_, err := f.register.RegisterEntry(context.Background(), "u1", dto.RegisterEntryRequest{
		SKU:      "CANETA",
		Quantity: qty("0.5"), // trunca para zero
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterExit_LoteDesconhecidoERejeitado(t *testing.T) {
	f := newFixture()
	f.entries.entries = []entity.Entry{
		{SKU: "CANETA", Quantity: 5, NF: "100", Date: testDate},
	}
	_, err := f.register.RegisterExit(context.Background(), "u1", dto.RegisterExitRequest{
		SKU:      "CANETA",
		Quantity: qty("2"),
		NFOrigem: "999",
	})
	assert.ErrorIs(t, err, domain.ErrLotNotFound)
	assert.Empty(t, f.exits.exits, "nada deve ser gravado quando a checagem falha")
}

func TestRegisterExit_SaldoDoLoteInsuficiente(t *testing.T) {
	f := newFixture()
	f.entries.entries = []entity.Entry{
		{SKU: "CANETA", Quantity: 5, NF: "100", Date: testDate},
	}
	_, err := f.register.RegisterExit(context.Background(), "u1", dto.RegisterExitRequest{
		SKU:      "CANETA",
		Quantity: qty("6"),
		NFOrigem: "100",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestRegisterExit_SemNFChecaSaldoAgregado(t *testing.T) {
	f := newFixture()
	f.entries.entries = []entity.Entry{
		{SKU: "CANETA", Quantity: 3, NF: "100", Date: testDate},
		{SKU: "CANETA", Quantity: 3, NF: "200", Date: testDate.AddDate(0, 0, 1)},
	}

	_, err := f.register.RegisterExit(context.Background(), "u1", dto.RegisterExitRequest{
		SKU:      "CANETA",
		Quantity: qty("5"),
	})
	require.NoError(t, err, "5 <= 6: a baixa sem NF cabe no saldo agregado")

	_, err = f.register.RegisterExit(context.Background(), "u1", dto.RegisterExitRequest{
		SKU:      "CANETA",
		Quantity: qty("2"),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock, "restou 1, uma baixa de 2 deve ser rejeitada")
}

func TestRegisterExit_SaidaDiretaRefleteNoSaldo(t *testing.T) {
	f := newFixture()
	f.entries.entries = []entity.Entry{
		{SKU: "CANETA", Quantity: 10, NF: "100", Date: testDate},
	}

	resp, err := f.register.RegisterExit(context.Background(), "u1", dto.RegisterExitRequest{
		SKU:      "CANETA",
		Quantity: qty("4"),
		NFOrigem: "100",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, resp.Quantity)

	snap, err := f.query.GetStock(context.Background(), "CANETA")
	require.NoError(t, err)
	assert.Equal(t, 6, snap.Quantity)

	lots, err := f.query.GetLots(context.Background(), "CANETA")
	require.NoError(t, err)
	require.Len(t, lots.Lots, 1)
	assert.Equal(t, "100", lots.Lots[0].Label)
	assert.Equal(t, 6, lots.Lots[0].Remaining)
}

func TestDeleteEntry_RecalculoRefleteExclusao(t *testing.T) {
	f := newFixture()
	f.entries.entries = []entity.Entry{
		{ID: "e1", SKU: "CANETA", Quantity: 10, NF: "100", Date: testDate},
	}

	require.NoError(t, f.register.DeleteEntry(context.Background(), "e1"))

	snap, err := f.query.GetStock(context.Background(), "CANETA")
	require.NoError(t, err)
	assert.Equal(t, 0, snap.Quantity)
	assert.Equal(t, "empty", snap.Status)
}

func TestDeleteEntry_Inexistente(t *testing.T) {
	f := newFixture()
	err := f.register.DeleteEntry(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
