package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/estoquepro/estoque-api/internal/domain/entity"
	"github.com/estoquepro/estoque-api/internal/domain/repository"
)

var _ repository.EntryRepository = (*EntryRepo)(nil)

// EntryRepo implementação de EntryRepository sobre PostgreSQL (usável com pool ou tx).
type EntryRepo struct {
	q Querier
}

// NewEntryRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewEntryRepository(q Querier) *EntryRepo {
	return &EntryRepo{q: q}
}

// Create persiste uma entrada de estoque.
func (r *EntryRepo) Create(entry *entity.Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	query := `
		INSERT INTO entries (id, sku, quantity, nf, date, location, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	createdBy := (*string)(nil)
	if entry.CreatedBy != "" {
		createdBy = &entry.CreatedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.SKU, entry.Quantity, entry.NF, entry.Date, entry.Location,
		entry.CreatedAt, createdBy,
	)
	if err != nil {
		return fmt.Errorf("create entry: %w", err)
	}
	return nil
}

// GetByID obtém uma entrada por ID.
func (r *EntryRepo) GetByID(id string) (*entity.Entry, error) {
	query := `
		SELECT id, sku, quantity, nf, date, location, created_at, created_by
		FROM entries WHERE id = $1`
	e, err := scanEntry(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return e, nil
}

// ListBySKU devolve todas as entradas de um SKU, sem garantia de ordem; a
// reconciliação não depende da ordenação do log.
func (r *EntryRepo) ListBySKU(sku string) ([]entity.Entry, error) {
	query := `
		SELECT id, sku, quantity, nf, date, location, created_at, created_by
		FROM entries WHERE sku = $1`
	rows, err := r.q.Query(context.Background(), query, sku)
	if err != nil {
		return nil, fmt.Errorf("list entries by sku: %w", err)
	}
	defer rows.Close()
	return collectEntries(rows)
}

// List lista entradas (opcionalmente por SKU) paginadas, mais recentes primeiro.
func (r *EntryRepo) List(sku string, limit, offset int) ([]entity.Entry, error) {
	query := `
		SELECT id, sku, quantity, nf, date, location, created_at, created_by
		FROM entries`
	args := []any{}
	pos := 1
	if sku != "" {
		query += fmt.Sprintf(" WHERE sku = $%d", pos)
		args = append(args, sku)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY date DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()
	return collectEntries(rows)
}

// Delete remove uma entrada do log; o próximo recálculo reflete a exclusão.
func (r *EntryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

func scanEntry(row pgx.Row) (*entity.Entry, error) {
	var e entity.Entry
	var qty *decimal.Decimal
	var nf, location, createdBy *string
	if err := row.Scan(&e.ID, &e.SKU, &qty, &nf, &e.Date, &location, &e.CreatedAt, &createdBy); err != nil {
		return nil, err
	}
	e.Quantity = intQty(qty)
	e.NF = strOrEmpty(nf)
	e.Location = strOrEmpty(location)
	e.CreatedBy = strOrEmpty(createdBy)
	return &e, nil
}

func collectEntries(rows pgx.Rows) ([]entity.Entry, error) {
	var list []entity.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		list = append(list, *e)
	}
	return list, rows.Err()
}
