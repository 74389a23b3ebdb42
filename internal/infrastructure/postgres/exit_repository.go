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

var _ repository.ExitRepository = (*ExitRepo)(nil)

// ExitRepo implementação de ExitRepository sobre PostgreSQL (usável com pool ou tx).
type ExitRepo struct {
	q Querier
}

// NewExitRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewExitRepository(q Querier) *ExitRepo {
	return &ExitRepo{q: q}
}

// Create persiste uma saída de estoque. NFOrigem vazia é gravada como NULL.
func (r *ExitRepo) Create(exit *entity.Exit) error {
	if exit.ID == "" {
		exit.ID = uuid.New().String()
	}
	query := `
		INSERT INTO exits (id, sku, quantity, nf_origem, date, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	nfOrigem := (*string)(nil)
	if exit.NFOrigem != "" {
		nfOrigem = &exit.NFOrigem
	}
	createdBy := (*string)(nil)
	if exit.CreatedBy != "" {
		createdBy = &exit.CreatedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		exit.ID, exit.SKU, exit.Quantity, nfOrigem, exit.Date, exit.CreatedAt, createdBy,
	)
	if err != nil {
		return fmt.Errorf("create exit: %w", err)
	}
	return nil
}

// GetByID obtém uma saída por ID.
func (r *ExitRepo) GetByID(id string) (*entity.Exit, error) {
	query := `
		SELECT id, sku, quantity, nf_origem, date, created_at, created_by
		FROM exits WHERE id = $1`
	x, err := scanExit(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get exit: %w", err)
	}
	return x, nil
}

// ListBySKU devolve todas as saídas de um SKU, sem garantia de ordem.
func (r *ExitRepo) ListBySKU(sku string) ([]entity.Exit, error) {
	query := `
		SELECT id, sku, quantity, nf_origem, date, created_at, created_by
		FROM exits WHERE sku = $1`
	rows, err := r.q.Query(context.Background(), query, sku)
	if err != nil {
		return nil, fmt.Errorf("list exits by sku: %w", err)
	}
	defer rows.Close()
	return collectExits(rows)
}

// List lista saídas (opcionalmente por SKU) paginadas, mais recentes primeiro.
func (r *ExitRepo) List(sku string, limit, offset int) ([]entity.Exit, error) {
	query := `
		SELECT id, sku, quantity, nf_origem, date, created_at, created_by
		FROM exits`
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
		return nil, fmt.Errorf("list exits: %w", err)
	}
	defer rows.Close()
	return collectExits(rows)
}

// Delete remove uma saída do log.
func (r *ExitRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM exits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete exit: %w", err)
	}
	return nil
}

func scanExit(row pgx.Row) (*entity.Exit, error) {
	var x entity.Exit
	var qty *decimal.Decimal
	var nfOrigem, createdBy *string
	if err := row.Scan(&x.ID, &x.SKU, &qty, &nfOrigem, &x.Date, &x.CreatedAt, &createdBy); err != nil {
		return nil, err
	}
	x.Quantity = intQty(qty)
	x.NFOrigem = strOrEmpty(nfOrigem)
	x.CreatedBy = strOrEmpty(createdBy)
	return &x, nil
}

func collectExits(rows pgx.Rows) ([]entity.Exit, error) {
	var list []entity.Exit
	for rows.Next() {
		x, err := scanExit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan exit: %w", err)
		}
		list = append(list, *x)
	}
	return list, rows.Err()
}
