package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// isUniqueViolation verifica se um erro é violação de constraint única (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// intQty coage a quantidade vinda do banco para o inteiro do domínio:
// NULL conta como zero e frações são truncadas. Este é o único ponto onde a
// coerção acontece; o motor de reconciliação assume inteiros.
func intQty(d *decimal.Decimal) int {
	if d == nil {
		return 0
	}
	return int(d.IntPart())
}

// strOrEmpty coage colunas de texto anuláveis para string vazia.
func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
