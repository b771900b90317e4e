package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier es el subconjunto común de *pgxpool.Pool y pgx.Tx que usan los repositorios.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// countQuery ejecuta un SELECT count(*) con un único argumento.
func countQuery(ctx context.Context, q Querier, query string, arg string) (int, error) {
	var n int
	if err := q.QueryRow(ctx, query, arg).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// validID indica si el texto es un UUID válido (las columnas id son UUID).
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
