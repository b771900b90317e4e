package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/facturacion-api/internal/domain/repository"
)

var (
	_ repository.Store    = (*Store)(nil)
	_ repository.TxRunner = (*TxRunner)(nil)
)

// Store agrupa los repositorios sobre un mismo Querier (pool o tx).
type Store struct {
	users     *UserRepo
	companies *CompanyRepo
	customers *CustomerRepo
	items     *ItemRepo
	invoices  *InvoiceRepo
}

// NewStore construye el Store. Pasar pool o tx (Querier).
func NewStore(q Querier) *Store {
	return &Store{
		users:     NewUserRepository(q),
		companies: NewCompanyRepository(q),
		customers: NewCustomerRepository(q),
		items:     NewItemRepository(q),
		invoices:  NewInvoiceRepository(q),
	}
}

func (s *Store) Users() repository.UserRepository         { return s.users }
func (s *Store) Companies() repository.CompanyRepository { return s.companies }
func (s *Store) Customers() repository.CustomerRepository { return s.customers }
func (s *Store) Items() repository.ItemRepository         { return s.items }
func (s *Store) Invoices() repository.InvoiceRepository   { return s.invoices }

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunInTx inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) RunInTx(ctx context.Context, fn func(tx repository.Store) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewStore(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
