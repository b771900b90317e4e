// Package memory implementa los puertos de persistencia en memoria (desarrollo y tests).
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/facturacion-api/internal/domain/entity"
	"github.com/jhoicas/facturacion-api/internal/domain/repository"
)

var (
	_ repository.Store    = (*Store)(nil)
	_ repository.TxRunner = (*Store)(nil)
)

// state guarda cada tabla como slice en orden de inserción (orden natural del almacén).
type state struct {
	users     []entity.User
	companies []entity.Company
	customers []entity.Customer
	items     []entity.Item
	invoices  []entity.Invoice
}

func (s state) clone() state {
	return state{
		users:     append([]entity.User(nil), s.users...),
		companies: append([]entity.Company(nil), s.companies...),
		customers: append([]entity.Customer(nil), s.customers...),
		items:     append([]entity.Item(nil), s.items...),
		invoices:  append([]entity.Invoice(nil), s.invoices...),
	}
}

// Store almacén en memoria. Implementa repository.Store y repository.TxRunner.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex
	data state

	// journal != nil marca la vista de una transacción abierta: trabaja sobre su copia
	// y registra cada escritura para reaplicarla sobre el almacén al confirmar.
	journal *[]func(d *state) error
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{}
}

func (s *Store) Users() repository.UserRepository         { return userRepo{s} }
func (s *Store) Companies() repository.CompanyRepository { return companyRepo{s} }
func (s *Store) Customers() repository.CustomerRepository { return customerRepo{s} }
func (s *Store) Items() repository.ItemRepository         { return itemRepo{s} }
func (s *Store) Invoices() repository.InvoiceRepository   { return invoiceRepo{s} }

// RunInTx ejecuta fn sobre una copia del estado. Si fn termina sin error, sus escrituras se
// reaplican de forma atómica sobre el estado vivo; si alguna falla, el estado queda intacto.
// Las escrituras de fuera de la transacción nunca se pierden.
func (s *Store) RunInTx(ctx context.Context, fn func(tx repository.Store) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	view := &Store{data: s.data.clone(), journal: new([]func(d *state) error)}
	s.mu.RUnlock()

	if err := fn(view); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	backup := s.data.clone()
	for _, w := range *view.journal {
		if err := w(&s.data); err != nil {
			s.data = backup
			return err
		}
	}
	return nil
}

func (s *Store) read(fn func(d *state)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.data)
}

func (s *Store) write(fn func(d *state) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(&s.data); err != nil {
		return err
	}
	if s.journal != nil {
		*s.journal = append(*s.journal, fn)
	}
	return nil
}
