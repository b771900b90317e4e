package repository

import "context"

// Store agrupa los repositorios atados a una misma conexión o transacción.
type Store interface {
	Users() UserRepository
	Companies() CompanyRepository
	Customers() CustomerRepository
	Items() ItemRepository
	Invoices() InvoiceRepository
}

// TxRunner ejecuta fn con repositorios atados a una transacción: Commit si fn devuelve nil,
// Rollback en cualquier otro caso.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(tx Store) error) error
}
