package repository

import (
	"context"

	"github.com/jhoicas/facturacion-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer (facturación).
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	GetByCompanyAndEmail(ctx context.Context, companyID, email string) (*entity.Customer, error)
	GetByCompanyAndName(ctx context.Context, companyID, name string) (*entity.Customer, error)
	// ListByCompany lista en orden de inserción. customerID vacío = todos los clientes.
	ListByCompany(ctx context.Context, companyID, customerID string) ([]*entity.Customer, error)
	CountByCompany(ctx context.Context, companyID string) (int, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id string) error
}
