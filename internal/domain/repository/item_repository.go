package repository

import (
	"context"

	"github.com/jhoicas/facturacion-api/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia para Item (DIP).
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	GetByCompanyAndName(ctx context.Context, companyID, name string) (*entity.Item, error)
	// ListByCompany lista en orden de inserción. itemID vacío = todos los ítems.
	ListByCompany(ctx context.Context, companyID, itemID string) ([]*entity.Item, error)
	CountByCompany(ctx context.Context, companyID string) (int, error)
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id string) error
}
