package repository

import (
	"context"

	"github.com/jhoicas/facturacion-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	GetByUserAndName(ctx context.Context, userID, name string) (*entity.Company, error)
	GetSelected(ctx context.Context, userID string) (*entity.Company, error)
	// GetSibling devuelve otra empresa del mismo usuario distinta de excludeID (la más antigua).
	GetSibling(ctx context.Context, userID, excludeID string) (*entity.Company, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	UnselectAll(ctx context.Context, userID string) error
	// SelectByName deja seleccionada solo la empresa con ese nombre (ninguna si no coincide).
	SelectByName(ctx context.Context, userID, name string) error
	SetSelected(ctx context.Context, id string, selected bool) error
	Delete(ctx context.Context, id string) error
}
