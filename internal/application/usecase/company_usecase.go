package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/facturacion-api/internal/application/dto"
	"github.com/jhoicas/facturacion-api/internal/application/ports"
	"github.com/jhoicas/facturacion-api/internal/application/tenant"
	"github.com/jhoicas/facturacion-api/internal/domain"
	"github.com/jhoicas/facturacion-api/internal/domain/entity"
	"github.com/jhoicas/facturacion-api/internal/domain/repository"
)

// CompanyUseCase reglas del registro de empresas: una sola seleccionada por usuario y borrado protegido.
type CompanyUseCase struct {
	scope *tenant.Scope
	tx    repository.TxRunner
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(scope *tenant.Scope, tx repository.TxRunner) *CompanyUseCase {
	return &CompanyUseCase{scope: scope, tx: tx}
}

// ExistingFlag devuelve el flag company_existing del usuario. domain.ErrUserNotFound si ya no existe.
func (uc *CompanyUseCase) ExistingFlag(ctx context.Context, userID string) (*dto.CompanyExistingResponse, error) {
	user, err := uc.scope.Store.Users().GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return &dto.CompanyExistingResponse{CompanyExisting: dto.YesNo(user.CompanyExisting)}, nil
}

// Create crea la empresa y la deja como única seleccionada. domain.ErrDuplicate si el nombre ya existe para el usuario.
// Desmarcar hermanas, marcar al usuario e insertar ocurren en una sola transacción.
func (uc *CompanyUseCase) Create(ctx context.Context, userID string, in dto.CompanyRequest) (*dto.CompanyResponse, error) {
	existing, err := uc.scope.Store.Companies().GetByUserAndName(ctx, userID, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	company := newCompany(userID, in, true)
	err = uc.tx.RunInTx(ctx, func(tx repository.Store) error {
		if err := tx.Companies().UnselectAll(ctx, userID); err != nil {
			return err
		}
		if err := tx.Users().SetCompanyExisting(ctx, userID, true); err != nil {
			return err
		}
		return tx.Companies().Create(ctx, company)
	})
	if err != nil {
		return nil, err
	}
	uc.scope.Invalidate(ctx, userID, "")
	return dto.FromCompany(company), nil
}

// List lista las empresas del usuario (lectura cacheada).
func (uc *CompanyUseCase) List(ctx context.Context, userID string) ([]dto.CompanyResponse, error) {
	return tenant.ReadThrough(ctx, uc.scope, ports.CompaniesKey(userID), func() ([]dto.CompanyResponse, error) {
		list, err := uc.scope.Store.Companies().ListByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		out := make([]dto.CompanyResponse, 0, len(list))
		for _, c := range list {
			out = append(out, *dto.FromCompany(c))
		}
		return out, nil
	})
}

// GetSelected devuelve la empresa seleccionada; nil si no hay ninguna.
func (uc *CompanyUseCase) GetSelected(ctx context.Context, userID string) (*dto.CompanyResponse, error) {
	company, err := uc.scope.Store.Companies().GetSelected(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.FromCompany(company), nil
}

// Select cambia la empresa activa por nombre y la devuelve; nil si ningún nombre coincide
// (en ese caso el usuario queda sin empresa seleccionada).
func (uc *CompanyUseCase) Select(ctx context.Context, userID, name string) (*dto.CompanyResponse, error) {
	if err := uc.scope.Store.Companies().SelectByName(ctx, userID, name); err != nil {
		return nil, err
	}
	uc.scope.Invalidate(ctx, userID, "")
	company, err := uc.scope.Store.Companies().GetByUserAndName(ctx, userID, name)
	if err != nil {
		return nil, err
	}
	return dto.FromCompany(company), nil
}

// Update sobrescribe todos los campos editables. domain.ErrCompanyNotFound si el id no existe.
func (uc *CompanyUseCase) Update(ctx context.Context, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.scope.Store.Companies().GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}
	company.Name = in.Name
	company.GSTNumber = in.GSTNumber
	company.Phone = in.Phone
	company.Email = in.Email
	company.PlaceOfSupply = in.PlaceOfSupply
	company.Address = in.Address
	company.State = in.State
	company.UpdatedAt = time.Now()
	if err := uc.scope.Store.Companies().Update(ctx, company); err != nil {
		return nil, err
	}
	uc.scope.Invalidate(ctx, company.UserID, "")
	uc.scope.Invalidate(ctx, company.UserID, company.ID)
	return dto.FromCompany(company), nil
}

// Remove borra la empresa si no tiene facturas, ítems ni clientes (en ese orden de comprobación).
// Si era la seleccionada, se promueve otra del mismo dueño o se apaga company_existing.
func (uc *CompanyUseCase) Remove(ctx context.Context, id string) error {
	store := uc.scope.Store
	guards := []struct {
		count func(context.Context, string) (int, error)
		err   error
	}{
		{store.Invoices().CountByCompany, domain.ErrHasInvoices},
		{store.Items().CountByCompany, domain.ErrHasItems},
		{store.Customers().CountByCompany, domain.ErrHasCustomers},
	}
	for _, g := range guards {
		n, err := g.count(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return g.err
		}
	}

	company, err := store.Companies().GetByID(ctx, id)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrCompanyNotFound
	}

	err = uc.tx.RunInTx(ctx, func(tx repository.Store) error {
		if company.Selected {
			sibling, err := tx.Companies().GetSibling(ctx, company.UserID, company.ID)
			if err != nil {
				return err
			}
			if sibling != nil {
				if err := tx.Companies().SetSelected(ctx, sibling.ID, true); err != nil {
					return err
				}
			} else if err := tx.Users().SetCompanyExisting(ctx, company.UserID, false); err != nil {
				return err
			}
		}
		return tx.Companies().Delete(ctx, company.ID)
	})
	if err != nil {
		return err
	}
	uc.scope.Invalidate(ctx, company.UserID, "")
	uc.scope.Invalidate(ctx, company.UserID, company.ID)
	return nil
}

// Import inserta la empresa con el flag de selección recibido, sin tocar hermanas ni el usuario.
// domain.ErrDuplicate si el nombre ya existe (el handler lo trata como aviso, no como conflicto).
func (uc *CompanyUseCase) Import(ctx context.Context, userID string, in dto.CompanyImport) (*dto.CompanyResponse, error) {
	existing, err := uc.scope.Store.Companies().GetByUserAndName(ctx, userID, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	company := newCompany(userID, in.CompanyRequest, bool(in.SelectedCompany))
	if err := uc.scope.Store.Companies().Create(ctx, company); err != nil {
		return nil, err
	}
	uc.scope.Invalidate(ctx, userID, "")
	return dto.FromCompany(company), nil
}

func newCompany(userID string, in dto.CompanyRequest, selected bool) *entity.Company {
	now := time.Now()
	return &entity.Company{
		ID:            uuid.New().String(),
		UserID:        userID,
		Name:          in.Name,
		GSTNumber:     in.GSTNumber,
		Phone:         in.Phone,
		Email:         in.Email,
		PlaceOfSupply: in.PlaceOfSupply,
		Address:       in.Address,
		State:         in.State,
		Selected:      selected,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
