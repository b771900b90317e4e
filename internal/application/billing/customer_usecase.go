package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/facturacion-api/internal/application/dto"
	"github.com/jhoicas/facturacion-api/internal/application/ports"
	"github.com/jhoicas/facturacion-api/internal/application/tenant"
	"github.com/jhoicas/facturacion-api/internal/domain"
	"github.com/jhoicas/facturacion-api/internal/domain/entity"
)

// CustomerUseCase casos de uso para clientes. Clave natural: email dentro de la empresa.
type CustomerUseCase struct {
	scope *tenant.Scope
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(scope *tenant.Scope) *CustomerUseCase {
	return &CustomerUseCase{scope: scope}
}

// ListForSelected lista los clientes de la empresa activa (lectura cacheada).
func (uc *CustomerUseCase) ListForSelected(ctx context.Context, userID string) ([]dto.CustomerResponse, error) {
	company, err := uc.scope.SelectedCompany(ctx, userID)
	if err != nil {
		return nil, err
	}
	key := ports.ListKey(ports.ScopeCustomers, userID, company.ID)
	return tenant.ReadThrough(ctx, uc.scope, key, func() ([]dto.CustomerResponse, error) {
		return uc.appendCustomers(ctx, company.ID, make([]dto.CustomerResponse, 0))
	})
}

// ListAll concatena los clientes de todas las empresas del usuario, en el orden de las empresas.
func (uc *CustomerUseCase) ListAll(ctx context.Context, userID string) ([]dto.CustomerResponse, error) {
	companies, err := uc.scope.OwnedCompanies(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0)
	for _, c := range companies {
		if out, err = uc.appendCustomers(ctx, c.ID, out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (uc *CustomerUseCase) appendCustomers(ctx context.Context, companyID string, dst []dto.CustomerResponse) ([]dto.CustomerResponse, error) {
	list, err := uc.scope.Store.Customers().ListByCompany(ctx, companyID, "")
	if err != nil {
		return nil, err
	}
	for _, c := range list {
		dst = append(dst, *dto.FromCustomer(c))
	}
	return dst, nil
}

// Add crea un cliente en la empresa activa. domain.ErrDuplicate si el email ya existe en ella.
func (uc *CustomerUseCase) Add(ctx context.Context, userID string, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	company, err := uc.scope.SelectedCompany(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.insert(ctx, userID, company.ID, in)
}

// Update sobrescribe el cliente por id. domain.ErrCustomerNotFound si no existe.
func (uc *CustomerUseCase) Update(ctx context.Context, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.scope.Store.Customers().GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	customer.Name = in.Name
	customer.Email = in.Email
	customer.Phone = in.Phone
	customer.CustomerCompany = in.CustomerCompany
	customer.GSTIN = in.GSTIN
	customer.State = in.State
	customer.Address = in.Address
	customer.UpdatedAt = time.Now()
	if err := uc.scope.Store.Customers().Update(ctx, customer); err != nil {
		return nil, err
	}
	uc.scope.InvalidateCompany(ctx, customer.CompanyID)
	return dto.FromCustomer(customer), nil
}

// Remove borra el cliente si ninguna factura lo referencia (domain.ErrHasInvoices).
func (uc *CustomerUseCase) Remove(ctx context.Context, id string) error {
	n, err := uc.scope.Store.Invoices().CountByCustomer(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrHasInvoices
	}
	customer, err := uc.scope.Store.Customers().GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrCustomerNotFound
	}
	if err := uc.scope.Store.Customers().Delete(ctx, id); err != nil {
		return err
	}
	uc.scope.InvalidateCompany(ctx, customer.CompanyID)
	return nil
}

// Import inserta el cliente en la empresa indicada por nombre.
// domain.ErrCompanyNotFound si la empresa no es del usuario; domain.ErrDuplicate si ya existe.
func (uc *CustomerUseCase) Import(ctx context.Context, userID string, in dto.CustomerImport) (*dto.CustomerResponse, error) {
	company, err := uc.scope.CompanyByName(ctx, userID, in.CompanyName)
	if err != nil {
		return nil, err
	}
	return uc.insert(ctx, userID, company.ID, in.CustomerRequest)
}

func (uc *CustomerUseCase) insert(ctx context.Context, userID, companyID string, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	existing, err := uc.scope.Store.Customers().GetByCompanyAndEmail(ctx, companyID, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:              uuid.New().String(),
		CompanyID:       companyID,
		Name:            in.Name,
		Email:           in.Email,
		Phone:           in.Phone,
		CustomerCompany: in.CustomerCompany,
		GSTIN:           in.GSTIN,
		State:           in.State,
		Address:         in.Address,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.scope.Store.Customers().Create(ctx, customer); err != nil {
		return nil, err
	}
	uc.scope.Invalidate(ctx, userID, companyID)
	return dto.FromCustomer(customer), nil
}
