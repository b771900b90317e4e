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
)

// ItemUseCase catálogo de ítems por empresa. Clave natural: item_name dentro de la empresa.
type ItemUseCase struct {
	scope *tenant.Scope
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(scope *tenant.Scope) *ItemUseCase {
	return &ItemUseCase{scope: scope}
}

// ListForSelected lista los ítems de la empresa activa (lectura cacheada).
func (uc *ItemUseCase) ListForSelected(ctx context.Context, userID string) ([]dto.ItemResponse, error) {
	company, err := uc.scope.SelectedCompany(ctx, userID)
	if err != nil {
		return nil, err
	}
	key := ports.ListKey(ports.ScopeItems, userID, company.ID)
	return tenant.ReadThrough(ctx, uc.scope, key, func() ([]dto.ItemResponse, error) {
		return uc.appendItems(ctx, company.ID, make([]dto.ItemResponse, 0))
	})
}

// ListAll concatena los ítems de todas las empresas del usuario, en el orden de las empresas.
func (uc *ItemUseCase) ListAll(ctx context.Context, userID string) ([]dto.ItemResponse, error) {
	companies, err := uc.scope.OwnedCompanies(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0)
	for _, c := range companies {
		if out, err = uc.appendItems(ctx, c.ID, out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (uc *ItemUseCase) appendItems(ctx context.Context, companyID string, dst []dto.ItemResponse) ([]dto.ItemResponse, error) {
	list, err := uc.scope.Store.Items().ListByCompany(ctx, companyID, "")
	if err != nil {
		return nil, err
	}
	for _, it := range list {
		dst = append(dst, *dto.FromItem(it))
	}
	return dst, nil
}

// Add crea un ítem en la empresa activa. domain.ErrDuplicate si el nombre ya existe en ella.
func (uc *ItemUseCase) Add(ctx context.Context, userID string, in dto.ItemRequest) (*dto.ItemResponse, error) {
	company, err := uc.scope.SelectedCompany(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.insert(ctx, userID, company.ID, in)
}

// Update sobrescribe el ítem por id. domain.ErrItemNotFound si no existe.
func (uc *ItemUseCase) Update(ctx context.Context, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.scope.Store.Items().GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	item.Name = in.ItemName
	item.Code = in.ItemCode
	item.Details = in.ItemDetails
	item.HSNSAC = in.HSNSAC
	item.Qty = in.Qty
	item.Rate = in.Rate
	item.UpdatedAt = time.Now()
	if err := uc.scope.Store.Items().Update(ctx, item); err != nil {
		return nil, err
	}
	uc.scope.InvalidateCompany(ctx, item.CompanyID)
	return dto.FromItem(item), nil
}

// Remove borra el ítem si ninguna factura lo referencia (domain.ErrHasInvoices).
func (uc *ItemUseCase) Remove(ctx context.Context, id string) error {
	n, err := uc.scope.Store.Invoices().CountByItem(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrHasInvoices
	}
	item, err := uc.scope.Store.Items().GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrItemNotFound
	}
	if err := uc.scope.Store.Items().Delete(ctx, id); err != nil {
		return err
	}
	uc.scope.InvalidateCompany(ctx, item.CompanyID)
	return nil
}

// Import inserta el ítem en la empresa indicada por nombre.
// domain.ErrCompanyNotFound si la empresa no es del usuario; domain.ErrDuplicate si ya existe.
func (uc *ItemUseCase) Import(ctx context.Context, userID string, in dto.ItemImport) (*dto.ItemResponse, error) {
	company, err := uc.scope.CompanyByName(ctx, userID, in.CompanyName)
	if err != nil {
		return nil, err
	}
	return uc.insert(ctx, userID, company.ID, in.ItemRequest)
}

func (uc *ItemUseCase) insert(ctx context.Context, userID, companyID string, in dto.ItemRequest) (*dto.ItemResponse, error) {
	existing, err := uc.scope.Store.Items().GetByCompanyAndName(ctx, companyID, in.ItemName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	item := &entity.Item{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.ItemName,
		Code:      in.ItemCode,
		Details:   in.ItemDetails,
		HSNSAC:    in.HSNSAC,
		Qty:       in.Qty,
		Rate:      in.Rate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.scope.Store.Items().Create(ctx, item); err != nil {
		return nil, err
	}
	uc.scope.Invalidate(ctx, userID, companyID)
	return dto.FromItem(item), nil
}
