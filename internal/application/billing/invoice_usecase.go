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
	"github.com/jhoicas/facturacion-api/internal/domain/repository"
)

// InvoiceUseCase libro de facturas por empresa. Una factura son N filas que comparten invoice_number.
type InvoiceUseCase struct {
	scope *tenant.Scope
	tx    repository.TxRunner
	now   func() time.Time
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(scope *tenant.Scope, tx repository.TxRunner) *InvoiceUseCase {
	return &InvoiceUseCase{scope: scope, tx: tx, now: time.Now}
}

// CreateBatch inserta un lote en la empresa activa. La unicidad se comprueba solo contra el número
// de la primera fila: si ya existe, domain.ErrDuplicate y no se inserta nada.
// invoice_date es siempre la hora del servidor; due_date se normaliza a ISO-8601 UTC.
func (uc *InvoiceUseCase) CreateBatch(ctx context.Context, userID string, inputs []dto.InvoiceInput) ([]dto.InvoiceResponse, error) {
	company, err := uc.scope.SelectedCompany(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(inputs) == 0 {
		return nil, domain.ErrInvalidInput
	}
	exists, err := uc.scope.Store.Invoices().ExistsByCompanyAndNumber(ctx, company.ID, inputs[0].InvoiceNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicate
	}

	now := uc.now()
	rows := make([]*entity.Invoice, 0, len(inputs))
	for _, in := range inputs {
		due, err := normalizeDate(in.DueDate)
		if err != nil {
			return nil, err
		}
		rows = append(rows, newInvoice(company.ID, in.CustomerID, in.ItemID, in.InvoiceNumber, now, due, in.InvoiceAmounts, now))
	}

	err = uc.tx.RunInTx(ctx, func(tx repository.Store) error {
		for _, inv := range rows {
			if err := tx.Invoices().Create(ctx, inv); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.scope.Invalidate(ctx, userID, company.ID)

	out := make([]dto.InvoiceResponse, 0, len(rows))
	for _, inv := range rows {
		out = append(out, *dto.FromInvoice(inv))
	}
	return out, nil
}

// ListByCompany lista las filas de la empresa activa con el nombre del cliente (un solo JOIN).
func (uc *InvoiceUseCase) ListByCompany(ctx context.Context, userID string) ([]dto.InvoiceWithCustomer, error) {
	company, err := uc.scope.SelectedCompany(ctx, userID)
	if err != nil {
		return nil, err
	}
	key := ports.ListKey(ports.ScopeInvoices, userID, company.ID)
	return tenant.ReadThrough(ctx, uc.scope, key, func() ([]dto.InvoiceWithCustomer, error) {
		views, err := uc.scope.Store.Invoices().ListViews(ctx, repository.InvoiceFilter{CompanyID: company.ID})
		if err != nil {
			return nil, err
		}
		out := make([]dto.InvoiceWithCustomer, 0, len(views))
		for _, v := range views {
			out = append(out, dto.InvoiceWithCustomer{
				InvoiceResponse: *dto.FromInvoice(&v.Invoice),
				CustomerName:    v.CustomerName,
			})
		}
		return out, nil
	})
}

// RemoveBatch borra todas las filas (empresa activa, número). Cero filas no es error.
func (uc *InvoiceUseCase) RemoveBatch(ctx context.Context, userID, number string) error {
	company, err := uc.scope.SelectedCompany(ctx, userID)
	if err != nil {
		return err
	}
	if _, err := uc.scope.Store.Invoices().DeleteByCompanyAndNumber(ctx, company.ID, number); err != nil {
		return err
	}
	uc.scope.Invalidate(ctx, userID, company.ID)
	return nil
}

// GetByNumber devuelve las filas del número en la empresa activa con sus relaciones completas.
// Sin filas devuelve un slice vacío.
func (uc *InvoiceUseCase) GetByNumber(ctx context.Context, userID, number string) ([]dto.InvoiceDetail, error) {
	company, err := uc.scope.SelectedCompany(ctx, userID)
	if err != nil {
		return nil, err
	}
	key := ports.InvoiceKey(userID, company.ID, number)
	return tenant.ReadThrough(ctx, uc.scope, key, func() ([]dto.InvoiceDetail, error) {
		return uc.details(ctx, company, number)
	})
}

func (uc *InvoiceUseCase) details(ctx context.Context, company *entity.Company, number string) ([]dto.InvoiceDetail, error) {
	rows, err := uc.scope.Store.Invoices().List(ctx, repository.InvoiceFilter{CompanyID: company.ID, InvoiceNumber: number})
	if err != nil {
		return nil, err
	}
	customers := map[string]*dto.CustomerResponse{}
	items := map[string]*dto.ItemResponse{}
	companyOut := dto.FromCompany(company)

	out := make([]dto.InvoiceDetail, 0, len(rows))
	for _, inv := range rows {
		cu, ok := customers[inv.CustomerID]
		if !ok {
			c, err := uc.scope.Store.Customers().GetByID(ctx, inv.CustomerID)
			if err != nil {
				return nil, err
			}
			cu = dto.FromCustomer(c)
			customers[inv.CustomerID] = cu
		}
		it, ok := items[inv.ItemID]
		if !ok {
			i, err := uc.scope.Store.Items().GetByID(ctx, inv.ItemID)
			if err != nil {
				return nil, err
			}
			it = dto.FromItem(i)
			items[inv.ItemID] = it
		}
		base := dto.FromInvoice(inv)
		out = append(out, dto.InvoiceDetail{
			ID:             base.ID,
			InvoiceNumber:  base.InvoiceNumber,
			InvoiceDate:    base.InvoiceDate,
			DueDate:        base.DueDate,
			InvoiceAmounts: base.InvoiceAmounts,
			Company:        companyOut,
			Customer:       cu,
			Item:           it,
		})
	}
	return out, nil
}

// Import inserta una fila resolviendo empresa, ítem y cliente por nombre, en ese orden.
// La unicidad se comprueba por (ítem, número), no por empresa. Duplicado → domain.ErrDuplicate.
func (uc *InvoiceUseCase) Import(ctx context.Context, userID string, in dto.InvoiceImport) (*dto.InvoiceResponse, error) {
	store := uc.scope.Store
	company, err := uc.scope.CompanyByName(ctx, userID, in.CompanyName)
	if err != nil {
		return nil, err
	}
	item, err := store.Items().GetByCompanyAndName(ctx, company.ID, in.ItemName)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	exists, err := store.Invoices().ExistsByItemAndNumber(ctx, item.ID, in.InvoiceNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicate
	}
	customer, err := store.Customers().GetByCompanyAndName(ctx, company.ID, in.CustomerName)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}

	invoiceDate, err := parseDate(in.InvoiceDate)
	if err != nil {
		return nil, err
	}
	due, err := normalizeDate(in.DueDate)
	if err != nil {
		return nil, err
	}
	inv := newInvoice(company.ID, customer.ID, item.ID, in.InvoiceNumber, invoiceDate, due, in.InvoiceAmounts, uc.now())
	if err := store.Invoices().Create(ctx, inv); err != nil {
		return nil, err
	}
	uc.scope.Invalidate(ctx, userID, company.ID)
	return dto.FromInvoice(inv), nil
}

func newInvoice(companyID, customerID, itemID, number string, date time.Time, due string, a dto.InvoiceAmounts, now time.Time) *entity.Invoice {
	return &entity.Invoice{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		CustomerID:    customerID,
		ItemID:        itemID,
		InvoiceNumber: number,
		InvoiceDate:   date,
		DueDate:       due,
		Qty:           a.Qty,
		Discount:      a.Discount,
		GST:           a.GST,
		Amount:        a.Amount,
		TotalAmount:   a.TotalAmount,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
