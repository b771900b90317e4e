// Package analytics contiene los reportes y exportaciones de empresas, clientes, ítems y facturas.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/facturacion-api/internal/application/dto"
	"github.com/jhoicas/facturacion-api/internal/application/tenant"
	"github.com/jhoicas/facturacion-api/internal/domain"
	"github.com/jhoicas/facturacion-api/internal/domain/entity"
	"github.com/jhoicas/facturacion-api/internal/domain/repository"
)

// UserResolver devuelve el usuario del token. Solo se invoca cuando el reporte no trae companyId,
// de modo que un token inválido únicamente falla si hacía falta.
type UserResolver func() (string, error)

// ReportUseCase proyecciones de solo lectura etiquetadas con __typename.
//
// Conjunto de empresas candidatas:
//   - companyId explícito → esa empresa (sin comprobar el dueño).
//   - sin companyId → las empresas del usuario del token.
//
// El reporte de empresas además acepta customerId/itemId (customerId gana sobre itemId).
type ReportUseCase struct {
	scope *tenant.Scope
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(scope *tenant.Scope) *ReportUseCase {
	return &ReportUseCase{scope: scope}
}

// ── Companies ────────────────────────────────────────────────────────────────

// CompaniesReport resuelve el conjunto con precedencia companyId > customerId > itemId > token.
// Nunca devuelve domain.ErrCompaniesNotFound: sin empresas el resultado es vacío.
func (uc *ReportUseCase) CompaniesReport(ctx context.Context, user UserResolver, f dto.ReportFilter) ([]dto.CompanyReportRow, error) {
	store := uc.scope.Store
	var companies []*entity.Company
	switch {
	case f.CompanyID != "":
		c, err := store.Companies().GetByID(ctx, f.CompanyID)
		if err != nil {
			return nil, err
		}
		if c != nil {
			companies = append(companies, c)
		}
	case f.CustomerID != "":
		customer, err := store.Customers().GetByID(ctx, f.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, fmt.Errorf("%w: cliente %s", domain.ErrCustomerNotFound, f.CustomerID)
		}
		if companies, err = uc.byID(ctx, customer.CompanyID); err != nil {
			return nil, err
		}
	case f.ItemID != "":
		item, err := store.Items().GetByID(ctx, f.ItemID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, fmt.Errorf("%w: ítem %s", domain.ErrItemNotFound, f.ItemID)
		}
		if companies, err = uc.byID(ctx, item.CompanyID); err != nil {
			return nil, err
		}
	default:
		userID, err := user()
		if err != nil {
			return nil, err
		}
		if companies, err = store.Companies().ListByUser(ctx, userID); err != nil {
			return nil, err
		}
	}
	return companyRows(companies), nil
}

// CompaniesExport todas las empresas del usuario del token.
func (uc *ReportUseCase) CompaniesExport(ctx context.Context, userID string) ([]dto.CompanyReportRow, error) {
	companies, err := uc.scope.Store.Companies().ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return companyRows(companies), nil
}

func (uc *ReportUseCase) byID(ctx context.Context, companyID string) ([]*entity.Company, error) {
	c, err := uc.scope.Store.Companies().GetByID(ctx, companyID)
	if err != nil || c == nil {
		return nil, err
	}
	return []*entity.Company{c}, nil
}

func companyRows(companies []*entity.Company) []dto.CompanyReportRow {
	out := make([]dto.CompanyReportRow, 0, len(companies))
	for _, c := range companies {
		out = append(out, dto.CompanyReportRow{CompanyResponse: *dto.FromCompany(c), TypeName: dto.TypeCompany})
	}
	return out
}

// ── Customers ────────────────────────────────────────────────────────────────

// CustomersReport clientes de las empresas candidatas, opcionalmente filtrados por customerId.
func (uc *ReportUseCase) CustomersReport(ctx context.Context, user UserResolver, f dto.ReportFilter) ([]dto.CustomerReportRow, error) {
	companies, err := uc.candidates(ctx, user, f.CompanyID)
	if err != nil {
		return nil, err
	}
	return uc.customerRows(ctx, companies, f.CustomerID)
}

// CustomersExport clientes de todas las empresas del usuario.
func (uc *ReportUseCase) CustomersExport(ctx context.Context, userID string) ([]dto.CustomerReportRow, error) {
	companies, err := uc.scope.OwnedCompanies(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.customerRows(ctx, companies, "")
}

func (uc *ReportUseCase) customerRows(ctx context.Context, companies []*entity.Company, customerID string) ([]dto.CustomerReportRow, error) {
	out := make([]dto.CustomerReportRow, 0)
	for _, company := range companies {
		list, err := uc.scope.Store.Customers().ListByCompany(ctx, company.ID, customerID)
		if err != nil {
			return nil, err
		}
		for _, c := range list {
			out = append(out, dto.CustomerReportRow{
				CustomerResponse: *dto.FromCustomer(c),
				CompanyName:      company.Name,
				TypeName:         dto.TypeCustomersWithCompany,
			})
		}
	}
	return out, nil
}

// ── Items ────────────────────────────────────────────────────────────────────

// ItemsReport ítems de las empresas candidatas, opcionalmente filtrados por itemId.
func (uc *ReportUseCase) ItemsReport(ctx context.Context, user UserResolver, f dto.ReportFilter) ([]dto.ItemReportRow, error) {
	companies, err := uc.candidates(ctx, user, f.CompanyID)
	if err != nil {
		return nil, err
	}
	return uc.itemRows(ctx, companies, f.ItemID)
}

// ItemsExport ítems de todas las empresas del usuario.
func (uc *ReportUseCase) ItemsExport(ctx context.Context, userID string) ([]dto.ItemReportRow, error) {
	companies, err := uc.scope.OwnedCompanies(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.itemRows(ctx, companies, "")
}

func (uc *ReportUseCase) itemRows(ctx context.Context, companies []*entity.Company, itemID string) ([]dto.ItemReportRow, error) {
	out := make([]dto.ItemReportRow, 0)
	for _, company := range companies {
		list, err := uc.scope.Store.Items().ListByCompany(ctx, company.ID, itemID)
		if err != nil {
			return nil, err
		}
		for _, it := range list {
			out = append(out, dto.ItemReportRow{
				ItemResponse: *dto.FromItem(it),
				CompanyName:  company.Name,
				TypeName:     dto.TypeItemsWithCompany,
			})
		}
	}
	return out, nil
}

// ── Invoices ─────────────────────────────────────────────────────────────────

// InvoicesReport filas de factura de las empresas candidatas, filtradas por customerId y/o itemId.
func (uc *ReportUseCase) InvoicesReport(ctx context.Context, user UserResolver, f dto.ReportFilter) ([]dto.InvoiceReportRow, error) {
	companies, err := uc.candidates(ctx, user, f.CompanyID)
	if err != nil {
		return nil, err
	}
	return uc.invoiceRows(ctx, companies, f.CustomerID, f.ItemID)
}

// InvoicesExport filas de factura de todas las empresas del usuario.
func (uc *ReportUseCase) InvoicesExport(ctx context.Context, userID string) ([]dto.InvoiceReportRow, error) {
	companies, err := uc.scope.OwnedCompanies(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.invoiceRows(ctx, companies, "", "")
}

func (uc *ReportUseCase) invoiceRows(ctx context.Context, companies []*entity.Company, customerID, itemID string) ([]dto.InvoiceReportRow, error) {
	out := make([]dto.InvoiceReportRow, 0)
	for _, company := range companies {
		views, err := uc.scope.Store.Invoices().ListViews(ctx, repository.InvoiceFilter{
			CompanyID:  company.ID,
			CustomerID: customerID,
			ItemID:     itemID,
		})
		if err != nil {
			return nil, err
		}
		for _, v := range views {
			out = append(out, dto.InvoiceReportRow{
				InvoiceResponse: *dto.FromInvoice(&v.Invoice),
				Rate:            v.Rate,
				CompanyName:     v.CompanyName,
				ItemName:        v.ItemName,
				CustomerName:    v.CustomerName,
				TypeName:        dto.TypeInvoicesWithRelations,
			})
		}
	}
	return out, nil
}

// candidates resuelve las empresas de los reportes hijos. Sin resultado → domain.ErrCompaniesNotFound.
func (uc *ReportUseCase) candidates(ctx context.Context, user UserResolver, companyID string) ([]*entity.Company, error) {
	if companyID != "" {
		companies, err := uc.byID(ctx, companyID)
		if err != nil {
			return nil, err
		}
		if len(companies) == 0 {
			return nil, domain.ErrCompaniesNotFound
		}
		return companies, nil
	}
	userID, err := user()
	if err != nil {
		return nil, err
	}
	return uc.scope.OwnedCompanies(ctx, userID)
}
