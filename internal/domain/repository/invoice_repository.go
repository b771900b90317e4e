package repository

import (
	"context"

	"github.com/jhoicas/facturacion-api/internal/domain/entity"
)

// InvoiceFilter filtra filas de factura. Los campos vacíos no filtran.
type InvoiceFilter struct {
	CompanyID     string
	CustomerID    string
	ItemID        string
	InvoiceNumber string
}

// InvoiceRepository define el puerto de persistencia para las filas de factura.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	List(ctx context.Context, f InvoiceFilter) ([]*entity.Invoice, error)
	// ListViews devuelve las filas con nombres de empresa, cliente e ítem ya resueltos.
	ListViews(ctx context.Context, f InvoiceFilter) ([]*entity.InvoiceView, error)
	ExistsByCompanyAndNumber(ctx context.Context, companyID, number string) (bool, error)
	ExistsByItemAndNumber(ctx context.Context, itemID, number string) (bool, error)
	CountByCompany(ctx context.Context, companyID string) (int, error)
	CountByCustomer(ctx context.Context, customerID string) (int, error)
	CountByItem(ctx context.Context, itemID string) (int, error)
	DeleteByCompanyAndNumber(ctx context.Context, companyID, number string) (int64, error)
}
