package memory

import (
	"context"

	"github.com/jhoicas/facturacion-api/internal/domain/entity"
	"github.com/jhoicas/facturacion-api/internal/domain/repository"
)

type invoiceRepo struct{ s *Store }

func matches(inv *entity.Invoice, f repository.InvoiceFilter) bool {
	return (f.CompanyID == "" || inv.CompanyID == f.CompanyID) &&
		(f.CustomerID == "" || inv.CustomerID == f.CustomerID) &&
		(f.ItemID == "" || inv.ItemID == f.ItemID) &&
		(f.InvoiceNumber == "" || inv.InvoiceNumber == f.InvoiceNumber)
}

func (r invoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	return r.s.write(func(d *state) error {
		d.invoices = append(d.invoices, *inv)
		return nil
	})
}

func (r invoiceRepo) List(_ context.Context, f repository.InvoiceFilter) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	r.s.read(func(d *state) {
		for _, inv := range d.invoices {
			if matches(&inv, f) {
				out = append(out, &inv)
			}
		}
	})
	return out, nil
}

// ListViews resuelve relaciones como un INNER JOIN: filas con referencias colgantes se omiten.
func (r invoiceRepo) ListViews(_ context.Context, f repository.InvoiceFilter) ([]*entity.InvoiceView, error) {
	var out []*entity.InvoiceView
	r.s.read(func(d *state) {
		for _, inv := range d.invoices {
			if !matches(&inv, f) {
				continue
			}
			co, cu, it := findCompany(d, inv.CompanyID), findCustomer(d, inv.CustomerID), findItem(d, inv.ItemID)
			if co == nil || cu == nil || it == nil {
				continue
			}
			out = append(out, &entity.InvoiceView{
				Invoice:      inv,
				CompanyName:  co.Name,
				CustomerName: cu.Name,
				ItemName:     it.Name,
				Rate:         it.Rate,
			})
		}
	})
	return out, nil
}

func findCompany(d *state, id string) *entity.Company {
	for i := range d.companies {
		if d.companies[i].ID == id {
			return &d.companies[i]
		}
	}
	return nil
}

func findCustomer(d *state, id string) *entity.Customer {
	for i := range d.customers {
		if d.customers[i].ID == id {
			return &d.customers[i]
		}
	}
	return nil
}

func findItem(d *state, id string) *entity.Item {
	for i := range d.items {
		if d.items[i].ID == id {
			return &d.items[i]
		}
	}
	return nil
}

func (r invoiceRepo) count(f repository.InvoiceFilter) int {
	n := 0
	r.s.read(func(d *state) {
		for _, inv := range d.invoices {
			if matches(&inv, f) {
				n++
			}
		}
	})
	return n
}

func (r invoiceRepo) ExistsByCompanyAndNumber(_ context.Context, companyID, number string) (bool, error) {
	if companyID == "" {
		return false, nil
	}
	return r.count(repository.InvoiceFilter{CompanyID: companyID, InvoiceNumber: number}) > 0, nil
}

func (r invoiceRepo) ExistsByItemAndNumber(_ context.Context, itemID, number string) (bool, error) {
	if itemID == "" {
		return false, nil
	}
	return r.count(repository.InvoiceFilter{ItemID: itemID, InvoiceNumber: number}) > 0, nil
}

func (r invoiceRepo) CountByCompany(_ context.Context, companyID string) (int, error) {
	if companyID == "" {
		return 0, nil
	}
	return r.count(repository.InvoiceFilter{CompanyID: companyID}), nil
}

func (r invoiceRepo) CountByCustomer(_ context.Context, customerID string) (int, error) {
	if customerID == "" {
		return 0, nil
	}
	return r.count(repository.InvoiceFilter{CustomerID: customerID}), nil
}

func (r invoiceRepo) CountByItem(_ context.Context, itemID string) (int, error) {
	if itemID == "" {
		return 0, nil
	}
	return r.count(repository.InvoiceFilter{ItemID: itemID}), nil
}

func (r invoiceRepo) DeleteByCompanyAndNumber(_ context.Context, companyID, number string) (int64, error) {
	var n int64
	err := r.s.write(func(d *state) error {
		before := len(d.invoices)
		d.invoices = deleteWhere(d.invoices, func(inv entity.Invoice) bool {
			return inv.CompanyID == companyID && inv.InvoiceNumber == number
		})
		n = int64(before - len(d.invoices))
		return nil
	})
	return n, err
}
