package memory

import (
	"context"

	"github.com/jhoicas/facturacion-api/internal/domain"
	"github.com/jhoicas/facturacion-api/internal/domain/entity"
)

// ── Customers ────────────────────────────────────────────────────────────────

type customerRepo struct{ s *Store }

func (r customerRepo) Create(_ context.Context, c *entity.Customer) error {
	return r.s.write(func(d *state) error {
		for _, x := range d.customers {
			if x.CompanyID == c.CompanyID && x.Email == c.Email {
				return domain.ErrDuplicate
			}
		}
		d.customers = append(d.customers, *c)
		return nil
	})
}

func (r customerRepo) find(match func(c *entity.Customer) bool) *entity.Customer {
	var out *entity.Customer
	r.s.read(func(d *state) {
		for i := range d.customers {
			if match(&d.customers[i]) {
				c := d.customers[i]
				out = &c
				return
			}
		}
	})
	return out
}

func (r customerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	return r.find(func(c *entity.Customer) bool { return c.ID == id }), nil
}

func (r customerRepo) GetByCompanyAndEmail(_ context.Context, companyID, email string) (*entity.Customer, error) {
	return r.find(func(c *entity.Customer) bool { return c.CompanyID == companyID && c.Email == email }), nil
}

func (r customerRepo) GetByCompanyAndName(_ context.Context, companyID, name string) (*entity.Customer, error) {
	return r.find(func(c *entity.Customer) bool { return c.CompanyID == companyID && c.Name == name }), nil
}

func (r customerRepo) ListByCompany(_ context.Context, companyID, customerID string) ([]*entity.Customer, error) {
	var out []*entity.Customer
	r.s.read(func(d *state) {
		for _, c := range d.customers {
			if c.CompanyID == companyID && (customerID == "" || c.ID == customerID) {
				out = append(out, &c)
			}
		}
	})
	return out, nil
}

func (r customerRepo) CountByCompany(_ context.Context, companyID string) (int, error) {
	n := 0
	r.s.read(func(d *state) {
		for _, c := range d.customers {
			if c.CompanyID == companyID {
				n++
			}
		}
	})
	return n, nil
}

func (r customerRepo) Update(_ context.Context, c *entity.Customer) error {
	return r.s.write(func(d *state) error {
		for i := range d.customers {
			cur := &d.customers[i]
			if cur.ID != c.ID {
				continue
			}
			for j, x := range d.customers {
				if j != i && x.CompanyID == cur.CompanyID && x.Email == c.Email {
					return domain.ErrDuplicate
				}
			}
			cur.Name = c.Name
			cur.Email = c.Email
			cur.Phone = c.Phone
			cur.CustomerCompany = c.CustomerCompany
			cur.GSTIN = c.GSTIN
			cur.State = c.State
			cur.Address = c.Address
			cur.UpdatedAt = c.UpdatedAt
			return nil
		}
		return domain.ErrCustomerNotFound
	})
}

func (r customerRepo) Delete(_ context.Context, id string) error {
	return r.s.write(func(d *state) error {
		d.customers = deleteWhere(d.customers, func(c entity.Customer) bool { return c.ID == id })
		return nil
	})
}

// ── Items ────────────────────────────────────────────────────────────────────

type itemRepo struct{ s *Store }

func (r itemRepo) Create(_ context.Context, it *entity.Item) error {
	return r.s.write(func(d *state) error {
		for _, x := range d.items {
			if x.CompanyID == it.CompanyID && x.Name == it.Name {
				return domain.ErrDuplicate
			}
		}
		d.items = append(d.items, *it)
		return nil
	})
}

func (r itemRepo) find(match func(it *entity.Item) bool) *entity.Item {
	var out *entity.Item
	r.s.read(func(d *state) {
		for i := range d.items {
			if match(&d.items[i]) {
				it := d.items[i]
				out = &it
				return
			}
		}
	})
	return out
}

func (r itemRepo) GetByID(_ context.Context, id string) (*entity.Item, error) {
	return r.find(func(it *entity.Item) bool { return it.ID == id }), nil
}

func (r itemRepo) GetByCompanyAndName(_ context.Context, companyID, name string) (*entity.Item, error) {
	return r.find(func(it *entity.Item) bool { return it.CompanyID == companyID && it.Name == name }), nil
}

func (r itemRepo) ListByCompany(_ context.Context, companyID, itemID string) ([]*entity.Item, error) {
	var out []*entity.Item
	r.s.read(func(d *state) {
		for _, it := range d.items {
			if it.CompanyID == companyID && (itemID == "" || it.ID == itemID) {
				out = append(out, &it)
			}
		}
	})
	return out, nil
}

func (r itemRepo) CountByCompany(_ context.Context, companyID string) (int, error) {
	n := 0
	r.s.read(func(d *state) {
		for _, it := range d.items {
			if it.CompanyID == companyID {
				n++
			}
		}
	})
	return n, nil
}

func (r itemRepo) Update(_ context.Context, it *entity.Item) error {
	return r.s.write(func(d *state) error {
		for i := range d.items {
			cur := &d.items[i]
			if cur.ID != it.ID {
				continue
			}
			for j, x := range d.items {
				if j != i && x.CompanyID == cur.CompanyID && x.Name == it.Name {
					return domain.ErrDuplicate
				}
			}
			cur.Name = it.Name
			cur.Code = it.Code
			cur.Details = it.Details
			cur.HSNSAC = it.HSNSAC
			cur.Qty = it.Qty
			cur.Rate = it.Rate
			cur.UpdatedAt = it.UpdatedAt
			return nil
		}
		return domain.ErrItemNotFound
	})
}

func (r itemRepo) Delete(_ context.Context, id string) error {
	return r.s.write(func(d *state) error {
		d.items = deleteWhere(d.items, func(it entity.Item) bool { return it.ID == id })
		return nil
	})
}
