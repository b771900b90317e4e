package memory

import (
	"context"
	"time"

	"github.com/jhoicas/facturacion-api/internal/domain"
	"github.com/jhoicas/facturacion-api/internal/domain/entity"
)

type companyRepo struct{ s *Store }

func (r companyRepo) Create(_ context.Context, c *entity.Company) error {
	return r.s.write(func(d *state) error {
		for _, x := range d.companies {
			if x.UserID == c.UserID && x.Name == c.Name {
				return domain.ErrDuplicate
			}
		}
		d.companies = append(d.companies, *c)
		return nil
	})
}

func (r companyRepo) find(match func(c *entity.Company) bool) *entity.Company {
	var out *entity.Company
	r.s.read(func(d *state) {
		for i := range d.companies {
			if match(&d.companies[i]) {
				c := d.companies[i]
				out = &c
				return
			}
		}
	})
	return out
}

func (r companyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	return r.find(func(c *entity.Company) bool { return c.ID == id }), nil
}

func (r companyRepo) GetByUserAndName(_ context.Context, userID, name string) (*entity.Company, error) {
	return r.find(func(c *entity.Company) bool { return c.UserID == userID && c.Name == name }), nil
}

func (r companyRepo) GetSelected(_ context.Context, userID string) (*entity.Company, error) {
	return r.find(func(c *entity.Company) bool { return c.UserID == userID && c.Selected }), nil
}

func (r companyRepo) GetSibling(_ context.Context, userID, excludeID string) (*entity.Company, error) {
	return r.find(func(c *entity.Company) bool { return c.UserID == userID && c.ID != excludeID }), nil
}

func (r companyRepo) ListByUser(_ context.Context, userID string) ([]*entity.Company, error) {
	var out []*entity.Company
	r.s.read(func(d *state) {
		for _, c := range d.companies {
			if c.UserID == userID {
				out = append(out, &c)
			}
		}
	})
	return out, nil
}

func (r companyRepo) Update(_ context.Context, c *entity.Company) error {
	return r.s.write(func(d *state) error {
		for i := range d.companies {
			cur := &d.companies[i]
			if cur.ID != c.ID {
				continue
			}
			for j, x := range d.companies {
				if j != i && x.UserID == cur.UserID && x.Name == c.Name {
					return domain.ErrDuplicate
				}
			}
			cur.Name = c.Name
			cur.GSTNumber = c.GSTNumber
			cur.Phone = c.Phone
			cur.Email = c.Email
			cur.PlaceOfSupply = c.PlaceOfSupply
			cur.Address = c.Address
			cur.State = c.State
			cur.UpdatedAt = c.UpdatedAt
			return nil
		}
		return domain.ErrCompanyNotFound
	})
}

func (r companyRepo) UnselectAll(_ context.Context, userID string) error {
	return r.s.write(func(d *state) error {
		now := time.Now()
		for i := range d.companies {
			if d.companies[i].UserID == userID && d.companies[i].Selected {
				d.companies[i].Selected = false
				d.companies[i].UpdatedAt = now
			}
		}
		return nil
	})
}

func (r companyRepo) SelectByName(_ context.Context, userID, name string) error {
	return r.s.write(func(d *state) error {
		now := time.Now()
		for i := range d.companies {
			c := &d.companies[i]
			if c.UserID != userID {
				continue
			}
			if sel := c.Name == name; sel != c.Selected {
				c.Selected = sel
				c.UpdatedAt = now
			}
		}
		return nil
	})
}

func (r companyRepo) SetSelected(_ context.Context, id string, selected bool) error {
	return r.s.write(func(d *state) error {
		for i := range d.companies {
			if d.companies[i].ID == id {
				d.companies[i].Selected = selected
				d.companies[i].UpdatedAt = time.Now()
			}
		}
		return nil
	})
}

func (r companyRepo) Delete(_ context.Context, id string) error {
	return r.s.write(func(d *state) error {
		d.companies = deleteWhere(d.companies, func(c entity.Company) bool { return c.ID == id })
		return nil
	})
}

// deleteWhere devuelve una copia del slice sin los elementos que cumplen drop.
func deleteWhere[T any](in []T, drop func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if !drop(v) {
			out = append(out, v)
		}
	}
	return out
}
