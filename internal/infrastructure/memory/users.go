package memory

import (
	"context"
	"time"

	"github.com/jhoicas/facturacion-api/internal/domain"
	"github.com/jhoicas/facturacion-api/internal/domain/entity"
)

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, u *entity.User) error {
	return r.s.write(func(d *state) error {
		for _, x := range d.users {
			if x.Email == u.Email || x.Username == u.Username {
				return domain.ErrEmailAlreadyExists
			}
		}
		d.users = append(d.users, *u)
		return nil
	})
}

func (r userRepo) find(match func(u *entity.User) bool) *entity.User {
	var out *entity.User
	r.s.read(func(d *state) {
		for i := range d.users {
			if match(&d.users[i]) {
				u := d.users[i]
				out = &u
				return
			}
		}
	})
	return out
}

func (r userRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.ID == id }), nil
}

func (r userRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Email == email }), nil
}

func (r userRepo) GetByResetOTP(_ context.Context, otp string) (*entity.User, error) {
	if otp == "" {
		return nil, nil
	}
	return r.find(func(u *entity.User) bool { return u.ResetOTP == otp }), nil
}

func (r userRepo) List(_ context.Context) ([]*entity.User, error) {
	var out []*entity.User
	r.s.read(func(d *state) {
		for _, u := range d.users {
			out = append(out, &u)
		}
	})
	return out, nil
}

func (r userRepo) Update(_ context.Context, u *entity.User) error {
	return r.s.write(func(d *state) error {
		for i := range d.users {
			if d.users[i].ID != u.ID {
				continue
			}
			for j, x := range d.users {
				if j != i && (x.Email == u.Email || x.Username == u.Username) {
					return domain.ErrEmailAlreadyExists
				}
			}
			d.users[i] = *u
			return nil
		}
		return domain.ErrUserNotFound
	})
}

func (r userRepo) VerifyByOTP(_ context.Context, otp string) (*entity.User, error) {
	if otp == "" {
		return nil, nil
	}
	var out *entity.User
	err := r.s.write(func(d *state) error {
		for i := range d.users {
			if d.users[i].VerifyOTP == otp {
				d.users[i].Verified = true
				d.users[i].VerifyOTP = ""
				d.users[i].UpdatedAt = time.Now()
				u := d.users[i]
				out = &u
				return nil
			}
		}
		return nil
	})
	return out, err
}

func (r userRepo) SetCompanyExisting(_ context.Context, userID string, existing bool) error {
	return r.s.write(func(d *state) error {
		for i := range d.users {
			if d.users[i].ID == userID {
				d.users[i].CompanyExisting = existing
				d.users[i].UpdatedAt = time.Now()
			}
		}
		return nil
	})
}
