package repository

import (
	"context"

	"github.com/jhoicas/facturacion-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get* devuelven (nil, nil) cuando no existe el registro.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByResetOTP(ctx context.Context, otp string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	// VerifyByOTP marca como verificado al primer usuario cuyo código coincide y limpia el código.
	VerifyByOTP(ctx context.Context, otp string) (*entity.User, error)
	SetCompanyExisting(ctx context.Context, userID string, existing bool) error
}
