package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/facturacion-api/internal/domain"
	"github.com/jhoicas/facturacion-api/internal/domain/entity"
	"github.com/jhoicas/facturacion-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, username, email, password_hash, verified, verify_otp, reset_otp, company_existing, created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

func scanUser(row interface{ Scan(dest ...any) error }) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Verified,
		&u.VerifyOTP, &u.ResetOTP, &u.CompanyExisting, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persiste un nuevo usuario. Email o username repetido → domain.ErrEmailAlreadyExists.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.Username, user.Email, user.PasswordHash, user.Verified,
		user.VerifyOTP, user.ResetOTP, user.CompanyExisting, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepo) getOne(ctx context.Context, what, query string, arg string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by %s: %w", what, err)
	}
	return u, nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.getOne(ctx, "id", `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getOne(ctx, "email", `SELECT `+userColumns+` FROM users WHERE email = $1 LIMIT 1`, email)
}

// GetByResetOTP obtiene el usuario con ese código de reseteo pendiente.
func (r *UserRepo) GetByResetOTP(ctx context.Context, otp string) (*entity.User, error) {
	if otp == "" {
		return nil, nil
	}
	return r.getOne(ctx, "reset otp",
		`SELECT `+userColumns+` FROM users WHERE reset_otp = $1 ORDER BY created_at LIMIT 1`, otp)
}

// List devuelve todos los usuarios en orden de registro.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.q.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Update sobrescribe credencial, flags y códigos OTP.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users SET username = $2, email = $3, password_hash = $4, verified = $5,
		       verify_otp = $6, reset_otp = $7, company_existing = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.Username, user.Email, user.PasswordHash, user.Verified,
		user.VerifyOTP, user.ResetOTP, user.CompanyExisting, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// VerifyByOTP consume el código en una sola sentencia (find-and-update).
func (r *UserRepo) VerifyByOTP(ctx context.Context, otp string) (*entity.User, error) {
	if otp == "" {
		return nil, nil
	}
	query := `
		UPDATE users SET verified = true, verify_otp = '', updated_at = now()
		WHERE id = (SELECT id FROM users WHERE verify_otp = $1 ORDER BY created_at LIMIT 1)
		RETURNING ` + userColumns
	return r.getOne(ctx, "verify otp", query, otp)
}

// SetCompanyExisting actualiza la caché derivada "tiene empresas".
func (r *UserRepo) SetCompanyExisting(ctx context.Context, userID string, existing bool) error {
	_, err := r.q.Exec(ctx,
		`UPDATE users SET company_existing = $2, updated_at = now() WHERE id = $1`,
		userID, existing,
	)
	if err != nil {
		return fmt.Errorf("update user company_existing: %w", err)
	}
	return nil
}
