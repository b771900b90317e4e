package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/facturacion-api/internal/domain"
	"github.com/jhoicas/facturacion-api/internal/domain/entity"
	"github.com/jhoicas/facturacion-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const companyColumns = `id, user_id, name, gst_number, phone, email, place_of_supply, address, state, selected_company, created_at, updated_at`

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL (usable con pool o tx).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

func scanCompany(row interface{ Scan(dest ...any) error }) (*entity.Company, error) {
	var c entity.Company
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.GSTNumber, &c.Phone, &c.Email,
		&c.PlaceOfSupply, &c.Address, &c.State, &c.Selected, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste una nueva empresa. Nombre repetido para el mismo usuario → domain.ErrDuplicate.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		company.ID, company.UserID, company.Name, company.GSTNumber, company.Phone, company.Email,
		company.PlaceOfSupply, company.Address, company.State, company.Selected,
		company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

func (r *CompanyRepo) getOne(ctx context.Context, what, query string, args ...any) (*entity.Company, error) {
	c, err := scanCompany(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company %s: %w", what, err)
	}
	return c, nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.getOne(ctx, "by id", `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
}

// GetByUserAndName obtiene la empresa del usuario con ese nombre.
func (r *CompanyRepo) GetByUserAndName(ctx context.Context, userID, name string) (*entity.Company, error) {
	return r.getOne(ctx, "by name",
		`SELECT `+companyColumns+` FROM companies WHERE user_id = $1 AND name = $2`, userID, name)
}

// GetSelected obtiene la empresa seleccionada del usuario (nil si no hay ninguna).
func (r *CompanyRepo) GetSelected(ctx context.Context, userID string) (*entity.Company, error) {
	return r.getOne(ctx, "selected",
		`SELECT `+companyColumns+` FROM companies WHERE user_id = $1 AND selected_company
		 ORDER BY created_at, id LIMIT 1`, userID)
}

// GetSibling obtiene la empresa más antigua del usuario distinta de excludeID.
func (r *CompanyRepo) GetSibling(ctx context.Context, userID, excludeID string) (*entity.Company, error) {
	return r.getOne(ctx, "sibling",
		`SELECT `+companyColumns+` FROM companies WHERE user_id = $1 AND id <> $2
		 ORDER BY created_at, id LIMIT 1`, userID, excludeID)
}

// ListByUser lista las empresas del usuario en orden de creación.
func (r *CompanyRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Company, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE user_id = $1 ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update sobrescribe los datos de la empresa (no toca dueño ni selección).
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, gst_number = $3, phone = $4, email = $5,
		       place_of_supply = $6, address = $7, state = $8, updated_at = $9
		WHERE id = $1`
	if !validID(company.ID) {
		return domain.ErrCompanyNotFound
	}
	cmd, err := r.q.Exec(ctx, query,
		company.ID, company.Name, company.GSTNumber, company.Phone, company.Email,
		company.PlaceOfSupply, company.Address, company.State, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrCompanyNotFound
	}
	return nil
}

// UnselectAll desmarca todas las empresas del usuario.
func (r *CompanyRepo) UnselectAll(ctx context.Context, userID string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE companies SET selected_company = false, updated_at = now()
		 WHERE user_id = $1 AND selected_company`, userID)
	if err != nil {
		return fmt.Errorf("unselect companies: %w", err)
	}
	return nil
}

// SelectByName cambia la selección en una sola sentencia: queda marcada solo la empresa con ese nombre.
func (r *CompanyRepo) SelectByName(ctx context.Context, userID, name string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE companies SET selected_company = (name = $2), updated_at = now()
		 WHERE user_id = $1 AND (selected_company OR name = $2)`, userID, name)
	if err != nil {
		return fmt.Errorf("select company: %w", err)
	}
	return nil
}

// SetSelected marca o desmarca una empresa puntual.
func (r *CompanyRepo) SetSelected(ctx context.Context, id string, selected bool) error {
	_, err := r.q.Exec(ctx,
		`UPDATE companies SET selected_company = $2, updated_at = now() WHERE id = $1`, id, selected)
	if err != nil {
		return fmt.Errorf("set selected company: %w", err)
	}
	return nil
}

// Delete elimina una empresa por ID.
func (r *CompanyRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}
