package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/facturacion-api/internal/domain"
	"github.com/jhoicas/facturacion-api/internal/domain/entity"
	"github.com/jhoicas/facturacion-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, company_id, name, email, phone, customer_company, gstin, state, address, created_at, updated_at`

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador de persistencia para clientes.
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

func scanCustomer(row interface{ Scan(dest ...any) error }) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(&c.ID, &c.CompanyID, &c.Name, &c.Email, &c.Phone, &c.CustomerCompany,
		&c.GSTIN, &c.State, &c.Address, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un nuevo cliente. Email repetido en la empresa → domain.ErrDuplicate.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.CompanyID, c.Name, c.Email, c.Phone, c.CustomerCompany,
		c.GSTIN, c.State, c.Address, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

func (r *CustomerRepo) getOne(ctx context.Context, what, query string, args ...any) (*entity.Customer, error) {
	c, err := scanCustomer(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer %s: %w", what, err)
	}
	return c, nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.getOne(ctx, "by id", `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
}

// GetByCompanyAndEmail busca por la clave natural del cliente dentro de la empresa.
func (r *CustomerRepo) GetByCompanyAndEmail(ctx context.Context, companyID, email string) (*entity.Customer, error) {
	return r.getOne(ctx, "by email",
		`SELECT `+customerColumns+` FROM customers WHERE company_id = $1 AND email = $2`, companyID, email)
}

// GetByCompanyAndName obtiene el primer cliente de la empresa con ese nombre.
func (r *CustomerRepo) GetByCompanyAndName(ctx context.Context, companyID, name string) (*entity.Customer, error) {
	return r.getOne(ctx, "by name",
		`SELECT `+customerColumns+` FROM customers WHERE company_id = $1 AND name = $2
		 ORDER BY created_at, id LIMIT 1`, companyID, name)
}

// ListByCompany lista los clientes de la empresa; customerID no vacío restringe a ese cliente.
func (r *CustomerRepo) ListByCompany(ctx context.Context, companyID, customerID string) ([]*entity.Customer, error) {
	if customerID != "" && !validID(customerID) {
		return nil, nil
	}
	rows, err := r.q.Query(ctx,
		`SELECT `+customerColumns+` FROM customers
		 WHERE company_id = $1 AND ($2::text = '' OR id::text = $2)
		 ORDER BY created_at, id`, companyID, customerID)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// CountByCompany cuenta los clientes de la empresa.
func (r *CustomerRepo) CountByCompany(ctx context.Context, companyID string) (int, error) {
	n, err := countQuery(ctx, r.q, `SELECT count(*) FROM customers WHERE company_id = $1`, companyID)
	if err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return n, nil
}

// Update sobrescribe todos los campos del cliente.
func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	if !validID(c.ID) {
		return domain.ErrCustomerNotFound
	}
	query := `
		UPDATE customers SET name = $2, email = $3, phone = $4, customer_company = $5,
		       gstin = $6, state = $7, address = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.Email, c.Phone, c.CustomerCompany, c.GSTIN, c.State, c.Address, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

// Delete elimina un cliente por ID.
func (r *CustomerRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}
