package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/facturacion-api/internal/domain"
	"github.com/jhoicas/facturacion-api/internal/domain/entity"
	"github.com/jhoicas/facturacion-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `id, company_id, item_name, item_code, item_details, hsn_sac, qty, rate, created_at, updated_at`

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL.
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para ítems.
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

func scanItem(row interface{ Scan(dest ...any) error }) (*entity.Item, error) {
	var it entity.Item
	err := row.Scan(&it.ID, &it.CompanyID, &it.Name, &it.Code, &it.Details, &it.HSNSAC,
		&it.Qty, &it.Rate, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// Create persiste un nuevo ítem. Nombre repetido en la empresa → domain.ErrDuplicate.
func (r *ItemRepo) Create(ctx context.Context, it *entity.Item) error {
	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		it.ID, it.CompanyID, it.Name, it.Code, it.Details, it.HSNSAC,
		it.Qty, it.Rate, it.CreatedAt, it.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

func (r *ItemRepo) getOne(ctx context.Context, what, query string, args ...any) (*entity.Item, error) {
	it, err := scanItem(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item %s: %w", what, err)
	}
	return it, nil
}

// GetByID obtiene un ítem por ID.
func (r *ItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.getOne(ctx, "by id", `SELECT `+itemColumns+` FROM items WHERE id = $1`, id)
}

// GetByCompanyAndName busca por la clave natural del ítem dentro de la empresa.
func (r *ItemRepo) GetByCompanyAndName(ctx context.Context, companyID, name string) (*entity.Item, error) {
	return r.getOne(ctx, "by name",
		`SELECT `+itemColumns+` FROM items WHERE company_id = $1 AND item_name = $2`, companyID, name)
}

// ListByCompany lista los ítems de la empresa; itemID no vacío restringe a ese ítem.
func (r *ItemRepo) ListByCompany(ctx context.Context, companyID, itemID string) ([]*entity.Item, error) {
	if itemID != "" && !validID(itemID) {
		return nil, nil
	}
	rows, err := r.q.Query(ctx,
		`SELECT `+itemColumns+` FROM items
		 WHERE company_id = $1 AND ($2::text = '' OR id::text = $2)
		 ORDER BY created_at, id`, companyID, itemID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var list []*entity.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// CountByCompany cuenta los ítems de la empresa.
func (r *ItemRepo) CountByCompany(ctx context.Context, companyID string) (int, error) {
	n, err := countQuery(ctx, r.q, `SELECT count(*) FROM items WHERE company_id = $1`, companyID)
	if err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return n, nil
}

// Update sobrescribe todos los campos del ítem.
func (r *ItemRepo) Update(ctx context.Context, it *entity.Item) error {
	if !validID(it.ID) {
		return domain.ErrItemNotFound
	}
	query := `
		UPDATE items SET item_name = $2, item_code = $3, item_details = $4, hsn_sac = $5,
		       qty = $6, rate = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		it.ID, it.Name, it.Code, it.Details, it.HSNSAC, it.Qty, it.Rate, it.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// Delete elimina un ítem por ID.
func (r *ItemRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}
