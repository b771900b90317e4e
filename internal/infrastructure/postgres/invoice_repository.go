package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/facturacion-api/internal/domain/entity"
	"github.com/jhoicas/facturacion-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

const invoiceColumns = `i.id, i.company_id, i.customer_id, i.item_id, i.invoice_number, i.invoice_date, i.due_date,
	i.qty, i.discount, i.gst, i.amount, i.total_amount, i.created_at, i.updated_at`

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

func invoiceDest(inv *entity.Invoice) []any {
	return []any{&inv.ID, &inv.CompanyID, &inv.CustomerID, &inv.ItemID, &inv.InvoiceNumber,
		&inv.InvoiceDate, &inv.DueDate, &inv.Qty, &inv.Discount, &inv.GST, &inv.Amount,
		&inv.TotalAmount, &inv.CreatedAt, &inv.UpdatedAt}
}

// Create persiste una fila de factura.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, company_id, customer_id, item_id, invoice_number, invoice_date, due_date,
		                      qty, discount, gst, amount, total_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		inv.ID, inv.CompanyID, inv.CustomerID, inv.ItemID, inv.InvoiceNumber, inv.InvoiceDate, inv.DueDate,
		inv.Qty, inv.Discount, inv.GST, inv.Amount, inv.TotalAmount, inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// whereInvoices arma el WHERE a partir del filtro. ok=false cuando algún id no es UUID (sin resultados).
func whereInvoices(f repository.InvoiceFilter) (clause string, args []any, ok bool) {
	var conds []string
	add := func(col, val string, isID bool) {
		if val == "" {
			return
		}
		if isID && !validID(val) {
			ok = false
			return
		}
		args = append(args, val)
		conds = append(conds, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	ok = true
	add("i.company_id", f.CompanyID, true)
	add("i.customer_id", f.CustomerID, true)
	add("i.item_id", f.ItemID, true)
	add("i.invoice_number", f.InvoiceNumber, false)
	if len(conds) == 0 {
		return "", args, ok
	}
	return " WHERE " + strings.Join(conds, " AND "), args, ok
}

// List devuelve las filas que cumplen el filtro en orden de inserción.
func (r *InvoiceRepo) List(ctx context.Context, f repository.InvoiceFilter) ([]*entity.Invoice, error) {
	where, args, ok := whereInvoices(f)
	if !ok {
		return nil, nil
	}
	rows, err := r.q.Query(ctx,
		`SELECT `+invoiceColumns+` FROM invoices i`+where+` ORDER BY i.created_at, i.id`, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(invoiceDest(&inv)...); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// ListViews devuelve las filas con empresa, cliente e ítem resueltos en un solo JOIN.
func (r *InvoiceRepo) ListViews(ctx context.Context, f repository.InvoiceFilter) ([]*entity.InvoiceView, error) {
	where, args, ok := whereInvoices(f)
	if !ok {
		return nil, nil
	}
	query := `
		SELECT ` + invoiceColumns + `, co.name, cu.name, it.item_name, it.rate
		FROM invoices i
		JOIN companies co ON co.id = i.company_id
		JOIN customers cu ON cu.id = i.customer_id
		JOIN items it ON it.id = i.item_id` + where + `
		ORDER BY i.created_at, i.id`
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoice views: %w", err)
	}
	defer rows.Close()

	var list []*entity.InvoiceView
	for rows.Next() {
		var v entity.InvoiceView
		dest := append(invoiceDest(&v.Invoice), &v.CompanyName, &v.CustomerName, &v.ItemName, &v.Rate)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan invoice view: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

func (r *InvoiceRepo) exists(ctx context.Context, col, id, number string) (bool, error) {
	if !validID(id) {
		return false, nil
	}
	var found bool
	query := `SELECT EXISTS (SELECT 1 FROM invoices WHERE ` + col + ` = $1 AND invoice_number = $2)`
	if err := r.q.QueryRow(ctx, query, id, number).Scan(&found); err != nil {
		return false, fmt.Errorf("exists invoice: %w", err)
	}
	return found, nil
}

// ExistsByCompanyAndNumber indica si la empresa ya tiene una fila con ese número.
func (r *InvoiceRepo) ExistsByCompanyAndNumber(ctx context.Context, companyID, number string) (bool, error) {
	return r.exists(ctx, "company_id", companyID, number)
}

// ExistsByItemAndNumber indica si el ítem ya aparece en una fila con ese número.
func (r *InvoiceRepo) ExistsByItemAndNumber(ctx context.Context, itemID, number string) (bool, error) {
	return r.exists(ctx, "item_id", itemID, number)
}

func (r *InvoiceRepo) count(ctx context.Context, col, id string) (int, error) {
	if !validID(id) {
		return 0, nil
	}
	n, err := countQuery(ctx, r.q, `SELECT count(*) FROM invoices WHERE `+col+` = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("count invoices by %s: %w", col, err)
	}
	return n, nil
}

// CountByCompany cuenta las filas de factura de la empresa.
func (r *InvoiceRepo) CountByCompany(ctx context.Context, companyID string) (int, error) {
	return r.count(ctx, "company_id", companyID)
}

// CountByCustomer cuenta las filas de factura que referencian al cliente.
func (r *InvoiceRepo) CountByCustomer(ctx context.Context, customerID string) (int, error) {
	return r.count(ctx, "customer_id", customerID)
}

// CountByItem cuenta las filas de factura que referencian al ítem.
func (r *InvoiceRepo) CountByItem(ctx context.Context, itemID string) (int, error) {
	return r.count(ctx, "item_id", itemID)
}

// DeleteByCompanyAndNumber elimina todas las filas (empresa, número). Cero filas no es error.
func (r *InvoiceRepo) DeleteByCompanyAndNumber(ctx context.Context, companyID, number string) (int64, error) {
	cmd, err := r.q.Exec(ctx,
		`DELETE FROM invoices WHERE company_id = $1 AND invoice_number = $2`, companyID, number)
	if err != nil {
		return 0, fmt.Errorf("delete invoices: %w", err)
	}
	return cmd.RowsAffected(), nil
}
