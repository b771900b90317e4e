package billing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturacion-api/internal/application/dto"
	"github.com/jhoicas/facturacion-api/internal/domain"
	"github.com/jhoicas/facturacion-api/internal/domain/repository"
)

// ledger empresa activa con un cliente y dos ítems.
type ledger struct {
	*fixture
	company *dto.CompanyResponse
	bob     *dto.CustomerResponse
	widget  *dto.ItemResponse
	gadget  *dto.ItemResponse
}

func newLedger(t *testing.T) *ledger {
	t.Helper()
	return ledgerOn(t, newFixture(t))
}

func ledgerOn(t *testing.T, f *fixture) *ledger {
	t.Helper()
	return &ledger{
		fixture: f,
		company: f.company(t, "Acme"),
		bob:     f.customer(t, "Bob"),
		widget:  f.item(t, "Widget"),
		gadget:  f.item(t, "Gadget"),
	}
}

func (l *ledger) row(number, itemID string) dto.InvoiceInput {
	return dto.InvoiceInput{
		InvoiceNumber: number, DueDate: "2024-06-01", CustomerID: l.bob.ID, ItemID: itemID,
		InvoiceAmounts: amounts(1, 100, 118),
	}
}

func (l *ledger) count(t *testing.T, number string) int {
	t.Helper()
	rows, err := l.store.Invoices().List(context.Background(), repository.InvoiceFilter{CompanyID: l.company.ID, InvoiceNumber: number})
	require.NoError(t, err)
	return len(rows)
}

func TestInvoice_CreateBatch(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()

	out, err := l.invoices.CreateBatch(ctx, testUser, []dto.InvoiceInput{
		{InvoiceNumber: "INV-1", DueDate: "2024-06-01", CustomerID: l.bob.ID, ItemID: l.widget.ID, InvoiceAmounts: amounts(2, 200, 236)},
		{InvoiceNumber: "INV-1", DueDate: "06/15/2024", CustomerID: l.bob.ID, ItemID: l.gadget.ID, InvoiceAmounts: amounts(1, 100, 118)},
	})
	require.NoError(t, err)
	require.Len(t, out, 2)
	for _, row := range out {
		assert.Equal(t, "INV-1", row.InvoiceNumber)
		assert.Equal(t, l.company.ID, row.Company)
		assert.Equal(t, l.bob.ID, row.Customer)
		assert.True(t, row.InvoiceDate.Equal(fixedNow))
	}
	assert.Equal(t, "2024-06-01T00:00:00.000Z", out[0].DueDate)
	assert.Equal(t, "2024-06-15T00:00:00.000Z", out[1].DueDate)

	list, err := l.invoices.ListByCompany(ctx, testUser)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Bob", list[0].CustomerName)
}

func TestInvoice_CreateBatchDuplicateLeadingNumber(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()

	_, err := l.invoices.CreateBatch(ctx, testUser, []dto.InvoiceInput{l.row("INV-1", l.widget.ID)})
	require.NoError(t, err)

	_, err = l.invoices.CreateBatch(ctx, testUser, []dto.InvoiceInput{
		l.row("INV-1", l.gadget.ID),
		l.row("INV-2", l.gadget.ID),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, 1, l.count(t, "INV-1"))
	assert.Zero(t, l.count(t, "INV-2"))
}

func TestInvoice_CreateBatchOnlyChecksLeadingRow(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()

	_, err := l.invoices.CreateBatch(ctx, testUser, []dto.InvoiceInput{l.row("INV-1", l.widget.ID)})
	require.NoError(t, err)

	_, err = l.invoices.CreateBatch(ctx, testUser, []dto.InvoiceInput{
		l.row("INV-2", l.widget.ID),
		l.row("INV-1", l.gadget.ID),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, l.count(t, "INV-1"))
}

func TestInvoice_CreateBatchInvalid(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()

	_, err := l.invoices.CreateBatch(ctx, testUser, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	bad := l.row("INV-1", l.widget.ID)
	bad.DueDate = "mañana"
	_, err = l.invoices.CreateBatch(ctx, testUser, []dto.InvoiceInput{l.row("INV-1", l.gadget.ID), bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, l.count(t, "INV-1"))
}

func TestInvoice_RequiresSelectedCompany(t *testing.T) {
	f := newFixture(t)
	_, err := f.invoices.CreateBatch(context.Background(), testUser, []dto.InvoiceInput{{InvoiceNumber: "INV-1"}})
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
	_, err = f.invoices.ListByCompany(context.Background(), testUser)
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
}

func TestInvoice_GetByNumberAndRemove(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()

	_, err := l.invoices.CreateBatch(ctx, testUser, []dto.InvoiceInput{
		l.row("INV-1", l.widget.ID),
		l.row("INV-1", l.gadget.ID),
	})
	require.NoError(t, err)

	rows, err := l.invoices.GetByNumber(ctx, testUser, "INV-1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Acme", rows[0].Company.Name)
	assert.Equal(t, "Bob", rows[0].Customer.Name)
	assert.Equal(t, "Widget", rows[0].Item.ItemName)
	assert.Equal(t, "Gadget", rows[1].Item.ItemName)

	empty, err := l.invoices.GetByNumber(ctx, testUser, "INV-404")
	require.NoError(t, err)
	assert.Empty(t, empty)

	require.NoError(t, l.invoices.RemoveBatch(ctx, testUser, "INV-1"))
	rows, err = l.invoices.GetByNumber(ctx, testUser, "INV-1")
	require.NoError(t, err)
	assert.Empty(t, rows)

	// Borrar un número inexistente no es error.
	assert.NoError(t, l.invoices.RemoveBatch(ctx, testUser, "INV-1"))
}

func TestInvoice_Import(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()

	in := dto.InvoiceImport{
		InvoiceNumber: "INV-7", InvoiceDate: "2024-01-15T10:00:00Z", DueDate: "2024-02-15",
		CompanyName: "Acme", CustomerName: "Bob", ItemName: "Widget", InvoiceAmounts: amounts(1, 100, 118),
	}
	out, err := l.invoices.Import(ctx, testUser, in)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15T10:00:00Z", out.InvoiceDate.Format("2006-01-02T15:04:05Z07:00"))
	assert.Equal(t, "2024-02-15T00:00:00.000Z", out.DueDate)

	// Mismo número con otro ítem: la unicidad es por (ítem, número).
	other := in
	other.ItemName = "Gadget"
	_, err = l.invoices.Import(ctx, testUser, other)
	require.NoError(t, err)

	// El duplicado se detecta antes que el cliente.
	dup := in
	dup.CustomerName = "Ghost"
	_, err = l.invoices.Import(ctx, testUser, dup)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	cases := []struct {
		name   string
		mutate func(*dto.InvoiceImport)
		want   error
	}{
		{"empresa", func(x *dto.InvoiceImport) { x.CompanyName = "Ghost" }, domain.ErrCompanyNotFound},
		{"ítem", func(x *dto.InvoiceImport) { x.ItemName = "Ghost" }, domain.ErrItemNotFound},
		{"cliente", func(x *dto.InvoiceImport) { x.InvoiceNumber = "INV-8"; x.CustomerName = "Ghost" }, domain.ErrCustomerNotFound},
		{"fecha", func(x *dto.InvoiceImport) { x.InvoiceNumber = "INV-9"; x.InvoiceDate = "ayer" }, domain.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			x := in
			tc.mutate(&x)
			_, err := l.invoices.Import(ctx, testUser, x)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestInvoice_CompanyUpdateRefreshesCachedDetails(t *testing.T) {
	l := ledgerOn(t, newFixtureWithCache(t, newMapCache()))
	ctx := context.Background()

	_, err := l.invoices.CreateBatch(ctx, testUser, []dto.InvoiceInput{l.row("INV-1", l.widget.ID)})
	require.NoError(t, err)
	rows, err := l.invoices.GetByNumber(ctx, testUser, "INV-1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Acme", rows[0].Company.Name)

	_, err = l.companies.Update(ctx, dto.UpdateCompanyRequest{
		ID: l.company.ID,
		CompanyRequest: dto.CompanyRequest{
			Name: "Acme Renamed", GSTNumber: "GST-Acme", Phone: "555", Email: "info@example.com", Address: "Main St", State: "KA",
		},
	})
	require.NoError(t, err)

	rows, err = l.invoices.GetByNumber(ctx, testUser, "INV-1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Acme Renamed", rows[0].Company.Name)
}
