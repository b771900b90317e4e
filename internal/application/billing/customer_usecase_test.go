package billing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturacion-api/internal/application/dto"
	"github.com/jhoicas/facturacion-api/internal/domain"
)

func TestCustomer_Add(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.customers.Add(ctx, testUser, customerReq("Bob", "bob@example.com"))
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)

	f.company(t, "Acme")
	bob := f.customer(t, "Bob")
	assert.Equal(t, "Bob", bob.Name)

	// La clave natural es el email dentro de la empresa.
	_, err = f.customers.Add(ctx, testUser, customerReq("Robert", "Bob@example.com"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	list, err := f.customers.ListForSelected(ctx, testUser)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCustomer_ListAll(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.customers.ListAll(ctx, testUser)
	assert.ErrorIs(t, err, domain.ErrCompaniesNotFound)

	f.company(t, "Acme")
	f.customer(t, "Bob")
	f.company(t, "Beta")
	f.customer(t, "Carol")
	f.customer(t, "Dan")

	all, err := f.customers.ListAll(ctx, testUser)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Bob", all[0].Name)
}

func TestCustomer_UpdateAndRemove(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	acme := f.company(t, "Acme")
	bob := f.customer(t, "Bob")
	widget := f.item(t, "Widget")

	out, err := f.customers.Update(ctx, dto.UpdateCustomerRequest{ID: bob.ID, CustomerRequest: customerReq("Bobby", "Bob@example.com")})
	require.NoError(t, err)
	assert.Equal(t, "Bobby", out.Name)
	_, err = f.customers.Update(ctx, dto.UpdateCustomerRequest{ID: "missing", CustomerRequest: customerReq("X", "x@example.com")})
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)

	_, err = f.invoices.CreateBatch(ctx, testUser, []dto.InvoiceInput{{
		InvoiceNumber: "INV-1", DueDate: "2024-06-01", CustomerID: bob.ID, ItemID: widget.ID, InvoiceAmounts: amounts(1, 100, 118),
	}})
	require.NoError(t, err)
	assert.ErrorIs(t, f.customers.Remove(ctx, bob.ID), domain.ErrHasInvoices)

	_, err = f.store.Invoices().DeleteByCompanyAndNumber(ctx, acme.ID, "INV-1")
	require.NoError(t, err)
	require.NoError(t, f.customers.Remove(ctx, bob.ID))
	assert.ErrorIs(t, f.customers.Remove(ctx, bob.ID), domain.ErrCustomerNotFound)
}

func TestCustomer_Import(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.company(t, "Acme")

	in := dto.CustomerImport{CustomerRequest: customerReq("Bob", "bob@example.com"), CompanyName: "Acme"}
	_, err := f.customers.Import(ctx, testUser, in)
	require.NoError(t, err)
	_, err = f.customers.Import(ctx, testUser, in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	in.CompanyName = "Ghost"
	_, err = f.customers.Import(ctx, testUser, in)
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
}
