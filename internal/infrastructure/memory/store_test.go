package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturacion-api/internal/domain"
	"github.com/jhoicas/facturacion-api/internal/domain/entity"
	"github.com/jhoicas/facturacion-api/internal/domain/repository"
)

func TestRunInTx_RollsBack(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	require.NoError(t, s.Companies().Create(ctx, &entity.Company{ID: "c1", UserID: "u1", Name: "Acme", Selected: true}))

	boom := errors.New("boom")
	err := s.RunInTx(ctx, func(tx repository.Store) error {
		if err := tx.Companies().UnselectAll(ctx, "u1"); err != nil {
			return err
		}
		if err := tx.Companies().Create(ctx, &entity.Company{ID: "c2", UserID: "u1", Name: "Beta", Selected: true}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	list, err := s.Companies().ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Selected)
}

func TestRunInTx_Commits(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	err := s.RunInTx(ctx, func(tx repository.Store) error {
		return tx.Invoices().Create(ctx, &entity.Invoice{ID: "i1", CompanyID: "c1", InvoiceNumber: "INV-1"})
	})
	require.NoError(t, err)

	ok, err := s.Invoices().ExistsByCompanyAndNumber(ctx, "c1", "INV-1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRunInTx_RollbackKeepsConcurrentWrites(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	boom := errors.New("boom")
	err := s.RunInTx(ctx, func(tx repository.Store) error {
		if err := tx.Companies().Create(ctx, &entity.Company{ID: "c1", UserID: "u1", Name: "Acme"}); err != nil {
			return err
		}
		done := make(chan error)
		go func() {
			done <- s.Users().Create(ctx, &entity.User{ID: "u2", Email: "bob@x", Username: "bob"})
		}()
		require.NoError(t, <-done)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	bob, err := s.Users().GetByEmail(ctx, "bob@x")
	require.NoError(t, err)
	require.NotNil(t, bob)
	c, err := s.Companies().GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestRunInTx_CommitKeepsConcurrentWrites(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	err := s.RunInTx(ctx, func(tx repository.Store) error {
		require.NoError(t, s.Users().Create(ctx, &entity.User{ID: "u2", Email: "bob@x", Username: "bob"}))
		return tx.Companies().Create(ctx, &entity.Company{ID: "c1", UserID: "u1", Name: "Acme"})
	})
	require.NoError(t, err)

	bob, err := s.Users().GetByEmail(ctx, "bob@x")
	require.NoError(t, err)
	assert.NotNil(t, bob)
	c, err := s.Companies().GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestRunInTx_CommitConflictLeavesStateIntact(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	err := s.RunInTx(ctx, func(tx repository.Store) error {
		if err := tx.Companies().Create(ctx, &entity.Company{ID: "c1", UserID: "u1", Name: "Beta"}); err != nil {
			return err
		}
		if err := tx.Companies().Create(ctx, &entity.Company{ID: "c2", UserID: "u1", Name: "Acme"}); err != nil {
			return err
		}
		return s.Companies().Create(ctx, &entity.Company{ID: "c3", UserID: "u1", Name: "Acme"})
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	list, err := s.Companies().ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "c3", list[0].ID)
}

func TestRunInTx_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := NewStore().RunInTx(ctx, func(repository.Store) error { called = true; return nil })
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestCompanies_UniqueNamePerUser(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	require.NoError(t, s.Companies().Create(ctx, &entity.Company{ID: "c1", UserID: "u1", Name: "Acme"}))
	assert.ErrorIs(t, s.Companies().Create(ctx, &entity.Company{ID: "c2", UserID: "u1", Name: "Acme"}), domain.ErrDuplicate)
	assert.NoError(t, s.Companies().Create(ctx, &entity.Company{ID: "c3", UserID: "u2", Name: "Acme"}))
}

func TestInvoices_ListViewsSkipsDanglingRows(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	require.NoError(t, s.Companies().Create(ctx, &entity.Company{ID: "c1", UserID: "u1", Name: "Acme"}))
	require.NoError(t, s.Customers().Create(ctx, &entity.Customer{ID: "cu1", CompanyID: "c1", Name: "Bob", Email: "bob@example.com"}))
	require.NoError(t, s.Items().Create(ctx, &entity.Item{ID: "it1", CompanyID: "c1", Name: "Widget"}))
	require.NoError(t, s.Invoices().Create(ctx, &entity.Invoice{ID: "i1", CompanyID: "c1", CustomerID: "cu1", ItemID: "it1", InvoiceNumber: "INV-1"}))
	require.NoError(t, s.Invoices().Create(ctx, &entity.Invoice{ID: "i2", CompanyID: "c1", CustomerID: "gone", ItemID: "it1", InvoiceNumber: "INV-2"}))

	views, err := s.Invoices().ListViews(ctx, repository.InvoiceFilter{CompanyID: "c1"})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Bob", views[0].CustomerName)
	assert.Equal(t, "Widget", views[0].ItemName)

	n, err := s.Invoices().CountByCompany(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
