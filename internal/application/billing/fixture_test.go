package billing

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturacion-api/internal/application/dto"
	"github.com/jhoicas/facturacion-api/internal/application/ports"
	"github.com/jhoicas/facturacion-api/internal/application/tenant"
	"github.com/jhoicas/facturacion-api/internal/application/usecase"
	"github.com/jhoicas/facturacion-api/internal/domain/entity"
	"github.com/jhoicas/facturacion-api/internal/infrastructure/memory"
)

const testUser = "00000000-0000-0000-0000-000000000001"

var fixedNow = time.Date(2024, 5, 10, 12, 30, 0, 0, time.UTC)

type fixture struct {
	store     *memory.Store
	companies *usecase.CompanyUseCase
	items     *usecase.ItemUseCase
	customers *CustomerUseCase
	invoices  *InvoiceUseCase
}

// mapCache caché en memoria con la misma semántica de claves que la de Redis.
type mapCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMapCache() *mapCache { return &mapCache{data: map[string][]byte{}} }

func (c *mapCache) Get(_ context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (c *mapCache) Set(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = raw
	return nil
}

func (c *mapCache) Invalidate(_ context.Context, userID, companyID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.data {
		if (companyID == "" && k == ports.CompaniesKey(userID)) ||
			(companyID != "" && strings.Contains(k, ":"+userID+":"+companyID)) {
			delete(c.data, k)
		}
	}
	return nil
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWithCache(t, nil)
}

func newFixtureWithCache(t *testing.T, cache ports.ListCache) *fixture {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, store.Users().Create(context.Background(), &entity.User{
		ID: testUser, Username: "ana", Email: "ana@example.com", Verified: true,
	}))
	scope := tenant.NewScope(store, cache, nil)
	invoices := NewInvoiceUseCase(scope, store)
	invoices.now = func() time.Time { return fixedNow }
	return &fixture{
		store:     store,
		companies: usecase.NewCompanyUseCase(scope, store),
		items:     usecase.NewItemUseCase(scope),
		customers: NewCustomerUseCase(scope),
		invoices:  invoices,
	}
}

func (f *fixture) company(t *testing.T, name string) *dto.CompanyResponse {
	t.Helper()
	c, err := f.companies.Create(context.Background(), testUser, dto.CompanyRequest{
		Name: name, GSTNumber: "GST-" + name, Phone: "555", Email: "info@example.com", Address: "Main St", State: "KA",
	})
	require.NoError(t, err)
	return c
}

func customerReq(name, email string) dto.CustomerRequest {
	return dto.CustomerRequest{
		Name: name, Email: email, Phone: "777", CustomerCompany: name + " Co", State: "KA", Address: "Elm St",
	}
}

func (f *fixture) customer(t *testing.T, name string) *dto.CustomerResponse {
	t.Helper()
	c, err := f.customers.Add(context.Background(), testUser, customerReq(name, name+"@example.com"))
	require.NoError(t, err)
	return c
}

func (f *fixture) item(t *testing.T, name string) *dto.ItemResponse {
	t.Helper()
	it, err := f.items.Add(context.Background(), testUser, dto.ItemRequest{
		ItemName: name, ItemCode: "C-" + name, ItemDetails: "detalle", HSNSAC: "9983",
		Qty: decimal.NewFromInt(10), Rate: decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	return it
}

func amounts(qty, amount, total int64) dto.InvoiceAmounts {
	return dto.InvoiceAmounts{
		Qty:         decimal.NewFromInt(qty),
		Discount:    decimal.Zero,
		GST:         decimal.NewFromInt(18),
		Amount:      decimal.NewFromInt(amount),
		TotalAmount: decimal.NewFromInt(total),
	}
}
