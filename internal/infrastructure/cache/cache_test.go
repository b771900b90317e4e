package cache

import (
	"context"
	"testing"
	"time"

	"github.com/jhoicas/facturacion-api/internal/application/ports"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoop_AlwaysMiss(t *testing.T) {
	ctx := context.Background()
	var c ports.ListCache = Noop{}

	require.NoError(t, c.Set(ctx, "k", []string{"a"}))
	var dst []string
	hit, err := c.Get(ctx, "k", &dst)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Empty(t, dst)
	assert.NoError(t, c.Invalidate(ctx, "u", "c"))
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "companiesof:u1", ports.CompaniesKey("u1"))
	assert.Equal(t, "customersof:u1:c1", ports.ListKey(ports.ScopeCustomers, "u1", "c1"))
	assert.Equal(t, "invoiceof:u1:c1:INV-1", ports.InvoiceKey("u1", "c1", "INV-1"))
}

func TestRedis_UnreachableIsAnError(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()
	c := NewRedisWithClient(client, time.Minute)

	var dst []string
	hit, err := c.Get(context.Background(), "k", &dst)
	assert.False(t, hit)
	assert.Error(t, err)
}
