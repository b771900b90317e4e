package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/facturacion-api/internal/application/ports"
	"github.com/redis/go-redis/v9"
)

const scanBatchSize = 100

var _ ports.ListCache = (*Redis)(nil)

// Redis implementación de ListCache con valores JSON y TTL.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis conecta con Redis y verifica la conexión con PING.
func NewRedis(ctx context.Context, addr, password string, db int, ttl time.Duration) (*Redis, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return NewRedisWithClient(client, ttl), nil
}

// NewRedisWithClient usa un cliente existente (el llamador conserva su ciclo de vida).
func NewRedisWithClient(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

// Get lee y decodifica la clave. Una entrada corrupta se borra y cuenta como miss.
func (c *Redis) Get(ctx context.Context, key string, dst any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		_ = c.client.Del(ctx, key).Err()
		return false, fmt.Errorf("redis decode %s: %w", key, err)
	}
	return true, nil
}

// Set guarda el valor serializado en JSON con el TTL configurado.
func (c *Redis) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("redis encode %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Invalidate borra los listados del par y las facturas individuales de la empresa.
func (c *Redis) Invalidate(ctx context.Context, userID, companyID string) error {
	if companyID == "" {
		return c.client.Del(ctx, ports.CompaniesKey(userID)).Err()
	}
	keys := []string{
		ports.ListKey(ports.ScopeCustomers, userID, companyID),
		ports.ListKey(ports.ScopeItems, userID, companyID),
		ports.ListKey(ports.ScopeInvoices, userID, companyID),
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return c.deletePattern(ctx, ports.InvoiceKey(userID, companyID, "*"))
}

func (c *Redis) deletePattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, scanBatchSize).Result()
		if err != nil {
			return fmt.Errorf("redis scan %s: %w", pattern, err)
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("redis del: %w", err)
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

// Close cierra el cliente.
func (c *Redis) Close() error {
	return c.client.Close()
}
