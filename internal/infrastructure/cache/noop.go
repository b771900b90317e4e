package cache

import (
	"context"

	"github.com/jhoicas/facturacion-api/internal/application/ports"
)

var _ ports.ListCache = Noop{}

// Noop caché deshabilitada: toda lectura es un miss.
type Noop struct{}

func (Noop) Get(context.Context, string, any) (bool, error)   { return false, nil }
func (Noop) Set(context.Context, string, any) error            { return nil }
func (Noop) Invalidate(context.Context, string, string) error { return nil }
