package ports

import (
	"context"
	"fmt"
)

// ListCache caché de lectura para los listados por (usuario, empresa).
// Un fallo de caché nunca debe hacer fallar la operación: el llamador lo registra y sigue.
type ListCache interface {
	// Get decodifica el valor en dst. hit=false si la clave no existe.
	Get(ctx context.Context, key string, dst any) (hit bool, err error)
	Set(ctx context.Context, key string, value any) error
	// Invalidate borra las claves del par (usuario, empresa); companyID vacío borra el listado de empresas del usuario.
	Invalidate(ctx context.Context, userID, companyID string) error
}

// Ámbitos de listado cacheables.
const (
	ScopeCompanies = "companiesof"
	ScopeCustomers = "customersof"
	ScopeItems     = "itemsof"
	ScopeInvoices  = "invoicesof"
	ScopeInvoice   = "invoiceof"
)

// CompaniesKey clave del listado de empresas del usuario.
func CompaniesKey(userID string) string {
	return fmt.Sprintf("%s:%s", ScopeCompanies, userID)
}

// ListKey clave de un listado (clientes, ítems o facturas) del par (usuario, empresa).
func ListKey(scope, userID, companyID string) string {
	return fmt.Sprintf("%s:%s:%s", scope, userID, companyID)
}

// InvoiceKey clave de las filas de una factura concreta.
func InvoiceKey(userID, companyID, number string) string {
	return fmt.Sprintf("%s:%s:%s:%s", ScopeInvoice, userID, companyID, number)
}
