package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrCompanyNotFound    = errors.New("empresa no encontrada")
	ErrCompaniesNotFound  = errors.New("el usuario no tiene empresas")
	ErrCustomerNotFound   = errors.New("cliente no encontrado")
	ErrItemNotFound       = errors.New("ítem no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrEmailNotVerified   = errors.New("email no verificado")
	ErrInvalidOTP         = errors.New("código OTP inválido o expirado")
)

// Guardas de borrado: la entidad sigue referenciada y no se elimina.
var (
	ErrHasInvoices  = errors.New("existen facturas que referencian el recurso")
	ErrHasItems     = errors.New("existen ítems que referencian la empresa")
	ErrHasCustomers = errors.New("existen clientes que referencian la empresa")
)
