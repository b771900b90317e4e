package entity

import "time"

// User representa una cuenta del sistema. Es dueña de cero o más Company.
type User struct {
	ID              string
	Username        string
	Email           string
	PasswordHash    string // bcrypt hash, nunca plano en dominio después de persistir
	Verified        bool
	VerifyOTP       string // código de verificación de email; vacío cuando ya se consumió
	ResetOTP        string // código de reseteo de password; independiente de VerifyOTP
	CompanyExisting bool   // caché derivada: el usuario tiene al menos una empresa
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
