package dto

// RegisterRequest entrada para registro.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// VerifyEmailRequest código enviado por correo al registrarse.
type VerifyEmailRequest struct {
	OTP string `json:"otp"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token firmado con {id, email}.
type LoginResponse struct {
	Token string `json:"token"`
}

// ForgotPasswordRequest solicita un código de reseteo.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required"`
}

// ResetPasswordRequest consume el código de reseteo.
type ResetPasswordRequest struct {
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// UserResponse salida de un usuario (sin password ni códigos).
type UserResponse struct {
	ID              string `json:"_id"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Verified        YesNo  `json:"verified"`
	CompanyExisting YesNo  `json:"company_existing"`
}

// UserSummary id y username (listado público de usuarios).
type UserSummary struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

// CompanyExistingResponse flag "tiene empresas" del usuario.
type CompanyExistingResponse struct {
	CompanyExisting YesNo `json:"company_existing"`
}
