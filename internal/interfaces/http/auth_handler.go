package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturacion-api/internal/application/auth"
	"github.com/jhoicas/facturacion-api/internal/application/dto"
	"github.com/jhoicas/facturacion-api/internal/domain"
)

// AuthHandler maneja registro, verificación, login y reseteo de contraseña.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "username, email, password"
// @Success      201   {object}  dto.MessageResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := bind(c, &in); err != nil {
		return internal(c, err)
	}
	if err := h.uc.Register(c.UserContext(), in); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return fail(c, fiber.StatusConflict, "EMAIL_EXISTS", "User already exists")
		}
		return internal(c, err)
	}
	return message(c, fiber.StatusCreated, "Sent email verification OTP successfully")
}

// VerifyEmail godoc
// @Summary      Verificar email con el código recibido
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VerifyEmailRequest  true  "otp"
// @Success      200   {object}  dto.MessageResponse
// @Router       /auth/verify-email [post]
func (h *AuthHandler) VerifyEmail(c *fiber.Ctx) error {
	var in dto.VerifyEmailRequest
	if err := bind(c, &in); err != nil {
		return internal(c, err)
	}
	if err := h.uc.VerifyEmail(c.UserContext(), in.OTP); err != nil {
		if errors.Is(err, domain.ErrInvalidOTP) {
			return message(c, fiber.StatusOK, "Invalid or expired OTP")
		}
		return internal(c, err)
	}
	return message(c, fiber.StatusOK, "User verified successfully!")
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Los fallos de credenciales responden 200 con mensaje.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := bind(c, &in); err != nil {
		return message(c, fiber.StatusOK, err.Error())
	}
	out, err := h.uc.Login(c.UserContext(), in)
	switch {
	case errors.Is(err, domain.ErrEmailNotVerified):
		return message(c, fiber.StatusOK, "User Email not verified")
	case errors.Is(err, domain.ErrInvalidCredentials):
		return message(c, fiber.StatusOK, "Invalid credentials")
	case err != nil:
		return message(c, fiber.StatusOK, err.Error())
	}
	return c.JSON(out)
}

// ForgotPassword godoc
// @Summary      Enviar código de reseteo
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ForgotPasswordRequest  true  "email"
// @Success      200   {object}  dto.MessageResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var in dto.ForgotPasswordRequest
	if err := bind(c, &in); err != nil {
		return internal(c, err)
	}
	if err := h.uc.ForgotPassword(c.UserContext(), in.Email); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return message(c, fiber.StatusOK, "User not found")
		}
		return internal(c, err)
	}
	return message(c, fiber.StatusOK, "Reset email sent successfully!")
}

// ResetPassword godoc
// @Summary      Cambiar contraseña con el código de reseteo
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ResetPasswordRequest  true  "otp, newPassword"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var in dto.ResetPasswordRequest
	if err := bind(c, &in); err != nil {
		return internal(c, err)
	}
	if err := h.uc.ResetPassword(c.UserContext(), in); err != nil {
		if errors.Is(err, domain.ErrInvalidOTP) {
			return fail(c, fiber.StatusBadRequest, "INVALID_OTP", "Invalid or expired token")
		}
		return internal(c, err)
	}
	return message(c, fiber.StatusOK, "Password reset successfully!")
}

// GetUser godoc
// @Summary      Usuario del token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.UserResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /auth/get-user [get]
func (h *AuthHandler) GetUser(c *fiber.Ctx) error {
	userID, err := CurrentUser(c)
	if err != nil {
		return internal(c, err)
	}
	out, err := h.uc.GetUser(c.UserContext(), userID)
	if err != nil {
		return internal(c, err)
	}
	return c.JSON(out)
}

// GetUsers godoc
// @Summary      Listar usuarios (id y username)
// @Tags         auth
// @Produce      json
// @Success      200  {array}  dto.UserSummary
// @Router       /auth/get-users [get]
func (h *AuthHandler) GetUsers(c *fiber.Ctx) error {
	out, err := h.uc.ListUsers(c.UserContext())
	if err != nil {
		return internal(c, err)
	}
	return c.JSON(out)
}
