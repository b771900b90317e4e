package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/facturacion-api/internal/application/dto"
	"github.com/jhoicas/facturacion-api/internal/application/ports"
	"github.com/jhoicas/facturacion-api/internal/domain"
	"github.com/jhoicas/facturacion-api/internal/domain/entity"
	"github.com/jhoicas/facturacion-api/internal/domain/repository"
	"github.com/jhoicas/facturacion-api/pkg/jwt"
	"github.com/jhoicas/facturacion-api/pkg/logger"
	"github.com/jhoicas/facturacion-api/pkg/otp"
	"golang.org/x/crypto/bcrypt"
)

// mailTimeout límite de cada envío en segundo plano.
const mailTimeout = 30 * time.Second

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Links URLs del front que se incluyen en los correos.
type Links struct {
	VerifyEmailURL   string
	ResetPasswordURL string
}

// AuthUseCase casos de uso de identidad: registro, verificación, login y reseteo de password.
type AuthUseCase struct {
	users  repository.UserRepository
	mailer ports.Mailer
	jwtCfg JWTConfig
	links  Links
	log    *logger.Logger

	pending sync.WaitGroup
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, mailer ports.Mailer, jwtCfg JWTConfig, links Links, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{users: users, mailer: mailer, jwtCfg: jwtCfg, links: links, log: log}
}

// Register crea un usuario sin verificar y envía el código por correo sin esperar la entrega.
// Devuelve domain.ErrEmailAlreadyExists si el email (o el username) ya existe.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) error {
	existing, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	code, err := otp.Generate()
	if err != nil {
		return err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		VerifyOTP:    code,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return err
	}
	uc.sendAsync(user.Email, "Verify Email", fmt.Sprintf(
		`<p>Use this OTP-<strong>%s</strong> to verify your email. Use Link %s</p>`, code, uc.links.VerifyEmailURL))
	return nil
}

// VerifyEmail consume el código de verificación. domain.ErrInvalidOTP si ningún usuario lo tiene.
func (uc *AuthUseCase) VerifyEmail(ctx context.Context, code string) error {
	user, err := uc.users.VerifyByOTP(ctx, code)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrInvalidOTP
	}
	return nil
}

// Login valida credenciales y emite un JWT {id, email}. Orden: usuario, verificación, password.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.Verified {
		return nil, domain.ErrEmailNotVerified
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token}, nil
}

// ForgotPassword emite un código de reseteo independiente del de verificación.
func (uc *AuthUseCase) ForgotPassword(ctx context.Context, email string) error {
	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	code, err := otp.Generate()
	if err != nil {
		return err
	}
	user.ResetOTP = code
	user.UpdatedAt = time.Now()
	if err := uc.users.Update(ctx, user); err != nil {
		return err
	}
	uc.sendAsync(user.Email, "Password Reset", fmt.Sprintf(
		`<p>Use this OTP: <strong>%s</strong> to reset your password. Use the link: <a href="%s">Reset Password</a></p>`,
		code, uc.links.ResetPasswordURL))
	return nil
}

// ResetPassword consume el código de reseteo y guarda la nueva credencial.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, in dto.ResetPasswordRequest) error {
	user, err := uc.users.GetByResetOTP(ctx, in.OTP)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrInvalidOTP
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.ResetOTP = ""
	user.UpdatedAt = time.Now()
	return uc.users.Update(ctx, user)
}

// GetUser devuelve el usuario del token (nil si ya no existe).
func (uc *AuthUseCase) GetUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.FromUser(user), nil
}

// ListUsers devuelve id y username de todos los usuarios.
func (uc *AuthUseCase) ListUsers(ctx context.Context) ([]dto.UserSummary, error) {
	list, err := uc.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserSummary, 0, len(list))
	for _, u := range list {
		out = append(out, dto.UserSummary{ID: u.ID, Username: u.Username})
	}
	return out, nil
}

// Wait bloquea hasta que terminen los envíos de correo pendientes (apagado ordenado, tests).
func (uc *AuthUseCase) Wait() {
	uc.pending.Wait()
}

func (uc *AuthUseCase) sendAsync(to, subject, body string) {
	if uc.mailer == nil {
		return
	}
	uc.pending.Add(1)
	go func() {
		defer uc.pending.Done()
		ctx, cancel := context.WithTimeout(context.Background(), mailTimeout)
		defer cancel()
		if err := uc.mailer.Send(ctx, to, subject, body); err != nil {
			uc.log.Error().Err(err).Str("to", to).Str("subject", subject).Msg("envío de correo fallido")
		}
	}()
}
