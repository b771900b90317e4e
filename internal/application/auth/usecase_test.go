package auth_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturacion-api/internal/application/auth"
	"github.com/jhoicas/facturacion-api/internal/application/dto"
	"github.com/jhoicas/facturacion-api/internal/domain"
	"github.com/jhoicas/facturacion-api/internal/infrastructure/memory"
	"github.com/jhoicas/facturacion-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

// fakeMailer registra los correos enviados.
type fakeMailer struct {
	mu   sync.Mutex
	sent []string
}

func (m *fakeMailer) Send(_ context.Context, to, subject, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, to+"|"+subject)
	return nil
}

func newAuth(t *testing.T) (*auth.AuthUseCase, *memory.Store, *fakeMailer) {
	t.Helper()
	store := memory.NewStore()
	mailer := &fakeMailer{}
	uc := auth.NewAuthUseCase(store.Users(), mailer, auth.JWTConfig{
		Secret: testSecret, ExpMinutes: 60, Issuer: "facturacion-test",
	}, auth.Links{VerifyEmailURL: "http://front/verify", ResetPasswordURL: "http://front/reset"}, nil)
	return uc, store, mailer
}

func register(t *testing.T, uc *auth.AuthUseCase) {
	t.Helper()
	require.NoError(t, uc.Register(context.Background(), dto.RegisterRequest{
		Username: "ana", Email: "ana@example.com", Password: "secreto",
	}))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, _, mailer := newAuth(t)
	register(t, uc)

	err := uc.Register(context.Background(), dto.RegisterRequest{Username: "otra", Email: "ana@example.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	uc.Wait()
	assert.Equal(t, []string{"ana@example.com|Verify Email"}, mailer.sent)
}

func TestLogin_RequiresVerification(t *testing.T) {
	uc, store, _ := newAuth(t)
	ctx := context.Background()
	register(t, uc)
	defer uc.Wait()

	_, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: "secreto"})
	assert.ErrorIs(t, err, domain.ErrEmailNotVerified)

	assert.ErrorIs(t, uc.VerifyEmail(ctx, "000000-no"), domain.ErrInvalidOTP)

	user, err := store.Users().GetByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	require.NoError(t, uc.VerifyEmail(ctx, user.VerifyOTP))
	// El código se consume.
	assert.ErrorIs(t, uc.VerifyEmail(ctx, user.VerifyOTP), domain.ErrInvalidOTP)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: "mal"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@example.com", Password: "secreto"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: "secreto"})
	require.NoError(t, err)
	id, email, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)
	assert.Equal(t, "ana@example.com", email)
}

func TestPasswordReset(t *testing.T) {
	uc, store, mailer := newAuth(t)
	ctx := context.Background()
	register(t, uc)

	assert.ErrorIs(t, uc.ForgotPassword(ctx, "nadie@example.com"), domain.ErrUserNotFound)
	require.NoError(t, uc.ForgotPassword(ctx, "ana@example.com"))

	user, err := store.Users().GetByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, user.ResetOTP)
	assert.NotEqual(t, user.VerifyOTP, user.ResetOTP)

	assert.ErrorIs(t, uc.ResetPassword(ctx, dto.ResetPasswordRequest{OTP: "bad", NewPassword: "n"}), domain.ErrInvalidOTP)
	require.NoError(t, uc.ResetPassword(ctx, dto.ResetPasswordRequest{OTP: user.ResetOTP, NewPassword: "nuevo"}))
	require.NoError(t, uc.VerifyEmail(ctx, user.VerifyOTP))

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: "secreto"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: "nuevo"})
	assert.NoError(t, err)

	uc.Wait()
	assert.Len(t, mailer.sent, 2)
}

func TestListUsers(t *testing.T) {
	uc, _, _ := newAuth(t)
	register(t, uc)
	defer uc.Wait()

	users, err := uc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "ana", users[0].Username)

	missing, err := uc.GetUser(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
