package mail

import (
	"bytes"
	"context"
	"testing"

	"github.com/jhoicas/facturacion-api/pkg/config"
	"github.com/jhoicas/facturacion-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WithoutHostLogs(t *testing.T) {
	var buf bytes.Buffer
	m := New(config.MailConfig{}, logger.New(logger.Config{Env: "test", Out: &buf}))

	_, ok := m.(*LogMailer)
	require.True(t, ok)
	require.NoError(t, m.Send(context.Background(), "a@b.com", "Verify Email", "<p>123456</p>"))
	assert.Contains(t, buf.String(), "a@b.com")
}

func TestNew_WithHostUsesSMTP(t *testing.T) {
	m := New(config.MailConfig{Host: "smtp.example.com", Port: 587, User: "u@example.com"}, logger.Nop())

	s, ok := m.(*SMTPMailer)
	require.True(t, ok)
	assert.Equal(t, "u@example.com", s.from)
}

func TestSMTPMailer_CanceledContext(t *testing.T) {
	m := NewSMTPMailer(config.MailConfig{Host: "smtp.example.com", Port: 587})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, m.Send(ctx, "a@b.com", "s", "b"), context.Canceled)
}
