package ports

import "context"

// Mailer puerto de salida para el envío de correos (códigos OTP).
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
