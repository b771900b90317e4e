package billing

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/facturacion-api/internal/domain"
)

// isoLayout formato de salida de las fechas normalizadas (UTC, milisegundos).
const isoLayout = "2006-01-02T15:04:05.000Z"

var inputLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
	"01/02/2006",
}

// parseDate interpreta las fechas que envían los clientes; sin zona horaria se asume UTC.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: fecha %q no reconocida", domain.ErrInvalidInput, s)
}

// normalizeDate devuelve la fecha como cadena ISO-8601 en UTC.
func normalizeDate(s string) (string, error) {
	t, err := parseDate(s)
	if err != nil {
		return "", err
	}
	return t.Format(isoLayout), nil
}
