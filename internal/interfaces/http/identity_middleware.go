package http

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturacion-api/internal/application/analytics"
	"github.com/jhoicas/facturacion-api/internal/application/dto"
	"github.com/jhoicas/facturacion-api/pkg/jwt"
)

// Locals keys de la identidad resuelta.
const (
	LocalUserID   = "user_id"
	LocalTokenErr = "token_err"
)

var errMissingToken = errors.New("jwt must be provided")

// Identity resuelve el usuario del token y lo deja en c.Locals. No corta la petición:
// si el token falta o es inválido guarda el error y cada endpoint decide (ruta de error genérica).
// El token se lee de "Authorization: Bearer", del query "token" o del campo "token" del body JSON.
func Identity(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFrom(c)
		if token == "" {
			c.Locals(LocalTokenErr, errMissingToken)
			return c.Next()
		}
		userID, _, err := jwt.Parse(jwtSecret, token)
		if err != nil {
			c.Locals(LocalTokenErr, err)
			return c.Next()
		}
		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

func tokenFrom(c *fiber.Ctx) string {
	if header := c.Get(fiber.HeaderAuthorization); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	if t := c.Query("token"); t != "" {
		return t
	}
	if len(c.Body()) > 0 && strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEApplicationJSON) {
		var body dto.TokenRequest
		if err := json.Unmarshal(c.Body(), &body); err == nil {
			return body.Token
		}
	}
	return ""
}

// CurrentUser devuelve el UserID del token o el error de verificación.
func CurrentUser(c *fiber.Ctx) (string, error) {
	if err, ok := c.Locals(LocalTokenErr).(error); ok {
		return "", err
	}
	userID, _ := c.Locals(LocalUserID).(string)
	if userID == "" {
		return "", errMissingToken
	}
	return userID, nil
}

func userResolver(c *fiber.Ctx) analytics.UserResolver {
	return func() (string, error) { return CurrentUser(c) }
}
