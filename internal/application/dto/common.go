package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// MessageResponse cuerpo de las respuestas que solo informan un mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenRequest token opcional en el cuerpo (alternativa al header Authorization).
type TokenRequest struct {
	Token string `json:"token"`
}

// YesNo flag que viaja como "Y"/"N". Acepta también booleanos JSON en la entrada.
type YesNo bool

func (f YesNo) MarshalJSON() ([]byte, error) {
	if f {
		return []byte(`"Y"`), nil
	}
	return []byte(`"N"`), nil
}

func (f *YesNo) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*f = false
		return nil
	case bytes.Equal(data, []byte("true")):
		*f = true
		return nil
	case bytes.Equal(data, []byte("false")):
		*f = false
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("flag: se esperaba \"Y\"/\"N\" o booleano")
	}
	switch s {
	case "Y", "y":
		*f = true
	case "N", "n", "":
		*f = false
	default:
		return fmt.Errorf("flag: valor %q inválido", s)
	}
	return nil
}

// Discriminadores de las filas de reporte.
const (
	TypeCompany               = "Company"
	TypeCustomersWithCompany  = "CustomersWithCompanyNames"
	TypeItemsWithCompany      = "ItemsWithCompanyNames"
	TypeInvoicesWithRelations = "InvoicesWithRelations"
)
