package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Digits longitud de los códigos de un solo uso.
const Digits = 6

var upper = big.NewInt(1_000_000)

// Generate devuelve un código numérico de 6 dígitos (con ceros a la izquierda).
func Generate() (string, error) {
	n, err := rand.Int(rand.Reader, upper)
	if err != nil {
		return "", fmt.Errorf("otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
