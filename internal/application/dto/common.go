package dto

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Barkeeper-api/pkg/locale"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// LocaleNumber valor numérico tal como lo escribe el usuario en el editor de tablas.
// Acepta un número JSON (1234.5), un texto con formato alemán ("1.234,5") o con punto
// decimal ("12.5"). Vacío o no numérico equivale a 0 (ver locale.NormalizeInput).
type LocaleNumber string

// UnmarshalJSON implementa json.Unmarshaler.
func (n *LocaleNumber) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		*n = ""
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = LocaleNumber(s)
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return err
	}
	*n = LocaleNumber(strings.Replace(d.String(), ".", ",", 1))
	return nil
}

// Decimal valor normalizado.
func (n LocaleNumber) Decimal() decimal.Decimal {
	return locale.NormalizeInput(string(n))
}
