// Package locale convierte números con formato europeo (coma decimal, punto de miles)
// tal como los exportan la caja registradora y las hojas de cálculo del bar.
package locale

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNotANumber indica que el token no representa un número en formato europeo.
var ErrNotANumber = errors.New("locale: número inválido")

var (
	integerPattern      = regexp.MustCompile(`^\d+$`)
	decimalCommaPattern = regexp.MustCompile(`^-?(\d{1,3}(\.\d{3})+|\d+),\d+$`)
	// Un solo punto sin coma y con un número de decimales distinto de tres.
	dotDecimalPattern = regexp.MustCompile(`^-?\d+\.(\d{1,2}|\d{4,})$`)
)

// Parse convierte "1.234,56" en 1234.56. Los puntos se eliminan como separadores de miles
// y la coma pasa a ser el separador decimal. Token vacío o no numérico devuelve ErrNotANumber.
func Parse(token string) (decimal.Decimal, error) {
	s := clean(token)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: vacío", ErrNotANumber)
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)
	if strings.ContainsAny(s, ",eE") {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrNotANumber, token)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrNotANumber, token)
	}
	return d, nil
}

// Normalize es Parse con valor por defecto: vacío o no numérico => 0.
// Se usa para campos de inventario y recetas, donde un valor faltante no invalida la fila.
func Normalize(token string) decimal.Decimal {
	d, err := Parse(token)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseInput es Parse para valores escritos a mano en el editor de tablas: acepta además
// el punto decimal ("12.5", "0.75"). Un único punto seguido de exactamente tres dígitos
// sigue siendo separador de miles ("1.750" => 1750).
func ParseInput(token string) (decimal.Decimal, error) {
	s := clean(token)
	if dotDecimalPattern.MatchString(s) {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %q", ErrNotANumber, token)
		}
		return d, nil
	}
	return Parse(token)
}

// NormalizeInput es ParseInput con valor por defecto 0.
func NormalizeInput(token string) decimal.Decimal {
	d, err := ParseInput(token)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// IsInteger indica si el token es un entero sin signo (solo dígitos).
func IsInteger(token string) bool {
	return integerPattern.MatchString(strings.TrimSpace(token))
}

// IsDecimalComma indica si el token tiene forma de número con coma decimal ("12,50", "1.234,00").
func IsDecimalComma(token string) bool {
	return decimalCommaPattern.MatchString(clean(token))
}

// IsNumeric indica si el token completo es numérico (entero o con coma decimal).
func IsNumeric(token string) bool {
	return IsInteger(token) || IsDecimalComma(token)
}

func clean(token string) string {
	s := strings.TrimSpace(token)
	s = strings.TrimSuffix(s, "€")
	s = strings.ReplaceAll(s, " ", "")
	return strings.TrimSpace(s)
}
