package dto

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+(?:\.\d*)?|\.\d+)(?:[eE]([+-]?\d+))?`)

// Bornes d'une saisie: au-delà, la valeur vaut 0 comme une saisie non numérique.
const (
	maxAmountDigits   = 24
	maxAmountExponent = 15
)

// Amount nombre saisi dans un formulaire. Accepte un nombre JSON ou une chaîne; une valeur
// vide ou non numérique vaut 0, une chaîne est lue jusqu'au premier caractère non numérique
// ("12,5 kg" -> 12.5, la virgule décimale étant acceptée). Plus de maxAmountDigits chiffres
// ou un exposant hors de ±maxAmountExponent donnent aussi 0.
type Amount struct {
	decimal.Decimal
}

// NewAmount enveloppe d.
func NewAmount(d decimal.Decimal) Amount { return Amount{Decimal: d} }

// ParseAmount lit s selon les règles de Amount.
func ParseAmount(s string) Amount {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.Replace(s, ",", ".", 1)
	m := leadingNumber.FindStringSubmatch(s)
	if m == nil {
		return Amount{Decimal: decimal.Zero}
	}
	if len(m[1])-strings.Count(m[1], ".") > maxAmountDigits {
		return Amount{Decimal: decimal.Zero}
	}
	if m[2] != "" {
		exp, err := strconv.Atoi(m[2])
		if err != nil || exp > maxAmountExponent || exp < -maxAmountExponent {
			return Amount{Decimal: decimal.Zero}
		}
	}
	d, err := decimal.NewFromString(m[0])
	if err != nil {
		return Amount{Decimal: decimal.Zero}
	}
	return Amount{Decimal: d}
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*a = Amount{Decimal: decimal.Zero}
			return nil
		}
		*a = ParseAmount(s)
		return nil
	}
	*a = ParseAmount(string(b))
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// Ptr renvoie nil pour un Amount absent (nil), sinon la valeur décimale.
func (a *Amount) Ptr() *decimal.Decimal {
	if a == nil {
		return nil
	}
	d := a.Decimal
	return &d
}
