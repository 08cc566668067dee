// Package textfold normalise le texte libre pour la recherche des vues liste:
// minuscules, accents retirés, espaces compactés ("Agréage  Définitif" -> "agreage definitif").
package textfold

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold renvoie la forme pliée de s.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.Join(strings.Fields(strings.ToLower(out)), " ")
}

// Contains indique si needle apparaît dans l'un des champs, sans tenir compte des accents ni de la casse.
// Un needle vide correspond toujours.
func Contains(needle string, fields ...string) bool {
	n := Fold(needle)
	if n == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(Fold(f), n) {
			return true
		}
	}
	return false
}
