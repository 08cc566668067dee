package finance

import "strings"

// Modes d'encaissement proposés par les formulaires.
const (
	EncaissementEspeces     = "Espèces"
	EncaissementMobileMoney = "Mobile money"
	EncaissementCheque      = "Chèque"
	EncaissementVirement    = "Virement"
)

// ComposeEncaissement compose la valeur "<type>: <valeur>".
// Sans valeur, seul le type est renvoyé.
func ComposeEncaissement(kind, value string) string {
	kind = strings.TrimSpace(kind)
	value = strings.TrimSpace(value)
	if value == "" {
		return kind
	}
	if kind == "" {
		return value
	}
	return kind + ": " + value
}

// ParseEncaissement découpe une valeur composée par ComposeEncaissement.
func ParseEncaissement(s string) (kind, value string) {
	k, v, ok := strings.Cut(s, ":")
	if !ok {
		return strings.TrimSpace(s), ""
	}
	return strings.TrimSpace(k), strings.TrimSpace(v)
}
