package entity

import (
	"bytes"
	"fmt"
	"time"
)

// timestampLayouts formats acceptés depuis le backend (Laravel sérialise selon la config du modèle).
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Timestamp date/heure tolérante au format; la valeur zéro s'encode en null.
type Timestamp struct {
	time.Time
}

// NewTimestamp enveloppe t.
func NewTimestamp(t time.Time) Timestamp { return Timestamp{Time: t} }

// ParseTimestamp lit s selon les formats connus.
func ParseTimestamp(s string) (Timestamp, error) {
	if s == "" {
		return Timestamp{}, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return Timestamp{Time: t}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("date invalide %q", s)
}

// UnmarshalJSON accepte null, "" et les formats de timestampLayouts.
func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		ts.Time = time.Time{}
		return nil
	}
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("date invalide %s", string(b))
	}
	parsed, err := ParseTimestamp(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}

// MarshalJSON encode au format "AAAA-MM-JJ HH:MM:SS" attendu par le backend.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + ts.Format("2006-01-02 15:04:05") + `"`), nil
}
