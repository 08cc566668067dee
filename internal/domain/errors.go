package domain

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Erreurs de domaine (sans dépendances externes).
var (
	ErrNotFound             = errors.New("ressource introuvable")
	ErrInvalidInput         = errors.New("entrée invalide")
	ErrDuplicate            = errors.New("ressource en double")
	ErrUnauthorized         = errors.New("non autorisé")
	ErrForbidden            = errors.New("accès refusé")
	ErrConflict             = errors.New("conflit avec l'état actuel")
	ErrTransitionNotAllowed = errors.New("transition non autorisée pour le statut actuel")
	ErrUpstream             = errors.New("API distante indisponible")
	ErrNotLoaded            = errors.New("données pas encore chargées")
)

// APIError réponse non-2xx de l'API distante.
// Message et Fields reprennent la forme Laravel {message, errors:{champ:[msgs]}}.
type APIError struct {
	Status  int
	Message string
	Fields  map[string][]string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: HTTP %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: HTTP %d", e.Status)
}

// Is rattache les statuts HTTP courants aux sentinelles de domaine.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrInvalidInput:
		return e.Status == http.StatusUnprocessableEntity || e.Status == http.StatusBadRequest
	case ErrConflict:
		return e.Status == http.StatusConflict
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrForbidden:
		return e.Status == http.StatusForbidden
	case ErrUpstream:
		return e.Status >= 500
	}
	return false
}

// ValidationError refus côté client, avant tout appel réseau.
type ValidationError struct {
	Messages []string
	Fields   map[string][]string
}

// NewValidationError construit l'erreur à partir de messages par champ.
func NewValidationError(fields map[string][]string) *ValidationError {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msgs := make([]string, 0, len(fields))
	for _, k := range keys {
		msgs = append(msgs, fields[k]...)
	}
	return &ValidationError{Messages: msgs, Fields: fields}
}

func (e *ValidationError) Error() string {
	return "validation: " + strings.Join(e.Messages, "; ")
}

// Unwrap permet errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// FieldErrors extrait les erreurs par champ (client ou serveur). nil si aucune.
func FieldErrors(err error) map[string][]string {
	var ve *ValidationError
	if errors.As(err, &ve) && len(ve.Fields) > 0 {
		return ve.Fields
	}
	var ae *APIError
	if errors.As(err, &ae) && len(ae.Fields) > 0 {
		return ae.Fields
	}
	return nil
}

// DisplayMessage message à afficher pour err: première erreur par champ (ordre alphabétique),
// puis message serveur, puis texte de l'erreur.
func DisplayMessage(err error) string {
	if err == nil {
		return ""
	}
	if fields := FieldErrors(err); fields != nil {
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if len(fields[k]) > 0 {
				return fields[k][0]
			}
		}
	}
	var ae *APIError
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	var ve *ValidationError
	if errors.As(err, &ve) && len(ve.Messages) > 0 {
		return ve.Messages[0]
	}
	return err.Error()
}
