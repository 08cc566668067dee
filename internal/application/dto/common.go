package dto

// PageRequest pagination des vues liste.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// DefaultPage applique les valeurs par défaut et les bornes.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse métadonnées de page.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// ListResponse page d'éléments d'une vue.
type ListResponse[T any] struct {
	Items []T          `json:"items"`
	Page  PageResponse `json:"page"`
}

// ErrorResponse corps d'erreur HTTP. Errors reprend les erreurs par champ (422).
type ErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}
