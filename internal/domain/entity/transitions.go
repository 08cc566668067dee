package entity

// ReceptionTransitions statut courant et transitions permises, telles que déclarées par le backend.
type ReceptionTransitions struct {
	ReceptionID          int64    `json:"reception_id"`
	CurrentStatus        string   `json:"current_status"`
	AvailableTransitions []string `json:"available_transitions"`
}
