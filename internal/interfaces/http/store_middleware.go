package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/viaconsulting/dashboard-huiles/internal/application/dto"
	"github.com/viaconsulting/dashboard-huiles/internal/application/store"
)

// snapshotter contrat minimal du store pour le middleware.
type snapshotter interface {
	Snapshot() store.State
}

// RequireLoaded bloque les vues tant que le premier chargement n'est pas terminé.
//
// Comportement:
//   - 503 LOADING tant que le chargement initial est en cours.
//   - 503 NOT_LOADED si le premier chargement a échoué sans aucune donnée.
//   - sinon passe; une erreur sur des données déjà chargées est signalée par l'en-tête X-Data-Stale.
func RequireLoaded(st snapshotter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := st.Snapshot()
		if s.InitialLoading {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "LOADING",
				Message: "chargement des données en cours",
			})
		}
		if s.Error != "" {
			if s.FetchedAt.IsZero() {
				return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
					Code:    "NOT_LOADED",
					Message: s.Error,
				})
			}
			c.Set("X-Data-Stale", "1")
		}
		return c.Next()
	}
}
