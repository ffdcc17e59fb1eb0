// internal/app/features/events/routes.go
package events

import (
	"github.com/uovhub/campusevents/internal/app/system/auth"

	"github.com/go-chi/chi/v5"
)

// Routes mounts the event routes.
// Typically: r.Mount("/events", events.Routes(handler))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)

		pr.Get("/", h.ServeList)
		pr.Post("/", h.HandleCreate)
		pr.Get("/{id}", h.ServeDetail)
		pr.Post("/{id}/join", h.HandleJoin)
		pr.Post("/{id}/delete", h.HandleDelete)
	})

	return r
}
