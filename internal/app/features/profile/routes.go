// internal/app/features/profile/routes.go
package profile

import (
	"github.com/uovhub/campusevents/internal/app/system/auth"

	"github.com/go-chi/chi/v5"
)

// Routes mounts the own-profile routes.
// Typically: r.Mount("/me", profile.Routes(handler))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)

		pr.Get("/", h.ServeProfile)
		pr.Post("/password", h.HandleChangePassword)
	})

	return r
}
