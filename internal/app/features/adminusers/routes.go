// internal/app/features/adminusers/routes.go
package adminusers

import (
	"github.com/uovhub/campusevents/internal/app/system/authz"

	"github.com/go-chi/chi/v5"
)

// Routes mounts the admin user-management routes.
// Typically: r.Mount("/admin/users", adminusers.Routes(handler))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(authz.RequireAdmin)

		pr.Get("/", h.ServeList)
		pr.Get("/watch", h.ServeWatch)

		pr.Post("/{id}/approve", h.HandleApprove)
		pr.Post("/{id}/promote", h.HandlePromote)
		pr.Post("/{id}/demote", h.HandleDemote)
		pr.Post("/{id}/delete", h.HandleDelete)
	})

	return r
}
