// internal/app/features/adminusers/list.go
package adminusers

import (
	"net/http"

	"github.com/uovhub/campusevents/internal/app/system/httpjson"
)

// ServeList returns every user, pending accounts first so review work is at
// the top of the dashboard.
// GET /admin/users
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.List(r.Context())
	if err != nil {
		httpjson.Err(w, h.Log, err)
		return
	}
	httpjson.Respond(w, http.StatusOK, users)
}
