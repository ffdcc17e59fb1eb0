// internal/app/features/signup/handler.go
package signup

import (
	"net/http"

	identitystore "github.com/uovhub/campusevents/internal/app/store/identities"
	userstore "github.com/uovhub/campusevents/internal/app/store/users"
	whiteliststore "github.com/uovhub/campusevents/internal/app/store/whitelist"
	"github.com/uovhub/campusevents/internal/app/system/httpjson"
	"github.com/uovhub/campusevents/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level handler for signup.
type Handler struct {
	Log       *zap.Logger
	Admission *Admission
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Log: logger,
		Admission: &Admission{
			Whitelist: whiteliststore.New(db),
			Identity:  identitystore.New(db),
			Users:     userstore.New(db),
			Log:       logger,
		},
	}
}

// signupResponse echoes the created account and its computed status so the
// client can branch: approved proceeds, pending shows "await review".
type signupResponse struct {
	User   *models.User  `json:"user"`
	Status models.Status `json:"status"`
}

// HandleSignup creates an account.
// POST /signup
func (h *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req AdmitRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Err(w, h.Log, err)
		return
	}

	user, err := h.Admission.Admit(r.Context(), req)
	if err != nil {
		httpjson.Err(w, h.Log, err)
		return
	}

	httpjson.Respond(w, http.StatusCreated, signupResponse{User: user, Status: user.Status})
}
