// internal/app/features/signup/admission.go
package signup

import (
	"context"
	"errors"
	"fmt"

	identitystore "github.com/uovhub/campusevents/internal/app/store/identities"
	userstore "github.com/uovhub/campusevents/internal/app/store/users"
	"github.com/uovhub/campusevents/internal/app/system/normalize"
	"github.com/uovhub/campusevents/internal/domain/apperr"
	"github.com/uovhub/campusevents/internal/domain/models"
	"go.uber.org/zap"
)

// WhitelistChecker answers whether a registration number is pre-approved.
// A store outage must surface as a KindUnavailable error, never as false.
type WhitelistChecker interface {
	IsWhitelisted(ctx context.Context, regNo string) (bool, error)
}

// IdentityProvider creates and (compensatingly) deletes credentials.
type IdentityProvider interface {
	CreateIdentity(ctx context.Context, email, password string) (string, error)
	DeleteIdentity(ctx context.Context, id string) error
}

// UserCreator persists the user profile.
type UserCreator interface {
	Create(ctx context.Context, u models.User) (models.User, error)
}

// AdmitRequest is the signup input.
type AdmitRequest struct {
	FullName string `json:"full_name"`
	RegNo    string `json:"reg_no"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Admission decides a new account's initial status and creates it.
type Admission struct {
	Whitelist WhitelistChecker
	Identity  IdentityProvider
	Users     UserCreator
	Log       *zap.Logger
}

// Admit runs the signup sequence:
//
//  1. validate and normalize the input
//  2. consult the whitelist — found means the account starts approved,
//     a definite miss means pending, an outage aborts the whole signup
//  3. create the identity (credentials)
//  4. persist the profile keyed by the identity ID; if that write fails the
//     identity is deleted again so no partial state is observable
//
// The whitelist check runs before identity creation on purpose: an aborted
// signup must leave nothing behind, and a transient registry outage must
// not silently demote a legitimate applicant to pending.
func (a *Admission) Admit(ctx context.Context, req AdmitRequest) (*models.User, error) {
	fullName := normalize.Name(req.FullName)
	regNo := normalize.RegNo(req.RegNo)
	email := normalize.Email(req.Email)

	switch {
	case fullName == "":
		return nil, apperr.Validation("full name is required")
	case regNo == "":
		return nil, apperr.Validation("registration number is required")
	case email == "":
		return nil, apperr.Validation("email is required")
	case req.Password == "":
		return nil, apperr.Validation("password is required")
	}

	listed, err := a.Whitelist.IsWhitelisted(ctx, regNo)
	if err != nil {
		return nil, fmt.Errorf("admission: %w", err)
	}
	status := models.StatusPending
	if listed {
		status = models.StatusApproved
	}

	identityID, err := a.Identity.CreateIdentity(ctx, email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, identitystore.ErrEmailInUse):
			return nil, apperr.Conflict("this email is already registered")
		case errors.Is(err, identitystore.ErrWeakPassword):
			return nil, apperr.Validation("%v", err)
		}
		return nil, apperr.Unavailable("identity creation", err)
	}

	user, err := a.Users.Create(ctx, models.User{
		ID:       identityID,
		FullName: fullName,
		RegNo:    regNo,
		Email:    email,
		Role:     models.RoleStudent,
		Status:   status,
	})
	if err != nil {
		// Compensate so the email is free to retry with.
		if delErr := a.Identity.DeleteIdentity(ctx, identityID); delErr != nil {
			a.Log.Error("compensating identity delete failed; identity orphaned",
				zap.String("identity_id", identityID), zap.Error(delErr))
		}
		if errors.Is(err, userstore.ErrDuplicateEmail) {
			return nil, apperr.Conflict("this email is already registered")
		}
		return nil, apperr.Unavailable("profile creation", err)
	}

	a.Log.Info("user admitted",
		zap.String("user_id", user.ID),
		zap.String("reg_no", user.RegNo),
		zap.String("status", string(user.Status)))
	return &user, nil
}
