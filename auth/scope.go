package auth

import (
	"fmt"

	"influencer-crm-service/apperrors"
	"influencer-crm-service/models"
)

type Scope string

const (
	ScopeGlobal Scope = "GLOBAL"
	ScopeFirm   Scope = "FIRM"
	ScopeStore  Scope = "STORE"
)

// Requirement is the access metadata declared on a route.
type Requirement struct {
	Roles []models.Role
	Scope Scope
}

// RequestView exposes the parts of a request the scope check reads from.
// Values are already stringified; missing keys are absent from the maps.
type RequestView struct {
	Params map[string]string
	Body   map[string]string
	Query  map[string]string
}

// Decide evaluates a requirement against the caller. It is pure: the same
// inputs always produce the same outcome.
func Decide(req Requirement, caller *Principal, view RequestView) error {
	if len(req.Roles) == 0 {
		return nil
	}
	if caller == nil {
		return apperrors.Unauthenticated("authentication required")
	}
	if !caller.HasAnyRole(req.Roles) {
		return apperrors.Forbidden("insufficient role")
	}
	if req.Scope == "" || req.Scope == ScopeGlobal {
		return nil
	}
	if caller.FirmID == "" {
		return apperrors.Forbidden("firm context required")
	}

	scoped := resolveFirmID(req.Scope, view)
	if scoped == "" {
		return apperrors.Forbidden(fmt.Sprintf("firmId must be provided for %s scoped access", req.Scope))
	}
	if scoped != caller.FirmID {
		return apperrors.Forbidden("resource belongs to another firm")
	}
	return nil
}

func resolveFirmID(scope Scope, view RequestView) string {
	var candidates []string
	switch scope {
	case ScopeFirm:
		candidates = []string{view.Params["firmId"], view.Body["firmId"], view.Query["firmId"]}
	case ScopeStore:
		candidates = []string{view.Params["firmId"], view.Params["storeFirmId"], view.Body["firmId"], view.Query["firmId"]}
	}
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}
