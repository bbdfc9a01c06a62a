package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"influencer-crm-service/apperrors"
	"influencer-crm-service/models"
)

var firmAdmin = &Principal{UserID: 1, Roles: []models.Role{models.RoleFirmAdmin}, FirmID: "7"}

func TestDecideNoRolesAllowsAnonymous(t *testing.T) {
	assert.NoError(t, Decide(Requirement{}, nil, RequestView{}))
	assert.NoError(t, Decide(Requirement{Scope: ScopeFirm}, nil, RequestView{}))
}

func TestDecideUnauthenticated(t *testing.T) {
	err := Decide(Requirement{Roles: []models.Role{models.RoleStaff}}, nil, RequestView{})
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestDecideRoleMismatch(t *testing.T) {
	err := Decide(Requirement{Roles: []models.Role{models.RoleSuperAdmin}}, firmAdmin, RequestView{})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestDecideGlobalScope(t *testing.T) {
	req := Requirement{Roles: []models.Role{models.RoleFirmAdmin}, Scope: ScopeGlobal}
	assert.NoError(t, Decide(req, firmAdmin, RequestView{}))

	req.Scope = ""
	assert.NoError(t, Decide(req, firmAdmin, RequestView{}))
}

func TestDecideRequiresCallerFirm(t *testing.T) {
	caller := &Principal{UserID: 2, Roles: []models.Role{models.RoleFirmAdmin}}
	err := Decide(Requirement{Roles: caller.Roles, Scope: ScopeFirm}, caller, RequestView{Params: map[string]string{"firmId": "7"}})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	assert.Contains(t, err.Error(), "firm context required")
}

func TestDecideFirmScopeLookupOrder(t *testing.T) {
	req := Requirement{Roles: []models.Role{models.RoleFirmAdmin}, Scope: ScopeFirm}

	// params win over body and query
	view := RequestView{
		Params: map[string]string{"firmId": "7"},
		Body:   map[string]string{"firmId": "8"},
		Query:  map[string]string{"firmId": "9"},
	}
	assert.NoError(t, Decide(req, firmAdmin, view))

	// body wins over query
	view = RequestView{Body: map[string]string{"firmId": "8"}, Query: map[string]string{"firmId": "7"}}
	err := Decide(req, firmAdmin, view)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	assert.Contains(t, err.Error(), "another firm")

	view = RequestView{Query: map[string]string{"firmId": "7"}}
	assert.NoError(t, Decide(req, firmAdmin, view))
}

func TestDecideStoreScopeUsesStoreFirmParam(t *testing.T) {
	req := Requirement{Roles: []models.Role{models.RoleFirmAdmin}, Scope: ScopeStore}

	assert.NoError(t, Decide(req, firmAdmin, RequestView{Params: map[string]string{"storeFirmId": "7"}}))

	// storeFirmId is not consulted for firm scope
	req.Scope = ScopeFirm
	err := Decide(req, firmAdmin, RequestView{Params: map[string]string{"storeFirmId": "7"}})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	assert.Contains(t, err.Error(), "must be provided")
}

func TestDecideMissingScopedFirm(t *testing.T) {
	req := Requirement{Roles: []models.Role{models.RoleFirmAdmin}, Scope: ScopeStore}
	err := Decide(req, firmAdmin, RequestView{})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	assert.Contains(t, err.Error(), "must be provided")
}
