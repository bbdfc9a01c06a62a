package auth

import (
	"context"
	"strconv"

	"influencer-crm-service/models"
)

// Principal is the authenticated caller resolved from a token.
type Principal struct {
	UserID  uint
	Email   string
	Roles   []models.Role
	FirmID  string
	StoreID string
}

func (p *Principal) HasAnyRole(roles []models.Role) bool {
	for _, have := range p.Roles {
		for _, want := range roles {
			if have == want {
				return true
			}
		}
	}
	return false
}

// ActorID returns the user id as a pointer, suitable for timeline entries.
func (p *Principal) ActorID() *uint {
	if p == nil || p.UserID == 0 {
		return nil
	}
	id := p.UserID
	return &id
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom returns the caller, or nil for anonymous requests.
func PrincipalFrom(ctx context.Context) *Principal {
	p, _ := ctx.Value(principalKey{}).(*Principal)
	return p
}

func idString(id *uint) string {
	if id == nil {
		return ""
	}
	return strconv.FormatUint(uint64(*id), 10)
}
