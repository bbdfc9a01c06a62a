package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"influencer-crm-service/apperrors"
	"influencer-crm-service/auth"
	"influencer-crm-service/config"
	"influencer-crm-service/models"
)

type memUsers struct {
	*memRepo[models.User]
}

func (m *memUsers) ByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.items {
		if strings.EqualFold(u.Email, email) {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func newUserService() (*UserService, *auth.TokenManager) {
	repo := &memUsers{memRepo: newMemRepo(
		func(u *models.User, id uint) { u.ID = id },
		func(u *models.User) uint { return u.ID },
	)}
	tokens := auth.NewTokenManager(&config.AuthConfig{JWTSecret: "test-secret", TokenTTL: time.Hour})
	return NewUserService(zap.NewNop(), repo, tokens), tokens
}

func TestCreateUserAndLogin(t *testing.T) {
	svc, tokens := newUserService()
	ctx := context.Background()

	user, err := svc.Create(ctx, CreateUserInput{
		Email:    "Owner@Firm.example",
		Password: "correct horse",
		Role:     models.RoleFirmAdmin,
		FirmID:   uintPtr(4),
	})
	require.NoError(t, err)
	assert.Equal(t, "owner@firm.example", user.Email)
	assert.NotEqual(t, "correct horse", user.PasswordHash)

	result, err := svc.Login(ctx, LoginInput{Email: "owner@firm.example", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, result.User.ID)

	principal, err := tokens.Parse(result.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, principal.UserID)
	assert.Equal(t, "4", principal.FirmID)
	assert.Equal(t, []models.Role{models.RoleFirmAdmin}, principal.Roles)

	_, err = svc.Login(ctx, LoginInput{Email: "owner@firm.example", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)

	_, err = svc.Login(ctx, LoginInput{Email: "nobody@firm.example", Password: "correct horse"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestCreateUserRequiresTenantContext(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateUserInput{Email: "a@b.example", Password: "12345678", Role: models.RoleFirmAdmin})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	_, err = svc.Create(ctx, CreateUserInput{Email: "a@b.example", Password: "12345678", Role: models.RoleStaff, FirmID: uintPtr(1)})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	_, err = svc.Create(ctx, CreateUserInput{Email: "root@b.example", Password: "12345678", Role: models.RoleSuperAdmin})
	assert.NoError(t, err)
}
