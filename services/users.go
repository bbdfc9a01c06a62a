package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"influencer-crm-service/apperrors"
	"influencer-crm-service/auth"
	"influencer-crm-service/models"
	"influencer-crm-service/repositories"
)

type UserRepository interface {
	Repo[models.User]
	ByEmail(ctx context.Context, email string) (*models.User, error)
}

type TokenIssuer interface {
	Issue(user *models.User) (string, time.Time, error)
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateUserInput struct {
	Email    string      `json:"email" validate:"required,email,max=150"`
	Password string      `json:"password" validate:"required,min=8,max=72"`
	Name     string      `json:"name" validate:"max=150"`
	Role     models.Role `json:"role" validate:"required,oneof=SUPER_ADMIN FIRM_ADMIN STORE_MANAGER STAFF"`
	FirmID   *uint       `json:"firmId"`
	StoreID  *uint       `json:"storeId"`
}

type LoginResult struct {
	Token     string       `json:"accessToken"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      *models.User `json:"user"`
}

type UserService struct {
	logger *zap.Logger
	repo   UserRepository
	tokens TokenIssuer
}

func NewUserService(logger *zap.Logger, repo UserRepository, tokens TokenIssuer) *UserService {
	return &UserService{logger: logger, repo: repo, tokens: tokens}
}

func (s *UserService) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	user, err := s.repo.ByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active || !auth.CheckPassword(user.PasswordHash, in.Password) {
		s.logger.Info("Rejected login", zap.String("email", in.Email))
		return nil, apperrors.Unauthenticated("invalid email or password")
	}

	token, expires, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, ExpiresAt: expires, User: user}, nil
}

func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*models.User, error) {
	if in.Role != models.RoleSuperAdmin && in.FirmID == nil {
		return nil, apperrors.BadRequest("firmId is required for role %s", in.Role)
	}
	if (in.Role == models.RoleStoreManager || in.Role == models.RoleStaff) && in.StoreID == nil {
		return nil, apperrors.BadRequest("storeId is required for role %s", in.Role)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: hash,
		Name:         in.Name,
		Role:         in.Role,
		FirmID:       in.FirmID,
		StoreID:      in.StoreID,
		Active:       true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.Conflict("user %s already exists", user.Email)
		}
		return nil, err
	}
	s.logger.Info("User created", zap.Uint("user_id", user.ID), zap.String("role", string(user.Role)))
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	return s.repo.Get(ctx, id)
}

func (s *UserService) List(ctx context.Context, q repositories.ListQuery) (*Page[models.User], error) {
	return listPage(ctx, s.repo.List, q)
}
