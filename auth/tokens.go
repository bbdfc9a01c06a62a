package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"influencer-crm-service/config"
	"influencer-crm-service/models"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims represents JWT claims
type Claims struct {
	Email   string   `json:"email"`
	Roles   []string `json:"roles"`
	FirmID  string   `json:"firmId,omitempty"`
	StoreID string   `json:"storeId,omitempty"`
	jwt.RegisteredClaims
}

type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(cfg *config.AuthConfig) *TokenManager {
	return &TokenManager{secret: []byte(cfg.JWTSecret), ttl: cfg.TokenTTL, now: time.Now}
}

func (m *TokenManager) TTL() time.Duration { return m.ttl }

// Issue signs a token for the user.
func (m *TokenManager) Issue(user *models.User) (string, time.Time, error) {
	now := m.now()
	expires := now.Add(m.ttl)
	claims := Claims{
		Email:   user.Email,
		Roles:   []string{string(user.Role)},
		FirmID:  idString(user.FirmID),
		StoreID: idString(user.StoreID),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expires, nil
}

// Parse validates a token and returns its principal.
func (m *TokenManager) Parse(tokenString string) (*Principal, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}

	roles := make([]models.Role, 0, len(claims.Roles))
	for _, r := range claims.Roles {
		roles = append(roles, models.Role(r))
	}

	return &Principal{
		UserID:  uint(userID),
		Email:   claims.Email,
		Roles:   roles,
		FirmID:  claims.FirmID,
		StoreID: claims.StoreID,
	}, nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
