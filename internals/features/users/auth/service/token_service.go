package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"rayk_backend/internals/configs"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// TokenClaims is what we put in both access and refresh tokens. org_id and
// org_role name the active organization picked at login / switch-org.
type TokenClaims struct {
	UserID   uuid.UUID
	UserName string
	OrgID    *uuid.UUID
	OrgRole  string
}

func GenerateAccessToken(tc TokenClaims) (string, error) {
	return signToken(tc, configs.JWTSecret, AccessTokenTTL)
}

func GenerateRefreshToken(tc TokenClaims) (string, error) {
	return signToken(tc, configs.JWTRefreshSecret, RefreshTokenTTL)
}

func signToken(tc TokenClaims, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret not configured")
	}
	claims := jwt.MapClaims{
		"user_id":   tc.UserID.String(),
		"user_name": tc.UserName,
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(ttl).Unix(),
	}
	if tc.OrgID != nil {
		claims["org_id"] = tc.OrgID.String()
		claims["org_role"] = tc.OrgRole
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseRefreshToken verifies a refresh token and returns its claims.
func ParseRefreshToken(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}
