package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rayk_backend/internals/configs"
)

func TestRefreshTokenRoundTrip(t *testing.T) {
	configs.JWTRefreshSecret = "test-refresh-secret"

	orgID := uuid.New()
	tc := TokenClaims{
		UserID:   uuid.New(),
		UserName: "فهد",
		OrgID:    &orgID,
		OrgRole:  "owner",
	}

	token, err := GenerateRefreshToken(tc)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, tc.UserID.String(), claims["user_id"])
	assert.Equal(t, "فهد", claims["user_name"])
	assert.Equal(t, orgID.String(), claims["org_id"])
	assert.Equal(t, "owner", claims["org_role"])
}

func TestGenerateTokenWithoutSecret(t *testing.T) {
	configs.JWTSecret = ""
	_, err := GenerateAccessToken(TokenClaims{UserID: uuid.New()})
	assert.Error(t, err)
}

func TestParseRefreshTokenRejectsTampering(t *testing.T) {
	configs.JWTRefreshSecret = "test-refresh-secret"
	token, err := GenerateRefreshToken(TokenClaims{UserID: uuid.New()})
	require.NoError(t, err)

	configs.JWTRefreshSecret = "a-different-secret"
	_, err = ParseRefreshToken(token)
	assert.Error(t, err)
}

func TestTokenWithoutOrgOmitsOrgClaims(t *testing.T) {
	configs.JWTRefreshSecret = "test-refresh-secret"
	token, err := GenerateRefreshToken(TokenClaims{UserID: uuid.New(), UserName: "sara"})
	require.NoError(t, err)

	claims, err := ParseRefreshToken(token)
	require.NoError(t, err)
	_, hasOrg := claims["org_id"]
	assert.False(t, hasOrg)
}
