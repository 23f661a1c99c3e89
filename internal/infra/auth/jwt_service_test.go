package auth

import (
	"testing"
	"time"

	"subtrack/config"
	"subtrack/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	return cfg
}

func sign(t *testing.T, method jwt.SigningMethod, claims jwt.Claims, key any) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_ValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	userID := uuid.New()
	future := jwt.NewNumericDate(time.Now().Add(15 * time.Minute))

	tests := []struct {
		name      string
		token     func(t *testing.T) string
		wantErr   bool
		wantRoles []string
	}{
		{
			name: "uid claim",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, &service.Claims{
					UserID:           userID,
					Roles:            []string{"admin"},
					Type:             "access",
					RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: future},
				}, []byte(testSecret))
			},
			wantRoles: []string{"admin"},
		},
		{
			name: "subject fallback",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, jwt.RegisteredClaims{
					Subject:   userID.String(),
					ExpiresAt: future,
				}, []byte(testSecret))
			},
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, jwt.RegisteredClaims{
					Subject:   userID.String(),
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
				}, []byte(testSecret))
			},
			wantErr: true,
		},
		{
			name: "missing expiry",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: userID.String()}, []byte(testSecret))
			},
			wantErr: true,
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, jwt.RegisteredClaims{
					Subject:   userID.String(),
					ExpiresAt: future,
				}, []byte("another-secret"))
			},
			wantErr: true,
		},
		{
			name: "refresh token rejected",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, &service.Claims{
					UserID:           userID,
					Type:             "refresh",
					RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: future},
				}, []byte(testSecret))
			},
			wantErr: true,
		},
		{
			name:    "garbage",
			token:   func(*testing.T) string { return "clearly-not-a-jwt-token-format" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := jwtService.ValidateToken(tt.token(t))
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, claims)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, userID, claims.UserID)
			assert.Equal(t, tt.wantRoles, claims.Roles)
		})
	}
}
