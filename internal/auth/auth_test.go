package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oliveraie/oliveraie/internal/auth"
)

func newService(password string) *auth.Service {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SigningKey: "test-signing-key",
		Issuer:     "https://api.test",
		Audience:   "test-admin",
	})
	return auth.NewService(auth.ServiceConfig{
		JWTService:    jwtService,
		AdminUser:     "admin",
		AdminPassword: password,
	})
}

func TestLogin_Success(t *testing.T) {
	service := newService("correct horse battery staple")

	token, expiresAt, err := service.Login("admin", "correct horse battery staple")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(auth.AccessTokenExpiry), expiresAt, time.Minute)

	assert.NoError(t, service.ValidateAccessToken(token))
}

func TestLogin_WrongCredentials(t *testing.T) {
	service := newService("secret")

	_, _, err := service.Login("admin", "wrong")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, _, err = service.Login("root", "secret")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_DisabledWithoutPassword(t *testing.T) {
	service := newService("")

	_, _, err := service.Login("admin", "")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestValidateAccessToken_Garbage(t *testing.T) {
	service := newService("secret")

	err := service.ValidateAccessToken("not.a.token")
	assert.ErrorIs(t, err, auth.ErrInvalidAccessToken)
}

func TestValidateAccessToken_WrongKey(t *testing.T) {
	issuing := auth.NewJWTService(auth.JWTConfig{SigningKey: "key-a", Issuer: "i", Audience: "a"})
	token, _, err := issuing.GenerateAccessToken()
	require.NoError(t, err)

	validating := auth.NewJWTService(auth.JWTConfig{SigningKey: "key-b", Issuer: "i", Audience: "a"})
	_, err = validating.ValidateAccessToken(token)
	assert.ErrorIs(t, err, auth.ErrInvalidAccessToken)
}

func TestValidateAccessToken_WrongAudience(t *testing.T) {
	issuing := auth.NewJWTService(auth.JWTConfig{SigningKey: "key", Issuer: "i", Audience: "other"})
	token, _, err := issuing.GenerateAccessToken()
	require.NoError(t, err)

	validating := auth.NewJWTService(auth.JWTConfig{SigningKey: "key", Issuer: "i", Audience: "admin"})
	_, err = validating.ValidateAccessToken(token)
	assert.ErrorIs(t, err, auth.ErrInvalidAccessToken)
}
