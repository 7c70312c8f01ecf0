package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"time"
)

// ErrInvalidCredentials is returned when a login attempt fails. The message
// is deliberately unspecific about which part was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ServiceConfig holds configuration for the auth service.
type ServiceConfig struct {
	JWTService *JWTService

	// AdminUser and AdminPassword are the dashboard credentials, supplied
	// from the environment at startup.
	AdminUser     string
	AdminPassword string
}

// Service authenticates dashboard logins and validates access tokens.
type Service struct {
	jwt          *JWTService
	userDigest   [32]byte
	passDigest   [32]byte
	loginEnabled bool
}

// NewService creates a new auth service. When no admin password is
// configured, login is disabled entirely rather than accepting an empty
// string.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		jwt:          cfg.JWTService,
		userDigest:   sha256.Sum256([]byte(cfg.AdminUser)),
		passDigest:   sha256.Sum256([]byte(cfg.AdminPassword)),
		loginEnabled: cfg.AdminPassword != "",
	}
}

// Login checks the supplied credentials and issues an access token.
// Comparison is constant-time over fixed-length digests, so neither the
// match result nor credential length leaks through timing.
func (s *Service) Login(user, password string) (string, time.Time, error) {
	if !s.loginEnabled {
		return "", time.Time{}, ErrInvalidCredentials
	}

	userDigest := sha256.Sum256([]byte(user))
	passDigest := sha256.Sum256([]byte(password))

	userOK := subtle.ConstantTimeCompare(userDigest[:], s.userDigest[:])
	passOK := subtle.ConstantTimeCompare(passDigest[:], s.passDigest[:])
	if userOK&passOK != 1 {
		return "", time.Time{}, ErrInvalidCredentials
	}

	return s.jwt.GenerateAccessToken()
}

// ValidateAccessToken reports whether the token authorizes configuration
// mutations. This is the boolean the rest of the system consumes.
func (s *Service) ValidateAccessToken(tokenString string) error {
	_, err := s.jwt.ValidateAccessToken(tokenString)
	return err
}
