package auth

import (
	"crypto/subtle"
	stderrors "errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"complaintbox/internal/shared/errors"
)

// SessionClaims is the payload of an admin session token.
type SessionClaims struct {
	Authenticated bool `json:"authenticated"`
	jwt.RegisteredClaims
}

// SessionTokenService issues and verifies signed, time-limited admin
// session tokens. The service owns signing and verification but not
// storage: the token itself is the only state, held by the client as a
// cookie. There is no revocation list; expiry is absolute from issuance.
type SessionTokenService struct {
	secret        []byte
	adminUsername string
	adminPassword string
	validity      time.Duration
}

func NewSessionTokenService(secret, adminUsername, adminPassword string, expHours int) *SessionTokenService {
	if expHours <= 0 {
		expHours = 24
	}
	return &SessionTokenService{
		secret:        []byte(secret),
		adminUsername: adminUsername,
		adminPassword: adminPassword,
		validity:      time.Duration(expHours) * time.Hour,
	}
}

// Issue checks the supplied credentials against the configured admin
// credentials and, on match, signs a session token valid for the
// configured window. Configuration is checked before any comparison:
// an unconfigured secret or credential never proceeds to compare.
func (s *SessionTokenService) Issue(username, password string) (string, error) {
	if len(s.secret) == 0 {
		return "", errors.NewConfigurationError("session secret is not set")
	}
	if s.adminUsername == "" || s.adminPassword == "" {
		return "", errors.NewConfigurationError("admin credentials are not set")
	}

	userMatch := subtle.ConstantTimeCompare([]byte(username), []byte(s.adminUsername))
	passMatch := subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword))
	if userMatch&passMatch != 1 {
		return "", errors.NewInvalidCredentialsError()
	}

	now := time.Now().UTC()
	claims := &SessionClaims{
		Authenticated: true,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.adminUsername,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.validity)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.NewInternalError("failed to sign session token", err.Error())
	}

	return signed, nil
}

// Verify recomputes the signature and checks the expiry. Expired tokens
// and tampered tokens fail with distinct causes so they can be logged
// separately, though both collapse to the same deny outcome at the gate.
func (s *SessionTokenService) Verify(tokenString string) (*SessionClaims, error) {
	if len(s.secret) == 0 {
		return nil, errors.NewConfigurationError("session secret is not set")
	}

	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})

	if err != nil {
		if stderrors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.NewTokenExpiredError()
		}
		return nil, errors.NewTokenInvalidError(err.Error())
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || !claims.Authenticated {
		return nil, errors.NewTokenInvalidError()
	}

	return claims, nil
}

// Validity returns the configured token validity window.
func (s *SessionTokenService) Validity() time.Duration {
	return s.validity
}
