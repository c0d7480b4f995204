package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"complaintbox/internal/shared/errors"
)

const (
	testSecret   = "test-secret-at-least-32-bytes-long"
	testUsername = "admin"
	testPassword = "s3cret-password"
)

func newTestService() *SessionTokenService {
	return NewSessionTokenService(testSecret, testUsername, testPassword, 24)
}

func TestIssueAndVerify_RoundTrip(t *testing.T) {
	svc := newTestService()

	token, err := svc.Issue(testUsername, testPassword)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.True(t, claims.Authenticated)
	assert.Equal(t, testUsername, claims.Subject)

	remaining := time.Until(claims.ExpiresAt.Time)
	assert.InDelta(t, (24 * time.Hour).Seconds(), remaining.Seconds(), 5)
}

func TestIssue_InvalidCredentials(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", testUsername, "wrong"},
		{"wrong username", "intruder", testPassword},
		{"both wrong", "intruder", "wrong"},
		{"both empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Issue(tt.username, tt.password)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidCredentialsError(err))

			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, "Invalid username or password", appErr.Message,
				"message must not reveal which field mismatched")
		})
	}
}

func TestIssue_MissingConfiguration(t *testing.T) {
	tests := []struct {
		name string
		svc  *SessionTokenService
	}{
		{"no secret", NewSessionTokenService("", testUsername, testPassword, 24)},
		{"no admin username", NewSessionTokenService(testSecret, "", testPassword, 24)},
		{"no admin password", NewSessionTokenService(testSecret, testUsername, "", 24)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Correct-looking credentials must still fail on config, not
			// fall through to a comparison against empty strings.
			_, err := tt.svc.Issue(testUsername, testPassword)
			require.Error(t, err)
			assert.True(t, errors.IsConfigurationError(err))
		})
	}
}

func TestVerify_Expired(t *testing.T) {
	svc := newTestService()
	svc.validity = -time.Second

	token, err := svc.Issue(testUsername, testPassword)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.IsTokenExpiredError(err))
}

func TestVerify_TamperedToken(t *testing.T) {
	svc := newTestService()

	token, err := svc.Issue(testUsername, testPassword)
	require.NoError(t, err)

	// Flip one character of the signature segment.
	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	_, err = svc.Verify(string(tampered))
	require.Error(t, err)
	assert.True(t, errors.IsTokenInvalidError(err))
}

func TestVerify_WrongSecret(t *testing.T) {
	svc := newTestService()
	other := NewSessionTokenService("a-completely-different-signing-key", testUsername, testPassword, 24)

	token, err := other.Issue(testUsername, testPassword)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.IsTokenInvalidError(err))
}

func TestVerify_Garbage(t *testing.T) {
	svc := newTestService()

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Verify(token)
		assert.Error(t, err, "token %q", token)
	}
}
