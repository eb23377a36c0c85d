package auth

import (
	"strings"
	"testing"
	"time"

	"tableplay/config"
	"tableplay/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_secret_key_very_long_for_testing"

func newTestJWTService(t *testing.T, secret, alg string, now time.Time) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.Alg = alg

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	impl := svc.(*jwtService)
	impl.now = func() time.Time { return now }

	return impl
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestJWTService(t, testSecret, "HS256", now)

	token, err := svc.Issue("ana@example.com", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(token, "."))

	subject, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", subject)
}

func TestJWTService_ExpiryBoundary(t *testing.T) {
	issuedAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestJWTService(t, testSecret, "HS256", issuedAt)

	token, err := svc.Issue("ana@example.com", time.Minute)
	require.NoError(t, err)

	svc.now = func() time.Time { return issuedAt.Add(time.Minute - time.Second) }
	subject, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", subject)

	svc.now = func() time.Time { return issuedAt.Add(time.Minute) }
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	svc.now = func() time.Time { return issuedAt.Add(time.Hour) }
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_DefaultTTL(t *testing.T) {
	issuedAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestJWTService(t, testSecret, "", issuedAt)
	assert.Equal(t, 14*24*time.Hour, svc.TTL())

	token, err := svc.Issue("ana@example.com", 0)
	require.NoError(t, err)

	svc.now = func() time.Time { return issuedAt.Add(13 * 24 * time.Hour) }
	_, err = svc.Verify(token)
	require.NoError(t, err)

	svc.now = func() time.Time { return issuedAt.Add(14 * 24 * time.Hour) }
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_RejectsForeignTokens(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestJWTService(t, testSecret, "HS256", now)

	otherSecret := newTestJWTService(t, "another_secret", "HS256", now)
	foreign, err := otherSecret.Issue("ana@example.com", time.Hour)
	require.NoError(t, err)

	otherAlg := newTestJWTService(t, testSecret, "HS512", now)
	wrongAlg, err := otherAlg.Issue("ana@example.com", time.Hour)
	require.NoError(t, err)

	claims := jwt.RegisteredClaims{
		Subject:   "ana@example.com",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "ana@example.com"}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	valid, err := svc.Issue("ana@example.com", time.Hour)
	require.NoError(t, err)
	parts := strings.Split(valid, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	tests := map[string]string{
		"different secret":    foreign,
		"different algorithm": wrongAlg,
		"none algorithm":      unsigned,
		"missing expiry":      noExpiry,
		"missing subject":     noSubject,
		"tampered payload":    tampered,
		"garbage":             "clearly-not-a-jwt-token-format",
		"empty":               "",
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			subject, err := svc.Verify(token)
			assert.Empty(t, subject)
			assert.Equal(t, service.ErrInvalidToken, err)
		})
	}
}

func TestJWTService_IssueRejectsEmptySubject(t *testing.T) {
	svc := newTestJWTService(t, testSecret, "HS256", time.Now())

	_, err := svc.Issue("", time.Hour)
	assert.Error(t, err)
}

func TestNewJWTService_Config(t *testing.T) {
	cfg := &config.Config{}
	_, err := NewJWTService(cfg)
	assert.ErrorContains(t, err, "secret")

	cfg.JWT.Secret = testSecret
	for _, alg := range []string{"RS256", "ES256", "none", "bogus"} {
		cfg.JWT.Alg = alg
		_, err = NewJWTService(cfg)
		assert.ErrorContains(t, err, "unsupported jwt algorithm", alg)
	}

	for _, alg := range []string{"HS256", "HS384", "HS512"} {
		cfg.JWT.Alg = alg
		svc, err := NewJWTService(cfg)
		require.NoError(t, err, alg)
		assert.Equal(t, alg, svc.(*jwtService).method.Alg())
	}
}
