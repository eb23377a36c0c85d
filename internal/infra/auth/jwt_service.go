package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tableplay/config"
	"tableplay/internal/domain/service"
	"tableplay/internal/errors"
)

const defaultTokenTTL = 14 * 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Its fields are set once by the constructor and never change.
type jwtService struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
// Only the HMAC algorithms are accepted, since the secret is symmetric.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	method, err := hmacMethod(cfg.JWT.Alg)
	if err != nil {
		return nil, err
	}

	ttl := cfg.JWT.TTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &jwtService{
		secret: []byte(cfg.JWT.Secret),
		method: method,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

func hmacMethod(alg string) (jwt.SigningMethod, error) {
	if alg == "" {
		return jwt.SigningMethodHS256, nil
	}

	switch method := jwt.GetSigningMethod(alg).(type) {
	case *jwt.SigningMethodHMAC:
		return method, nil
	default:
		return nil, errors.Errorf("unsupported jwt algorithm %q", alg)
	}
}

// Issue signs a token carrying the subject, issued-at and expiry claims.
func (s *jwtService) Issue(subject string, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", errors.New("token subject must not be empty")
	}
	if ttl <= 0 {
		ttl = s.ttl
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// Verify returns the token's subject. Every failure collapses into service.ErrInvalidToken.
func (s *jwtService) Verify(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", service.ErrInvalidToken
	}

	return claims.Subject, nil
}

// TTL returns the default token lifetime.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}
