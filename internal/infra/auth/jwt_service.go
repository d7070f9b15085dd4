package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"sitter/config"
	domainerrors "sitter/internal/domain/errors"
	"sitter/internal/domain/service"
)

// sessionClaims is the claim set carried by every issued token.
// Subject holds the user id in decimal form.
type sessionClaims struct {
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte        // Secret key for signing tokens.
	ttl    time.Duration // Time-to-live for issued tokens.
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.JWT.Secret),
		ttl:    cfg.JWT.TTL,
		now:    time.Now,
	}, nil
}

// Issue creates a signed HS256 token for the given user, valid for the
// configured TTL from the moment of issue.
func (s *jwtService) Issue(userID int64) (string, error) {
	issuedAt := s.now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.secret)
}

// Verify parses and validates a token string and returns the user id it was
// issued for. Expired tokens yield ErrTokenExpired; every other failure mode,
// including malformed tokens, bad signatures, and non-numeric subjects, yields
// ErrTokenInvalid.
func (s *jwtService) Verify(tokenString string) (int64, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, domainerrors.ErrTokenExpired
		}
		return 0, domainerrors.ErrTokenInvalid
	}
	if !token.Valid {
		return 0, domainerrors.ErrTokenInvalid
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, domainerrors.ErrTokenInvalid
	}

	return userID, nil
}
