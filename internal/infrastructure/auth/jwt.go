package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tradesbook-ie/tradesbook/internal/shared/authorization"
	"github.com/tradesbook-ie/tradesbook/internal/shared/biztime"
)

// Claims is the access token payload. The subject is the numeric user ID.
type Claims struct {
	Role  authorization.UserRole `json:"role"`
	Email string                 `json:"email,omitempty"`
	Name  string                 `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// UserID parses the subject.
func (c *Claims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid subject %q", c.Subject)
	}
	return uint(id), nil
}

// JWTService verifies HS256 access tokens issued by the account service.
// Issue exists for development tokens and tests.
type JWTService struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
}

func NewJWTService(secret, issuer string, accessTTL time.Duration) *JWTService {
	return &JWTService{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
	}
}

func (s *JWTService) Issue(actor authorization.Actor) (string, error) {
	if actor.UserID == 0 {
		return "", fmt.Errorf("user ID is required")
	}
	now := biztime.NowUTC()
	claims := &Claims{
		Role:  actor.Role,
		Email: actor.Email,
		Name:  actor.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(actor.UserID), 10),
			Issuer:    s.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if _, err := claims.UserID(); err != nil {
		return nil, err
	}
	return claims, nil
}

// Actor converts verified claims into the caller identity.
func (s *JWTService) Actor(claims *Claims) (authorization.Actor, error) {
	id, err := claims.UserID()
	if err != nil {
		return authorization.Actor{}, err
	}
	return authorization.Actor{
		UserID: id,
		Role:   authorization.ParseUserRole(claims.Role.String()),
		Email:  claims.Email,
		Name:   claims.Name,
	}, nil
}
