package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims carries the candidate identity. Token issuance lives in the auth
// service; this package only needs to mint tokens for tests and to validate
// what the auth service issued.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email,omitempty"`

	jwtlib.RegisteredClaims
}

type Service interface {
	GenerateToken(userID uuid.UUID, email string, expiresIn time.Duration) (string, error)
	ValidateToken(tokenString string) (Claims, error)
}

type HMACService struct {
	secret []byte
	now    func() time.Time
}

func NewHMACService(secret string) *HMACService {
	return &HMACService{
		secret: []byte(secret),
		now:    time.Now,
	}
}

func (s *HMACService) GenerateToken(userID uuid.UUID, email string, expiresIn time.Duration) (string, error) {
	if len(s.secret) == 0 || expiresIn <= 0 {
		return "", ErrTokenInvalid
	}
	now := s.now().UTC()

	c := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(expiresIn)),
			Subject:   userID.String(),
		},
	}

	t := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c)
	return t.SignedString(s.secret)
}

func (s *HMACService) ValidateToken(tokenString string) (Claims, error) {
	p := jwtlib.NewParser(jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}))

	var c Claims
	tok, err := p.ParseWithClaims(tokenString, &c, func(token *jwtlib.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if tok == nil || !tok.Valid {
		return Claims{}, ErrTokenInvalid
	}
	if c.UserID == uuid.Nil {
		return Claims{}, ErrTokenInvalid
	}

	return c, nil
}
