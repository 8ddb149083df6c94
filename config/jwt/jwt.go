package jwt

import (
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("token expired or invalid")

type Claims struct {
	ID   string `json:"id"`
	Role string `json:"role"`
	gojwt.RegisteredClaims
}

// Issuer signs and verifies HS256 session tokens. There is no revocation,
// a token is valid until it expires.
type Issuer struct {
	secret    []byte
	expiresIn time.Duration
	now       func() time.Time
}

func NewIssuer(secret string, expiresIn time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), expiresIn: expiresIn, now: time.Now}
}

// WithClock is for tests.
func (i *Issuer) WithClock(now func() time.Time) *Issuer {
	i.now = now
	return i
}

func (i *Issuer) GenerateJWT(id, role string) (string, error) {
	now := i.now()
	claims := Claims{
		ID:   id,
		Role: role,
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   id,
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(i.expiresIn)),
		},
	}
	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

/*
* Parse with the custom claims
* Reject anything that is not HMAC signed
* Expiry is checked against the issuer clock
 */
func (i *Issuer) ValidateJWT(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := gojwt.ParseWithClaims(tokenString, claims, func(token *gojwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*gojwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	}, gojwt.WithTimeFunc(i.now), gojwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.ID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
