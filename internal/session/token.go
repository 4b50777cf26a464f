package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers malformed, mis-signed and expired tokens alike.
// Callers must not be able to tell these apart.
var ErrInvalidToken = errors.New("invalid or expired session token")

// Payload is the decoded content of a session token. Subject is the
// wallet address at sign-in and may be a durable user id in re-issued
// tokens; WalletAddress always carries the claimed address.
type Payload struct {
	Subject       string
	WalletAddress string
	ExpiresAt     time.Time
}

// Codec signs and verifies self-contained session tokens with a shared
// secret (HS256).
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// TTL is the lifetime stamped into issued tokens.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

func (c *Codec) Issue(walletAddress string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":           walletAddress,
		"walletAddress": walletAddress,
		"iat":           now.Unix(),
		"exp":           now.Add(c.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

func (c *Codec) Verify(tokenString string) (*Payload, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	wallet, ok := claims["walletAddress"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &Payload{
		Subject:       sub,
		WalletAddress: wallet,
		ExpiresAt:     time.Unix(int64(exp), 0),
	}, nil
}
