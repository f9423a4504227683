// Package tokens issues and validates the identity tokens handed out on
// login. A token carries the user id as its subject plus an expiry and is
// signed with HS256.
package tokens

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

type IdentityClaims struct {
	jwt.RegisteredClaims
}

func Issue(secret []byte, userID uint, ttl time.Duration) (string, error) {
	claims := IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// Parse returns the user id embedded in tokenStr. Any failure, bad
// signature, wrong algorithm, expired or malformed token, comes back as
// ErrInvalidToken so callers treat it uniformly as "unauthenticated".
func Parse(tokenStr string, secret []byte) (uint, error) {
	var claims IdentityClaims
	tkn, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected sign method")
		}
		return secret, nil
	})
	if err != nil || !tkn.Valid {
		return 0, ErrInvalidToken
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}
