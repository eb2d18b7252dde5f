package authadapter

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTIssuer implements ports.TokenIssuer with HS256 tokens. The payload
// carries only the user id; everything else about the caller is re-resolved
// from storage on each request.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
}

type authClaims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}

func NewJWTIssuer(secret string, ttl time.Duration) JWTIssuer {
	return JWTIssuer{secret: []byte(secret), ttl: ttl}
}

func (i JWTIssuer) Issue(userID int64) (string, error) {
	now := time.Now()
	claims := &authClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

func (i JWTIssuer) Validate(rawToken string) (int64, error) {
	token, err := jwt.ParseWithClaims(rawToken, &authClaims{}, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, err
	}
	claims, ok := token.Claims.(*authClaims)
	if !ok || !token.Valid {
		return 0, errors.New("invalid token")
	}
	return claims.UserID, nil
}
