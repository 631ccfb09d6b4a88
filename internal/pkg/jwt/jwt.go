package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service verifies bearer tokens issued by the upstream identity provider.
// This service never mints tokens; callers authenticate elsewhere and the
// raw bearer is forwarded to the upstream API on every call.
type Service interface {
	JWTAuth() *jwtauth.JWTAuth
	ValidateSSEToken(tokenString string) (userID string, err error)
}

type JWTService struct {
	secretKey string
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string) Service {
	return &JWTService{
		secretKey: secretKey,
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// ValidateSSEToken validates a token passed via query string for SSE
// connections, where setting an Authorization header is not possible.
func (j *JWTService) ValidateSSEToken(tokenString string) (userID string, err error) {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return "", err
	}

	userIDVal, ok := token.Get("user_id")
	if !ok {
		return "", jwt.ErrInvalidJWT()
	}

	userID, ok = userIDVal.(string)
	if !ok {
		return "", jwt.ErrInvalidJWT()
	}

	return userID, nil
}
