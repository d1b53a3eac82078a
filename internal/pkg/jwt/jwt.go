package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	// GenerateSessionToken issues the per-request session token the client
	// sends on every authenticated call.
	GenerateSessionToken(employeeID string, isManager bool) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey             string
	sessionExpirationTime string
	tokenAuth             *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, sessionExpirationTime string) Service {
	return &JWTService{
		secretKey:             secretKey,
		sessionExpirationTime: sessionExpirationTime,
		tokenAuth:             jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateSessionToken(employeeID string, isManager bool) (string, int64, error) {
	expDuration, err := time.ParseDuration(j.sessionExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt := time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"is_manager":  isManager,
		"type":        "session",
		"exp":         expiresAt,
	})
	return tokenString, expiresAt, err
}
