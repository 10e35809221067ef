package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service issues and validates the two token kinds the admin login flow
// needs: a short-lived "pin" challenge token handed out after the password
// check, and the normal access token handed out after the PIN check.
type Service interface {
	GenerateAccessToken(adminID string, email string) (token string, expiresAt int64, err error)
	GeneratePinChallengeToken(adminID string) (token string, expiresIn int, err error)
	ValidatePinChallengeToken(tokenString string) (adminID string, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey                 string
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                 secretKey,
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(adminID string, email string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"admin_id": adminID,
		"email":    email,
		"is_admin": true,
		"type":     "access",
		"exp":      expiresAt,
	})
	return tokenString, expiresAt, err
}

// GeneratePinChallengeToken issues the intermediate token for the second
// login step. It is deliberately short-lived (2 minutes).
func (j *JWTService) GeneratePinChallengeToken(adminID string) (token string, expiresIn int, err error) {
	expiresIn = 120
	expiresAt := time.Now().Add(2 * time.Minute).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"admin_id": adminID,
		"type":     "pin",
		"exp":      expiresAt,
	})
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresIn, nil
}

// ValidatePinChallengeToken validates a pin-stage token and returns the
// admin it was issued to.
func (j *JWTService) ValidatePinChallengeToken(tokenString string) (adminID string, err error) {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return "", err
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "pin" {
		return "", jwt.ErrInvalidJWT()
	}

	adminIDVal, ok := token.Get("admin_id")
	if !ok {
		return "", jwt.ErrInvalidJWT()
	}

	adminID, ok = adminIDVal.(string)
	if !ok {
		return "", jwt.ErrInvalidJWT()
	}

	return adminID, nil
}
