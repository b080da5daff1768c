package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// AccessClaims is the payload carried by an access token.
type AccessClaims struct {
	UserID        string
	EmployeeID    string
	Name          string
	Role          string
	DepartmentRef *string
}

type Service interface {
	GenerateAccessToken(claims AccessClaims) (token string, expiresAt int64, err error)
	DecodeAccessToken(tokenString string) (AccessClaims, error)
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

func (j *JWTService) GenerateAccessToken(claims AccessClaims) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	payload := map[string]interface{}{
		"user_id":     claims.UserID,
		"employee_id": claims.EmployeeID,
		"name":        claims.Name,
		"role":        claims.Role,
		"type":        "access",
		"exp":         expiresAt,
	}
	if claims.DepartmentRef != nil {
		payload["department_id"] = *claims.DepartmentRef
	}

	_, tokenString, err := j.tokenAuth.Encode(payload)
	return tokenString, expiresAt, err
}

func (j *JWTService) DecodeAccessToken(tokenString string) (AccessClaims, error) {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return AccessClaims{}, err
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "access" {
		return AccessClaims{}, jwt.ErrInvalidJWT()
	}

	var claims AccessClaims
	if v, ok := token.Get("user_id"); ok {
		claims.UserID, _ = v.(string)
	}
	if v, ok := token.Get("employee_id"); ok {
		claims.EmployeeID, _ = v.(string)
	}
	if v, ok := token.Get("name"); ok {
		claims.Name, _ = v.(string)
	}
	if v, ok := token.Get("role"); ok {
		claims.Role, _ = v.(string)
	}
	if v, ok := token.Get("department_id"); ok {
		if s, ok := v.(string); ok {
			claims.DepartmentRef = &s
		}
	}

	if claims.UserID == "" {
		return AccessClaims{}, jwt.ErrInvalidJWT()
	}

	return claims, nil
}
