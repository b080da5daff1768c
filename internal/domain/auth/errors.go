package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrAccountInactive     = errors.New("account is deactivated")
	ErrRefreshTokenInvalid = errors.New("refresh token is invalid or revoked")
	ErrRefreshTokenExpired = errors.New("refresh token has expired")
)
