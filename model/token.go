package model

import "github.com/golang-jwt/jwt/v5"

type TokenClaim struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}
