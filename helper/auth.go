package helper

import (
	"time"

	"booking_console/config"
	"booking_console/model"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthEnabled reports whether the console requires a login. With no password
// hash configured the console runs open, which is the dev setup.
func AuthEnabled() bool {
	return config.Config("ADMIN_PASSWORD_HASH") != ""
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GenerateAccessToken(claim model.TokenClaim) (string, error) {
	claim.ExpiresAt = jwt.NewNumericDate(time.Now().Add(12 * time.Hour))
	claim.IssuedAt = jwt.NewNumericDate(time.Now())

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claim)
	return token.SignedString([]byte(config.Config("JWT_SECRET")))
}
