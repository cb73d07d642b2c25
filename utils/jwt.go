package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func GenerateJWT(userID uint, email string) (string, error) {
	expire, err := time.ParseDuration(os.Getenv("JWT_EXPIRE"))
	if err != nil {
		expire = 72 * time.Hour
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
		"email":  email,
		"exp":    time.Now().Add(expire).Unix(),
	})

	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
