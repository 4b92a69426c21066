// file: internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"neudev_backend/internals/configs"
)

// TokenTTL is how long an access token stays valid after issuance.
const TokenTTL = 24 * time.Hour

// IssueToken signs an HS256 access token for the given principal. The subject
// is the numeric id of the student or teacher row; role disambiguates the table.
func IssueToken(userID int64, role string, now time.Time) (string, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return "", errors.New("JWT secret is not configured")
	}
	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(userID, 10),
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
