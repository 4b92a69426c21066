// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"neudev_backend/internals/configs"
	authModel "neudev_backend/internals/features/users/auth/model"
)

const (
	LocalsUserID   = "user_id"
	LocalsUserRole = "user_role"
	LocalsRawToken = "raw_token"
	LocalsTokenExp = "token_exp"
)

// AuthMiddleware validates the bearer token, rejects blacklisted tokens and
// stores the principal (id + role) in Locals.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		// blacklist check (once per request)
		if c.Locals("token_checked") == nil {
			var existing authModel.TokenBlacklist
			if err := db.Where("token = ? AND deleted_at IS NULL", tokenString).First(&existing).Error; err == nil {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token is revoked")
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("[ERROR] blacklist lookup: %v", err)
				return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
			}
			c.Locals("token_checked", true)
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secretKey), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		exp, err := validateTokenExpiry(claims, 30*time.Second)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		userID, role, err := extractPrincipal(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid token claims")
		}

		c.Locals(LocalsUserID, userID)
		c.Locals(LocalsUserRole, role)
		c.Locals(LocalsRawToken, tokenString)
		c.Locals(LocalsTokenExp, exp)

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	h := strings.TrimSpace(c.Get("Authorization"))
	if h == "" {
		return "", errors.New("Unauthorized - Missing Authorization header")
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", errors.New("Unauthorized - Invalid Authorization header")
	}
	return strings.TrimSpace(parts[1]), nil
}

// validateTokenExpiry checks exp with a small leeway and returns the expiry instant.
func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) (time.Time, error) {
	expRaw, ok := claims["exp"]
	if !ok {
		return time.Time{}, errors.New("missing exp claim")
	}
	var exp time.Time
	switch v := expRaw.(type) {
	case float64:
		exp = time.Unix(int64(v), 0)
	case int64:
		exp = time.Unix(v, 0)
	default:
		return time.Time{}, errors.New("invalid exp claim")
	}
	if time.Now().After(exp.Add(leeway)) {
		return time.Time{}, errors.New("token expired")
	}
	return exp, nil
}

func extractPrincipal(claims jwt.MapClaims) (int64, string, error) {
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return 0, "", errors.New("missing sub claim")
	}
	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil || id <= 0 {
		return 0, "", errors.New("invalid sub claim")
	}
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return 0, "", errors.New("missing role claim")
	}
	return id, role, nil
}

// UserID reads the authenticated principal id from Locals.
func UserID(c *fiber.Ctx) (int64, bool) {
	id, ok := c.Locals(LocalsUserID).(int64)
	return id, ok
}

// UserRole reads the authenticated principal role from Locals.
func UserRole(c *fiber.Ctx) (string, bool) {
	role, ok := c.Locals(LocalsUserRole).(string)
	return role, ok
}
