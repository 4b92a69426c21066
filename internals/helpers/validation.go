package helper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
)

// ValidationMap converts validator.v10 errors into a field → messages map for 422 bodies.
func ValidationMap(err error) map[string][]string {
	out := map[string][]string{}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		out["_"] = []string{"invalid input"}
		return out
	}
	for _, fe := range ve {
		field := fe.Field()
		out[field] = append(out[field], messageForTag(fe))
	}
	return out
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be %s or more", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "endswith":
		return fmt.Sprintf("must end with %s", fe.Param())
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}

/* ===============================
   Postgres error mapping
=================================*/

// IsUniqueViolation reports whether err is a Postgres unique violation (SQLSTATE 23505).
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "sqlstate 23505") ||
		strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint")
}

// IsForeignKeyViolation reports whether err is a Postgres FK violation (SQLSTATE 23503).
func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23503"
	}
	return strings.Contains(strings.ToLower(err.Error()), "sqlstate 23503")
}

// WritePGError maps a persistence error to the conventional status codes.
// Raw driver text never reaches the client.
func WritePGError(c *fiber.Ctx, err error) error {
	switch {
	case IsUniqueViolation(err):
		return JsonError(c, fiber.StatusConflict, "Duplicate record.")
	case IsForeignKeyViolation(err):
		return JsonError(c, fiber.StatusBadRequest, "Referenced record not found.")
	default:
		return JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
}
