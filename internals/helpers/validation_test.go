package helper

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
)

func TestValidationMap(t *testing.T) {
	type payload struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required,min=8"`
	}
	err := validator.New().Struct(payload{Email: "not-an-email", Password: "short"})
	if err == nil {
		t.Fatal("expected validation errors")
	}

	m := ValidationMap(err)
	if len(m["Email"]) == 0 {
		t.Errorf("missing Email entry: %v", m)
	}
	if len(m["Password"]) == 0 {
		t.Errorf("missing Password entry: %v", m)
	}
}

func TestValidationMapNonValidatorError(t *testing.T) {
	m := ValidationMap(errors.New("boom"))
	if len(m["_"]) != 1 {
		t.Errorf("ValidationMap(plain error) = %v, want a single catch-all entry", m)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"pq 23505", &pq.Error{Code: "23505"}, true},
		{"pq other code", &pq.Error{Code: "23503"}, false},
		{"gorm-wrapped text", errors.New(`ERROR: duplicate key value violates unique constraint "uq_class_student" (SQLSTATE 23505)`), true},
		{"unrelated", errors.New("connection refused"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUniqueViolation(tt.err); got != tt.want {
				t.Errorf("IsUniqueViolation = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	if !IsForeignKeyViolation(&pq.Error{Code: "23503"}) {
		t.Error("pq 23503 not detected")
	}
	if IsForeignKeyViolation(errors.New("something else")) {
		t.Error("unrelated error misdetected")
	}
}
