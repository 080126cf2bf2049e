package middleware

import (
	"errors"
	"strings"
	"testing"

	"github.com/mergington/activities/internal/app/models/dto"
	"github.com/mergington/activities/internal/pkg/apperrors"
)

func TestValidateStructPasses(t *testing.T) {
	req := &dto.EnrollmentRequest{Email: "michael@mergington.edu"}
	if err := ValidateStruct(req); err != nil {
		t.Fatalf("valid request should pass: %v", err)
	}
}

func TestValidateStructMissingEmail(t *testing.T) {
	req := &dto.EnrollmentRequest{}
	err := ValidateStruct(req)
	if err == nil {
		t.Fatal("expected validation error for missing email")
	}
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("error should wrap ErrValidationFailed, got %v", err)
	}
	if !strings.Contains(err.Error(), "required") {
		t.Errorf("message should name the failed rule: %v", err)
	}
}
