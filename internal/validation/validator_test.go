package validation

import (
	"errors"
	"testing"

	"github.com/wearecreatives/api/internal/apperror"
	"github.com/wearecreatives/api/internal/model"
)

func TestCheck_Valid(t *testing.T) {
	v := New()

	in := model.InsertContactMessage{
		FirstName: "A",
		LastName:  "B",
		Email:     "a@b.com",
		Service:   "Custom Design",
		Message:   "Hi",
	}

	if err := v.Check("Invalid contact data", in); err != nil {
		t.Fatalf("Check() = %v, want nil", err)
	}
}

func TestCheck_MissingRequiredFields(t *testing.T) {
	v := New()

	in := model.InsertContactMessage{Email: "not-an-email"}
	err := v.Check("Invalid contact data", in)
	if err == nil {
		t.Fatal("Check() = nil, want validation error")
	}
	if !errors.Is(err, apperror.ErrValidation) {
		t.Fatalf("Check() error = %v, want ErrValidation", err)
	}

	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatal("Check() error is not an *apperror.AppError")
	}
	if appErr.Message != "Invalid contact data" {
		t.Errorf("Message = %q, want %q", appErr.Message, "Invalid contact data")
	}

	// Field names must be the JSON tag names, not Go identifiers.
	for _, field := range []string{"firstName", "lastName", "service", "message"} {
		if appErr.Fields[field] != "This field is required" {
			t.Errorf("Fields[%s] = %q, want %q", field, appErr.Fields[field], "This field is required")
		}
	}
	if appErr.Fields["email"] != "Must be a valid email address" {
		t.Errorf("Fields[email] = %q, want %q", appErr.Fields["email"], "Must be a valid email address")
	}
	if _, ok := appErr.Fields["FirstName"]; ok {
		t.Error("Fields contains Go field name FirstName; want JSON tag names only")
	}
}

func TestCheck_RatingBounds(t *testing.T) {
	v := New()

	in := model.InsertCreativeReview{
		CreativeID:    1,
		ReviewerName:  "Alex",
		ReviewerEmail: "alex@example.com",
		Rating:        6,
	}

	err := v.Check("Invalid review data", in)
	if err == nil {
		t.Fatal("Check() = nil, want validation error for rating 6")
	}
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatal("Check() error is not an *apperror.AppError")
	}
	if appErr.Fields["rating"] != "Must be at most 5" {
		t.Errorf("Fields[rating] = %q, want %q", appErr.Fields["rating"], "Must be at most 5")
	}
}
