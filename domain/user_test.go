package domain

import (
	"strings"
	"testing"
)

func validInput() RegisterInput {
	return RegisterInput{
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "a@x.com",
		Password:  "Abcd1234!",
	}
}

func TestRegisterInputValidate_OK(t *testing.T) {
	in := validInput()
	if err := in.Validate(); err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}
}

func TestRegisterInputValidate_NormalizesEmail(t *testing.T) {
	in := validInput()
	in.Email = "  A@X.Com "
	if err := in.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Email != "a@x.com" {
		t.Fatalf("email not normalized: %q", in.Email)
	}
}

func TestRegisterInputValidate_FirstViolatedRule(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RegisterInput)
		want   string
	}{
		{"missing first name", func(in *RegisterInput) { in.FirstName = " " }, "first name is required"},
		{"missing last name", func(in *RegisterInput) { in.LastName = "" }, "last name is required"},
		{"missing email", func(in *RegisterInput) { in.Email = "" }, "email is required"},
		{"missing password", func(in *RegisterInput) { in.Password = "" }, "password is required"},
		{"first name too short", func(in *RegisterInput) { in.FirstName = "A" }, "first name must be between 2 and 50 characters"},
		{"first name too long", func(in *RegisterInput) { in.FirstName = strings.Repeat("a", 51) }, "first name must be between 2 and 50 characters"},
		{"last name too long", func(in *RegisterInput) { in.LastName = strings.Repeat("b", 51) }, "last name must be between 2 and 50 characters"},
		{"bad email shape", func(in *RegisterInput) { in.Email = "not-an-email" }, "email is not a valid address"},
		{"password too short", func(in *RegisterInput) { in.Password = "Ab1" }, "password must be at least 8 characters"},
		{"password no digit", func(in *RegisterInput) { in.Password = "Abcdefgh" }, "password must contain an upper-case letter, a lower-case letter and a digit"},
		{"password no upper", func(in *RegisterInput) { in.Password = "abcd1234" }, "password must contain an upper-case letter, a lower-case letter and a digit"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			err := in.Validate()
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if err.Code != ErrCodeInvalid {
				t.Fatalf("expected INVALID, got %s", err.Code)
			}
			if err.Message != tc.want {
				t.Fatalf("message mismatch: got %q want %q", err.Message, tc.want)
			}
		})
	}
}

func TestRegisterInputValidate_NameBoundaries(t *testing.T) {
	in := validInput()
	in.FirstName = strings.Repeat("a", 2)
	in.LastName = strings.Repeat("b", 50)
	if err := in.Validate(); err != nil {
		t.Fatalf("boundary lengths should pass, got %v", err)
	}
}

func TestUserValidateNames(t *testing.T) {
	u := &User{FirstName: "Ann", LastName: "Lee"}
	if err := u.ValidateNames(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	u.FirstName = "A"
	if err := u.ValidateNames(); err == nil {
		t.Fatalf("expected error for 1-char first name")
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail(" User@Example.COM "); got != "user@example.com" {
		t.Fatalf("got %q", got)
	}
}
