package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode"
)

const (
	nameMinLen = 2
	nameMaxLen = 50

	passwordMinLen = 8
)

// User represents a registered identity.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// RegisterInput is a candidate identity prior to hashing and persistence.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Validate runs the registration checks in order and returns the first
// violated rule as an INVALID domain error.
func (in *RegisterInput) Validate() *Error {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = NormalizeEmail(in.Email)

	if in.FirstName == "" {
		return NewError(ErrCodeInvalid, "first name is required")
	}
	if in.LastName == "" {
		return NewError(ErrCodeInvalid, "last name is required")
	}
	if in.Email == "" {
		return NewError(ErrCodeInvalid, "email is required")
	}
	if in.Password == "" {
		return NewError(ErrCodeInvalid, "password is required")
	}
	if err := validateName("first name", in.FirstName); err != nil {
		return err
	}
	if err := validateName("last name", in.LastName); err != nil {
		return err
	}
	if err := ValidateEmail(in.Email); err != nil {
		return err
	}
	return ValidatePassword(in.Password)
}

// NormalizeEmail lowercases and trims an email so uniqueness checks and
// lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail checks the syntactic shape of an address.
func ValidateEmail(email string) *Error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return NewError(ErrCodeInvalid, "email is not a valid address")
	}
	return nil
}

// ValidatePassword enforces the pre-hash complexity policy: minimum length
// plus at least one upper-case letter, one lower-case letter and one digit.
func ValidatePassword(password string) *Error {
	if len(password) < passwordMinLen {
		return NewError(ErrCodeInvalid,
			fmt.Sprintf("password must be at least %d characters", passwordMinLen))
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return NewError(ErrCodeInvalid,
			"password must contain an upper-case letter, a lower-case letter and a digit")
	}
	return nil
}

// ValidateNames re-checks the mutable profile fields after a patch.
func (u *User) ValidateNames() *Error {
	if u.FirstName == "" {
		return NewError(ErrCodeInvalid, "first name is required")
	}
	if u.LastName == "" {
		return NewError(ErrCodeInvalid, "last name is required")
	}
	if err := validateName("first name", u.FirstName); err != nil {
		return err
	}
	return validateName("last name", u.LastName)
}

func validateName(field, value string) *Error {
	if n := len([]rune(value)); n < nameMinLen || n > nameMaxLen {
		return NewError(ErrCodeInvalid,
			fmt.Sprintf("%s must be between %d and %d characters", field, nameMinLen, nameMaxLen))
	}
	return nil
}
