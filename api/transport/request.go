package transport

import (
	"bytes"
	"encoding/json"
	"errors"
)

// RegisterRequest is the candidate identity submitted on registration.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginRequest carries the credentials presented at login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateTaskRequest is the body of a task creation. Status is optional and
// defaults to pending downstream.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// TaskPatch enumerates the mutable task fields. Absent fields stay nil and
// are left untouched by the merge.
type TaskPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// ProfilePatch enumerates the mutable profile fields. Email is immutable
// and therefore not part of the schema.
type ProfilePatch struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

// DecodeStrict unmarshals body into v and rejects unknown fields, so a
// caller can never smuggle extra attributes past the schema.
func DecodeStrict(body []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	// trailing garbage after the object is also malformed input
	if dec.More() {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}
