package transport

import (
	"testing"
)

func TestDecodeStrict_AcceptsKnownFields(t *testing.T) {
	var req CreateTaskRequest
	body := []byte(`{"title":"T","description":"D","status":"pending"}`)
	if err := DecodeStrict(body, &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Title != "T" || req.Description != "D" || req.Status != "pending" {
		t.Fatalf("decoded mismatch: %+v", req)
	}
}

func TestDecodeStrict_RejectsUnknownFields(t *testing.T) {
	var req TaskPatch
	body := []byte(`{"title":"T","owner":"someone-else"}`)
	if err := DecodeStrict(body, &req); err == nil {
		t.Fatalf("unknown field must be rejected")
	}
}

func TestDecodeStrict_RejectsTrailingData(t *testing.T) {
	var req LoginRequest
	body := []byte(`{"email":"a@x.com","password":"p"}{"email":"b@x.com"}`)
	if err := DecodeStrict(body, &req); err == nil {
		t.Fatalf("trailing JSON must be rejected")
	}
}

func TestDecodeStrict_RejectsMalformedJSON(t *testing.T) {
	var req RegisterRequest
	if err := DecodeStrict([]byte(`{"firstName":`), &req); err == nil {
		t.Fatalf("malformed body must be rejected")
	}
}

func TestTaskPatch_AbsentFieldsStayNil(t *testing.T) {
	var patch TaskPatch
	if err := DecodeStrict([]byte(`{"status":"completed"}`), &patch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if patch.Title != nil || patch.Description != nil {
		t.Fatalf("absent fields must stay nil: %+v", patch)
	}
	if patch.Status == nil || *patch.Status != "completed" {
		t.Fatalf("status not decoded: %+v", patch)
	}
}

func TestProfilePatch_EmailIsNotASchemaField(t *testing.T) {
	var patch ProfilePatch
	if err := DecodeStrict([]byte(`{"email":"new@x.com"}`), &patch); err == nil {
		t.Fatalf("email must be rejected as unknown")
	}
}
