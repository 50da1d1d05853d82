package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/taskforge/backend/domain"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", domain.NewError(domain.ErrCodeInvalid, "title is required"), http.StatusBadRequest},
		{"unauthorized", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"not found", domain.ErrTaskNotFound, http.StatusNotFound},
		{"conflict", domain.ErrEmailTaken, http.StatusConflict},
		{"rate limited", domain.ErrTooManyAttempts, http.StatusTooManyRequests},
		{"wrapped store fault", domain.WrapError(domain.ErrCodeInternal, "query task", errors.New("conn refused")), http.StatusInternalServerError},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := mapError(tc.err); got != tc.want {
				t.Fatalf("got %d want %d", got, tc.want)
			}
		})
	}
}
