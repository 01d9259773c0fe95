package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestConstructors(t *testing.T) {
	cases := []struct {
		err    *Error
		status int
	}{
		{BadRequest("bad"), http.StatusBadRequest},
		{Unauthorized("nope"), http.StatusUnauthorized},
		{Forbidden("denied"), http.StatusForbidden},
		{New(http.StatusConflict, "clash"), http.StatusConflict},
		{Newf(http.StatusNotFound, "no %s here", "user"), http.StatusNotFound},
	}

	for _, tc := range cases {
		if tc.err.Status != tc.status {
			t.Errorf("%q: status = %d, want %d", tc.err.Message, tc.err.Status, tc.status)
		}
		if tc.err.Error() != tc.err.Message {
			t.Errorf("Error() = %q, want %q", tc.err.Error(), tc.err.Message)
		}
	}
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	base := Forbidden("denied")
	wrapped := fmt.Errorf("handler: %w", base)

	var domainErr *Error
	if !errors.As(wrapped, &domainErr) {
		t.Fatalf("expected errors.As to unwrap the domain error")
	}
	if domainErr.Status != http.StatusForbidden {
		t.Fatalf("unexpected status %d", domainErr.Status)
	}
}
