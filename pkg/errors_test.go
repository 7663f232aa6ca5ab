package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("boom")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(e, cause) {
		t.Fatal("AppError must unwrap to its cause")
	}
	if e.Error() != "An internal error occurred: boom" {
		t.Fatalf("unexpected message %q", e.Error())
	}

	he := e.ToHTTPError()
	if he.Code != "INTERNAL_ERROR" || he.Message != "An internal error occurred" {
		t.Fatalf("unexpected http error %+v", he)
	}

	simple := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	if simple.Error() != "Invalid request" || simple.Unwrap() != nil {
		t.Fatalf("unexpected simple error %+v", simple)
	}
}
