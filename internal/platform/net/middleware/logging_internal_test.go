package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCapture_WriteHeader_RecordsStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	c := &capture{ResponseWriter: rr, status: http.StatusOK}

	c.WriteHeader(http.StatusConflict)

	if c.status != http.StatusConflict {
		t.Fatalf("expected captured status 409, got %d", c.status)
	}
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected recorder code 409, got %d", rr.Code)
	}
}
