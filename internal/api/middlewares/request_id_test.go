package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mw "github.com/5w1tchy/bookshelf-api/internal/api/middlewares"
)

func TestRequestID_GeneratesID(t *testing.T) {
	var seen string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = mw.GetRequestID(r)
		if seen == "" {
			t.Error("Expected request ID in context")
		}
		w.WriteHeader(http.StatusOK)
	})

	wrapped := mw.RequestID(handler)

	req := httptest.NewRequest("GET", "/test", nil)
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	rid := rec.Header().Get("X-Request-ID")
	if rid == "" {
		t.Fatal("Expected X-Request-ID in response header")
	}
	if rid != seen {
		t.Errorf("Expected header %q to match context %q", rid, seen)
	}
	// 20060102T150405Z-<20 chars>
	if len(rid) != 37 || !strings.Contains(rid, "Z-") {
		t.Errorf("Unexpected generated id format: %s", rid)
	}
}

func TestRequestID_UsesProvidedID(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	wrapped := mw.RequestID(handler)

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("X-Request-ID", "custom-request-id")
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") != "custom-request-id" {
		t.Errorf("Expected custom-request-id, got %s", rec.Header().Get("X-Request-ID"))
	}
}

func TestRequestID_RejectsInvalidID(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	wrapped := mw.RequestID(handler)

	for _, bad := range []string{"invalid@#$%id", strings.Repeat("a", 65)} {
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("X-Request-ID", bad)
		rec := httptest.NewRecorder()

		wrapped.ServeHTTP(rec, req)

		rid := rec.Header().Get("X-Request-ID")
		if rid == bad {
			t.Errorf("Should have rejected invalid request ID %q", bad)
		}
		if rid == "" {
			t.Error("Should have generated new request ID")
		}
	}
}
