package middlewares

import (
	"context"
	"net/http"
	"regexp"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

type ctxKey int

const ctxKeyRequestID ctxKey = iota

const requestIDHeader = "X-Request-ID"

var ridRe = regexp.MustCompile(`^[A-Za-z0-9_.\-]{1,64}$`)

// RequestID trusts a well-formed incoming X-Request-ID and otherwise mints one.
// The id is echoed in the response and stored in the request context.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get(requestIDHeader)
		if !ridRe.MatchString(rid) {
			rid = newRequestID()
		}
		r = r.WithContext(context.WithValue(r.Context(), ctxKeyRequestID, rid))
		r.Header.Set(requestIDHeader, rid)
		w.Header().Set(requestIDHeader, rid)

		next.ServeHTTP(w, r)
	})
}

// GetRequestID returns the id set by RequestID, falling back to the raw header.
func GetRequestID(r *http.Request) string {
	if v, _ := r.Context().Value(ctxKeyRequestID).(string); v != "" {
		return v
	}
	return r.Header.Get(requestIDHeader)
}

func newRequestID() string {
	// timestamp prefix keeps log lines sortable
	ts := time.Now().UTC().Format("20060102T150405Z")
	id, err := gonanoid.Generate("0123456789abcdefghijklmnopqrstuvwxyz", 20)
	if err != nil {
		return ts
	}
	return ts + "-" + id
}
