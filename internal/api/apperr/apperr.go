package apperr

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/5w1tchy/bookshelf-api/internal/api/httpx"
	"github.com/5w1tchy/bookshelf-api/internal/api/middlewares"
	storebooks "github.com/5w1tchy/bookshelf-api/internal/store/books"
	"github.com/5w1tchy/bookshelf-api/internal/validate"
)

// Status maps a store error to its HTTP status code.
func Status(err error) int {
	switch {
	case errors.Is(err, validate.ErrInvalid):
		return http.StatusBadRequest
	case errors.Is(err, storebooks.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.Canceled):
		// client went away; nobody reads this response
		return 499
	default:
		return http.StatusInternalServerError
	}
}

// Write sends err as a fail (4xx) or error (5xx) envelope carrying message.
// Server errors are logged with the request id; their detail never reaches the client.
func Write(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := Status(err)
	if status >= http.StatusInternalServerError {
		rid := middlewares.GetRequestID(r)
		if rid == "" {
			rid = "unknown"
		}
		log.Printf("[books][ERROR] RequestID=%s %s %s: %v", rid, r.Method, r.URL.Path, err)
		httpx.Error(w, status, message)
		return
	}
	httpx.Fail(w, status, message)
}
