package handlers

import (
	"net/http"

	"github.com/5w1tchy/bookshelf-api/internal/api/httpx"
)

// RootHandler lists the available resources.
func RootHandler(w http.ResponseWriter, r *http.Request) {
	httpx.Success(w, http.StatusOK, "bookshelf-api", httpx.Data{
		"resources": []string{"/books"},
	})
}

// Health is the liveness probe.
func Health(w http.ResponseWriter, r *http.Request) {
	httpx.Success(w, http.StatusOK, "", nil)
}
