package router

import (
	"net/http"

	"github.com/5w1tchy/bookshelf-api/internal/api/handlers"
	"github.com/5w1tchy/bookshelf-api/internal/api/handlers/books"
	"github.com/5w1tchy/bookshelf-api/internal/api/httpx"
	"github.com/5w1tchy/bookshelf-api/internal/api/i18n"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Router builds the route tree. Cross-cutting middleware (CORS, rate limits,
// security headers) is applied around it by the caller.
func Router(store books.Store) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.StripSlashes)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.Fail(w, http.StatusNotFound, i18n.T(r, i18n.RouteNotFound))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpx.Fail(w, http.StatusMethodNotAllowed, i18n.T(r, i18n.MethodNotAllowed))
	})

	r.Get("/", handlers.RootHandler)
	r.Get("/healthz", handlers.Health)
	r.Mount("/books", books.Routes(store))

	return r
}
