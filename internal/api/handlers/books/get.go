package books

import (
	"net/http"

	"github.com/5w1tchy/bookshelf-api/internal/api/apperr"
	"github.com/5w1tchy/bookshelf-api/internal/api/httpx"
	"github.com/5w1tchy/bookshelf-api/internal/api/i18n"
	"github.com/go-chi/chi/v5"
)

func get(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "bookId")

		b, err := store.Get(r.Context(), id)
		if err != nil {
			apperr.Write(w, r, err, i18n.T(r, i18n.BookNotFound))
			return
		}

		httpx.Success(w, http.StatusOK, "", httpx.Data{"book": b})
	}
}
