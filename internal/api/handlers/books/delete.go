package books

import (
	"errors"
	"net/http"

	"github.com/5w1tchy/bookshelf-api/internal/api/apperr"
	"github.com/5w1tchy/bookshelf-api/internal/api/httpx"
	"github.com/5w1tchy/bookshelf-api/internal/api/i18n"
	storebooks "github.com/5w1tchy/bookshelf-api/internal/store/books"
	"github.com/go-chi/chi/v5"
)

func del(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "bookId")

		if err := store.Delete(r.Context(), id); err != nil {
			msg := i18n.Internal
			if errors.Is(err, storebooks.ErrNotFound) {
				msg = i18n.DeleteNotFound
			}
			apperr.Write(w, r, err, i18n.T(r, msg))
			return
		}

		httpx.Success(w, http.StatusOK, i18n.T(r, i18n.BookDeleted), nil)
	}
}
