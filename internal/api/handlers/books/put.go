package books

import (
	"errors"
	"net/http"

	"github.com/5w1tchy/bookshelf-api/internal/api/apperr"
	"github.com/5w1tchy/bookshelf-api/internal/api/httpx"
	"github.com/5w1tchy/bookshelf-api/internal/api/i18n"
	storebooks "github.com/5w1tchy/bookshelf-api/internal/store/books"
	"github.com/5w1tchy/bookshelf-api/internal/validate"
	"github.com/go-chi/chi/v5"
)

var updateMessages = map[string]string{
	validate.ReasonMissingName:       i18n.UpdateMissingName,
	validate.ReasonReadPageExceeds:   i18n.UpdateReadPageTooHigh,
	validate.ReasonNegativePageCount: i18n.UpdateNegativePages,
}

// put replaces a book. The body is validated before the id is looked up, so a
// bad payload for an unknown id is a 400, not a 404.
func put(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "bookId")

		in, ok := readInput(w, r)
		if !ok {
			return
		}

		if _, err := store.Update(r.Context(), id, in); err != nil {
			msg, known := updateMessages[validate.Reason(err)]
			switch {
			case known:
			case errors.Is(err, storebooks.ErrNotFound):
				msg = i18n.UpdateNotFound
			default:
				msg = i18n.Internal
			}
			apperr.Write(w, r, err, i18n.T(r, msg))
			return
		}

		httpx.Success(w, http.StatusOK, i18n.T(r, i18n.BookUpdated), nil)
	}
}
