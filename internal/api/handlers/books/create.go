package books

import (
	"net/http"

	"github.com/5w1tchy/bookshelf-api/internal/api/apperr"
	"github.com/5w1tchy/bookshelf-api/internal/api/httpx"
	"github.com/5w1tchy/bookshelf-api/internal/api/i18n"
	"github.com/5w1tchy/bookshelf-api/internal/validate"
)

var createMessages = map[string]string{
	validate.ReasonMissingName:       i18n.CreateMissingName,
	validate.ReasonReadPageExceeds:   i18n.CreateReadPageTooHigh,
	validate.ReasonNegativePageCount: i18n.CreateNegativePages,
}

func create(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := readInput(w, r)
		if !ok {
			return
		}

		id, err := store.Create(r.Context(), in)
		if err != nil {
			msg, known := createMessages[validate.Reason(err)]
			if !known {
				msg = i18n.CreateFailed
			}
			apperr.Write(w, r, err, i18n.T(r, msg))
			return
		}

		httpx.Success(w, http.StatusCreated, i18n.T(r, i18n.BookCreated), httpx.Data{"bookId": id})
	}
}
