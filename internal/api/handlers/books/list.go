package books

import (
	"net/http"

	"github.com/5w1tchy/bookshelf-api/internal/api/httpx"
	storebooks "github.com/5w1tchy/bookshelf-api/internal/store/books"
)

func list(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter := storebooks.Filter{
			Name:     q.Get("name"),
			Reading:  q.Get("reading"),
			Finished: q.Get("finished"),
		}

		books := store.List(r.Context(), filter)
		httpx.Success(w, http.StatusOK, "", httpx.Data{"books": books})
	}
}
