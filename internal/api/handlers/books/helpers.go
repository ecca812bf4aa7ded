package books

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/5w1tchy/bookshelf-api/internal/api/httpx"
	"github.com/5w1tchy/bookshelf-api/internal/api/i18n"
	"github.com/5w1tchy/bookshelf-api/internal/models"
)

// readInput decodes a single JSON object into a BookInput. Unknown fields such
// as "finished" or "id" are ignored; the store derives those itself.
// On failure it has already written the response.
func readInput(w http.ResponseWriter, r *http.Request) (models.BookInput, bool) {
	defer r.Body.Close()

	var in models.BookInput
	dec := json.NewDecoder(r.Body)
	err := dec.Decode(&in)
	if err == nil {
		if dec.Decode(&struct{}{}) != io.EOF {
			err = errors.New("body must only contain a single JSON value")
		}
	}
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpx.Fail(w, http.StatusRequestEntityTooLarge, i18n.T(r, i18n.BodyTooLarge))
			return models.BookInput{}, false
		}
		httpx.Fail(w, http.StatusBadRequest, i18n.T(r, i18n.InvalidJSON))
		return models.BookInput{}, false
	}
	return in, true
}
