// Package i18n holds the operator-facing API messages. English strings are the
// catalog keys; Indonesian is selected through Accept-Language or ?lang=.
package i18n

import (
	"net/http"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	BookCreated           = "Book added successfully"
	CreateMissingName     = "Failed to add book. Please provide the book name"
	CreateReadPageTooHigh = "Failed to add book. readPage must not be greater than pageCount"
	CreateNegativePages   = "Failed to add book. pageCount and readPage must not be negative"
	CreateFailed          = "Book could not be added"

	BookNotFound = "Book not found"

	BookUpdated           = "Book updated successfully"
	UpdateMissingName     = "Failed to update book. Please provide the book name"
	UpdateReadPageTooHigh = "Failed to update book. readPage must not be greater than pageCount"
	UpdateNegativePages   = "Failed to update book. pageCount and readPage must not be negative"
	UpdateNotFound        = "Failed to update book. Id not found"

	BookDeleted    = "Book deleted successfully"
	DeleteNotFound = "Failed to delete book. Id not found"

	InvalidJSON      = "Request body must be a single JSON object"
	BodyTooLarge     = "Request body is too large"
	Internal         = "The server could not process the request"
	RouteNotFound    = "Resource not found"
	MethodNotAllowed = "Method not allowed"
)

var indonesian = map[string]string{
	BookCreated:           "Buku berhasil ditambahkan",
	CreateMissingName:     "Gagal menambahkan buku. Mohon isi nama buku",
	CreateReadPageTooHigh: "Gagal menambahkan buku. readPage tidak boleh lebih besar dari pageCount",
	CreateNegativePages:   "Gagal menambahkan buku. pageCount dan readPage tidak boleh negatif",
	CreateFailed:          "Buku gagal ditambahkan",
	BookNotFound:          "Buku tidak ditemukan",
	BookUpdated:           "Buku berhasil diperbarui",
	UpdateMissingName:     "Gagal memperbarui buku. Mohon isi nama buku",
	UpdateReadPageTooHigh: "Gagal memperbarui buku. readPage tidak boleh lebih besar dari pageCount",
	UpdateNegativePages:   "Gagal memperbarui buku. pageCount dan readPage tidak boleh negatif",
	UpdateNotFound:        "Gagal memperbarui buku. Id tidak ditemukan",
	BookDeleted:           "Buku berhasil dihapus",
	DeleteNotFound:        "Buku gagal dihapus. Id tidak ditemukan",
	InvalidJSON:           "Body permintaan harus berupa satu objek JSON",
	BodyTooLarge:          "Body permintaan terlalu besar",
	Internal:              "Server gagal memproses permintaan",
	RouteNotFound:         "Sumber daya tidak ditemukan",
	MethodNotAllowed:      "Metode tidak diizinkan",
}

// supported[0] is the fallback.
var supported = []language.Tag{language.English, language.Indonesian}

var matcher = language.NewMatcher(supported)

func init() {
	for key, msg := range indonesian {
		if err := message.SetString(language.Indonesian, key, msg); err != nil {
			panic("i18n: " + err.Error())
		}
	}
}

// Printer picks the response language for r. ?lang= wins over Accept-Language.
func Printer(r *http.Request) *message.Printer {
	_, i := language.MatchStrings(matcher, r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"))
	return message.NewPrinter(supported[i])
}

// T translates a catalog key for r.
func T(r *http.Request, key string) string {
	return Printer(r).Sprintf(key)
}
