package books

import (
	"context"
	"net/http"

	"github.com/5w1tchy/bookshelf-api/internal/models"
	storebooks "github.com/5w1tchy/bookshelf-api/internal/store/books"
	"github.com/go-chi/chi/v5"
)

// Store is what the handlers need from the shelf.
type Store interface {
	Create(ctx context.Context, in models.BookInput) (string, error)
	List(ctx context.Context, f storebooks.Filter) []models.BookSummary
	Get(ctx context.Context, id string) (models.Book, error)
	Update(ctx context.Context, id string, in models.BookInput) (models.Book, error)
	Delete(ctx context.Context, id string) error
}

var _ Store = (*storebooks.Store)(nil)

// Routes mounts the book endpoints relative to /books.
func Routes(store Store) http.Handler {
	r := chi.NewRouter()
	r.Post("/", create(store))
	r.Get("/", list(store))
	r.Get("/{bookId}", get(store))
	r.Put("/{bookId}", put(store))
	r.Delete("/{bookId}", del(store))
	return r
}
