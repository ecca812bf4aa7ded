package books

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/5w1tchy/bookshelf-api/internal/models"
	"github.com/5w1tchy/bookshelf-api/internal/validate"
	"golang.org/x/text/cases"
)

// Store keeps the shelf in memory, in insertion order.
type Store struct {
	mu    sync.RWMutex
	books []models.Book
	now   Clock
	newID IDGenerator
}

// Filter narrows List. Empty fields don't filter; Reading and Finished accept "0" or "1".
type Filter struct {
	Name     string
	Reading  string
	Finished string
}

func New(opts ...Option) *Store {
	s := &Store{now: systemClock, newID: nanoID}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates in, appends a new book and returns its id.
func (s *Store) Create(ctx context.Context, in models.BookInput) (string, error) {
	if err := validate.Book(in.Name, in.PageCount, in.ReadPage); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	id, err := s.newID()
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(id) != -1 {
		return "", fmt.Errorf("%w: duplicate id %q", ErrInternal, id)
	}

	now := s.now()
	b := models.Book{ID: id, InsertedAt: now, UpdatedAt: now}
	b.Apply(in)
	s.books = append(s.books, b)

	if s.indexOf(id) == -1 {
		return "", ErrInternal
	}
	return id, nil
}

// List returns the projections of every book matching f, in storage order.
func (s *Store) List(ctx context.Context, f Filter) []models.BookSummary {
	reading := validate.ParseFlag(f.Reading)
	finished := validate.ParseFlag(f.Finished)
	fold := cases.Fold()
	query := fold.String(f.Name)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.BookSummary, 0, len(s.books))
	for _, b := range s.books {
		if query != "" && !strings.Contains(fold.String(b.Name), query) {
			continue
		}
		if reading != nil && b.Reading != *reading {
			continue
		}
		if finished != nil && b.Finished != *finished {
			continue
		}
		out = append(out, b.Summarize())
	}
	return out
}

// Get returns a copy of the book with the given id.
func (s *Store) Get(ctx context.Context, id string) (models.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i == -1 {
		return models.Book{}, ErrNotFound
	}
	return s.books[i], nil
}

// Update replaces every editable field of the book. Validation runs before the lookup.
func (s *Store) Update(ctx context.Context, id string, in models.BookInput) (models.Book, error) {
	if err := validate.Book(in.Name, in.PageCount, in.ReadPage); err != nil {
		return models.Book{}, err
	}
	if err := ctx.Err(); err != nil {
		return models.Book{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i == -1 {
		return models.Book{}, ErrNotFound
	}
	b := &s.books[i]
	b.Apply(in)
	b.UpdatedAt = s.now()
	return *b, nil
}

// Delete removes the book, keeping the order of the rest.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i == -1 {
		return ErrNotFound
	}
	s.books = append(s.books[:i], s.books[i+1:]...)
	return nil
}

// Len reports how many books are stored.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.books)
}

// indexOf must be called with mu held.
func (s *Store) indexOf(id string) int {
	for i := range s.books {
		if s.books[i].ID == id {
			return i
		}
	}
	return -1
}
