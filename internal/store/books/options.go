package books

import (
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idLength = 16

// Clock returns the current time.
type Clock func() time.Time

// IDGenerator returns a fresh book id.
type IDGenerator func() (string, error)

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the wall clock (tests pin it).
func WithClock(c Clock) Option {
	return func(s *Store) { s.now = c }
}

// WithIDGenerator overrides nanoid generation.
func WithIDGenerator(g IDGenerator) Option {
	return func(s *Store) { s.newID = g }
}

func systemClock() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func nanoID() (string, error) {
	return gonanoid.New(idLength)
}
