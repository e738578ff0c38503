package library

import (
	"errors"
	"fmt"
)

// Library errors
var (
	ErrBookNotFound   = errors.New("book not found")
	ErrMemberNotFound = errors.New("member not found")
	ErrBookBorrowed   = errors.New("book is already borrowed")
	ErrBookAvailable  = errors.New("book is already available")
	ErrBookOnLoan     = errors.New("cannot remove a borrowed book")
	ErrMemberHasLoans = errors.New("cannot deregister a member who still has borrowed books")
	ErrNotHeld        = errors.New("member does not have this book")
)

// Book represents a book in the library
type Book struct {
	ID        int
	Title     string
	Author    string
	Available bool
}

// MarkBorrowed flips the book to borrowed; borrowing twice fails
func (b *Book) MarkBorrowed() error {
	if !b.Available {
		return fmt.Errorf("%q: %w", b.Title, ErrBookBorrowed)
	}
	b.Available = false
	return nil
}

// MarkReturned flips the book back to available; returning an available
// book fails
func (b *Book) MarkReturned() error {
	if b.Available {
		return fmt.Errorf("%q: %w", b.Title, ErrBookAvailable)
	}
	b.Available = true
	return nil
}

// String renders the book as "Title by Author"
func (b *Book) String() string {
	return fmt.Sprintf("%s by %s", b.Title, b.Author)
}
