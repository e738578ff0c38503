package library

import "fmt"

// Member represents a library member and the books they hold
type Member struct {
	ID       int
	Name     string
	borrowed []*Book
}

// Borrow takes a book out for the member
func (m *Member) Borrow(book *Book) error {
	if err := book.MarkBorrowed(); err != nil {
		return err
	}
	m.borrowed = append(m.borrowed, book)
	return nil
}

// Return hands a borrowed book back. Returning a book the member does not
// hold fails.
func (m *Member) Return(book *Book) error {
	for i, held := range m.borrowed {
		if held == book {
			if err := book.MarkReturned(); err != nil {
				return err
			}
			m.borrowed = append(m.borrowed[:i], m.borrowed[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("member %q: %w", m.Name, ErrNotHeld)
}

// Borrowed returns the books the member currently holds
func (m *Member) Borrowed() []*Book {
	return m.borrowed
}

// String renders the member with their loan count
func (m *Member) String() string {
	return fmt.Sprintf("%s [ID: %d] Borrowed books: %d", m.Name, m.ID, len(m.borrowed))
}
