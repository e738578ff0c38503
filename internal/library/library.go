package library

import (
	"fmt"
	"strings"
)

// Library is the registry of books and members. It owns both id counters;
// ids start at 0 and are assigned in registration order.
type Library struct {
	books   []*Book
	members []*Member

	nextBookID   int
	nextMemberID int
}

// New creates an empty library
func New() *Library {
	return &Library{}
}

// AddBook registers a new book under the next id and returns it
func (l *Library) AddBook(title, author string) *Book {
	book := &Book{ID: l.nextBookID, Title: title, Author: author, Available: true}
	l.nextBookID++
	l.books = append(l.books, book)
	return book
}

// RemoveBook deletes a book; a borrowed book cannot be removed
func (l *Library) RemoveBook(bookID int) error {
	book, err := l.BookByID(bookID)
	if err != nil {
		return err
	}
	if !book.Available {
		return fmt.Errorf("%q: %w", book.Title, ErrBookOnLoan)
	}
	for i, b := range l.books {
		if b == book {
			l.books = append(l.books[:i], l.books[i+1:]...)
			break
		}
	}
	return nil
}

// RegisterMember registers a new member under the next id and returns them
func (l *Library) RegisterMember(name string) *Member {
	member := &Member{ID: l.nextMemberID, Name: name}
	l.nextMemberID++
	l.members = append(l.members, member)
	return member
}

// DeregisterMember removes a member; outstanding loans block deregistration
func (l *Library) DeregisterMember(memberID int) error {
	member, err := l.MemberByID(memberID)
	if err != nil {
		return err
	}
	if len(member.Borrowed()) > 0 {
		return fmt.Errorf("member %q: %w", member.Name, ErrMemberHasLoans)
	}
	for i, m := range l.members {
		if m == member {
			l.members = append(l.members[:i], l.members[i+1:]...)
			break
		}
	}
	return nil
}

// BookByID retrieves a book by its id
func (l *Library) BookByID(bookID int) (*Book, error) {
	for _, book := range l.books {
		if book.ID == bookID {
			return book, nil
		}
	}
	return nil, fmt.Errorf("%w: id %d", ErrBookNotFound, bookID)
}

// MemberByID retrieves a member by their id
func (l *Library) MemberByID(memberID int) (*Member, error) {
	for _, member := range l.members {
		if member.ID == memberID {
			return member, nil
		}
	}
	return nil, fmt.Errorf("%w: id %d", ErrMemberNotFound, memberID)
}

// BorrowBook lets a member borrow a book by ids
func (l *Library) BorrowBook(memberID, bookID int) error {
	member, err := l.MemberByID(memberID)
	if err != nil {
		return err
	}
	book, err := l.BookByID(bookID)
	if err != nil {
		return err
	}
	return member.Borrow(book)
}

// ReturnBook lets a member return a book by ids
func (l *Library) ReturnBook(memberID, bookID int) error {
	member, err := l.MemberByID(memberID)
	if err != nil {
		return err
	}
	book, err := l.BookByID(bookID)
	if err != nil {
		return err
	}
	return member.Return(book)
}

// ListAvailableBooks lists every book currently on the shelf
func (l *Library) ListAvailableBooks() []string {
	var titles []string
	for _, book := range l.books {
		if book.Available {
			titles = append(titles, book.String())
		}
	}
	return titles
}

// FindMemberIDs returns the ids of all members with the given name
func (l *Library) FindMemberIDs(name string) []int {
	var ids []int
	for _, member := range l.members {
		if member.Name == name {
			ids = append(ids, member.ID)
		}
	}
	return ids
}

// FindBookIDs returns the ids of all books with the given title
func (l *Library) FindBookIDs(title string) []int {
	var ids []int
	for _, book := range l.books {
		if book.Title == title {
			ids = append(ids, book.ID)
		}
	}
	return ids
}

// String renders the members followed by the available books
func (l *Library) String() string {
	var b strings.Builder
	b.WriteString("Members:")
	for _, member := range l.members {
		b.WriteByte('\n')
		b.WriteString(member.String())
	}
	b.WriteString("\nAvailable books:")
	for _, title := range l.ListAvailableBooks() {
		b.WriteByte('\n')
		b.WriteString(title)
	}
	return b.String()
}
