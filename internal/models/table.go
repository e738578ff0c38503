package models

import "fmt"

// Table represents a physical seating unit. Guest count is bounded by seat
// capacity; the setter rejects any value that would break 0 <= guests <= seats.
type Table struct {
	ID     int
	Seats  int
	Status TableStatus

	guests int
}

// NewTable creates a table with the given id, capacity and initial state.
// The guest bound is enforced from the start, so a table can never be
// created over capacity.
func NewTable(id, seats int, status TableStatus, guests int) (*Table, error) {
	if seats <= 0 {
		return nil, fmt.Errorf("table %d: %w", id, ErrSeats)
	}
	if !status.Valid() {
		return nil, fmt.Errorf("table %d: %w: %q", id, ErrTableStatus, status)
	}
	t := &Table{ID: id, Seats: seats, Status: status}
	if err := t.SetGuests(guests); err != nil {
		return nil, err
	}
	return t, nil
}

// Guests returns the current guest count
func (t *Table) Guests() int {
	return t.guests
}

// SetGuests assigns the guest count, failing without mutation when the value
// is negative or exceeds the seat capacity
func (t *Table) SetGuests(n int) error {
	if n < 0 {
		return fmt.Errorf("table %d: %w", t.ID, ErrNegativeGuests)
	}
	if n > t.Seats {
		return fmt.Errorf("table %d seats %d: %w", t.ID, t.Seats, ErrTableTooSmall)
	}
	t.guests = n
	return nil
}

// AddGuests seats n additional guests and marks the table as taken.
// Capacity failures leave both guest count and status untouched.
func (t *Table) AddGuests(n int) error {
	if err := t.SetGuests(t.guests + n); err != nil {
		return err
	}
	t.Status = TableStatusTaken
	return nil
}

// ChangeStatus sets the table status unconditionally
func (t *Table) ChangeStatus(status TableStatus) {
	t.Status = status
}

// String renders the table for the floor layout: empty tables show their
// occupancy fraction, taken and reserved tables show fixed markers.
func (t *Table) String() string {
	var status string
	switch t.Status {
	case TableStatusEmpty:
		status = fmt.Sprintf("%2d/%d  ", t.guests, t.Seats)
	case TableStatusTaken:
		status = "----- "
	default:
		status = "--R-- "
	}
	return fmt.Sprintf("#%02d %s", t.ID, status)
}
