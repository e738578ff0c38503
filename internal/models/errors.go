package models

import "errors"

// Domain errors. Callers classify failures with errors.Is; not-found and
// invalid-state conditions stay distinct sentinels.
var (
	ErrDishNotFound  = errors.New("dish with that name does not exist")
	ErrDuplicateDish = errors.New("dish already exists in menu")
	ErrSpiceLevel    = errors.New("spice level needs to be 0, 1, 2 or 3")
	ErrNegativePrice = errors.New("price cannot be negative")
	ErrEmptyDishName = errors.New("dish name is required")

	ErrSeats          = errors.New("table needs at least one seat")
	ErrNegativeGuests = errors.New("number of guests cannot be lower than 0")
	ErrTableTooSmall  = errors.New("table is too small for that many guests")
	ErrTableStatus    = errors.New("unknown table status")

	ErrDishNotOrdered = errors.New("dish with that name is not in the order")
	ErrDishStatus     = errors.New("unknown dish status")

	ErrOrderNotFound = errors.New("there is no order for that table id")
	ErrNilOrder      = errors.New("order must not be nil")
)
