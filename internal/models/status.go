package models

// TableStatus represents the occupancy state of a table
type TableStatus string

const (
	// Table statuses
	TableStatusEmpty    TableStatus = "empty"
	TableStatusTaken    TableStatus = "taken"
	TableStatusReserved TableStatus = "reserved"
)

// Valid reports whether the status is one of the known table statuses
func (s TableStatus) Valid() bool {
	switch s {
	case TableStatusEmpty, TableStatusTaken, TableStatusReserved:
		return true
	}
	return false
}

// DishStatus represents the preparation state of a dish within an order
type DishStatus string

const (
	// Dish preparation statuses
	DishStatusToBePrepared     DishStatus = "ToBePrepared"
	DishStatusCannotBePrepared DishStatus = "CannotBePrepared"
	DishStatusPreparing        DishStatus = "Preparing"
	DishStatusCompleted        DishStatus = "Completed"
)

// Valid reports whether the status is one of the known dish statuses
func (s DishStatus) Valid() bool {
	switch s {
	case DishStatusToBePrepared, DishStatusCannotBePrepared, DishStatusPreparing, DishStatusCompleted:
		return true
	}
	return false
}

// CanTransitionTo describes the intended preparation state machine:
// ToBePrepared -> Preparing -> Completed, with a side branch from
// ToBePrepared or Preparing to CannotBePrepared. Status setters do not
// enforce it; any target status can be set directly.
func (s DishStatus) CanTransitionTo(next DishStatus) bool {
	switch s {
	case DishStatusToBePrepared:
		return next == DishStatusPreparing || next == DishStatusCannotBePrepared
	case DishStatusPreparing:
		return next == DishStatusCompleted || next == DishStatusCannotBePrepared
	}
	return false
}
