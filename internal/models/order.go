package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Order binds one table to the dishes ordered for it. The order exclusively
// owns its table for its lifetime; dishes are per-order copies of menu
// templates, each with its own preparation status. Duplicate dish names are
// allowed and tracked independently.
type Order struct {
	id             int
	table          *Table
	dishes         []*OrderedDish
	completionTime time.Time
}

// NewOrder creates an order for the given table
func NewOrder(id int, table *Table) *Order {
	return &Order{id: id, table: table}
}

// ID returns the order id
func (o *Order) ID() int {
	return o.id
}

// Table returns the table this order is bound to
func (o *Order) Table() *Table {
	return o.table
}

// Dishes returns the ordered dish instances in order of arrival
func (o *Order) Dishes() []*OrderedDish {
	return o.dishes
}

// OrderDish appends a fresh instance of the named menu template at
// ToBePrepared. Ordering against a reserved table flips it to taken: the
// first item converts a reservation into active service.
func (o *Order) OrderDish(menu *Menu, name string) error {
	template, err := menu.FindDish(name)
	if err != nil {
		return err
	}
	if o.table.Status == TableStatusReserved {
		o.table.Status = TableStatusTaken
	}
	o.dishes = append(o.dishes, &OrderedDish{
		Dish:   *template,
		Status: DishStatusToBePrepared,
	})
	return nil
}

// ChangeDishStatus sets the status of every instance matching the given
// name, not just one; with duplicates in the order all of them move
// together. Fails when no instance matches.
func (o *Order) ChangeDishStatus(name string, status DishStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrDishStatus, status)
	}
	normalized := NormalizeDishName(name)
	matched := false
	for _, dish := range o.dishes {
		if dish.Name == normalized {
			dish.Status = status
			matched = true
		}
	}
	if !matched {
		return fmt.Errorf("%w: %q", ErrDishNotOrdered, name)
	}
	return nil
}

// ChangeDishOrder swaps a dish for another: every instance of the old
// template is removed (duplicates included), then the new dish is ordered.
// The old name is resolved against the menu, so swapping a dish that is no
// longer on the menu fails.
func (o *Order) ChangeDishOrder(menu *Menu, oldName, newName string) error {
	template, err := menu.FindDish(oldName)
	if err != nil {
		return err
	}
	kept := o.dishes[:0]
	for _, dish := range o.dishes {
		if dish.Dish.ID != template.ID {
			kept = append(kept, dish)
		}
	}
	o.dishes = kept
	return o.OrderDish(menu, newName)
}

// DishesWithStatus returns the instances currently in the given status
func (o *Order) DishesWithStatus(status DishStatus) []*OrderedDish {
	var matches []*OrderedDish
	for _, dish := range o.dishes {
		if dish.Status == status {
			matches = append(matches, dish)
		}
	}
	return matches
}

// Total sums the prices of all ordered dishes
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, dish := range o.dishes {
		total = total.Add(dish.Price)
	}
	return total
}

// ClearDishes drops all ordered dishes, keeping the order record itself
func (o *Order) ClearDishes() {
	o.dishes = nil
}

// Complete stamps the order with its completion time
func (o *Order) Complete(at time.Time) {
	o.completionTime = at
}

// CompletionTime returns the payment timestamp, zero while the order is open
func (o *Order) CompletionTime() time.Time {
	return o.completionTime
}

// String renders the order header and one line per dish
func (o *Order) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order #%d", o.id)
	for _, dish := range o.dishes {
		b.WriteByte('\n')
		b.WriteString(dish.String())
	}
	return b.String()
}
