package models

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Dish represents a menu entry template: dietary attributes, spice level and
// price. Templates carry no preparation state; that lives on the per-order
// OrderedDish copy.
type Dish struct {
	ID         int
	Name       string
	Price      decimal.Decimal
	GlutenFree bool
	Vegan      bool
	Vegetarian bool
	SpiceLevel int
}

// DishSpec describes a dish to be added to a menu
type DishSpec struct {
	Name       string
	Price      decimal.Decimal
	GlutenFree bool
	Vegan      bool
	Vegetarian bool
	SpiceLevel int
}

// DishUpdate lists the optional fields of a partial dish update. Only
// non-nil fields are applied, and every present field is validated before
// any of them is written.
type DishUpdate struct {
	Price      *decimal.Decimal
	GlutenFree *bool
	Vegan      *bool
	Vegetarian *bool
	SpiceLevel *int
}

// Validate checks the fields present in the update without applying them
func (u DishUpdate) Validate() error {
	if u.Price != nil && u.Price.IsNegative() {
		return ErrNegativePrice
	}
	if u.SpiceLevel != nil {
		if err := ValidateSpiceLevel(*u.SpiceLevel); err != nil {
			return err
		}
	}
	return nil
}

// ValidateSpiceLevel checks that the level is within the 0..3 scale
func ValidateSpiceLevel(level int) error {
	if level < 0 || level > 3 {
		return fmt.Errorf("%w: got %d", ErrSpiceLevel, level)
	}
	return nil
}

// NormalizeDishName title-cases a dish name; menus treat names as unique
// after normalization
func NormalizeDishName(name string) string {
	return cases.Title(language.English).String(name)
}

// OrderedDish is one dish instance within an order: a copy of the menu
// template plus its own preparation status. Copying keeps status off the
// shared template so orders never leak state into each other.
type OrderedDish struct {
	Dish
	Status DishStatus
}

// String renders the instance for kitchen views
func (d *OrderedDish) String() string {
	return fmt.Sprintf("- %s: %s", d.Name, d.Status)
}
