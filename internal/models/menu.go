package models

import (
	"fmt"
	"strings"
)

// Menu is a registry of dish templates, unique by normalized name. It owns
// the dish id sequence; ids start at 1 and are reassigned when the menu is
// reloaded from disk.
type Menu struct {
	dishes []*Dish
	index  map[string]*Dish
	seq    *Sequence
}

// NewMenu creates an empty menu
func NewMenu() *Menu {
	return &Menu{
		index: make(map[string]*Dish),
		seq:   NewSequence(1),
	}
}

// AddDish validates the spec and registers a new template under the next
// sequential id. Adding a name that already exists fails; use UpdateDish.
func (m *Menu) AddDish(spec DishSpec) (*Dish, error) {
	if strings.TrimSpace(spec.Name) == "" {
		return nil, ErrEmptyDishName
	}
	if spec.Price.IsNegative() {
		return nil, fmt.Errorf("dish %q: %w", spec.Name, ErrNegativePrice)
	}
	if err := ValidateSpiceLevel(spec.SpiceLevel); err != nil {
		return nil, fmt.Errorf("dish %q: %w", spec.Name, err)
	}
	name := NormalizeDishName(spec.Name)
	if _, ok := m.index[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateDish, name)
	}
	dish := &Dish{
		ID:         m.seq.Next(),
		Name:       name,
		Price:      spec.Price,
		GlutenFree: spec.GlutenFree,
		Vegan:      spec.Vegan,
		Vegetarian: spec.Vegetarian,
		SpiceLevel: spec.SpiceLevel,
	}
	m.dishes = append(m.dishes, dish)
	m.index[name] = dish
	return dish, nil
}

// FindDish looks a template up by name
func (m *Menu) FindDish(name string) (*Dish, error) {
	dish, ok := m.index[NormalizeDishName(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDishNotFound, name)
	}
	return dish, nil
}

// UpdateDish applies a partial update to an existing template. Nothing is
// written unless every present field validates.
func (m *Menu) UpdateDish(name string, update DishUpdate) error {
	dish, err := m.FindDish(name)
	if err != nil {
		return err
	}
	if err := update.Validate(); err != nil {
		return fmt.Errorf("dish %q: %w", dish.Name, err)
	}
	if update.Price != nil {
		dish.Price = *update.Price
	}
	if update.GlutenFree != nil {
		dish.GlutenFree = *update.GlutenFree
	}
	if update.Vegan != nil {
		dish.Vegan = *update.Vegan
	}
	if update.Vegetarian != nil {
		dish.Vegetarian = *update.Vegetarian
	}
	if update.SpiceLevel != nil {
		dish.SpiceLevel = *update.SpiceLevel
	}
	return nil
}

// RemoveDish deletes a template by name
func (m *Menu) RemoveDish(name string) error {
	dish, err := m.FindDish(name)
	if err != nil {
		return err
	}
	delete(m.index, dish.Name)
	for i, d := range m.dishes {
		if d == dish {
			m.dishes = append(m.dishes[:i], m.dishes[i+1:]...)
			break
		}
	}
	return nil
}

// Dishes returns the templates in insertion order
func (m *Menu) Dishes() []*Dish {
	return m.dishes
}

// Reset clears all templates and rewinds the id sequence to 1. Used before
// replaying a persisted menu.
func (m *Menu) Reset() {
	m.dishes = nil
	m.index = make(map[string]*Dish)
	m.seq.Reset(1)
}

// String lists the dish names, one per line
func (m *Menu) String() string {
	var b strings.Builder
	for i, dish := range m.dishes {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "- %s", dish.Name)
	}
	return b.String()
}
