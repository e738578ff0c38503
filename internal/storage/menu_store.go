package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"maitred/internal/models"
)

// ErrLoad indicates a missing or corrupt data file
var ErrLoad = errors.New("data file missing or corrupt")

// dishRecord is the flat on-disk shape of a menu entry
type dishRecord struct {
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	GlutenFree bool    `json:"gluten_free"`
	Vegan      bool    `json:"vegan"`
	Vegetarian bool    `json:"vegetarian"`
	SpiceLevel int     `json:"spice_level"`
}

// MenuStore persists menu templates as an ordered JSON array of flat records
type MenuStore struct {
	path string
}

// NewMenuStore creates a store backed by the given file path
func NewMenuStore(path string) *MenuStore {
	return &MenuStore{path: path}
}

// Path returns the backing file path
func (s *MenuStore) Path() string {
	return s.path
}

// Save writes all templates in menu order
func (s *MenuStore) Save(menu *models.Menu) error {
	dishes := menu.Dishes()
	records := make([]dishRecord, 0, len(dishes))
	for _, dish := range dishes {
		records = append(records, dishRecord{
			Name:       dish.Name,
			Price:      dish.Price.InexactFloat64(),
			GlutenFree: dish.GlutenFree,
			Vegan:      dish.Vegan,
			Vegetarian: dish.Vegetarian,
			SpiceLevel: dish.SpiceLevel,
		})
	}
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("save menu: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("save menu: %w", err)
	}
	return nil
}

// Load resets the menu, then replays AddDish for every record. Ids are
// reassigned from 1, so they survive a round trip only when the load order
// matches the original insertion order. A missing or corrupt file leaves
// the menu reset and returns an error wrapping ErrLoad.
func (s *MenuStore) Load(menu *models.Menu) error {
	menu.Reset()
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLoad, err)
	}
	var records []dishRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("%w: %v", ErrLoad, err)
	}
	for _, record := range records {
		_, err := menu.AddDish(models.DishSpec{
			Name:       record.Name,
			Price:      decimal.NewFromFloat(record.Price),
			GlutenFree: record.GlutenFree,
			Vegan:      record.Vegan,
			Vegetarian: record.Vegetarian,
			SpiceLevel: record.SpiceLevel,
		})
		if err != nil {
			return fmt.Errorf("load menu %q: %w", record.Name, err)
		}
	}
	return nil
}
