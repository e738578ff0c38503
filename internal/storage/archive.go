package storage

import (
	"fmt"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"maitred/internal/models"
)

// HistoryRecord is one archived dish of a paid order
type HistoryRecord struct {
	gorm.Model
	OrderID     int
	TableID     int
	DishID      int
	DishName    string
	Status      string
	Price       float64
	CompletedAt time.Time
}

// Archive stores paid orders in an embedded SQLite database alongside the
// CSV log, so history stays queryable by order or table.
type Archive struct {
	db *gorm.DB
}

// OpenArchive opens the database at the given path and migrates the schema
func OpenArchive(path string) (*Archive, error) {
	db, err := gorm.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("archive: %w", err)
	}
	if err := db.AutoMigrate(&HistoryRecord{}).Error; err != nil {
		db.Close()
		return nil, fmt.Errorf("archive: %w", err)
	}
	return &Archive{db: db}, nil
}

// AppendOrder archives one record per ordered dish
func (a *Archive) AppendOrder(order *models.Order, completedAt time.Time) error {
	for _, dish := range order.Dishes() {
		record := HistoryRecord{
			OrderID:     order.ID(),
			TableID:     order.Table().ID,
			DishID:      dish.Dish.ID,
			DishName:    dish.Name,
			Status:      string(dish.Status),
			Price:       dish.Price.InexactFloat64(),
			CompletedAt: completedAt,
		}
		if err := a.db.Create(&record).Error; err != nil {
			return fmt.Errorf("archive: %w", err)
		}
	}
	return nil
}

// RecordsForOrder returns the archived dishes of one order
func (a *Archive) RecordsForOrder(orderID int) ([]HistoryRecord, error) {
	var records []HistoryRecord
	if err := a.db.Where("order_id = ?", orderID).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("archive: %w", err)
	}
	return records, nil
}

// RecordsForTable returns every archived dish served at one table
func (a *Archive) RecordsForTable(tableID int) ([]HistoryRecord, error) {
	var records []HistoryRecord
	if err := a.db.Where("table_id = ?", tableID).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("archive: %w", err)
	}
	return records, nil
}

// Close closes the underlying database
func (a *Archive) Close() error {
	return a.db.Close()
}
