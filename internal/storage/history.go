package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"maitred/internal/models"
)

// historyHeader is the fixed header row of the order history file
var historyHeader = []string{"Order ID", "Table ID", "Menu Item Id", "Status", "Price", "Timestamp"}

// timestampLayout formats completion timestamps in history records
const timestampLayout = "2006-01-02 15:04:05"

// HistoryLog appends paid orders to a CSV file, one row per dish. The file
// is created with a header row on first use and only ever appended to.
type HistoryLog struct {
	path string
}

// NewHistoryLog creates a log backed by the given file path
func NewHistoryLog(path string) *HistoryLog {
	return &HistoryLog{path: path}
}

// Path returns the backing file path
func (l *HistoryLog) Path() string {
	return l.path
}

// AppendOrder writes one row per ordered dish, all sharing the completion
// timestamp captured for this payment.
func (l *HistoryLog) AppendOrder(order *models.Order, completedAt time.Time) error {
	_, statErr := os.Stat(l.path)
	fresh := os.IsNotExist(statErr)

	file, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if fresh {
		if err := w.Write(historyHeader); err != nil {
			return fmt.Errorf("history: %w", err)
		}
	}
	stamp := completedAt.Format(timestampLayout)
	for _, dish := range order.Dishes() {
		row := []string{
			strconv.Itoa(order.ID()),
			strconv.Itoa(order.Table().ID),
			strconv.Itoa(dish.Dish.ID),
			string(dish.Status),
			dish.Price.StringFixed(2),
			stamp,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("history: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("history: %w", err)
	}
	return nil
}
