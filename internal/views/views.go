package views

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"maitred/internal/models"
)

// View errors
var (
	ErrNoFreeTable      = errors.New("there is no free table with that id")
	ErrNoTableAvailable = errors.New("no free table is large enough for that party")
)

// LayoutRenderer renders a view of the floor. Both the waiter and the
// kitchen view satisfy it: the waiter renders tables, the kitchen renders
// orders.
type LayoutRenderer interface {
	ShowLayout() string
}

// HistorySink receives paid orders. Satisfied by storage.HistoryLog and
// storage.Archive.
type HistorySink interface {
	AppendOrder(order *models.Order, completedAt time.Time) error
}

// ServiceRecorder receives service counters. Satisfied by
// metrics.Collector.
type ServiceRecorder interface {
	OrderOpened()
	DishOrdered()
	OrderPaid(total decimal.Decimal)
	SetTablesWithStatus(status string, count int)
}
