package views

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"maitred/internal/models"
)

// layoutColumns is the fixed width of the floor grid
const layoutColumns = 4

// ChangeOrderResult reports the outcome of a guest-count change. When the
// party outgrew its table, Moved is true and NewTableID names the table the
// party was reassigned to.
type ChangeOrderResult struct {
	TableID    int
	Guests     int
	Moved      bool
	NewTableID int
}

// WaiterView exposes the front-of-house operations over an order manager:
// seating, moving parties, taking dishes, billing.
type WaiterView struct {
	manager  *models.OrderManager
	menu     *models.Menu
	history  []HistorySink
	recorder ServiceRecorder
	log      *logrus.Logger
}

// WaiterOptions carries the optional collaborators of a waiter view
type WaiterOptions struct {
	History  []HistorySink
	Recorder ServiceRecorder
	Logger   *logrus.Logger
}

// NewWaiterView creates a waiter view over the given manager and menu
func NewWaiterView(manager *models.OrderManager, menu *models.Menu, opts WaiterOptions) *WaiterView {
	log := opts.Logger
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &WaiterView{
		manager:  manager,
		menu:     menu,
		history:  opts.History,
		recorder: opts.Recorder,
		log:      log,
	}
}

// FreeTables lists the tables currently empty, one per line
func (w *WaiterView) FreeTables() string {
	var b strings.Builder
	b.WriteString("Free tables are:")
	empty := models.TableStatusEmpty
	for _, order := range w.manager.FilterOrders(models.OrderFilter{TableStatus: &empty}) {
		b.WriteByte('\n')
		b.WriteString(strings.TrimSpace(order.Table().String()))
	}
	return b.String()
}

// SeatGuests seats a party at an empty table. Only empty tables are
// eligible; asking for a table in any other state fails with ErrNoFreeTable,
// and capacity failures from the table propagate unchanged.
func (w *WaiterView) SeatGuests(guests, tableID int) (*models.Order, error) {
	empty := models.TableStatusEmpty
	for _, order := range w.manager.FilterOrders(models.OrderFilter{TableStatus: &empty}) {
		if order.Table().ID != tableID {
			continue
		}
		if err := order.Table().AddGuests(guests); err != nil {
			return nil, err
		}
		w.updateTableGauge()
		w.log.WithFields(logrus.Fields{
			"guests":   guests,
			"table_id": tableID,
			"order_id": order.ID(),
		}).Info("guests seated")
		return order, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrNoFreeTable, tableID)
}

// AddOrder opens a new table with its order
func (w *WaiterView) AddOrder(seats int, status models.TableStatus, guests int) (*models.Order, error) {
	order, err := w.manager.OpenTable(seats, status, guests)
	if err != nil {
		return nil, err
	}
	if w.recorder != nil {
		w.recorder.OrderOpened()
	}
	w.updateTableGauge()
	w.log.WithFields(logrus.Fields{
		"order_id": order.ID(),
		"table_id": order.Table().ID,
		"seats":    seats,
	}).Info("order added")
	return order, nil
}

// AddDish orders a dish for the given table
func (w *WaiterView) AddDish(tableID int, dishName string) error {
	order, err := w.manager.FindOrder(tableID)
	if err != nil {
		return err
	}
	if err := order.OrderDish(w.menu, dishName); err != nil {
		return err
	}
	if w.recorder != nil {
		w.recorder.DishOrdered()
	}
	w.updateTableGauge()
	w.log.WithFields(logrus.Fields{
		"table_id": tableID,
		"dish":     dishName,
	}).Info("dish added to order")
	return nil
}

// ChangeDishOrder swaps one dish for another on the given table's order
func (w *WaiterView) ChangeDishOrder(tableID int, oldName, newName string) error {
	order, err := w.manager.FindOrder(tableID)
	if err != nil {
		return err
	}
	if err := order.ChangeDishOrder(w.menu, oldName, newName); err != nil {
		return err
	}
	if w.recorder != nil {
		w.recorder.DishOrdered()
	}
	w.log.WithFields(logrus.Fields{
		"table_id": tableID,
		"old_dish": oldName,
		"new_dish": newName,
	}).Info("dish changed")
	return nil
}

// ChangeOrder updates the guest count of an open order. A count that still
// fits the table updates in place. A count over capacity moves the party to
// the first free table with enough seats and frees the original table,
// clearing its dishes; with no candidate the order is left untouched and
// ErrNoTableAvailable is returned. The target table keeps its empty status
// until dishes are ordered.
func (w *WaiterView) ChangeOrder(tableID, newGuests int) (ChangeOrderResult, error) {
	order, err := w.manager.FindOrder(tableID)
	if err != nil {
		return ChangeOrderResult{}, err
	}
	if newGuests <= order.Table().Seats {
		if err := order.Table().SetGuests(newGuests); err != nil {
			return ChangeOrderResult{}, err
		}
		w.log.WithFields(logrus.Fields{
			"table_id": tableID,
			"guests":   newGuests,
		}).Info("guest count updated")
		return ChangeOrderResult{TableID: tableID, Guests: newGuests}, nil
	}

	empty := models.TableStatusEmpty
	for _, candidate := range w.manager.FilterOrders(models.OrderFilter{TableStatus: &empty}) {
		if candidate.Table().Seats < newGuests {
			continue
		}
		if err := candidate.Table().SetGuests(newGuests); err != nil {
			return ChangeOrderResult{}, err
		}
		order.Table().ChangeStatus(models.TableStatusEmpty)
		if err := order.Table().SetGuests(0); err != nil {
			return ChangeOrderResult{}, err
		}
		order.ClearDishes()
		w.updateTableGauge()
		w.log.WithFields(logrus.Fields{
			"table_id":     tableID,
			"new_table_id": candidate.Table().ID,
			"guests":       newGuests,
		}).Info("party moved to bigger table")
		return ChangeOrderResult{
			TableID:    tableID,
			Guests:     newGuests,
			Moved:      true,
			NewTableID: candidate.Table().ID,
		}, nil
	}
	return ChangeOrderResult{}, fmt.Errorf("%w: %d guests", ErrNoTableAvailable, newGuests)
}

// CancelOrder clears the order on the given table and frees it
func (w *WaiterView) CancelOrder(tableID int) error {
	if err := w.manager.RemoveOrder(tableID); err != nil {
		return err
	}
	w.updateTableGauge()
	w.log.WithFields(logrus.Fields{"table_id": tableID}).Info("order cancelled")
	return nil
}

// PaidTable settles the order on the given table: every dish is written to
// the history sinks with one completion timestamp, the payment is counted,
// then the table is cleared for new guests.
func (w *WaiterView) PaidTable(tableID int) error {
	order, err := w.manager.FindOrder(tableID)
	if err != nil {
		return err
	}
	completedAt := time.Now()
	order.Complete(completedAt)
	for _, sink := range w.history {
		if err := sink.AppendOrder(order, completedAt); err != nil {
			return err
		}
	}
	if w.recorder != nil {
		w.recorder.OrderPaid(order.Total())
	}
	if err := w.manager.RemoveOrder(tableID); err != nil {
		return err
	}
	w.updateTableGauge()
	w.log.WithFields(logrus.Fields{
		"table_id": tableID,
		"order_id": order.ID(),
	}).Info("table paid and cleared")
	return nil
}

// ChangeTableStatus sets the status of the given table
func (w *WaiterView) ChangeTableStatus(tableID int, status models.TableStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", models.ErrTableStatus, status)
	}
	order, err := w.manager.FindOrder(tableID)
	if err != nil {
		return err
	}
	order.Table().ChangeStatus(status)
	w.updateTableGauge()
	return nil
}

// ShowLayout renders all tables in a fixed four-column grid
func (w *WaiterView) ShowLayout() string {
	var b strings.Builder
	b.WriteString(" ------------------ Tables -----------------\n")
	orders := w.manager.Orders()
	for i := 0; i < len(orders); i += layoutColumns {
		end := i + layoutColumns
		if end > len(orders) {
			end = len(orders)
		}
		for _, order := range orders[i:end] {
			b.WriteByte('|')
			b.WriteString(order.Table().String())
		}
		b.WriteString("|\n")
	}
	b.WriteString(" -------------------------------------------")
	return b.String()
}

// updateTableGauge refreshes the per-status table counts
func (w *WaiterView) updateTableGauge() {
	if w.recorder == nil {
		return
	}
	counts := map[models.TableStatus]int{
		models.TableStatusEmpty:    0,
		models.TableStatusTaken:    0,
		models.TableStatusReserved: 0,
	}
	for _, order := range w.manager.Orders() {
		counts[order.Table().Status]++
	}
	for status, count := range counts {
		w.recorder.SetTablesWithStatus(string(status), count)
	}
}
