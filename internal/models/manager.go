package models

import (
	"fmt"
	"strings"
)

// OrderFilter lists optional order filter criteria; orders must match every
// present field. DishStatus matches orders containing at least one dish in
// that status.
type OrderFilter struct {
	TableStatus *TableStatus
	DishStatus  *DishStatus
}

// OrderManager holds the open orders of the floor, one per table. It owns
// the order and table id sequences; both start at 1.
type OrderManager struct {
	orders   []*Order
	orderSeq *Sequence
	tableSeq *Sequence
}

// NewOrderManager creates an empty manager with fresh id sequences
func NewOrderManager() *OrderManager {
	return &OrderManager{
		orderSeq: NewSequence(1),
		tableSeq: NewSequence(1),
	}
}

// OpenTable creates a table and its order together and registers the pair.
// Table and order ids come from the manager's sequences.
func (m *OrderManager) OpenTable(seats int, status TableStatus, guests int) (*Order, error) {
	table, err := NewTable(m.tableSeq.Next(), seats, status, guests)
	if err != nil {
		return nil, err
	}
	order := NewOrder(m.orderSeq.Next(), table)
	m.orders = append(m.orders, order)
	return order, nil
}

// AddOrder registers an externally built order
func (m *OrderManager) AddOrder(order *Order) error {
	if order == nil {
		return ErrNilOrder
	}
	m.orders = append(m.orders, order)
	return nil
}

// FindOrder returns the order bound to the given table id
func (m *OrderManager) FindOrder(tableID int) (*Order, error) {
	for _, order := range m.orders {
		if order.Table().ID == tableID {
			return order, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrOrderNotFound, tableID)
}

// RemoveOrder closes the order on the given table: dishes are cleared, the
// guest count is zeroed and the table reverts to empty. The order record
// itself is kept so the table stays on the floor.
func (m *OrderManager) RemoveOrder(tableID int) error {
	order, err := m.FindOrder(tableID)
	if err != nil {
		return err
	}
	order.ClearDishes()
	table := order.Table()
	table.Status = TableStatusEmpty
	return table.SetGuests(0)
}

// FilterOrders returns the orders matching all criteria present in the
// filter, in registration order. An empty filter returns every order.
func (m *OrderManager) FilterOrders(filter OrderFilter) []*Order {
	var matches []*Order
	for _, order := range m.orders {
		if filter.TableStatus != nil && order.Table().Status != *filter.TableStatus {
			continue
		}
		if filter.DishStatus != nil && len(order.DishesWithStatus(*filter.DishStatus)) == 0 {
			continue
		}
		matches = append(matches, order)
	}
	return matches
}

// Orders returns all registered orders
func (m *OrderManager) Orders() []*Order {
	return m.orders
}

// String renders every order in registration order
func (m *OrderManager) String() string {
	views := make([]string, 0, len(m.orders))
	for _, order := range m.orders {
		views = append(views, order.String())
	}
	return strings.Join(views, "\n")
}
