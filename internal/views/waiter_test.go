package views

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maitred/internal/models"
)

// sinkRecorder captures paid orders handed to a history sink
type sinkRecorder struct {
	orders []*models.Order
	stamps []time.Time
}

func (s *sinkRecorder) AppendOrder(order *models.Order, completedAt time.Time) error {
	s.orders = append(s.orders, order)
	s.stamps = append(s.stamps, completedAt)
	return nil
}

// fakeRecorder counts service metric calls
type fakeRecorder struct {
	opened, dishes, paid int
	revenue              decimal.Decimal
	tables               map[string]int
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{revenue: decimal.Zero, tables: make(map[string]int)}
}

func (r *fakeRecorder) OrderOpened() { r.opened++ }
func (r *fakeRecorder) DishOrdered() { r.dishes++ }
func (r *fakeRecorder) OrderPaid(total decimal.Decimal) {
	r.paid++
	r.revenue = r.revenue.Add(total)
}
func (r *fakeRecorder) SetTablesWithStatus(status string, count int) { r.tables[status] = count }

func waiterMenu(t *testing.T) *models.Menu {
	t.Helper()
	menu := models.NewMenu()
	seeds := []models.DishSpec{
		{Name: "Spaghetti Bolognese", Price: decimal.NewFromFloat(30.5), SpiceLevel: 2},
		{Name: "Tomato Soup", Price: decimal.NewFromFloat(12), Vegan: true},
		{Name: "Garlic Bread", Price: decimal.NewFromFloat(15.2), Vegetarian: true},
	}
	for _, seed := range seeds {
		_, err := menu.AddDish(seed)
		require.NoError(t, err)
	}
	return menu
}

// newFloor seats the doctest floor: #1 empty 4-seat, #2 reserved 2-seat,
// #3 empty 6-seat, #4 empty 1-seat.
func newFloor(t *testing.T, opts WaiterOptions) (*WaiterView, *models.OrderManager) {
	t.Helper()
	manager := models.NewOrderManager()
	menu := waiterMenu(t)
	waiter := NewWaiterView(manager, menu, opts)

	for _, seed := range []struct {
		seats  int
		status models.TableStatus
		guests int
	}{
		{4, models.TableStatusEmpty, 0},
		{2, models.TableStatusReserved, 1},
		{6, models.TableStatusEmpty, 0},
		{1, models.TableStatusEmpty, 0},
	} {
		_, err := waiter.AddOrder(seed.seats, seed.status, seed.guests)
		require.NoError(t, err)
	}
	return waiter, manager
}

func TestFreeTables(t *testing.T) {
	waiter, _ := newFloor(t, WaiterOptions{})

	want := "Free tables are:\n#01  0/4\n#03  0/6\n#04  0/1"
	assert.Equal(t, want, waiter.FreeTables())
}

func TestSeatGuests(t *testing.T) {
	waiter, manager := newFloor(t, WaiterOptions{})

	order, err := waiter.SeatGuests(4, 1)
	require.NoError(t, err)
	assert.Equal(t, models.TableStatusTaken, order.Table().Status)
	assert.Equal(t, 4, order.Table().Guests())

	// The reserved table is not free, even though its id exists.
	_, err = waiter.SeatGuests(1, 2)
	assert.ErrorIs(t, err, ErrNoFreeTable)

	// Capacity failures from the table propagate unchanged.
	_, err = waiter.SeatGuests(4, 4)
	assert.ErrorIs(t, err, models.ErrTableTooSmall)
	small, err := manager.FindOrder(4)
	require.NoError(t, err)
	assert.Equal(t, 0, small.Table().Guests())
	assert.Equal(t, models.TableStatusEmpty, small.Table().Status)
}

func TestAddDish(t *testing.T) {
	waiter, manager := newFloor(t, WaiterOptions{})
	_, err := waiter.SeatGuests(2, 1)
	require.NoError(t, err)

	require.NoError(t, waiter.AddDish(1, "Spaghetti Bolognese"))
	assert.ErrorIs(t, waiter.AddDish(1, "Ratatouille"), models.ErrDishNotFound)
	assert.ErrorIs(t, waiter.AddDish(42, "Garlic Bread"), models.ErrOrderNotFound)

	order, err := manager.FindOrder(1)
	require.NoError(t, err)
	assert.Len(t, order.Dishes(), 1)
}

func TestChangeOrderWithinCapacity(t *testing.T) {
	waiter, manager := newFloor(t, WaiterOptions{})
	_, err := waiter.SeatGuests(3, 1)
	require.NoError(t, err)

	result, err := waiter.ChangeOrder(1, 2)
	require.NoError(t, err)
	assert.False(t, result.Moved)
	assert.Equal(t, 2, result.Guests)

	order, err := manager.FindOrder(1)
	require.NoError(t, err)
	assert.Equal(t, 2, order.Table().Guests())
}

func TestChangeOrderMovesParty(t *testing.T) {
	waiter, manager := newFloor(t, WaiterOptions{})
	_, err := waiter.SeatGuests(3, 1)
	require.NoError(t, err)
	require.NoError(t, waiter.AddDish(1, "Garlic Bread"))

	result, err := waiter.ChangeOrder(1, 5)
	require.NoError(t, err)
	assert.True(t, result.Moved)
	assert.Equal(t, 3, result.NewTableID, "first free table with enough seats wins")

	old, err := manager.FindOrder(1)
	require.NoError(t, err)
	assert.Equal(t, models.TableStatusEmpty, old.Table().Status)
	assert.Equal(t, 0, old.Table().Guests())
	assert.Empty(t, old.Dishes(), "moving clears the original table's dishes")

	moved, err := manager.FindOrder(3)
	require.NoError(t, err)
	assert.Equal(t, 5, moved.Table().Guests())
}

func TestChangeOrderNoTableAvailable(t *testing.T) {
	waiter, manager := newFloor(t, WaiterOptions{})
	_, err := waiter.SeatGuests(3, 1)
	require.NoError(t, err)

	_, err = waiter.ChangeOrder(1, 10)
	assert.ErrorIs(t, err, ErrNoTableAvailable)

	order, err := manager.FindOrder(1)
	require.NoError(t, err)
	assert.Equal(t, 3, order.Table().Guests(), "failed move leaves the order untouched")
}

func TestPaidTable(t *testing.T) {
	sink := &sinkRecorder{}
	recorder := newFakeRecorder()
	waiter, manager := newFloor(t, WaiterOptions{
		History:  []HistorySink{sink},
		Recorder: recorder,
	})

	_, err := waiter.SeatGuests(2, 1)
	require.NoError(t, err)
	require.NoError(t, waiter.AddDish(1, "Spaghetti Bolognese"))
	require.NoError(t, waiter.AddDish(1, "Tomato Soup"))

	require.NoError(t, waiter.PaidTable(1))

	require.Len(t, sink.orders, 1)
	assert.False(t, sink.stamps[0].IsZero())

	order, err := manager.FindOrder(1)
	require.NoError(t, err)
	assert.Equal(t, models.TableStatusEmpty, order.Table().Status)
	assert.Equal(t, 0, order.Table().Guests())
	assert.Empty(t, order.Dishes())

	assert.Equal(t, 1, recorder.paid)
	assert.True(t, recorder.revenue.Equal(decimal.NewFromFloat(42.5)))
}

func TestCancelOrder(t *testing.T) {
	waiter, manager := newFloor(t, WaiterOptions{})
	_, err := waiter.SeatGuests(2, 1)
	require.NoError(t, err)
	require.NoError(t, waiter.AddDish(1, "Tomato Soup"))

	require.NoError(t, waiter.CancelOrder(1))

	order, err := manager.FindOrder(1)
	require.NoError(t, err)
	assert.Equal(t, models.TableStatusEmpty, order.Table().Status)
	assert.Equal(t, 0, order.Table().Guests())
	assert.Empty(t, order.Dishes())

	assert.ErrorIs(t, waiter.CancelOrder(42), models.ErrOrderNotFound)
}

func TestPaidTableUnknown(t *testing.T) {
	waiter, _ := newFloor(t, WaiterOptions{})
	assert.ErrorIs(t, waiter.PaidTable(42), models.ErrOrderNotFound)
}

func TestChangeTableStatus(t *testing.T) {
	waiter, manager := newFloor(t, WaiterOptions{})

	require.NoError(t, waiter.ChangeTableStatus(2, models.TableStatusEmpty))
	order, err := manager.FindOrder(2)
	require.NoError(t, err)
	assert.Equal(t, models.TableStatusEmpty, order.Table().Status)

	assert.ErrorIs(t, waiter.ChangeTableStatus(2, models.TableStatus("occupied")), models.ErrTableStatus)
}

func TestShowLayout(t *testing.T) {
	waiter, _ := newFloor(t, WaiterOptions{})
	_, err := waiter.AddOrder(5, models.TableStatusEmpty, 0)
	require.NoError(t, err)
	_, err = waiter.SeatGuests(4, 1)
	require.NoError(t, err)

	want := " ------------------ Tables -----------------\n" +
		"|#01 ----- |#02 --R-- |#03  0/6  |#04  0/1  |\n" +
		"|#05  0/5  |\n" +
		" -------------------------------------------"
	assert.Equal(t, want, waiter.ShowLayout())
}

func TestServiceRecorderCounts(t *testing.T) {
	recorder := newFakeRecorder()
	waiter, _ := newFloor(t, WaiterOptions{Recorder: recorder})

	assert.Equal(t, 4, recorder.opened)

	_, err := waiter.SeatGuests(2, 1)
	require.NoError(t, err)
	require.NoError(t, waiter.AddDish(1, "Garlic Bread"))
	require.NoError(t, waiter.ChangeDishOrder(1, "Garlic Bread", "Tomato Soup"))

	assert.Equal(t, 2, recorder.dishes)
	assert.Equal(t, 1, recorder.tables[string(models.TableStatusTaken)])
	assert.Equal(t, 2, recorder.tables[string(models.TableStatusEmpty)])
	assert.Equal(t, 1, recorder.tables[string(models.TableStatusReserved)])
}
