package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMenu(t *testing.T) *Menu {
	t.Helper()
	menu := NewMenu()
	seeds := []DishSpec{
		{Name: "Spaghetti Bolognese", Price: decimal.NewFromFloat(30.5), SpiceLevel: 2},
		{Name: "Tomato Soup", Price: decimal.NewFromFloat(12), Vegan: true},
		{Name: "Garlic Bread", Price: decimal.NewFromFloat(15.2), Vegetarian: true},
		{Name: "Lemonade", Price: decimal.NewFromFloat(6.5), Vegan: true},
	}
	for _, seed := range seeds {
		_, err := menu.AddDish(seed)
		require.NoError(t, err)
	}
	return menu
}

func testOrder(t *testing.T, id int, status TableStatus, guests int) *Order {
	t.Helper()
	table, err := NewTable(id, 4, status, guests)
	require.NoError(t, err)
	return NewOrder(id, table)
}

func TestOrderDish(t *testing.T) {
	menu := testMenu(t)
	order := testOrder(t, 1, TableStatusTaken, 2)

	require.NoError(t, order.OrderDish(menu, "Spaghetti Bolognese"))
	require.NoError(t, order.OrderDish(menu, "tomato soup"))

	dishes := order.Dishes()
	require.Len(t, dishes, 2)
	assert.Equal(t, "Spaghetti Bolognese", dishes[0].Name)
	assert.Equal(t, DishStatusToBePrepared, dishes[0].Status)
	assert.Equal(t, DishStatusToBePrepared, dishes[1].Status)
}

func TestOrderDishUnknownLeavesOrderUnchanged(t *testing.T) {
	menu := testMenu(t)
	order := testOrder(t, 1, TableStatusTaken, 2)
	require.NoError(t, order.OrderDish(menu, "Lemonade"))

	err := order.OrderDish(menu, "Ratatouille")
	assert.ErrorIs(t, err, ErrDishNotFound)
	assert.Len(t, order.Dishes(), 1)
}

func TestOrderDishConvertsReservation(t *testing.T) {
	menu := testMenu(t)
	order := testOrder(t, 1, TableStatusReserved, 2)

	require.NoError(t, order.OrderDish(menu, "Garlic Bread"))
	assert.Equal(t, TableStatusTaken, order.Table().Status,
		"first dish converts a reservation into active service")
}

func TestChangeDishStatusMovesAllInstances(t *testing.T) {
	menu := testMenu(t)
	order := testOrder(t, 1, TableStatusTaken, 2)
	require.NoError(t, order.OrderDish(menu, "Lemonade"))
	require.NoError(t, order.OrderDish(menu, "Garlic Bread"))
	require.NoError(t, order.OrderDish(menu, "Lemonade"))

	require.NoError(t, order.ChangeDishStatus("Lemonade", DishStatusCompleted))

	dishes := order.Dishes()
	assert.Equal(t, DishStatusCompleted, dishes[0].Status)
	assert.Equal(t, DishStatusToBePrepared, dishes[1].Status)
	assert.Equal(t, DishStatusCompleted, dishes[2].Status)
}

func TestChangeDishStatusUnknownDish(t *testing.T) {
	menu := testMenu(t)
	order := testOrder(t, 1, TableStatusTaken, 2)
	require.NoError(t, order.OrderDish(menu, "Lemonade"))
	require.NoError(t, order.OrderDish(menu, "Garlic Bread"))

	err := order.ChangeDishStatus("Tomato Soup", DishStatusPreparing)
	assert.ErrorIs(t, err, ErrDishNotOrdered)
}

func TestChangeDishOrderRemovesAllOldInstances(t *testing.T) {
	menu := testMenu(t)
	order := testOrder(t, 1, TableStatusTaken, 2)
	require.NoError(t, order.OrderDish(menu, "Lemonade"))
	require.NoError(t, order.OrderDish(menu, "Garlic Bread"))
	require.NoError(t, order.OrderDish(menu, "Lemonade"))

	require.NoError(t, order.ChangeDishOrder(menu, "Lemonade", "Tomato Soup"))

	dishes := order.Dishes()
	require.Len(t, dishes, 2)
	assert.Equal(t, "Garlic Bread", dishes[0].Name)
	assert.Equal(t, "Tomato Soup", dishes[1].Name)
	assert.Equal(t, DishStatusToBePrepared, dishes[1].Status)
}

func TestChangeDishOrderUnknownOldDish(t *testing.T) {
	menu := testMenu(t)
	order := testOrder(t, 1, TableStatusTaken, 2)
	require.NoError(t, order.OrderDish(menu, "Lemonade"))

	err := order.ChangeDishOrder(menu, "Ratatouille", "Tomato Soup")
	assert.ErrorIs(t, err, ErrDishNotFound)
	assert.Len(t, order.Dishes(), 1)
}

func TestDishStatusIsolatedPerOrder(t *testing.T) {
	menu := testMenu(t)
	first := testOrder(t, 1, TableStatusTaken, 2)
	second := testOrder(t, 2, TableStatusTaken, 2)
	require.NoError(t, first.OrderDish(menu, "Tomato Soup"))
	require.NoError(t, second.OrderDish(menu, "Tomato Soup"))

	require.NoError(t, first.ChangeDishStatus("Tomato Soup", DishStatusCompleted))

	assert.Equal(t, DishStatusToBePrepared, second.Dishes()[0].Status,
		"orders must not share preparation state")
}

func TestOrderTotal(t *testing.T) {
	menu := testMenu(t)
	order := testOrder(t, 1, TableStatusTaken, 2)
	require.NoError(t, order.OrderDish(menu, "Spaghetti Bolognese"))
	require.NoError(t, order.OrderDish(menu, "Lemonade"))

	assert.True(t, order.Total().Equal(decimal.NewFromFloat(37)))
}

func TestOrderString(t *testing.T) {
	menu := testMenu(t)
	order := testOrder(t, 2, TableStatusTaken, 2)
	require.NoError(t, order.OrderDish(menu, "Garlic Bread"))
	require.NoError(t, order.OrderDish(menu, "Lemonade"))
	require.NoError(t, order.ChangeDishStatus("Lemonade", DishStatusCompleted))

	want := "Order #2\n- Garlic Bread: ToBePrepared\n- Lemonade: Completed"
	assert.Equal(t, want, order.String())
}

func TestDishStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to DishStatus
		want     bool
	}{
		{DishStatusToBePrepared, DishStatusPreparing, true},
		{DishStatusToBePrepared, DishStatusCannotBePrepared, true},
		{DishStatusToBePrepared, DishStatusCompleted, false},
		{DishStatusPreparing, DishStatusCompleted, true},
		{DishStatusPreparing, DishStatusCannotBePrepared, true},
		{DishStatusCompleted, DishStatusPreparing, false},
		{DishStatusCannotBePrepared, DishStatusPreparing, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
