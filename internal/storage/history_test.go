package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maitred/internal/models"
)

func paidOrder(t *testing.T, dishes ...string) *models.Order {
	t.Helper()
	menu := seededMenu(t)
	manager := models.NewOrderManager()
	order, err := manager.OpenTable(4, models.TableStatusEmpty, 2)
	require.NoError(t, err)
	for _, name := range dishes {
		require.NoError(t, order.OrderDish(menu, name))
	}
	return order
}

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()
	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestHistoryAppendOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	log := NewHistoryLog(path)
	completedAt := time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC)

	order := paidOrder(t, "Spaghetti Bolognese", "Tomato Soup")
	require.NoError(t, log.AppendOrder(order, completedAt))

	rows := readRows(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, historyHeader, rows[0])
	assert.Equal(t, []string{"1", "1", "1", "ToBePrepared", "30.50", "2026-03-14 18:30:00"}, rows[1])
	assert.Equal(t, []string{"1", "1", "2", "ToBePrepared", "12.00", "2026-03-14 18:30:00"}, rows[2])
}

func TestHistoryHeaderWrittenOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	log := NewHistoryLog(path)
	completedAt := time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC)

	require.NoError(t, log.AppendOrder(paidOrder(t, "Garlic Bread"), completedAt))
	require.NoError(t, log.AppendOrder(paidOrder(t, "Tomato Soup"), completedAt))

	rows := readRows(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, historyHeader, rows[0])
	assert.NotEqual(t, historyHeader, rows[1])
	assert.NotEqual(t, historyHeader, rows[2])
}

func TestHistoryEmptyOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	log := NewHistoryLog(path)

	require.NoError(t, log.AppendOrder(paidOrder(t), time.Now()))

	rows := readRows(t, path)
	require.Len(t, rows, 1, "an order with no dishes writes only the header")
}
