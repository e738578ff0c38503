package views

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"maitred/internal/models"
)

// KitchenView exposes the back-of-house operations over the same order
// manager the waiter works with: advancing dish preparation and filtering
// orders by dish status.
type KitchenView struct {
	manager *models.OrderManager
	log     *logrus.Logger
}

// NewKitchenView creates a kitchen view over the given manager
func NewKitchenView(manager *models.OrderManager, logger *logrus.Logger) *KitchenView {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	return &KitchenView{manager: manager, log: logger}
}

// UpdateDishStatus sets the status of the named dish on the given table's
// order. Every instance of the name moves together.
func (k *KitchenView) UpdateDishStatus(tableID int, dishName string, status models.DishStatus) error {
	order, err := k.manager.FindOrder(tableID)
	if err != nil {
		return err
	}
	if err := order.ChangeDishStatus(dishName, status); err != nil {
		return err
	}
	k.log.WithFields(logrus.Fields{
		"table_id": tableID,
		"dish":     dishName,
		"status":   status,
	}).Info("dish status updated")
	return nil
}

// FilterOrders renders the orders containing at least one dish in the given
// status
func (k *KitchenView) FilterOrders(status models.DishStatus) string {
	matches := k.manager.FilterOrders(models.OrderFilter{DishStatus: &status})
	views := make([]string, 0, len(matches))
	for _, order := range matches {
		views = append(views, order.String())
	}
	return strings.Join(views, "\n")
}

// ShowLayout renders every order with its dishes and statuses
func (k *KitchenView) ShowLayout() string {
	return k.manager.String()
}
