package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"maitred/internal/config"
	"maitred/internal/logging"
	"maitred/internal/metrics"
	"maitred/internal/models"
	"maitred/internal/storage"
	"maitred/internal/views"
)

var configFile = flag.String("config", "configs/config.yaml", "Path to configuration file")

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.Setup(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}

	menu := models.NewMenu()
	menuStore := storage.NewMenuStore(cfg.Data.MenuFile)
	if err := loadMenu(menuStore, menu, cfg, logger); err != nil {
		log.Fatalf("Failed to load menu: %v", err)
	}

	sinks := []views.HistorySink{storage.NewHistoryLog(cfg.Data.HistoryFile)}
	var archive *storage.Archive
	if cfg.Data.ArchiveFile != "" {
		archive, err = storage.OpenArchive(cfg.Data.ArchiveFile)
		if err != nil {
			log.Fatalf("Failed to open history archive: %v", err)
		}
		defer archive.Close()
		sinks = append(sinks, archive)
	}

	manager := models.NewOrderManager()
	collector := metrics.NewCollector()
	waiter := views.NewWaiterView(manager, menu, views.WaiterOptions{
		History:  sinks,
		Recorder: collector,
		Logger:   logger,
	})
	kitchen := views.NewKitchenView(manager, logger)

	if err := buildFloorPlan(waiter, cfg); err != nil {
		log.Fatalf("Failed to build floor plan: %v", err)
	}

	if err := runShift(waiter, kitchen, logger); err != nil {
		log.Fatalf("Shift failed: %v", err)
	}

	if err := menuStore.Save(menu); err != nil {
		log.Fatalf("Failed to save menu: %v", err)
	}
}

// loadMenu reads the persisted menu; a missing file is filled from the
// configured seed dishes instead.
func loadMenu(store *storage.MenuStore, menu *models.Menu, cfg *config.Config, logger *logrus.Logger) error {
	err := store.Load(menu)
	if err == nil {
		return nil
	}
	if !errors.Is(err, storage.ErrLoad) {
		return err
	}
	logger.WithField("path", store.Path()).Warn("menu file unavailable, seeding defaults")
	for _, seed := range cfg.MenuSeed {
		_, err := menu.AddDish(models.DishSpec{
			Name:       seed.Name,
			Price:      decimal.NewFromFloat(seed.Price),
			GlutenFree: seed.GlutenFree,
			Vegan:      seed.Vegan,
			Vegetarian: seed.Vegetarian,
			SpiceLevel: seed.SpiceLevel,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// buildFloorPlan opens one order per configured table
func buildFloorPlan(waiter *views.WaiterView, cfg *config.Config) error {
	for _, seed := range cfg.FloorPlan {
		status := models.TableStatus(seed.Status)
		if seed.Status == "" {
			status = models.TableStatusEmpty
		}
		if _, err := waiter.AddOrder(seed.Seats, status, seed.Guests); err != nil {
			return err
		}
	}
	return nil
}

// runShift walks one service cycle through both views
func runShift(waiter *views.WaiterView, kitchen *views.KitchenView, logger *logrus.Logger) error {
	fmt.Println(waiter.FreeTables())

	if _, err := waiter.SeatGuests(3, 1); err != nil {
		return err
	}
	if err := waiter.AddDish(1, "Spaghetti Bolognese"); err != nil {
		return err
	}
	if err := waiter.AddDish(1, "Tomato Soup"); err != nil {
		return err
	}

	if err := kitchen.UpdateDishStatus(1, "Spaghetti Bolognese", models.DishStatusPreparing); err != nil {
		return err
	}
	if err := kitchen.UpdateDishStatus(1, "Tomato Soup", models.DishStatusCannotBePrepared); err != nil {
		return err
	}
	if err := waiter.ChangeDishOrder(1, "Tomato Soup", "Garlic Bread"); err != nil {
		return err
	}

	result, err := waiter.ChangeOrder(1, 5)
	if err != nil && !errors.Is(err, views.ErrNoTableAvailable) {
		return err
	}
	if result.Moved {
		logger.WithFields(logrus.Fields{
			"from_table": result.TableID,
			"to_table":   result.NewTableID,
		}).Info("party moved")
	}

	servedTable := 1
	if result.Moved {
		servedTable = result.NewTableID
		if err := waiter.AddDish(servedTable, "Spaghetti Bolognese"); err != nil {
			return err
		}
	}
	if err := kitchen.UpdateDishStatus(servedTable, "Spaghetti Bolognese", models.DishStatusCompleted); err != nil {
		return err
	}
	fmt.Println(kitchen.FilterOrders(models.DishStatusCompleted))

	// A walk-in that changes their mind.
	if _, err := waiter.SeatGuests(1, 4); err != nil {
		return err
	}
	if err := waiter.CancelOrder(4); err != nil {
		return err
	}

	if err := waiter.PaidTable(servedTable); err != nil {
		return err
	}

	fmt.Println(waiter.ShowLayout())
	fmt.Println(kitchen.ShowLayout())
	return nil
}
