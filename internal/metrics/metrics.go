package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

// Collector tracks service counters on a private registry. Nothing is
// exposed over the network; values are read back through the registry, in
// practice from tests and the end-of-shift report.
type Collector struct {
	registry *prometheus.Registry

	ordersOpened  prometheus.Counter
	ordersPaid    prometheus.Counter
	dishesOrdered prometheus.Counter
	revenue       prometheus.Counter
	tables        *prometheus.GaugeVec
}

// NewCollector creates a collector with all metrics registered
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		ordersOpened: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orders_opened_total",
			Help: "Orders opened on the floor",
		}),
		ordersPaid: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orders_paid_total",
			Help: "Orders paid and cleared",
		}),
		dishesOrdered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dishes_ordered_total",
			Help: "Dishes sent to the kitchen",
		}),
		revenue: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "revenue_total",
			Help: "Revenue from paid orders",
		}),
		tables: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "tables_by_status",
			Help: "Current table count per occupancy status",
		}, []string{"status"}),
	}

	c.registry.MustRegister(c.ordersOpened, c.ordersPaid, c.dishesOrdered, c.revenue, c.tables)
	return c
}

// OrderOpened counts a newly opened order
func (c *Collector) OrderOpened() {
	c.ordersOpened.Inc()
}

// DishOrdered counts a dish sent to the kitchen
func (c *Collector) DishOrdered() {
	c.dishesOrdered.Inc()
}

// OrderPaid counts a payment and adds its total to revenue
func (c *Collector) OrderPaid(total decimal.Decimal) {
	c.ordersPaid.Inc()
	c.revenue.Add(total.InexactFloat64())
}

// SetTablesWithStatus records how many tables are currently in a status
func (c *Collector) SetTablesWithStatus(status string, count int) {
	c.tables.WithLabelValues(status).Set(float64(count))
}

// Registry returns the private registry for gathering
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
