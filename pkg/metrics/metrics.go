package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contadores de los eventos principales del dominio de compras.
// Se exponen en /metrics junto a los collectors por defecto de Go.
var (
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "compras_orders_created_total",
		Help: "Pedidos de compra creados (en estado draft).",
	})

	OrderTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "compras_order_transitions_total",
		Help: "Transiciones de estado de pedidos aplicadas, por estado destino.",
	}, []string{"to"})

	ReceiptsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "compras_receipts_recorded_total",
		Help: "Recepciones de mercancía registradas y conciliadas.",
	})

	OverReceiptWarnings = promauto.NewCounter(prometheus.CounterOpts{
		Name: "compras_over_receipt_warnings_total",
		Help: "Advertencias por cantidad recibida acumulada mayor a la pedida.",
	})

	PeriodsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "compras_discount_periods_created_total",
		Help: "Periodos de descuento creados.",
	})

	PeriodConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "compras_discount_period_conflicts_total",
		Help: "Intentos de creación de periodo rechazados por solape.",
	})
)
