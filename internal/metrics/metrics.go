package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "field_scheduler",
			Name:      "bookings_created_total",
			Help:      "Bookings persisted since process start.",
		},
	)

	eventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "field_scheduler",
			Name:      "events_published_total",
			Help:      "Realtime events published by event name.",
		},
		[]string{"event"},
	)

	eventsDropped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "field_scheduler",
			Name:      "events_dropped_total",
			Help:      "Realtime events dropped because a queue was full.",
		},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingsCreated, eventsPublished, eventsDropped)
	})
}

func IncBookingCreated() {
	bookingsCreated.Inc()
}

func IncEventPublished(event string) {
	eventsPublished.WithLabelValues(event).Inc()
}

func IncEventDropped() {
	eventsDropped.Inc()
}
