package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "shareit"

// Booking transition labels.
const (
	TransitionCreated  = "created"
	TransitionApproved = "approved"
	TransitionRejected = "rejected"
	TransitionNoop     = "noop"
)

var (
	once sync.Once

	bookingTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_transitions_total",
			Help:      "Booking lifecycle transitions by kind.",
		},
		[]string{"transition"},
	)

	bookingListQueries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_list_queries_total",
			Help:      "Booking list queries by viewpoint and state filter.",
		},
		[]string{"viewpoint", "state"},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		},
		[]string{"method", "route", "status"},
	)
)

// Register registers the collectors on the default registry. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingTransitions, bookingListQueries, httpRequests)
	})
}

func IncBookingTransition(transition string) {
	bookingTransitions.WithLabelValues(transition).Inc()
}

func IncBookingListQuery(viewpoint, state string) {
	bookingListQueries.WithLabelValues(viewpoint, state).Inc()
}

func IncHTTP(method, route string, status int) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}
