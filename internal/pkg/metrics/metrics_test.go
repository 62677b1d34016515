//go:build unit

package metrics_test

import (
	"testing"

	"shareit/internal/pkg/metrics"

	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	// Register should be safe to call multiple times
	metrics.Register()
	metrics.Register()

	assert.NotPanics(t, func() {
		metrics.IncBookingTransition(metrics.TransitionApproved)
		metrics.IncBookingListQuery("owner", "FUTURE")
		metrics.IncHTTP("GET", "/api/bookings", 200)
	})
}
