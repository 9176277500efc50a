// Package metrics defines the custom Prometheus metrics for the venue
// booking API. It is the single source of truth for metric names, labels,
// and help strings; HTTP-level request metrics come from the echoprometheus
// middleware and are not declared here.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "venuebooking"

// AvailabilityChecksTotal counts availability decisions.
// Labels:
//   - mode: "date" (date-exclusive) or "window" (time-overlap)
//   - result: "available" or "unavailable"
var AvailabilityChecksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "availability_checks_total",
		Help:      "Total number of availability checks, by mode and result.",
	},
	[]string{"mode", "result"},
)

// BookingsCreatedTotal counts successfully created bookings.
var BookingsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created.",
	},
)

// BookingConflictsTotal counts booking attempts rejected by the
// availability checker.
var BookingConflictsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_conflicts_total",
		Help:      "Total number of booking attempts rejected because the slot was taken.",
	},
)

// VenuePhotosStoredTotal counts venue photos written to the upload store.
var VenuePhotosStoredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "venue_photos_stored_total",
		Help:      "Total number of venue photos stored on disk.",
	},
)

// ObserveAvailabilityCheck records one availability decision.
func ObserveAvailabilityCheck(mode string, available bool) {
	result := "available"
	if !available {
		result = "unavailable"
	}
	AvailabilityChecksTotal.WithLabelValues(mode, result).Inc()
}
