package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gym_website_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gym_website_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	ClassBookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gym_website_class_bookings_total",
			Help: "Total number of class bookings by resulting status",
		},
		[]string{"status"},
	)

	BookingCancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gym_website_booking_cancellations_total",
			Help: "Total number of class booking cancellations",
		},
	)

	TrainingSessionsBookedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gym_website_training_sessions_booked_total",
			Help: "Total number of personal training sessions booked",
		},
	)

	TrainingSessionConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gym_website_training_session_conflicts_total",
			Help: "Total number of personal training bookings rejected due to overlap",
		},
	)

	MembershipsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gym_website_memberships_created_total",
			Help: "Total number of memberships created",
		},
		[]string{"tier"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gym_website_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gym_website_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordClassBooking(status string) {
	ClassBookingsTotal.WithLabelValues(status).Inc()
}

func RecordBookingCancellation() {
	BookingCancellationsTotal.Inc()
}

func RecordTrainingSession() {
	TrainingSessionsBookedTotal.Inc()
}

func RecordTrainingConflict() {
	TrainingSessionConflictsTotal.Inc()
}

func RecordMembership(tier string) {
	MembershipsCreatedTotal.WithLabelValues(tier).Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
