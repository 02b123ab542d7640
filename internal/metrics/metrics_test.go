package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("POST", "/bookings", "201", 0.05)
	RecordHTTPRequest("POST", "/bookings", "201", 0.1)
	RecordHTTPRequest("POST", "/bookings", "409", 0.02)

	ok := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/bookings", "201"))
	conflict := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/bookings", "409"))

	assert.Equal(t, float64(2), ok)
	assert.Equal(t, float64(1), conflict)
}

func TestRecordClassBooking(t *testing.T) {
	ClassBookingsTotal.Reset()

	RecordClassBooking("confirmed")
	RecordClassBooking("confirmed")
	RecordClassBooking("waitlist")

	confirmed := testutil.ToFloat64(ClassBookingsTotal.WithLabelValues("confirmed"))
	waitlist := testutil.ToFloat64(ClassBookingsTotal.WithLabelValues("waitlist"))

	assert.Equal(t, float64(2), confirmed)
	assert.Equal(t, float64(1), waitlist)
}

func TestRecordMembership(t *testing.T) {
	MembershipsCreatedTotal.Reset()

	RecordMembership("Premium")

	assert.Equal(t, float64(1), testutil.ToFloat64(MembershipsCreatedTotal.WithLabelValues("Premium")))
}

func TestRecordTrainingCounters(t *testing.T) {
	before := testutil.ToFloat64(TrainingSessionsBookedTotal)
	RecordTrainingSession()
	assert.Equal(t, before+1, testutil.ToFloat64(TrainingSessionsBookedTotal))

	beforeConflicts := testutil.ToFloat64(TrainingSessionConflictsTotal)
	RecordTrainingConflict()
	assert.Equal(t, beforeConflicts+1, testutil.ToFloat64(TrainingSessionConflictsTotal))
}

func TestRecordEmail(t *testing.T) {
	EmailsSentTotal.Reset()

	RecordEmail("booking_confirmation", "sent")
	RecordEmail("booking_confirmation", "failed")

	sent := testutil.ToFloat64(EmailsSentTotal.WithLabelValues("booking_confirmation", "sent"))
	failed := testutil.ToFloat64(EmailsSentTotal.WithLabelValues("booking_confirmation", "failed"))

	assert.Equal(t, float64(1), sent)
	assert.Equal(t, float64(1), failed)
}
