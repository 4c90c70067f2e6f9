package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomain(t *testing.T) {
	reg := prometheus.NewRegistry()
	d, err := NewDomain(reg)
	require.NoError(t, err)

	d.Booking(OutcomeAccepted)
	d.Booking(OutcomeRejected)
	d.Booking(OutcomeRejected)
	d.Vote(OutcomeAccepted)
	d.Signup(OutcomeRejected)
	d.Registration(OutcomeAccepted)
	d.Donation(2500)
	d.Donation(500)

	assert.Equal(t, float64(1), testutil.ToFloat64(d.bookings.WithLabelValues(OutcomeAccepted)))
	assert.Equal(t, float64(2), testutil.ToFloat64(d.bookings.WithLabelValues(OutcomeRejected)))
	assert.Equal(t, float64(1), testutil.ToFloat64(d.votes.WithLabelValues(OutcomeAccepted)))
	assert.Equal(t, float64(1), testutil.ToFloat64(d.signups.WithLabelValues(OutcomeRejected)))
	assert.Equal(t, float64(1), testutil.ToFloat64(d.registrations.WithLabelValues(OutcomeAccepted)))
	assert.Equal(t, float64(2), testutil.ToFloat64(d.donations))
	assert.Equal(t, float64(3000), testutil.ToFloat64(d.donatedCents))
}

func TestDomain_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewDomain(reg)
	require.NoError(t, err)

	_, err = NewDomain(reg)
	assert.Error(t, err)
}

func TestDomain_Nil(t *testing.T) {
	var d *Domain
	assert.NotPanics(t, func() {
		d.Booking(OutcomeAccepted)
		d.Vote(OutcomeAccepted)
		d.Signup(OutcomeAccepted)
		d.Registration(OutcomeAccepted)
		d.Donation(100)
	})
}
