// Package metrics holds the domain counters exported next to the HTTP metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels shared by the domain counters.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

// Domain counts business outcomes. A nil *Domain records nothing, so services can
// run without a registry in tests.
type Domain struct {
	bookings      *prometheus.CounterVec
	votes         *prometheus.CounterVec
	signups       *prometheus.CounterVec
	registrations *prometheus.CounterVec
	donations     prometheus.Counter
	donatedCents  prometheus.Counter
}

// NewDomain registers the domain counters on reg.
func NewDomain(reg prometheus.Registerer) (*Domain, error) {
	d := &Domain{
		bookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hub_bookings_total",
			Help: "Facility booking attempts by outcome.",
		}, []string{"outcome"}),
		votes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hub_votes_total",
			Help: "Poll vote attempts by outcome.",
		}, []string{"outcome"}),
		signups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hub_volunteer_signups_total",
			Help: "Volunteer signup attempts by outcome.",
		}, []string{"outcome"}),
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hub_event_registrations_total",
			Help: "Event registration attempts by outcome.",
		}, []string{"outcome"}),
		donations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hub_donations_total",
			Help: "Donations recorded.",
		}),
		donatedCents: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hub_donated_cents_total",
			Help: "Sum of recorded donations in cents.",
		}),
	}

	for _, c := range []prometheus.Collector{d.bookings, d.votes, d.signups, d.registrations, d.donations, d.donatedCents} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *Domain) Booking(outcome string) {
	if d != nil {
		d.bookings.WithLabelValues(outcome).Inc()
	}
}

func (d *Domain) Vote(outcome string) {
	if d != nil {
		d.votes.WithLabelValues(outcome).Inc()
	}
}

func (d *Domain) Signup(outcome string) {
	if d != nil {
		d.signups.WithLabelValues(outcome).Inc()
	}
}

func (d *Domain) Registration(outcome string) {
	if d != nil {
		d.registrations.WithLabelValues(outcome).Inc()
	}
}

// Donation counts one donation of cents.
func (d *Domain) Donation(cents int64) {
	if d != nil {
		d.donations.Inc()
		d.donatedCents.Add(float64(cents))
	}
}
