package metrics

import (
	"net/http"

	"github.com/Nagendar23/CampusConnect/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "checkin_ledger"

// Ledger exports check-in outcomes and per-event stats to Prometheus.
type Ledger struct {
	gatherer prometheus.Gatherer

	checkIns   *prometheus.CounterVec
	registered *prometheus.GaugeVec
	checkedIn  *prometheus.GaugeVec
	byStatus   *prometheus.GaugeVec
	rate       *prometheus.GaugeVec
}

func New(reg *prometheus.Registry) *Ledger {
	f := promauto.With(reg)
	return &Ledger{
		gatherer: reg,
		checkIns: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkins_total",
			Help:      "Check-in attempts by outcome.",
		}, []string{"event_id", "outcome"}),
		registered: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "attendees_registered",
			Help:      "Registered attendees per event.",
		}, []string{"event_id"}),
		checkedIn: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "attendees_checked_in",
			Help:      "Checked-in attendees per event.",
		}, []string{"event_id"}),
		byStatus: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "attendees_by_status",
			Help:      "Attendees per event by registration status.",
		}, []string{"event_id", "status"}),
		rate: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "checkin_rate_percent",
			Help:      "Rounded check-in rate per event.",
		}, []string{"event_id"}),
	}
}

func (l *Ledger) ObserveCheckIn(eventID string, outcome domain.CheckInOutcome) {
	l.checkIns.WithLabelValues(eventID, string(outcome)).Inc()
}

func (l *Ledger) SetStats(eventID string, stats domain.EventStats) {
	l.registered.WithLabelValues(eventID).Set(float64(stats.TotalRegistered))
	l.checkedIn.WithLabelValues(eventID).Set(float64(stats.CheckedIn))
	l.byStatus.WithLabelValues(eventID, string(domain.RegistrationConfirmed)).Set(float64(stats.Confirmed))
	l.byStatus.WithLabelValues(eventID, string(domain.RegistrationPending)).Set(float64(stats.Pending))
	l.byStatus.WithLabelValues(eventID, string(domain.RegistrationWaitlist)).Set(float64(stats.Waitlist))
	l.rate.WithLabelValues(eventID).Set(float64(stats.CheckInRate))
}

// Handler serves the registry in the Prometheus exposition format.
func (l *Ledger) Handler() http.Handler {
	return promhttp.HandlerFor(l.gatherer, promhttp.HandlerOpts{})
}
