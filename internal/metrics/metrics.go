package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the domain counters exported by the service.
type Metrics struct {
	gatherer prometheus.Gatherer

	MembershipsAssigned  *prometheus.CounterVec
	MembershipsCancelled prometheus.Counter
	AssignConflicts      prometheus.Counter
	CheckIns             *prometheus.CounterVec
	MembersCreated       prometheus.Counter
}

// New registers the counters on a fresh registry so several instances can
// coexist (tests, embedded servers).
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		gatherer: reg,
		MembershipsAssigned: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gym_memberships_assigned_total",
			Help: "Total number of memberships opened, by plan name",
		}, []string{"plan"}),
		MembershipsCancelled: factory.NewCounter(prometheus.CounterOpts{
			Name: "gym_memberships_cancelled_total",
			Help: "Total number of memberships cancelled",
		}),
		AssignConflicts: factory.NewCounter(prometheus.CounterOpts{
			Name: "gym_membership_assign_conflicts_total",
			Help: "Plan assignments rejected because the member already holds an active membership",
		}),
		CheckIns: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gym_check_ins_total",
			Help: "Check-in attempts, by result",
		}, []string{"result"}),
		MembersCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "gym_members_created_total",
			Help: "Total number of members created",
		}),
	}
}

func (m *Metrics) IncMembershipsAssigned(plan string) {
	m.MembershipsAssigned.WithLabelValues(plan).Inc()
}

func (m *Metrics) IncMembershipsCancelled() {
	m.MembershipsCancelled.Inc()
}

func (m *Metrics) IncAssignConflict() {
	m.AssignConflicts.Inc()
}

func (m *Metrics) IncCheckIn(accepted bool) {
	result := "accepted"
	if !accepted {
		result = "rejected"
	}
	m.CheckIns.WithLabelValues(result).Inc()
}

func (m *Metrics) IncMembersCreated() {
	m.MembersCreated.Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
