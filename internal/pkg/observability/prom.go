package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "mergington_activities"
)

var (
	RosterChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "roster", "changes_total"),
		Help: "Number of successful roster changes, by activity and operation",
	}, []string{"activity", "operation"})
	RosterRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "roster", "rejections_total"),
		Help: "Number of rejected roster changes, by operation and error code",
	}, []string{"operation", "code"})
	RosterOverCapacity = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "roster", "over_capacity_total"),
		Help: "Number of signups accepted while the roster was above max_participants",
	}, []string{"activity"})
	RosterEventPublishFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "roster", "event_publish_failures_total"),
		Help: "Number of roster events that could not be published",
	}, []string{"subject"})
)
