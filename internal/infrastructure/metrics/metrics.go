package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	RequestsTotal        = "app_requests_total"
	CustomerCreatedTotal = "customer_created_total"
	CustomerUpdatedTotal = "customer_updated_total"
	CustomerDeletedTotal = "customer_deleted_total"
	DeleteRejectedTotal  = "customer_delete_rejected_total"
	FormRejectedTotal    = "form_rejected_total"
	RemoteFailuresTotal  = "remote_failures_total"
)

func NewCounter() *prometheus.CounterVec {
	return promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "customermanager",
			Name:      "general_counters",
		},
		[]string{"result"})
}

// NewUnregisteredCounter is NewCounter without the default registry, so it
// can be built more than once (tests).
func NewUnregisteredCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "customermanager",
			Name:      "general_counters",
		},
		[]string{"result"})
}
