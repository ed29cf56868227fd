package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Service holds the prometheus registry and the collectors owned by this
// process. A fresh registry per instance keeps parallel test servers from
// tripping over duplicate collector registration.
type Service struct {
	Registry *prometheus.Registry

	SignRequests    *prometheus.CounterVec
	AccountRequests *prometheus.CounterVec
}

func New() *Service {
	registry := prometheus.NewRegistry()

	s := &Service{
		Registry: registry,
		SignRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cosmos_sign_requests_total",
			Help: "Total number of authorization header signing requests.",
		}, []string{"result"}),
		AccountRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cosmos_account_requests_total",
			Help: "Total number of account registry operations.",
		}, []string{"operation"}),
	}

	registry.MustRegister(
		s.SignRequests,
		s.AccountRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return s
}

// IncSignRequest counts one signing request by result ("success"/"failure").
func (s *Service) IncSignRequest(result string) {
	if s == nil {
		return
	}
	s.SignRequests.WithLabelValues(result).Inc()
}

// IncAccountRequest counts one account registry operation.
func (s *Service) IncAccountRequest(operation string) {
	if s == nil {
		return
	}
	s.AccountRequests.WithLabelValues(operation).Inc()
}
