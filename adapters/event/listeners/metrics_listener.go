package listeners

import (
	"context"

	"github.com/SeaCloudHub/storefront/domain"
	"github.com/prometheus/client_golang/prometheus"
)

type MetricsListener struct {
	events *prometheus.CounterVec
}

// NewMetricsListener registers its counter with reg; pass
// prometheus.DefaultRegisterer to expose it on the default /metrics handler.
func NewMetricsListener(reg prometheus.Registerer) (*MetricsListener, error) {
	events := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Name:      "domain_events_total",
			Help:      "Total number of domain events notified",
		},
		[]string{"event"},
	)

	if err := reg.Register(events); err != nil {
		return nil, err
	}

	return &MetricsListener{events: events}, nil
}

func (l *MetricsListener) Handle(_ context.Context, event domain.Event) error {
	l.events.WithLabelValues(event.EventName()).Inc()

	return nil
}
