package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "packcounter"

var (
	PackagesRegisteredTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "packages_registered_total",
		Help:      "Total number of package scans successfully registered.",
	},
		[]string{"carrier"},
	)

	ScansRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scans_rejected_total",
		Help:      "Total number of scans rejected, by reason.",
	},
		[]string{"reason"},
	)

	BatchesClosedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "batches_closed_total",
		Help:      "Total number of batches moved from pending to collected.",
	})

	BatchesReopenedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "batches_reopened_total",
		Help:      "Total number of batches moved back from collected to pending.",
	})

	PackagesRemovedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "packages_removed_total",
		Help:      "Total number of pending packages removed.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "operation_errors_total",
		Help:      "Total number of storage errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	AlertsDroppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alerts_dropped_total",
		Help:      "Total number of alert notifications dropped because the queue was full.",
	})

	OpenBatchPackages = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "open_batch_packages",
		Help:      "Number of pending packages in today's open batch.",
	},
		[]string{"carrier"},
	)
)

// Sample is one counter or gauge value read back from the registry.
type Sample struct {
	Name  string
	Value float64
}

func (s Sample) String() string {
	return fmt.Sprintf("%s %g", s.Name, s.Value)
}

// Snapshot reads every packcounter metric from the gatherer, sorted by name.
func Snapshot(g prometheus.Gatherer) ([]Sample, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}

	var samples []Sample
	for _, family := range families {
		if !strings.HasPrefix(family.GetName(), namespace+"_") {
			continue
		}
		for _, m := range family.GetMetric() {
			samples = append(samples, Sample{
				Name:  family.GetName() + labels(m.GetLabel()),
				Value: value(m),
			})
		}
	}

	sort.Slice(samples, func(i, j int) bool {
		return samples[i].Name < samples[j].Name
	})
	return samples, nil
}

func labels(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, fmt.Sprintf("%s=%q", p.GetName(), p.GetValue()))
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func value(m *dto.Metric) float64 {
	switch {
	case m.GetCounter() != nil:
		return m.GetCounter().GetValue()
	case m.GetGauge() != nil:
		return m.GetGauge().GetValue()
	default:
		return 0
	}
}
