package metrics

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
)

var (
	registry     []Metric
	registryLock sync.RWMutex

	metricNamespace = "securerandom"
	namespaceLock   sync.Mutex

	// ErrAlreadyRegistered is returned when a metric with the same ID is
	// registered again.
	ErrAlreadyRegistered = errors.New("metric already registered")
)

// Namespace returns the namespace prepended to all metric IDs.
func Namespace() string {
	namespaceLock.Lock()
	defer namespaceLock.Unlock()

	return metricNamespace
}

// SetNamespace sets the namespace prepended to all metric IDs. Only metrics
// registered afterwards are affected.
func SetNamespace(namespace string) error {
	if namespace != "" && !prometheusFormat.MatchString(namespace) {
		return fmt.Errorf("metric namespace %q must match %s", namespace, PrometheusFormatRequirement)
	}

	namespaceLock.Lock()
	defer namespaceLock.Unlock()

	metricNamespace = namespace
	return nil
}

func register(m Metric) error {
	registryLock.Lock()
	defer registryLock.Unlock()

	// Check if metric ID is already registered.
	for _, registeredMetric := range registry {
		if m.LabeledID() == registeredMetric.LabeledID() {
			return ErrAlreadyRegistered
		}
		if m.Opts().InternalID != "" &&
			m.Opts().InternalID == registeredMetric.Opts().InternalID {
			return fmt.Errorf("%w with this internal ID", ErrAlreadyRegistered)
		}
	}

	// Add new metric to registry and sort it.
	registry = append(registry, m)
	sort.Sort(byLabeledID(registry))

	return nil
}

// WritePrometheus writes all registered metrics in the prometheus text format
// to the given writer.
func WritePrometheus(w io.Writer) {
	registryLock.RLock()
	defer registryLock.RUnlock()

	for _, metric := range registry {
		metric.WritePrometheus(w)
	}
}

type byLabeledID []Metric

func (r byLabeledID) Len() int           { return len(r) }
func (r byLabeledID) Less(i, j int) bool { return r[i].LabeledID() < r[j].LabeledID() }
func (r byLabeledID) Swap(i, j int)      { r[i], r[j] = r[j], r[i] }
