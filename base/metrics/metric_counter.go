package metrics

import (
	vm "github.com/VictoriaMetrics/metrics"
)

// Counter is a counter metric.
type Counter struct {
	*metricBase
	*vm.Counter
}

// NewCounter registers a new counter metric.
func NewCounter(id string, labels map[string]string, opts *Options) (*Counter, error) {
	// Ensure that there are options.
	if opts == nil {
		opts = &Options{}
	}

	// Make base.
	base, err := newMetricBase(id, labels, *opts)
	if err != nil {
		return nil, err
	}

	// Create metric struct.
	m := &Counter{
		metricBase: base,
	}

	// Create metric in set
	m.Counter = m.set.NewCounter(m.LabeledID())

	// Register metric.
	err = register(m)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// GetOrCreateCounter returns the registered counter with the given ID and
// labels, or registers a new one.
func GetOrCreateCounter(id string, labels map[string]string, opts *Options) (*Counter, error) {
	c, err := NewCounter(id, labels, opts)
	if err == nil {
		return c, nil
	}

	// Look up the already registered counter.
	registryLock.RLock()
	defer registryLock.RUnlock()
	for _, m := range registry {
		if existing, ok := m.(*Counter); ok && existing.ID() == id && sameLabels(existing.Labels, labels) {
			return existing, nil
		}
	}
	return nil, err
}

// CurrentValue returns the current counter value.
func (c *Counter) CurrentValue() uint64 {
	return c.Get()
}

func sameLabels(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}
