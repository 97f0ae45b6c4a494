package metrics

// UIntMetric is an interface for special functions of uint metrics.
type UIntMetric interface {
	CurrentValue() uint64
}

// FloatMetric is an interface for special functions of float metrics.
type FloatMetric interface {
	CurrentValue() float64
}

// ExportValues exports the values of all supported metrics, keyed by their
// internal ID if set, or by their labeled ID.
func ExportValues() map[string]any {
	registryLock.RLock()
	defer registryLock.RUnlock()

	export := make(map[string]any, len(registry))
	for _, metric := range registry {
		// Get Value.
		v := getCurrentValue(metric)
		if v == nil {
			continue
		}

		// Get ID.
		var id string
		switch {
		case metric.Opts().InternalID != "":
			id = metric.Opts().InternalID
		default:
			id = metric.LabeledID()
		}

		// Add to export
		export[id] = v
	}

	return export
}

func getCurrentValue(metric Metric) any {
	if m, ok := metric.(UIntMetric); ok {
		return m.CurrentValue()
	}
	if m, ok := metric.(FloatMetric); ok {
		return m.CurrentValue()
	}
	return nil
}
