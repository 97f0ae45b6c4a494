package metrics

import (
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	vm "github.com/VictoriaMetrics/metrics"
)

// PrometheusFormatRequirement is required format defined by prometheus for
// metric and label names.
const (
	prometheusBaseFormt         = "[a-zA-Z_][a-zA-Z0-9_]*"
	PrometheusFormatRequirement = "^" + prometheusBaseFormt + "$"
)

var prometheusFormat = regexp.MustCompile(PrometheusFormatRequirement)

// Metric represents one or more metrics.
type Metric interface {
	ID() string
	LabeledID() string
	Opts() *Options
	WritePrometheus(w io.Writer)
}

type metricBase struct {
	Identifier        string
	Labels            map[string]string
	LabeledIdentifier string
	Options           *Options
	set               *vm.Set
}

// Options can be used to set advanced metric settings.
type Options struct {
	// Name defines an optional human readable name for the metric.
	Name string

	// InternalID specifies an alternative internal ID that will be used when
	// exporting the metric values in a structured format.
	InternalID string
}

func newMetricBase(id string, labels map[string]string, opts Options) (*metricBase, error) {
	// Check formats.
	if !prometheusFormat.MatchString(strings.ReplaceAll(id, "/", "_")) {
		return nil, fmt.Errorf("metric name %q must match %s", id, PrometheusFormatRequirement)
	}
	for labelName := range labels {
		if !prometheusFormat.MatchString(labelName) {
			return nil, fmt.Errorf("metric label name %q must match %s", labelName, PrometheusFormatRequirement)
		}
	}

	// Ensure labels.
	if labels == nil {
		labels = make(map[string]string)
	}

	// Create metric base.
	base := &metricBase{
		Identifier: id,
		Labels:     labels,
		Options:    &opts,
		set:        vm.NewSet(),
	}
	base.LabeledIdentifier = base.buildLabeledID()
	return base, nil
}

// ID returns the given ID of the metric.
func (m *metricBase) ID() string {
	return m.Identifier
}

// LabeledID returns the Prometheus-compatible labeled ID of the metric.
func (m *metricBase) LabeledID() string {
	return m.LabeledIdentifier
}

// Opts returns the metric options. They  may not be modified.
func (m *metricBase) Opts() *Options {
	return m.Options
}

// WritePrometheus writes the metric in the prometheus format to the given writer.
func (m *metricBase) WritePrometheus(w io.Writer) {
	m.set.WritePrometheus(w)
}

func (m *metricBase) buildLabeledID() string {
	// Build ID from Identifier.
	metricID := strings.TrimSpace(strings.ReplaceAll(m.Identifier, "/", "_"))

	// Add namespace to ID.
	if ns := Namespace(); ns != "" {
		metricID = ns + "_" + metricID
	}

	// Return now if no labels are defined.
	if len(m.Labels) == 0 {
		return metricID
	}

	// Render labels into a slice and sort them in order to make the labeled ID
	// reproducible.
	labels := make([]string, 0, len(m.Labels))
	for labelName, labelValue := range m.Labels {
		labels = append(labels, fmt.Sprintf("%s=%q", labelName, labelValue))
	}
	sort.Strings(labels)

	// Return fully labaled ID.
	return fmt.Sprintf("%s{%s}", metricID, strings.Join(labels, ","))
}
