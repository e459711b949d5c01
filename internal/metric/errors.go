package metric

import "fmt"

// MissingBackendError reports that a metric needs an NLP capability
// that is not available. It is raised at the point of use and never
// degraded into a partial result.
type MissingBackendError struct {
	Metric     string
	Capability string
}

func (e *MissingBackendError) Error() string {
	return fmt.Sprintf(
		"metric %q requires a %s backend, which is not available",
		e.Metric, e.Capability,
	)
}

// UnsupportedConfigError reports an option value the metric does not
// implement. It is raised from Columns, before any document runs.
type UnsupportedConfigError struct {
	Metric string
	Option string
	Value  any
}

func (e *UnsupportedConfigError) Error() string {
	return fmt.Sprintf(
		"metric %q: unsupported %s %v",
		e.Metric, e.Option, e.Value,
	)
}
