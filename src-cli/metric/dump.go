package metric

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Dump writes the current state of every registered metric to w in the
// Prometheus text exposition format. This tool has no HTTP listener, so
// the stats command renders the registry directly instead of serving it.
func Dump(w io.Writer) error {
	metricFamilies, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return fmt.Errorf("metric.Dump: can't gather metrics: %w", err)
	}
	encoder := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, metricFamily := range metricFamilies {
		if err := encoder.Encode(metricFamily); err != nil {
			return fmt.Errorf("metric.Dump: can't encode metric family: %w", err)
		}
	}
	return nil
}
