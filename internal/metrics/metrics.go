// Package metrics records API client activity in a Prometheus registry.
package metrics

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StatusTransportError labels requests that never got an HTTP response.
const StatusTransportError = "transport_error"

// Recorder is what the API client reports to.
type Recorder interface {
	RecordRequest(op string, statusCode int, d time.Duration)
	RecordTransportError(op string, d time.Duration)
	RecordDegraded(op string)
}

type Collector struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	degraded *prometheus.CounterVec
}

// NewCollector creates the collector and registers it on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ufood_api_requests_total",
			Help: "Requests sent to the UFood API by operation and response status.",
		}, []string{"op", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ufood_api_request_duration_seconds",
			Help:    "Round-trip time of UFood API requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),
		degraded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ufood_api_degraded_total",
			Help: "Failures replaced by an empty or default result.",
		}, []string{"op"}),
	}

	reg.MustRegister(c.requests, c.latency, c.degraded)
	return c
}

func (c *Collector) RecordRequest(op string, statusCode int, d time.Duration) {
	c.requests.WithLabelValues(op, strconv.Itoa(statusCode)).Inc()
	c.latency.WithLabelValues(op).Observe(d.Seconds())
}

func (c *Collector) RecordTransportError(op string, d time.Duration) {
	c.requests.WithLabelValues(op, StatusTransportError).Inc()
	c.latency.WithLabelValues(op).Observe(d.Seconds())
}

func (c *Collector) RecordDegraded(op string) {
	c.degraded.WithLabelValues(op).Inc()
}

// Nop discards everything.
type Nop struct{}

func (Nop) RecordRequest(string, int, time.Duration)     {}
func (Nop) RecordTransportError(string, time.Duration) {}
func (Nop) RecordDegraded(string)                        {}

// WriteSummary prints one line per counter series and the request count and
// mean latency per histogram series, sorted by name.
func WriteSummary(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			pairs := make([]string, 0, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				pairs = append(pairs, l.GetName()+"="+l.GetValue())
			}
			labels := strings.Join(pairs, ",")

			switch {
			case m.GetCounter() != nil:
				lines = append(lines, fmt.Sprintf("%s{%s} %g", mf.GetName(), labels, m.GetCounter().GetValue()))
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				mean := 0.0
				if h.GetSampleCount() > 0 {
					mean = h.GetSampleSum() / float64(h.GetSampleCount())
				}
				lines = append(lines, fmt.Sprintf("%s{%s} count=%d mean=%.3fs", mf.GetName(), labels, h.GetSampleCount(), mean))
			}
		}
	}

	sort.Strings(lines)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
