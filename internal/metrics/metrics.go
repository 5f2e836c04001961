package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for GenerateRequests. They mirror scenario failure kinds.
const (
	OutcomeSuccess             = "success"
	OutcomeMissingInput        = "missing_input"
	OutcomeProviderCallFailure = "provider_call_failure"
	OutcomeMalformedOutput     = "malformed_output"
	OutcomeSchemaViolation     = "schema_violation"
)

var (
	// Own registry so /metrics only exposes what this service defines plus
	// the standard process and Go collectors.
	registry = prometheus.NewRegistry()

	generateRequests = promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "scamgame_generate_requests_total",
			Help: "Scenario generation requests, partitioned by outcome.",
		},
		[]string{"outcome"},
	)
	generatedTruth = promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "scamgame_generated_truth_total",
			Help: "Validated scenarios by hidden ground truth.",
		},
		[]string{"is_scam"},
	)
	providerDuration = promauto.With(registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "scamgame_provider_request_duration_seconds",
			Help:    "Duration of model provider calls.",
			Buckets: []float64{.25, .5, 1, 2, 4, 8, 16, 32, 64},
		},
		[]string{"status"},
	)
	providerTokens = promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "scamgame_provider_tokens_total",
			Help: "Tokens reported by the model provider.",
		},
		[]string{"kind"},
	)
)

func init() {
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Registry exposes the service registry, mainly for tests.
func Registry() *prometheus.Registry {
	return registry
}

// GenerateRequests exposes the outcome counter, mainly for tests.
func GenerateRequests() *prometheus.CounterVec {
	return generateRequests
}

// Handler serves the registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

// IncGenerateOutcome counts one finished generate request.
func IncGenerateOutcome(outcome string) {
	generateRequests.WithLabelValues(outcome).Inc()
}

// IncGeneratedTruth counts the hidden truth of one validated scenario.
func IncGeneratedTruth(isScam bool) {
	generatedTruth.WithLabelValues(strconv.FormatBool(isScam)).Inc()
}

// ObserveProviderCall records the latency of one provider round trip.
func ObserveProviderCall(d time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	providerDuration.WithLabelValues(status).Observe(d.Seconds())
}

// AddTokens adds provider-reported token usage.
func AddTokens(prompt, candidates int32) {
	if prompt > 0 {
		providerTokens.WithLabelValues("prompt").Add(float64(prompt))
	}
	if candidates > 0 {
		providerTokens.WithLabelValues("candidates").Add(float64(candidates))
	}
}
