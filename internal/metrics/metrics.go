package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus collectors for the tracking pipeline and its HTTP surface.
var (
	UpstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracking_upstream_requests_total",
			Help: "Requests sent to the tracking backend by stage and response status",
		},
		[]string{"stage", "status"},
	)

	CaptchaChallengesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracking_captcha_challenges_total",
			Help: "Captcha challenges received from the tracking backend",
		},
		[]string{"stage"},
	)

	CaptchaSolveDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tracking_captcha_solve_duration_seconds",
			Help:    "Time spent solving one captcha challenge batch",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 14),
		},
	)

	TrackingResultsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracking_results_total",
			Help: "Finished tracking calls by outcome",
		},
		[]string{"outcome"},
	)

	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"handler", "method", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"handler", "method"},
	)
)

// Register adds all collectors to reg.
func Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		UpstreamRequestsTotal,
		CaptchaChallengesTotal,
		CaptchaSolveDuration,
		TrackingResultsTotal,
		HTTPRequestsTotal,
		HTTPRequestDuration,
	} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
