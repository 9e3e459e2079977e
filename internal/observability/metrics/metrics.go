package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success                  Outcome       = "success"
	Error                    Outcome       = "error"
	MetricRequestTimeout     time.Duration = 5 * time.Second
	MetricRequestIdleTimeout time.Duration = 10 * time.Second
)

func (O Outcome) String() string {
	return string(O)
}

var (
	once                        sync.Once
	metricsRouter               *chi.Mux
	nearClientLatency           *prometheus.HistogramVec
	httpRequestDuration         *prometheus.HistogramVec
	pollerDurationHistogram     *prometheus.HistogramVec
	dbLatency                   *prometheus.HistogramVec
	vaultSyncCounter            *prometheus.CounterVec
	vaultStateTransitionCounter *prometheus.CounterVec
	queueSendErrorCounter       prometheus.Counter
	clientRequestDuration       *prometheus.HistogramVec
)

// Init starts the metrics server and registers collectors, subsequent calls are no-ops.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
		registerMetrics()
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})
	metricsAddr := fmt.Sprintf(":%d", metricsPort)
	server := &http.Server{
		Addr:         metricsAddr,
		Handler:      metricsRouter,
		ReadTimeout:  MetricRequestTimeout,
		WriteTimeout: MetricRequestTimeout,
		IdleTimeout:  MetricRequestIdleTimeout,
	}

	go func() {
		log.Info().Msgf("Starting metrics server on %s", metricsAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msgf("Error starting metrics server on %s", metricsAddr)
		}
	}()
}

// registerMetrics initializes and register the Prometheus metrics.
func registerMetrics() {
	defaultHistogramBucketsSeconds := []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30}

	nearClientLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "near_client_latency_seconds",
			Help:    "Histogram of near json-rpc client durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of incoming http request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"route", "status"},
	)

	pollerDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "poller_duration_seconds",
			Help:    "Histogram of poller durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"type", "status"},
	)

	dbLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "db_latency_seconds",
			Help: "DB latency in seconds splitted by method and execution status",
		},
		[]string{"method", "status"},
	)

	vaultSyncCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vault_sync_total",
			Help: "Number of vault syncs by factory and outcome",
		},
		[]string{"factory", "status"},
	)

	vaultStateTransitionCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vault_state_transition_total",
			Help: "Number of observed vault state changes",
		},
		[]string{"factory", "from", "to"},
	)

	// client requests are the ones sending to other service
	clientRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "client_request_duration_seconds",
			Help:    "Histogram of outgoing client request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"baseurl", "method", "path", "status"},
	)

	queueSendErrorCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "queue_send_error_count",
			Help: "The total number of errors when sending messages to the queue",
		},
	)

	prometheus.MustRegister(
		nearClientLatency,
		httpRequestDuration,
		pollerDurationHistogram,
		dbLatency,
		vaultSyncCounter,
		vaultStateTransitionCounter,
		queueSendErrorCounter,
		clientRequestDuration,
	)
}

// the collectors are nil until Init is called, recorders silently skip in that case
// so packages can be used (and tested) without a metrics server

func RecordNearClientLatency(d time.Duration, method string, failure bool) {
	if nearClientLatency == nil {
		return
	}
	nearClientLatency.WithLabelValues(method, outcome(failure).String()).Observe(d.Seconds())
}

func RecordDbLatency(d time.Duration, method string, failure bool) {
	if dbLatency == nil {
		return
	}
	dbLatency.WithLabelValues(method, outcome(failure).String()).Observe(d.Seconds())
}

func RecordHttpRequestDuration(d time.Duration, route string, statusCode int) {
	if httpRequestDuration == nil {
		return
	}
	httpRequestDuration.WithLabelValues(route, strconv.Itoa(statusCode)).Observe(d.Seconds())
}

func RecordVaultSync(factoryID string, failure bool) {
	if vaultSyncCounter == nil {
		return
	}
	vaultSyncCounter.WithLabelValues(factoryID, outcome(failure).String()).Inc()
}

func RecordVaultStateTransition(factoryID, from, to string) {
	if vaultStateTransitionCounter == nil {
		return
	}
	vaultStateTransitionCounter.WithLabelValues(factoryID, from, to).Inc()
}

func RecordQueueSendError() {
	if queueSendErrorCounter == nil {
		return
	}
	queueSendErrorCounter.Inc()
}

// StartClientRequestDurationTimer starts a timer to measure outgoing client request duration.
func StartClientRequestDurationTimer(baseUrl, method, path string) func(statusCode int) {
	startTime := time.Now()
	return func(statusCode int) {
		if clientRequestDuration == nil {
			return
		}
		clientRequestDuration.WithLabelValues(
			baseUrl,
			method,
			path,
			strconv.Itoa(statusCode),
		).Observe(time.Since(startTime).Seconds())
	}
}

func outcome(failure bool) Outcome {
	if failure {
		return Error
	}
	return Success
}
