package telemetry

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"supplyfinder/domain/supply"
	"supplyfinder/service"
)

const namespace = "supplyfinder"

type phaseStartKey struct{}

// Metrics counts lookups and times their phases.
type Metrics struct {
	lookups          *prometheus.CounterVec
	providerFailures prometheus.Counter
	phaseSeconds     *prometheus.HistogramVec
	selected         prometheus.Histogram
}

// NewMetrics registers the collectors with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_total",
			Help:      "Lookups by outcome.",
		}, []string{"outcome"}),
		providerFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_failures_total",
			Help:      "Provider queries that contributed nothing.",
		}),
		phaseSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "phase_duration_seconds",
			Help:      "Time spent in each lookup phase.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14),
		}, []string{"phase"}),
		selected: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "selected_providers",
			Help:      "Providers returned per successful lookup.",
			Buckets:   prometheus.LinearBuckets(1, 1, 10),
		}),
	}
	for _, c := range []prometheus.Collector{m.lookups, m.providerFailures, m.phaseSeconds, m.selected} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) PhaseStarted(ctx context.Context, _ uint64, _ service.Phase) context.Context {
	return context.WithValue(ctx, phaseStartKey{}, time.Now())
}

func (m *Metrics) PhaseFinished(ctx context.Context, _ uint64, phase service.Phase, _ error) {
	start, ok := ctx.Value(phaseStartKey{}).(time.Time)
	if !ok {
		return
	}
	m.phaseSeconds.WithLabelValues(phase.String()).Observe(time.Since(start).Seconds())
}

func (m *Metrics) ProviderFailed(context.Context, uint64, supply.ProviderDescriptor, error) {
	m.providerFailures.Inc()
}

func (m *Metrics) LookupFinished(_ context.Context, s service.Summary) {
	m.lookups.WithLabelValues(Outcome(s.Err)).Inc()
	if s.Err == nil {
		m.selected.Observe(float64(s.Selected))
	}
}

// ServeMetrics exposes g on addr under /metrics until ctx is done.
func ServeMetrics(ctx context.Context, addr string, g prometheus.Gatherer, log zerolog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", addr).Msg("metrics listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
