package monitoring

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/dgvita/dgvita/pkg/config"
	"github.com/dgvita/dgvita/pkg/frontend"
	"github.com/dgvita/dgvita/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dgvita"

// Source gives the current frontend counters.
type Source func() frontend.Stats

type Monitoring struct {
	conf   config.Monitoring
	reg    *prometheus.Registry
	server *http.Server
	ln     net.Listener
	log    *logger.Logger
}

// New creates the monitoring service for the stats source.
func New(conf config.Monitoring, stats Source, log *logger.Logger) *Monitoring {
	if log == nil {
		log = logger.Default()
	}
	m := &Monitoring{conf: conf, reg: NewRegistry(stats), log: log}

	h := http.NewServeMux()
	if conf.ProfilingEnabled {
		prefix := fmt.Sprintf("%s/debug/pprof", conf.URLPrefix)
		log.Info().Msgf("Profiling is enabled at %v", prefix)
		h.HandleFunc(prefix+"/", pprof.Index)
		h.HandleFunc(prefix+"/cmdline", pprof.Cmdline)
		h.HandleFunc(prefix+"/profile", pprof.Profile)
		h.HandleFunc(prefix+"/symbol", pprof.Symbol)
		h.HandleFunc(prefix+"/trace", pprof.Trace)
		// named profiles are not served by the index under a custom prefix
		for _, name := range []string{"allocs", "block", "goroutine", "heap", "mutex", "threadcreate"} {
			h.Handle(prefix+"/"+name, pprof.Handler(name))
		}
	}
	if conf.MetricEnabled {
		path := fmt.Sprintf("%s/metrics", conf.URLPrefix)
		log.Info().Msgf("Prometheus metrics are enabled at %v", path)
		h.Handle(path, promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{}))
	}
	m.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", conf.Port),
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return m
}

// NewRegistry binds the frontend counters to a new registry.
func NewRegistry(stats Source) *prometheus.Registry {
	counter := func(name, help string, v func(frontend.Stats) float64) prometheus.Collector {
		return prometheus.NewCounterFunc(
			prometheus.CounterOpts{Namespace: namespace, Name: name, Help: help},
			func() float64 { return v(stats()) },
		)
	}
	gauge := func(name, help string, v func(frontend.Stats) float64) prometheus.Collector {
		return prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{Namespace: namespace, Name: name, Help: help},
			func() float64 { return v(stats()) },
		)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		counter("frames_total", "Presented frames.",
			func(s frontend.Stats) float64 { return float64(s.Frames) }),
		gauge("present_seconds", "Duration of the last frame presentation.",
			func(s frontend.Stats) float64 { return s.PresentTime.Seconds() }),
		counter("input_samples_total", "Controller reads.",
			func(s frontend.Stats) float64 { return float64(s.Input.Samples) }),
		counter("input_misses_total", "Failed controller reads.",
			func(s frontend.Stats) float64 { return float64(s.Input.Misses) }),
		counter("input_events_total", "Queued key events.",
			func(s frontend.Stats) float64 { return float64(s.Input.Events) }),
		counter("input_dropped_total", "Key events lost to queue overflow.",
			func(s frontend.Stats) float64 { return float64(s.Input.Dropped) }),
		gauge("input_buffered", "Key events waiting for the host.",
			func(s frontend.Stats) float64 { return float64(s.Input.Buffered) }),
	)
	return reg
}

func (m *Monitoring) Registry() *prometheus.Registry { return m.reg }
func (m *Monitoring) Handler() http.Handler          { return m.server.Handler }

// Run starts serving in the background.
func (m *Monitoring) Run() {
	ln, err := net.Listen("tcp", m.server.Addr)
	if err != nil {
		m.log.Error().Err(err).Msg("monitoring server")
		return
	}
	m.ln = ln
	m.log.Info().Msgf("Starting monitoring server at %v", ln.Addr())
	go func() {
		if err := m.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			m.log.Error().Err(err).Msg("monitoring server")
		}
	}()
}

func (m *Monitoring) Shutdown(ctx context.Context) error {
	if m.ln == nil {
		return nil
	}
	m.log.Info().Msg("Shutting down monitoring server")
	return m.server.Shutdown(ctx)
}

func (m *Monitoring) String() string {
	return fmt.Sprintf("monitoring::%s:%d", m.conf.URLPrefix, m.conf.Port)
}
