package middleware

import (
	"net/http"
	"strconv"
	"time"

	"vinyl-api/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the HTTP collectors on their own registry, so engines built
// in tests do not collide on the global one.
type Metrics struct {
	namespace string
	registry  *prometheus.Registry
	requests  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

func NewMetrics(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	factory := promauto.With(reg)
	return &Metrics{
		namespace: namespace,
		registry:  reg,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// Registerer exposes the registry for collectors owned by other packages.
func (m *Metrics) Registerer() prometheus.Registerer {
	return m.registry
}

// ObserveStore exports one <ns>_store_entities gauge per collection, read
// from the store on every scrape.
func (m *Metrics) ObserveStore(s *store.Store) {
	counts := map[string]func(store.Stats) int{
		"users":     func(st store.Stats) int { return st.Users },
		"addresses": func(st store.Stats) int { return st.Addresses },
		"artists":   func(st store.Stats) int { return st.Artists },
		"genres":    func(st store.Stats) int { return st.Genres },
		"labels":    func(st store.Stats) int { return st.Labels },
		"vinyls":    func(st store.Stats) int { return st.Vinyls },
		"listings":  func(st store.Stats) int { return st.Listings },
		"inventory": func(st store.Stats) int { return st.Inventory },
	}
	for entity, count := range counts {
		m.Registerer().MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace:   m.namespace,
			Name:        "store_entities",
			Help:        "Records currently held in the store, by entity.",
			ConstLabels: prometheus.Labels{"entity": entity},
		}, func() float64 { return float64(count(s.Stats())) }))
	}
}

func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.duration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
