package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics собирает счётчик и гистограмму HTTP-запросов
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics создает метрики и регистрирует их в reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trivia_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"route", "method", "code"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "trivia_http_request_duration_seconds",
				Help:    "Histogram of response latency (seconds) for HTTP requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
	}
	reg.MustRegister(m.requestsTotal, m.requestDuration)
	return m
}

// Handler возвращает Gin middleware. Метка route: шаблон маршрута,
// чтобы id в пути не раздували кардинальность.
func (m *Metrics) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requestsTotal.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.requestDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
