// Package metrics expone métricas Prometheus del API.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metricas agrupa los colectores del servicio sobre un registro propio.
type Metricas struct {
	reg        *prometheus.Registry
	peticiones *prometheus.CounterVec
	latencia   *prometheus.HistogramVec
	paginas    *prometheus.HistogramVec
}

// New registra los colectores en un registro nuevo (incluye los del runtime de Go).
func New() *Metricas {
	reg := prometheus.NewRegistry()
	m := &Metricas{
		reg: reg,
		peticiones: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "restaurante",
			Name:      "http_requests_total",
			Help:      "Peticiones HTTP atendidas por ruta, método y código.",
		}, []string{"ruta", "metodo", "codigo"}),
		latencia: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "restaurante",
			Name:      "http_request_duration_seconds",
			Help:      "Duración de las peticiones HTTP.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"ruta", "metodo"}),
		paginas: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "restaurante",
			Name:      "pagina_fanout_seconds",
			Help:      "Duración de la composición de cada página de administración.",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"pagina"}),
	}
	reg.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		m.peticiones, m.latencia, m.paginas,
	)
	return m
}

// Registry devuelve el registro (para pruebas).
func (m *Metricas) Registry() *prometheus.Registry { return m.reg }

// ObservarPagina implementa pagina.Observador.
func (m *Metricas) ObservarPagina(pagina string, d time.Duration) {
	m.paginas.WithLabelValues(pagina).Observe(d.Seconds())
}

// Middleware cuenta peticiones usando la ruta registrada (no la URL) para acotar la cardinalidad.
func (m *Metricas) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		inicio := time.Now()
		err := c.Next()

		codigo := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			codigo = fe.Code
		}
		ruta := c.Route().Path
		m.peticiones.WithLabelValues(ruta, c.Method(), strconv.Itoa(codigo)).Inc()
		m.latencia.WithLabelValues(ruta, c.Method()).Observe(time.Since(inicio).Seconds())
		return err
	}
}

// Handler sirve el formato de exposición de Prometheus.
func (m *Metricas) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{}))
}
