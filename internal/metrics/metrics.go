package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Signups = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "activities", Name: "signups_total", Help: "Successful activity signups",
	})
	Unregistrations = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "activities", Name: "unregistrations_total", Help: "Successful activity unregistrations",
	})
)

func init() {
	prometheus.MustRegister(Signups, Unregistrations)
}

func Handler() http.Handler { return promhttp.Handler() }
