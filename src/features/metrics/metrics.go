package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collectors for the library index. Gauges track index sizes, counters track
// operation volume; all are updated by the owning feature services.
var (
	SongsInLibrary = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sonicwave_library_songs",
		Help: "Number of songs currently in the library index.",
	})
	GenresInLibrary = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sonicwave_library_genres",
		Help: "Number of genre buckets currently in the library index.",
	})
	PlaysTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sonicwave_plays_total",
		Help: "Total play transitions since process start.",
	})
	SearchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sonicwave_searches_total",
		Help: "Total title searches since process start.",
	})
	ScansTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sonicwave_scans_total",
		Help: "Total library scans since process start.",
	})
)
