// Package metrics holds the domain metrics exported next to the HTTP metrics at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SearchResults observes how many materials matched a search
	SearchResults = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "materialsdb",
		Name:      "search_results",
		Help:      "Number of materials matching a search.",
		Buckets:   []float64{0, 1, 5, 12, 25, 50, 100, 500, 1000},
	})

	// SearchFilters counts filter parameters used in searches
	SearchFilters = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "materialsdb",
		Name:      "search_filters_total",
		Help:      "Filter parameters used in material searches.",
	}, []string{"param"})

	// FavoriteChanges counts favorite adds and removes
	FavoriteChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "materialsdb",
		Name:      "favorite_changes_total",
		Help:      "Favorite additions and removals.",
	}, []string{"action"})

	// CacheLookups counts cache hits and misses by cache name
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "materialsdb",
		Name:      "cache_lookups_total",
		Help:      "Read-through cache lookups.",
	}, []string{"name", "result"})
)

// ObserveSearch records one search
func ObserveSearch(params []string, total int64) {
	SearchResults.Observe(float64(total))
	for _, p := range params {
		SearchFilters.WithLabelValues(p).Inc()
	}
}

// ObserveCache records a cache lookup outcome
func ObserveCache(name string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CacheLookups.WithLabelValues(name, result).Inc()
}
