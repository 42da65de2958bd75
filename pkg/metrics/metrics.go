package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ChatRepliesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_replies_total",
			Help: "Total number of chat replies by routed intent and rule",
		},
		[]string{"intent", "rule"},
	)

	ChatReplyErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_reply_errors_total",
			Help: "Total number of chat requests answered with the error reply",
		},
	)

	ChatReplyDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chat_reply_duration_seconds",
			Help:    "Time spent routing a chat message",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
		},
		[]string{"intent"},
	)

	ProductMatchScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "chat_product_match_score",
			Help:    "Similarity score of accepted fuzzy product matches",
			Buckets: []float64{.62, .7, .8, .9, 1, 1.1, 1.2, 1.35},
		},
	)

	RateLimitedRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "http_rate_limited_requests_total",
			Help: "Total number of requests rejected by the per-client rate limiter",
		},
	)
)
