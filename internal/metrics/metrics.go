// Package metrics holds the prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "splitty"

var (
	FriendsAdded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "friends_added_total",
		Help:      "Friends added to the roster.",
	})

	BillsSplit = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bills_split_total",
		Help:      "Bills split with a friend, by payer.",
	}, []string{"payer"})

	Rejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "form_rejections_total",
		Help:      "Form submissions rejected by validation.",
	}, []string{"form"})

	RosterSize = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "roster_size",
		Help:      "Number of friends in the roster.",
	})
)
