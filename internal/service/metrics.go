package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registrationsSucceeded = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "registration_service",
			Subsystem: "workflow",
			Name:      "registrations_succeeded_total",
			Help:      "Total number of orders registered with the company registry",
		},
	)

	registrationsFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "registration_service",
			Subsystem: "workflow",
			Name:      "registrations_failed_total",
			Help:      "Total number of orders that ended in registration_failed",
		},
	)

	registryRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "registration_service",
			Subsystem: "workflow",
			Name:      "registry_retries_total",
			Help:      "Total number of registry attempts beyond the first, across all orders",
		},
	)

	ordersExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "registration_service",
			Subsystem: "workflow",
			Name:      "orders_expired_total",
			Help:      "Total number of pending orders expired by the sweep",
		},
	)
)
