package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	paymentsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "registration_service",
			Subsystem: "http",
			Name:      "payments_created_total",
			Help:      "Total number of payment orders created",
		},
	)

	webhooksProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "registration_service",
			Subsystem: "http",
			Name:      "webhooks_processed_total",
			Help:      "Total number of payment webhooks applied",
		},
	)
)

var (
	eventsProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "registration_service",
			Subsystem: "kafka_consumer",
			Name:      "events_processed_total",
			Help:      "Total number of successfully processed payment events",
		},
	)

	eventsFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "registration_service",
			Subsystem: "kafka_consumer",
			Name:      "events_failed_total",
			Help:      "Total number of failed payment event processing attempts",
		},
	)

	eventsDLQ = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "registration_service",
			Subsystem: "kafka_consumer",
			Name:      "events_dlq_total",
			Help:      "Total number of payment events written to DLQ",
		},
	)
)
