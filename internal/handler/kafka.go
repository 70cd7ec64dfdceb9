package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"

	"github.com/opencompanybot/registration-service/internal/config"
)

type PaymentEventHandler interface {
	HandlePaymentEvent(ctx context.Context, paymentReference, status string) error
}

type kafkaHandler struct {
	dlq      *kafka.Writer
	reader   *kafka.Reader
	logger   *slog.Logger
	validate *validator.Validate
	events   PaymentEventHandler
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, events PaymentEventHandler) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.Topic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		validate: validator.New(),
		events:   events,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			} else {
				h.logger.Error("failed to fetch message", slog.Any("error", err))
				continue
			}
		}

		// Applying the event is idempotent, redelivery after a failed commit
		// is harmless.
		if err := h.handlePaymentEvent(ctx, m); err != nil {
			h.logger.Error("failed to handle payment event", slog.Any("error", err))
			eventsFailed.Inc()

			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			eventsDLQ.Inc()
		} else {
			eventsProcessed.Inc()
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handlePaymentEvent(ctx context.Context, m kafka.Message) error {
	var event PaymentEvent
	if err := json.Unmarshal(m.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal payment event: %w", err)
	}

	if err := h.validate.Struct(event); err != nil {
		return fmt.Errorf("invalid payment event: %w", err)
	}

	return h.events.HandlePaymentEvent(ctx, event.PaymentReference, event.Status)
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
