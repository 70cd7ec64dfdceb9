package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/opencompanybot/registration-service/internal/companieshouse"
	"github.com/opencompanybot/registration-service/internal/entities"
	"github.com/opencompanybot/registration-service/pkg/utils"
)

type RegistryClient interface {
	Incorporate(ctx context.Context, payload entities.CompanyPayload) (companieshouse.IncorporationResult, error)
}

// Registrar owns the registration leg of the workflow: paid orders are moved
// to registering, filed with the registry under a bounded classified retry
// policy, and finished as registered or registration_failed.
type Registrar struct {
	logger   *slog.Logger
	repo     OrderRepo
	registry RegistryClient
	retryCfg utils.RetryConfig
}

func NewRegistrar(logger *slog.Logger, repo OrderRepo, registry RegistryClient, retryCfg utils.RetryConfig) *Registrar {
	return &Registrar{
		logger:   logger.With(slog.String("service", "registrar")),
		repo:     repo,
		registry: registry,
		retryCfg: retryCfg,
	}
}

// Submit files the incorporation for a paid order. Safe to call again for the
// same order: once the order has left paid, a second call is a no-op, so the
// reconcile sweep and a racing event handler cannot double-file.
func (r *Registrar) Submit(ctx context.Context, orderID string) error {
	// A dead context would fail every registry attempt without a single
	// round-trip and record a bogus terminal failure. Refuse before claiming:
	// the order stays paid and the reconcile sweep retries it.
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("registration not attempted: %w", err)
	}

	order, err := r.repo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}

	if order.Status != entities.StatusPaid {
		r.logger.Debug("order not awaiting registration, skipping",
			slog.String("order_id", orderID),
			slog.String("status", string(order.Status)),
		)
		return nil
	}

	// Claiming the order via CAS is what guarantees a single filer: of two
	// concurrent submitters only one sees version match.
	order, err = r.repo.CompareAndUpdate(ctx, orderID, order.Version, func(o *entities.Order) error {
		return o.Transition(entities.StatusRegistering)
	})
	if errors.Is(err, entities.ErrVersionConflict) {
		r.logger.Debug("order claimed by concurrent submitter",
			slog.String("order_id", orderID))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to mark order registering: %w", err)
	}

	attempts := 0
	var result companieshouse.IncorporationResult

	filingErr := utils.Retry(r.retryCfg, func() error {
		attempts++
		res, err := r.registry.Incorporate(ctx, order.CompanyPayload)
		if err != nil {
			r.logger.WarnContext(ctx, "registry incorporation attempt failed",
				slog.String("order_id", orderID),
				slog.Int("attempt", attempts),
				slog.Any("error", err),
			)
			return err
		}
		result = res
		return nil
	}, companieshouse.ErrTerminal)

	if filingErr != nil {
		return r.finish(ctx, order, entities.StatusRegistrationFailed, &entities.CompanyResult{
			FailureReason: filingErr.Error(),
			Retryable:     companieshouse.Retryable(filingErr),
			Retries:       attempts - 1,
		})
	}

	return r.finish(ctx, order, entities.StatusRegistered, &entities.CompanyResult{
		CompanyNumber:     result.CompanyNumber,
		CompanyStatus:     result.Status,
		IncorporationDate: result.IncorporationDate,
		Retries:           attempts - 1,
	})
}

func (r *Registrar) finish(ctx context.Context, order entities.Order, status entities.Status, result *entities.CompanyResult) error {
	_, err := r.repo.CompareAndUpdate(ctx, order.OrderID, order.Version, func(o *entities.Order) error {
		if err := o.Transition(status); err != nil {
			return err
		}
		o.CompanyResult = result
		return nil
	})
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to record registration outcome",
			slog.String("order_id", order.OrderID),
			slog.Int64("version", order.Version),
			slog.String("outcome", string(status)),
			slog.Any("error", err),
		)
		return fmt.Errorf("failed to record registration outcome: %w", err)
	}

	registryRetries.Add(float64(result.Retries))

	if status == entities.StatusRegistered {
		registrationsSucceeded.Inc()
		r.logger.InfoContext(ctx, "company registered",
			slog.String("order_id", order.OrderID),
			slog.String("company_number", result.CompanyNumber),
			slog.Int("retries", result.Retries),
		)
	} else {
		registrationsFailed.Inc()
		r.logger.WarnContext(ctx, "company registration failed",
			slog.String("order_id", order.OrderID),
			slog.String("reason", result.FailureReason),
			slog.Bool("retryable", result.Retryable),
		)
	}
	return nil
}
