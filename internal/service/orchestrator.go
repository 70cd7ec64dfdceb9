package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/opencompanybot/registration-service/internal/ccpayment"
	"github.com/opencompanybot/registration-service/internal/entities"
	"github.com/opencompanybot/registration-service/pkg/utils"
)

type OrderRepo interface {
	Create(ctx context.Context, order entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, orderID string) (entities.Order, error)
	GetByPaymentReference(ctx context.Context, ref string) (entities.Order, error)

	// CompareAndUpdate is the sole write path for order mutations.
	CompareAndUpdate(ctx context.Context, orderID string, expectedVersion int64, mutate func(*entities.Order) error) (entities.Order, error)

	ListExpired(ctx context.Context, olderThan time.Time, limit int) ([]entities.Order, error)
	ListStuckPaid(ctx context.Context, olderThan time.Time, limit int) ([]entities.Order, error)
}

type PaymentProcessor interface {
	CreatePayment(ctx context.Context, orderID string, amount decimal.Decimal, currency, network, description string) (ccpayment.PaymentInstructions, error)
	GetStatus(ctx context.Context, paymentReference string) (ccpayment.PaymentStatus, error)
}

// RegistrationTrigger submits a paid order to the company registry.
type RegistrationTrigger interface {
	Submit(ctx context.Context, orderID string) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

// casRetryConfig bounds read-modify-retry loops around version conflicts.
var casRetryConfig = utils.RetryConfig{
	MaxAttempts:  5,
	InitialDelay: 20 * time.Millisecond,
	Multiplier:   2,
}

type Orchestrator struct {
	logger    *slog.Logger
	repo      OrderRepo
	processor PaymentProcessor
	trigger   RegistrationTrigger
	cache     Cache

	expiryWindow   time.Duration
	reconcileGrace time.Duration
	sweepBatchSize int
}

type OrchestratorOpts struct {
	ExpiryWindow   time.Duration
	ReconcileGrace time.Duration
	SweepBatchSize int
}

func NewOrchestrator(
	logger *slog.Logger,
	repo OrderRepo,
	processor PaymentProcessor,
	trigger RegistrationTrigger,
	cache Cache,
	opts OrchestratorOpts,
) *Orchestrator {
	if opts.SweepBatchSize <= 0 {
		opts.SweepBatchSize = 100
	}
	return &Orchestrator{
		logger:         logger.With(slog.String("service", "orchestrator")),
		repo:           repo,
		processor:      processor,
		trigger:        trigger,
		cache:          cache,
		expiryWindow:   opts.ExpiryWindow,
		reconcileGrace: opts.ReconcileGrace,
		sweepBatchSize: opts.SweepBatchSize,
	}
}

// CreatePayment asks the processor for a payment address first and persists
// the order only after that call succeeds. If persistence fails afterwards
// there is an untracked payment intent on the processor side, so the error
// carries everything needed for manual reconciliation.
func (s *Orchestrator) CreatePayment(
	ctx context.Context,
	amount decimal.Decimal,
	currency, network, description string,
	payload entities.CompanyPayload,
) (entities.Order, error) {
	orderID := uuid.NewString()

	instructions, err := s.processor.CreatePayment(ctx, orderID, amount, currency, network, description)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to create payment: %w", err)
	}

	order, err := s.repo.Create(ctx, entities.Order{
		OrderID:          orderID,
		Amount:           amount,
		Currency:         currency,
		Network:          network,
		Description:      description,
		PaymentReference: instructions.PaymentReference,
		PaymentAddress:   instructions.Address,
		CompanyPayload:   payload,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "payment created on processor but order not persisted",
			slog.String("order_id", orderID),
			slog.String("payment_reference", instructions.PaymentReference),
			slog.Any("error", err),
		)
		return entities.Order{}, fmt.Errorf("%w: order %s, payment reference %s: %s",
			entities.ErrInconsistentState, orderID, instructions.PaymentReference, err)
	}

	s.logger.InfoContext(ctx, "payment order created",
		slog.String("order_id", order.OrderID),
		slog.String("payment_reference", order.PaymentReference),
	)
	return order, nil
}

// GetOrder returns the current order view. Only terminal orders are cached,
// anything still in flight must be read from the store.
func (s *Orchestrator) GetOrder(ctx context.Context, orderID string) (entities.Order, error) {
	if data, ok := s.cache.Get(orderID); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal cached order", slog.String("order_id", orderID), slog.Any("error", err))
			return entities.Order{}, err
		}
		return order, nil
	}

	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	if order.Status.Terminal() {
		if data, err := order.Marshal(); err == nil {
			s.cache.Set(orderID, data)
		}
	}
	return order, nil
}

// HandlePaymentEvent applies a processor status to the order identified by its
// payment reference. It is idempotent: duplicate confirmations are a no-op and
// the registration trigger fires at most once, after the paid write and
// outside any store transaction. Duplicate delivery is expected, callbacks
// from the processor are at-least-once.
func (s *Orchestrator) HandlePaymentEvent(ctx context.Context, paymentReference, processorStatus string) error {
	target, ok := targetStatus(processorStatus)
	if !ok {
		// Still pending on the processor side, nothing to apply.
		return nil
	}

	var confirmed *entities.Order

	fn := func() error {
		order, err := s.repo.GetByPaymentReference(ctx, paymentReference)
		if err != nil {
			return err
		}

		if target == entities.StatusPaid && order.Status.AtLeastPaid() {
			// Duplicate confirmation. Registration was already triggered by
			// whoever won the first write, or will be by the reconcile sweep.
			return nil
		}
		if order.Status == target {
			return nil
		}

		updated, err := s.repo.CompareAndUpdate(ctx, order.OrderID, order.Version, func(o *entities.Order) error {
			return o.Transition(target)
		})
		if err != nil {
			return err
		}

		if target == entities.StatusPaid {
			confirmed = &updated
		}
		return nil
	}

	err := utils.Retry(casRetryConfig, fn, entities.ErrOrderNotFound, entities.ErrInvalidTransition)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to apply payment event",
			slog.String("payment_reference", paymentReference),
			slog.String("processor_status", processorStatus),
			slog.Any("error", err),
		)
		return fmt.Errorf("failed to apply payment event: %w", err)
	}

	if confirmed == nil {
		return nil
	}

	s.logger.InfoContext(ctx, "payment confirmed",
		slog.String("order_id", confirmed.OrderID),
		slog.Int64("version", confirmed.Version),
	)

	// Registration must outlive the delivery request: processor webhooks time
	// out in seconds while registry retries can run much longer, and a caller
	// disconnect must not abort the filing of a paid order.
	if err := s.trigger.Submit(context.WithoutCancel(ctx), confirmed.OrderID); err != nil {
		// The paid write is durable; the reconcile sweep re-invokes the
		// trigger for orders stuck in paid.
		s.logger.ErrorContext(ctx, "registration trigger failed, order left for reconcile",
			slog.String("order_id", confirmed.OrderID),
			slog.Any("error", err),
		)
	}
	return nil
}

// PollPayment asks the processor for the current payment state and feeds the
// answer through the same event path a webhook would take.
func (s *Orchestrator) PollPayment(ctx context.Context, orderID string) (entities.Order, error) {
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	if !order.Status.Terminal() && order.PaymentReference != "" {
		status, err := s.processor.GetStatus(ctx, order.PaymentReference)
		if err != nil {
			return entities.Order{}, fmt.Errorf("failed to poll payment status: %w", err)
		}
		if err := s.HandlePaymentEvent(ctx, order.PaymentReference, status.Status); err != nil {
			return entities.Order{}, err
		}
	}

	return s.repo.GetByID(ctx, orderID)
}

// Reconcile re-invokes the registration trigger for orders that were marked
// paid but never reached registration. This repairs the one gap in the
// workflow a crash can open: after the paid write, before the trigger call.
func (s *Orchestrator) Reconcile(ctx context.Context) error {
	cutoff := time.Now().UTC().Add(-s.reconcileGrace)
	stuck, err := s.repo.ListStuckPaid(ctx, cutoff, s.sweepBatchSize)
	if err != nil {
		return fmt.Errorf("failed to list stuck paid orders: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for _, order := range stuck {
		order := order
		g.Go(func() error {
			s.logger.InfoContext(ctx, "reconciling stuck paid order",
				slog.String("order_id", order.OrderID),
				slog.Int64("version", order.Version),
			)
			if err := s.trigger.Submit(ctx, order.OrderID); err != nil {
				s.logger.ErrorContext(ctx, "reconcile submit failed",
					slog.String("order_id", order.OrderID),
					slog.Any("error", err),
				)
			}
			return nil
		})
	}
	return g.Wait()
}

// ExpireStale moves pending orders past the expiry window to expired.
// Version conflicts mean a payment event won the race, those are skipped.
func (s *Orchestrator) ExpireStale(ctx context.Context) error {
	cutoff := time.Now().UTC().Add(-s.expiryWindow)
	stale, err := s.repo.ListExpired(ctx, cutoff, s.sweepBatchSize)
	if err != nil {
		return fmt.Errorf("failed to list expired orders: %w", err)
	}

	for _, order := range stale {
		_, err := s.repo.CompareAndUpdate(ctx, order.OrderID, order.Version, func(o *entities.Order) error {
			return o.Transition(entities.StatusExpired)
		})
		switch {
		case errors.Is(err, entities.ErrVersionConflict), errors.Is(err, entities.ErrInvalidTransition):
			s.logger.Debug("order changed under expiry sweep, skipping",
				slog.String("order_id", order.OrderID))
		case err != nil:
			s.logger.Error("failed to expire order",
				slog.String("order_id", order.OrderID),
				slog.Int64("version", order.Version),
				slog.Any("error", err),
			)
		default:
			ordersExpired.Inc()
			s.logger.Info("order expired", slog.String("order_id", order.OrderID))
		}
	}
	return nil
}

func targetStatus(processorStatus string) (entities.Status, bool) {
	switch processorStatus {
	case ccpayment.StatusConfirmed, ccpayment.StatusSuccess:
		return entities.StatusPaid, true
	case ccpayment.StatusFailed, ccpayment.StatusExpired:
		return entities.StatusPaymentFailed, true
	default:
		return "", false
	}
}
