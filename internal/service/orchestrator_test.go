package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/opencompanybot/registration-service/internal/ccpayment"
	"github.com/opencompanybot/registration-service/internal/entities"
	"github.com/opencompanybot/registration-service/internal/repo"
	"github.com/opencompanybot/registration-service/internal/service"
	mocks "github.com/opencompanybot/registration-service/internal/service/mocks"
	"github.com/opencompanybot/registration-service/pkg/cache"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newOrchestrator(
	store service.OrderRepo,
	processor service.PaymentProcessor,
	trigger service.RegistrationTrigger,
	c service.Cache,
) *service.Orchestrator {
	if c == nil {
		c = cache.NewLRUCache(100, time.Minute)
	}
	return service.NewOrchestrator(discardLogger(), store, processor, trigger, c, service.OrchestratorOpts{
		ExpiryWindow:   time.Hour,
		ReconcileGrace: time.Hour,
		SweepBatchSize: 10,
	})
}

func createPendingOrder(t *testing.T, store *repo.MemoryRepo, orderID, paymentRef string) entities.Order {
	t.Helper()
	order, err := store.Create(context.Background(), entities.Order{
		OrderID:          orderID,
		Amount:           decimal.NewFromInt(150),
		Currency:         "USDT",
		Network:          "ERC20",
		PaymentReference: paymentRef,
	})
	require.NoError(t, err)
	return order
}

func TestOrchestrator_CreatePayment(t *testing.T) {
	ctx := context.Background()
	amount := decimal.NewFromInt(150)
	payload := entities.CompanyPayload{CompanyName: "Acme Widgets Ltd"}

	t.Run("success", func(t *testing.T) {
		store := repo.NewMemoryRepo()
		processor := mocks.NewMockPaymentProcessor(t)
		trigger := mocks.NewMockRegistrationTrigger(t)

		processor.EXPECT().
			CreatePayment(mock.Anything, mock.Anything, amount, "USDT", "ERC20", "registration").
			Return(ccpayment.PaymentInstructions{
				PaymentReference: "pay_1",
				Address:          "0xdeadbeef",
			}, nil).Once()

		svc := newOrchestrator(store, processor, trigger, nil)

		order, err := svc.CreatePayment(ctx, amount, "USDT", "ERC20", "registration", payload)
		require.NoError(t, err)
		assert.Equal(t, entities.StatusPending, order.Status)
		assert.Equal(t, "pay_1", order.PaymentReference)
		assert.Equal(t, "0xdeadbeef", order.PaymentAddress)
		assert.Equal(t, int64(1), order.Version)

		persisted, err := store.GetByPaymentReference(ctx, "pay_1")
		require.NoError(t, err)
		assert.Equal(t, order.OrderID, persisted.OrderID)
	})

	t.Run("processor fails", func(t *testing.T) {
		store := repo.NewMemoryRepo()
		processor := mocks.NewMockPaymentProcessor(t)
		trigger := mocks.NewMockRegistrationTrigger(t)

		processor.EXPECT().
			CreatePayment(mock.Anything, mock.Anything, amount, "USDT", "ERC20", "").
			Return(ccpayment.PaymentInstructions{}, ccpayment.ErrTimeout).Once()

		svc := newOrchestrator(store, processor, trigger, nil)

		_, err := svc.CreatePayment(ctx, amount, "USDT", "ERC20", "", payload)
		assert.ErrorIs(t, err, ccpayment.ErrTimeout)
	})

	t.Run("store fails after payment created", func(t *testing.T) {
		processor := mocks.NewMockPaymentProcessor(t)
		trigger := mocks.NewMockRegistrationTrigger(t)

		processor.EXPECT().
			CreatePayment(mock.Anything, mock.Anything, amount, "USDT", "ERC20", "").
			Return(ccpayment.PaymentInstructions{PaymentReference: "pay_1", Address: "0x1"}, nil).Once()

		svc := newOrchestrator(&createFailRepo{repo.NewMemoryRepo()}, processor, trigger, nil)

		_, err := svc.CreatePayment(ctx, amount, "USDT", "ERC20", "", payload)
		assert.ErrorIs(t, err, entities.ErrInconsistentState)
	})
}

// createFailRepo simulates the store going down between the processor call and
// the order write.
type createFailRepo struct {
	*repo.MemoryRepo
}

func (r *createFailRepo) Create(context.Context, entities.Order) (entities.Order, error) {
	return entities.Order{}, errors.New("db down")
}

func TestOrchestrator_HandlePaymentEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("confirmed marks paid and triggers registration once", func(t *testing.T) {
		store := repo.NewMemoryRepo()
		order := createPendingOrder(t, store, "order-1", "pay_1")

		processor := mocks.NewMockPaymentProcessor(t)
		trigger := mocks.NewMockRegistrationTrigger(t)
		trigger.EXPECT().Submit(mock.Anything, order.OrderID).Return(nil).Once()

		svc := newOrchestrator(store, processor, trigger, nil)

		require.NoError(t, svc.HandlePaymentEvent(ctx, "pay_1", ccpayment.StatusConfirmed))

		got, err := store.GetByID(ctx, order.OrderID)
		require.NoError(t, err)
		assert.Equal(t, entities.StatusPaid, got.Status)
		assert.Equal(t, int64(2), got.Version)

		// Duplicate delivery: no state change, no second trigger.
		require.NoError(t, svc.HandlePaymentEvent(ctx, "pay_1", ccpayment.StatusConfirmed))

		got, err = store.GetByID(ctx, order.OrderID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), got.Version)
	})

	t.Run("success maps to paid", func(t *testing.T) {
		store := repo.NewMemoryRepo()
		order := createPendingOrder(t, store, "order-1", "pay_1")

		trigger := mocks.NewMockRegistrationTrigger(t)
		trigger.EXPECT().Submit(mock.Anything, order.OrderID).Return(nil).Once()

		svc := newOrchestrator(store, mocks.NewMockPaymentProcessor(t), trigger, nil)

		require.NoError(t, svc.HandlePaymentEvent(ctx, "pay_1", ccpayment.StatusSuccess))

		got, _ := store.GetByID(ctx, order.OrderID)
		assert.Equal(t, entities.StatusPaid, got.Status)
	})

	t.Run("failed marks payment_failed without trigger", func(t *testing.T) {
		store := repo.NewMemoryRepo()
		order := createPendingOrder(t, store, "order-1", "pay_1")

		svc := newOrchestrator(store, mocks.NewMockPaymentProcessor(t), mocks.NewMockRegistrationTrigger(t), nil)

		require.NoError(t, svc.HandlePaymentEvent(ctx, "pay_1", ccpayment.StatusFailed))

		got, _ := store.GetByID(ctx, order.OrderID)
		assert.Equal(t, entities.StatusPaymentFailed, got.Status)
	})

	t.Run("pending is a no-op", func(t *testing.T) {
		store := repo.NewMemoryRepo()
		order := createPendingOrder(t, store, "order-1", "pay_1")

		svc := newOrchestrator(store, mocks.NewMockPaymentProcessor(t), mocks.NewMockRegistrationTrigger(t), nil)

		require.NoError(t, svc.HandlePaymentEvent(ctx, "pay_1", ccpayment.StatusPending))

		got, _ := store.GetByID(ctx, order.OrderID)
		assert.Equal(t, entities.StatusPending, got.Status)
		assert.Equal(t, int64(1), got.Version)
	})

	t.Run("unknown payment reference", func(t *testing.T) {
		svc := newOrchestrator(repo.NewMemoryRepo(), mocks.NewMockPaymentProcessor(t), mocks.NewMockRegistrationTrigger(t), nil)

		err := svc.HandlePaymentEvent(ctx, "pay_missing", ccpayment.StatusConfirmed)
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})

	t.Run("late confirmation after expiry is rejected", func(t *testing.T) {
		store := repo.NewMemoryRepo()
		order := createPendingOrder(t, store, "order-1", "pay_1")

		_, err := store.CompareAndUpdate(ctx, order.OrderID, order.Version, func(o *entities.Order) error {
			return o.Transition(entities.StatusExpired)
		})
		require.NoError(t, err)

		svc := newOrchestrator(store, mocks.NewMockPaymentProcessor(t), mocks.NewMockRegistrationTrigger(t), nil)

		err = svc.HandlePaymentEvent(ctx, "pay_1", ccpayment.StatusConfirmed)
		assert.ErrorIs(t, err, entities.ErrInvalidTransition)

		got, _ := store.GetByID(ctx, order.OrderID)
		assert.Equal(t, entities.StatusExpired, got.Status)
	})

	t.Run("caller disconnect does not abort registration", func(t *testing.T) {
		store := repo.NewMemoryRepo()
		order := createPendingOrder(t, store, "order-1", "pay_1")

		trigger := mocks.NewMockRegistrationTrigger(t)
		trigger.EXPECT().Submit(mock.Anything, order.OrderID).
			Run(func(ctx context.Context, _ string) {
				// The trigger must see a live context even though the
				// delivery request is already gone.
				assert.NoError(t, ctx.Err())
			}).Return(nil).Once()

		svc := newOrchestrator(store, mocks.NewMockPaymentProcessor(t), trigger, nil)

		gone, cancel := context.WithCancel(context.Background())
		cancel()

		require.NoError(t, svc.HandlePaymentEvent(gone, "pay_1", ccpayment.StatusConfirmed))

		got, _ := store.GetByID(ctx, order.OrderID)
		assert.Equal(t, entities.StatusPaid, got.Status)
	})

	t.Run("trigger failure does not fail the event", func(t *testing.T) {
		store := repo.NewMemoryRepo()
		order := createPendingOrder(t, store, "order-1", "pay_1")

		trigger := mocks.NewMockRegistrationTrigger(t)
		trigger.EXPECT().Submit(mock.Anything, order.OrderID).Return(errors.New("registry down")).Once()

		svc := newOrchestrator(store, mocks.NewMockPaymentProcessor(t), trigger, nil)

		// The paid write is durable, the reconcile sweep picks the order up.
		require.NoError(t, svc.HandlePaymentEvent(ctx, "pay_1", ccpayment.StatusConfirmed))

		got, _ := store.GetByID(ctx, order.OrderID)
		assert.Equal(t, entities.StatusPaid, got.Status)
	})
}

func TestOrchestrator_HandlePaymentEvent_ConcurrentDuplicates(t *testing.T) {
	ctx := context.Background()
	store := repo.NewMemoryRepo()
	order := createPendingOrder(t, store, "order-1", "pay_1")

	trigger := mocks.NewMockRegistrationTrigger(t)
	trigger.EXPECT().Submit(mock.Anything, order.OrderID).Return(nil).Once()

	svc := newOrchestrator(store, mocks.NewMockPaymentProcessor(t), trigger, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, svc.HandlePaymentEvent(ctx, "pay_1", ccpayment.StatusConfirmed))
		}()
	}
	wg.Wait()

	got, err := store.GetByID(ctx, order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusPaid, got.Status)
	assert.Equal(t, int64(2), got.Version)
}

func TestOrchestrator_GetOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("terminal order is cached", func(t *testing.T) {
		store := repo.NewMemoryRepo()
		order := createPendingOrder(t, store, "order-1", "pay_1")
		_, err := store.CompareAndUpdate(ctx, order.OrderID, order.Version, func(o *entities.Order) error {
			return o.Transition(entities.StatusExpired)
		})
		require.NoError(t, err)

		c := mocks.NewMockCache(t)
		c.EXPECT().Get(order.OrderID).Return(nil, false).Once()
		c.EXPECT().Set(order.OrderID, mock.Anything).Return().Once()

		svc := newOrchestrator(store, mocks.NewMockPaymentProcessor(t), mocks.NewMockRegistrationTrigger(t), c)

		got, err := svc.GetOrder(ctx, order.OrderID)
		require.NoError(t, err)
		assert.Equal(t, entities.StatusExpired, got.Status)
	})

	t.Run("in-flight order is not cached", func(t *testing.T) {
		store := repo.NewMemoryRepo()
		order := createPendingOrder(t, store, "order-1", "pay_1")

		c := mocks.NewMockCache(t)
		c.EXPECT().Get(order.OrderID).Return(nil, false).Once()

		svc := newOrchestrator(store, mocks.NewMockPaymentProcessor(t), mocks.NewMockRegistrationTrigger(t), c)

		got, err := svc.GetOrder(ctx, order.OrderID)
		require.NoError(t, err)
		assert.Equal(t, entities.StatusPending, got.Status)
	})

	t.Run("cache hit", func(t *testing.T) {
		order := entities.Order{OrderID: "order-1", Status: entities.StatusRegistered}
		data, err := order.Marshal()
		require.NoError(t, err)

		c := mocks.NewMockCache(t)
		c.EXPECT().Get("order-1").Return(data, true).Once()

		svc := newOrchestrator(repo.NewMemoryRepo(), mocks.NewMockPaymentProcessor(t), mocks.NewMockRegistrationTrigger(t), c)

		got, err := svc.GetOrder(ctx, "order-1")
		require.NoError(t, err)
		assert.Equal(t, entities.StatusRegistered, got.Status)
	})

	t.Run("not found", func(t *testing.T) {
		svc := newOrchestrator(repo.NewMemoryRepo(), mocks.NewMockPaymentProcessor(t), mocks.NewMockRegistrationTrigger(t), nil)

		_, err := svc.GetOrder(ctx, "missing")
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}

func TestOrchestrator_PollPayment(t *testing.T) {
	ctx := context.Background()
	store := repo.NewMemoryRepo()
	order := createPendingOrder(t, store, "order-1", "pay_1")

	processor := mocks.NewMockPaymentProcessor(t)
	processor.EXPECT().
		GetStatus(mock.Anything, "pay_1").
		Return(ccpayment.PaymentStatus{PaymentReference: "pay_1", Status: ccpayment.StatusConfirmed}, nil).Once()

	trigger := mocks.NewMockRegistrationTrigger(t)
	trigger.EXPECT().Submit(mock.Anything, order.OrderID).Return(nil).Once()

	svc := newOrchestrator(store, processor, trigger, nil)

	got, err := svc.PollPayment(ctx, order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusPaid, got.Status)
}

func TestOrchestrator_ExpireStale(t *testing.T) {
	ctx := context.Background()
	store := repo.NewMemoryRepo()
	pending := createPendingOrder(t, store, "order-pending", "pay_1")

	paid := createPendingOrder(t, store, "order-paid", "pay_2")
	_, err := store.CompareAndUpdate(ctx, paid.OrderID, paid.Version, func(o *entities.Order) error {
		return o.Transition(entities.StatusPaid)
	})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	svc := service.NewOrchestrator(discardLogger(), store, mocks.NewMockPaymentProcessor(t), mocks.NewMockRegistrationTrigger(t),
		cache.NewLRUCache(100, time.Minute), service.OrchestratorOpts{
			ExpiryWindow:   time.Millisecond,
			ReconcileGrace: time.Hour,
			SweepBatchSize: 10,
		})

	require.NoError(t, svc.ExpireStale(ctx))

	got, _ := store.GetByID(ctx, pending.OrderID)
	assert.Equal(t, entities.StatusExpired, got.Status)

	// Paid orders are untouched by the expiry sweep.
	got, _ = store.GetByID(ctx, paid.OrderID)
	assert.Equal(t, entities.StatusPaid, got.Status)
}

func TestOrchestrator_Reconcile(t *testing.T) {
	ctx := context.Background()
	store := repo.NewMemoryRepo()
	order := createPendingOrder(t, store, "order-stuck", "pay_1")
	_, err := store.CompareAndUpdate(ctx, order.OrderID, order.Version, func(o *entities.Order) error {
		return o.Transition(entities.StatusPaid)
	})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	trigger := mocks.NewMockRegistrationTrigger(t)
	trigger.EXPECT().Submit(mock.Anything, order.OrderID).Return(nil).Once()

	svc := service.NewOrchestrator(discardLogger(), store, mocks.NewMockPaymentProcessor(t), trigger,
		cache.NewLRUCache(100, time.Minute), service.OrchestratorOpts{
			ExpiryWindow:   time.Hour,
			ReconcileGrace: time.Millisecond,
			SweepBatchSize: 10,
		})

	require.NoError(t, svc.Reconcile(ctx))
}
