package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/opencompanybot/registration-service/internal/companieshouse"
	"github.com/opencompanybot/registration-service/internal/entities"
	"github.com/opencompanybot/registration-service/internal/repo"
	mocks "github.com/opencompanybot/registration-service/internal/service/mocks"
	"github.com/opencompanybot/registration-service/pkg/cache"
	"github.com/opencompanybot/registration-service/pkg/utils"
)

// Counters are process-global, so assertions are deltas around the call.

func TestWorkflowMetrics_RegistrationOutcome(t *testing.T) {
	ctx := context.Background()
	store := repo.NewMemoryRepo()

	order, err := store.Create(ctx, entities.Order{OrderID: "order-m1", PaymentReference: "pay_m1"})
	require.NoError(t, err)
	order, err = store.CompareAndUpdate(ctx, order.OrderID, order.Version, func(o *entities.Order) error {
		return o.Transition(entities.StatusPaid)
	})
	require.NoError(t, err)

	registry := mocks.NewMockRegistryClient(t)
	registry.EXPECT().Incorporate(mock.Anything, mock.Anything).
		Return(companieshouse.IncorporationResult{}, companieshouse.ErrTimeout).Times(2)
	registry.EXPECT().Incorporate(mock.Anything, mock.Anything).
		Return(companieshouse.IncorporationResult{CompanyNumber: "87654321", Status: "active"}, nil).Once()

	succeededBefore := testutil.ToFloat64(registrationsSucceeded)
	failedBefore := testutil.ToFloat64(registrationsFailed)
	retriesBefore := testutil.ToFloat64(registryRetries)

	registrar := NewRegistrar(slog.New(slog.NewTextHandler(io.Discard, nil)), store, registry, utils.RetryConfig{
		MaxAttempts:  4,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2,
	})
	require.NoError(t, registrar.Submit(ctx, order.OrderID))

	assert.Equal(t, succeededBefore+1, testutil.ToFloat64(registrationsSucceeded))
	assert.Equal(t, failedBefore, testutil.ToFloat64(registrationsFailed))
	assert.Equal(t, retriesBefore+2, testutil.ToFloat64(registryRetries))
}

func TestWorkflowMetrics_ExpiredOrders(t *testing.T) {
	ctx := context.Background()
	store := repo.NewMemoryRepo()

	_, err := store.Create(ctx, entities.Order{OrderID: "order-m2", PaymentReference: "pay_m2"})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	expiredBefore := testutil.ToFloat64(ordersExpired)

	svc := NewOrchestrator(slog.New(slog.NewTextHandler(io.Discard, nil)), store,
		mocks.NewMockPaymentProcessor(t), mocks.NewMockRegistrationTrigger(t),
		cache.NewLRUCache(10, time.Minute), OrchestratorOpts{
			ExpiryWindow:   time.Millisecond,
			ReconcileGrace: time.Hour,
			SweepBatchSize: 10,
		})
	require.NoError(t, svc.ExpireStale(ctx))

	assert.Equal(t, expiredBefore+1, testutil.ToFloat64(ordersExpired))
}
