package entities_test

import (
	"testing"

	"github.com/opencompanybot/registration-service/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrder_Transition(t *testing.T) {
	order := entities.Order{Status: entities.StatusPending}

	require.NoError(t, order.Transition(entities.StatusPaid))
	assert.Equal(t, entities.StatusPaid, order.Status)

	err := order.Transition(entities.StatusExpired)
	assert.ErrorIs(t, err, entities.ErrInvalidTransition)
	// Failed transition must not change the status.
	assert.Equal(t, entities.StatusPaid, order.Status)
}

func TestOrder_MarshalRoundTrip(t *testing.T) {
	order := entities.Order{
		OrderID:          "order-1",
		Status:           entities.StatusRegistered,
		Amount:           decimal.NewFromInt(150),
		Currency:         "USDT",
		PaymentReference: "pay_abc",
		CompanyResult: &entities.CompanyResult{
			CompanyNumber: "12345678",
			Retries:       2,
		},
		Version: 4,
	}

	data, err := order.Marshal()
	require.NoError(t, err)

	var got entities.Order
	require.NoError(t, got.Unmarshal(data))
	assert.Equal(t, order.OrderID, got.OrderID)
	assert.Equal(t, order.Status, got.Status)
	assert.True(t, order.Amount.Equal(got.Amount))
	require.NotNil(t, got.CompanyResult)
	assert.Equal(t, "12345678", got.CompanyResult.CompanyNumber)
	assert.Equal(t, int64(4), got.Version)
}

func TestOrder_UnmarshalInvalid(t *testing.T) {
	var order entities.Order
	err := order.Unmarshal([]byte("broken"))
	assert.ErrorIs(t, err, entities.ErrInvalidOrder)
}
