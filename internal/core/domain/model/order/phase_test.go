package order_test

import (
	"testing"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryPhase_Claim(t *testing.T) {
	t.Run("should move unassigned to processing", func(t *testing.T) {
		next, err := order.PhaseUnassigned.Claim()

		require.NoError(t, err)
		assert.Equal(t, order.PhaseProcessing, next)
	})

	t.Run("should reject claiming a processing order", func(t *testing.T) {
		_, err := order.PhaseProcessing.Claim()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("should reject claiming a completed order", func(t *testing.T) {
		_, err := order.PhaseCompleted.Claim()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestDeliveryPhase_Complete(t *testing.T) {
	t.Run("should move processing to completed", func(t *testing.T) {
		next, err := order.PhaseProcessing.Complete()

		require.NoError(t, err)
		assert.Equal(t, order.PhaseCompleted, next)
	})

	t.Run("should reject completing an unclaimed order", func(t *testing.T) {
		_, err := order.PhaseUnassigned.Complete()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("should reject completing twice", func(t *testing.T) {
		_, err := order.PhaseCompleted.Complete()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestDeliveryPhase_String(t *testing.T) {
	t.Run("should use the English wire vocabulary", func(t *testing.T) {
		assert.Equal(t, "unassigned", order.PhaseUnassigned.String())
		assert.Equal(t, "processing", order.PhaseProcessing.String())
		assert.Equal(t, "completed", order.PhaseCompleted.String())
	})
}

func TestPaymentMethod(t *testing.T) {
	t.Run("should parse wire values", func(t *testing.T) {
		cash, err := order.PaymentMethodFromString("cash")
		require.NoError(t, err)
		assert.Equal(t, order.PaymentCash, cash)

		transfer, err := order.PaymentMethodFromString("transfer")
		require.NoError(t, err)
		assert.Equal(t, order.PaymentTransfer, transfer)
	})

	t.Run("should reject unknown wire value", func(t *testing.T) {
		_, err := order.PaymentMethodFromString("credit")

		require.Error(t, err)
	})

	t.Run("should derive the initial status", func(t *testing.T) {
		assert.Equal(t, order.Pending, order.PaymentCash.InitialStatus())
		assert.Equal(t, order.AwaitingPayment, order.PaymentTransfer.InitialStatus())
	})
}
