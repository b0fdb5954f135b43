package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	t.Run("PendingCanMoveToQuoteStates", func(t *testing.T) {
		assert.True(t, CanTransition(StatusPending, StatusAwaitingPayment))
		assert.True(t, CanTransition(StatusPending, StatusRejected))
		assert.True(t, CanTransition(StatusPending, StatusEscalated))
		assert.False(t, CanTransition(StatusPending, StatusPaid))
		assert.False(t, CanTransition(StatusPending, StatusConverted))
	})

	t.Run("AwaitingPaymentOutcomes", func(t *testing.T) {
		assert.True(t, CanTransition(StatusAwaitingPayment, StatusPaid))
		assert.True(t, CanTransition(StatusAwaitingPayment, StatusRejected))
		assert.True(t, CanTransition(StatusAwaitingPayment, StatusEscalated))
		assert.False(t, CanTransition(StatusAwaitingPayment, StatusPending))
		assert.False(t, CanTransition(StatusAwaitingPayment, StatusConverted))
	})

	t.Run("EscalatedStaysWorkable", func(t *testing.T) {
		assert.True(t, CanTransition(StatusEscalated, StatusAwaitingPayment))
		assert.True(t, CanTransition(StatusEscalated, StatusRejected))
	})

	t.Run("PaidOnlyConverts", func(t *testing.T) {
		assert.True(t, CanTransition(StatusPaid, StatusConverted))
		assert.False(t, CanTransition(StatusPaid, StatusRejected))
		assert.False(t, CanTransition(StatusPaid, StatusAwaitingPayment))
	})

	t.Run("TerminalStatesGoNowhere", func(t *testing.T) {
		for _, to := range AllStatuses {
			assert.False(t, CanTransition(StatusRejected, to), "rejected -> %s", to)
			assert.False(t, CanTransition(StatusConverted, to), "converted -> %s", to)
		}
	})
}

func TestStatusFlags(t *testing.T) {
	t.Run("Terminal", func(t *testing.T) {
		assert.True(t, StatusRejected.IsTerminal())
		assert.True(t, StatusConverted.IsTerminal())
		assert.False(t, StatusPaid.IsTerminal())
		assert.False(t, StatusPending.IsTerminal())
	})

	t.Run("SendActionsLocked", func(t *testing.T) {
		assert.True(t, StatusPaid.SendActionsLocked())
		assert.True(t, StatusConverted.SendActionsLocked())
		assert.True(t, StatusRejected.SendActionsLocked())
		assert.False(t, StatusPending.SendActionsLocked())
		assert.False(t, StatusAwaitingPayment.SendActionsLocked())
		assert.False(t, StatusEscalated.SendActionsLocked())
	})
}
