package order_test

import (
	"testing"

	"cargotrack/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("all_ten_statuses_are_valid", func(t *testing.T) {
		for _, s := range order.AllStatuses() {
			require.NoError(t, s.Validate(), "status %s", s)
		}
		assert.Len(t, order.AllStatuses(), 10)
	})

	t.Run("unknown_status_fails_fast", func(t *testing.T) {
		for _, s := range []order.Status{"", "delivered", "CREATED", "arrived-cn"} {
			err := s.Validate()
			require.ErrorIs(t, err, order.ErrUnknownStatus, "status %q", s)
		}
	})
}

func TestStatus_CanTransitionTo(t *testing.T) {
	pipeline := []order.Status{
		order.Created, order.ArrivedCN, order.Packed, order.SentToKZ,
		order.InTransit, order.ArrivedBranch, order.ReadyForPickup, order.Issued,
	}

	t.Run("linear_pipeline_edges_are_legal", func(t *testing.T) {
		for i := 0; i < len(pipeline)-1; i++ {
			assert.True(t, pipeline[i].CanTransitionTo(pipeline[i+1]),
				"%s -> %s", pipeline[i], pipeline[i+1])
		}
	})

	t.Run("every_other_pair_is_illegal", func(t *testing.T) {
		legal := map[order.Status]order.Status{
			order.Created:        order.ArrivedCN,
			order.ArrivedCN:      order.Packed,
			order.Packed:         order.SentToKZ,
			order.SentToKZ:       order.InTransit,
			order.InTransit:      order.ArrivedBranch,
			order.ArrivedBranch:  order.ReadyForPickup,
			order.ReadyForPickup: order.Issued,
		}
		for _, from := range order.AllStatuses() {
			for _, to := range order.AllStatuses() {
				if legal[from] == to {
					continue
				}
				assert.False(t, from.CanTransitionTo(to), "%s -> %s must be illegal", from, to)
			}
		}
	})

	t.Run("no_skipping_pipeline_steps", func(t *testing.T) {
		assert.False(t, order.Created.CanTransitionTo(order.Packed))
		assert.False(t, order.Packed.CanTransitionTo(order.InTransit))
		assert.False(t, order.InTransit.CanTransitionTo(order.Issued))
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	terminal := map[order.Status]bool{
		order.Issued:    true,
		order.Problem:   true,
		order.Cancelled: true,
	}

	for _, s := range order.AllStatuses() {
		assert.Equal(t, terminal[s], s.IsTerminal(), "status %s", s)
		if terminal[s] {
			assert.Empty(t, s.NextStatuses(), "terminal status %s has outgoing edges", s)
		} else {
			assert.Len(t, s.NextStatuses(), 1, "pipeline status %s has exactly one successor", s)
		}
	}

	t.Run("unknown_status_is_not_terminal", func(t *testing.T) {
		assert.False(t, order.Status("bogus").IsTerminal())
	})
}

func TestStatus_DisplayName(t *testing.T) {
	assert.Equal(t, "Создан", order.Created.DisplayName())
	assert.Equal(t, "Выдан клиенту", order.Issued.DisplayName())
	assert.Equal(t, "Проблема", order.Problem.DisplayName())
	assert.Equal(t, "bogus", order.Status("bogus").DisplayName())
}
