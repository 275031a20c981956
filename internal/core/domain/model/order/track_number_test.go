package order_test

import (
	"strings"
	"testing"

	"cargotrack/internal/core/domain/model/order"
	"cargotrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackNumber(t *testing.T) {
	t.Run("normalizes_to_uppercase_and_trims", func(t *testing.T) {
		tn, err := order.NewTrackNumber("  yt7788990011cn \n")

		require.NoError(t, err)
		assert.Equal(t, "YT7788990011CN", tn.String())
	})

	t.Run("empty_is_required", func(t *testing.T) {
		_, err := order.NewTrackNumber("   ")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("too_short", func(t *testing.T) {
		_, err := order.NewTrackNumber("AB123")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("too_long", func(t *testing.T) {
		_, err := order.NewTrackNumber(strings.Repeat("A", 61))
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("boundary_lengths_accepted", func(t *testing.T) {
		for _, n := range []int{6, 60} {
			_, err := order.NewTrackNumber(strings.Repeat("A", n))
			require.NoError(t, err, "length %d", n)
		}
	})
}

func TestTrackNumber_Validate_ZeroValue(t *testing.T) {
	var tn order.TrackNumber

	require.ErrorIs(t, tn.Validate(), errs.ErrValueIsRequired)
}
