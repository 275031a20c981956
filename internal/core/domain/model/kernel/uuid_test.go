package kernel_test

import (
	"testing"

	"cargotrack/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	a := kernel.NewUUID()
	b := kernel.NewUUID()

	require.NoError(t, a.Validate())
	require.NoError(t, b.Validate())
	assert.False(t, a.IsEqual(b))
}

func TestUUIDFromString(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")

		require.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
	})

	t.Run("invalid_format", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")
		require.Error(t, err)
	})

	t.Run("nil_uuid_rejected", func(t *testing.T) {
		_, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")
		require.Error(t, err)
	})
}

func TestUUIDFromBytes(t *testing.T) {
	original := kernel.NewUUID()
	raw := original.Bytes()

	restored, err := kernel.UUIDFromBytes(raw[:])

	require.NoError(t, err)
	assert.True(t, original.IsEqual(restored))
}

func TestUUID_Validate_ZeroValue(t *testing.T) {
	var id kernel.UUID

	require.ErrorIs(t, id.Validate(), kernel.ErrUUIDIsNotConstructed)
}
