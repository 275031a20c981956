package branch_test

import (
	"testing"

	"cargotrack/internal/core/domain/model/branch"
	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBranch(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		b, err := branch.NewBranch(
			kernel.NewUUID(), "Алматы Центральный", "Алматы", "ул. Абая 10", "+7 727 123 4567", "ALA-1")

		require.NoError(t, err)
		assert.Equal(t, "ALA-1", b.Code())
		assert.Equal(t, "Алматы", b.City())
	})

	t.Run("address_and_phone_optional", func(t *testing.T) {
		_, err := branch.NewBranch(kernel.NewUUID(), "Астана", "Астана", "", "", "AST-1")
		require.NoError(t, err)
	})

	t.Run("required_fields", func(t *testing.T) {
		_, err := branch.NewBranch(kernel.NewUUID(), "", "Алматы", "", "", "ALA-1")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = branch.NewBranch(kernel.NewUUID(), "Алматы Центральный", "", "", "", "ALA-1")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = branch.NewBranch(kernel.NewUUID(), "Алматы Центральный", "Алматы", "", "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var b branch.Branch
		require.ErrorIs(t, b.Validate(), branch.ErrBranchIsNotConstructed)
	})
}
