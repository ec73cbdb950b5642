package kernel_test

import (
	"testing"

	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestKnowable(t *testing.T) {
	t.Run("known value", func(t *testing.T) {
		email := kernel.Known("vet@clinic.cl")

		value, ok := email.Value()
		assert.True(t, ok)
		assert.Equal(t, "vet@clinic.cl", value)
		assert.True(t, email.IsKnown())
		assert.False(t, email.IsUnknown())
		assert.True(t, email.IsSettled())
		assert.NoError(t, email.Validate("email"))
		assert.Equal(t, "vet@clinic.cl", email.String())
	})

	t.Run("unknown value", func(t *testing.T) {
		email := kernel.Unknown[string]()

		value, ok := email.Value()
		assert.False(t, ok)
		assert.Empty(t, value)
		assert.False(t, email.IsKnown())
		assert.True(t, email.IsUnknown())
		assert.True(t, email.IsSettled())
		assert.NoError(t, email.Validate("email"))
		assert.Equal(t, "n/a", email.ValueOr("n/a"))
	})

	t.Run("zero value is unsettled", func(t *testing.T) {
		var address kernel.Knowable[string]

		assert.False(t, address.IsSettled())
		err := address.Validate("address")
		assert.ErrorIs(t, err, errs.ErrInvariantViolated)
		assert.EqualError(t, err, "invariant violated: address must be given or flagged as unknown")
		assert.Equal(t, "<unsettled>", address.String())
	})

	t.Run("known empty string is still known", func(t *testing.T) {
		k := kernel.Known("")

		assert.True(t, k.IsKnown())
		assert.Equal(t, "", k.ValueOr("fallback"))
	})
}
