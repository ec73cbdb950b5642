package request_test

import (
	"fmt"
	"testing"

	"vetpickup/internal/core/domain/model/request"
	"vetpickup/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	assert.Equal(t, 0, int(request.Unknown))
	assert.Equal(t, 1, int(request.Pending))
	assert.Equal(t, 2, int(request.Assigned))
	assert.Equal(t, 3, int(request.Completed))
	assert.Equal(t, 4, int(request.Cancelled))
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range request.Statuses() {
		t.Run(fmt.Sprintf("should validate %s status", status), func(t *testing.T) {
			require.NoError(t, status.Validate())
		})
	}

	t.Run("should reject Unknown and out of range values", func(t *testing.T) {
		for _, status := range []request.Status{request.Unknown, request.Status(99), request.Status(-1)} {
			err := status.Validate()

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Equal(t, "unknown", status.String())
		}
	})
}

func TestParseStatus(t *testing.T) {
	for _, status := range request.Statuses() {
		parsed, err := request.ParseStatus(status.String())

		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	_, err := request.ParseStatus("pendiente")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_Transitions(t *testing.T) {
	type transition func(request.Status) (request.Status, error)

	transitions := map[string]struct {
		apply  transition
		target request.Status
	}{
		"assign":   {request.Status.Assign, request.Assigned},
		"complete": {request.Status.Complete, request.Completed},
		"cancel":   {request.Status.Cancel, request.Cancelled},
	}

	for name, tr := range transitions {
		t.Run(name+" is allowed from active statuses", func(t *testing.T) {
			for _, from := range []request.Status{request.Pending, request.Assigned} {
				to, err := tr.apply(from)

				require.NoError(t, err, from.String())
				assert.Equal(t, tr.target, to)
			}
		})

		t.Run(name+" is rejected from terminal and unknown statuses", func(t *testing.T) {
			for _, from := range []request.Status{request.Completed, request.Cancelled, request.Unknown} {
				to, err := tr.apply(from)

				require.Error(t, err, from.String())
				assert.Equal(t, request.Unknown, to)
				assert.Contains(t, err.Error(), fmt.Sprintf("%s is not a valid status to %s", from, name))
			}
		})
	}
}

func TestStatus_Predicates(t *testing.T) {
	assert.True(t, request.Pending.IsActive())
	assert.True(t, request.Assigned.IsActive())
	assert.False(t, request.Completed.IsActive())
	assert.False(t, request.Cancelled.IsActive())

	assert.True(t, request.Completed.IsTerminal())
	assert.True(t, request.Cancelled.IsTerminal())
	assert.False(t, request.Pending.IsTerminal())
	assert.False(t, request.Unknown.IsTerminal())
}
