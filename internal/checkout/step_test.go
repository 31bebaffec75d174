package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNext_ForwardPath(t *testing.T) {
	step := StepShipping

	step, err := Next(step, EventSubmitShipping)
	require.NoError(t, err)
	assert.Equal(t, StepPayment, step)

	step, err = Next(step, EventSubmitPayment)
	require.NoError(t, err)
	assert.Equal(t, StepReview, step)

	step, err = Next(step, EventCommitSucceeded)
	require.NoError(t, err)
	assert.Equal(t, StepConfirmation, step)
	assert.True(t, step.IsTerminal())
}

func TestNext_NoSkippingSteps(t *testing.T) {
	for _, event := range []Event{EventSubmitPayment, EventCommitSucceeded, EventCommitFailed} {
		step, err := Next(StepShipping, event)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, StepShipping, step, "step must not move on a rejected event")
	}
}

func TestNext_EditAffordances(t *testing.T) {
	step, err := Next(StepPayment, EventEditShipping)
	require.NoError(t, err)
	assert.Equal(t, StepShipping, step)

	step, err = Next(StepReview, EventEditShipping)
	require.NoError(t, err)
	assert.Equal(t, StepShipping, step)

	step, err = Next(StepReview, EventEditPayment)
	require.NoError(t, err)
	assert.Equal(t, StepPayment, step)

	// No edit affordance points at review itself.
	_, err = Next(StepShipping, EventEditPayment)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestNext_ConfirmationIsTerminal(t *testing.T) {
	events := []Event{
		EventSubmitShipping, EventSubmitPayment,
		EventCommitSucceeded, EventCommitFailed,
		EventEditShipping, EventEditPayment,
	}
	for _, event := range events {
		_, err := Next(StepConfirmation, event)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	}
}

func TestNext_FailedIsRetryable(t *testing.T) {
	step, err := Next(StepReview, EventCommitFailed)
	require.NoError(t, err)
	assert.Equal(t, StepFailed, step)

	retried, err := Next(step, EventCommitSucceeded)
	require.NoError(t, err)
	assert.Equal(t, StepConfirmation, retried)

	again, err := Next(step, EventCommitFailed)
	require.NoError(t, err)
	assert.Equal(t, StepFailed, again)
}
