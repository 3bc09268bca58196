package form

import (
	"context"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

func fillController(t *testing.T, ctx context.Context, c *Controller, data FormData) {
	t.Helper()
	for _, spec := range FieldsFor(c.State().Step) {
		require.NoError(t, c.SetField(ctx, spec.Field, data.Get(spec.Field)))
	}
}

func TestController_FullSession(t *testing.T) {
	ctx := context.Background()
	c := NewController(WithClock(func() time.Time { return fixedTime }))

	_, err := c.Receipt()
	assert.ErrorIs(t, err, ErrNotSubmitted)

	for range 3 {
		fillController(t, ctx, c, validRequest())
		assert.Equal(t, OutcomeMoved, c.Next(ctx))
	}
	assert.Equal(t, StepReview, c.State().Step)

	r, outcome := c.Submit(ctx)
	assert.Equal(t, OutcomeMoved, outcome)
	assert.Equal(t, fixedTime, r.SubmittedAt)
	assert.Equal(t, "**** **** **** 1111", r.CardNumber)

	got, err := c.Receipt()
	require.NoError(t, err)
	assert.Equal(t, r, got)

	c.Reset(ctx)
	assert.Equal(t, New(), c.State())
	_, err = c.Receipt()
	assert.ErrorIs(t, err, ErrNotSubmitted)
}

func TestController_BlockedSubmitHasNoReceipt(t *testing.T) {
	ctx := context.Background()
	c := NewController()

	r, outcome := c.Submit(ctx)
	assert.Equal(t, OutcomeIgnored, outcome)
	assert.Equal(t, Receipt{}, r)
}

func TestController_StateIsACopy(t *testing.T) {
	c := NewController()
	s := c.State()
	s.Errors[FieldCVV] = "x"
	assert.Empty(t, c.State().Errors)
}

func TestController_WithState(t *testing.T) {
	start, err := GoTo(New(), StepPayment)
	require.NoError(t, err)

	c := NewController(WithState(start))
	assert.Equal(t, OutcomeMoved, c.Previous(context.Background()))
	assert.Equal(t, StepProblem, c.State().Step)
}

func TestController_Validate(t *testing.T) {
	validationFailuresTotal.Reset()
	ctx := context.Background()
	c := NewController()

	assert.False(t, c.Validate(ctx))
	assert.Len(t, c.State().Errors, 3)
	assert.Equal(t, float64(1), testutil.ToFloat64(validationFailuresTotal.WithLabelValues(string(FieldCustomerName))))

	fillController(t, ctx, c, validRequest())
	assert.True(t, c.Validate(ctx))
	assert.Empty(t, c.State().Errors)
}

func TestController_SetFieldErrors(t *testing.T) {
	ctx := context.Background()
	c := NewController()
	assert.ErrorIs(t, c.SetField(ctx, "bogus", "x"), ErrUnknownField)
}

func TestController_LogsMaskedSubmission(t *testing.T) {
	var lines []string
	logger := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{})
	ctx := logr.NewContext(context.Background(), logger)

	c := NewController(WithState(atReview(t)))
	_, outcome := c.Submit(ctx)
	require.Equal(t, OutcomeMoved, outcome)

	require.NotEmpty(t, lines)
	last := lines[len(lines)-1]
	assert.Contains(t, last, "service request submitted")
	assert.Contains(t, last, "**** **** **** 1111")
	assert.NotContains(t, last, "4111111111111111")
	for _, l := range lines {
		assert.NotContains(t, l, `"cvv"`)
	}
}

func TestController_RecordsTransitions(t *testing.T) {
	transitionsTotal.Reset()
	ctx := context.Background()
	c := NewController()

	c.Next(ctx)
	c.Previous(ctx)
	fillController(t, ctx, c, validRequest())
	c.Next(ctx)

	assert.Equal(t, float64(1), testutil.ToFloat64(transitionsTotal.WithLabelValues("next", "blocked")))
	assert.Equal(t, float64(1), testutil.ToFloat64(transitionsTotal.WithLabelValues("previous", "ignored")))
	assert.Equal(t, float64(1), testutil.ToFloat64(transitionsTotal.WithLabelValues("next", "moved")))
}
