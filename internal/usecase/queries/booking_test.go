//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"refreshing-booking/internal/domain/availability"
	"refreshing-booking/internal/domain/booking"
	"refreshing-booking/internal/pkg/clock"
	"refreshing-booking/internal/pkg/errs"
	"refreshing-booking/internal/usecase/queries"
	"refreshing-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQueries(now time.Time) (queries.BookingQueries, *clock.MockClock) {
	clk := clock.NewMockClock(now)
	return queries.NewBookingQueries(clk), clk
}

func TestBookingQueries(t *testing.T) {
	ctx := context.Background()
	q, clk := newQueries(time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))

	t.Run("new draft", func(t *testing.T) {
		view := q.NewDraft(ctx, "fonsterputs")
		assert.Equal(t, 1, view.Draft.Step)
		assert.Equal(t, booking.ServiceWindows, view.Draft.ServiceType)
		assert.True(t, view.Validation.Valid)
		assert.Equal(t, 0, view.Quote.Price)
	})

	t.Run("validate rejects steps outside 1-4", func(t *testing.T) {
		for _, step := range []int{0, 5, -1} {
			_, err := q.Validate(ctx, step, booking.Draft{})
			require.Error(t, err)
			assert.ErrorIs(t, err, queries.ErrInvalidStep)
			assert.True(t, errs.Is(err, errs.ErrValidation))
		}
	})

	t.Run("validate a step", func(t *testing.T) {
		res, err := q.Validate(ctx, 2, booking.Draft{})
		require.NoError(t, err)
		assert.Equal(t, map[booking.Field]string{booking.FieldServiceType: "Välj en tjänst"}, res.Errors)
	})

	t.Run("advance returns the quote of the new draft", func(t *testing.T) {
		d := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Step = 3 }).BuildDraft()
		view := q.Advance(ctx, d)
		assert.Equal(t, 4, view.Draft.Step)
		assert.True(t, view.Validation.Valid)
		assert.Equal(t, 700, view.Quote.Price)
	})

	t.Run("retreat", func(t *testing.T) {
		view := q.Retreat(ctx, booking.Draft{Step: 2})
		assert.Equal(t, 1, view.Draft.Step)
		assert.True(t, view.Validation.Valid)
	})

	t.Run("quote", func(t *testing.T) {
		d := builder.NewBookingBuilder().AsWindows("10", booking.WindowDouble).BuildDraft()
		assert.Equal(t, 2100, q.Quote(ctx, d).Price)
	})

	t.Run("submission", func(t *testing.T) {
		view := q.Submission(ctx, builder.NewBookingBuilder().BuildDraft())
		assert.True(t, view.Validation.Valid)
		assert.Equal(t, "700 kr", view.Submission.TotalPrice)

		view = q.Submission(ctx, booking.Reset())
		assert.False(t, view.Validation.Valid)
	})

	t.Run("availability follows the clock", func(t *testing.T) {
		assert.Equal(t, availability.MessageToday, q.Availability(ctx, "11455").Message)

		clk.Set(time.Date(2025, 6, 6, 9, 0, 0, 0, time.UTC))
		assert.Equal(t, availability.MessageMonday, q.Availability(ctx, "11455").Message)
	})
}
