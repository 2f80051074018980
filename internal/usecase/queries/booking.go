package queries

import (
	"context"

	"refreshing-booking/internal/domain/availability"
	"refreshing-booking/internal/domain/booking"
	"refreshing-booking/internal/pkg/clock"
	"refreshing-booking/internal/pkg/errs"
)

var ErrInvalidStep = errs.New("step must be between 1 and 4")

// DraftView is a draft together with its derived state.
type DraftView struct {
	Draft      booking.Draft
	Validation booking.ValidationResult
	Quote      booking.Quote
}

type SubmissionView struct {
	Submission booking.Submission
	Validation booking.ValidationResult
}

type BookingQueries interface {
	NewDraft(ctx context.Context, service string) DraftView
	Validate(ctx context.Context, step int, d booking.Draft) (booking.ValidationResult, error)
	Advance(ctx context.Context, d booking.Draft) DraftView
	Retreat(ctx context.Context, d booking.Draft) DraftView
	Quote(ctx context.Context, d booking.Draft) booking.Quote
	Submission(ctx context.Context, d booking.Draft) SubmissionView
	Availability(ctx context.Context, zip string) availability.Result
}

type bookingQueriesImpl struct {
	clock clock.Clock
}

func NewBookingQueries(clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{clock: clk}
}

func (q *bookingQueriesImpl) NewDraft(ctx context.Context, service string) DraftView {
	d := booking.NewDraft(service)
	return DraftView{
		Draft:      d,
		Validation: booking.ValidationResult{Valid: true, Errors: map[booking.Field]string{}},
		Quote:      booking.CalculateQuote(d),
	}
}

func (q *bookingQueriesImpl) Validate(ctx context.Context, step int, d booking.Draft) (booking.ValidationResult, error) {
	if step < booking.FirstStep || step > booking.LastStep {
		return booking.ValidationResult{}, errs.Mark(ErrInvalidStep, errs.ErrValidation)
	}
	return booking.Validate(step, d), nil
}

func (q *bookingQueriesImpl) Advance(ctx context.Context, d booking.Draft) DraftView {
	next, res := d.Advance()
	return DraftView{Draft: next, Validation: res, Quote: booking.CalculateQuote(next)}
}

func (q *bookingQueriesImpl) Retreat(ctx context.Context, d booking.Draft) DraftView {
	prev := d.Retreat()
	return DraftView{
		Draft:      prev,
		Validation: booking.ValidationResult{Valid: true, Errors: map[booking.Field]string{}},
		Quote:      booking.CalculateQuote(prev),
	}
}

func (q *bookingQueriesImpl) Quote(ctx context.Context, d booking.Draft) booking.Quote {
	return booking.CalculateQuote(d)
}

func (q *bookingQueriesImpl) Submission(ctx context.Context, d booking.Draft) SubmissionView {
	sub, res := booking.BuildSubmission(d)
	return SubmissionView{Submission: sub, Validation: res}
}

// Availability evaluates the zip rule against the business's local time.
func (q *bookingQueriesImpl) Availability(ctx context.Context, zip string) availability.Result {
	return availability.Check(zip, q.clock.Now())
}
