//go:build unit || e2e

package builder

import (
	"refreshing-booking/internal/domain/booking"
	reqdto "refreshing-booking/internal/handler/dto/request"
)

// BookingBuilder holds a complete, valid one-time basic cleaning booking.
type BookingBuilder struct {
	Name              string
	Phone             string
	Email             string
	Address           string
	ServiceType       booking.ServiceType
	Frequency         booking.Frequency
	CleaningFrequency booking.Cadence
	SquareMeters      string
	Windows           string
	WindowType        booking.WindowType
	Step              int
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		Name:         "Anna Svensson",
		Phone:        "0701234567",
		Email:        "anna@example.se",
		Address:      "Storgatan 12",
		ServiceType:  booking.ServiceBasic,
		Frequency:    booking.FrequencyOneTime,
		SquareMeters: "80",
		Step:         booking.LastStep,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) AsWindows(count string, wt booking.WindowType) *BookingBuilder {
	b.ServiceType = booking.ServiceWindows
	b.Frequency = booking.FrequencyOneTime
	b.CleaningFrequency = ""
	b.SquareMeters = ""
	b.Windows = count
	b.WindowType = wt
	return b
}

func (b *BookingBuilder) AsRegular(c booking.Cadence) *BookingBuilder {
	b.Frequency = booking.FrequencyRegular
	b.CleaningFrequency = c
	return b
}

// Build methods
func (b *BookingBuilder) BuildDraft() booking.Draft {
	return booking.Draft{
		Name:              b.Name,
		Phone:             b.Phone,
		Email:             b.Email,
		Address:           b.Address,
		ServiceType:       b.ServiceType,
		Frequency:         b.Frequency,
		CleaningFrequency: b.CleaningFrequency,
		SquareMeters:      b.SquareMeters,
		Windows:           b.Windows,
		WindowType:        b.WindowType,
		Step:              b.Step,
	}
}

func (b *BookingBuilder) BuildDraftRequest() reqdto.DraftRequest {
	return reqdto.DraftRequest{
		Name:              b.Name,
		Phone:             b.Phone,
		Email:             b.Email,
		Address:           b.Address,
		ServiceType:       string(b.ServiceType),
		Frequency:         string(b.Frequency),
		CleaningFrequency: string(b.CleaningFrequency),
		SquareMeters:      reqdto.FlexString(b.SquareMeters),
		Windows:           reqdto.FlexString(b.Windows),
		WindowType:        string(b.WindowType),
		Step:              b.Step,
	}
}

// BuildSubmission panics on an invalid builder; tests that need an invalid
// submission should mutate the result instead.
func (b *BookingBuilder) BuildSubmission() booking.Submission {
	sub, res := booking.BuildSubmission(b.BuildDraft())
	if !res.Valid {
		panic("BookingBuilder: draft does not validate")
	}
	return sub
}

func (b *BookingBuilder) BuildSendEmailRequest() reqdto.SendEmailRequest {
	sub := b.BuildSubmission()
	return reqdto.SendEmailRequest{
		CustomerEmail:   sub.CustomerEmail,
		CustomerName:    sub.CustomerName,
		CustomerPhone:   sub.CustomerPhone,
		CustomerAddress: sub.CustomerAddress,
		ServiceType:     sub.ServiceType,
		Frequency:       sub.Frequency,
		SquareMeters:    reqdto.FlexString(sub.SquareMeters),
		Windows:         reqdto.FlexString(sub.Windows),
		TotalPrice:      reqdto.FlexString(sub.TotalPrice),
		BookingDetails:  sub.BookingDetails,
	}
}
