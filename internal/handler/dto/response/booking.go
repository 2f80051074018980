package response

import (
	"refreshing-booking/internal/domain/availability"
	"refreshing-booking/internal/domain/booking"
	"refreshing-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type SendEmailResponse struct {
	OK bool `json:"ok" example:"true"`
}

type DraftState struct {
	Name              string `json:"name"`
	Phone             string `json:"phone"`
	Email             string `json:"email"`
	Address           string `json:"address"`
	ServiceType       string `json:"serviceType"`
	Frequency         string `json:"frequency"`
	CleaningFrequency string `json:"cleaningFrequency"`
	SquareMeters      string `json:"squareMeters"`
	Windows           string `json:"windows"`
	WindowType        string `json:"windowType"`
	Step              int    `json:"step"`
}

type QuoteResponse struct {
	Hours         float64 `json:"hours" example:"2.5"`
	HourlyRate    int     `json:"hourlyRate" example:"350"`
	PerVisitPrice int     `json:"perVisitPrice" example:"875"`
	Monthly       bool    `json:"monthly"`
	Price         int     `json:"price" example:"875"`
	Label         string  `json:"label" example:"875 kr"`
}

type ValidationResponse struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}

type DraftResponse struct {
	Draft DraftState `json:"draft"`
	ValidationResponse
	Quote QuoteResponse `json:"quote"`
}

// SubmissionResponse uses the same keys as the send-email request body so
// the client can post it unchanged.
type SubmissionResponse struct {
	CustomerEmail   string `json:"customer_email"`
	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerAddress string `json:"customer_address"`
	ServiceType     string `json:"service_type"`
	Frequency       string `json:"frequency"`
	SquareMeters    string `json:"square_meters"`
	Windows         string `json:"windows"`
	TotalPrice      string `json:"total_price"`
	BookingDetails  string `json:"booking_details"`
}

type AvailabilityResponse struct {
	Zip       string `json:"zip" example:"114 55"`
	Checked   bool   `json:"checked"`
	Available bool   `json:"available"`
	Message   string `json:"message,omitempty" example:"Vi kan städa idag!"`
}

func FromValidation(res booking.ValidationResult) ValidationResponse {
	errs := make(map[string]string, len(res.Errors))
	for f, msg := range res.Errors {
		errs[string(f)] = msg
	}
	return ValidationResponse{Valid: res.Valid, Errors: errs}
}

func FromQuote(q booking.Quote) QuoteResponse {
	return QuoteResponse{
		Hours:         q.Hours(),
		HourlyRate:    q.HourlyRate,
		PerVisitPrice: q.SinglePrice,
		Monthly:       q.Monthly,
		Price:         q.Price,
		Label:         q.Label(),
	}
}

func FromDraftView(v queries.DraftView) (DraftResponse, error) {
	var state DraftState
	if err := copier.Copy(&state, &v.Draft); err != nil {
		return DraftResponse{}, err
	}
	return DraftResponse{
		Draft:              state,
		ValidationResponse: FromValidation(v.Validation),
		Quote:              FromQuote(v.Quote),
	}, nil
}

func FromSubmission(sub booking.Submission) (SubmissionResponse, error) {
	var resp SubmissionResponse
	if err := copier.Copy(&resp, &sub); err != nil {
		return SubmissionResponse{}, err
	}
	return resp, nil
}

func FromAvailability(r availability.Result) AvailabilityResponse {
	return AvailabilityResponse{
		Zip:       r.Zip,
		Checked:   r.Checked,
		Available: r.Available,
		Message:   r.Message,
	}
}
