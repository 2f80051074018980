package request

import (
	"strings"

	"refreshing-booking/internal/domain/booking"

	"github.com/jinzhu/copier"
)

// SendEmailRequest carries display strings only. Validation happens in the
// usecase so messages come back in Swedish and in a fixed order.
type SendEmailRequest struct {
	CustomerEmail   string     `json:"customer_email" example:"anna@example.se"`
	CustomerName    string     `json:"customer_name" example:"Anna Svensson"`
	CustomerPhone   string     `json:"customer_phone" example:"0701234567"`
	CustomerAddress string     `json:"customer_address" example:"Storgatan 12"`
	ServiceType     string     `json:"service_type" example:"Grundstädning"`
	Frequency       string     `json:"frequency" example:"Engångsstädning (350kr/tim)"`
	SquareMeters    FlexString `json:"square_meters" swaggertype:"string" example:"50"`
	Windows         FlexString `json:"windows" swaggertype:"string"`
	TotalPrice      FlexString `json:"total_price" swaggertype:"string" example:"875 kr"`
	BookingDetails  string     `json:"booking_details"`
}

func (r SendEmailRequest) ToDomain() (booking.Submission, error) {
	var sub booking.Submission
	if err := copier.Copy(&sub, &r); err != nil {
		return booking.Submission{}, err
	}
	sub.CustomerEmail = strings.TrimSpace(sub.CustomerEmail)
	sub.CustomerName = strings.TrimSpace(sub.CustomerName)
	return sub, nil
}

type DraftRequest struct {
	Name              string     `json:"name"`
	Phone             string     `json:"phone"`
	Email             string     `json:"email"`
	Address           string     `json:"address"`
	ServiceType       string     `json:"serviceType" enums:"grundstadning,storstadning,fonsterputs"`
	Frequency         string     `json:"frequency" enums:"oneTime,regular"`
	CleaningFrequency string     `json:"cleaningFrequency" enums:"weekly,biweekly,monthly"`
	SquareMeters      FlexString `json:"squareMeters" swaggertype:"string"`
	Windows           FlexString `json:"windows" swaggertype:"string"`
	WindowType        string     `json:"windowType" enums:"single,double"`
	Step              int        `json:"step" example:"1"`
}

// ToDomain maps the form onto a draft. Window cleaning is normalised to a
// one-time booking the same way selecting it in the form would.
func (r DraftRequest) ToDomain() (booking.Draft, error) {
	var d booking.Draft
	if err := copier.Copy(&d, &r); err != nil {
		return booking.Draft{}, err
	}
	return d.SelectService(d.ServiceType), nil
}
