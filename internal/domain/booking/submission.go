package booking

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"refreshing-booking/internal/pkg/errs"
)

var (
	ErrInvalidEmail  = errs.New("invalid customer email")
	ErrMissingFields = errs.New("missing required booking fields")
)

// server side check, deliberately looser than the form's
var submissionEmailPattern = regexp.MustCompile(`.+@.+\..+`)

// Submission is the flattened, human-readable booking sent to the mail
// endpoint. It is built once and never changed.
type Submission struct {
	CustomerEmail   string
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	ServiceType     string
	Frequency       string
	SquareMeters    string
	Windows         string
	TotalPrice      string
	BookingDetails  string
}

// Validate re-checks a submission without trusting the form. The email is
// checked first so a bad address is reported even when other fields are
// missing.
func (s Submission) Validate() error {
	if s.CustomerEmail == "" || !submissionEmailPattern.MatchString(s.CustomerEmail) {
		return ErrInvalidEmail
	}
	if s.CustomerName == "" || s.ServiceType == "" || s.Frequency == "" ||
		(s.Windows == "" && s.SquareMeters == "") {
		return ErrMissingFields
	}
	return nil
}

// Summary is the plain-text block shared by both emails.
func (s Submission) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Kund: %s\n", s.CustomerName)
	fmt.Fprintf(&b, "Telefon: %s\n", s.CustomerPhone)
	fmt.Fprintf(&b, "E-post: %s\n", s.CustomerEmail)
	fmt.Fprintf(&b, "Adress: %s\n", s.CustomerAddress)
	fmt.Fprintf(&b, "Tjänst: %s\n", s.ServiceType)
	fmt.Fprintf(&b, "Frekvens: %s\n", s.Frequency)
	if s.SquareMeters != "" {
		fmt.Fprintf(&b, "Kvadratmeter: %s\n", s.SquareMeters)
	}
	if s.Windows != "" {
		fmt.Fprintf(&b, "Antal fönster: %s\n", s.Windows)
	}
	fmt.Fprintf(&b, "Totalt pris: %s\n", s.TotalPrice)
	return b.String()
}

// ValidateAll runs every step gate and merges the errors.
func ValidateAll(d Draft) ValidationResult {
	merged := map[Field]string{}
	for step := FirstStep; step <= LastStep; step++ {
		for f, msg := range Validate(step, d).Errors {
			merged[f] = msg
		}
	}
	return ValidationResult{Valid: len(merged) == 0, Errors: merged}
}

// BuildSubmission snapshots a completed draft into the payload posted to the
// mail endpoint.
func BuildSubmission(d Draft) (Submission, ValidationResult) {
	res := ValidateAll(d)
	if !res.Valid {
		return Submission{}, res
	}

	q := CalculateQuote(d)
	s := Submission{
		CustomerEmail:   strings.TrimSpace(d.Email),
		CustomerName:    strings.TrimSpace(d.Name),
		CustomerPhone:   strings.TrimSpace(d.Phone),
		CustomerAddress: strings.TrimSpace(d.Address),
		ServiceType:     d.ServiceType.DisplayName(),
		Frequency:       FrequencyText(d),
		TotalPrice:      q.Label(),
	}
	if d.ServiceType == ServiceWindows {
		s.Windows = strings.TrimSpace(d.Windows)
	} else {
		s.SquareMeters = strings.TrimSpace(d.SquareMeters)
	}
	s.BookingDetails = bookingDetails(d, s, q)
	return s, res
}

// FrequencyText describes frequency and rate as shown to the customer.
func FrequencyText(d Draft) string {
	rate := HourlyRate(d.ServiceType, d.Frequency)
	if d.ServiceType == ServiceWindows {
		return fmt.Sprintf("Endast engångsservice (%dkr/tim)", rate)
	}
	if d.Frequency != FrequencyRegular {
		return fmt.Sprintf("Engångsstädning (%dkr/tim)", rate)
	}
	text := fmt.Sprintf("Regelbunden städning (%dkr/tim)", rate)
	if d.IsRecurring() {
		text += ", " + d.CleaningFrequency.DisplayName()
	}
	return text
}

func bookingDetails(d Draft, s Submission, q Quote) string {
	var b strings.Builder
	b.WriteString("Bokningsdetaljer\n")
	if d.ServiceType == ServiceWindows {
		fmt.Fprintf(&b, "Antal fönster: %s\n", s.Windows)
		fmt.Fprintf(&b, "Fönstertyp: %s\n", d.WindowType.DisplayName())
	} else {
		fmt.Fprintf(&b, "Kvadratmeter: %s kvm\n", s.SquareMeters)
	}
	fmt.Fprintf(&b, "Uppskattad tid: %s timmar\n", formatHours(q.Hours()))
	if q.Monthly {
		fmt.Fprintf(&b, "Pris per tillfälle: %d kr\n", q.SinglePrice)
		fmt.Fprintf(&b, "Beräknat månadspris: %s\n", q.Label())
	}
	return b.String()
}

func formatHours(h float64) string {
	return strings.Replace(strconv.FormatFloat(h, 'f', -1, 64), ".", ",", 1)
}
