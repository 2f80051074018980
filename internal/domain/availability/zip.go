// Package availability implements the static service-area rule shown next to
// the zip code field. It is not a scheduling system.
package availability

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"refreshing-booking/internal/pkg/errs"
)

var ErrInvalidZip = errs.New("zip code must have five digits")

const (
	zipDigits = 5

	// Stockholm postal codes 100 00 - 191 99
	minServedZip = 10000
	maxServedZip = 19199

	sameDayCutoffHour = 12
)

const (
	MessageToday     = "Vi kan städa idag!"
	MessageTomorrow  = "Vi kan städa imorgon!"
	MessageMonday    = "Vi kan städa på måndag!"
	MessageNotServed = "Vi är inte i ditt område ännu, men vi expanderar snart!"
)

type Result struct {
	// Zip is the normalised form, e.g. "114 55".
	Zip       string
	Checked   bool
	Available bool
	Message   string
}

// Check evaluates a zip code at the given local time. Input with anything
// other than five digits is not checked.
func Check(raw string, now time.Time) Result {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, raw)

	res := Result{Zip: Format(digits)}
	if len(digits) != zipDigits {
		return res
	}
	res.Checked = true

	n, err := strconv.Atoi(digits)
	if err != nil || n < minServedZip || n > maxServedZip {
		res.Message = MessageNotServed
		return res
	}

	res.Available = true
	res.Message = nextSlotMessage(now)
	return res
}

// Format groups digits the Swedish way: "11455" -> "114 55".
func Format(digits string) string {
	if len(digits) > 3 {
		return digits[:3] + " " + digits[3:]
	}
	return digits
}

func nextSlotMessage(now time.Time) string {
	switch now.Weekday() {
	case time.Friday, time.Saturday:
		return MessageMonday
	}
	if now.Hour() < sameDayCutoffHour {
		return MessageToday
	}
	return MessageTomorrow
}
