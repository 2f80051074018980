package booking

import (
	"strconv"
	"strings"
	"unicode"
)

const (
	squareMetersPerHour = 40

	windowRate = 300

	basicRegularRate = 300
	basicOneTimeRate = 350
	deepRegularRate  = 350
	deepOneTimeRate  = 400
)

// Quote is the derived price of a draft. Prices are whole kronor.
type Quote struct {
	// HalfHours is the estimated time in half-hour units.
	HalfHours   int
	HourlyRate  int
	SinglePrice int
	Monthly     bool
	Price       int
}

func (q Quote) Hours() float64 {
	return float64(q.HalfHours) / 2
}

// Label renders the price the way it is shown and mailed, e.g. "450 kr" or
// "1516 kr/mån".
func (q Quote) Label() string {
	if q.Monthly {
		return strconv.Itoa(q.Price) + " kr/mån"
	}
	return strconv.Itoa(q.Price) + " kr"
}

func ComputePrice(d Draft) int {
	return CalculateQuote(d).Price
}

func CalculateQuote(d Draft) Quote {
	if d.ServiceType == ServiceWindows {
		return windowQuote(d)
	}

	halfHours := halfHoursForArea(ParseLooseInt(d.SquareMeters))
	rate := HourlyRate(d.ServiceType, d.Frequency)
	single := halfHours * rate / 2

	q := Quote{
		HalfHours:   halfHours,
		HourlyRate:  rate,
		SinglePrice: single,
		Price:       single,
	}
	if d.IsRecurring() {
		q.Monthly = true
		q.Price = roundHundredths(single * monthlyFactorHundredths[d.CleaningFrequency])
	}
	return q
}

// HourlyRate is the per-hour price for a service. Unset services price as
// basic cleaning.
func HourlyRate(s ServiceType, f Frequency) int {
	regular := f == FrequencyRegular
	switch s {
	case ServiceWindows:
		return windowRate
	case ServiceDeep:
		if regular {
			return deepRegularRate
		}
		return deepOneTimeRate
	default:
		if regular {
			return basicRegularRate
		}
		return basicOneTimeRate
	}
}

func windowQuote(d Draft) Quote {
	windows := max(ParseLooseInt(d.Windows), 0)

	// double windows take twice as long: 1.5 per hour instead of 3
	var hours int
	if d.WindowType == WindowDouble {
		hours = ceilDiv(windows*2, 3)
	} else {
		hours = ceilDiv(windows, 3)
	}

	price := hours * windowRate
	return Quote{
		HalfHours:   hours * 2,
		HourlyRate:  windowRate,
		SinglePrice: price,
		Price:       price,
	}
}

// halfHoursForArea is ceil((sqm/40)*2), i.e. hours rounded up to the next
// half hour.
func halfHoursForArea(sqm int) int {
	if sqm <= 0 {
		return 0
	}
	return ceilDiv(sqm*2, squareMetersPerHour)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// roundHundredths rounds v/100 half up.
func roundHundredths(v int) int {
	return (v + 50) / 100
}

// ParseLooseInt reads a leading optionally signed integer and ignores the
// rest. Empty or non-numeric input yields 0.
func ParseLooseInt(s string) int {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		if n > 1_000_000_000 {
			break
		}
	}
	if neg {
		return -n
	}
	return n
}
