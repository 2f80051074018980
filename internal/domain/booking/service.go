package booking

type ServiceType string

const (
	ServiceBasic   ServiceType = "grundstadning"
	ServiceDeep    ServiceType = "storstadning"
	ServiceWindows ServiceType = "fonsterputs"
)

func (s ServiceType) String() string {
	return string(s)
}

func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceBasic, ServiceDeep, ServiceWindows:
		return true
	default:
		return false
	}
}

func (s ServiceType) DisplayName() string {
	switch s {
	case ServiceBasic:
		return "Grundstädning"
	case ServiceDeep:
		return "Storstädning"
	case ServiceWindows:
		return "Fönsterputs"
	default:
		return ""
	}
}

// ParseServiceType accepts only known identifiers; anything else is unset.
func ParseServiceType(raw string) ServiceType {
	s := ServiceType(raw)
	if !s.IsValid() {
		return ""
	}
	return s
}

type Frequency string

const (
	FrequencyOneTime Frequency = "oneTime"
	FrequencyRegular Frequency = "regular"
)

func (f Frequency) IsValid() bool {
	return f == FrequencyOneTime || f == FrequencyRegular
}

type Cadence string

const (
	CadenceWeekly   Cadence = "weekly"
	CadenceBiweekly Cadence = "biweekly"
	CadenceMonthly  Cadence = "monthly"
)

func (c Cadence) IsValid() bool {
	_, ok := monthlyFactorHundredths[c]
	return ok
}

// visits per month, in hundredths
var monthlyFactorHundredths = map[Cadence]int{
	CadenceWeekly:   433,
	CadenceBiweekly: 217,
	CadenceMonthly:  100,
}

func (c Cadence) DisplayName() string {
	switch c {
	case CadenceWeekly:
		return "varje vecka"
	case CadenceBiweekly:
		return "varannan vecka"
	case CadenceMonthly:
		return "en gång i månaden"
	default:
		return ""
	}
}

type WindowType string

const (
	WindowSingle WindowType = "single"
	WindowDouble WindowType = "double"
)

func (w WindowType) IsValid() bool {
	return w == WindowSingle || w == WindowDouble
}

func (w WindowType) DisplayName() string {
	switch w {
	case WindowSingle:
		return "Enkla fönster"
	case WindowDouble:
		return "Kopplade fönster (dubbla)"
	default:
		return ""
	}
}
