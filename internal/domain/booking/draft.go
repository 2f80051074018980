package booking

const (
	FirstStep = 1
	LastStep  = 4
)

// Draft is the in-progress booking form. Transitions return a new value and
// never mutate the receiver.
type Draft struct {
	Name    string
	Phone   string
	Email   string
	Address string

	ServiceType       ServiceType
	Frequency         Frequency
	CleaningFrequency Cadence

	SquareMeters string
	Windows      string
	WindowType   WindowType

	Step int
}

// NewDraft returns an empty draft on the first step. A known service
// identifier (e.g. from a ?service= link) is pre-selected.
func NewDraft(service string) Draft {
	d := Reset()
	if s := ParseServiceType(service); s != "" {
		d = d.SelectService(s)
	}
	return d
}

func Reset() Draft {
	return Draft{Step: FirstStep}
}

func (d Draft) CurrentStep() int {
	switch {
	case d.Step < FirstStep:
		return FirstStep
	case d.Step > LastStep:
		return LastStep
	default:
		return d.Step
	}
}

// SelectService switches the pricing branch. Window cleaning is only sold as
// a one-time service.
func (d Draft) SelectService(s ServiceType) Draft {
	d.ServiceType = s
	if s == ServiceWindows {
		d.Frequency = FrequencyOneTime
		d.CleaningFrequency = ""
	}
	return d
}

func (d Draft) SelectFrequency(f Frequency) Draft {
	if d.ServiceType == ServiceWindows {
		f = FrequencyOneTime
	}
	d.Frequency = f
	if f != FrequencyRegular {
		d.CleaningFrequency = ""
	}
	return d
}

func (d Draft) IsRecurring() bool {
	return d.ServiceType != ServiceWindows &&
		d.Frequency == FrequencyRegular &&
		d.CleaningFrequency.IsValid()
}

// Advance moves to the next step only when the current step validates.
func (d Draft) Advance() (Draft, ValidationResult) {
	step := d.CurrentStep()
	res := Validate(step, d)
	if !res.Valid {
		d.Step = step
		return d, res
	}
	d.Step = min(step+1, LastStep)
	return d, res
}

func (d Draft) Retreat() Draft {
	d.Step = max(d.CurrentStep()-1, FirstStep)
	return d
}
