package booking

import (
	"regexp"
	"strings"
	"unicode"
)

type Field string

const (
	FieldName              Field = "name"
	FieldPhone             Field = "phone"
	FieldEmail             Field = "email"
	FieldAddress           Field = "address"
	FieldServiceType       Field = "serviceType"
	FieldFrequency         Field = "frequency"
	FieldCleaningFrequency Field = "cleaningFrequency"
	FieldSquareMeters      Field = "squareMeters"
	FieldWindows           Field = "windows"
	FieldWindowType        Field = "windowType"
)

var (
	phonePattern = regexp.MustCompile(`^\d{1,10}$`)
	emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
)

type ValidationResult struct {
	Valid  bool
	Errors map[Field]string
}

func (r ValidationResult) Has(f Field) bool {
	_, ok := r.Errors[f]
	return ok
}

// Validate checks only the fields required by the given step. Square meters
// are not checked before step 4.
func Validate(step int, d Draft) ValidationResult {
	errs := map[Field]string{}

	switch step {
	case 1:
		validateContact(d, errs)
	case 2:
		if !d.ServiceType.IsValid() {
			errs[FieldServiceType] = "Välj en tjänst"
		}
	case 3:
		if d.ServiceType == ServiceWindows {
			if strings.TrimSpace(d.Windows) == "" {
				errs[FieldWindows] = "Antal fönster är obligatoriskt"
			}
			if !d.WindowType.IsValid() {
				errs[FieldWindowType] = "Välj typ av fönster"
			}
			break
		}
		if !d.Frequency.IsValid() {
			errs[FieldFrequency] = "Välj frekvens"
		} else if d.Frequency == FrequencyRegular && !d.CleaningFrequency.IsValid() {
			errs[FieldCleaningFrequency] = "Välj hur ofta vi ska städa"
		}
	case 4:
		if d.ServiceType != ServiceWindows && strings.TrimSpace(d.SquareMeters) == "" {
			errs[FieldSquareMeters] = "Kvadratmeter är obligatoriskt"
		}
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

func validateContact(d Draft, errs map[Field]string) {
	if strings.TrimSpace(d.Name) == "" {
		errs[FieldName] = "Namn är obligatoriskt"
	}

	phone := strings.TrimSpace(d.Phone)
	switch {
	case phone == "":
		errs[FieldPhone] = "Telefon är obligatoriskt"
	case !phonePattern.MatchString(phone):
		errs[FieldPhone] = "Ange endast siffror (max 10)"
	}

	email := strings.TrimSpace(d.Email)
	switch {
	case email == "":
		errs[FieldEmail] = "E-post är obligatoriskt"
	case !IsValidEmail(email):
		errs[FieldEmail] = "Ogiltig e-postadress"
	}

	address := strings.TrimSpace(d.Address)
	switch {
	case address == "":
		errs[FieldAddress] = "Adress är obligatorisk"
	case !LooksLikeStreetAddress(address):
		errs[FieldAddress] = "Ange gatuadress med gatunummer"
	}
}

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// LooksLikeStreetAddress is a heuristic: at least one letter, one digit and
// five characters. It does not verify that the address exists.
func LooksLikeStreetAddress(address string) bool {
	address = strings.TrimSpace(address)
	if len([]rune(address)) < 5 {
		return false
	}
	var hasLetter, hasDigit bool
	for _, r := range address {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}
