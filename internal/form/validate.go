package form

import (
	"regexp"
	"strings"
)

var (
	// emailRegex only asks for something@something.something.
	emailRegex  = regexp.MustCompile(`\S+@\S+\.\S+`)
	phoneRegex  = regexp.MustCompile(`^\d{10}$`)
	cardRegex   = regexp.MustCompile(`^\d{16}$`)
	expiryRegex = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvRegex    = regexp.MustCompile(`^\d{3,4}$`)
)

// rule checks one field. The required check runs on the trimmed value, the
// format check on the value as entered.
type rule struct {
	field    Field
	required string
	format   func(string) bool
	invalid  string
}

var stepRules = map[Step][]rule{
	StepCustomer: {
		{field: FieldCustomerName, required: "Name is required."},
		{field: FieldCustomerEmail, required: "Email is required.", format: emailRegex.MatchString, invalid: "Email is invalid."},
		{field: FieldCustomerPhone, required: "Phone number is required.", format: phoneRegex.MatchString, invalid: "Phone number must be 10 digits."},
	},
	StepProblem: {
		{field: FieldServiceType, required: "Service type is required.", format: IsServiceType, invalid: "Service type is invalid."},
		{field: FieldProblemDescription, required: "Problem description is required."},
	},
	StepPayment: {
		{field: FieldCardNumber, required: "Card number is required.", format: cardRegex.MatchString, invalid: "Card number must be 16 digits."},
		{field: FieldExpiryDate, required: "Expiry date is required.", format: expiryRegex.MatchString, invalid: "Format MM/YY. E.g., 12/25"},
		{field: FieldCVV, required: "CVV is required.", format: cvvRegex.MatchString, invalid: "CVV must be 3 or 4 digits."},
	},
}

// ValidateStep checks the fields of one step and returns the failures found.
// The result is empty (never nil) when the step is valid. The review step has
// no rules and is always valid.
func ValidateStep(step Step, data FormData) ErrorMap {
	errs := ErrorMap{}
	for _, r := range stepRules[step] {
		value := data.Get(r.field)
		switch {
		case strings.TrimSpace(value) == "":
			errs[r.field] = r.required
		case r.format != nil && !r.format(value):
			errs[r.field] = r.invalid
		}
	}
	return errs
}
