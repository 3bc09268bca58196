package form

import "fmt"

// Step is the active page of the wizard, from 1 to 4.
type Step int

// Wizard steps.
const (
	StepCustomer Step = iota + 1
	StepProblem
	StepPayment
	StepReview
)

// FirstStep and LastStep bound the valid step range.
const (
	FirstStep = StepCustomer
	LastStep  = StepReview
)

// Valid reports whether s is within the wizard's range.
func (s Step) Valid() bool {
	return s >= FirstStep && s <= LastStep
}

// String returns the short label shown in the progress indicator.
func (s Step) String() string {
	if info, ok := stepInfo[s]; ok {
		return info.Label
	}
	return fmt.Sprintf("Step(%d)", int(s))
}

// Heading returns the title shown above the step's fields.
func (s Step) Heading() string {
	return stepInfo[s].Heading
}

// InputKind tells a renderer which control to draw for a field.
type InputKind string

// Input kinds used by the wizard.
const (
	InputText     InputKind = "text"
	InputEmail    InputKind = "email"
	InputPhone    InputKind = "tel"
	InputSelect   InputKind = "select"
	InputTextArea InputKind = "textarea"
)

// FieldSpec describes how a field is presented.
type FieldSpec struct {
	Field       Field
	Label       string
	Placeholder string
	Kind        InputKind
	// MaxLength limits input length; zero means unlimited.
	MaxLength int
}

type stepDescriptor struct {
	Label   string
	Heading string
	Note    string
	Fields  []FieldSpec
}

var stepInfo = map[Step]stepDescriptor{
	StepCustomer: {
		Label:   "Customer",
		Heading: "Customer Information",
		Fields: []FieldSpec{
			{Field: FieldCustomerName, Label: "Full Name", Placeholder: "John Doe", Kind: InputText},
			{Field: FieldCustomerEmail, Label: "Email Address", Placeholder: "john.doe@example.com", Kind: InputEmail},
			{Field: FieldCustomerPhone, Label: "Phone Number", Placeholder: "1234567890", Kind: InputPhone},
		},
	},
	StepProblem: {
		Label:   "Problem",
		Heading: "Problem Description",
		Fields: []FieldSpec{
			{Field: FieldServiceType, Label: "Service Type", Placeholder: "Select a service type", Kind: InputSelect},
			{Field: FieldProblemDescription, Label: "Describe Your Problem", Placeholder: "Please provide a detailed description of the issue or service you require.", Kind: InputTextArea},
		},
	},
	StepPayment: {
		Label:   "Payment",
		Heading: "Payment Information",
		Note:    "This is a mock payment section. No real payment processing will occur.",
		Fields: []FieldSpec{
			{Field: FieldCardNumber, Label: "Card Number", Placeholder: "XXXX XXXX XXXX XXXX", Kind: InputText, MaxLength: 16},
			{Field: FieldExpiryDate, Label: "Expiry Date (MM/YY)", Placeholder: "MM/YY", Kind: InputText, MaxLength: 5},
			{Field: FieldCVV, Label: "CVV", Placeholder: "XXX", Kind: InputText, MaxLength: 4},
		},
	},
	StepReview: {
		Label:   "Review",
		Heading: "Review Your Request",
	},
}

// Steps returns every step in order.
func Steps() []Step {
	return []Step{StepCustomer, StepProblem, StepPayment, StepReview}
}

// FieldsFor returns the fields collected on a step. The review step has none.
func FieldsFor(s Step) []FieldSpec {
	return stepInfo[s].Fields
}

// NoteFor returns the informational note displayed on a step, if any.
func NoteFor(s Step) string {
	return stepInfo[s].Note
}

// SpecFor returns the presentation of a single field.
func SpecFor(f Field) (FieldSpec, bool) {
	for _, s := range Steps() {
		for _, spec := range stepInfo[s].Fields {
			if spec.Field == f {
				return spec, true
			}
		}
	}
	return FieldSpec{}, false
}

// StepOf returns the step on which a field is collected.
func StepOf(f Field) (Step, bool) {
	for _, s := range Steps() {
		for _, spec := range stepInfo[s].Fields {
			if spec.Field == f {
				return s, true
			}
		}
	}
	return 0, false
}
