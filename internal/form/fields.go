package form

import "fmt"

// Field names a single input of the wizard. The values match the keys used
// in answers files, JSON output and error maps.
type Field string

// Wizard fields, in the order they are asked.
const (
	FieldCustomerName       Field = "customerName"
	FieldCustomerEmail      Field = "customerEmail"
	FieldCustomerPhone      Field = "customerPhone"
	FieldServiceType        Field = "serviceType"
	FieldProblemDescription Field = "problemDescription"
	FieldCardNumber         Field = "cardNumber"
	FieldExpiryDate         Field = "expiryDate"
	FieldCVV                Field = "cvv"
)

// AllFields lists every field in display order.
var AllFields = []Field{
	FieldCustomerName,
	FieldCustomerEmail,
	FieldCustomerPhone,
	FieldServiceType,
	FieldProblemDescription,
	FieldCardNumber,
	FieldExpiryDate,
	FieldCVV,
}

// ParseField converts a field name into a Field.
func ParseField(name string) (Field, error) {
	for _, f := range AllFields {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// FormData holds every value entered by the customer.
type FormData struct {
	CustomerName       string `json:"customerName" yaml:"customerName"`
	CustomerEmail      string `json:"customerEmail" yaml:"customerEmail"`
	CustomerPhone      string `json:"customerPhone" yaml:"customerPhone"`
	ServiceType        string `json:"serviceType" yaml:"serviceType"`
	ProblemDescription string `json:"problemDescription" yaml:"problemDescription"`
	CardNumber         string `json:"cardNumber" yaml:"cardNumber"`
	ExpiryDate         string `json:"expiryDate" yaml:"expiryDate"`
	CVV                string `json:"cvv" yaml:"cvv"`
}

// Get returns the value of a field. Unknown fields read as empty.
func (d FormData) Get(f Field) string {
	if p := d.ptr(f); p != nil {
		return *p
	}
	return ""
}

// Set stores the value of a field.
func (d *FormData) Set(f Field, value string) error {
	p := d.ptr(f)
	if p == nil {
		return fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	*p = value
	return nil
}

func (d *FormData) ptr(f Field) *string {
	switch f {
	case FieldCustomerName:
		return &d.CustomerName
	case FieldCustomerEmail:
		return &d.CustomerEmail
	case FieldCustomerPhone:
		return &d.CustomerPhone
	case FieldServiceType:
		return &d.ServiceType
	case FieldProblemDescription:
		return &d.ProblemDescription
	case FieldCardNumber:
		return &d.CardNumber
	case FieldExpiryDate:
		return &d.ExpiryDate
	case FieldCVV:
		return &d.CVV
	}
	return nil
}

// ErrorMap maps a failing field to its message. Only failing fields have an
// entry.
type ErrorMap map[Field]string

// Clone returns an independent copy of the map.
func (m ErrorMap) Clone() ErrorMap {
	out := make(ErrorMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// ServiceType is one of the selectable kinds of service.
type ServiceType string

// Selectable service types.
const (
	ServiceRepair       ServiceType = "repair"
	ServiceMaintenance  ServiceType = "maintenance"
	ServiceInstallation ServiceType = "installation"
	ServiceConsultation ServiceType = "consultation"
	ServiceOther        ServiceType = "other"
)

// ServiceTypeOption pairs a service type with its display label.
type ServiceTypeOption struct {
	Value ServiceType
	Label string
}

// ServiceTypes contains every selectable service type, in display order.
var ServiceTypes = []ServiceTypeOption{
	{Value: ServiceRepair, Label: "Repair"},
	{Value: ServiceMaintenance, Label: "Maintenance"},
	{Value: ServiceInstallation, Label: "Installation"},
	{Value: ServiceConsultation, Label: "Consultation"},
	{Value: ServiceOther, Label: "Other"},
}

// IsServiceType reports whether s is one of the selectable service types.
func IsServiceType(s string) bool {
	for _, opt := range ServiceTypes {
		if string(opt.Value) == s {
			return true
		}
	}
	return false
}
