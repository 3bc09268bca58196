package testing

import "github.com/imamik/intake/internal/form"

// FieldCase is one value tried against a field's rules. Message is empty
// when the value is accepted.
type FieldCase struct {
	Field   form.Field
	Value   string
	Message string
}

// FieldCases lists representative accepted and rejected values.
var FieldCases = []FieldCase{
	{form.FieldCustomerEmail, "a@b.c", ""},
	{form.FieldCustomerEmail, "abc", "Email is invalid."},
	{form.FieldCustomerPhone, "1234567890", ""},
	{form.FieldCustomerPhone, "123", "Phone number must be 10 digits."},
	{form.FieldCustomerPhone, "12345678901", "Phone number must be 10 digits."},
	{form.FieldCardNumber, "1234567812345678", ""},
	{form.FieldCardNumber, "123456781234567", "Card number must be 16 digits."},
	{form.FieldCardNumber, "12345678123456789", "Card number must be 16 digits."},
	{form.FieldExpiryDate, "12/25", ""},
	{form.FieldExpiryDate, "13/25", "Format MM/YY. E.g., 12/25"},
	{form.FieldExpiryDate, "1/25", "Format MM/YY. E.g., 12/25"},
	{form.FieldCVV, "123", ""},
	{form.FieldCVV, "1234", ""},
	{form.FieldCVV, "12", "CVV must be 3 or 4 digits."},
	{form.FieldCVV, "12345", "CVV must be 3 or 4 digits."},
}

// ControllerAt returns a controller whose answers are data, advanced with
// next until it reaches step. It panics if a step on the way is invalid.
func ControllerAt(data form.FormData, step form.Step, opts ...form.ControllerOption) *form.Controller {
	c := form.NewController(opts...)
	ctx := Background()
	for c.State().Step < step {
		for _, spec := range form.FieldsFor(c.State().Step) {
			if err := c.SetField(ctx, spec.Field, data.Get(spec.Field)); err != nil {
				panic(err)
			}
		}
		if c.Next(ctx) != form.OutcomeMoved {
			panic("step " + c.State().Step.String() + " did not validate")
		}
	}
	return c
}
