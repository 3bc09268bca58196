package testing

import (
	"gopkg.in/yaml.v3"

	"github.com/imamik/intake/internal/form"
)

// RequestBuilder provides a fluent interface for constructing request
// answers. Each method returns a new builder (immutable) for chaining.
type RequestBuilder struct {
	data form.FormData
}

// NewRequestBuilder creates a RequestBuilder whose answers pass every step.
func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{
		data: form.FormData{
			CustomerName:       "Jane Doe",
			CustomerEmail:      "jane@example.com",
			CustomerPhone:      "1234567890",
			ServiceType:        string(form.ServiceRepair),
			ProblemDescription: "The dishwasher leaks",
			CardNumber:         "4111111111111111",
			ExpiryDate:         "12/25",
			CVV:                "123",
		},
	}
}

// WithCustomer sets the customer step answers.
func (b *RequestBuilder) WithCustomer(name, email, phone string) *RequestBuilder {
	newBuilder := b.clone()
	newBuilder.data.CustomerName = name
	newBuilder.data.CustomerEmail = email
	newBuilder.data.CustomerPhone = phone
	return newBuilder
}

// WithProblem sets the problem step answers.
func (b *RequestBuilder) WithProblem(serviceType form.ServiceType, description string) *RequestBuilder {
	newBuilder := b.clone()
	newBuilder.data.ServiceType = string(serviceType)
	newBuilder.data.ProblemDescription = description
	return newBuilder
}

// WithPayment sets the payment step answers.
func (b *RequestBuilder) WithPayment(card, expiry, cvv string) *RequestBuilder {
	newBuilder := b.clone()
	newBuilder.data.CardNumber = card
	newBuilder.data.ExpiryDate = expiry
	newBuilder.data.CVV = cvv
	return newBuilder
}

// With sets a single field. Unknown fields are ignored.
func (b *RequestBuilder) With(f form.Field, value string) *RequestBuilder {
	newBuilder := b.clone()
	_ = newBuilder.data.Set(f, value)
	return newBuilder
}

// Build returns the answers.
func (b *RequestBuilder) Build() form.FormData {
	return b.data
}

// YAML returns the answers as an answers file.
func (b *RequestBuilder) YAML() string {
	out, err := yaml.Marshal(b.data)
	if err != nil {
		panic(err)
	}
	return string(out)
}

func (b *RequestBuilder) clone() *RequestBuilder {
	return &RequestBuilder{data: b.data}
}
