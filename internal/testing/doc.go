// Package testing provides test utilities, builders, and fixtures shared by
// the intake test suites.
//
// This package centralizes common testing patterns to avoid duplication across test files:
//   - RequestBuilder: Fluent builder for service request answers
//   - FieldCases: Accepted and rejected values for every validated field
//   - LogRecorder: logr sink that keeps every line for assertions
//
// Usage:
//
//	data := testing.NewRequestBuilder().
//	    WithCustomer("Jane Doe", "jane@example.com", "1234567890").
//	    With(form.FieldCVV, "12").
//	    Build()
package testing
