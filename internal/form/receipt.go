package form

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"sigs.k8s.io/yaml"
)

// Success copy shown once a request is submitted.
const (
	SubmittedTitle   = "Request Submitted!"
	SubmittedMessage = "Your service request has been successfully submitted. We will contact you shortly."
)

// Format selects how a receipt is printed.
type Format string

// Output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat converts a format name into a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q (expected text, json or yaml)", ErrUnknownFormat, s)
}

// Receipt is the confirmation of a submitted request. It never contains the
// full card number or the CVV.
type Receipt struct {
	SubmittedAt        time.Time `json:"submittedAt"`
	CustomerName       string    `json:"customerName"`
	CustomerEmail      string    `json:"customerEmail"`
	CustomerPhone      string    `json:"customerPhone"`
	ServiceType        string    `json:"serviceType"`
	ProblemDescription string    `json:"problemDescription"`
	CardNumber         string    `json:"cardNumber"`
	ExpiryDate         string    `json:"expiryDate"`
}

// NewReceipt builds the receipt for data submitted at the given time.
func NewReceipt(data FormData, at time.Time) Receipt {
	return Receipt{
		SubmittedAt:        at.UTC(),
		CustomerName:       data.CustomerName,
		CustomerEmail:      data.CustomerEmail,
		CustomerPhone:      data.CustomerPhone,
		ServiceType:        data.ServiceType,
		ProblemDescription: data.ProblemDescription,
		CardNumber:         MaskCardNumber(data.CardNumber),
		ExpiryDate:         data.ExpiryDate,
	}
}

// Sections returns the receipt in the same layout as the review step.
func (r Receipt) Sections() []ReviewSection {
	data := FormData{
		CustomerName:       r.CustomerName,
		CustomerEmail:      r.CustomerEmail,
		CustomerPhone:      r.CustomerPhone,
		ServiceType:        r.ServiceType,
		ProblemDescription: r.ProblemDescription,
		ExpiryDate:         r.ExpiryDate,
	}
	return reviewSections(data, r.CardNumber)
}

// Encode writes the receipt to w in the given format.
func (r Receipt) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal receipt: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatYAML:
		data, err := yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to marshal receipt: %w", err)
		}
		_, err = w.Write(data)
		return err
	case FormatText, "":
		_, err := io.WriteString(w, r.text())
		return err
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func (r Receipt) text() string {
	var b strings.Builder
	b.WriteString(SubmittedTitle + "\n")
	b.WriteString(SubmittedMessage + "\n")
	fmt.Fprintf(&b, "Submitted at: %s\n", r.SubmittedAt.Format(time.RFC3339))
	WriteSections(&b, r.Sections())
	return b.String()
}

// WriteSections prints review sections as indented plain text.
func WriteSections(b *strings.Builder, sections []ReviewSection) {
	for _, s := range sections {
		fmt.Fprintf(b, "\n%s:\n", s.Title)
		for _, l := range s.Lines {
			fmt.Fprintf(b, "  %s: %s\n", l.Label, l.Value)
		}
	}
}
