package form

// ReviewLine is one label/value pair of the review step.
type ReviewLine struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ReviewSection groups review lines under a title.
type ReviewSection struct {
	Title string       `json:"title"`
	Lines []ReviewLine `json:"lines"`
}

// Review titles.
const (
	ReviewCustomerTitle = "Customer Details"
	ReviewProblemTitle  = "Problem Details"
	ReviewPaymentTitle  = "Payment Details (Mock)"
)

// Review summarises data for the review step. The card number is masked and
// the CVV is left out.
func Review(data FormData) []ReviewSection {
	return reviewSections(data, MaskCardNumber(data.CardNumber))
}

func reviewSections(data FormData, maskedCard string) []ReviewSection {
	return []ReviewSection{
		{
			Title: ReviewCustomerTitle,
			Lines: []ReviewLine{
				{Label: "Name", Value: data.CustomerName},
				{Label: "Email", Value: data.CustomerEmail},
				{Label: "Phone", Value: data.CustomerPhone},
			},
		},
		{
			Title: ReviewProblemTitle,
			Lines: []ReviewLine{
				{Label: "Service Type", Value: data.ServiceType},
				{Label: "Description", Value: data.ProblemDescription},
			},
		},
		{
			Title: ReviewPaymentTitle,
			Lines: []ReviewLine{
				{Label: "Card Number", Value: maskedCard},
				{Label: "Expiry Date", Value: data.ExpiryDate},
			},
		},
	}
}

// MaskCardNumber hides all but the last four characters of a card number.
// An empty number is shown as N/A.
func MaskCardNumber(number string) string {
	if number == "" {
		return "N/A"
	}
	last4 := number
	if len(number) > 4 {
		last4 = number[len(number)-4:]
	}
	return "**** **** **** " + last4
}
