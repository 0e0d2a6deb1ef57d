package request

// UpdateCompanyRequest represents a partial company profile update. Omitted
// fields keep their current value; an explicit empty string clears a field.
type UpdateCompanyRequest struct {
	Name        *string `json:"name"`
	Address     *string `json:"address"`
	Phones      *string `json:"phones"`
	Emails      *string `json:"emails"`
	Tagline     *string `json:"tagline"`
	Description *string `json:"description"`
	Footer      *string `json:"footer"`
	BankDetails *string `json:"bank_details"`
}
