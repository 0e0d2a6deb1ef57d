package entity

import (
	"time"

	"github.com/opygoal/nextride-api/pkg/renderer"
)

// CompanyProfile is the issuing company's presentation data as printed on
// every generated document. A single profile exists per deployment; it is
// read on every render and updated through the settings endpoint.
type CompanyProfile struct {
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Phones      string    `json:"phones"`
	Emails      string    `json:"emails"`
	Tagline     string    `json:"tagline"`
	Description string    `json:"description"`
	Footer      string    `json:"footer"`
	BankDetails string    `json:"bank_details"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DefaultCompanyProfile returns the profile used until the first update.
func DefaultCompanyProfile() CompanyProfile {
	return CompanyProfile{
		Name:        "NextRide Logistics",
		Address:     "14 Adetokunbo Ademola Street, Victoria Island, Lagos",
		Phones:      "+234 801 234 5678, +234 902 345 6789",
		Emails:      "bookings@nextride.ng, support@nextride.ng",
		Tagline:     "Safe. Reliable. On time.",
		Description: "Executive car hire, airport transfers and interstate charter services.",
		Footer:      "NextRide Logistics | RC 1234567 | www.nextride.ng",
		BankDetails: "Bank: Zenith Bank | Account Name: NextRide Logistics Ltd | Account No: 1012345678",
	}
}

// ApplyPartial overlays the non-nil fields of the patch onto a copy of the
// profile and returns it. Nil fields keep their current value, so clients can
// update one field without resending the rest.
func (p CompanyProfile) ApplyPartial(patch CompanyProfilePatch, now time.Time) CompanyProfile {
	next := p
	if patch.Name != nil {
		next.Name = *patch.Name
	}
	if patch.Address != nil {
		next.Address = *patch.Address
	}
	if patch.Phones != nil {
		next.Phones = *patch.Phones
	}
	if patch.Emails != nil {
		next.Emails = *patch.Emails
	}
	if patch.Tagline != nil {
		next.Tagline = *patch.Tagline
	}
	if patch.Description != nil {
		next.Description = *patch.Description
	}
	if patch.Footer != nil {
		next.Footer = *patch.Footer
	}
	if patch.BankDetails != nil {
		next.BankDetails = *patch.BankDetails
	}
	next.UpdatedAt = now
	return next
}

// CompanyProfilePatch is a partial profile update. Pointer fields distinguish
// "leave unchanged" (nil) from "set to empty" (pointer to "").
type CompanyProfilePatch struct {
	Name        *string `json:"name"`
	Address     *string `json:"address"`
	Phones      *string `json:"phones"`
	Emails      *string `json:"emails"`
	Tagline     *string `json:"tagline"`
	Description *string `json:"description"`
	Footer      *string `json:"footer"`
	BankDetails *string `json:"bank_details"`
}

// RenderInfo maps the stored profile to the renderer's company record.
func (p CompanyProfile) RenderInfo() renderer.CompanyInfo {
	return renderer.CompanyInfo{
		Name:        p.Name,
		Address:     p.Address,
		Phones:      p.Phones,
		Emails:      p.Emails,
		Tagline:     p.Tagline,
		Description: p.Description,
		Footer:      p.Footer,
		BankDetails: p.BankDetails,
	}
}
