// Package visibility derives which conditional sub-sections of a step are
// shown. Every rule is a pure function of the record; nothing is cached, so
// a rule cannot drift from the fields it is computed from.
package visibility

import "intake/internal/application/models"

// Section names a conditionally rendered part of a step.
type Section string

const (
	SectionPreviousAddresses Section = "previousAddresses"
	SectionSpouse            Section = "spouse"
	SectionEmployment        Section = "employment"
	SectionSelfEmployment    Section = "selfEmployment"
	SectionEducation         Section = "education"
	SectionSponsorDetails    Section = "sponsorDetails"
)

// minimumAddressHistoryMonths is the history below which previous addresses
// must be supplied.
const minimumAddressHistoryMonths = 12

// PreviousAddressesVisible holds when the applicant has lived less than a
// year at the current address.
func PreviousAddressesVisible(r *models.ApplicationRecord) bool {
	return r.CurrentAddress.TotalMonths() < minimumAddressHistoryMonths
}

// PreviousAddressesMissing holds when the section is shown but empty. The
// address step cannot advance in that state.
func PreviousAddressesMissing(r *models.ApplicationRecord) bool {
	return PreviousAddressesVisible(r) && len(r.PreviousAddresses) == 0
}

func SpouseVisible(r *models.ApplicationRecord) bool {
	return r.MaritalStatus == models.MaritalStatusMarried
}

// EmploymentSection returns the single financial sub-form selected by the
// employment status, and false when none applies (retired, unemployed, unset).
func EmploymentSection(r *models.ApplicationRecord) (Section, bool) {
	switch r.EmploymentStatus {
	case models.EmploymentStatusEmployed:
		return SectionEmployment, true
	case models.EmploymentStatusSelfEmployed:
		return SectionSelfEmployment, true
	case models.EmploymentStatusStudent:
		return SectionEducation, true
	default:
		return "", false
	}
}

func SponsorVisible(r *models.ApplicationRecord) bool {
	return r.TripSponsor != models.TripSponsorUnset && r.TripSponsor != models.TripSponsorSelf
}

// ForStep lists the conditional sections currently shown on a step.
func ForStep(step models.Step, r *models.ApplicationRecord) []Section {
	sections := []Section{}
	switch step {
	case models.StepFamily:
		if SpouseVisible(r) {
			sections = append(sections, SectionSpouse)
		}
	case models.StepAddressHistory:
		if PreviousAddressesVisible(r) {
			sections = append(sections, SectionPreviousAddresses)
		}
	case models.StepFinancial:
		if s, ok := EmploymentSection(r); ok {
			sections = append(sections, s)
		}
		if SponsorVisible(r) {
			sections = append(sections, SectionSponsorDetails)
		}
	}
	return sections
}
