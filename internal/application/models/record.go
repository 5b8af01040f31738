package models

import "math"

// ApplicationRecord is the single aggregate of every wizard answer for one
// session.
//
// Invariants:
//   - Child and PreviousAddress IDs are unique within the record and never
//     reused after removal
//   - PreviousAddresses must be non-empty whenever the applicant has lived
//     less than 12 months at CurrentAddress (enforced at step submission)
//   - Employment, SelfEmployment and Education are all retained when
//     EmploymentStatus changes; only the selected one is relevant
//   - SponsorDetails is required iff TripSponsor is set and not Self
//
// The record is mutated only through the application store.
type ApplicationRecord struct {
	Passport     IdentityDocument `json:"passport"`
	NationalID   IdentityDocument `json:"nationalId"`
	PersonalInfo PersonalInfo     `json:"personalInfo"`

	MaritalStatus MaritalStatus `json:"maritalStatus"`
	Spouse        *Spouse       `json:"spouse,omitempty"`
	Children      []Child       `json:"children"`

	CurrentAddress    CurrentAddress    `json:"currentAddress"`
	PreviousAddresses []PreviousAddress `json:"previousAddresses"`

	EmploymentStatus EmploymentStatus `json:"employmentStatus"`
	Employment       *Employment      `json:"employment,omitempty"`
	SelfEmployment   *SelfEmployment  `json:"selfEmployment,omitempty"`
	Education        *Education       `json:"education,omitempty"`
	TripSponsor      TripSponsor      `json:"tripSponsor"`
	SponsorDetails   *SponsorDetails  `json:"sponsorDetails,omitempty"`
}

// IdentityDocument is the shape shared by passports and national ID cards.
type IdentityDocument struct {
	Number           string `json:"number"`
	IssuingAuthority string `json:"issuingAuthority"`
	DateOfIssue      string `json:"dateOfIssue"`
	DateOfExpiry     string `json:"dateOfExpiry"`
}

// IsBlank reports whether nothing has been entered for the document.
func (d IdentityDocument) IsBlank() bool {
	return d == IdentityDocument{}
}

type PersonalInfo struct {
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Gender         Gender `json:"gender"`
	PlaceOfBirth   string `json:"placeOfBirth"`
	HasNameChanged bool   `json:"hasNameChanged"`
}

type Spouse struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	DateOfBirth      string `json:"dateOfBirth"`
	Nationality      string `json:"nationality"`
	TravelingWithYou bool   `json:"travelingWithYou"`
}

type Child struct {
	ID               string `json:"id"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	DateOfBirth      string `json:"dateOfBirth"`
	Relationship     string `json:"relationship"`
	TravelingWithYou bool   `json:"travelingWithYou"`
}

type CurrentAddress struct {
	Street          string `json:"street"`
	City            string `json:"city"`
	State           string `json:"state"`
	PostalCode      string `json:"postalCode"`
	Country         string `json:"country"`
	YearsAtAddress  int    `json:"yearsAtAddress"`
	MonthsAtAddress int    `json:"monthsAtAddress"`
}

// TotalMonths is the time lived at the address expressed in months. The
// result saturates at the int range instead of wrapping.
func (a CurrentAddress) TotalMonths() int {
	years, months := a.YearsAtAddress, a.MonthsAtAddress
	switch {
	case years > math.MaxInt/12:
		return math.MaxInt
	case years < math.MinInt/12:
		return math.MinInt
	}
	total := years * 12
	switch {
	case months > 0 && total > math.MaxInt-months:
		return math.MaxInt
	case months < 0 && total < math.MinInt-months:
		return math.MinInt
	}
	return total + months
}

type PreviousAddress struct {
	ID               string `json:"id"`
	Street           string `json:"street"`
	City             string `json:"city"`
	State            string `json:"state"`
	PostalCode       string `json:"postalCode"`
	Country          string `json:"country"`
	FromDate         string `json:"fromDate"`
	ToDate           string `json:"toDate"`
	ReasonForLeaving string `json:"reasonForLeaving"`
}

type Employment struct {
	CompanyName     string `json:"companyName"`
	JobTitle        string `json:"jobTitle"`
	StartDate       string `json:"startDate"`
	Salary          string `json:"salary"`
	EmployerAddress string `json:"employerAddress"`
	EmployerPhone   string `json:"employerPhone"`
}

type SelfEmployment struct {
	BusinessName string `json:"businessName"`
	BusinessType string `json:"businessType"`
	AnnualIncome string `json:"annualIncome"`
	StartDate    string `json:"startDate"`
}

type Education struct {
	InstitutionName string `json:"institutionName"`
	Course          string `json:"course"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	IsFullTime      bool   `json:"isFullTime"`
}

type SponsorDetails struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	ContactInfo  string `json:"contactInfo"`
}

// NewRecord returns the blank record a session starts with.
func NewRecord() ApplicationRecord {
	return ApplicationRecord{
		PersonalInfo: PersonalInfo{
			Gender: GenderMale,
		},
		Children:          []Child{},
		PreviousAddresses: []PreviousAddress{},
	}
}

// Clone returns a deep copy so callers can read without sharing memory with
// the store.
func (r ApplicationRecord) Clone() ApplicationRecord {
	out := r
	if r.Spouse != nil {
		s := *r.Spouse
		out.Spouse = &s
	}
	out.Children = append([]Child{}, r.Children...)
	out.PreviousAddresses = append([]PreviousAddress{}, r.PreviousAddresses...)
	if r.Employment != nil {
		e := *r.Employment
		out.Employment = &e
	}
	if r.SelfEmployment != nil {
		se := *r.SelfEmployment
		out.SelfEmployment = &se
	}
	if r.Education != nil {
		ed := *r.Education
		out.Education = &ed
	}
	if r.SponsorDetails != nil {
		sd := *r.SponsorDetails
		out.SponsorDetails = &sd
	}
	return out
}
