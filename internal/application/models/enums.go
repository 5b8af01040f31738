package models

// Gender is the applicant's declared gender.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// MaritalStatus selects whether the spouse sub-form applies.
// The empty value means the applicant has not answered yet.
type MaritalStatus string

const (
	MaritalStatusUnset    MaritalStatus = ""
	MaritalStatusSingle   MaritalStatus = "Single"
	MaritalStatusMarried  MaritalStatus = "Married"
	MaritalStatusDivorced MaritalStatus = "Divorced"
	MaritalStatusWidowed  MaritalStatus = "Widowed"
)

func (m MaritalStatus) IsValid() bool {
	switch m {
	case MaritalStatusSingle, MaritalStatusMarried, MaritalStatusDivorced, MaritalStatusWidowed:
		return true
	}
	return false
}

// EmploymentStatus keys which financial sub-form is relevant.
type EmploymentStatus string

const (
	EmploymentStatusUnset        EmploymentStatus = ""
	EmploymentStatusEmployed     EmploymentStatus = "Employed"
	EmploymentStatusSelfEmployed EmploymentStatus = "Self-employed"
	EmploymentStatusStudent      EmploymentStatus = "Student"
	EmploymentStatusRetired      EmploymentStatus = "Retired"
	EmploymentStatusUnemployed   EmploymentStatus = "Unemployed"
)

func (e EmploymentStatus) IsValid() bool {
	switch e {
	case EmploymentStatusEmployed, EmploymentStatusSelfEmployed, EmploymentStatusStudent,
		EmploymentStatusRetired, EmploymentStatusUnemployed:
		return true
	}
	return false
}

// TripSponsor names who pays for the trip.
type TripSponsor string

const (
	TripSponsorUnset    TripSponsor = ""
	TripSponsorSelf     TripSponsor = "Self"
	TripSponsorEmployer TripSponsor = "Employer"
	TripSponsorFamily   TripSponsor = "Family"
	TripSponsorOther    TripSponsor = "Other"
)

func (t TripSponsor) IsValid() bool {
	switch t {
	case TripSponsorSelf, TripSponsorEmployer, TripSponsorFamily, TripSponsorOther:
		return true
	}
	return false
}
