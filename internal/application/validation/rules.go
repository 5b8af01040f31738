package validation

import "intake/internal/application/paths"

const dateTag = "omitempty,datetime=2006-01-02"

func documentRules(prefix, numberMessage string) []Rule {
	return []Rule{
		{Field: prefix + ".number", Tag: "required", Message: numberMessage},
		{Field: prefix + ".issuingAuthority", Tag: "required", Message: "Issuing authority is required"},
		{Field: prefix + ".dateOfIssue", Tag: "required", Message: "Date of issue is required"},
		{Field: prefix + ".dateOfIssue", Tag: dateTag, Message: "Date of issue must be a valid date"},
		{Field: prefix + ".dateOfExpiry", Tag: "required", Message: "Date of expiry is required"},
		{Field: prefix + ".dateOfExpiry", Tag: dateTag, Message: "Date of expiry must be a valid date"},
	}
}

var (
	passportRules   = compile(paths.Lookup, documentRules("passport", "Passport number is required"))
	nationalIDRules = compile(paths.Lookup, documentRules("nationalId", "ID number is required"))

	personalInfoRules = compile(paths.Lookup, []Rule{
		{Field: "personalInfo.email", Tag: "required,email", Message: "Valid email required"},
		{Field: "personalInfo.phone", Tag: "min=5", Message: "Phone number is required"},
		{Field: "personalInfo.firstName", Tag: "required", Message: "First name is required"},
		{Field: "personalInfo.lastName", Tag: "required", Message: "Last name is required"},
		{Field: "personalInfo.gender", Tag: "oneof=Male Female Other", Message: "Gender must be Male, Female or Other"},
		{Field: "personalInfo.placeOfBirth", Tag: "required", Message: "Place of birth is required"},
	})

	maritalStatusRules = compile(paths.Lookup, []Rule{
		{Field: "maritalStatus", Tag: "oneof=Single Married Divorced Widowed", Message: "Marital status is required"},
	})

	spouseRules = compile(paths.Lookup, []Rule{
		{Field: "spouse.firstName", Tag: "required", Message: "First name is required"},
		{Field: "spouse.lastName", Tag: "required", Message: "Last name is required"},
		{Field: "spouse.dateOfBirth", Tag: "required", Message: "Date of birth is required"},
		{Field: "spouse.nationality", Tag: "required", Message: "Nationality is required"},
	})

	childRules = compile(paths.ChildField, []Rule{
		{Field: "firstName", Tag: "required", Message: "First name is required"},
		{Field: "lastName", Tag: "required", Message: "Last name is required"},
		{Field: "dateOfBirth", Tag: "required", Message: "Date of birth is required"},
		{Field: "relationship", Tag: "required", Message: "Relationship is required"},
	})

	currentAddressRules = compile(paths.Lookup, []Rule{
		{Field: "currentAddress.street", Tag: "required", Message: "Street address is required"},
		{Field: "currentAddress.city", Tag: "required", Message: "City is required"},
		{Field: "currentAddress.state", Tag: "required", Message: "State/province is required"},
		{Field: "currentAddress.postalCode", Tag: "required", Message: "Postal code is required"},
		{Field: "currentAddress.country", Tag: "required", Message: "Country is required"},
		{Field: "currentAddress.yearsAtAddress", Tag: "min=0", Message: "Years at address cannot be negative"},
		{Field: "currentAddress.yearsAtAddress", Tag: "max=150", Message: "Years at address must be 150 or fewer"},
		{Field: "currentAddress.monthsAtAddress", Tag: "min=0,max=11", Message: "Months at address must be between 0 and 11"},
	})

	previousAddressRules = compile(paths.PreviousAddressField, []Rule{
		{Field: "street", Tag: "required", Message: "Street address is required"},
		{Field: "city", Tag: "required", Message: "City is required"},
		{Field: "state", Tag: "required", Message: "State/province is required"},
		{Field: "postalCode", Tag: "required", Message: "Postal code is required"},
		{Field: "country", Tag: "required", Message: "Country is required"},
		{Field: "fromDate", Tag: "required", Message: "From date is required"},
		{Field: "toDate", Tag: "required", Message: "To date is required"},
		{Field: "reasonForLeaving", Tag: "required", Message: "Reason for leaving is required"},
	})

	financialRules = compile(paths.Lookup, []Rule{
		{
			Field:   "employmentStatus",
			Tag:     "oneof=Employed Self-employed Student Retired Unemployed",
			Message: "Employment status is required",
		},
		{Field: "tripSponsor", Tag: "oneof=Self Employer Family Other", Message: "Trip sponsor is required"},
	})

	employmentRules = compile(paths.Lookup, []Rule{
		{Field: "employment.companyName", Tag: "required", Message: "Company name is required"},
		{Field: "employment.jobTitle", Tag: "required", Message: "Job title is required"},
		{Field: "employment.startDate", Tag: "required", Message: "Start date is required"},
		{Field: "employment.salary", Tag: "required", Message: "Salary is required"},
		{Field: "employment.employerAddress", Tag: "required", Message: "Employer address is required"},
		{Field: "employment.employerPhone", Tag: "required", Message: "Employer phone is required"},
	})

	selfEmploymentRules = compile(paths.Lookup, []Rule{
		{Field: "selfEmployment.businessName", Tag: "required", Message: "Business name is required"},
		{Field: "selfEmployment.businessType", Tag: "required", Message: "Business type is required"},
		{Field: "selfEmployment.annualIncome", Tag: "required", Message: "Annual income is required"},
		{Field: "selfEmployment.startDate", Tag: "required", Message: "Start date is required"},
	})

	educationRules = compile(paths.Lookup, []Rule{
		{Field: "education.institutionName", Tag: "required", Message: "Institution name is required"},
		{Field: "education.course", Tag: "required", Message: "Course name is required"},
		{Field: "education.startDate", Tag: "required", Message: "Start date is required"},
		{Field: "education.endDate", Tag: "required", Message: "End date is required"},
	})

	sponsorRules = compile(paths.Lookup, []Rule{
		{Field: "sponsorDetails.name", Tag: "required", Message: "Sponsor name is required"},
		{Field: "sponsorDetails.relationship", Tag: "required", Message: "Relationship is required"},
		{Field: "sponsorDetails.contactInfo", Tag: "required", Message: "Contact information is required"},
	})
)

// Banner shown when previous addresses are required but none were added.
const MissingPreviousAddressesBanner = "You must add your previous address history to cover at least the last 12 months."
