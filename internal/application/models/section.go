package models

// Section is a partial record for whole-section merges. A non-nil field means
// the top-level key was present and replaces the current value; nil fields
// leave the record untouched. Decoding JSON into a Section gives exactly that
// presence semantics.
type Section struct {
	Passport     *IdentityDocument `json:"passport,omitempty"`
	NationalID   *IdentityDocument `json:"nationalId,omitempty"`
	PersonalInfo *PersonalInfo     `json:"personalInfo,omitempty"`

	MaritalStatus *MaritalStatus `json:"maritalStatus,omitempty"`
	Spouse        *Spouse        `json:"spouse,omitempty"`
	Children      *[]Child       `json:"children,omitempty"`

	CurrentAddress    *CurrentAddress    `json:"currentAddress,omitempty"`
	PreviousAddresses *[]PreviousAddress `json:"previousAddresses,omitempty"`

	EmploymentStatus *EmploymentStatus `json:"employmentStatus,omitempty"`
	Employment       *Employment       `json:"employment,omitempty"`
	SelfEmployment   *SelfEmployment   `json:"selfEmployment,omitempty"`
	Education        *Education        `json:"education,omitempty"`
	TripSponsor      *TripSponsor      `json:"tripSponsor,omitempty"`
	SponsorDetails   *SponsorDetails   `json:"sponsorDetails,omitempty"`
}

// Keys lists the top-level keys present in the section, in record order.
func (s Section) Keys() []string {
	var keys []string
	add := func(present bool, key string) {
		if present {
			keys = append(keys, key)
		}
	}
	add(s.Passport != nil, "passport")
	add(s.NationalID != nil, "nationalId")
	add(s.PersonalInfo != nil, "personalInfo")
	add(s.MaritalStatus != nil, "maritalStatus")
	add(s.Spouse != nil, "spouse")
	add(s.Children != nil, "children")
	add(s.CurrentAddress != nil, "currentAddress")
	add(s.PreviousAddresses != nil, "previousAddresses")
	add(s.EmploymentStatus != nil, "employmentStatus")
	add(s.Employment != nil, "employment")
	add(s.SelfEmployment != nil, "selfEmployment")
	add(s.Education != nil, "education")
	add(s.TripSponsor != nil, "tripSponsor")
	add(s.SponsorDetails != nil, "sponsorDetails")
	return keys
}

// IsEmpty reports whether no key is present.
func (s Section) IsEmpty() bool {
	return len(s.Keys()) == 0
}

// ApplyTo replaces every present key of r with a copy of the section value.
func (s Section) ApplyTo(r *ApplicationRecord) {
	if s.Passport != nil {
		r.Passport = *s.Passport
	}
	if s.NationalID != nil {
		r.NationalID = *s.NationalID
	}
	if s.PersonalInfo != nil {
		r.PersonalInfo = *s.PersonalInfo
	}
	if s.MaritalStatus != nil {
		r.MaritalStatus = *s.MaritalStatus
	}
	if s.Spouse != nil {
		sp := *s.Spouse
		r.Spouse = &sp
	}
	if s.Children != nil {
		r.Children = append([]Child{}, (*s.Children)...)
	}
	if s.CurrentAddress != nil {
		r.CurrentAddress = *s.CurrentAddress
	}
	if s.PreviousAddresses != nil {
		r.PreviousAddresses = append([]PreviousAddress{}, (*s.PreviousAddresses)...)
	}
	if s.EmploymentStatus != nil {
		r.EmploymentStatus = *s.EmploymentStatus
	}
	if s.Employment != nil {
		e := *s.Employment
		r.Employment = &e
	}
	if s.SelfEmployment != nil {
		se := *s.SelfEmployment
		r.SelfEmployment = &se
	}
	if s.Education != nil {
		ed := *s.Education
		r.Education = &ed
	}
	if s.TripSponsor != nil {
		ts := *s.TripSponsor
		r.TripSponsor = ts
	}
	if s.SponsorDetails != nil {
		sd := *s.SponsorDetails
		r.SponsorDetails = &sd
	}
}
