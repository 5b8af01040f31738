package validation

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"intake/internal/application/models"
	"intake/internal/application/visibility"
)

const dateLayout = "2006-01-02"

// Validator checks the fields owned by one step of the wizard.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	return &Validator{validate: validator.New()}
}

// ValidateStep runs the rule set of step against r. Hidden sub-sections and
// fields of other steps are never checked. Steps without a form (complete)
// always validate.
func (v *Validator) ValidateStep(step models.Step, r *models.ApplicationRecord) Result {
	res := Result{Fields: FieldErrors{}}
	switch step {
	case models.StepIdentity:
		v.identity(r, res.Fields)
	case models.StepPersonal:
		check(v.validate, r, "", personalInfoRules, res.Fields)
	case models.StepFamily:
		v.family(r, res.Fields)
	case models.StepAddressHistory:
		res.Banner = v.addressHistory(r, res.Fields)
	case models.StepFinancial:
		v.financial(r, res.Fields)
	}
	return res
}

// Identity documents are optional, but one that has been started must be
// complete, carry ISO dates and expire after it was issued.
func (v *Validator) identity(r *models.ApplicationRecord, errs FieldErrors) {
	if !r.Passport.IsBlank() {
		check(v.validate, r, "", passportRules, errs)
		expiryAfterIssue("passport", r.Passport, errs)
	}
	if !r.NationalID.IsBlank() {
		check(v.validate, r, "", nationalIDRules, errs)
		expiryAfterIssue("nationalId", r.NationalID, errs)
	}
}

func expiryAfterIssue(prefix string, doc models.IdentityDocument, errs FieldErrors) {
	key := prefix + ".dateOfExpiry"
	if _, seen := errs[key]; seen {
		return
	}
	issued, err := time.Parse(dateLayout, doc.DateOfIssue)
	if err != nil {
		return
	}
	expires, err := time.Parse(dateLayout, doc.DateOfExpiry)
	if err != nil {
		return
	}
	if !expires.After(issued) {
		errs[key] = "Date of expiry must be after date of issue"
	}
}

func (v *Validator) family(r *models.ApplicationRecord, errs FieldErrors) {
	check(v.validate, r, "", maritalStatusRules, errs)
	if visibility.SpouseVisible(r) {
		check(v.validate, r, "", spouseRules, errs)
	}
	for i := range r.Children {
		child := &r.Children[i]
		check(v.validate, child, fmt.Sprintf("children.%s.", child.ID), childRules, errs)
	}
}

func (v *Validator) addressHistory(r *models.ApplicationRecord, errs FieldErrors) string {
	check(v.validate, r, "", currentAddressRules, errs)
	if !visibility.PreviousAddressesVisible(r) {
		return ""
	}
	if visibility.PreviousAddressesMissing(r) {
		return MissingPreviousAddressesBanner
	}
	for i := range r.PreviousAddresses {
		a := &r.PreviousAddresses[i]
		check(v.validate, a, fmt.Sprintf("previousAddresses.%s.", a.ID), previousAddressRules, errs)
	}
	return ""
}

func (v *Validator) financial(r *models.ApplicationRecord, errs FieldErrors) {
	check(v.validate, r, "", financialRules, errs)
	if section, ok := visibility.EmploymentSection(r); ok {
		switch section {
		case visibility.SectionEmployment:
			check(v.validate, r, "", employmentRules, errs)
		case visibility.SectionSelfEmployment:
			check(v.validate, r, "", selfEmploymentRules, errs)
		case visibility.SectionEducation:
			check(v.validate, r, "", educationRules, errs)
		}
	}
	if visibility.SponsorVisible(r) {
		check(v.validate, r, "", sponsorRules, errs)
	}
}
