// Package paths registers one typed accessor per dotted field path of the
// application record, so path-style writes stay statically enumerable.
//
// Writes through a lens create any missing optional sub-record (spouse,
// employment, selfEmployment, education, sponsorDetails) instead of failing.
// Reads never allocate.
package paths

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"intake/internal/application/models"
)

var (
	// ErrUnknownPath is returned for a path that has no registered lens.
	ErrUnknownPath = errors.New("unknown field path")
	// ErrValueType is returned when a value cannot be stored in the leaf.
	ErrValueType = errors.New("unsupported value type")
)

// Kind is the leaf type a lens stores.
type Kind string

const (
	KindString Kind = "string"
	KindBool   Kind = "bool"
	KindInt    Kind = "int"
)

// Lens reads and writes one leaf of T.
type Lens[T any] struct {
	Kind Kind
	get  func(*T) any
	set  func(*T, any) error
}

// Get returns the current leaf value, or its zero value when the enclosing
// optional sub-record does not exist.
func (l Lens[T]) Get(t *T) any {
	return l.get(t)
}

// Set coerces value to the leaf kind and stores it.
func (l Lens[T]) Set(t *T, value any) error {
	return l.set(t, value)
}

// Accessors passed to text, flag and number return a pointer to the leaf;
// create reports whether missing intermediate sub-records may be allocated.
func text[T any, S ~string](at func(t *T, create bool) *S) Lens[T] {
	return Lens[T]{
		Kind: KindString,
		get:  func(t *T) any { return *at(t, false) },
		set: func(t *T, value any) error {
			s, err := coerceString(value)
			if err != nil {
				return err
			}
			*at(t, true) = S(s)
			return nil
		},
	}
}

func flag[T any](at func(t *T, create bool) *bool) Lens[T] {
	return Lens[T]{
		Kind: KindBool,
		get:  func(t *T) any { return *at(t, false) },
		set: func(t *T, value any) error {
			b, err := coerceBool(value)
			if err != nil {
				return err
			}
			*at(t, true) = b
			return nil
		},
	}
}

func number[T any](at func(t *T, create bool) *int) Lens[T] {
	return Lens[T]{
		Kind: KindInt,
		get:  func(t *T) any { return *at(t, false) },
		set: func(t *T, value any) error {
			n, err := coerceInt(value)
			if err != nil {
				return err
			}
			*at(t, true) = n
			return nil
		},
	}
}

func coerceString(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(v), nil
	default:
		return "", fmt.Errorf("%w: %T for text field", ErrValueType, value)
	}
}

func coerceBool(value any) (bool, error) {
	switch v := value.(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "on", "1":
			return true, nil
		}
		return false, nil
	default:
		return false, fmt.Errorf("%w: %T for boolean field", ErrValueType, value)
	}
}

// coerceInt never rejects numeric-looking input: text is read up to its
// first non-digit ("3.5" and "2 years" give 3 and 2) and text without a
// leading integer becomes zero. Range checks belong to the step schema.
func coerceInt(value any) (int, error) {
	switch v := value.(type) {
	case nil:
		return 0, nil
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return clampFloat(v), nil
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n), nil
		}
		if f, err := v.Float64(); err == nil {
			return clampFloat(f), nil
		}
		return leadingInt(v.String()), nil
	case string:
		return leadingInt(v), nil
	default:
		return 0, fmt.Errorf("%w: %T for numeric field", ErrValueType, value)
	}
}

func leadingInt(s string) int {
	s = strings.TrimLeft(s, " \t\n\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.ParseInt(s[:end], 10, 0)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return int(n)
}

func clampFloat(f float64) int {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	}
	return int(f)
}

type record = models.ApplicationRecord

func spouseAt(r *record, create bool) *models.Spouse {
	if r.Spouse == nil {
		if !create {
			return &models.Spouse{}
		}
		r.Spouse = &models.Spouse{}
	}
	return r.Spouse
}

func employmentAt(r *record, create bool) *models.Employment {
	if r.Employment == nil {
		if !create {
			return &models.Employment{}
		}
		r.Employment = &models.Employment{}
	}
	return r.Employment
}

func selfEmploymentAt(r *record, create bool) *models.SelfEmployment {
	if r.SelfEmployment == nil {
		if !create {
			return &models.SelfEmployment{}
		}
		r.SelfEmployment = &models.SelfEmployment{}
	}
	return r.SelfEmployment
}

func educationAt(r *record, create bool) *models.Education {
	if r.Education == nil {
		if !create {
			return &models.Education{}
		}
		r.Education = &models.Education{}
	}
	return r.Education
}

func sponsorAt(r *record, create bool) *models.SponsorDetails {
	if r.SponsorDetails == nil {
		if !create {
			return &models.SponsorDetails{}
		}
		r.SponsorDetails = &models.SponsorDetails{}
	}
	return r.SponsorDetails
}

func documentLenses(prefix string, doc func(*record) *models.IdentityDocument) map[string]Lens[record] {
	return map[string]Lens[record]{
		prefix + ".number":           text(func(r *record, _ bool) *string { return &doc(r).Number }),
		prefix + ".issuingAuthority": text(func(r *record, _ bool) *string { return &doc(r).IssuingAuthority }),
		prefix + ".dateOfIssue":      text(func(r *record, _ bool) *string { return &doc(r).DateOfIssue }),
		prefix + ".dateOfExpiry":     text(func(r *record, _ bool) *string { return &doc(r).DateOfExpiry }),
	}
}

var recordLenses = func() map[string]Lens[record] {
	lenses := map[string]Lens[record]{
		"personalInfo.email":          text(func(r *record, _ bool) *string { return &r.PersonalInfo.Email }),
		"personalInfo.phone":          text(func(r *record, _ bool) *string { return &r.PersonalInfo.Phone }),
		"personalInfo.firstName":      text(func(r *record, _ bool) *string { return &r.PersonalInfo.FirstName }),
		"personalInfo.lastName":       text(func(r *record, _ bool) *string { return &r.PersonalInfo.LastName }),
		"personalInfo.gender":         text(func(r *record, _ bool) *models.Gender { return &r.PersonalInfo.Gender }),
		"personalInfo.placeOfBirth":   text(func(r *record, _ bool) *string { return &r.PersonalInfo.PlaceOfBirth }),
		"personalInfo.hasNameChanged": flag(func(r *record, _ bool) *bool { return &r.PersonalInfo.HasNameChanged }),

		"maritalStatus":                  text(func(r *record, _ bool) *models.MaritalStatus { return &r.MaritalStatus }),
		"spouse.firstName":               text(func(r *record, c bool) *string { return &spouseAt(r, c).FirstName }),
		"spouse.lastName":                text(func(r *record, c bool) *string { return &spouseAt(r, c).LastName }),
		"spouse.dateOfBirth":             text(func(r *record, c bool) *string { return &spouseAt(r, c).DateOfBirth }),
		"spouse.nationality":             text(func(r *record, c bool) *string { return &spouseAt(r, c).Nationality }),
		"spouse.travelingWithYou":        flag(func(r *record, c bool) *bool { return &spouseAt(r, c).TravelingWithYou }),
		"currentAddress.street":          text(func(r *record, _ bool) *string { return &r.CurrentAddress.Street }),
		"currentAddress.city":            text(func(r *record, _ bool) *string { return &r.CurrentAddress.City }),
		"currentAddress.state":           text(func(r *record, _ bool) *string { return &r.CurrentAddress.State }),
		"currentAddress.postalCode":      text(func(r *record, _ bool) *string { return &r.CurrentAddress.PostalCode }),
		"currentAddress.country":         text(func(r *record, _ bool) *string { return &r.CurrentAddress.Country }),
		"currentAddress.yearsAtAddress":  number(func(r *record, _ bool) *int { return &r.CurrentAddress.YearsAtAddress }),
		"currentAddress.monthsAtAddress": number(func(r *record, _ bool) *int { return &r.CurrentAddress.MonthsAtAddress }),

		"employmentStatus":            text(func(r *record, _ bool) *models.EmploymentStatus { return &r.EmploymentStatus }),
		"employment.companyName":      text(func(r *record, c bool) *string { return &employmentAt(r, c).CompanyName }),
		"employment.jobTitle":         text(func(r *record, c bool) *string { return &employmentAt(r, c).JobTitle }),
		"employment.startDate":        text(func(r *record, c bool) *string { return &employmentAt(r, c).StartDate }),
		"employment.salary":           text(func(r *record, c bool) *string { return &employmentAt(r, c).Salary }),
		"employment.employerAddress":  text(func(r *record, c bool) *string { return &employmentAt(r, c).EmployerAddress }),
		"employment.employerPhone":    text(func(r *record, c bool) *string { return &employmentAt(r, c).EmployerPhone }),
		"selfEmployment.businessName": text(func(r *record, c bool) *string { return &selfEmploymentAt(r, c).BusinessName }),
		"selfEmployment.businessType": text(func(r *record, c bool) *string { return &selfEmploymentAt(r, c).BusinessType }),
		"selfEmployment.annualIncome": text(func(r *record, c bool) *string { return &selfEmploymentAt(r, c).AnnualIncome }),
		"selfEmployment.startDate":    text(func(r *record, c bool) *string { return &selfEmploymentAt(r, c).StartDate }),
		"education.institutionName":   text(func(r *record, c bool) *string { return &educationAt(r, c).InstitutionName }),
		"education.course":            text(func(r *record, c bool) *string { return &educationAt(r, c).Course }),
		"education.startDate":         text(func(r *record, c bool) *string { return &educationAt(r, c).StartDate }),
		"education.endDate":           text(func(r *record, c bool) *string { return &educationAt(r, c).EndDate }),
		"education.isFullTime":        flag(func(r *record, c bool) *bool { return &educationAt(r, c).IsFullTime }),

		"tripSponsor":                 text(func(r *record, _ bool) *models.TripSponsor { return &r.TripSponsor }),
		"sponsorDetails.name":         text(func(r *record, c bool) *string { return &sponsorAt(r, c).Name }),
		"sponsorDetails.relationship": text(func(r *record, c bool) *string { return &sponsorAt(r, c).Relationship }),
		"sponsorDetails.contactInfo":  text(func(r *record, c bool) *string { return &sponsorAt(r, c).ContactInfo }),
	}
	for p, l := range documentLenses("passport", func(r *record) *models.IdentityDocument { return &r.Passport }) {
		lenses[p] = l
	}
	for p, l := range documentLenses("nationalId", func(r *record) *models.IdentityDocument { return &r.NationalID }) {
		lenses[p] = l
	}
	return lenses
}()

var childLenses = map[string]Lens[models.Child]{
	"firstName":        text(func(c *models.Child, _ bool) *string { return &c.FirstName }),
	"lastName":         text(func(c *models.Child, _ bool) *string { return &c.LastName }),
	"dateOfBirth":      text(func(c *models.Child, _ bool) *string { return &c.DateOfBirth }),
	"relationship":     text(func(c *models.Child, _ bool) *string { return &c.Relationship }),
	"travelingWithYou": flag(func(c *models.Child, _ bool) *bool { return &c.TravelingWithYou }),
}

var previousAddressLenses = map[string]Lens[models.PreviousAddress]{
	"street":           text(func(a *models.PreviousAddress, _ bool) *string { return &a.Street }),
	"city":             text(func(a *models.PreviousAddress, _ bool) *string { return &a.City }),
	"state":            text(func(a *models.PreviousAddress, _ bool) *string { return &a.State }),
	"postalCode":       text(func(a *models.PreviousAddress, _ bool) *string { return &a.PostalCode }),
	"country":          text(func(a *models.PreviousAddress, _ bool) *string { return &a.Country }),
	"fromDate":         text(func(a *models.PreviousAddress, _ bool) *string { return &a.FromDate }),
	"toDate":           text(func(a *models.PreviousAddress, _ bool) *string { return &a.ToDate }),
	"reasonForLeaving": text(func(a *models.PreviousAddress, _ bool) *string { return &a.ReasonForLeaving }),
}

// Lookup returns the lens registered for a record path such as
// "passport.number".
func Lookup(path string) (Lens[models.ApplicationRecord], error) {
	l, ok := recordLenses[path]
	if !ok {
		return Lens[models.ApplicationRecord]{}, fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	return l, nil
}

// ChildField returns the lens for a child field such as "firstName".
func ChildField(name string) (Lens[models.Child], error) {
	l, ok := childLenses[name]
	if !ok {
		return Lens[models.Child]{}, fmt.Errorf("%w: children.%s", ErrUnknownPath, name)
	}
	return l, nil
}

// PreviousAddressField returns the lens for a previous-address field.
func PreviousAddressField(name string) (Lens[models.PreviousAddress], error) {
	l, ok := previousAddressLenses[name]
	if !ok {
		return Lens[models.PreviousAddress]{}, fmt.Errorf("%w: previousAddresses.%s", ErrUnknownPath, name)
	}
	return l, nil
}

// All lists every registered record path in sorted order.
func All() []string {
	out := make([]string, 0, len(recordLenses))
	for p := range recordLenses {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
