package visibility

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"intake/internal/application/models"
)

func TestPreviousAddressesVisible(t *testing.T) {
	cases := []struct {
		years, months int
		visible       bool
	}{
		{0, 0, true},
		{0, 11, true},
		{1, 0, false},
		{0, 12, false},
		{2, 3, false},
		{768614336404564651, 0, false},
		{math.MaxInt, 11, false},
	}
	for _, tc := range cases {
		r := models.NewRecord()
		r.CurrentAddress.YearsAtAddress = tc.years
		r.CurrentAddress.MonthsAtAddress = tc.months
		assert.Equal(t, tc.visible, PreviousAddressesVisible(&r), "%d years %d months", tc.years, tc.months)
	}
}

func TestPreviousAddressesMissing(t *testing.T) {
	r := models.NewRecord()
	r.CurrentAddress.MonthsAtAddress = 6
	assert.True(t, PreviousAddressesMissing(&r))

	r.PreviousAddresses = []models.PreviousAddress{{ID: "a1"}}
	assert.False(t, PreviousAddressesMissing(&r))

	r.PreviousAddresses = nil
	r.CurrentAddress.YearsAtAddress = 3
	assert.False(t, PreviousAddressesMissing(&r))
}

func TestEmploymentSection(t *testing.T) {
	cases := map[models.EmploymentStatus]Section{
		models.EmploymentStatusEmployed:     SectionEmployment,
		models.EmploymentStatusSelfEmployed: SectionSelfEmployment,
		models.EmploymentStatusStudent:      SectionEducation,
	}
	for status, want := range cases {
		r := models.NewRecord()
		r.EmploymentStatus = status
		got, ok := EmploymentSection(&r)
		assert.True(t, ok, status)
		assert.Equal(t, want, got)
	}

	for _, status := range []models.EmploymentStatus{
		models.EmploymentStatusUnset, models.EmploymentStatusRetired, models.EmploymentStatusUnemployed,
	} {
		r := models.NewRecord()
		r.EmploymentStatus = status
		_, ok := EmploymentSection(&r)
		assert.False(t, ok, status)
	}
}

func TestForStep(t *testing.T) {
	r := models.NewRecord()
	r.MaritalStatus = models.MaritalStatusMarried
	r.CurrentAddress.YearsAtAddress = 5
	r.EmploymentStatus = models.EmploymentStatusEmployed
	r.TripSponsor = models.TripSponsorEmployer

	assert.Equal(t, []Section{SectionSpouse}, ForStep(models.StepFamily, &r))
	assert.Empty(t, ForStep(models.StepAddressHistory, &r))
	assert.Equal(t, []Section{SectionEmployment, SectionSponsorDetails}, ForStep(models.StepFinancial, &r))
	assert.Empty(t, ForStep(models.StepIdentity, &r))

	r.TripSponsor = models.TripSponsorSelf
	r.MaritalStatus = models.MaritalStatusDivorced
	assert.Empty(t, ForStep(models.StepFamily, &r))
	assert.Equal(t, []Section{SectionEmployment}, ForStep(models.StepFinancial, &r))
}
