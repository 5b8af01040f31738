package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"intake/internal/application/models"
	"intake/internal/application/paths"
	"intake/pkg/platform/sentinel"
)

type StoreSuite struct {
	suite.Suite
	store *Store
	ids   int
}

func (s *StoreSuite) SetupTest() {
	s.ids = 0
	s.store = New(WithIDGenerator(func() string {
		s.ids++
		return fmt.Sprintf("id-%d", s.ids)
	}))
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) TestNewRecordDefaults() {
	r := s.store.Snapshot()
	s.Equal(models.GenderMale, r.PersonalInfo.Gender)
	s.False(r.PersonalInfo.HasNameChanged)
	s.NotNil(r.Children)
	s.Empty(r.Children)
	s.NotNil(r.PreviousAddresses)
	s.Nil(r.Spouse)
	s.Equal(models.MaritalStatusUnset, r.MaritalStatus)
	s.Zero(s.store.Version())
}

func (s *StoreSuite) TestMergeSection() {
	s.Run("replaces present keys and leaves the rest", func() {
		s.store.MergeSection(models.Section{PersonalInfo: &models.PersonalInfo{FirstName: "Ana"}})
		married := models.MaritalStatusMarried
		s.store.MergeSection(models.Section{MaritalStatus: &married})

		r := s.store.Snapshot()
		s.Equal("Ana", r.PersonalInfo.FirstName)
		s.Equal(models.MaritalStatusMarried, r.MaritalStatus)
	})

	s.Run("replaces a key wholesale rather than deep merging", func() {
		s.store.MergeSection(models.Section{CurrentAddress: &models.CurrentAddress{City: "Leeds", YearsAtAddress: 3}})
		s.store.MergeSection(models.Section{CurrentAddress: &models.CurrentAddress{Street: "1 High St"}})

		r := s.store.Snapshot()
		s.Equal("1 High St", r.CurrentAddress.Street)
		s.Empty(r.CurrentAddress.City)
		s.Zero(r.CurrentAddress.YearsAtAddress)
	})

	s.Run("assigns identifiers to list entries without one", func() {
		children := []models.Child{{FirstName: "Leo"}, {ID: "kept", FirstName: "Mia"}}
		s.store.MergeSection(models.Section{Children: &children})

		r := s.store.Snapshot()
		s.Require().Len(r.Children, 2)
		s.NotEmpty(r.Children[0].ID)
		s.Equal("kept", r.Children[1].ID)
	})

	s.Run("repeated identifiers in one list are replaced", func() {
		first, err := s.store.AddChild()
		s.Require().NoError(err)
		children := []models.Child{{ID: first.ID, FirstName: "Leo"}, {ID: first.ID, FirstName: "Mia"}}
		s.store.MergeSection(models.Section{Children: &children})

		r := s.store.Snapshot()
		s.Require().Len(r.Children, 2)
		s.Equal(first.ID, r.Children[0].ID)
		s.NotEqual(r.Children[0].ID, r.Children[1].ID)

		s.Require().NoError(s.store.RemoveChild(first.ID))
		s.Len(s.store.Snapshot().Children, 1)
	})

	s.Run("removed identifiers are never handed back", func() {
		address, err := s.store.AddPreviousAddress()
		s.Require().NoError(err)
		s.Require().NoError(s.store.RemovePreviousAddress(address.ID))

		revived := []models.PreviousAddress{{ID: address.ID, City: "York"}}
		s.store.MergeSection(models.Section{PreviousAddresses: &revived})

		r := s.store.Snapshot()
		s.Require().Len(r.PreviousAddresses, 1)
		s.NotEqual(address.ID, r.PreviousAddresses[0].ID)
		s.Equal("York", r.PreviousAddresses[0].City)
	})

	s.Run("entries dropped by a merge are retired", func() {
		child, err := s.store.AddChild()
		s.Require().NoError(err)
		none := []models.Child{}
		s.store.MergeSection(models.Section{Children: &none})

		back := []models.Child{{ID: child.ID}}
		s.store.MergeSection(models.Section{Children: &back})
		s.NotEqual(child.ID, s.store.Snapshot().Children[0].ID)
	})

	s.Run("switching marital status keeps spouse data", func() {
		married := models.MaritalStatusMarried
		single := models.MaritalStatusSingle
		s.store.MergeSection(models.Section{MaritalStatus: &married, Spouse: &models.Spouse{FirstName: "Rui"}})
		s.store.MergeSection(models.Section{MaritalStatus: &single})
		s.store.MergeSection(models.Section{MaritalStatus: &married})

		r := s.store.Snapshot()
		s.Require().NotNil(r.Spouse)
		s.Equal("Rui", r.Spouse.FirstName)
	})
}

func (s *StoreSuite) TestUpdateAtPath() {
	s.Run("writes a leaf inside an always-present section", func() {
		s.Require().NoError(s.store.UpdateAtPath("nationalId.number", "X123"))

		r := s.store.Snapshot()
		s.Equal("X123", r.NationalID.Number)
		s.Empty(r.Passport.Number)
	})

	s.Run("creates a missing optional sub-record", func() {
		s.Require().NoError(s.store.UpdateAtPath("sponsorDetails.name", "Acme Ltd"))

		r := s.store.Snapshot()
		s.Require().NotNil(r.SponsorDetails)
		s.Equal("Acme Ltd", r.SponsorDetails.Name)
		s.Empty(r.SponsorDetails.ContactInfo)
	})

	s.Run("coerces numeric text and unparsable input", func() {
		s.Require().NoError(s.store.UpdateAtPath("currentAddress.yearsAtAddress", "4"))
		s.Require().NoError(s.store.UpdateAtPath("currentAddress.monthsAtAddress", "abc"))

		r := s.store.Snapshot()
		s.Equal(4, r.CurrentAddress.YearsAtAddress)
		s.Zero(r.CurrentAddress.MonthsAtAddress)
	})

	s.Run("rejects unknown paths without committing", func() {
		before := s.store.Version()

		err := s.store.UpdateAtPath("passport.colour", "red")
		s.Require().ErrorIs(err, paths.ErrUnknownPath)
		s.Equal(before, s.store.Version())
	})
}

func (s *StoreSuite) TestSnapshotIsIsolated() {
	s.Require().NoError(s.store.UpdateAtPath("spouse.firstName", "Rui"))

	r := s.store.Snapshot()
	r.Spouse.FirstName = "changed"
	r.Children = append(r.Children, models.Child{ID: "rogue"})

	fresh := s.store.Snapshot()
	s.Equal("Rui", fresh.Spouse.FirstName)
	s.Empty(fresh.Children)
}

func (s *StoreSuite) TestSubscribe() {
	var seen []uint64
	var last models.ApplicationRecord
	unsubscribe := s.store.Subscribe(func(version uint64, r models.ApplicationRecord) {
		seen = append(seen, version)
		last = r
	})

	s.Require().NoError(s.store.UpdateAtPath("personalInfo.email", "a@"))
	s.Require().NoError(s.store.UpdateAtPath("personalInfo.email", "a@b.co"))
	s.Equal([]uint64{1, 2}, seen)
	s.Equal("a@b.co", last.PersonalInfo.Email)

	unsubscribe()
	s.Require().NoError(s.store.UpdateAtPath("personalInfo.phone", "12345"))
	s.Len(seen, 2)
}

func (s *StoreSuite) TestLists() {
	s.Run("children get distinct ids that survive removal", func() {
		a, err := s.store.AddChild()
		s.Require().NoError(err)
		b, err := s.store.AddChild()
		s.Require().NoError(err)
		s.NotEqual(a.ID, b.ID)

		s.Require().NoError(s.store.RemoveChild(a.ID))
		c, err := s.store.AddChild()
		s.Require().NoError(err)
		s.NotEqual(a.ID, c.ID)

		r := s.store.Snapshot()
		s.Require().Len(r.Children, 2)
		s.Equal(b.ID, r.Children[0].ID)
		s.Equal(c.ID, r.Children[1].ID)
	})

	s.Run("updates one field of one child", func() {
		s.store = New()
		a, _ := s.store.AddChild()
		b, _ := s.store.AddChild()

		s.Require().NoError(s.store.UpdateChild(b.ID, "travelingWithYou", "yes"))

		r := s.store.Snapshot()
		s.False(r.Children[0].TravelingWithYou)
		s.True(r.Children[1].TravelingWithYou)
		s.Equal(a.ID, r.Children[0].ID)
	})

	s.Run("unknown child is not found", func() {
		err := s.store.UpdateChild("missing", "firstName", "x")
		s.ErrorIs(err, sentinel.ErrNotFound)
		s.ErrorIs(s.store.RemoveChild("missing"), sentinel.ErrNotFound)
	})

	s.Run("unknown child field is rejected", func() {
		child, _ := s.store.AddChild()
		s.ErrorIs(s.store.UpdateChild(child.ID, "id", "x"), paths.ErrUnknownPath)
	})

	s.Run("previous addresses follow the same rules", func() {
		s.store = New()
		a, err := s.store.AddPreviousAddress()
		s.Require().NoError(err)
		s.Require().NoError(s.store.UpdatePreviousAddress(a.ID, "city", "York"))

		r := s.store.Snapshot()
		s.Equal("York", r.PreviousAddresses[0].City)

		s.Require().NoError(s.store.RemovePreviousAddress(a.ID))
		s.Empty(s.store.Snapshot().PreviousAddresses)
		s.ErrorIs(s.store.RemovePreviousAddress(a.ID), sentinel.ErrNotFound)
	})
}

func (s *StoreSuite) TestConcurrentWritersAreSerialized() {
	s.store = New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.store.AddChild()
		}()
	}
	wg.Wait()

	s.Len(s.store.Snapshot().Children, 50)
	s.Equal(uint64(50), s.store.Version())
}
