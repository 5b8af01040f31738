package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"intake/internal/analysis"
	analysismocks "intake/internal/analysis/mocks"
	app "intake/internal/application/models"
	"intake/internal/application/visibility"
	"intake/internal/wizard/metrics"
	"intake/internal/wizard/session"
	dErrors "intake/pkg/domain-errors"
	"intake/pkg/requestcontext"
)

type ServiceSuite struct {
	suite.Suite
	ctx      context.Context
	sessions *session.InMemoryStore
	analyzer *analysismocks.MockAnalyzer
	metrics  *metrics.Metrics
	service  *Service
}

func (s *ServiceSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.ctx = requestcontext.WithRequestID(context.Background(), "req-test")
	s.sessions = session.NewInMemoryStore(time.Hour)
	s.analyzer = analysismocks.NewMockAnalyzer(ctrl)
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.service = New(s.sessions, s.analyzer,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithMetrics(s.metrics),
	)
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) start() uuid.UUID {
	v, err := s.service.Start(s.ctx)
	s.Require().NoError(err)
	return v.ID
}

func (s *ServiceSuite) TestStart() {
	v, err := s.service.Start(s.ctx)
	s.Require().NoError(err)
	s.Equal(app.StepIdentity, v.CurrentStep)
	s.Equal("/", v.Route)
	s.Equal(app.GenderMale, v.Record.PersonalInfo.Gender)
	s.Equal(float64(1), promtest.ToFloat64(s.metrics.SessionsStarted))
}

func (s *ServiceSuite) TestUnknownSessionIsNotFound() {
	_, err := s.service.Get(s.ctx, uuid.New())
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestUpdateField() {
	id := s.start()

	s.Run("creates nested containers", func() {
		v, err := s.service.UpdateField(s.ctx, id, "spouse.firstName", "Rui")
		s.Require().NoError(err)
		s.Require().NotNil(v.Record.Spouse)
		s.Equal("Rui", v.Record.Spouse.FirstName)
		s.Equal(float64(1), promtest.ToFloat64(s.metrics.RecordWrites))
	})

	s.Run("unknown path is an unknown field error", func() {
		_, err := s.service.UpdateField(s.ctx, id, "spouse.shoeSize", "42")
		s.True(dErrors.HasCode(err, dErrors.CodeUnknownField))
	})

	s.Run("wrong value type is a bad request", func() {
		_, err := s.service.UpdateField(s.ctx, id, "personalInfo.email", map[string]any{"x": 1})
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})
}

func (s *ServiceSuite) TestEmploymentSwitchKeepsSubRecords() {
	id := s.start()
	_, err := s.service.UpdateField(s.ctx, id, "employmentStatus", "Employed")
	s.Require().NoError(err)
	_, err = s.service.UpdateField(s.ctx, id, "employment.companyName", "Acme")
	s.Require().NoError(err)
	_, err = s.service.UpdateField(s.ctx, id, "employmentStatus", "Student")
	s.Require().NoError(err)

	s.Require().NoError(s.advanceTo(id, app.StepFinancial))
	sv, err := s.service.StepView(s.ctx, id, app.StepFinancial)
	s.Require().NoError(err)
	s.Equal([]visibility.Section{visibility.SectionEducation}, sv.Visible)

	v, err := s.service.UpdateField(s.ctx, id, "employmentStatus", "Employed")
	s.Require().NoError(err)
	s.Require().NotNil(v.Record.Employment)
	s.Equal("Acme", v.Record.Employment.CompanyName)
	s.Equal([]visibility.Section{visibility.SectionEmployment}, v.Visible)
}

// advanceTo fills the minimum each step needs and submits until target is
// the current step.
func (s *ServiceSuite) advanceTo(id uuid.UUID, target app.Step) error {
	single := app.MaritalStatusSingle
	_, err := s.service.Merge(s.ctx, id, app.Section{
		PersonalInfo: &app.PersonalInfo{
			Email: "ana@example.com", Phone: "0123456789", FirstName: "Ana", LastName: "Silva",
			Gender: app.GenderFemale, PlaceOfBirth: "Porto",
		},
		MaritalStatus: &single,
		CurrentAddress: &app.CurrentAddress{
			Street: "1 High St", City: "Leeds", State: "West Yorkshire", PostalCode: "LS1 1AA", Country: "UK",
			YearsAtAddress: 4,
		},
	})
	if err != nil {
		return err
	}
	for _, step := range app.Steps {
		if step == target {
			return nil
		}
		res, err := s.service.Submit(s.ctx, id, step)
		if err != nil {
			return err
		}
		if !res.Advanced {
			return errors.New("step " + step.String() + " did not advance")
		}
	}
	return nil
}

func (s *ServiceSuite) TestSubmit() {
	s.Run("advances and reports the next route", func() {
		id := s.start()
		res, err := s.service.Submit(s.ctx, id, app.StepIdentity)
		s.Require().NoError(err)
		s.True(res.Advanced)
		s.Equal(app.StepPersonal, res.Next)
		s.Equal("/personal-info", res.Route)
	})

	s.Run("invalid step returns field errors without advancing", func() {
		id := s.start()
		s.Require().NoError(s.advanceTo(id, app.StepAddressHistory))
		_, err := s.service.UpdateField(s.ctx, id, "currentAddress.yearsAtAddress", 0)
		s.Require().NoError(err)
		_, err = s.service.UpdateField(s.ctx, id, "currentAddress.monthsAtAddress", 4)
		s.Require().NoError(err)

		res, err := s.service.Submit(s.ctx, id, app.StepAddressHistory)
		s.Require().NoError(err)
		s.False(res.Advanced)
		s.NotEmpty(res.Banner)

		v, err := s.service.Get(s.ctx, id)
		s.Require().NoError(err)
		s.Equal(app.StepAddressHistory, v.CurrentStep)
		s.Equal([]visibility.Section{visibility.SectionPreviousAddresses}, v.Visible)
	})

	s.Run("out of order submission is a step_out_of_order error", func() {
		id := s.start()
		_, err := s.service.Submit(s.ctx, id, app.StepFinancial)
		s.True(dErrors.HasCode(err, dErrors.CodeStepOutOfOrder))
	})
}

func (s *ServiceSuite) TestLists() {
	id := s.start()

	child, err := s.service.AddChild(s.ctx, id)
	s.Require().NoError(err)
	s.NotEmpty(child.ID)
	s.Require().NoError(s.service.UpdateChild(s.ctx, id, child.ID, "firstName", "Leo"))

	err = s.service.UpdateChild(s.ctx, id, "nope", "firstName", "Leo")
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	address, err := s.service.AddPreviousAddress(s.ctx, id)
	s.Require().NoError(err)
	s.Require().NoError(s.service.UpdatePreviousAddress(s.ctx, id, address.ID, "city", "York"))
	s.Require().NoError(s.service.RemovePreviousAddress(s.ctx, id, address.ID))
	s.Require().NoError(s.service.RemoveChild(s.ctx, id, child.ID))

	v, err := s.service.Get(s.ctx, id)
	s.Require().NoError(err)
	s.Empty(v.Record.Children)
	s.Empty(v.Record.PreviousAddresses)
}

func (s *ServiceSuite) TestAnalyze() {
	s.Run("stub failure becomes an advisory", func() {
		id := s.start()
		s.analyzer.EXPECT().Analyze(gomock.Any(), gomock.Any()).
			Return(nil, &analysis.Failure{Advisory: analysis.StubAdvisory})

		res, err := s.service.Analyze(s.ctx, id, analysis.Document{Kind: analysis.DocumentNationalID})
		s.Require().NoError(err)
		s.Equal(analysis.StubAdvisory, res.Advisory)
		s.Empty(res.Applied)
	})

	s.Run("extracted fields are written to the document", func() {
		id := s.start()
		s.analyzer.EXPECT().Analyze(gomock.Any(), gomock.Any()).
			Return(&analysis.Result{Fields: map[string]string{"number": "X123", "colour": "red"}}, nil)

		res, err := s.service.Analyze(s.ctx, id, analysis.Document{Kind: analysis.DocumentNationalID})
		s.Require().NoError(err)
		s.Equal([]string{"nationalId.number"}, res.Applied)

		v, err := s.service.Get(s.ctx, id)
		s.Require().NoError(err)
		s.Equal("X123", v.Record.NationalID.Number)
	})

	s.Run("unexpected analyzer error is internal", func() {
		id := s.start()
		s.analyzer.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(nil, errors.New("ocr crashed"))

		_, err := s.service.Analyze(s.ctx, id, analysis.Document{Kind: analysis.DocumentPassport})
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})
}
