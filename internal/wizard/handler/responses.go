package handler

import (
	"github.com/google/uuid"

	app "intake/internal/application/models"
	"intake/internal/application/validation"
	"intake/internal/application/visibility"
	"intake/internal/wizard/models"
)

type SessionResponse struct {
	ID          uuid.UUID             `json:"id"`
	CurrentStep app.Step              `json:"currentStep"`
	Route       string                `json:"route"`
	Version     uint64                `json:"version"`
	Record      app.ApplicationRecord `json:"record"`
	Visible     []visibility.Section  `json:"visibleSections"`
}

func toSessionResponse(v *models.SessionView) SessionResponse {
	return SessionResponse{
		ID:          v.ID,
		CurrentStep: v.CurrentStep,
		Route:       v.Route,
		Version:     v.Version,
		Record:      v.Record,
		Visible:     v.Visible,
	}
}

type StepResponse struct {
	Step                     app.Step             `json:"step"`
	Route                    string               `json:"route"`
	Current                  bool                 `json:"current"`
	Visible                  []visibility.Section `json:"visibleSections"`
	PreviousAddressesMissing bool                 `json:"previousAddressesMissing,omitempty"`
}

func toStepResponse(v *models.StepView) StepResponse {
	return StepResponse{
		Step:                     v.Step,
		Route:                    v.Route,
		Current:                  v.Current,
		Visible:                  v.Visible,
		PreviousAddressesMissing: v.PreviousAddressesMissing,
	}
}

type SubmitResponse struct {
	Step     app.Step               `json:"step"`
	Advanced bool                   `json:"advanced"`
	Next     app.Step               `json:"nextStep,omitempty"`
	Route    string                 `json:"route,omitempty"`
	Fields   validation.FieldErrors `json:"fields,omitempty"`
	Banner   string                 `json:"banner,omitempty"`
}

func toSubmitResponse(v *models.SubmitResult) SubmitResponse {
	return SubmitResponse{
		Step:     v.Step,
		Advanced: v.Advanced,
		Next:     v.Next,
		Route:    v.Route,
		Fields:   v.Fields,
		Banner:   v.Banner,
	}
}

type AnalysisResponse struct {
	Kind     string   `json:"kind"`
	Applied  []string `json:"applied"`
	Advisory string   `json:"advisory,omitempty"`
}

type FieldsResponse struct {
	Paths []string `json:"paths"`
}
