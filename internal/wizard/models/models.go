// Package models holds the views the wizard service returns to transport.
package models

import (
	"github.com/google/uuid"

	app "intake/internal/application/models"
	"intake/internal/application/validation"
	"intake/internal/application/visibility"
)

// SessionView is a read-only picture of a session after an operation.
type SessionView struct {
	ID          uuid.UUID
	CurrentStep app.Step
	Route       string
	Version     uint64
	Record      app.ApplicationRecord
	// Visible lists the conditional sections shown on the current step.
	Visible []visibility.Section
}

// StepView describes what a step currently renders.
type StepView struct {
	Step    app.Step
	Route   string
	Current bool
	Visible []visibility.Section
	// PreviousAddressesMissing is set on the address step when the history
	// section is shown but still empty.
	PreviousAddressesMissing bool
}

// SubmitResult is the outcome of submitting a step.
type SubmitResult struct {
	Step     app.Step
	Advanced bool
	Next     app.Step
	Route    string
	Fields   validation.FieldErrors
	Banner   string
}

// AnalysisResult reports a document analysis. Advisory is set when analysis
// failed; the wizard carries on regardless.
type AnalysisResult struct {
	Kind     string
	Applied  []string
	Advisory string
}
