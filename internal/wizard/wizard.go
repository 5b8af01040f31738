package wizard

import (
	"intake/internal/application/models"
	"intake/internal/application/store"
	"intake/internal/application/validation"
)

// Wizard binds one record store to one navigator.
type Wizard struct {
	Store     *store.Store
	Navigator *Navigator
	validator *validation.Validator
}

func New(s *store.Store, router Router, v *validation.Validator) *Wizard {
	return &Wizard{Store: s, Navigator: NewNavigator(router), validator: v}
}

// Outcome of a step submission. Next is only set when the step advanced.
type Outcome struct {
	Step       models.Step
	Validation validation.Result
	Next       models.Step
}

// Advanced reports whether the submission moved the wizard forward.
func (o Outcome) Advanced() bool {
	return o.Next != ""
}

// Submit validates step against the current record and, when it passes,
// advances the navigator. Validation failures are reported in the outcome,
// not as an error; errors mean the step could not be submitted at all.
func (w *Wizard) Submit(step models.Step) (Outcome, error) {
	out := Outcome{Step: step}
	current := w.Navigator.Current()
	if current == models.StepComplete {
		return out, ErrCompleted
	}
	if step != current {
		return out, ErrStepOutOfOrder
	}

	record := w.Store.Snapshot()
	out.Validation = w.validator.ValidateStep(step, &record)
	if !out.Validation.Valid() {
		return out, nil
	}

	next, err := w.Navigator.Advance(step)
	if err != nil {
		return out, err
	}
	out.Next = next
	return out, nil
}
