package models

import "fmt"

// Step is one page of the wizard, bound to a slice of the record.
type Step string

const (
	StepIdentity       Step = "identity"
	StepPersonal       Step = "personal"
	StepFamily         Step = "family"
	StepAddressHistory Step = "address-history"
	StepFinancial      Step = "financial"
	// StepComplete is reached after the last step validates. It has no form.
	StepComplete Step = "complete"
)

// Steps is the fixed wizard order.
var Steps = []Step{StepIdentity, StepPersonal, StepFamily, StepAddressHistory, StepFinancial}

var stepRoutes = map[Step]string{
	StepIdentity:       "/",
	StepPersonal:       "/personal-info",
	StepFamily:         "/personal-details",
	StepAddressHistory: "/address-history",
	StepFinancial:      "/financial-details",
	StepComplete:       "/complete",
}

// ParseStep validates a step name taken from a URL or request body.
func ParseStep(s string) (Step, error) {
	step := Step(s)
	if _, ok := stepRoutes[step]; !ok {
		return "", fmt.Errorf("unknown step: %s", s)
	}
	return step, nil
}

// Route is the front-end path a step is rendered at.
func (s Step) Route() string {
	return stepRoutes[s]
}

// Next returns the step following s, StepComplete after the last step.
func (s Step) Next() Step {
	for i, step := range Steps {
		if step == s && i+1 < len(Steps) {
			return Steps[i+1]
		}
	}
	return StepComplete
}

func (s Step) String() string {
	return string(s)
}
