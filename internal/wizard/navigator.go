// Package wizard drives an applicant through the fixed sequence of steps.
// A step advances only from the current position and only after its own
// fields validate; there is no skipping ahead and no going back.
package wizard

import (
	"errors"
	"fmt"
	"sync"

	"intake/internal/application/models"
)

var (
	// ErrStepOutOfOrder is returned when a step other than the current one is
	// submitted.
	ErrStepOutOfOrder = errors.New("step is not the current step")
	// ErrCompleted is returned once the last step has been submitted.
	ErrCompleted = errors.New("wizard already completed")
)

// Router moves the front end to a new location.
type Router interface {
	Push(path string)
}

// Navigator tracks the current step and pushes the next route on advance.
type Navigator struct {
	mu      sync.Mutex
	current models.Step
	router  Router
}

// NewNavigator starts at the identity step.
func NewNavigator(router Router) *Navigator {
	return &Navigator{current: models.StepIdentity, router: router}
}

func (n *Navigator) Current() models.Step {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Advance moves past from, which must be the current step, and pushes the
// route of the step that follows it.
func (n *Navigator) Advance(from models.Step) (models.Step, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current == models.StepComplete {
		return models.StepComplete, ErrCompleted
	}
	if from != n.current {
		return n.current, fmt.Errorf("%w: submitted %s, current %s", ErrStepOutOfOrder, from, n.current)
	}
	n.current = from.Next()
	n.router.Push(n.current.Route())
	return n.current, nil
}

// Location is a Router that remembers the last pushed path. The HTTP API
// hands it to the client, which performs the actual navigation.
type Location struct {
	mu   sync.RWMutex
	path string
}

func NewLocation() *Location {
	return &Location{path: models.StepIdentity.Route()}
}

func (l *Location) Push(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.path = path
}

func (l *Location) Path() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.path
}
