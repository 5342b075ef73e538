package wizard

import (
	"context"
	"errors"
	"fmt"

	"github.com/oklog/ulid/v2"

	adopcion "github.com/facundocornejo/adopcionResposanble"
)

// Phase is the coarse lifecycle of a wizard instance. While PhaseFilling,
// the fine-grained state is the current step.
type Phase int

const (
	// PhaseFilling means the applicant is moving through the steps.
	PhaseFilling Phase = iota
	// PhaseSubmitting means a submission is in flight. The caller must
	// not fire another one.
	PhaseSubmitting
	// PhaseSubmitted is terminal: the instance cannot be reused.
	PhaseSubmitted
)

var (
	// ErrAnimalNotAdoptable is returned when the target animal is not in
	// an adoptable state; the wizard refuses to start.
	ErrAnimalNotAdoptable = errors.New("wizard: animal is not available for adoption")
	// ErrNotOnFinalStep is returned by Submit before step 4.
	ErrNotOnFinalStep = errors.New("wizard: submission is only possible from the final step")
	// ErrSubmitInFlight is returned by Submit while a submission is
	// already in flight.
	ErrSubmitInFlight = errors.New("wizard: submission already in progress")
	// ErrAlreadySubmitted is returned once the wizard reached its
	// terminal state.
	ErrAlreadySubmitted = errors.New("wizard: request already submitted")
)

// RequestCreator is the backend surface the wizard needs for submission.
// It is satisfied by *adopcion.RequestsService.
type RequestCreator interface {
	Create(ctx context.Context, input adopcion.CreateAdoptionRequestInput) (*adopcion.AdoptionRequest, error)
}

// Controller drives one adoption request form for one target animal. It
// owns navigation and validation state; rendering and input collection
// belong to the view.
type Controller struct {
	id      ulid.ULID
	animal  *adopcion.Animal
	creator RequestCreator
	compose Composer

	draft   Draft
	current Step
	phase   Phase
}

// Option configures a Controller.
type Option func(*Controller)

// WithComposer overrides the cohabitation summary synthesis.
func WithComposer(c Composer) Option {
	return func(w *Controller) {
		w.compose = c
	}
}

// New creates a wizard for the given animal. The animal must exist and be
// open to adoption requests, otherwise ErrAnimalNotAdoptable is returned
// and the caller shows a not-available message instead.
func New(animal *adopcion.Animal, creator RequestCreator, opts ...Option) (*Controller, error) {
	if animal == nil {
		return nil, ErrAnimalNotAdoptable
	}
	if !animal.Estado.Adoptable() {
		return nil, fmt.Errorf("%w: %s", ErrAnimalNotAdoptable, animal.Estado)
	}

	w := &Controller{
		id:      ulid.Make(),
		animal:  animal,
		creator: creator,
		compose: ComposeCohabitation,
		current: FirstStep,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// ID returns the draft instance identifier, for logging.
func (w *Controller) ID() string {
	return w.id.String()
}

// Animal returns the target animal.
func (w *Controller) Animal() *adopcion.Animal {
	return w.animal
}

// Draft exposes the mutable form state for the view to fill in.
func (w *Controller) Draft() *Draft {
	return &w.draft
}

// Current returns the step the applicant is on.
func (w *Controller) Current() Step {
	return w.current
}

// Phase returns the coarse lifecycle state.
func (w *Controller) Phase() Phase {
	return w.phase
}

// ValidateStep runs only the given step's rules against the draft.
func (w *Controller) ValidateStep(step Step) StepResult {
	return ValidateStep(step, &w.draft)
}

// Next validates the current step. On failure the step does not change
// and the result carries every failing field. On success the wizard
// advances one step; past the last step it is a no-op.
func (w *Controller) Next() StepResult {
	if w.phase != PhaseFilling {
		return StepResult{Valid: true}
	}
	res := ValidateStep(w.current, &w.draft)
	if !res.Valid {
		return res
	}
	if w.current < LastStep {
		w.current++
	}
	return res
}

// Previous retreats one step unconditionally, never below the first. A
// user must always be able to go back, regardless of draft validity.
func (w *Controller) Previous() {
	if w.phase != PhaseFilling {
		return
	}
	if w.current > FirstStep {
		w.current--
	}
}

// GoTo jumps directly to an already-visited step. Jumping forward would
// bypass validation and is refused; the return value reports whether the
// jump happened.
func (w *Controller) GoTo(step Step) bool {
	if w.phase != PhaseFilling {
		return false
	}
	if step < FirstStep || step >= w.current {
		return false
	}
	w.current = step
	return true
}

// Submit composes the draft into the backend's shape and sends it. It is
// only callable from the final step; it first re-runs that step's
// validation and, on failure, reports the field errors without any
// backend call. On backend failure the wizard stays on the final step so
// the applicant can retry. Success is terminal.
func (w *Controller) Submit(ctx context.Context) (*adopcion.AdoptionRequest, StepResult, error) {
	switch w.phase {
	case PhaseSubmitted:
		return nil, StepResult{Valid: true}, ErrAlreadySubmitted
	case PhaseSubmitting:
		return nil, StepResult{Valid: true}, ErrSubmitInFlight
	}
	if w.current != LastStep {
		return nil, StepResult{Valid: true}, ErrNotOnFinalStep
	}

	res := ValidateStep(LastStep, &w.draft)
	if !res.Valid {
		return nil, res, nil
	}

	w.phase = PhaseSubmitting
	input := composeInput(&w.draft, w.animal.ID, w.compose)
	created, err := w.creator.Create(ctx, input)
	if err != nil {
		w.phase = PhaseFilling
		return nil, res, err
	}

	w.phase = PhaseSubmitted
	return created, res, nil
}
