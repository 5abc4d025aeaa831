package booking

import (
	"context"
	"log"
	"time"

	"github.com/AlexTLDR/little-lemon/internal/availability"
)

// AvailabilityFunc returns the bookable times for a date
type AvailabilityFunc func(date time.Time) ([]string, error)

// Controller owns the state of one reservation form. It is not safe for
// concurrent use; every rendered form gets its own controller.
type Controller struct {
	state     State
	fetch     AvailabilityFunc
	submitter Submitter
	now       func() time.Time
}

type Option func(*Controller)

// WithClock sets the source of "today". The location of the returned
// time is used to interpret date fields.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// WithAvailability replaces the availability lookup
func WithAvailability(fetch AvailabilityFunc) Option {
	return func(c *Controller) {
		c.fetch = fetch
	}
}

// NewController returns a controller for an empty form
func NewController(submitter Submitter, opts ...Option) *Controller {
	c := &Controller{
		state:     NewState(),
		fetch:     availability.Fetch,
		submitter: submitter,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Restore rebuilds a controller from a posted draft and touched set.
// Errors of touched fields are recomputed and the slots are derived from
// the draft's date.
func Restore(draft Draft, touched []Field, submitter Submitter, opts ...Option) *Controller {
	c := NewController(submitter, opts...)
	c.state.Draft = draft
	today := c.now()
	for _, f := range touched {
		c.state.Touched[f] = true
		c.state.Errors[f] = ValidateField(f, draft.Value(f), today)
	}
	if draft.Date != "" {
		c.loadSlots(draft.Date)
	}
	return c
}

// State returns a copy of the current state
func (c *Controller) State() State {
	return c.state.clone()
}

func (c *Controller) apply(ev Event) {
	c.state = Reduce(c.state, ev, c.now())
}

// Change records an edit. Editing the date reloads the available times.
func (c *Controller) Change(f Field, value string) {
	previous := c.state.Draft.Date
	c.apply(Changed{Field: f, Value: value})

	if f != FieldDate || c.state.Draft.Date == previous {
		return
	}
	if c.state.Draft.Date == "" {
		c.apply(SlotsLoaded{})
		return
	}
	c.loadSlots(c.state.Draft.Date)
}

// Blur marks a field as touched and validates it
func (c *Controller) Blur(f Field, value string) {
	c.Change(f, value)
	c.apply(Blurred{Field: f, Value: value})
}

func (c *Controller) loadSlots(value string) {
	date, err := ParseDate(value, c.now().Location())
	var slots []string
	if err == nil {
		slots, err = c.fetch(date)
	}
	if err != nil {
		log.Printf("Error fetching available times: %v", err)
		c.apply(SlotsFailed{})
		return
	}
	c.apply(SlotsLoaded{Slots: slots})
}

// ValidateField validates a single value against today's date
func (c *Controller) ValidateField(f Field, value string) string {
	return ValidateField(f, value, c.now())
}

// ValidateForm validates every required field, replacing all field errors.
// It reports whether the form is valid.
func (c *Controller) ValidateForm() bool {
	c.state.Errors = validateForm(c.state, c.now())
	return len(c.state.Errors) == 0
}

// CanSubmit reports whether the submit action should be enabled
func (c *Controller) CanSubmit() bool {
	return c.state.CanSubmit()
}

// Submit validates the form and, when valid, sends it through the
// submitter. It blocks until the submitter returns. A call made while a
// submission is in flight is ignored.
func (c *Controller) Submit(ctx context.Context) Outcome {
	if c.state.Submitting {
		return c.state.Outcome
	}

	c.apply(SubmitRequested{})
	if c.state.Errors.HasErrors() {
		return c.state.Outcome
	}

	c.apply(SubmitStarted{})
	defer c.apply(SubmitSettled{})

	draft := c.state.Draft
	task := Go(ctx, func(ctx context.Context) (Confirmation, error) {
		return c.submitter.Submit(ctx, draft)
	})
	confirmation, err := task.Wait()
	if err != nil {
		log.Printf("Submission error: %v", err)
	}

	c.apply(SubmitResolved{Success: confirmation.Accepted, Code: confirmation.Code, Err: err})
	return c.state.Outcome
}
