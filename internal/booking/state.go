package booking

import (
	"maps"
	"slices"
	"time"
)

// FieldErrors maps a field to its current validation message
type FieldErrors map[Field]string

// Get returns the message for f, "" when the field is valid
func (e FieldErrors) Get(f Field) string {
	return e[f]
}

// HasErrors reports whether any field holds a non-empty message
func (e FieldErrors) HasErrors() bool {
	for _, msg := range e {
		if msg != "" {
			return true
		}
	}
	return false
}

// TouchedSet holds the fields the user has left at least once
type TouchedSet map[Field]bool

// Fields returns the touched fields in display order
func (t TouchedSet) Fields() []Field {
	var fields []Field
	for _, f := range AllFields {
		if t[f] {
			fields = append(fields, f)
		}
	}
	return fields
}

type OutcomeStatus int

const (
	NotAttempted OutcomeStatus = iota
	Succeeded
	Failed
)

func (s OutcomeStatus) String() string {
	switch s {
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "not_attempted"
	}
}

// Outcome is the form-level result shown above the form.
// Email and Code belong to the confirmed reservation.
type Outcome struct {
	Status OutcomeStatus
	Reason string
	Email  string
	Code   string
}

// State is everything one rendered reservation form owns
type State struct {
	Draft      Draft
	Errors     FieldErrors
	Touched    TouchedSet
	Slots      []string
	Submitting bool
	Outcome    Outcome
}

// NewState returns the state of a freshly mounted form
func NewState() State {
	return State{
		Draft:   NewDraft(),
		Errors:  FieldErrors{},
		Touched: TouchedSet{},
	}
}

func (s State) clone() State {
	s.Errors = maps.Clone(s.Errors)
	if s.Errors == nil {
		s.Errors = FieldErrors{}
	}
	s.Touched = maps.Clone(s.Touched)
	if s.Touched == nil {
		s.Touched = TouchedSet{}
	}
	s.Slots = slices.Clone(s.Slots)
	return s
}

// CanSubmit reports whether every required field has a value, no field
// currently holds an error and the chosen time is among the slots
func (s State) CanSubmit() bool {
	for _, f := range RequiredFields {
		if s.Draft.Value(f) == "" {
			return false
		}
	}
	if !slices.Contains(s.Slots, s.Draft.Time) {
		return false
	}
	return !s.Errors.HasErrors()
}

// TimeEnabled reports whether the time select can be used
func (s State) TimeEnabled() bool {
	return s.Draft.Date != ""
}

// ErrorFor returns the message to display for f. Errors of untouched
// fields stay hidden.
func (s State) ErrorFor(f Field) string {
	if !s.Touched[f] {
		return ""
	}
	return s.Errors.Get(f)
}

// Event is an input to Reduce
type Event interface {
	event()
}

// Changed is a field edit
type Changed struct {
	Field Field
	Value string
}

// Blurred is the user leaving a field
type Blurred struct {
	Field Field
	Value string
}

// SlotsLoaded replaces the available times
type SlotsLoaded struct {
	Slots []string
}

// SlotsFailed reports that times could not be loaded for the new date
type SlotsFailed struct{}

// SubmitRequested touches and validates every field
type SubmitRequested struct{}

// SubmitStarted marks the submission call as in flight
type SubmitStarted struct{}

// SubmitResolved carries the result of the submission call
type SubmitResolved struct {
	Success bool
	Code    string
	Err     error
}

// SubmitSettled clears the in-flight flag
type SubmitSettled struct{}

func (Changed) event()         {}
func (Blurred) event()         {}
func (SlotsLoaded) event()     {}
func (SlotsFailed) event()     {}
func (SubmitRequested) event() {}
func (SubmitStarted) event()   {}
func (SubmitResolved) event()  {}
func (SubmitSettled) event()   {}

// Reduce returns the state that results from applying ev to s.
// s is not modified.
func Reduce(s State, ev Event, today time.Time) State {
	s = s.clone()

	switch ev := ev.(type) {
	case Changed:
		s.Draft = s.Draft.With(ev.Field, ev.Value)
		if s.Touched[ev.Field] {
			s.Errors[ev.Field] = ValidateField(ev.Field, s.Draft.Value(ev.Field), today)
		}

	case Blurred:
		s.Draft = s.Draft.With(ev.Field, ev.Value)
		s.Touched[ev.Field] = true
		s.Errors[ev.Field] = ValidateField(ev.Field, s.Draft.Value(ev.Field), today)

	case SlotsLoaded:
		s.Slots = slices.Clone(ev.Slots)

	case SlotsFailed:
		s.Outcome = Outcome{Status: Failed, Reason: MsgTimesUnavailable}

	case SubmitRequested:
		s.Outcome = Outcome{}
		for _, f := range AllFields {
			s.Touched[f] = true
		}
		s.Errors = validateForm(s, today)
		if len(s.Errors) > 0 {
			s.Outcome = Outcome{Status: Failed, Reason: MsgFixErrors}
		}

	case SubmitStarted:
		s.Submitting = true

	case SubmitResolved:
		switch {
		case ev.Err != nil:
			s.Outcome = Outcome{Status: Failed, Reason: MsgUnexpectedError}
		case !ev.Success:
			s.Outcome = Outcome{Status: Failed, Reason: MsgBookingFailed}
		default:
			s.Outcome = Outcome{Status: Succeeded, Email: s.Draft.Email, Code: ev.Code}
			s.Draft = NewDraft()
			s.Slots = nil
			s.Errors = FieldErrors{}
			s.Touched = TouchedSet{}
		}

	case SubmitSettled:
		s.Submitting = false
	}

	return s
}

// validateForm runs the field rules and checks the chosen time is still
// offered for the chosen date
func validateForm(s State, today time.Time) FieldErrors {
	errs := ValidateDraft(s.Draft, today)
	if errs[FieldDate] == "" && errs[FieldTime] == "" && !slices.Contains(s.Slots, s.Draft.Time) {
		errs[FieldTime] = MsgTimeUnavailable
	}
	return errs
}
