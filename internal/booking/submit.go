package booking

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"
)

const (
	DefaultSubmitDelay = time.Second
	DefaultFailureRate = 0.05
)

// Confirmation is the backend's answer to a submitted draft. Code is
// empty when the draft was rejected or nothing stored it.
type Confirmation struct {
	Accepted bool
	Code     string
}

// Submitter sends a validated draft to the reservation backend
type Submitter interface {
	Submit(ctx context.Context, draft Draft) (Confirmation, error)
}

// SubmitterFunc adapts a function to Submitter
type SubmitterFunc func(ctx context.Context, draft Draft) (Confirmation, error)

func (f SubmitterFunc) Submit(ctx context.Context, draft Draft) (Confirmation, error) {
	return f(ctx, draft)
}

// Recorder stores a draft the backend accepted and returns its
// confirmation code
type Recorder interface {
	RecordReservation(ctx context.Context, draft Draft) (string, error)
}

// SimulatedSubmitter stands in for a reservation backend: it waits Delay
// and then accepts the draft unless a uniform draw is at most FailureRate
type SimulatedSubmitter struct {
	Delay       time.Duration
	FailureRate float64
	Random      func() float64
	Recorder    Recorder
}

// NewSimulatedSubmitter returns a submitter with an unseeded random source.
// recorder may be nil.
func NewSimulatedSubmitter(delay time.Duration, failureRate float64, recorder Recorder) *SimulatedSubmitter {
	return &SimulatedSubmitter{
		Delay:       delay,
		FailureRate: failureRate,
		Random:      rand.Float64,
		Recorder:    recorder,
	}
}

func (s *SimulatedSubmitter) Submit(ctx context.Context, draft Draft) (Confirmation, error) {
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Confirmation{}, ctx.Err()
	case <-timer.C:
	}

	random := s.Random
	if random == nil {
		random = rand.Float64
	}
	if random() <= s.FailureRate {
		return Confirmation{}, nil
	}

	if s.Recorder == nil {
		return Confirmation{Accepted: true}, nil
	}
	code, err := s.Recorder.RecordReservation(ctx, draft)
	if err != nil {
		return Confirmation{}, fmt.Errorf("failed to record reservation: %w", err)
	}
	return Confirmation{Accepted: true, Code: code}, nil
}
