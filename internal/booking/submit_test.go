package booking

import (
	"context"
	"errors"
	"testing"
	"time"
)

type recorderFunc func(ctx context.Context, d Draft) (string, error)

func (f recorderFunc) RecordReservation(ctx context.Context, d Draft) (string, error) {
	return f(ctx, d)
}

func TestSimulatedSubmitter(t *testing.T) {
	storeErr := errors.New("disk full")

	tests := []struct {
		name        string
		draw        float64
		recordErr   error
		expected    bool
		expectCode  string
		expectErr   bool
		expectSaved bool
	}{
		{name: "draw above failure rate", draw: 0.5, expected: true, expectCode: "c0ffee", expectSaved: true},
		{name: "draw just above failure rate", draw: 0.0501, expected: true, expectCode: "c0ffee", expectSaved: true},
		{name: "draw at failure rate", draw: 0.05, expected: false},
		{name: "draw below failure rate", draw: 0.01, expected: false},
		{name: "recorder fails", draw: 0.9, recordErr: storeErr, expected: false, expectErr: true, expectSaved: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saved := false
			s := &SimulatedSubmitter{
				Delay:       time.Millisecond,
				FailureRate: DefaultFailureRate,
				Random:      func() float64 { return tt.draw },
				Recorder: recorderFunc(func(ctx context.Context, d Draft) (string, error) {
					saved = true
					if tt.recordErr != nil {
						return "", tt.recordErr
					}
					return "c0ffee", nil
				}),
			}

			confirmation, err := s.Submit(context.Background(), validDraft())
			if confirmation.Accepted != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, confirmation.Accepted)
			}
			if confirmation.Code != tt.expectCode {
				t.Errorf("Expected code %q, got %q", tt.expectCode, confirmation.Code)
			}
			if tt.expectErr != (err != nil) {
				t.Errorf("Unexpected error state: %v", err)
			}
			if tt.expectErr && !errors.Is(err, storeErr) {
				t.Errorf("Expected wrapped store error, got %v", err)
			}
			if saved != tt.expectSaved {
				t.Errorf("Expected saved=%v, got %v", tt.expectSaved, saved)
			}
		})
	}
}

func TestSimulatedSubmitterHonorsCancellation(t *testing.T) {
	s := NewSimulatedSubmitter(time.Hour, DefaultFailureRate, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	confirmation, err := s.Submit(ctx, validDraft())
	if confirmation.Accepted {
		t.Errorf("Cancelled submission should not succeed")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
