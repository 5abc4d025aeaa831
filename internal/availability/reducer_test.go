package availability

import (
	"reflect"
	"testing"
	"time"
)

func TestReduce(t *testing.T) {
	current := []string{"17:00", "18:00"}

	tests := []struct {
		name     string
		action   Action
		expected []string
	}{
		{
			name:     "update times replaces the list",
			action:   Action{Type: UpdateTimes, Payload: []string{"19:00", "20:30"}},
			expected: []string{"19:00", "20:30"},
		},
		{
			name:     "update times with empty payload",
			action:   Action{Type: UpdateTimes, Payload: []string{}},
			expected: []string{},
		},
		{
			name:     "unknown action keeps the list",
			action:   Action{Type: "UNKNOWN_ACTION", Payload: []string{"21:00"}},
			expected: []string{"17:00", "18:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Reduce(current, tt.action)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("Expected %v but got %v", tt.expected, result)
			}
		})
	}
}

func TestInitializeTimes(t *testing.T) {
	now := time.Date(2026, time.October, 14, 15, 4, 5, 0, time.UTC)
	if got, want := InitializeTimes(now), GenerateSlots(now); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v but got %v", want, got)
	}
}
