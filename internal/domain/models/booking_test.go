package models

import (
	"testing"

	"github.com/Prathamraj05/railbooker-zenith/internal/domain"
)

func TestAddPassengerCapsAtMaximum(t *testing.T) {
	draft := BookingDraft{Train: sampleTrain(), ClassType: domain.ClassSleeper}
	for i := 0; i < MaxPassengers; i++ {
		if err := draft.AddPassenger(Passenger{Name: "P", Age: 30}); err != nil {
			t.Fatalf("add %d failed: %v", i+1, err)
		}
	}

	err := draft.AddPassenger(Passenger{Name: "One Too Many", Age: 30})
	if !domain.IsCapacity(err) {
		t.Fatalf("expected capacity error, got %v", err)
	}
	if err.Error() != "Maximum 6 passengers allowed per booking" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if len(draft.Passengers) != MaxPassengers {
		t.Fatalf("rejected add still grew the list to %d", len(draft.Passengers))
	}
}

func TestRemovePassengerKeepsAtLeastOne(t *testing.T) {
	draft := BookingDraft{Passengers: []Passenger{{Name: "Only", Age: 40}}}

	err := draft.RemovePassenger(0)
	if !domain.IsCapacity(err) {
		t.Fatalf("expected capacity error, got %v", err)
	}
	if err.Error() != "At least one passenger is required" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if len(draft.Passengers) != 1 {
		t.Fatalf("rejected remove still shrank the list to %d", len(draft.Passengers))
	}
}

func TestRemovePassenger(t *testing.T) {
	draft := BookingDraft{Passengers: []Passenger{
		{Name: "First", Age: 30},
		{Name: "Second", Age: 31},
	}}

	if err := draft.RemovePassenger(0); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if len(draft.Passengers) != 1 || draft.Passengers[0].Name != "Second" {
		t.Fatalf("unexpected list after remove: %+v", draft.Passengers)
	}

	if err := draft.RemovePassenger(5); !domain.IsValidation(err) {
		t.Fatalf("out-of-range index should be a validation error, got %v", err)
	}
}
