package models

import (
	"strconv"
	"strings"

	"github.com/Prathamraj05/railbooker-zenith/internal/domain"
)

// Train is catalog-owned. Seat counts are the only mutable field and are
// mutated exclusively through the catalog's admin surface.
type Train struct {
	ID             string                     `json:"id"`
	Name           string                     `json:"name"`
	Number         string                     `json:"number"`
	From           Station                    `json:"from"`
	To             Station                    `json:"to"`
	DepartureTime  string                     `json:"departureTime"` // HH:MM
	ArrivalTime    string                     `json:"arrivalTime"`   // HH:MM
	Duration       string                     `json:"duration"`
	Distance       string                     `json:"distance"`
	AvailableSeats map[domain.ClassType]int   `json:"availableSeats"`
	Fare           map[domain.ClassType]int64 `json:"fare"`
}

// IsOffered reports whether the class can be booked on this train.
// A class is offered iff it has seats; the seed keeps seats>0 ⟺ fare>0.
func (t Train) IsOffered(c domain.ClassType) bool {
	return t.AvailableSeats[c] > 0
}

// OfferedClasses lists bookable classes in fixed priority order.
func (t Train) OfferedClasses() []domain.ClassType {
	out := []domain.ClassType{}
	for _, c := range domain.ClassTypes() {
		if t.IsOffered(c) {
			out = append(out, c)
		}
	}
	return out
}

func (t Train) FareFor(c domain.ClassType) int64 {
	return t.Fare[c]
}

func (t Train) SeatsFor(c domain.ClassType) int {
	return t.AvailableSeats[c]
}

// DepartureHour parses the hour out of DepartureTime; -1 when malformed.
func (t Train) DepartureHour() int {
	parts := strings.SplitN(t.DepartureTime, ":", 2)
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return -1
	}
	return h
}

// Clone deep-copies the train so snapshots on issued tickets are immune to
// later catalog mutations.
func (t Train) Clone() Train {
	out := t
	out.AvailableSeats = make(map[domain.ClassType]int, len(t.AvailableSeats))
	for c, n := range t.AvailableSeats {
		out.AvailableSeats[c] = n
	}
	out.Fare = make(map[domain.ClassType]int64, len(t.Fare))
	for c, f := range t.Fare {
		out.Fare[c] = f
	}
	return out
}
