package models

import (
	"time"

	"github.com/Prathamraj05/railbooker-zenith/internal/domain"
)

// Draft passenger-list bounds. Growing past the maximum or shrinking below
// the minimum leaves the list unchanged.
const (
	MinPassengers = 1
	MaxPassengers = 6
)

// BookingDraft is the evolving state threaded through the workflow. It is
// never persisted; abandoning the flow discards it with no side effects on
// the catalog.
type BookingDraft struct {
	Train      Train                    `json:"train"`
	Date       string                   `json:"date"` // yyyy-MM-dd, today or later
	ClassType  domain.ClassType         `json:"classType"`
	Passengers []Passenger              `json:"passengers"`
	Method     domain.PaymentMethodType `json:"method,omitempty"`
}

// AddPassenger appends a passenger, rejecting growth beyond MaxPassengers.
func (d *BookingDraft) AddPassenger(p Passenger) error {
	if len(d.Passengers) >= MaxPassengers {
		return domain.CapacityError{Msg: "Maximum 6 passengers allowed per booking"}
	}
	d.Passengers = append(d.Passengers, p)
	return nil
}

// RemovePassenger drops the passenger at index, rejecting removal of the
// last remaining one.
func (d *BookingDraft) RemovePassenger(index int) error {
	if index < 0 || index >= len(d.Passengers) {
		return domain.ValidationError{Field: "passenger", Msg: "index out of range"}
	}
	if len(d.Passengers) <= MinPassengers {
		return domain.CapacityError{Msg: "At least one passenger is required"}
	}
	d.Passengers = append(d.Passengers[:index], d.Passengers[index+1:]...)
	return nil
}

// Booking is minted only by the finalizer. Train and passengers are
// by-value snapshots; status is the sole field mutated afterwards.
type Booking struct {
	ID          string               `json:"id"`
	PNR         string               `json:"pnr"`
	UserID      string               `json:"userId"`
	Train       Train                `json:"train"`
	Date        string               `json:"date"`
	ClassType   domain.ClassType     `json:"classType"`
	Passengers  []Passenger          `json:"passengers"`
	Status      domain.BookingStatus `json:"status"`
	Fare        int64                `json:"fare"`
	BookingTime time.Time            `json:"bookingTime"`
	PaymentID   string               `json:"paymentId,omitempty"`
}
