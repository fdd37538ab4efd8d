package models

import "github.com/Prathamraj05/railbooker-zenith/internal/domain"

// Passenger is mutable while part of a draft, immutable once attached to a
// finalized booking.
type Passenger struct {
	Name   string                 `json:"name"`
	Age    int                    `json:"age"`
	Gender domain.Gender          `json:"gender"`
	Berth  domain.BerthPreference `json:"berth,omitempty"`
}
