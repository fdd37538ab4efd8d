package services

import (
	"fmt"

	"github.com/Prathamraj05/railbooker-zenith/internal/domain/models"
	"github.com/Prathamraj05/railbooker-zenith/internal/utils"
)

// PassengerService validates passenger records before the workflow may move
// from passenger entry into payment.
type PassengerService struct {
	RequestID string
}

// Validate returns field-level errors keyed passenger_<index>_<field>.
// An empty map means the form may proceed. Age messages are last-wins: age 0
// only triggers the "required" message, age above 120 the cap message.
func (s PassengerService) Validate(passengers []models.Passenger) map[string]string {
	errs := map[string]string{}

	for i, p := range passengers {
		if utils.TrimOrEmpty(p.Name) == "" {
			errs[fieldKey(i, "name")] = "Name is required"
		}
		if p.Age < 1 {
			errs[fieldKey(i, "age")] = "Valid age is required"
		}
		if p.Age > 120 {
			errs[fieldKey(i, "age")] = "Age cannot exceed 120"
		}
	}

	if len(errs) > 0 {
		utils.LogEvent(s.RequestID, "passenger", "validate", fmt.Sprintf("count=%d errors=%d", len(passengers), len(errs)))
	}
	return errs
}

func fieldKey(index int, field string) string {
	return fmt.Sprintf("passenger_%d_%s", index, field)
}
