package models

// Station is immutable catalog reference data.
type Station struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Code  string `json:"code"`
	City  string `json:"city"`
	State string `json:"state"`
}
