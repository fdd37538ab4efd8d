package models

// User is the account behind a booking. Credentials are a stub check against
// the in-memory store, not a real identity system.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	IsAdmin bool   `json:"isAdmin"`
}
