package models

import "github.com/Prathamraj05/railbooker-zenith/internal/domain"

// PaymentMethod is a catalog-owned descriptor; no transaction is ever
// performed against it.
type PaymentMethod struct {
	ID   string                   `json:"id"`
	Type domain.PaymentMethodType `json:"type"`
	Name string                   `json:"name"`
	Icon string                   `json:"icon"`
}

// PaymentInput carries method-specific fields as entered by the traveler.
// The reformatting helpers in the payment service bound what these ever hold.
type PaymentInput struct {
	Method     string `json:"method"`
	CardNumber string `json:"cardNumber"`
	CardName   string `json:"cardName"`
	CardExpiry string `json:"cardExpiry"`
	CardCVV    string `json:"cardCVV"`
	UpiID      string `json:"upiId"`
}
