package services

import (
	"strings"

	"github.com/Prathamraj05/railbooker-zenith/internal/domain"
	"github.com/Prathamraj05/railbooker-zenith/internal/domain/models"
	"github.com/Prathamraj05/railbooker-zenith/internal/utils"
)

// PaymentService validates method-specific payment input. No transaction is
// ever performed; netbanking and wallet are presentational selections with
// no blocking checks.
type PaymentService struct {
	RequestID string
}

// Validate returns field-level errors for the selected method. The input is
// normalized through the same reformatters the entry form applies, so the
// validator never sees more than 19 card characters, 5 expiry characters or
// 3 CVV digits.
func (s PaymentService) Validate(in models.PaymentInput) map[string]string {
	errs := map[string]string{}

	method, ok := domain.ParsePaymentMethodType(in.Method)
	if !ok {
		errs["method"] = "Valid payment method is required"
		return errs
	}

	switch method {
	case domain.MethodCard:
		number := FormatCardNumber(in.CardNumber)
		if number == "" || len(utils.StripNonDigits(number)) < 16 {
			errs["cardNumber"] = "Valid card number is required"
		}
		if utils.TrimOrEmpty(in.CardName) == "" {
			errs["cardName"] = "Name on card is required"
		}
		expiry := FormatExpiry(in.CardExpiry)
		if expiry == "" || !strings.Contains(expiry, "/") {
			errs["cardExpiry"] = "Valid expiry date is required (MM/YY)"
		}
		cvv := SanitizeCVV(in.CardCVV)
		if cvv == "" || len(cvv) < 3 {
			errs["cardCVV"] = "Valid CVV is required"
		}
	case domain.MethodUPI:
		if utils.TrimOrEmpty(in.UpiID) == "" || !strings.Contains(in.UpiID, "@") {
			errs["upiId"] = "Valid UPI ID is required (e.g., name@upi)"
		}
	case domain.MethodNetBanking, domain.MethodWallet:
		// selection only
	}

	if len(errs) > 0 {
		utils.LogEvent(s.RequestID, "payment", "validate", "method="+string(method)+" blocked")
	}
	return errs
}

// FormatCardNumber groups digits in blocks of 4, capped at 16 digits
// (19 formatted characters). Fewer than 4 digits returns the input as typed.
func FormatCardNumber(value string) string {
	digits := utils.StripNonDigits(value)
	if len(digits) < 4 {
		return value
	}
	if len(digits) > 16 {
		digits = digits[:16]
	}
	parts := []string{}
	for i := 0; i < len(digits); i += 4 {
		end := i + 4
		if end > len(digits) {
			end = len(digits)
		}
		parts = append(parts, digits[i:end])
	}
	return strings.Join(parts, " ")
}

// FormatExpiry inserts the MM/YY separator after the second digit, capped at
// 5 formatted characters.
func FormatExpiry(value string) string {
	digits := utils.StripNonDigits(value)
	if len(digits) > 4 {
		digits = digits[:4]
	}
	if len(digits) >= 2 {
		return digits[:2] + "/" + digits[2:]
	}
	return digits
}

// SanitizeCVV keeps at most 3 digits.
func SanitizeCVV(value string) string {
	digits := utils.StripNonDigits(value)
	if len(digits) > 3 {
		return digits[:3]
	}
	return digits
}
