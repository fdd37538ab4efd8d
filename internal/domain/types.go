package domain

import "strings"

// ClassType is a fare/seat category on a train.
type ClassType string

const (
	ClassSleeper      ClassType = "sleeper"
	ClassAC3Tier      ClassType = "ac3Tier"
	ClassAC2Tier      ClassType = "ac2Tier"
	ClassACFirstClass ClassType = "acFirstClass"
)

// ClassTypes returns every class in fixed priority order. Availability
// listings and selectable-class options must follow this order.
func ClassTypes() []ClassType {
	return []ClassType{ClassSleeper, ClassAC3Tier, ClassAC2Tier, ClassACFirstClass}
}

func ParseClassType(s string) (ClassType, bool) {
	switch ClassType(strings.TrimSpace(s)) {
	case ClassSleeper:
		return ClassSleeper, true
	case ClassAC3Tier:
		return ClassAC3Tier, true
	case ClassAC2Tier:
		return ClassAC2Tier, true
	case ClassACFirstClass:
		return ClassACFirstClass, true
	}
	return "", false
}

// Label returns the long display name, e.g. "AC 2 Tier (2A)".
func (c ClassType) Label() string {
	switch c {
	case ClassSleeper:
		return "Sleeper Class (SL)"
	case ClassAC3Tier:
		return "AC 3 Tier (3A)"
	case ClassAC2Tier:
		return "AC 2 Tier (2A)"
	case ClassACFirstClass:
		return "AC First Class (1A)"
	}
	return "Unknown"
}

// ShortLabel returns the coach code, e.g. "2A".
func (c ClassType) ShortLabel() string {
	switch c {
	case ClassSleeper:
		return "SL"
	case ClassAC3Tier:
		return "3A"
	case ClassAC2Tier:
		return "2A"
	case ClassACFirstClass:
		return "1A"
	}
	return "Unknown"
}

// BookingStatus is the lifecycle state of a finalized booking.
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusWaiting   BookingStatus = "waiting"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(strings.TrimSpace(s)) {
	case StatusConfirmed:
		return StatusConfirmed, true
	case StatusWaiting:
		return StatusWaiting, true
	case StatusCancelled:
		return StatusCancelled, true
	case StatusCompleted:
		return StatusCompleted, true
	}
	return "", false
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func ParseGender(s string) (Gender, bool) {
	switch Gender(strings.TrimSpace(s)) {
	case GenderMale:
		return GenderMale, true
	case GenderFemale:
		return GenderFemale, true
	case GenderOther:
		return GenderOther, true
	}
	return "", false
}

// BerthPreference is optional; the empty value means "no preference".
type BerthPreference string

const (
	BerthLower     BerthPreference = "lower"
	BerthMiddle    BerthPreference = "middle"
	BerthUpper     BerthPreference = "upper"
	BerthSideLower BerthPreference = "side-lower"
	BerthSideUpper BerthPreference = "side-upper"
)

func ParseBerthPreference(s string) (BerthPreference, bool) {
	switch BerthPreference(strings.TrimSpace(s)) {
	case "":
		return "", true
	case BerthLower:
		return BerthLower, true
	case BerthMiddle:
		return BerthMiddle, true
	case BerthUpper:
		return BerthUpper, true
	case BerthSideLower:
		return BerthSideLower, true
	case BerthSideUpper:
		return BerthSideUpper, true
	}
	return "", false
}

type PaymentMethodType string

const (
	MethodCard       PaymentMethodType = "card"
	MethodUPI        PaymentMethodType = "upi"
	MethodNetBanking PaymentMethodType = "netbanking"
	MethodWallet     PaymentMethodType = "wallet"
)

func ParsePaymentMethodType(s string) (PaymentMethodType, bool) {
	switch PaymentMethodType(strings.TrimSpace(s)) {
	case MethodCard:
		return MethodCard, true
	case MethodUPI:
		return MethodUPI, true
	case MethodNetBanking:
		return MethodNetBanking, true
	case MethodWallet:
		return MethodWallet, true
	}
	return "", false
}

// DepartureWindow buckets departure times for search refinement.
type DepartureWindow string

const (
	WindowMorning   DepartureWindow = "morning"   // [05:00, 12:00)
	WindowAfternoon DepartureWindow = "afternoon" // [12:00, 17:00)
	WindowEvening   DepartureWindow = "evening"   // [17:00, 21:00)
	WindowNight     DepartureWindow = "night"     // [21:00, 24:00) and [00:00, 05:00)
)

func ParseDepartureWindow(s string) (DepartureWindow, bool) {
	switch DepartureWindow(strings.TrimSpace(s)) {
	case WindowMorning:
		return WindowMorning, true
	case WindowAfternoon:
		return WindowAfternoon, true
	case WindowEvening:
		return WindowEvening, true
	case WindowNight:
		return WindowNight, true
	}
	return "", false
}

// Matches reports whether a departure hour falls inside the window.
func (w DepartureWindow) Matches(hour int) bool {
	switch w {
	case WindowMorning:
		return hour >= 5 && hour < 12
	case WindowAfternoon:
		return hour >= 12 && hour < 17
	case WindowEvening:
		return hour >= 17 && hour < 21
	case WindowNight:
		return hour >= 21 || hour < 5
	}
	return false
}
