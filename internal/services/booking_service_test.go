package services

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/Prathamraj05/railbooker-zenith/internal/domain"
	"github.com/Prathamraj05/railbooker-zenith/internal/domain/models"
	"github.com/Prathamraj05/railbooker-zenith/internal/repositories"
)

var pnrPattern = regexp.MustCompile(`^[1-9]\d{9}$`)

func fixedNow() time.Time {
	return time.Date(2026, time.September, 1, 9, 30, 0, 0, time.Local)
}

const futureDate = "2026-09-05"

func newBookingService() (BookingService, *repositories.CatalogRepo, *repositories.BookingRepo) {
	catalog := repositories.NewSeededCatalog()
	bookings := repositories.NewBookingRepo()
	svc := BookingService{
		Catalog:   catalog,
		Bookings:  bookings,
		RequestID: "test",
		Now:       fixedNow,
	}
	return svc, catalog, bookings
}

func validParams() DraftParams {
	return DraftParams{
		TrainID:    "t1",
		Date:       futureDate,
		Class:      "ac2Tier",
		Passengers: `[{"name":"Rahul Sharma","age":34,"gender":"male"}]`,
	}
}

func wantRedirect(t *testing.T, err error, msg string) {
	t.Helper()
	redirect, ok := domain.AsRedirect(err)
	if !ok {
		t.Fatalf("expected redirect, got %v", err)
	}
	if redirect.Target != "/search" {
		t.Fatalf("redirect target = %q, want /search", redirect.Target)
	}
	if redirect.Msg != msg {
		t.Fatalf("redirect message = %q, want %q", redirect.Msg, msg)
	}
}

func TestResolveReview(t *testing.T) {
	svc, _, _ := newBookingService()

	draft, err := svc.ResolveReview(validParams())
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if draft.Train.ID != "t1" || draft.Date != futureDate || draft.ClassType != domain.ClassAC2Tier {
		t.Fatalf("unexpected draft: %+v", draft)
	}
}

func TestResolveReviewRedirects(t *testing.T) {
	svc, _, _ := newBookingService()

	p := validParams()
	p.TrainID = ""
	_, err := svc.ResolveReview(p)
	wantRedirect(t, err, "Missing required booking information")

	p = validParams()
	p.TrainID = "t999"
	_, err = svc.ResolveReview(p)
	wantRedirect(t, err, "Train not found")

	p = validParams()
	p.Class = "firstAC"
	_, err = svc.ResolveReview(p)
	wantRedirect(t, err, "Missing required booking information")

	// t2 has no sleeper seats
	p = validParams()
	p.TrainID = "t2"
	p.Class = "sleeper"
	_, err = svc.ResolveReview(p)
	wantRedirect(t, err, "Sleeper Class (SL) is not offered on this train")

	p = validParams()
	p.Date = "05-09-2026"
	_, err = svc.ResolveReview(p)
	wantRedirect(t, err, "Missing required booking information")

	p = validParams()
	p.Date = "2026-08-31"
	_, err = svc.ResolveReview(p)
	wantRedirect(t, err, "Journey date cannot be in the past")
}

func TestResolveReviewAcceptsToday(t *testing.T) {
	svc, _, _ := newBookingService()

	p := validParams()
	p.Date = "2026-09-01"
	if _, err := svc.ResolveReview(p); err != nil {
		t.Fatalf("same-day journey rejected: %v", err)
	}
}

func TestResolvePassengers(t *testing.T) {
	svc, _, _ := newBookingService()

	draft, err := svc.ResolvePassengers(validParams())
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if len(draft.Passengers) != 1 || draft.Passengers[0].Name != "Rahul Sharma" {
		t.Fatalf("unexpected passengers: %+v", draft.Passengers)
	}

	p := validParams()
	p.Passengers = ""
	_, err = svc.ResolvePassengers(p)
	wantRedirect(t, err, "Missing required booking information")

	p = validParams()
	p.Passengers = "{not json"
	_, err = svc.ResolvePassengers(p)
	wantRedirect(t, err, "Invalid passenger information")
}

func TestResolvePassengersCapacity(t *testing.T) {
	svc, _, _ := newBookingService()

	p := validParams()
	p.Passengers = "[]"
	_, err := svc.ResolvePassengers(p)
	if !domain.IsCapacity(err) || err.Error() != "At least one passenger is required" {
		t.Fatalf("empty list: %v", err)
	}

	var seven []string
	for i := 0; i < 7; i++ {
		seven = append(seven, `{"name":"P","age":30,"gender":"male"}`)
	}
	p = validParams()
	p.Passengers = "[" + strings.Join(seven, ",") + "]"
	_, err = svc.ResolvePassengers(p)
	if !domain.IsCapacity(err) || err.Error() != "Maximum 6 passengers allowed per booking" {
		t.Fatalf("oversized list: %v", err)
	}

	// t1 first class has 6 seats; 6 passengers fit, then drain the class.
	svc2, catalog, _ := newBookingService()
	if _, err := catalog.SetAvailableSeats("t1", domain.ClassACFirstClass, 2); err != nil {
		t.Fatalf("seed adjust failed: %v", err)
	}
	p = validParams()
	p.Class = "acFirstClass"
	p.Passengers = `[{"name":"A","age":30,"gender":"male"},{"name":"B","age":31,"gender":"female"},{"name":"C","age":32,"gender":"male"}]`
	_, err = svc2.ResolvePassengers(p)
	if !domain.IsCapacity(err) || err.Error() != "Not enough seats available in AC First Class (1A)" {
		t.Fatalf("seat shortfall: %v", err)
	}
}

func TestQuote(t *testing.T) {
	svc, _, _ := newBookingService()

	fare, err := svc.Quote("t1", "ac2Tier", 2)
	if err != nil {
		t.Fatalf("quote failed: %v", err)
	}
	if fare.Base != 5780 || fare.Tax != 289 || fare.Total != 6069 {
		t.Fatalf("unexpected quote: %+v", fare)
	}

	if _, err := svc.Quote("t2", "sleeper", 1); !domain.IsValidation(err) {
		t.Fatalf("unoffered class should be a validation error, got %v", err)
	}
	if _, err := svc.Quote("t1", "ac2Tier", 0); !domain.IsCapacity(err) {
		t.Fatalf("zero passengers should be a capacity error, got %v", err)
	}
	if _, err := svc.Quote("t1", "ac2Tier", 7); !domain.IsCapacity(err) {
		t.Fatalf("seven passengers should be a capacity error, got %v", err)
	}
}

func TestFinalize(t *testing.T) {
	svc, catalog, bookings := newBookingService()

	draft, err := svc.ResolvePassengers(validParams())
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	booking, err := svc.Finalize(draft, "u1", domain.MethodUPI)
	if err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if !pnrPattern.MatchString(booking.PNR) {
		t.Fatalf("PNR %q is not a 10-digit number", booking.PNR)
	}
	if booking.Status != domain.StatusConfirmed {
		t.Fatalf("status = %s, want confirmed", booking.Status)
	}
	if booking.Fare != 3035 { // 2890 + 5% rounded
		t.Fatalf("fare = %d, want 3035", booking.Fare)
	}
	if !strings.HasPrefix(booking.PaymentID, "pay_") {
		t.Fatalf("payment id %q lacks pay_ prefix", booking.PaymentID)
	}
	if !booking.BookingTime.Equal(fixedNow()) {
		t.Fatalf("booking time = %v, want %v", booking.BookingTime, fixedNow())
	}

	// the ticket snapshot must survive later inventory edits
	if _, err := catalog.SetAvailableSeats("t1", domain.ClassAC2Tier, 0); err != nil {
		t.Fatalf("seat edit failed: %v", err)
	}
	stored, err := bookings.GetByID(booking.ID)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if stored.Train.AvailableSeats[domain.ClassAC2Tier] != 15 {
		t.Fatalf("snapshot seats = %d, want the 15 captured at finalize", stored.Train.AvailableSeats[domain.ClassAC2Tier])
	}

	// seat inventory itself is not decremented by a booking
	train, err := catalog.FindTrainByID("t1")
	if err != nil {
		t.Fatalf("train lookup failed: %v", err)
	}
	if got := train.AvailableSeats[domain.ClassACFirstClass]; got != 6 {
		t.Fatalf("untouched class mutated: %d", got)
	}
}

func TestFinalizeRetriesPNRCollision(t *testing.T) {
	svc, _, _ := newBookingService()

	mints := []int64{41, 41, 42} // second booking collides once, then succeeds
	svc.RandInt63 = func(n int64) int64 {
		v := mints[0]
		if len(mints) > 1 {
			mints = mints[1:]
		}
		return v
	}

	draft, err := svc.ResolvePassengers(validParams())
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	first, err := svc.Finalize(draft, "u1", domain.MethodCard)
	if err != nil {
		t.Fatalf("first finalize failed: %v", err)
	}
	second, err := svc.Finalize(draft, "u1", domain.MethodCard)
	if err != nil {
		t.Fatalf("finalize after collision failed: %v", err)
	}
	if first.PNR == second.PNR {
		t.Fatalf("both bookings share PNR %s", first.PNR)
	}
	if second.PNR != "1000000042" {
		t.Fatalf("second PNR = %s, want 1000000042", second.PNR)
	}
}

func TestFinalizeGivesUpWhenMintNeverDiverges(t *testing.T) {
	svc, _, _ := newBookingService()
	svc.RandInt63 = func(int64) int64 { return 7 }

	draft, err := svc.ResolvePassengers(validParams())
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if _, err := svc.Finalize(draft, "u1", domain.MethodCard); err != nil {
		t.Fatalf("first finalize failed: %v", err)
	}
	_, err = svc.Finalize(draft, "u1", domain.MethodCard)
	if !domain.IsInternal(err) {
		t.Fatalf("exhausted mint should be an internal error, got %v", err)
	}
}

func TestFinalizeRejectsEmptyDraft(t *testing.T) {
	svc, _, _ := newBookingService()
	_, err := svc.Finalize(models.BookingDraft{}, "u1", domain.MethodCard)
	wantRedirect(t, err, "Missing required booking information")
}

func TestCancelIsIdempotentAndScopedToOwner(t *testing.T) {
	svc, _, _ := newBookingService()

	draft, err := svc.ResolvePassengers(validParams())
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	booking, err := svc.Finalize(draft, "u1", domain.MethodUPI)
	if err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if _, err := svc.Cancel(booking.ID, "someone-else"); !domain.IsNotFound(err) {
		t.Fatalf("foreign cancel should report not found, got %v", err)
	}

	cancelled, err := svc.Cancel(booking.ID, "u1")
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if cancelled.Status != domain.StatusCancelled {
		t.Fatalf("status = %s, want cancelled", cancelled.Status)
	}

	again, err := svc.Cancel(booking.ID, "u1")
	if err != nil {
		t.Fatalf("re-cancel failed: %v", err)
	}
	if again.Status != domain.StatusCancelled {
		t.Fatalf("re-cancel status = %s", again.Status)
	}

	// admin path: empty user id bypasses the owner check
	if _, err := svc.Cancel(booking.ID, ""); err != nil {
		t.Fatalf("admin cancel failed: %v", err)
	}
}

func TestListForUserAndGetByPNR(t *testing.T) {
	svc, _, _ := newBookingService()

	draft, err := svc.ResolvePassengers(validParams())
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	booking, err := svc.Finalize(draft, "u1", domain.MethodUPI)
	if err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	mine := svc.ListForUser("u1")
	if len(mine) != 1 || mine[0].ID != booking.ID {
		t.Fatalf("ListForUser = %+v", mine)
	}
	if got := svc.ListForUser("u2"); len(got) != 0 {
		t.Fatalf("foreign user sees %d bookings", len(got))
	}

	byPNR, err := svc.GetByPNR(" " + booking.PNR + " ")
	if err != nil || byPNR.ID != booking.ID {
		t.Fatalf("GetByPNR = %+v, %v", byPNR, err)
	}
	if _, err := svc.GetByPNR("0000000000"); !domain.IsNotFound(err) {
		t.Fatalf("unknown PNR: %v", err)
	}
}
