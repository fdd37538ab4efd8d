package services

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Prathamraj05/railbooker-zenith/internal/domain"
	"github.com/Prathamraj05/railbooker-zenith/internal/domain/models"
	"github.com/Prathamraj05/railbooker-zenith/internal/repositories"
	"github.com/Prathamraj05/railbooker-zenith/internal/utils"
)

// pnrAttempts bounds the collision retry on the random PNR mint.
const pnrAttempts = 5

// BookingService owns the workflow's step preconditions and the finalizer.
// Every step re-derives its draft from the flat string parameters it was
// handed; a missing or unparseable parameter resolves to a RedirectError,
// never a panic.
type BookingService struct {
	Catalog   *repositories.CatalogRepo
	Bookings  *repositories.BookingRepo
	RequestID string
	Now       func() time.Time
	RandInt63 func(n int64) int64
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

func (s BookingService) randInt63(n int64) int64 {
	if s.RandInt63 != nil {
		return s.RandInt63(n)
	}
	return rand.Int63n(n)
}

// DraftParams are the flat string-valued step parameters carried between
// workflow transitions.
type DraftParams struct {
	TrainID    string
	Date       string
	Class      string
	Passengers string // JSON-serialized passenger array
}

// ResolveReview gates entry into passenger entry: a non-empty train id, a
// parseable date that is today or later, and an offered class.
func (s BookingService) ResolveReview(p DraftParams) (models.BookingDraft, error) {
	var draft models.BookingDraft

	trainID := utils.TrimOrEmpty(p.TrainID)
	dateStr := utils.TrimOrEmpty(p.Date)
	classStr := utils.TrimOrEmpty(p.Class)
	if trainID == "" || dateStr == "" || classStr == "" {
		return draft, domain.RedirectError{Target: "/search", Msg: "Missing required booking information"}
	}

	train, err := s.Catalog.FindTrainByID(trainID)
	if err != nil {
		return draft, domain.RedirectError{Target: "/search", Msg: "Train not found", Err: err}
	}

	class, ok := domain.ParseClassType(classStr)
	if !ok {
		return draft, domain.RedirectError{Target: "/search", Msg: "Missing required booking information"}
	}
	if !train.IsOffered(class) {
		return draft, domain.RedirectError{Target: "/search", Msg: class.Label() + " is not offered on this train"}
	}

	date, err := utils.ParseDate(dateStr)
	if err != nil {
		return draft, domain.RedirectError{Target: "/search", Msg: "Missing required booking information", Err: err}
	}
	if utils.IsPastDate(date, s.now()) {
		return draft, domain.RedirectError{Target: "/search", Msg: "Journey date cannot be in the past"}
	}

	draft = models.BookingDraft{
		Train:     train,
		Date:      utils.FormatDate(date),
		ClassType: class,
	}
	return draft, nil
}

// ResolvePassengers extends ResolveReview with the serialized passenger
// list. Malformed serialization redirects like any other missing parameter;
// list bounds are a capacity error that leaves the draft unchanged.
func (s BookingService) ResolvePassengers(p DraftParams) (models.BookingDraft, error) {
	draft, err := s.ResolveReview(p)
	if err != nil {
		return draft, err
	}

	raw := utils.TrimOrEmpty(p.Passengers)
	if raw == "" {
		return draft, domain.RedirectError{Target: "/search", Msg: "Missing required booking information"}
	}
	var passengers []models.Passenger
	if err := json.Unmarshal([]byte(raw), &passengers); err != nil {
		return draft, domain.RedirectError{Target: "/search", Msg: "Invalid passenger information", Err: err}
	}
	if err := s.checkCapacity(draft, passengers); err != nil {
		return draft, err
	}

	draft.Passengers = passengers
	return draft, nil
}

func (s BookingService) checkCapacity(draft models.BookingDraft, passengers []models.Passenger) error {
	if len(passengers) < models.MinPassengers {
		return domain.CapacityError{Msg: "At least one passenger is required"}
	}
	if len(passengers) > models.MaxPassengers {
		return domain.CapacityError{Msg: "Maximum 6 passengers allowed per booking"}
	}
	if seats := draft.Train.SeatsFor(draft.ClassType); len(passengers) > seats {
		return domain.CapacityError{Msg: "Not enough seats available in " + draft.ClassType.Label()}
	}
	return nil
}

// Quote recomputes the fare breakdown for a train+class+count. Deterministic
// for identical inputs, so each step can quote independently.
func (s BookingService) Quote(trainID, classStr string, passengers int) (utils.FareBreakdown, error) {
	train, err := s.Catalog.FindTrainByID(utils.TrimOrEmpty(trainID))
	if err != nil {
		return utils.FareBreakdown{}, err
	}
	class, ok := domain.ParseClassType(classStr)
	if !ok || !train.IsOffered(class) {
		return utils.FareBreakdown{}, domain.ValidationError{Field: "class", Msg: "class is not offered on this train"}
	}
	if passengers < models.MinPassengers || passengers > models.MaxPassengers {
		return utils.FareBreakdown{}, domain.CapacityError{Msg: "Passenger count must be between 1 and 6"}
	}
	return utils.ComputeFare(train.FareFor(class), passengers), nil
}

// Finalize converts a fully gated draft into an immutable booking: a fresh
// 10-digit PNR, confirmed status, by-value train and passenger snapshots, a
// finalize-time stamp and a synthesized payment token. Seat inventory is
// deliberately not decremented; only the admin mutates it.
func (s BookingService) Finalize(draft models.BookingDraft, userID string, method domain.PaymentMethodType) (models.Booking, error) {
	if draft.Train.ID == "" || draft.Date == "" || draft.ClassType == "" {
		return models.Booking{}, domain.RedirectError{Target: "/search", Msg: "Missing required booking information"}
	}
	if err := s.checkCapacity(draft, draft.Passengers); err != nil {
		return models.Booking{}, err
	}

	fare := utils.ComputeFare(draft.Train.FareFor(draft.ClassType), len(draft.Passengers))

	booking := models.Booking{
		ID:          uuid.NewString(),
		UserID:      userID,
		Train:       draft.Train.Clone(),
		Date:        draft.Date,
		ClassType:   draft.ClassType,
		Passengers:  append([]models.Passenger(nil), draft.Passengers...),
		Status:      domain.StatusConfirmed,
		Fare:        fare.Total,
		BookingTime: s.now(),
		PaymentID:   paymentID(),
	}

	var err error
	for attempt := 0; attempt < pnrAttempts; attempt++ {
		booking.PNR = s.mintPNR()
		if err = s.Bookings.Insert(booking); err == nil {
			utils.LogEvent(s.RequestID, "booking", "finalize",
				fmt.Sprintf("pnr=%s train=%s class=%s passengers=%d fare=%d method=%s",
					booking.PNR, booking.Train.ID, booking.ClassType, len(booking.Passengers), booking.Fare, method))
			return booking, nil
		}
		if !domain.IsConflict(err) {
			return models.Booking{}, err
		}
	}
	return models.Booking{}, domain.InternalError{Msg: "could not allocate a unique PNR", Err: err}
}

// mintPNR draws a uniform 10-digit decimal string in
// [1000000000, 9999999999].
func (s BookingService) mintPNR() string {
	return fmt.Sprintf("%d", 1000000000+s.randInt63(9000000000))
}

func paymentID() string {
	return "pay_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
}

// Cancel moves the caller's booking to cancelled. Idempotent: re-cancelling
// an already cancelled booking changes nothing. Seats are never returned to
// the pool.
func (s BookingService) Cancel(bookingID, userID string) (models.Booking, error) {
	current, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return models.Booking{}, err
	}
	if userID != "" && current.UserID != userID {
		return models.Booking{}, domain.NotFoundError{Resource: "booking"}
	}

	booking, changed, err := s.Bookings.Cancel(bookingID)
	if err != nil {
		return models.Booking{}, err
	}
	if changed {
		utils.LogEvent(s.RequestID, "booking", "cancel", "pnr="+booking.PNR)
	}
	return booking, nil
}

func (s BookingService) ListForUser(userID string) []models.Booking {
	return s.Bookings.ListByUser(userID)
}

func (s BookingService) GetByPNR(pnr string) (models.Booking, error) {
	return s.Bookings.GetByPNR(utils.TrimOrEmpty(pnr))
}
