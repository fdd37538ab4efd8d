package repositories

import (
	"sync"

	"github.com/Prathamraj05/railbooker-zenith/internal/domain"
	"github.com/Prathamraj05/railbooker-zenith/internal/domain/models"
)

// BookingRepo stores finalized bookings in memory. PNRs are unique; the
// finalizer retries its mint when Insert reports a collision.
type BookingRepo struct {
	mu    sync.RWMutex
	byID  map[string]models.Booking
	byPNR map[string]string // pnr -> booking id
	order []string
}

func NewBookingRepo() *BookingRepo {
	return &BookingRepo{
		byID:  map[string]models.Booking{},
		byPNR: map[string]string{},
	}
}

func (r *BookingRepo) Insert(b models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[b.ID]; exists {
		return domain.ConflictError{Resource: "booking", Msg: "duplicate id"}
	}
	if _, exists := r.byPNR[b.PNR]; exists {
		return domain.ConflictError{Resource: "pnr", Msg: "duplicate PNR " + b.PNR}
	}
	r.byID[b.ID] = b
	r.byPNR[b.PNR] = b.ID
	r.order = append(r.order, b.ID)
	return nil
}

func (r *BookingRepo) GetByID(id string) (models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.byID[id]
	if !ok {
		return models.Booking{}, domain.NotFoundError{Resource: "booking"}
	}
	return b, nil
}

func (r *BookingRepo) GetByPNR(pnr string) (models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byPNR[pnr]
	if !ok {
		return models.Booking{}, domain.NotFoundError{Resource: "booking"}
	}
	return r.byID[id], nil
}

func (r *BookingRepo) ListByUser(userID string) []models.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.Booking{}
	for _, id := range r.order {
		if b := r.byID[id]; b.UserID == userID {
			out = append(out, b)
		}
	}
	return out
}

func (r *BookingRepo) List() []models.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Booking, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// UpdateStatus is the admin status override.
func (r *BookingRepo) UpdateStatus(id string, status domain.BookingStatus) (models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.byID[id]
	if !ok {
		return models.Booking{}, domain.NotFoundError{Resource: "booking"}
	}
	b.Status = status
	r.byID[id] = b
	return b, nil
}

// Cancel moves a booking to cancelled. Re-cancelling is a no-op; changed
// reports whether this call did the transition.
func (r *BookingRepo) Cancel(id string) (b models.Booking, changed bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.byID[id]
	if !ok {
		return models.Booking{}, false, domain.NotFoundError{Resource: "booking"}
	}
	if b.Status == domain.StatusCancelled {
		return b, false, nil
	}
	b.Status = domain.StatusCancelled
	r.byID[id] = b
	return b, true, nil
}
