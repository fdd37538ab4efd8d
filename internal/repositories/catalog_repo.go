package repositories

import (
	"sync"

	"github.com/Prathamraj05/railbooker-zenith/internal/domain"
	"github.com/Prathamraj05/railbooker-zenith/internal/domain/models"
	"github.com/Prathamraj05/railbooker-zenith/internal/utils"
)

// CatalogRepo holds the read-mostly reference data: stations, trains and
// payment-method descriptors. The booking flow only reads it; the admin
// surface is the single writer (seat counts).
type CatalogRepo struct {
	mu       sync.RWMutex
	stations []models.Station
	trains   []models.Train
	methods  []models.PaymentMethod
}

func NewCatalogRepo(stations []models.Station, trains []models.Train, methods []models.PaymentMethod) *CatalogRepo {
	r := &CatalogRepo{
		stations: append([]models.Station(nil), stations...),
		methods:  append([]models.PaymentMethod(nil), methods...),
	}
	for _, t := range trains {
		r.trains = append(r.trains, t.Clone())
	}
	return r
}

func (r *CatalogRepo) ListStations() []models.Station {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Station(nil), r.stations...)
}

// ListTrains returns clones in catalog order so callers can never reach the
// mutable seat counts directly.
func (r *CatalogRepo) ListTrains() []models.Train {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Train, 0, len(r.trains))
	for _, t := range r.trains {
		out = append(out, t.Clone())
	}
	return out
}

func (r *CatalogRepo) FindTrainByID(id string) (models.Train, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.trains {
		if t.ID == id {
			return t.Clone(), nil
		}
	}
	return models.Train{}, domain.NotFoundError{Resource: "train"}
}

// FindTrainsByRoute matches each end of the route by exact station code or
// case-insensitive name containment. Empty queries match nothing; result
// keeps catalog order.
func (r *CatalogRepo) FindTrainsByRoute(from, to string) []models.Train {
	from = utils.TrimOrEmpty(from)
	to = utils.TrimOrEmpty(to)
	if from == "" || to == "" {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.Train{}
	for _, t := range r.trains {
		if stationMatches(t.From, from) && stationMatches(t.To, to) {
			out = append(out, t.Clone())
		}
	}
	return out
}

func stationMatches(s models.Station, query string) bool {
	return s.Code == query || utils.ContainsFold(s.Name, query)
}

func (r *CatalogRepo) ListPaymentMethods() []models.PaymentMethod {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.PaymentMethod(nil), r.methods...)
}

// SetAvailableSeats is the admin inventory mutation. Count must be >= 0 and
// the class must be a known class key on the train. Fares are untouched, so
// setting a previously unoffered class above zero does not make it bookable
// unless its fare is nonzero too.
func (r *CatalogRepo) SetAvailableSeats(trainID string, class domain.ClassType, count int) (models.Train, error) {
	if count < 0 {
		return models.Train{}, domain.ValidationError{Field: "count", Msg: "seat count cannot be negative"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.trains {
		if r.trains[i].ID != trainID {
			continue
		}
		if _, ok := r.trains[i].AvailableSeats[class]; !ok {
			return models.Train{}, domain.ValidationError{Field: "class", Msg: "unknown class " + string(class)}
		}
		r.trains[i].AvailableSeats[class] = count
		return r.trains[i].Clone(), nil
	}
	return models.Train{}, domain.NotFoundError{Resource: "train"}
}
