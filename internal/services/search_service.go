package services

import (
	"fmt"

	"github.com/Prathamraj05/railbooker-zenith/internal/domain"
	"github.com/Prathamraj05/railbooker-zenith/internal/domain/models"
	"github.com/Prathamraj05/railbooker-zenith/internal/repositories"
	"github.com/Prathamraj05/railbooker-zenith/internal/utils"
)

// SearchService answers route queries and applies client-side refinements on
// top of the catalog result. The catalog query is never re-issued for a
// filter change.
type SearchService struct {
	Catalog   *repositories.CatalogRepo
	RequestID string
}

// Search returns trains matching the route in catalog order. Both ends of
// the route must be non-empty; an empty query matches nothing.
func (s SearchService) Search(from, to string) []models.Train {
	from = utils.TrimOrEmpty(from)
	to = utils.TrimOrEmpty(to)
	if from == "" || to == "" {
		return []models.Train{}
	}
	results := s.Catalog.FindTrainsByRoute(from, to)
	utils.LogEvent(s.RequestID, "search", "route", fmt.Sprintf("from=%q to=%q hits=%d", from, to, len(results)))
	return results
}

// SearchFiltered runs Search and applies both refinements conjunctively.
func (s SearchService) SearchFiltered(from, to string, windows []domain.DepartureWindow, classes []domain.ClassType) []models.Train {
	results := s.Search(from, to)
	results = FilterByDepartureWindow(results, windows)
	return FilterByClassAvailability(results, classes)
}

// FilterByDepartureWindow keeps trains whose departure hour falls in any
// selected window. No selection keeps everything.
func FilterByDepartureWindow(trains []models.Train, windows []domain.DepartureWindow) []models.Train {
	if len(windows) == 0 {
		return trains
	}
	out := []models.Train{}
	for _, t := range trains {
		hour := t.DepartureHour()
		for _, w := range windows {
			if w.Matches(hour) {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

// FilterByClassAvailability keeps trains with seats in any selected class.
// No selection keeps everything.
func FilterByClassAvailability(trains []models.Train, classes []domain.ClassType) []models.Train {
	if len(classes) == 0 {
		return trains
	}
	out := []models.Train{}
	for _, t := range trains {
		for _, c := range classes {
			if t.IsOffered(c) {
				out = append(out, t)
				break
			}
		}
	}
	return out
}
