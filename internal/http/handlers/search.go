package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Prathamraj05/railbooker-zenith/internal/domain"
)

// GET /api/search?from=&to=&departure=morning,night&class=sleeper,ac2Tier
//
// from/to are required; departure and class are optional comma-separated
// refinements applied conjunctively with OR semantics inside each list.
func (a *API) Search(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
		RespondDomainError(c, domain.ValidationError{Field: "route", Msg: "both from and to are required"})
		return
	}

	windows := []domain.DepartureWindow{}
	for _, raw := range splitCSV(c.Query("departure")) {
		w, ok := domain.ParseDepartureWindow(raw)
		if !ok {
			RespondDomainError(c, domain.ValidationError{Field: "departure", Msg: "unknown departure window " + raw})
			return
		}
		windows = append(windows, w)
	}

	classes := []domain.ClassType{}
	for _, raw := range splitCSV(c.Query("class")) {
		cl, ok := domain.ParseClassType(raw)
		if !ok {
			RespondDomainError(c, domain.ValidationError{Field: "class", Msg: "unknown class " + raw})
			return
		}
		classes = append(classes, cl)
	}

	results := a.searchSvc(c).SearchFiltered(from, to, windows, classes)
	c.JSON(http.StatusOK, gin.H{
		"trains": viewsOf(results),
		"count":  len(results),
	})
}

func splitCSV(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
