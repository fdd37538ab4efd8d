package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Prathamraj05/railbooker-zenith/internal/domain"
	"github.com/Prathamraj05/railbooker-zenith/internal/domain/models"
)

// trainView decorates a train with its bookable classes in priority order
// so clients never have to re-derive the offered set.
type trainView struct {
	models.Train
	OfferedClasses []domain.ClassType `json:"offeredClasses"`
}

func viewOf(t models.Train) trainView {
	return trainView{Train: t, OfferedClasses: t.OfferedClasses()}
}

func viewsOf(trains []models.Train) []trainView {
	out := make([]trainView, 0, len(trains))
	for _, t := range trains {
		out = append(out, viewOf(t))
	}
	return out
}

// GET /api/stations
func (a *API) ListStations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"stations": a.Catalog.ListStations()})
}

// GET /api/trains
func (a *API) ListTrains(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"trains": viewsOf(a.Catalog.ListTrains())})
}

// GET /api/trains/:id
func (a *API) GetTrain(c *gin.Context) {
	train, err := a.Catalog.FindTrainByID(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"train": viewOf(train)})
}

// GET /api/payment-methods
func (a *API) ListPaymentMethods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"paymentMethods": a.Catalog.ListPaymentMethods()})
}
