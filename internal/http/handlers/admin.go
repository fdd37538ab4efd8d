package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Prathamraj05/railbooker-zenith/internal/domain"
	"github.com/Prathamraj05/railbooker-zenith/internal/http/middleware"
	"github.com/Prathamraj05/railbooker-zenith/internal/utils"
)

type setSeatsRequest struct {
	Class string `json:"class"`
	Count int    `json:"count"`
}

// PUT /api/admin/trains/:id/seats
//
// The single writer of seat inventory.
func (a *API) AdminSetSeats(c *gin.Context) {
	var req setSeatsRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	class, ok := domain.ParseClassType(req.Class)
	if !ok {
		RespondDomainError(c, domain.ValidationError{Field: "class", Msg: "unknown class " + req.Class})
		return
	}

	train, err := a.Catalog.SetAvailableSeats(c.Param("id"), class, req.Count)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "admin", "set_seats",
		"train="+train.ID+" class="+string(class)+" count="+strconv.Itoa(req.Count))
	c.JSON(http.StatusOK, gin.H{"train": viewOf(train)})
}

type setStatusRequest struct {
	Status string `json:"status"`
}

// PUT /api/admin/bookings/:id/status
func (a *API) AdminSetStatus(c *gin.Context) {
	var req setStatusRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	status, ok := domain.ParseBookingStatus(req.Status)
	if !ok {
		RespondDomainError(c, domain.ValidationError{Field: "status", Msg: "unknown status " + req.Status})
		return
	}

	booking, err := a.Bookings.UpdateStatus(c.Param("id"), status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "admin", "set_status",
		"booking="+booking.ID+" status="+string(status))
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// GET /api/admin/bookings
func (a *API) AdminListBookings(c *gin.Context) {
	bookings := a.Bookings.List()
	c.JSON(http.StatusOK, gin.H{
		"bookings": bookings,
		"count":    len(bookings),
	})
}
