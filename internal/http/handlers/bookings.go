package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Prathamraj05/railbooker-zenith/internal/domain"
	"github.com/Prathamraj05/railbooker-zenith/internal/domain/models"
	"github.com/Prathamraj05/railbooker-zenith/internal/http/middleware"
	"github.com/Prathamraj05/railbooker-zenith/internal/utils"
)

// GET /api/bookings
//
// The caller's bookings split by lifecycle bucket, newest last.
func (a *API) MyBookings(c *gin.Context) {
	bookings := a.bookingSvc(c).ListForUser(middleware.CurrentUserID(c))

	active := []models.Booking{}
	completed := []models.Booking{}
	cancelled := []models.Booking{}
	for _, b := range bookings {
		switch b.Status {
		case domain.StatusCancelled:
			cancelled = append(cancelled, b)
		case domain.StatusCompleted:
			completed = append(completed, b)
		default:
			active = append(active, b)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"active":    active,
		"completed": completed,
		"cancelled": cancelled,
	})
}

// GET /api/bookings/pnr/:pnr
func (a *API) BookingByPNR(c *gin.Context) {
	booking, err := a.bookingSvc(c).GetByPNR(c.Param("pnr"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"booking":   booking,
		"fareLabel": utils.FormatINR(booking.Fare),
	})
}

// POST /api/bookings/:id/cancel
func (a *API) CancelBooking(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	if middleware.IsAdmin(c) {
		userID = "" // admin may cancel any booking
	}
	booking, err := a.bookingSvc(c).Cancel(c.Param("id"), userID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// GET /api/bookings/:id/e-ticket
func (a *API) ETicket(c *gin.Context) {
	pdf, filename, err := a.docsSvc(c).GenerateETicket(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GET /api/fare/quote?train=&class=&passengers=
func (a *API) FareQuote(c *gin.Context) {
	passengers := 1
	if raw := c.Query("passengers"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			RespondDomainError(c, domain.ValidationError{Field: "passengers", Msg: "passenger count must be a number"})
			return
		}
		passengers = n
	}

	fare, err := a.bookingSvc(c).Quote(c.Query("train"), c.Query("class"), passengers)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"fare":      fare,
		"fareLabel": utils.FormatINR(fare.Total),
	})
}
