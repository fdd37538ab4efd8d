package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Prathamraj05/railbooker-zenith/internal/domain"
	"github.com/Prathamraj05/railbooker-zenith/internal/domain/models"
	"github.com/Prathamraj05/railbooker-zenith/internal/http/middleware"
	"github.com/Prathamraj05/railbooker-zenith/internal/services"
	"github.com/Prathamraj05/railbooker-zenith/internal/utils"
)

// The booking workflow is a linear sequence of stateless steps. Each step
// endpoint re-derives the draft from the flat string parameters it is handed
// (train, date, class, passengers as a JSON array string), so nothing is
// held server-side until the finalizer mints the booking.

func draftParams(c *gin.Context) services.DraftParams {
	return services.DraftParams{
		TrainID:    c.Query("train"),
		Date:       c.Query("date"),
		Class:      c.Query("class"),
		Passengers: c.Query("passengers"),
	}
}

// GET /api/workflow/review?train=&date=&class=
//
// Gate into passenger entry. Quotes the fare for the initial single
// passenger; the client re-quotes as the list grows.
func (a *API) WorkflowReview(c *gin.Context) {
	draft, err := a.bookingSvc(c).ResolveReview(draftParams(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	fare := utils.ComputeFare(draft.Train.FareFor(draft.ClassType), 1)
	c.JSON(http.StatusOK, gin.H{
		"draft":      draftView(draft),
		"fare":       fare,
		"maxAllowed": models.MaxPassengers,
	})
}

type passengersStepRequest struct {
	Passengers []models.Passenger `json:"passengers"`
}

// POST /api/workflow/passengers?train=&date=&class=
//
// Gate into payment: the passenger list (body or serialized query
// parameter) must pass field validation and the capacity bounds.
func (a *API) WorkflowPassengers(c *gin.Context) {
	params := draftParams(c)

	var req passengersStepRequest
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			RespondDomainError(c, domain.RedirectError{Target: "/search", Msg: "Invalid passenger information", Err: err})
			return
		}
	}
	if len(req.Passengers) > 0 {
		serialized, err := json.Marshal(req.Passengers)
		if err != nil {
			RespondError(c, http.StatusInternalServerError, "could not serialize passengers", err)
			return
		}
		params.Passengers = string(serialized)
	}

	draft, err := a.bookingSvc(c).ResolvePassengers(params)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	if errs := a.passengerSvc(c).Validate(draft.Passengers); len(errs) > 0 {
		respondFieldErrors(c, errs)
		return
	}

	fare := utils.ComputeFare(draft.Train.FareFor(draft.ClassType), len(draft.Passengers))
	c.JSON(http.StatusOK, gin.H{
		"draft": draftView(draft),
		"fare":  fare,
		"next": gin.H{
			"step":       "/payment",
			"train":      draft.Train.ID,
			"date":       draft.Date,
			"class":      draft.ClassType,
			"passengers": params.Passengers,
		},
	})
}

type paymentStepRequest struct {
	models.PaymentInput
	Passengers []models.Passenger `json:"passengers"`
}

// POST /api/workflow/payment?train=&date=&class=&passengers=
//
// Final gate. Payment fields must validate for the selected method; on
// success the draft is irreversibly converted into a booking.
func (a *API) WorkflowPayment(c *gin.Context) {
	params := draftParams(c)

	var req paymentStepRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if len(req.Passengers) > 0 {
		serialized, err := json.Marshal(req.Passengers)
		if err != nil {
			RespondError(c, http.StatusInternalServerError, "could not serialize passengers", err)
			return
		}
		params.Passengers = string(serialized)
	}

	svc := a.bookingSvc(c)
	draft, err := svc.ResolvePassengers(params)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	if errs := a.paymentSvc(c).Validate(req.PaymentInput); len(errs) > 0 {
		respondFieldErrors(c, errs)
		return
	}
	method, _ := domain.ParsePaymentMethodType(req.Method)

	booking, err := svc.Finalize(draft, middleware.CurrentUserID(c), method)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"booking": booking,
		"next": gin.H{
			"step": "/ticket",
			"pnr":  booking.PNR,
			"fare": strconv.FormatInt(booking.Fare, 10),
		},
	})
}

func draftView(d models.BookingDraft) gin.H {
	return gin.H{
		"train":      viewOf(d.Train),
		"date":       d.Date,
		"classType":  d.ClassType,
		"classLabel": d.ClassType.Label(),
		"passengers": d.Passengers,
	}
}
