package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Prathamraj05/railbooker-zenith/internal/http/middleware"
	"github.com/Prathamraj05/railbooker-zenith/internal/repositories"
	"github.com/Prathamraj05/railbooker-zenith/internal/services"
)

// API carries the injected stores; services are built per request so each
// one logs under the request id.
type API struct {
	Catalog   *repositories.CatalogRepo
	Bookings  *repositories.BookingRepo
	Users     *repositories.UserRepo
	JWTSecret string
}

func New(catalog *repositories.CatalogRepo, bookings *repositories.BookingRepo, users *repositories.UserRepo, jwtSecret string) *API {
	return &API{
		Catalog:   catalog,
		Bookings:  bookings,
		Users:     users,
		JWTSecret: jwtSecret,
	}
}

func (a *API) searchSvc(c *gin.Context) services.SearchService {
	return services.SearchService{Catalog: a.Catalog, RequestID: middleware.GetRequestID(c)}
}

func (a *API) bookingSvc(c *gin.Context) services.BookingService {
	return services.BookingService{
		Catalog:   a.Catalog,
		Bookings:  a.Bookings,
		RequestID: middleware.GetRequestID(c),
	}
}

func (a *API) passengerSvc(c *gin.Context) services.PassengerService {
	return services.PassengerService{RequestID: middleware.GetRequestID(c)}
}

func (a *API) paymentSvc(c *gin.Context) services.PaymentService {
	return services.PaymentService{RequestID: middleware.GetRequestID(c)}
}

func (a *API) docsSvc(c *gin.Context) services.DocsService {
	return services.DocsService{Bookings: a.Bookings, RequestID: middleware.GetRequestID(c)}
}

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "request body is required", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}
