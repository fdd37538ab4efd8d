package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	intconfig "github.com/Prathamraj05/railbooker-zenith/internal/config"
	"github.com/Prathamraj05/railbooker-zenith/internal/http/handlers"
	"github.com/Prathamraj05/railbooker-zenith/internal/http/middleware"
	"github.com/Prathamraj05/railbooker-zenith/internal/repositories"
	"github.com/Prathamraj05/railbooker-zenith/internal/utils"
)

const testSecret = "router-test-secret"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := intconfig.Env{
		JWTSecret:   testSecret,
		CORSOrigins: []string{"http://localhost:3000"},
	}
	api := handlers.New(
		repositories.NewSeededCatalog(),
		repositories.NewBookingRepo(),
		repositories.NewUserRepo(repositories.SeedUsers()),
		env.JWTSecret,
	)
	return NewRouter(env, api)
}

func doJSON(t *testing.T, r *gin.Engine, method, target, body, token string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	payload := map[string]any{}
	if ct := w.Header().Get("Content-Type"); strings.HasPrefix(ct, "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	}
	return w, payload
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := middleware.IssueToken(testSecret, "admin1", middleware.RoleAdmin, time.Now().Add(time.Hour).Unix())
	require.NoError(t, err)
	return token
}

func TestBookingFlowEndToEnd(t *testing.T) {
	r := newTestRouter(t)
	date := utils.FormatDate(time.Now().AddDate(0, 0, 7))

	// search the route
	w, payload := doJSON(t, r, http.MethodGet, "/api/search?from=New+Delhi&to=MMCT", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.EqualValues(t, 1, payload["count"])

	// review the selection
	w, _ = doJSON(t, r, http.MethodGet, "/api/workflow/review?train=t1&date="+date+"&class=ac2Tier", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	// passenger entry
	passengers := `[{"name":"Rahul Sharma","age":34,"gender":"male","berth":"lower"},{"name":"Meera Iyer","age":29,"gender":"female"}]`
	w, payload = doJSON(t, r, http.MethodPost,
		"/api/workflow/passengers?train=t1&date="+date+"&class=ac2Tier",
		`{"passengers":`+passengers+`}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	next := payload["next"].(map[string]any)
	require.Equal(t, "/payment", next["step"])

	// pay and finalize
	w, payload = doJSON(t, r, http.MethodPost,
		"/api/workflow/payment?train=t1&date="+date+"&class=ac2Tier",
		`{"method":"upi","upiId":"rahul@okhdfc","passengers":`+passengers+`}`, "")
	require.Equal(t, http.StatusCreated, w.Code)

	booking := payload["booking"].(map[string]any)
	pnr := booking["pnr"].(string)
	require.Regexp(t, regexp.MustCompile(`^[1-9]\d{9}$`), pnr)
	require.Equal(t, "confirmed", booking["status"])
	require.EqualValues(t, 6069, booking["fare"]) // 2890*2 + 5%
	bookingID := booking["id"].(string)

	// ticket lookup by PNR
	w, payload = doJSON(t, r, http.MethodGet, "/api/bookings/pnr/"+pnr, "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "₹6,069", payload["fareLabel"])

	// e-ticket download
	w, _ = doJSON(t, r, http.MethodGet, "/api/bookings/"+bookingID+"/e-ticket", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	require.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))

	// listed under the default traveler
	w, payload = doJSON(t, r, http.MethodGet, "/api/bookings", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, payload["active"], 1)

	// cancel, then confirm idempotence
	w, payload = doJSON(t, r, http.MethodPost, "/api/bookings/"+bookingID+"/cancel", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "cancelled", payload["booking"].(map[string]any)["status"])

	w, payload = doJSON(t, r, http.MethodPost, "/api/bookings/"+bookingID+"/cancel", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "cancelled", payload["booking"].(map[string]any)["status"])
}

func TestWorkflowPreconditionRedirects(t *testing.T) {
	r := newTestRouter(t)

	w, payload := doJSON(t, r, http.MethodGet, "/api/workflow/review", "", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "redirect", payload["code"])
	require.Equal(t, "/search", payload["redirect_to"])
	require.Equal(t, "Missing required booking information", payload["error"])
}

func TestWorkflowPassengerFieldValidation(t *testing.T) {
	r := newTestRouter(t)
	date := utils.FormatDate(time.Now().AddDate(0, 0, 7))

	w, payload := doJSON(t, r, http.MethodPost,
		"/api/workflow/passengers?train=t1&date="+date+"&class=ac2Tier",
		`{"passengers":[{"name":"","age":0}]}`, "")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.Equal(t, "field_validation", payload["code"])

	errs := payload["errors"].(map[string]any)
	require.Equal(t, "Name is required", errs["passenger_0_name"])
	require.Equal(t, "Valid age is required", errs["passenger_0_age"])
}

func TestWorkflowPaymentFieldValidation(t *testing.T) {
	r := newTestRouter(t)
	date := utils.FormatDate(time.Now().AddDate(0, 0, 7))
	passengers := `[{"name":"Rahul Sharma","age":34,"gender":"male"}]`

	w, payload := doJSON(t, r, http.MethodPost,
		"/api/workflow/payment?train=t1&date="+date+"&class=ac2Tier",
		`{"method":"card","cardNumber":"4111 1111 1111 111","cardName":"","cardExpiry":"1","cardCVV":"12","passengers":`+passengers+`}`, "")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	errs := payload["errors"].(map[string]any)
	require.Equal(t, "Valid card number is required", errs["cardNumber"])
	require.Equal(t, "Name on card is required", errs["cardName"])
	require.Equal(t, "Valid expiry date is required (MM/YY)", errs["cardExpiry"])
	require.Equal(t, "Valid CVV is required", errs["cardCVV"])
}

func TestCapacityRejectedBeforePayment(t *testing.T) {
	r := newTestRouter(t)
	date := utils.FormatDate(time.Now().AddDate(0, 0, 7))

	var seven []string
	for i := 0; i < 7; i++ {
		seven = append(seven, `{"name":"P","age":30,"gender":"male"}`)
	}
	w, payload := doJSON(t, r, http.MethodPost,
		"/api/workflow/passengers?train=t1&date="+date+"&class=ac2Tier",
		`{"passengers":[`+strings.Join(seven, ",")+`]}`, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "capacity_error", payload["code"])
	require.Equal(t, "Maximum 6 passengers allowed per booking", payload["error"])
}

func TestLogin(t *testing.T) {
	r := newTestRouter(t)

	w, payload := doJSON(t, r, http.MethodPost, "/api/auth/login",
		`{"email":"rahul.sharma@example.com","password":"traveller123"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, payload["token"])

	w, _ = doJSON(t, r, http.MethodPost, "/api/auth/login",
		`{"email":"rahul.sharma@example.com","password":"wrong"}`, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRoutesRequireAdminToken(t *testing.T) {
	r := newTestRouter(t)
	body := `{"class":"ac2Tier","count":5}`

	w, _ := doJSON(t, r, http.MethodPut, "/api/admin/trains/t1/seats", body, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	userToken, err := middleware.IssueToken(testSecret, "u1", middleware.RoleUser, time.Now().Add(time.Hour).Unix())
	require.NoError(t, err)
	w, _ = doJSON(t, r, http.MethodPut, "/api/admin/trains/t1/seats", body, userToken)
	require.Equal(t, http.StatusForbidden, w.Code)

	w, payload := doJSON(t, r, http.MethodPut, "/api/admin/trains/t1/seats", body, adminToken(t))
	require.Equal(t, http.StatusOK, w.Code)
	train := payload["train"].(map[string]any)
	seats := train["availableSeats"].(map[string]any)
	require.EqualValues(t, 5, seats["ac2Tier"])
}

func TestAdminStatusOverride(t *testing.T) {
	r := newTestRouter(t)
	date := utils.FormatDate(time.Now().AddDate(0, 0, 7))
	passengers := `[{"name":"Rahul Sharma","age":34,"gender":"male"}]`

	_, payload := doJSON(t, r, http.MethodPost,
		"/api/workflow/payment?train=t1&date="+date+"&class=ac2Tier",
		`{"method":"wallet","passengers":`+passengers+`}`, "")
	bookingID := payload["booking"].(map[string]any)["id"].(string)

	w, payload := doJSON(t, r, http.MethodPut, "/api/admin/bookings/"+bookingID+"/status",
		`{"status":"waiting"}`, adminToken(t))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "waiting", payload["booking"].(map[string]any)["status"])

	w, payload = doJSON(t, r, http.MethodPut, "/api/admin/bookings/"+bookingID+"/status",
		`{"status":"boarding"}`, adminToken(t))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "validation_error", payload["code"])
}

func TestUnknownRoute(t *testing.T) {
	r := newTestRouter(t)
	w, payload := doJSON(t, r, http.MethodGet, "/api/nope", "", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "route not found", payload["error"])
}
