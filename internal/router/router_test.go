package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wedding_hall_backend/internal/services"
	"wedding_hall_backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	Setup(engine, store.NewSeeded())
	return engine
}

func doRequest(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestBookingRoutes_ListAndFetch(t *testing.T) {
	engine := newTestEngine()

	rec := doRequest(t, engine, http.MethodGet, "/api/v1/bookings", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list.Data, 2)

	rec = doRequest(t, engine, http.MethodGet, "/api/v1/bookings/W-101", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sarah & James")

	rec = doRequest(t, engine, http.MethodGet, "/api/v1/bookings/W-999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBookingRoutes_StatusDecisionMapping(t *testing.T) {
	engine := newTestEngine()

	// Pending record accepts a decision.
	rec := doRequest(t, engine, http.MethodPatch, "/api/v1/bookings/W-102/status", `{"status":"APPROVED"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"APPROVED"`)

	// A decided record conflicts on a second decision.
	rec = doRequest(t, engine, http.MethodPatch, "/api/v1/bookings/W-102/status", `{"status":"REJECTED"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "CONFLICT")

	// Unknown identity answers no-content, not an error.
	rec = doRequest(t, engine, http.MethodPatch, "/api/v1/bookings/W-999/status", `{"status":"APPROVED"}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// Missing status field fails request binding.
	rec = doRequest(t, engine, http.MethodPatch, "/api/v1/bookings/W-101/status", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestBookingRoutes_SaveValidation(t *testing.T) {
	engine := newTestEngine()

	rec := doRequest(t, engine, http.MethodPost, "/api/v1/bookings",
		`{"clientName":"Test","slot":"AFTERNOON"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, engine, http.MethodPost, "/api/v1/bookings",
		`{"clientName":"Nora & Danial","date":"2024-09-01","slot":"DAY","guests":250,"totalAmount":5000}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"PENDING"`)
}

func TestBookingRoutes_CateringResolution(t *testing.T) {
	engine := newTestEngine()

	rec := doRequest(t, engine, http.MethodGet, "/api/v1/bookings/W-101/catering", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resolution struct {
		Mode        string `json:"mode"`
		PackageName string `json:"packageName"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resolution))
	assert.Equal(t, "PACKAGE", resolution.Mode)
	assert.Equal(t, "Pakej Sanding Excellence", resolution.PackageName)

	// Disabling catering globally flips every resolution to venue-only.
	rec = doRequest(t, engine, http.MethodPut, "/api/v1/settings/catering", `{"enabled":false}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, engine, http.MethodGet, "/api/v1/bookings/W-101/catering", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "VENUE_ONLY")
}

func TestBookingRoutes_AddonToggle(t *testing.T) {
	engine := newTestEngine()

	rec := doRequest(t, engine, http.MethodPost, "/api/v1/bookings/W-101/addons/toggle",
		`{"name":"Official Event Photographer"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Official Event Photographer")

	rec = doRequest(t, engine, http.MethodPost, "/api/v1/bookings/W-999/addons/toggle",
		`{"name":"Anything"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestViewingRoutes_IntakeAndDecision(t *testing.T) {
	engine := newTestEngine()

	rec := doRequest(t, engine, http.MethodPost, "/api/v1/viewings",
		`{"clientName":"Aina & Farid","date":"2024-07-20","time":"10:30"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"PENDING"`)

	rec = doRequest(t, engine, http.MethodPatch, "/api/v1/viewings/V-201/status", `{"status":"APPROVED"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, engine, http.MethodPatch, "/api/v1/viewings/V-999/status", `{"status":"APPROVED"}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCatalogRoutes_MenusAddonsStalls(t *testing.T) {
	engine := newTestEngine()

	rec := doRequest(t, engine, http.MethodGet, "/api/v1/menus", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Pakej Sanding Excellence")

	rec = doRequest(t, engine, http.MethodPost, "/api/v1/menus",
		`{"name":"Pakej Santai","basePax":200,"basePrice":3000}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"pricePerPax":15`)

	rec = doRequest(t, engine, http.MethodDelete, "/api/v1/menus/M-404", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, engine, http.MethodPost, "/api/v1/addons",
		`{"name":"Bridal Attire Rental","category":"Attire","price":600}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fa-vest")

	rec = doRequest(t, engine, http.MethodPut, "/api/v1/stalls", `{"items":[" Cendol ","","Satay"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Cendol")
	assert.NotContains(t, rec.Body.String(), `""`)
}

func TestAvailabilityRoutes_ToggleAndSchedule(t *testing.T) {
	engine := newTestEngine()

	rec := doRequest(t, engine, http.MethodGet, "/api/v1/availability/2024-07-01", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"daySlot":true`)

	rec = doRequest(t, engine, http.MethodPost, "/api/v1/availability/2024-07-01/toggle", `{"period":"day"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"daySlot":false`)
	assert.Contains(t, rec.Body.String(), `"nightSlot":true`)

	rec = doRequest(t, engine, http.MethodGet, "/api/v1/availability?year=2024&month=6", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var schedule struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &schedule))
	assert.Len(t, schedule.Data, 30)

	rec = doRequest(t, engine, http.MethodPost, "/api/v1/availability/bad-date/toggle", `{"period":"day"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSettingsRoutes_FlagRoundTrip(t *testing.T) {
	engine := newTestEngine()

	rec := doRequest(t, engine, http.MethodGet, "/api/v1/settings", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"isCateringEnabled":true`)

	rec = doRequest(t, engine, http.MethodPut, "/api/v1/settings/catering-only-mode", `{"enabled":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cateringOnlyMode":true`)

	// The enabled field is mandatory, not defaulted.
	rec = doRequest(t, engine, http.MethodPut, "/api/v1/settings/catering", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReportRoutes_SummaryAndInsights(t *testing.T) {
	t.Setenv("INSIGHTS_API_KEY", "")
	engine := newTestEngine()

	rec := doRequest(t, engine, http.MethodGet, "/api/v1/dashboard/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalRevenue":19900`)
	assert.Contains(t, rec.Body.String(), `"pendingViewings":1`)

	rec = doRequest(t, engine, http.MethodGet, "/api/v1/bookings/W-101/report", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"perGuestCost":19.9`)

	// No API key configured: the endpoint still answers with the fallback text.
	rec = doRequest(t, engine, http.MethodGet, "/api/v1/insights", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), services.InsightFallbackMessage)
}
