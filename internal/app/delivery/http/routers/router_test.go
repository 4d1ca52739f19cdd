package routers

import (
	"booking-service/internal/app/config"
	"booking-service/internal/app/delivery/http/controllers"
	"booking-service/internal/app/delivery/http/middlewares"
	"booking-service/internal/app/services/core/bookings"
	"booking-service/internal/app/services/shared/publisher"
	"booking-service/internal/pkg/constvars"
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			EndpointPrefix:             "api",
			Version:                    "v1",
			RequestTimeoutInSeconds:    5,
			RequestBodyLimitInMegabyte: 1,
		},
		Booking: config.AppBooking{
			StorageTimeout:          time.Second,
			ConfirmationPrefix:      constvars.DefaultConfirmationPrefix,
			ConfirmationDigits:      constvars.DefaultConfirmationDigits,
			ConfirmationMaxAttempts: constvars.DefaultConfirmationMaxAttempts,
			DefaultSpecialty:        constvars.DefaultSpecialty,
		},
	}

	store := bookings.NewBookingMemoryRepository(logger)
	generator := bookings.NewRandomConfirmationGenerator(internalConfig.Booking.ConfirmationPrefix, internalConfig.Booking.ConfirmationDigits)
	bookingUsecase := bookings.NewBookingUsecase(store, generator, publisher.NewNoopBookingEventPublisher(), internalConfig, logger)

	router := chi.NewRouter()
	SetupRoutes(
		router,
		internalConfig,
		middlewares.NewMiddlewares(logger, internalConfig),
		controllers.NewBookingController(logger, bookingUsecase, internalConfig),
		controllers.NewToolController(logger, bookingUsecase, internalConfig),
	)
	return router
}

func doJSON(router http.Handler, method, target string, payload interface{}) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, target, &body)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestRouter_BookingFlow(t *testing.T) {
	router := newTestRouter(t)

	first := doJSON(router, http.MethodPost, "/api/v1/appointments", map[string]string{
		"patient_id": "PAT001", "date": "2026-01-19", "time": "9:15", "specialty": "cardiology",
	})
	require.Equal(t, http.StatusCreated, first.Code, first.Body.String())
	assert.NotEmpty(t, first.Header().Get(constvars.HeaderXRequestID))

	var created struct {
		Data struct {
			ConfirmationID string `json:"confirmation_number"`
			Details        struct {
				Time   string `json:"time"`
				Reason string `json:"reason"`
			} `json:"details"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &created))
	assert.Regexp(t, `^APT-\d{8}$`, created.Data.ConfirmationID)
	assert.Equal(t, "09:15", created.Data.Details.Time)
	assert.Equal(t, constvars.DefaultReason, created.Data.Details.Reason)

	t.Run("Same Slot Through Tool Conflicts", func(t *testing.T) {
		rr := doJSON(router, http.MethodPost, "/api/v1/tools/call", map[string]interface{}{
			"name": constvars.ToolBookAppointment,
			"args": map[string]string{"user_id": "PAT002", "date": "2026-01-19", "time": "09:15", "specialty": "cardiology"},
		})
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Other Specialty Same Time Succeeds", func(t *testing.T) {
		rr := doJSON(router, http.MethodPost, "/api/v1/tools/call", map[string]interface{}{
			"name": constvars.ToolBookAppointment,
			"args": map[string]string{"user_id": "PAT002", "date": "2026-01-19", "time": "09:15", "specialty": "dermatology"},
		})
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Off Grid Minute Rejected", func(t *testing.T) {
		rr := doJSON(router, http.MethodPost, "/api/v1/appointments", map[string]string{
			"patient_id": "PAT003", "date": "2026-01-19", "time": "09:10",
		})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Lookup And List", func(t *testing.T) {
		rr := doJSON(router, http.MethodGet, "/api/v1/appointments/"+created.Data.ConfirmationID, nil)
		assert.Equal(t, http.StatusOK, rr.Code)

		rr = doJSON(router, http.MethodGet, "/api/v1/appointments/APT-00000000", nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)

		rr = doJSON(router, http.MethodGet, "/api/v1/appointments", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		var listed struct {
			Data []map[string]interface{} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listed))
		assert.Len(t, listed.Data, 2)
	})

	t.Run("Tools Listed", func(t *testing.T) {
		rr := doJSON(router, http.MethodGet, "/api/v1/tools", nil)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
