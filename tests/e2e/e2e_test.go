package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rentmarket/internal/database"
	"rentmarket/internal/domain"
	"rentmarket/internal/middleware"
	"rentmarket/internal/modules/auth"
	"rentmarket/internal/modules/booking"
	"rentmarket/internal/modules/catalog"
	jwtsvc "rentmarket/internal/pkg/jwt"
	"rentmarket/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type E2ETestSuite struct {
	router        *gin.Engine
	db            *gorm.DB
	equipmentRepo *repository.EquipmentRepository
}

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, repository.AutoMigrate(db))

	userRepo := repository.NewUserRepository(db)
	providerRepo := repository.NewProviderRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New("e2e-test-secret", time.Hour)

	// No Redis in tests; session revocation is off, tokens stand alone.
	authHandler := auth.NewHandler(auth.NewService(userRepo, providerRepo, j, nil))
	catalogHandler := catalog.NewHandler(catalog.NewService(equipmentRepo, providerRepo))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, equipmentRepo))

	r := gin.New()
	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1)

		viewer := v1.Group("/")
		viewer.Use(middleware.OptionalJWTAuth(j, nil))
		{
			catalogHandler.RegisterRoutes(viewer)
			bookingHandler.RegisterPublicRoutes(viewer)
		}

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j, nil))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
		}
	}

	return &E2ETestSuite{router: r, db: db, equipmentRepo: equipmentRepo}
}

func (s *E2ETestSuite) request(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, TestResponse) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var parsed TestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed), "body: %s", w.Body.String())
	return w, parsed
}

func (s *E2ETestSuite) registerAndLogin(t *testing.T, name, email, role, company string) (int64, string) {
	w, resp := s.request(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name":         name,
		"email":        email,
		"password":     "secret123",
		"role":         role,
		"company_name": company,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	userID := int64(resp.Data["user"].(map[string]interface{})["id"].(float64))

	w, resp = s.request(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	token := resp.Data["access_token"].(string)

	return userID, token
}

func (s *E2ETestSuite) seedEquipment(t *testing.T, ownerID int64, rate float64) int64 {
	eq := &domain.Equipment{
		OwnerID:     ownerID,
		Title:       "Kubota KX019 mini excavator",
		Description: "Serviced before every rental.",
		Category:    "excavators",
		Location:    "Tallinn",
		DailyRate:   rate,
		Status:      domain.EquipmentAvailable,
		Features:    []string{"Rubber tracks", "Three buckets included"},
		Images: []domain.EquipmentImage{
			{URL: "https://img.test/side.jpg"},
			{URL: "https://img.test/main.jpg", IsMain: true},
		},
	}
	require.NoError(t, s.equipmentRepo.Create(context.Background(), eq))
	return eq.ID
}

func futureDate(daysAhead int) string {
	return time.Now().UTC().AddDate(0, 0, daysAhead).Format("2006-01-02")
}

func TestE2E_BookingFlow(t *testing.T) {
	s := setupTestSuite(t)

	providerID, providerToken := s.registerAndLogin(t, "Mikkel Sorensen", "provider@test.dev", "provider", "Nordic Machinery")
	_, renterToken := s.registerAndLogin(t, "Sam Carter", "renter@test.dev", "renter", "")

	equipmentID := s.seedEquipment(t, providerID, 50)

	// Session check: the page's mount-time auth probe.
	w, resp := s.request(t, http.MethodGet, "/api/v1/auth/session", renterToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	sess := resp.Data["session"].(map[string]interface{})
	assert.Equal(t, "renter", sess["user"].(map[string]interface{})["role"])

	// Detail view: main image first, provider card, viewer can book.
	path := fmt.Sprintf("/api/v1/equipment/%d", equipmentID)
	w, resp = s.request(t, http.MethodGet, path, renterToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	detail := resp.Data["equipment"].(map[string]interface{})
	images := detail["images"].([]interface{})
	require.Len(t, images, 2)
	assert.Equal(t, "https://img.test/main.jpg", images[0].(map[string]interface{})["url"])
	assert.Equal(t, "Nordic Machinery", detail["provider"].(map[string]interface{})["display_name"])
	assert.Equal(t, false, detail["is_owner"])
	assert.Equal(t, true, detail["can_book"])

	// Live quote for a two-day range at rate 50.
	quotePath := fmt.Sprintf("/api/v1/equipment/%d/quote?start_date=%s&end_date=%s", equipmentID, futureDate(1), futureDate(3))
	w, resp = s.request(t, http.MethodGet, quotePath, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	quote := resp.Data["quote"].(map[string]interface{})
	assert.Equal(t, float64(2), quote["days"])
	assert.Equal(t, float64(100), quote["subtotal"])
	assert.Equal(t, float64(5), quote["service_fee"])
	assert.Equal(t, float64(105), quote["total"])

	// Submit the booking.
	w, resp = s.request(t, http.MethodPost, "/api/v1/bookings", renterToken, gin.H{
		"equipment_id": equipmentID,
		"start_date":   futureDate(1),
		"end_date":     futureDate(3),
		"notes":        "Deliver to the site please",
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %v", resp)

	b := resp.Data["booking"].(map[string]interface{})
	assert.Equal(t, "pending", b["status"])
	assert.Equal(t, float64(2), b["days"])
	assert.Equal(t, float64(50), b["rate_per_day"])
	assert.Equal(t, float64(105), b["total_amount"])

	// Dashboard listing shows the new booking.
	w, resp = s.request(t, http.MethodGet, "/api/v1/bookings/my", renterToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	bookings := resp.Data["bookings"].([]interface{})
	require.Len(t, bookings, 1)
	assert.Equal(t, "Kubota KX019 mini excavator", bookings[0].(map[string]interface{})["equipment_title"])

	// The provider cannot book their own listing.
	w, resp = s.request(t, http.MethodPost, "/api/v1/bookings", providerToken, gin.H{
		"equipment_id": equipmentID,
		"start_date":   futureDate(1),
		"end_date":     futureDate(3),
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "OWN_EQUIPMENT", resp.Error.Code)

	// Owner view: booking control disabled.
	w, resp = s.request(t, http.MethodGet, path, providerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	detail = resp.Data["equipment"].(map[string]interface{})
	assert.Equal(t, true, detail["is_owner"])
	assert.Equal(t, false, detail["can_book"])
}

func TestE2E_EquipmentNotFound(t *testing.T) {
	s := setupTestSuite(t)

	w, resp := s.request(t, http.MethodGet, "/api/v1/equipment/9999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestE2E_BookingRequiresAuth(t *testing.T) {
	s := setupTestSuite(t)

	w, resp := s.request(t, http.MethodPost, "/api/v1/bookings", "", gin.H{
		"equipment_id": 1,
		"start_date":   futureDate(1),
		"end_date":     futureDate(2),
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "AUTH_HEADER_MISSING", resp.Error.Code)
}

func TestE2E_DuplicateEmailRejected(t *testing.T) {
	s := setupTestSuite(t)

	s.registerAndLogin(t, "Sam Carter", "renter@test.dev", "renter", "")

	w, resp := s.request(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name":     "Sam Again",
		"email":    "RENTER@test.dev",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "EMAIL_EXISTS", resp.Error.Code)

	var cnt int64
	s.db.Raw("SELECT COUNT(1) FROM users WHERE LOWER(email) = ?", "renter@test.dev").Scan(&cnt)
	assert.Equal(t, int64(1), cnt)
}

func TestE2E_PastStartDateRejected(t *testing.T) {
	s := setupTestSuite(t)

	providerID, _ := s.registerAndLogin(t, "Mikkel Sorensen", "provider@test.dev", "provider", "Nordic Machinery")
	_, renterToken := s.registerAndLogin(t, "Sam Carter", "renter@test.dev", "renter", "")
	equipmentID := s.seedEquipment(t, providerID, 50)

	w, resp := s.request(t, http.MethodPost, "/api/v1/bookings", renterToken, gin.H{
		"equipment_id": equipmentID,
		"start_date":   futureDate(-2),
		"end_date":     futureDate(1),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "PAST_START_DATE", resp.Error.Code)

	var cnt int64
	s.db.Raw("SELECT COUNT(1) FROM bookings").Scan(&cnt)
	assert.Zero(t, cnt, "no booking row may be written on validation failure")
}
