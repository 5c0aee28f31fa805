package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/street_safety_system/internal/config"
	"github.com/shenikar/street_safety_system/internal/models"
	"github.com/shenikar/street_safety_system/internal/service"
	"github.com/shenikar/street_safety_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*Handler, *mocks.MockIncidentService, *mocks.MockMembershipService, *mocks.MockRouteService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	incidentMock := mocks.NewMockIncidentService(ctrl)
	membershipMock := mocks.NewMockMembershipService(ctrl)
	routeMock := mocks.NewMockRouteService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:                []string{"test-api-key"},
		StatsTimeWindowMinutes: 60,
	}

	handler := NewHandler(incidentMock, membershipMock, routeMock, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api, APIKeyAuthMiddleware(cfg, logger))

	return handler, incidentMock, membershipMock, routeMock, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func authHeader() map[string]string {
	return map[string]string{"X-API-Key": "test-api-key"}
}

func TestReportIncident_Success(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)
	incidentID := uuid.New()
	reqBody := ReportIncidentRequest{
		Type:       "mugging",
		Latitude:   55.75,
		Longitude:  37.61,
		ReporterID: "user-1",
	}

	incidentMock.EXPECT().
		ReportIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			// Сервис заполняет серверные поля переданного инцидента
			inc.ID = incidentID
			inc.CreatedAt = time.Now()
			inc.ExpiresAt = time.Now().Add(48 * time.Hour)
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, incidentID, resp.ID)
	assert.Equal(t, "mugging", resp.Type)
	assert.Equal(t, "user-1", resp.ReporterID)
}

func TestReportIncident_InvalidJSON(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)

	incidentMock.EXPECT().ReportIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBufferString(`{"type": "mugging"`), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestReportIncident_ValidationError(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)
	reqBody := ReportIncidentRequest{ // Неизвестный тип инцидента
		Type:       "vandalism",
		Latitude:   55.75,
		Longitude:  37.61,
		ReporterID: "user-1",
	}

	incidentMock.EXPECT().ReportIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Type' failed on the 'oneof' tag")
}

func TestReportIncident_MissingReporter(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)
	reqBody := ReportIncidentRequest{
		Type:      "accident",
		Latitude:  55.75,
		Longitude: 37.61,
	}

	incidentMock.EXPECT().ReportIncident(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'ReporterID' failed on the 'required' tag")
}

func TestReportIncident_ServiceValidationError(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)
	reqBody := ReportIncidentRequest{
		Type:       "hijacking",
		Latitude:   55.75,
		Longitude:  37.61,
		ReporterID: "user-1",
	}

	incidentMock.EXPECT().
		ReportIncident(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("%w: coordinates out of range", service.ErrValidation)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "coordinates out of range")
}

func TestReportIncident_ServiceError(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)
	reqBody := ReportIncidentRequest{
		Type:       "mugging",
		Latitude:   55.75,
		Longitude:  37.61,
		ReporterID: "user-1",
	}
	serviceError := errors.New("failed to create incident")

	incidentMock.EXPECT().ReportIncident(gomock.Any(), gomock.Any()).Return(serviceError).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestGetIncident_Success(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)
	incidentID := uuid.New()
	expectedIncident := &models.Incident{
		ID:                incidentID,
		Type:              models.IncidentHijacking,
		Latitude:          55.75,
		Longitude:         37.61,
		ReporterID:        "user-1",
		VerificationCount: 2,
	}

	incidentMock.EXPECT().GetIncident(gomock.Any(), incidentID).Return(expectedIncident, nil).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/incidents/%s", incidentID.String()), nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, incidentID, resp.ID)
	assert.Equal(t, "hijacking", resp.Type)
	assert.Equal(t, 2, resp.VerificationCount)
}

func TestGetIncident_InvalidID(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)

	incidentMock.EXPECT().GetIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "GET", "/api/v1/incidents/invalid-uuid", nil, authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid incident ID")
}

func TestGetIncident_NotFound(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)
	incidentID := uuid.New()

	incidentMock.EXPECT().GetIncident(gomock.Any(), incidentID).Return(nil, service.ErrNotFound).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/incidents/%s", incidentID.String()), nil, authHeader())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "incident not found")
}

func TestGetIncident_ServiceError(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)
	incidentID := uuid.New()
	serviceError := errors.New("database error")

	incidentMock.EXPECT().GetIncident(gomock.Any(), incidentID).Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/incidents/%s", incidentID.String()), nil, authHeader())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestVoteIncident_Success(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)
	incidentID := uuid.New()
	reqBody := VoteIncidentRequest{VoterID: "voter-1"}
	verification := &models.Verification{
		ID:         uuid.New(),
		IncidentID: incidentID,
		VoterID:    "voter-1",
	}
	updatedIncident := &models.Incident{
		ID:                incidentID,
		Type:              models.IncidentMugging,
		ReporterID:        "user-1",
		VerificationCount: 3,
		IsVerified:        true,
	}

	incidentMock.EXPECT().VoteIncident(gomock.Any(), incidentID, "voter-1").Return(verification, nil).Times(1)
	incidentMock.EXPECT().GetIncident(gomock.Any(), incidentID).Return(updatedIncident, nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/incidents/%s/votes", incidentID.String()), bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.VerificationCount)
	assert.True(t, resp.IsVerified)
}

func TestVoteIncident_SelfVote(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)
	incidentID := uuid.New()
	reqBody := VoteIncidentRequest{VoterID: "user-1"}

	incidentMock.EXPECT().VoteIncident(gomock.Any(), incidentID, "user-1").Return(nil, service.ErrSelfVote).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/incidents/%s/votes", incidentID.String()), bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestVoteIncident_Duplicate(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)
	incidentID := uuid.New()
	reqBody := VoteIncidentRequest{VoterID: "voter-1"}

	incidentMock.EXPECT().VoteIncident(gomock.Any(), incidentID, "voter-1").Return(nil, service.ErrDuplicateVote).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/incidents/%s/votes", incidentID.String()), bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestVoteIncident_NotFound(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)
	incidentID := uuid.New()
	reqBody := VoteIncidentRequest{VoterID: "voter-1"}

	incidentMock.EXPECT().VoteIncident(gomock.Any(), incidentID, "voter-1").Return(nil, service.ErrNotFound).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/incidents/%s/votes", incidentID.String()), bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "incident not found")
}

func TestVoteIncident_MissingVoter(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)
	incidentID := uuid.New()

	incidentMock.EXPECT().VoteIncident(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/incidents/%s/votes", incidentID.String()), bytes.NewBufferString(`{}`), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'VoterID' failed on the 'required' tag")
}

func TestUpdateLocation_Success(t *testing.T) {
	_, _, membershipMock, _, router := newTestHandler(t)
	zoneID := uuid.New()
	reqBody := LocationUpdateRequest{
		UserID:    "user-1",
		Latitude:  55.75,
		Longitude: 37.61,
	}
	status := &models.LocationStatus{
		Inside: []*models.HotspotZone{
			{ID: zoneID, ZoneType: models.IncidentMugging, RiskLevel: models.RiskHigh, IsActive: true},
		},
		Entered: []*models.HotspotZone{
			{ID: zoneID, ZoneType: models.IncidentMugging, RiskLevel: models.RiskHigh, IsActive: true},
		},
	}

	membershipMock.EXPECT().
		HandleLocationUpdate(gomock.Any(), models.LocationUpdate{
			UserID:    "user-1",
			Latitude:  55.75,
			Longitude: 37.61,
		}).
		Return(status, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/location/update", bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp LocationStatusResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp.Inside, 1)
	require.Len(t, resp.Entered, 1)
	assert.Equal(t, zoneID, resp.Entered[0].ID)
	assert.Equal(t, "high", resp.Entered[0].RiskLevel)
}

func TestUpdateLocation_ValidationError(t *testing.T) {
	_, _, membershipMock, _, router := newTestHandler(t)
	reqBody := LocationUpdateRequest{ // Отсутствует UserID
		Latitude:  55.75,
		Longitude: 37.61,
	}

	membershipMock.EXPECT().HandleLocationUpdate(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/location/update", bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'UserID' failed on the 'required' tag")
}

func TestUpdateLocation_ServiceError(t *testing.T) {
	_, _, membershipMock, _, router := newTestHandler(t)
	reqBody := LocationUpdateRequest{
		UserID:    "user-1",
		Latitude:  55.75,
		Longitude: 37.61,
	}
	serviceError := errors.New("failed to save location")

	membershipMock.EXPECT().HandleLocationUpdate(gomock.Any(), gomock.Any()).Return(nil, serviceError).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/location/update", bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestListZones_Success(t *testing.T) {
	_, _, membershipMock, _, router := newTestHandler(t)
	expectedZones := []*models.HotspotZone{
		{ID: uuid.New(), ZoneType: models.IncidentMugging, RiskLevel: models.RiskLow, IsActive: true},
		{ID: uuid.New(), ZoneType: models.IncidentHijacking, RiskLevel: models.RiskCritical, IsActive: true},
	}

	membershipMock.EXPECT().ActiveZones(gomock.Any()).Return(expectedZones, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/zones", nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []*ZoneResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "mugging", resp[0].ZoneType)
	assert.Equal(t, "critical", resp[1].RiskLevel)
}

func TestListZones_ServiceError(t *testing.T) {
	_, _, membershipMock, _, router := newTestHandler(t)
	serviceError := errors.New("failed to list zones")

	membershipMock.EXPECT().ActiveZones(gomock.Any()).Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", "/api/v1/zones", nil, authHeader())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestScoreRoute_Success(t *testing.T) {
	_, _, _, routeMock, router := newTestHandler(t)
	reqBody := ScoreRouteRequest{
		OriginLat:      55.75,
		OriginLon:      37.61,
		DestinationLat: 55.76,
		DestinationLon: 37.63,
	}
	report := &models.RouteReport{
		Score:           76,
		RiskLevel:       models.RouteModerate,
		IncidentCount:   2,
		ZoneCount:       1,
		ZonesByRisk:     map[string]int{"critical": 1},
		Recommendations: []string{"1 critical zones on this route, consider an alternative"},
	}

	routeMock.EXPECT().
		ScoreRoute(gomock.Any(), models.RouteRequest{
			OriginLat:      55.75,
			OriginLon:      37.61,
			DestinationLat: 55.76,
			DestinationLon: 37.63,
		}).
		Return(report, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/routes/score", bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp RouteReportResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 76, resp.Score)
	assert.Equal(t, "moderate", resp.RiskLevel)
	assert.Equal(t, 1, resp.ZonesByRisk["critical"])
}

func TestScoreRoute_ValidationError(t *testing.T) {
	_, _, _, routeMock, router := newTestHandler(t)
	reqBody := ScoreRouteRequest{ // Отсутствует точка назначения
		OriginLat: 55.75,
		OriginLon: 37.61,
	}

	routeMock.EXPECT().ScoreRoute(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/routes/score", bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'DestinationLat' failed on the 'required' tag")
}

func TestScoreRoute_ServiceError(t *testing.T) {
	_, _, _, routeMock, router := newTestHandler(t)
	reqBody := ScoreRouteRequest{
		OriginLat:      55.75,
		OriginLon:      37.61,
		DestinationLat: 55.76,
		DestinationLon: 37.63,
	}
	serviceError := errors.New("could not fetch route incidents")

	routeMock.EXPECT().ScoreRoute(gomock.Any(), gomock.Any()).Return(nil, serviceError).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/routes/score", bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestGetStats_Success(t *testing.T) {
	_, _, membershipMock, _, router := newTestHandler(t)
	expectedCount := 123

	membershipMock.EXPECT().CountActiveUsers(gomock.Any()).Return(expectedCount, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/stats", nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp StatsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, expectedCount, resp.UserCount)
}

func TestGetStats_ServiceError(t *testing.T) {
	_, _, membershipMock, _, router := newTestHandler(t)
	serviceError := errors.New("failed to count users")

	membershipMock.EXPECT().CountActiveUsers(gomock.Any()).Return(0, serviceError).Times(1)

	w := makeRequest(router, "GET", "/api/v1/stats", nil, authHeader())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, _, _, router := newTestHandler(t)

	// Health-check доступен без API-ключа
	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestProtectedRoute_MissingKey(t *testing.T) {
	_, _, membershipMock, _, router := newTestHandler(t)

	membershipMock.EXPECT().ActiveZones(gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/zones", nil) // Нет API ключа
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestAPIKeyAuthMiddleware_Success(t *testing.T) {
	// Создаем Gin-роутер и добавляем middleware
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_BearerFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"Authorization": "Bearer valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_MissingKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil) // Нет API ключа
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestAPIKeyAuthMiddleware_InvalidKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "invalid-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}
