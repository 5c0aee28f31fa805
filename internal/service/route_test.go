package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/street_safety_system/internal/config"
	"github.com/shenikar/street_safety_system/internal/models"
	"github.com/shenikar/street_safety_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestRouteService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestRouteService(t *testing.T) (*routeService, *mocks.MockIncidentRepository, *mocks.MockZoneRepository) {
	ctrl := gomock.NewController(t)
	incidentsMock := mocks.NewMockIncidentRepository(ctrl)
	zonesMock := mocks.NewMockZoneRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		RouteCorridorMeters: 1000,
		RouteWindow:         48 * time.Hour,
	}

	service := NewRouteService(incidentsMock, zonesMock, logger, cfg)
	return service.(*routeService), incidentsMock, zonesMock
}

func TestScoreRoute_ModerateRoute(t *testing.T) {
	// Подготовка
	service, incidentsMock, zonesMock := newTestRouteService(t)
	ctx := context.Background()
	req := models.RouteRequest{
		OriginLat:      0,
		OriginLon:      0,
		DestinationLat: 0,
		DestinationLon: 0.05,
	}
	// Оба инцидента у начала отрезка, внутри коридора
	incidents := []*models.Incident{
		{ID: uuid.New(), Type: models.IncidentMugging, Latitude: 0, Longitude: 0.001},
		{ID: uuid.New(), Type: models.IncidentMugging, Latitude: 0.001, Longitude: 0},
	}
	zones := []*models.HotspotZone{
		{ID: uuid.New(), ZoneType: models.IncidentMugging, Latitude: 0, Longitude: 0.002, RadiusMeters: 1000, RiskLevel: models.RiskCritical, IsActive: true},
	}

	// Ожидания
	incidentsMock.EXPECT().
		FindRecentWithinBox(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(incidents, nil).
		Times(1)
	zonesMock.EXPECT().
		ActiveZonesWithinBox(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(zones, nil).
		Times(1)

	// Действие
	report, err := service.ScoreRoute(ctx, req)

	// Проверки: 100 - 2*2 - 20 = 76
	require.NoError(t, err)
	assert.Equal(t, 76, report.Score)
	assert.Equal(t, models.RouteModerate, report.RiskLevel)
	assert.Equal(t, 2, report.IncidentCount)
	assert.Equal(t, 1, report.ZoneCount)
	assert.Equal(t, 1, report.ZonesByRisk[string(models.RiskCritical)])
	assert.Contains(t, report.Recommendations[0], "critical zones")
}

func TestScoreRoute_CleanRoute(t *testing.T) {
	// Подготовка
	service, incidentsMock, zonesMock := newTestRouteService(t)
	ctx := context.Background()
	req := models.RouteRequest{
		OriginLat:      55.75,
		OriginLon:      37.61,
		DestinationLat: 55.76,
		DestinationLon: 37.63,
	}

	// Ожидания
	incidentsMock.EXPECT().
		FindRecentWithinBox(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).
		Times(1)
	zonesMock.EXPECT().
		ActiveZonesWithinBox(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).
		Times(1)

	// Действие
	report, err := service.ScoreRoute(ctx, req)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 100, report.Score)
	assert.Equal(t, models.RouteSafe, report.RiskLevel)
	assert.Equal(t, []string{"No recent incidents near this route"}, report.Recommendations)
}

func TestScoreRoute_ScoreClampedAtZero(t *testing.T) {
	// Подготовка
	service, incidentsMock, zonesMock := newTestRouteService(t)
	ctx := context.Background()
	req := models.RouteRequest{
		OriginLat:      0,
		OriginLon:      0,
		DestinationLat: 0,
		DestinationLon: 0.01,
	}
	zones := make([]*models.HotspotZone, 0, 6)
	for i := 0; i < 6; i++ {
		zones = append(zones, &models.HotspotZone{
			ID:           uuid.New(),
			ZoneType:     models.IncidentHijacking,
			Latitude:     0,
			Longitude:    0.001,
			RadiusMeters: 1000,
			RiskLevel:    models.RiskCritical,
			IsActive:     true,
		})
	}

	// Ожидания
	incidentsMock.EXPECT().
		FindRecentWithinBox(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).
		Times(1)
	zonesMock.EXPECT().
		ActiveZonesWithinBox(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(zones, nil).
		Times(1)

	// Действие
	report, err := service.ScoreRoute(ctx, req)

	// Проверки: 6 critical зон дают штраф 120, балл ограничен нулем
	require.NoError(t, err)
	assert.Equal(t, 0, report.Score)
	assert.Equal(t, models.RouteDangerous, report.RiskLevel)
}

func TestScoreRoute_IgnoresIncidentsOutsideCorridor(t *testing.T) {
	// Подготовка
	service, incidentsMock, zonesMock := newTestRouteService(t)
	ctx := context.Background()
	req := models.RouteRequest{
		OriginLat:      0,
		OriginLon:      0,
		DestinationLat: 0,
		DestinationLon: 0.05,
	}
	// ~2200 м от обеих конечных точек, в рамку попадает, в коридор - нет
	incidents := []*models.Incident{
		{ID: uuid.New(), Type: models.IncidentAccident, Latitude: 0.02, Longitude: 0.025},
	}

	// Ожидания
	incidentsMock.EXPECT().
		FindRecentWithinBox(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(incidents, nil).
		Times(1)
	zonesMock.EXPECT().
		ActiveZonesWithinBox(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).
		Times(1)

	// Действие
	report, err := service.ScoreRoute(ctx, req)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 0, report.IncidentCount)
	assert.Equal(t, 100, report.Score)
}

func TestScoreRoute_ZoneRadiusExtendsCorridor(t *testing.T) {
	// Подготовка
	service, incidentsMock, zonesMock := newTestRouteService(t)
	ctx := context.Background()
	req := models.RouteRequest{
		OriginLat:      0,
		OriginLon:      0,
		DestinationLat: 0,
		DestinationLon: 0.05,
	}
	// Центр зоны в ~1790 м от начала: дальше коридора, но край зоны
	// (радиус 1000 м) его достает
	zones := []*models.HotspotZone{
		{ID: uuid.New(), ZoneType: models.IncidentMugging, Latitude: 0.0161, Longitude: 0, RadiusMeters: 1000, RiskLevel: models.RiskLow, IsActive: true},
	}

	// Ожидания
	incidentsMock.EXPECT().
		FindRecentWithinBox(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).
		Times(1)
	zonesMock.EXPECT().
		ActiveZonesWithinBox(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(zones, nil).
		Times(1)

	// Действие
	report, err := service.ScoreRoute(ctx, req)

	// Проверки: 100 - 2 = 98
	require.NoError(t, err)
	assert.Equal(t, 1, report.ZoneCount)
	assert.Equal(t, 98, report.Score)
}

func TestScoreRoute_InvalidCoordinates(t *testing.T) {
	// Подготовка
	service, _, _ := newTestRouteService(t)
	ctx := context.Background()
	req := models.RouteRequest{
		OriginLat:      95,
		OriginLon:      0,
		DestinationLat: 0,
		DestinationLon: 0,
	}

	// Действие
	_, err := service.ScoreRoute(ctx, req)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestScoreRoute_StoreError(t *testing.T) {
	// Подготовка
	service, incidentsMock, _ := newTestRouteService(t)
	ctx := context.Background()
	req := models.RouteRequest{
		OriginLat:      0,
		OriginLon:      0,
		DestinationLat: 0,
		DestinationLon: 0.01,
	}
	storeError := fmt.Errorf("таймаут запроса")

	// Ожидания
	incidentsMock.EXPECT().
		FindRecentWithinBox(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, storeError).
		Times(1)

	// Действие
	_, err := service.ScoreRoute(ctx, req)

	// Проверки
	require.Error(t, err)
	assert.ErrorContains(t, err, "could not fetch route incidents")
}
