package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shenikar/street_safety_system/internal/broadcast"
	broadcast_mocks "github.com/shenikar/street_safety_system/internal/broadcast/mocks"
	"github.com/shenikar/street_safety_system/internal/config"
	"github.com/shenikar/street_safety_system/internal/models"
	"github.com/shenikar/street_safety_system/internal/service/mocks"
	"github.com/shenikar/street_safety_system/pkg/metrics"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestClusterService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestClusterService(t *testing.T) (*clusterService, *mocks.MockZoneRepository, *mocks.MockClusterLocker, *broadcast_mocks.MockEventPublisher) {
	ctrl := gomock.NewController(t)
	zonesMock := mocks.NewMockZoneRepository(ctrl)
	lockerMock := mocks.NewMockClusterLocker(ctrl)
	publisherMock := broadcast_mocks.NewMockEventPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		ClusterEpsMeters:  1100,
		ClusterMinPoints:  5,
		ClusterWindowDays: 7,
		ClusterLockTTL:    5 * time.Minute,
		ZoneMatchMeters:   500,
		ZoneRadiusMeters:  1000,
		ZoneMinIncidents:  3,
	}

	service := NewClusterService(zonesMock, lockerMock, publisherMock, logger, cfg, metrics.New(prometheus.NewRegistry()))
	return service.(*clusterService), zonesMock, lockerMock, publisherMock
}

// expectEmptyCycle - кластеризация без результатов для всех типов, кроме перечисленных
func expectEmptyCycle(ctx context.Context, zonesMock *mocks.MockZoneRepository, except ...models.IncidentType) {
	skip := make(map[models.IncidentType]struct{}, len(except))
	for _, t := range except {
		skip[t] = struct{}{}
	}
	for _, incidentType := range models.IncidentTypes() {
		if _, ok := skip[incidentType]; ok {
			continue
		}
		zonesMock.EXPECT().
			ClusterIncidents(ctx, incidentType, 7, 1100.0, 5).
			Return(nil, nil).
			Times(1)
	}
}

func TestRunClusteringCycle_CreatesZone(t *testing.T) {
	// Подготовка
	service, zonesMock, lockerMock, publisherMock := newTestClusterService(t)
	ctx := context.Background()
	centroid := &models.ClusterCentroid{
		Latitude:       55.75,
		Longitude:      37.61,
		Count:          5,
		LastIncidentAt: time.Now(),
	}

	// Ожидания
	lockerMock.EXPECT().TryAcquire(ctx, 5*time.Minute).Return(true, nil).Times(1)
	lockerMock.EXPECT().Release(ctx).Return(nil).Times(1)

	zonesMock.EXPECT().
		ClusterIncidents(ctx, models.IncidentHijacking, 7, 1100.0, 5).
		Return([]*models.ClusterCentroid{centroid}, nil).
		Times(1)
	expectEmptyCycle(ctx, zonesMock, models.IncidentHijacking)

	// Совпадений со старыми зонами нет, создается новая
	zonesMock.EXPECT().
		FindNearestZone(ctx, models.IncidentHijacking, centroid.Latitude, centroid.Longitude, 500.0).
		Return(nil, nil).
		Times(1)
	zonesMock.EXPECT().
		CreateZone(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, zone *models.HotspotZone) error {
			assert.Equal(t, models.IncidentHijacking, zone.ZoneType)
			assert.Equal(t, 1000, zone.RadiusMeters)
			assert.Equal(t, 5, zone.IncidentCount)
			assert.Equal(t, models.RiskLow, zone.RiskLevel)
			assert.True(t, zone.IsActive)
			zone.ID = uuid.New()
			return nil
		}).Times(1)
	publisherMock.EXPECT().
		Publish(ctx, broadcast.TopicZones, "zone.created", gomock.Any()).
		Return(nil).
		Times(1)

	zonesMock.EXPECT().DissolveStaleZones(ctx, 7, 3).Return(nil, nil).Times(1)

	// Действие
	err := service.RunClusteringCycle(ctx)

	// Проверки
	require.NoError(t, err)
}

func TestRunClusteringCycle_UpdatesMatchedZone(t *testing.T) {
	// Подготовка
	service, zonesMock, lockerMock, publisherMock := newTestClusterService(t)
	ctx := context.Background()
	lastIncident := time.Now()
	centroid := &models.ClusterCentroid{
		Latitude:       55.75,
		Longitude:      37.61,
		Count:          12,
		LastIncidentAt: lastIncident,
	}
	existing := &models.HotspotZone{
		ID:            uuid.New(),
		ZoneType:      models.IncidentMugging,
		Latitude:      55.751,
		Longitude:     37.612,
		RadiusMeters:  1000,
		IncidentCount: 6,
		RiskLevel:     models.RiskMedium,
		IsActive:      false, // растворенная зона реактивируется
	}

	// Ожидания
	lockerMock.EXPECT().TryAcquire(ctx, 5*time.Minute).Return(true, nil).Times(1)
	lockerMock.EXPECT().Release(ctx).Return(nil).Times(1)

	zonesMock.EXPECT().
		ClusterIncidents(ctx, models.IncidentMugging, 7, 1100.0, 5).
		Return([]*models.ClusterCentroid{centroid}, nil).
		Times(1)
	expectEmptyCycle(ctx, zonesMock, models.IncidentMugging)

	zonesMock.EXPECT().
		FindNearestZone(ctx, models.IncidentMugging, centroid.Latitude, centroid.Longitude, 500.0).
		Return(existing, nil).
		Times(1)
	zonesMock.EXPECT().
		UpdateZoneFromCluster(ctx, existing.ID, 12, models.RiskHigh, lastIncident).
		Return(nil).
		Times(1)
	publisherMock.EXPECT().
		Publish(ctx, broadcast.TopicZones, "zone.updated", existing).
		Return(nil).
		Times(1)

	zonesMock.EXPECT().DissolveStaleZones(ctx, 7, 3).Return(nil, nil).Times(1)

	// Действие
	err := service.RunClusteringCycle(ctx)

	// Проверки
	require.NoError(t, err)
	assert.True(t, existing.IsActive)
	assert.Equal(t, 12, existing.IncidentCount)
	assert.Equal(t, models.RiskHigh, existing.RiskLevel)
}

func TestRunClusteringCycle_SkipsSmallClusters(t *testing.T) {
	// Подготовка
	service, zonesMock, lockerMock, _ := newTestClusterService(t)
	ctx := context.Background()
	centroid := &models.ClusterCentroid{
		Latitude:  55.75,
		Longitude: 37.61,
		Count:     4, // ниже min_points
	}

	// Ожидания: никаких операций с зонами для мелкого кластера
	lockerMock.EXPECT().TryAcquire(ctx, 5*time.Minute).Return(true, nil).Times(1)
	lockerMock.EXPECT().Release(ctx).Return(nil).Times(1)

	zonesMock.EXPECT().
		ClusterIncidents(ctx, models.IncidentAccident, 7, 1100.0, 5).
		Return([]*models.ClusterCentroid{centroid}, nil).
		Times(1)
	expectEmptyCycle(ctx, zonesMock, models.IncidentAccident)

	zonesMock.EXPECT().DissolveStaleZones(ctx, 7, 3).Return(nil, nil).Times(1)

	// Действие
	err := service.RunClusteringCycle(ctx)

	// Проверки
	require.NoError(t, err)
}

func TestRunClusteringCycle_DissolvesStaleZones(t *testing.T) {
	// Подготовка
	service, zonesMock, lockerMock, publisherMock := newTestClusterService(t)
	ctx := context.Background()
	dissolvedID := uuid.New()

	// Ожидания
	lockerMock.EXPECT().TryAcquire(ctx, 5*time.Minute).Return(true, nil).Times(1)
	lockerMock.EXPECT().Release(ctx).Return(nil).Times(1)
	expectEmptyCycle(ctx, zonesMock)

	zonesMock.EXPECT().
		DissolveStaleZones(ctx, 7, 3).
		Return([]uuid.UUID{dissolvedID}, nil).
		Times(1)
	publisherMock.EXPECT().
		Publish(ctx, broadcast.TopicZones, "zone.dissolved", map[string]any{"zone_id": dissolvedID}).
		Return(nil).
		Times(1)

	// Действие
	err := service.RunClusteringCycle(ctx)

	// Проверки
	require.NoError(t, err)
}

func TestRunClusteringCycle_InProcessGuard(t *testing.T) {
	// Подготовка
	service, _, _, _ := newTestClusterService(t)
	ctx := context.Background()
	service.running.Store(true)

	// Действие
	err := service.RunClusteringCycle(ctx)

	// Проверки: тик пропущен, а не поставлен в очередь
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCycleRunning)
}

func TestRunClusteringCycle_LockHeldByOtherInstance(t *testing.T) {
	// Подготовка
	service, _, lockerMock, _ := newTestClusterService(t)
	ctx := context.Background()

	// Ожидания: кластеризация не запускается без блокировки
	lockerMock.EXPECT().TryAcquire(ctx, 5*time.Minute).Return(false, nil).Times(1)

	// Действие
	err := service.RunClusteringCycle(ctx)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCycleRunning)
	// Внутренний флаг сброшен, следующий тик не блокируется
	assert.False(t, service.running.Load())
}

func TestRunClusteringCycle_StoreErrorAbortsCycle(t *testing.T) {
	// Подготовка
	service, zonesMock, lockerMock, _ := newTestClusterService(t)
	ctx := context.Background()
	storeError := fmt.Errorf("соединение потеряно")

	// Ожидания: первый же сбой хранилища прерывает цикл,
	// остальные типы и растворение не выполняются
	lockerMock.EXPECT().TryAcquire(ctx, 5*time.Minute).Return(true, nil).Times(1)
	lockerMock.EXPECT().Release(ctx).Return(nil).Times(1)

	zonesMock.EXPECT().
		ClusterIncidents(ctx, models.IncidentHijacking, 7, 1100.0, 5).
		Return(nil, storeError).
		Times(1)

	// Действие
	err := service.RunClusteringCycle(ctx)

	// Проверки
	require.Error(t, err)
	assert.ErrorContains(t, err, "clustering failed")
}
