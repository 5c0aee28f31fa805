package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/street_safety_system/internal/broadcast"
	"github.com/shenikar/street_safety_system/internal/config"
	"github.com/shenikar/street_safety_system/internal/models"
	"github.com/shenikar/street_safety_system/pkg/metrics"
	"github.com/sirupsen/logrus"
)

// ZoneRepository определяет контракт для работы с хранилищем зон
type ZoneRepository interface {
	// ClusterIncidents выполняет плотностную кластеризацию инцидентов
	// заданного типа за окно windowDays и возвращает центроиды кластеров
	ClusterIncidents(ctx context.Context, incidentType models.IncidentType, windowDays int, epsMeters float64, minPoints int) ([]*models.ClusterCentroid, error)
	// FindNearestZone возвращает ближайшую зону типа в радиусе matchMeters
	// от точки или nil, если совпадений нет
	FindNearestZone(ctx context.Context, zoneType models.IncidentType, lat, lon, matchMeters float64) (*models.HotspotZone, error)
	CreateZone(ctx context.Context, zone *models.HotspotZone) error
	UpdateZoneFromCluster(ctx context.Context, zoneID uuid.UUID, incidentCount int, riskLevel models.RiskLevel, lastIncidentAt time.Time) error
	// DissolveStaleZones деактивирует активные зоны, у которых пересчитанное
	// количество инцидентов за окно упало ниже minIncidents
	DissolveStaleZones(ctx context.Context, windowDays, minIncidents int) ([]uuid.UUID, error)
	GetZoneByID(ctx context.Context, id uuid.UUID) (*models.HotspotZone, error)
	ZonesContainingPoint(ctx context.Context, lat, lon float64) ([]*models.HotspotZone, error)
	ActiveZonesNear(ctx context.Context, lat, lon, bandMeters float64) ([]*models.HotspotZone, error)
	ActiveZonesWithinBox(ctx context.Context, minLat, minLon, maxLat, maxLon float64) ([]*models.HotspotZone, error)
	ListActiveZones(ctx context.Context) ([]*models.HotspotZone, error)
}

// ClusterLocker - межэкземплярная блокировка цикла кластеризации
type ClusterLocker interface {
	TryAcquire(ctx context.Context, ttl time.Duration) (bool, error)
	Release(ctx context.Context) error
}

// ClusterService определяет контракт менеджера жизненного цикла зон
type ClusterService interface {
	RunClusteringCycle(ctx context.Context) error
}

type clusterService struct {
	zones     ZoneRepository
	locker    ClusterLocker
	publisher broadcast.EventPublisher
	logger    *logrus.Logger
	cfg       *config.Config
	metrics   *metrics.Metrics
	running   atomic.Bool
}

func NewClusterService(zones ZoneRepository, locker ClusterLocker, publisher broadcast.EventPublisher, logger *logrus.Logger, cfg *config.Config, m *metrics.Metrics) ClusterService {
	return &clusterService{
		zones:     zones,
		locker:    locker,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
		metrics:   m,
	}
}

// RunClusteringCycle выполняет один цикл кластеризации и обновления зон.
// Если предыдущий цикл еще идет, тик пропускается, а не ставится в очередь.
// Любая ошибка хранилища прерывает цикл без частичных дописываний:
// состояние зон доедет на следующем тике.
func (s *clusterService) RunClusteringCycle(ctx context.Context) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "cluster",
		"method":  "RunClusteringCycle",
	})

	if !s.running.CompareAndSwap(false, true) {
		log.Info("Previous clustering cycle still running, skipping tick")
		s.metrics.ClusterCycles.WithLabelValues("skipped").Inc()
		return ErrCycleRunning
	}
	defer s.running.Store(false)

	acquired, err := s.locker.TryAcquire(ctx, s.cfg.ClusterLockTTL)
	if err != nil {
		log.WithError(err).Error("Failed to acquire clustering lock")
		s.metrics.ClusterCycles.WithLabelValues("failed").Inc()
		return fmt.Errorf("service: could not acquire clustering lock: %w", err)
	}
	if !acquired {
		log.Info("Clustering lock held by another instance, skipping tick")
		s.metrics.ClusterCycles.WithLabelValues("skipped").Inc()
		return ErrCycleRunning
	}
	defer func() {
		if err := s.locker.Release(ctx); err != nil {
			log.WithError(err).Warn("Failed to release clustering lock")
		}
	}()

	started := time.Now()
	for _, incidentType := range models.IncidentTypes() {
		if err := s.clusterType(ctx, incidentType, log); err != nil {
			s.metrics.ClusterCycles.WithLabelValues("failed").Inc()
			return err
		}
	}

	if err := s.dissolveStale(ctx, log); err != nil {
		s.metrics.ClusterCycles.WithLabelValues("failed").Inc()
		return err
	}

	s.metrics.ClusterCycles.WithLabelValues("completed").Inc()
	log.WithField("duration", time.Since(started).String()).Info("Clustering cycle completed")
	return nil
}

func (s *clusterService) clusterType(ctx context.Context, incidentType models.IncidentType, log *logrus.Entry) error {
	clusters, err := s.zones.ClusterIncidents(ctx, incidentType, s.cfg.ClusterWindowDays, s.cfg.ClusterEpsMeters, s.cfg.ClusterMinPoints)
	if err != nil {
		log.WithError(err).WithField("type", incidentType).Error("Clustering query failed, aborting cycle")
		return fmt.Errorf("service: clustering failed for type %s: %w", incidentType, err)
	}

	for _, cluster := range clusters {
		if cluster.Count < s.cfg.ClusterMinPoints {
			continue
		}

		risk := models.RiskLevelForCount(cluster.Count)

		zone, err := s.zones.FindNearestZone(ctx, incidentType, cluster.Latitude, cluster.Longitude, s.cfg.ZoneMatchMeters)
		if err != nil {
			log.WithError(err).Error("Zone match query failed, aborting cycle")
			return fmt.Errorf("service: zone match failed: %w", err)
		}

		if zone == nil {
			zone = &models.HotspotZone{
				ZoneType:       incidentType,
				Latitude:       cluster.Latitude,
				Longitude:      cluster.Longitude,
				RadiusMeters:   s.cfg.ZoneRadiusMeters,
				IncidentCount:  cluster.Count,
				RiskLevel:      risk,
				IsActive:       true,
				LastIncidentAt: cluster.LastIncidentAt,
			}
			if err := s.zones.CreateZone(ctx, zone); err != nil {
				log.WithError(err).Error("Zone create failed, aborting cycle")
				return fmt.Errorf("service: zone create failed: %w", err)
			}
			s.metrics.ZonesCreated.Inc()
			s.publishZoneEvent(ctx, "zone.created", zone, log)
			log.WithFields(logrus.Fields{
				"zone_id": zone.ID,
				"type":    incidentType,
				"count":   cluster.Count,
				"risk":    risk,
			}).Info("Hotspot zone created")
			continue
		}

		// Совпавшая зона обновляется и при необходимости реактивируется
		if err := s.zones.UpdateZoneFromCluster(ctx, zone.ID, cluster.Count, risk, cluster.LastIncidentAt); err != nil {
			log.WithError(err).Error("Zone update failed, aborting cycle")
			return fmt.Errorf("service: zone update failed: %w", err)
		}
		zone.IncidentCount = cluster.Count
		zone.RiskLevel = risk
		zone.LastIncidentAt = cluster.LastIncidentAt
		zone.IsActive = true
		s.publishZoneEvent(ctx, "zone.updated", zone, log)
		log.WithFields(logrus.Fields{
			"zone_id": zone.ID,
			"count":   cluster.Count,
			"risk":    risk,
		}).Info("Hotspot zone updated")
	}

	return nil
}

func (s *clusterService) dissolveStale(ctx context.Context, log *logrus.Entry) error {
	dissolved, err := s.zones.DissolveStaleZones(ctx, s.cfg.ClusterWindowDays, s.cfg.ZoneMinIncidents)
	if err != nil {
		log.WithError(err).Error("Dissolution pass failed, aborting cycle")
		return fmt.Errorf("service: dissolution pass failed: %w", err)
	}

	for _, zoneID := range dissolved {
		s.metrics.ZonesDissolved.Inc()
		if err := s.publisher.Publish(ctx, broadcast.TopicZones, "zone.dissolved", map[string]any{"zone_id": zoneID}); err != nil {
			log.WithError(err).Warn("Failed to publish zone.dissolved event")
		}
		log.WithField("zone_id", zoneID).Info("Hotspot zone dissolved")
	}
	return nil
}

func (s *clusterService) publishZoneEvent(ctx context.Context, event string, zone *models.HotspotZone, log *logrus.Entry) {
	if err := s.publisher.Publish(ctx, broadcast.TopicZones, event, zone); err != nil {
		log.WithError(err).Warnf("Failed to publish %s event", event)
	}
}
