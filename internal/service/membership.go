package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/street_safety_system/internal/config"
	"github.com/shenikar/street_safety_system/internal/models"
	"github.com/shenikar/street_safety_system/pkg/metrics"
	"github.com/sirupsen/logrus"
)

// MembershipRepository определяет контракт для записей нахождения в зонах
type MembershipRepository interface {
	// Open создает открытую запись или возвращает существующую.
	// created=false означает, что пользователь уже внутри зоны.
	Open(ctx context.Context, userID string, zoneID uuid.UUID) (membership *models.ZoneMembership, created bool, err error)
	// Close закрывает открытую запись; ErrNotFound, если открытой записи нет
	Close(ctx context.Context, userID string, zoneID uuid.UUID) (*models.ZoneMembership, error)
	OpenZoneIDs(ctx context.Context, userID string) ([]uuid.UUID, error)
	MarkNotified(ctx context.Context, membershipID int64) error
}

// MembershipService - трекер нахождения пользователей в зонах и
// источник proximity-оповещений
type MembershipService interface {
	HandleLocationUpdate(ctx context.Context, update models.LocationUpdate) (*models.LocationStatus, error)
	Enter(ctx context.Context, userID string, zoneID uuid.UUID) (*models.ZoneMembership, error)
	Exit(ctx context.Context, userID string, zoneID uuid.UUID) (*models.ZoneMembership, error)
	Approaching(ctx context.Context, lat, lon float64, isPremium bool) ([]*models.HotspotZone, error)
	ActiveZones(ctx context.Context) ([]*models.HotspotZone, error)
	CountActiveUsers(ctx context.Context) (int, error)
}

type membershipService struct {
	memberships MembershipRepository
	zones       ZoneRepository
	users       UserRepository
	dispatcher  AlertDispatcher
	logger      *logrus.Logger
	cfg         *config.Config
	metrics     *metrics.Metrics
}

func NewMembershipService(memberships MembershipRepository, zones ZoneRepository, users UserRepository, dispatcher AlertDispatcher, logger *logrus.Logger, cfg *config.Config, m *metrics.Metrics) MembershipService {
	return &membershipService{
		memberships: memberships,
		zones:       zones,
		users:       users,
		dispatcher:  dispatcher,
		logger:      logger,
		cfg:         cfg,
		metrics:     m,
	}
}

// HandleLocationUpdate обрабатывает одно обновление позиции пользователя:
// сохраняет последнюю известную локацию, сверяет вхождение в активные зоны
// с открытыми записями и генерирует переходы enter/exit
func (s *membershipService) HandleLocationUpdate(ctx context.Context, update models.LocationUpdate) (*models.LocationStatus, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "membership",
		"method":  "HandleLocationUpdate",
		"user_id": update.UserID,
	})

	if update.UserID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrValidation)
	}
	if !validCoordinates(update.Latitude, update.Longitude) {
		return nil, fmt.Errorf("%w: coordinates out of range", ErrValidation)
	}

	if err := s.users.SaveLocation(ctx, update); err != nil {
		log.WithError(err).Error("Failed to save user location")
		return nil, fmt.Errorf("service: could not save user location: %w", err)
	}

	inside, err := s.zones.ZonesContainingPoint(ctx, update.Latitude, update.Longitude)
	if err != nil {
		log.WithError(err).Error("Failed to find containing zones")
		return nil, fmt.Errorf("service: could not find containing zones: %w", err)
	}

	openIDs, err := s.memberships.OpenZoneIDs(ctx, update.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to list open memberships")
		return nil, fmt.Errorf("service: could not list open memberships: %w", err)
	}

	status := &models.LocationStatus{
		Inside:      inside,
		Entered:     make([]*models.HotspotZone, 0),
		Exited:      make([]*models.HotspotZone, 0),
		Approaching: make([]*models.HotspotZone, 0),
	}

	insideIDs := make(map[uuid.UUID]struct{}, len(inside))
	for _, zone := range inside {
		insideIDs[zone.ID] = struct{}{}
	}
	openSet := make(map[uuid.UUID]struct{}, len(openIDs))
	for _, id := range openIDs {
		openSet[id] = struct{}{}
	}

	for _, zone := range inside {
		if _, alreadyIn := openSet[zone.ID]; alreadyIn {
			continue
		}
		if _, err := s.enterZone(ctx, update.UserID, zone); err != nil {
			return nil, err
		}
		status.Entered = append(status.Entered, zone)
	}

	for _, zoneID := range openIDs {
		if _, stillIn := insideIDs[zoneID]; stillIn {
			continue
		}
		_, zone, err := s.closeAndNotify(ctx, update.UserID, zoneID)
		if err != nil {
			return nil, err
		}
		if zone != nil {
			status.Exited = append(status.Exited, zone)
		}
	}

	if update.IsPremium {
		approaching, err := s.Approaching(ctx, update.Latitude, update.Longitude, true)
		if err != nil {
			return nil, err
		}
		status.Approaching = approaching
	}

	log.WithFields(logrus.Fields{
		"inside":  len(status.Inside),
		"entered": len(status.Entered),
		"exited":  len(status.Exited),
	}).Info("Location update processed")
	return status, nil
}

// Enter фиксирует вход пользователя в зону. Идемпотентна: повторный вход
// без выхода возвращает существующую запись и не шлет повторное оповещение.
func (s *membershipService) Enter(ctx context.Context, userID string, zoneID uuid.UUID) (*models.ZoneMembership, error) {
	zone, err := s.zones.GetZoneByID(ctx, zoneID)
	if err != nil {
		return nil, fmt.Errorf("service: could not load zone: %w", err)
	}
	return s.enterZone(ctx, userID, zone)
}

func (s *membershipService) enterZone(ctx context.Context, userID string, zone *models.HotspotZone) (*models.ZoneMembership, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "membership",
		"method":  "Enter",
		"user_id": userID,
		"zone_id": zone.ID,
	})

	membership, created, err := s.memberships.Open(ctx, userID, zone.ID)
	if err != nil {
		log.WithError(err).Error("Failed to open membership")
		return nil, fmt.Errorf("service: could not open membership: %w", err)
	}
	if !created {
		return membership, nil
	}

	s.metrics.MembershipEvents.WithLabelValues("entered").Inc()
	s.dispatcher.DispatchZoneEntered(ctx, userID, zone)

	if err := s.memberships.MarkNotified(ctx, membership.ID); err != nil {
		log.WithError(err).Warn("Failed to mark membership as notified")
	} else {
		membership.NotificationSent = true
	}

	log.Info("User entered zone")
	return membership, nil
}

// Exit фиксирует выход пользователя из зоны
func (s *membershipService) Exit(ctx context.Context, userID string, zoneID uuid.UUID) (*models.ZoneMembership, error) {
	membership, _, err := s.closeAndNotify(ctx, userID, zoneID)
	return membership, err
}

func (s *membershipService) closeAndNotify(ctx context.Context, userID string, zoneID uuid.UUID) (*models.ZoneMembership, *models.HotspotZone, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "membership",
		"method":  "Exit",
		"user_id": userID,
		"zone_id": zoneID,
	})

	membership, err := s.memberships.Close(ctx, userID, zoneID)
	if err != nil {
		log.WithError(err).Warn("Failed to close membership")
		return nil, nil, fmt.Errorf("service: could not close membership: %w", err)
	}

	s.metrics.MembershipEvents.WithLabelValues("exited").Inc()

	zone, err := s.zones.GetZoneByID(ctx, zoneID)
	if err != nil {
		// Запись уже закрыта, уведомление при этом теряется
		log.WithError(err).Warn("Failed to load zone for exit notice")
		return membership, nil, nil
	}
	s.dispatcher.DispatchZoneExited(ctx, userID, zone)

	log.Info("User exited zone")
	return membership, zone, nil
}

// Approaching возвращает активные зоны, к которым премиум-пользователь
// приближается: расстояние до центра в интервале (radius, radius+band].
// Для остальных пользователей список всегда пуст.
func (s *membershipService) Approaching(ctx context.Context, lat, lon float64, isPremium bool) ([]*models.HotspotZone, error) {
	if !isPremium {
		return []*models.HotspotZone{}, nil
	}

	candidates, err := s.zones.ActiveZonesNear(ctx, lat, lon, s.cfg.ApproachBandMeters)
	if err != nil {
		return nil, fmt.Errorf("service: could not find nearby zones: %w", err)
	}

	approaching := make([]*models.HotspotZone, 0, len(candidates))
	for _, zone := range candidates {
		distance := haversineMeters(lat, lon, zone.Latitude, zone.Longitude)
		radius := float64(zone.RadiusMeters)
		if distance > radius && distance <= radius+s.cfg.ApproachBandMeters {
			approaching = append(approaching, zone)
		}
	}
	return approaching, nil
}

// ActiveZones возвращает все активные зоны
func (s *membershipService) ActiveZones(ctx context.Context) ([]*models.HotspotZone, error) {
	zones, err := s.zones.ListActiveZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list active zones: %w", err)
	}
	return zones, nil
}

// CountActiveUsers возвращает количество пользователей, приславших
// локацию за окно статистики
func (s *membershipService) CountActiveUsers(ctx context.Context) (int, error) {
	count, err := s.users.CountActiveUsers(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		return 0, fmt.Errorf("service: could not count active users: %w", err)
	}
	return count, nil
}
