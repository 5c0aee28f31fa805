package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/street_safety_system/internal/broadcast"
	"github.com/shenikar/street_safety_system/internal/config"
	"github.com/shenikar/street_safety_system/internal/models"
	"github.com/shenikar/street_safety_system/pkg/metrics"
	"github.com/sirupsen/logrus"
)

// IncidentRepository определяет контракт для работы с хранилищем инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	// AddVerification атомарно (в одной транзакции) проверяет голос,
	// инкрементирует счетчик и применяет авто-верификацию
	AddVerification(ctx context.Context, incidentID uuid.UUID, voterID string, autoVerifyVotes int, autoVerifyWindow time.Duration) (*models.Verification, *models.Incident, error)
	DeleteExpired(ctx context.Context) (int64, error)
	FindRecentWithinBox(ctx context.Context, minLat, minLon, maxLat, maxLon float64, since time.Time) ([]*models.Incident, error)
	GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	SetIncidentCache(ctx context.Context, incident *models.Incident) error
	InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error
}

// IncidentService определяет контракт бизнес-логики хранилища инцидентов
type IncidentService interface {
	ReportIncident(ctx context.Context, incident *models.Incident) error
	VoteIncident(ctx context.Context, incidentID uuid.UUID, voterID string) (*models.Verification, error)
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	SweepExpired(ctx context.Context) (int64, error)
}

type incidentService struct {
	repo       IncidentRepository
	dispatcher AlertDispatcher
	publisher  broadcast.EventPublisher
	logger     *logrus.Logger
	cfg        *config.Config
	metrics    *metrics.Metrics
}

func NewIncidentService(repo IncidentRepository, dispatcher AlertDispatcher, publisher broadcast.EventPublisher, logger *logrus.Logger, cfg *config.Config, m *metrics.Metrics) IncidentService {
	return &incidentService{
		repo:       repo,
		dispatcher: dispatcher,
		publisher:  publisher,
		logger:     logger,
		cfg:        cfg,
		metrics:    m,
	}
}

// ReportIncident валидирует и сохраняет отчет об инциденте, после чего
// запускает рассылку "nearby incident". Рассылка не блокирует вызов.
func (s *incidentService) ReportIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "incident",
		"method":   "ReportIncident",
		"type":     incident.Type,
		"reporter": incident.ReporterID,
	})

	if !incident.Type.Valid() {
		return fmt.Errorf("%w: unknown incident type %q", ErrValidation, incident.Type)
	}
	if !validCoordinates(incident.Latitude, incident.Longitude) {
		return fmt.Errorf("%w: coordinates out of range", ErrValidation)
	}
	if incident.ReporterID == "" {
		return fmt.Errorf("%w: reporter id is required", ErrValidation)
	}

	if incident.ExpiresAt.IsZero() {
		incident.ExpiresAt = time.Now().Add(s.cfg.IncidentTTL)
	}

	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not create incident: %w", err)
	}
	s.metrics.IncidentsReported.WithLabelValues(string(incident.Type)).Inc()

	if err := s.publisher.Publish(ctx, broadcast.TopicIncidents, "incident.created", incident); err != nil {
		// Канал realtime не критичен для записи
		log.WithError(err).Warn("Failed to publish incident.created event")
	}

	// Рассылка fire-and-forget: диспетчер возвращает управление сразу
	s.dispatcher.DispatchIncidentAlerts(ctx, incident)

	log.WithField("incident_id", incident.ID).Info("Incident reported successfully")
	return nil
}

// VoteIncident регистрирует подтверждение инцидента сообществом
func (s *incidentService) VoteIncident(ctx context.Context, incidentID uuid.UUID, voterID string) (*models.Verification, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "VoteIncident",
		"incident_id": incidentID,
		"voter_id":    voterID,
	})

	if voterID == "" {
		return nil, fmt.Errorf("%w: voter id is required", ErrValidation)
	}

	verification, incident, err := s.repo.AddVerification(ctx, incidentID, voterID, s.cfg.AutoVerifyVotes, s.cfg.AutoVerifyWindow)
	if err != nil {
		log.WithError(err).Warn("Failed to register vote")
		return nil, fmt.Errorf("service: could not register vote: %w", err)
	}
	s.metrics.VotesRegistered.Inc()

	if err := s.repo.InvalidateIncidentCache(ctx, incidentID); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	// Авто-верификация срабатывает ровно на пороговом голосе
	if incident.IsVerified && incident.VerificationCount == s.cfg.AutoVerifyVotes {
		if err := s.publisher.Publish(ctx, broadcast.TopicIncidents, "incident.verified", incident); err != nil {
			log.WithError(err).Warn("Failed to publish incident.verified event")
		}
		log.Info("Incident auto-verified")
	}

	log.WithField("verification_count", incident.VerificationCount).Info("Vote registered")
	return verification, nil
}

// GetIncident получает инцидент по ID, сначала из кеша
func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})

	cached, err := s.repo.GetIncidentFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read incident from cache")
	}
	if cached != nil {
		return cached, nil
	}

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	if err := s.repo.SetIncidentCache(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to cache incident")
	}
	return incident, nil
}

// SweepExpired удаляет истекшие инциденты без единого подтверждения.
// Верифицированные остаются в истории.
func (s *incidentService) SweepExpired(ctx context.Context) (int64, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "SweepExpired",
	})

	deleted, err := s.repo.DeleteExpired(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to sweep expired incidents")
		return 0, fmt.Errorf("service: could not sweep expired incidents: %w", err)
	}

	if deleted > 0 {
		log.WithField("deleted", deleted).Info("Expired incidents removed")
	}
	return deleted, nil
}
