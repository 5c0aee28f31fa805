package service

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/shenikar/street_safety_system/internal/broadcast"
	"github.com/shenikar/street_safety_system/internal/config"
	"github.com/shenikar/street_safety_system/internal/models"
	"github.com/shenikar/street_safety_system/internal/push"
	"github.com/shenikar/street_safety_system/pkg/metrics"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// UserRepository определяет контракт чтения профилей, токенов и локаций пользователей
type UserRepository interface {
	SaveLocation(ctx context.Context, update models.LocationUpdate) error
	// FindAlertCandidates возвращает строки (пользователь, токен) для рассылки
	// по новому инциденту: кандидаты, чья последняя известная позиция попадает
	// в их персональный alert_radius, без автора, с учетом переключателей типов
	FindAlertCandidates(ctx context.Context, incident *models.Incident) ([]*models.AlertCandidate, error)
	GetAlertProfile(ctx context.Context, userID string) (*models.UserAlertProfile, error)
	ListDeviceTokens(ctx context.Context, userID string) ([]*models.DeviceToken, error)
	CountActiveUsers(ctx context.Context, windowMinutes int) (int, error)
}

// AlertDispatcher выполняет рассылку push-уведомлений. Все методы
// возвращают управление немедленно: доставка идет в фоне с ограниченным
// количеством одновременных отправок и таймаутом на каждую.
type AlertDispatcher interface {
	DispatchIncidentAlerts(ctx context.Context, incident *models.Incident)
	DispatchZoneEntered(ctx context.Context, userID string, zone *models.HotspotZone)
	DispatchZoneExited(ctx context.Context, userID string, zone *models.HotspotZone)
}

type alertDispatcher struct {
	users     UserRepository
	gateway   push.Gateway
	publisher broadcast.EventPublisher
	logger    *logrus.Logger
	cfg       *config.Config
	metrics   *metrics.Metrics
}

func NewAlertDispatcher(users UserRepository, gateway push.Gateway, publisher broadcast.EventPublisher, logger *logrus.Logger, cfg *config.Config, m *metrics.Metrics) AlertDispatcher {
	return &alertDispatcher{
		users:     users,
		gateway:   gateway,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
		metrics:   m,
	}
}

// DispatchIncidentAlerts запускает фоновую рассылку "nearby incident"
func (d *alertDispatcher) DispatchIncidentAlerts(_ context.Context, incident *models.Incident) {
	// Жизненный цикл рассылки не привязан к запросу, который ее породил
	go d.fanOutIncident(context.Background(), incident)
}

func (d *alertDispatcher) fanOutIncident(ctx context.Context, incident *models.Incident) {
	log := d.logger.WithFields(logrus.Fields{
		"service":     "dispatcher",
		"method":      "fanOutIncident",
		"incident_id": incident.ID,
	})

	candidates, err := d.users.FindAlertCandidates(ctx, incident)
	if err != nil {
		log.WithError(err).Error("Failed to select alert candidates")
		return
	}
	if len(candidates) == 0 {
		log.Debug("No alert candidates for incident")
		return
	}

	title := incidentAlertTitle(incident.Type)
	body := fmt.Sprintf("A %s was reported near your location", incident.Type)
	data := map[string]string{
		"incident_id":   incident.ID.String(),
		"incident_type": string(incident.Type),
		"latitude":      fmt.Sprintf("%f", incident.Latitude),
		"longitude":     fmt.Sprintf("%f", incident.Longitude),
	}

	// Один push на устройство: токены дедуплицируются
	seen := make(map[string]struct{}, len(candidates))
	var sent, failed atomic.Int64

	g := new(errgroup.Group)
	g.SetLimit(d.cfg.PushConcurrency)
	for _, candidate := range candidates {
		if _, ok := seen[candidate.Token]; ok {
			continue
		}
		seen[candidate.Token] = struct{}{}

		g.Go(func() error {
			if err := d.send(ctx, candidate.Token, candidate.Platform, title, body, data); err != nil {
				log.WithError(err).WithField("user_id", candidate.UserID).Warn("Push delivery failed")
				failed.Add(1)
				return nil
			}
			sent.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	log.WithFields(logrus.Fields{
		"candidates": len(candidates),
		"sent":       sent.Load(),
		"failed":     failed.Load(),
	}).Info("Incident fan-out finished")
}

// DispatchZoneEntered отправляет оповещение о входе в опасную зону
func (d *alertDispatcher) DispatchZoneEntered(_ context.Context, userID string, zone *models.HotspotZone) {
	go d.notifyZoneTransition(context.Background(), userID, zone, "zone.entered",
		"Danger zone alert",
		fmt.Sprintf("You entered a %s risk %s zone", zone.RiskLevel, zone.ZoneType))
}

// DispatchZoneExited отправляет облегченное уведомление о выходе из зоны
func (d *alertDispatcher) DispatchZoneExited(_ context.Context, userID string, zone *models.HotspotZone) {
	go d.notifyZoneTransition(context.Background(), userID, zone, "zone.exited",
		"You left a danger zone",
		fmt.Sprintf("You are no longer inside the %s zone", zone.ZoneType))
}

func (d *alertDispatcher) notifyZoneTransition(ctx context.Context, userID string, zone *models.HotspotZone, event, title, body string) {
	log := d.logger.WithFields(logrus.Fields{
		"service": "dispatcher",
		"event":   event,
		"user_id": userID,
		"zone_id": zone.ID,
	})

	profile, err := d.users.GetAlertProfile(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("Failed to load alert profile, skipping notification")
		return
	}
	if !profile.ZoneAlertsEnabled {
		log.Debug("Zone alerts disabled for user")
		return
	}

	if err := d.publisher.Publish(ctx, broadcast.TopicAlerts, event, map[string]any{
		"user_id": userID,
		"zone_id": zone.ID,
	}); err != nil {
		log.WithError(err).Warn("Failed to publish zone transition event")
	}

	tokens, err := d.users.ListDeviceTokens(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("Failed to load device tokens")
		return
	}

	data := map[string]string{
		"zone_id":    zone.ID.String(),
		"zone_type":  string(zone.ZoneType),
		"risk_level": string(zone.RiskLevel),
	}

	for _, token := range tokens {
		if err := d.send(ctx, token.Token, token.Platform, title, body, data); err != nil {
			log.WithError(err).Warn("Push delivery failed")
		}
	}
}

// send доставляет один push с ограниченным временем ожидания шлюза
func (d *alertDispatcher) send(ctx context.Context, token, platform, title, body string, data map[string]string) error {
	sendCtx, cancel := context.WithTimeout(ctx, d.cfg.PushTimeout)
	defer cancel()

	if err := d.gateway.Send(sendCtx, token, platform, title, body, data); err != nil {
		d.metrics.PushesFailed.Inc()
		return err
	}
	d.metrics.PushesSent.Inc()
	return nil
}

func incidentAlertTitle(t models.IncidentType) string {
	switch t {
	case models.IncidentHijacking:
		return "Hijacking reported nearby"
	case models.IncidentMugging:
		return "Mugging reported nearby"
	case models.IncidentAccident:
		return "Accident reported nearby"
	}
	return "Incident reported nearby"
}
