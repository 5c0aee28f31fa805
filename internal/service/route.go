package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/shenikar/street_safety_system/internal/config"
	"github.com/shenikar/street_safety_system/internal/models"
	"github.com/sirupsen/logrus"
)

// Штрафы за активные зоны на маршруте
var zonePenalties = map[models.RiskLevel]int{
	models.RiskCritical: 20,
	models.RiskHigh:     10,
	models.RiskMedium:   5,
	models.RiskLow:      2,
}

// RouteService оценивает безопасность маршрута по недавним инцидентам
// и активным зонам
type RouteService interface {
	ScoreRoute(ctx context.Context, req models.RouteRequest) (*models.RouteReport, error)
}

type routeService struct {
	incidents IncidentRepository
	zones     ZoneRepository
	logger    *logrus.Logger
	cfg       *config.Config
}

func NewRouteService(incidents IncidentRepository, zones ZoneRepository, logger *logrus.Logger, cfg *config.Config) RouteService {
	return &routeService{
		incidents: incidents,
		zones:     zones,
		logger:    logger,
		cfg:       cfg,
	}
}

// ScoreRoute считает балл безопасности отрезка origin-destination.
// Близость к маршруту аппроксимируется минимальным расстоянием до одной
// из конечных точек, не до самого отрезка: середины длинных маршрутов
// оцениваются грубее, и это осознанный компромисс.
func (s *routeService) ScoreRoute(ctx context.Context, req models.RouteRequest) (*models.RouteReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "route",
		"method":  "ScoreRoute",
	})

	if !validCoordinates(req.OriginLat, req.OriginLon) || !validCoordinates(req.DestinationLat, req.DestinationLon) {
		return nil, fmt.Errorf("%w: coordinates out of range", ErrValidation)
	}

	corridor := float64(req.CorridorMeters)
	if corridor <= 0 {
		corridor = float64(s.cfg.RouteCorridorMeters)
	}

	box := corridorBoundingBox(req.OriginLat, req.OriginLon, req.DestinationLat, req.DestinationLon, corridor)
	since := time.Now().Add(-s.cfg.RouteWindow)

	incidents, err := s.incidents.FindRecentWithinBox(ctx, box.MinLat, box.MinLon, box.MaxLat, box.MaxLon, since)
	if err != nil {
		log.WithError(err).Error("Failed to fetch incidents for route")
		return nil, fmt.Errorf("service: could not fetch route incidents: %w", err)
	}

	zones, err := s.zones.ActiveZonesWithinBox(ctx, box.MinLat, box.MinLon, box.MaxLat, box.MaxLon)
	if err != nil {
		log.WithError(err).Error("Failed to fetch zones for route")
		return nil, fmt.Errorf("service: could not fetch route zones: %w", err)
	}

	report := &models.RouteReport{
		ZonesByRisk: make(map[string]int),
	}

	for _, incident := range incidents {
		distance := s.minEndpointDistance(req, incident.Latitude, incident.Longitude)
		if distance <= corridor {
			report.IncidentCount++
		}
	}

	penalty := 0
	for _, zone := range zones {
		distance := s.minEndpointDistance(req, zone.Latitude, zone.Longitude)
		if distance <= corridor+float64(zone.RadiusMeters) {
			report.ZoneCount++
			report.ZonesByRisk[string(zone.RiskLevel)]++
			penalty += zonePenalties[zone.RiskLevel]
		}
	}

	score := 100 - 2*report.IncidentCount - penalty
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	report.Score = score
	report.RiskLevel = routeRiskLevel(score)
	report.Recommendations = s.recommendations(report)

	log.WithFields(logrus.Fields{
		"score":     report.Score,
		"risk":      report.RiskLevel,
		"incidents": report.IncidentCount,
		"zones":     report.ZoneCount,
	}).Info("Route scored")
	return report, nil
}

func (s *routeService) minEndpointDistance(req models.RouteRequest, lat, lon float64) float64 {
	toOrigin := haversineMeters(lat, lon, req.OriginLat, req.OriginLon)
	toDestination := haversineMeters(lat, lon, req.DestinationLat, req.DestinationLon)
	return math.Min(toOrigin, toDestination)
}

func routeRiskLevel(score int) string {
	switch {
	case score >= 80:
		return models.RouteSafe
	case score >= 60:
		return models.RouteModerate
	case score >= 40:
		return models.RouteCaution
	default:
		return models.RouteDangerous
	}
}

func (s *routeService) recommendations(report *models.RouteReport) []string {
	recommendations := make([]string, 0, 3)

	if n := report.ZonesByRisk[string(models.RiskCritical)]; n > 0 {
		recommendations = append(recommendations, fmt.Sprintf("%d critical zones on this route, consider an alternative", n))
	}
	if n := report.ZonesByRisk[string(models.RiskHigh)]; n > 0 {
		recommendations = append(recommendations, fmt.Sprintf("%d high risk zones on this route, stay alert", n))
	}
	if report.IncidentCount > 0 {
		recommendations = append(recommendations, fmt.Sprintf("%d incidents reported near this route in the last %d hours", report.IncidentCount, int(s.cfg.RouteWindow.Hours())))
	}
	if len(recommendations) == 0 {
		recommendations = append(recommendations, "No recent incidents near this route")
	}
	return recommendations
}
