package v1

import (
	"time"

	"github.com/google/uuid"
)

// ReportIncidentRequest DTO для создания отчёта об инциденте
// @Description DTO для создания отчёта об инциденте
type ReportIncidentRequest struct {
	Type        string  `json:"type" validate:"required,oneof=hijacking mugging accident"`
	Description string  `json:"description,omitempty" validate:"max=1000"`
	Latitude    float64 `json:"latitude" validate:"required,latitude"`
	Longitude   float64 `json:"longitude" validate:"required,longitude"`
	ReporterID  string  `json:"reporter_id" validate:"required"`
}

// VoteIncidentRequest DTO для подтверждения инцидента
// @Description DTO для подтверждения инцидента
type VoteIncidentRequest struct {
	VoterID string `json:"voter_id" validate:"required"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID                uuid.UUID `json:"id"`
	Type              string    `json:"type"`
	Description       string    `json:"description,omitempty"`
	Latitude          float64   `json:"latitude"`
	Longitude         float64   `json:"longitude"`
	ReporterID        string    `json:"reporter_id"`
	VerificationCount int       `json:"verification_count"`
	IsVerified        bool      `json:"is_verified"`
	CreatedAt         time.Time `json:"created_at"`
	ExpiresAt         time.Time `json:"expires_at"`
}

// LocationUpdateRequest DTO для обновления местоположения пользователя
// @Description DTO для обновления местоположения пользователя
type LocationUpdateRequest struct {
	UserID    string  `json:"user_id" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
	IsPremium bool    `json:"is_premium"`
}

// ZoneResponse DTO для ответа с информацией о зоне риска
// @Description DTO для ответа с информацией о зоне риска
type ZoneResponse struct {
	ID             uuid.UUID `json:"id"`
	ZoneType       string    `json:"zone_type"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	RadiusMeters   int       `json:"radius_meters"`
	IncidentCount  int       `json:"incident_count"`
	RiskLevel      string    `json:"risk_level"`
	IsActive       bool      `json:"is_active"`
	LastIncidentAt time.Time `json:"last_incident_at"`
}

// LocationStatusResponse DTO для ответа на обновление местоположения
// @Description DTO для ответа на обновление местоположения
type LocationStatusResponse struct {
	Inside      []*ZoneResponse `json:"inside"`
	Entered     []*ZoneResponse `json:"entered"`
	Exited      []*ZoneResponse `json:"exited"`
	Approaching []*ZoneResponse `json:"approaching"`
}

// ScoreRouteRequest DTO для оценки безопасности маршрута
// @Description DTO для оценки безопасности маршрута
type ScoreRouteRequest struct {
	OriginLat      float64 `json:"origin_lat" validate:"required,latitude"`
	OriginLon      float64 `json:"origin_lon" validate:"required,longitude"`
	DestinationLat float64 `json:"destination_lat" validate:"required,latitude"`
	DestinationLon float64 `json:"destination_lon" validate:"required,longitude"`
	CorridorMeters int     `json:"corridor_meters,omitempty" validate:"omitempty,gt=0"`
}

// RouteReportResponse DTO для ответа с оценкой маршрута
// @Description DTO для ответа с оценкой маршрута
type RouteReportResponse struct {
	Score           int            `json:"score"`
	RiskLevel       string         `json:"risk_level"`
	IncidentCount   int            `json:"incident_count"`
	ZoneCount       int            `json:"zone_count"`
	ZonesByRisk     map[string]int `json:"zones_by_risk"`
	Recommendations []string       `json:"recommendations"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	UserCount int `json:"user_count"`
}
