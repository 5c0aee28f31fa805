package models

import (
	"time"

	"github.com/google/uuid"
)

// RiskLevel - уровень опасности зоны, выводится из количества инцидентов
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// RiskLevelForCount возвращает уровень опасности для количества инцидентов кластера
func RiskLevelForCount(count int) RiskLevel {
	switch {
	case count >= 21:
		return RiskCritical
	case count >= 11:
		return RiskHigh
	case count >= 6:
		return RiskMedium
	default:
		return RiskLow
	}
}

// HotspotZone - устойчивая зона опасности, полученная кластеризацией инцидентов.
// Зоны никогда не удаляются, только деактивируются.
type HotspotZone struct {
	ID             uuid.UUID    `json:"id"`
	ZoneType       IncidentType `json:"zone_type"`
	Latitude       float64      `json:"latitude"`
	Longitude      float64      `json:"longitude"`
	RadiusMeters   int          `json:"radius_meters"`
	IncidentCount  int          `json:"incident_count"`
	RiskLevel      RiskLevel    `json:"risk_level"`
	IsActive       bool         `json:"is_active"`
	LastIncidentAt time.Time    `json:"last_incident_at"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// ClusterCentroid - результат одного кластера DBSCAN: центроид, размер и время последнего инцидента
type ClusterCentroid struct {
	Latitude       float64
	Longitude      float64
	Count          int
	LastIncidentAt time.Time
}
