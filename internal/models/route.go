package models

// RouteRequest - маршрут для оценки безопасности: отрезок origin-destination
// и радиус коридора вокруг него
type RouteRequest struct {
	OriginLat      float64
	OriginLon      float64
	DestinationLat float64
	DestinationLon float64
	CorridorMeters int
}

// RouteReport - итог оценки маршрута
type RouteReport struct {
	Score           int            `json:"score"`
	RiskLevel       string         `json:"risk_level"`
	IncidentCount   int            `json:"incident_count"`
	ZoneCount       int            `json:"zone_count"`
	ZonesByRisk     map[string]int `json:"zones_by_risk"`
	Recommendations []string       `json:"recommendations"`
}

const (
	RouteSafe      = "safe"
	RouteModerate  = "moderate"
	RouteCaution   = "caution"
	RouteDangerous = "dangerous"
)
