package v1

import "github.com/shenikar/street_safety_system/internal/models"

// DTOToIncidentModel преобразует DTO отчёта в доменную модель
func DTOToIncidentModel(dto ReportIncidentRequest) *models.Incident {
	return &models.Incident{
		Type:        models.IncidentType(dto.Type),
		Description: dto.Description,
		Latitude:    dto.Latitude,
		Longitude:   dto.Longitude,
		ReporterID:  dto.ReporterID,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:                model.ID,
		Type:              string(model.Type),
		Description:       model.Description,
		Latitude:          model.Latitude,
		Longitude:         model.Longitude,
		ReporterID:        model.ReporterID,
		VerificationCount: model.VerificationCount,
		IsVerified:        model.IsVerified,
		CreatedAt:         model.CreatedAt,
		ExpiresAt:         model.ExpiresAt,
	}
}

// ModelToZoneResponse преобразует модель зоны риска в DTO для ответа
func ModelToZoneResponse(model *models.HotspotZone) *ZoneResponse {
	return &ZoneResponse{
		ID:             model.ID,
		ZoneType:       string(model.ZoneType),
		Latitude:       model.Latitude,
		Longitude:      model.Longitude,
		RadiusMeters:   model.RadiusMeters,
		IncidentCount:  model.IncidentCount,
		RiskLevel:      string(model.RiskLevel),
		IsActive:       model.IsActive,
		LastIncidentAt: model.LastIncidentAt,
	}
}

// ModelsToZoneResponses преобразует слайс моделей зон в слайс DTO
func ModelsToZoneResponses(zones []*models.HotspotZone) []*ZoneResponse {
	responses := make([]*ZoneResponse, len(zones))
	for i, zone := range zones {
		responses[i] = ModelToZoneResponse(zone)
	}
	return responses
}

// StatusToLocationResponse преобразует статус местоположения в DTO для ответа
func StatusToLocationResponse(status *models.LocationStatus) *LocationStatusResponse {
	return &LocationStatusResponse{
		Inside:      ModelsToZoneResponses(status.Inside),
		Entered:     ModelsToZoneResponses(status.Entered),
		Exited:      ModelsToZoneResponses(status.Exited),
		Approaching: ModelsToZoneResponses(status.Approaching),
	}
}

// ReportToRouteResponse преобразует отчёт о маршруте в DTO для ответа
func ReportToRouteResponse(report *models.RouteReport) *RouteReportResponse {
	return &RouteReportResponse{
		Score:           report.Score,
		RiskLevel:       report.RiskLevel,
		IncidentCount:   report.IncidentCount,
		ZoneCount:       report.ZoneCount,
		ZonesByRisk:     report.ZonesByRisk,
		Recommendations: report.Recommendations,
	}
}
