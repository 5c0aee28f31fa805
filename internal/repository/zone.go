package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/street_safety_system/internal/models"
	"github.com/shenikar/street_safety_system/internal/service"
)

type ZoneRepository struct {
	db *pgxpool.Pool
}

func NewZoneRepository(db *pgxpool.Pool) service.ZoneRepository {
	return &ZoneRepository{db: db}
}

const zoneColumns = `
	id,
	zone_type,
	ST_Y(center::geometry) AS latitude,
	ST_X(center::geometry) AS longitude,
	radius_meters,
	incident_count,
	risk_level,
	is_active,
	COALESCE(last_incident_at, created_at),
	created_at,
	updated_at
`

// ClusterIncidents группирует недавние инциденты типа через ST_ClusterDBSCAN.
// Для кластеризации в метрах точки проецируются в web mercator; на уличных
// масштабах искажение проекции укладывается в допуск радиуса соседства.
func (r *ZoneRepository) ClusterIncidents(ctx context.Context, incidentType models.IncidentType, windowDays int, epsMeters float64, minPoints int) ([]*models.ClusterCentroid, error) {
	query := `
		SELECT
			ST_Y(centroid) AS latitude,
			ST_X(centroid) AS longitude,
			incident_count,
			last_incident_at
		FROM (
			SELECT
				ST_Centroid(ST_Collect(geom)) AS centroid,
				COUNT(*) AS incident_count,
				MAX(created_at) AS last_incident_at
			FROM (
				SELECT
					location::geometry AS geom,
					created_at,
					ST_ClusterDBSCAN(ST_Transform(location::geometry, 3857), eps := $2, minpoints := $3) OVER () AS cluster_id
				FROM incidents
				WHERE incident_type = $1
					AND created_at >= now() - make_interval(days => $4)
					AND expires_at > now()
			) points
			WHERE cluster_id IS NOT NULL
			GROUP BY cluster_id
		) clusters;
	`
	rows, err := r.db.Query(ctx, query, incidentType, epsMeters, minPoints, windowDays)
	if err != nil {
		return nil, fmt.Errorf("failed to cluster incidents: %w", err)
	}
	defer rows.Close()

	clusters := make([]*models.ClusterCentroid, 0)
	for rows.Next() {
		cluster := &models.ClusterCentroid{}
		if err := rows.Scan(&cluster.Latitude, &cluster.Longitude, &cluster.Count, &cluster.LastIncidentAt); err != nil {
			return nil, fmt.Errorf("failed to scan cluster row: %w", err)
		}
		clusters = append(clusters, cluster)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating clusters: %w", err)
	}
	return clusters, nil
}

// FindNearestZone возвращает ближайшую зону типа в радиусе matchMeters от
// точки. Детерминированный выбор: сортировка по расстоянию до центра.
func (r *ZoneRepository) FindNearestZone(ctx context.Context, zoneType models.IncidentType, lat, lon, matchMeters float64) (*models.HotspotZone, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM hotspot_zones
		WHERE zone_type = $1
			AND ST_DWithin(center, ST_SetSRID(ST_MakePoint($2, $3), 4326)::geography, $4)
		ORDER BY ST_Distance(center, ST_SetSRID(ST_MakePoint($2, $3), 4326)::geography)
		LIMIT 1;
	`, zoneColumns)

	zone := &models.HotspotZone{}
	err := r.db.QueryRow(ctx, query, zoneType, lon, lat, matchMeters).Scan(
		&zone.ID,
		&zone.ZoneType,
		&zone.Latitude,
		&zone.Longitude,
		&zone.RadiusMeters,
		&zone.IncidentCount,
		&zone.RiskLevel,
		&zone.IsActive,
		&zone.LastIncidentAt,
		&zone.CreatedAt,
		&zone.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find nearest zone: %w", err)
	}
	return zone, nil
}

// CreateZone создает новую активную зону
func (r *ZoneRepository) CreateZone(ctx context.Context, zone *models.HotspotZone) error {
	query := `
		INSERT INTO hotspot_zones (zone_type, center, radius_meters, incident_count, risk_level, is_active, last_incident_at)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326), $4, $5, $6, TRUE, $7)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		zone.ZoneType,
		zone.Longitude,
		zone.Latitude,
		zone.RadiusMeters,
		zone.IncidentCount,
		zone.RiskLevel,
		zone.LastIncidentAt,
	).Scan(&zone.ID, &zone.CreatedAt, &zone.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create zone: %w", err)
	}
	zone.IsActive = true
	return nil
}

// UpdateZoneFromCluster обновляет зону результатами кластеризации и
// реактивирует ее. Центр и радиус зоны фиксируются при создании.
func (r *ZoneRepository) UpdateZoneFromCluster(ctx context.Context, zoneID uuid.UUID, incidentCount int, riskLevel models.RiskLevel, lastIncidentAt time.Time) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE hotspot_zones SET
			incident_count = $2,
			risk_level = $3,
			last_incident_at = $4,
			is_active = TRUE,
			updated_at = now()
		WHERE id = $1;
	`, zoneID, incidentCount, riskLevel, lastIncidentAt)
	if err != nil {
		return fmt.Errorf("failed to update zone: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("zone %s: %w", zoneID, service.ErrNotFound)
	}
	return nil
}

// DissolveStaleZones деактивирует активные зоны, в радиусе которых осталось
// меньше minIncidents инцидентов своего типа за окно. Зоны не удаляются.
func (r *ZoneRepository) DissolveStaleZones(ctx context.Context, windowDays, minIncidents int) ([]uuid.UUID, error) {
	query := `
		UPDATE hotspot_zones z SET
			is_active = FALSE,
			updated_at = now()
		WHERE z.is_active
			AND (
				SELECT COUNT(*)
				FROM incidents i
				WHERE i.incident_type = z.zone_type
					AND i.created_at >= now() - make_interval(days => $1)
					AND i.expires_at > now()
					AND ST_DWithin(i.location, z.center, z.radius_meters)
			) < $2
		RETURNING z.id;
	`
	rows, err := r.db.Query(ctx, query, windowDays, minIncidents)
	if err != nil {
		return nil, fmt.Errorf("failed to dissolve stale zones: %w", err)
	}
	defer rows.Close()

	dissolved := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan dissolved zone id: %w", err)
		}
		dissolved = append(dissolved, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating dissolved zones: %w", err)
	}
	return dissolved, nil
}

// GetZoneByID возвращает зону по UUID
func (r *ZoneRepository) GetZoneByID(ctx context.Context, id uuid.UUID) (*models.HotspotZone, error) {
	query := fmt.Sprintf(`SELECT %s FROM hotspot_zones WHERE id = $1;`, zoneColumns)

	zone := &models.HotspotZone{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&zone.ID,
		&zone.ZoneType,
		&zone.Latitude,
		&zone.Longitude,
		&zone.RadiusMeters,
		&zone.IncidentCount,
		&zone.RiskLevel,
		&zone.IsActive,
		&zone.LastIncidentAt,
		&zone.CreatedAt,
		&zone.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("zone %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get zone by id: %w", err)
	}
	return zone, nil
}

// ZonesContainingPoint возвращает активные зоны, в радиус которых попадает точка
func (r *ZoneRepository) ZonesContainingPoint(ctx context.Context, lat, lon float64) ([]*models.HotspotZone, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM hotspot_zones
		WHERE is_active
			AND ST_DWithin(center, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography, radius_meters);
	`, zoneColumns)
	return r.queryZones(ctx, query, lon, lat)
}

// ActiveZonesNear возвращает активные зоны, центр которых не дальше
// radius_meters + bandMeters от точки
func (r *ZoneRepository) ActiveZonesNear(ctx context.Context, lat, lon, bandMeters float64) ([]*models.HotspotZone, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM hotspot_zones
		WHERE is_active
			AND ST_DWithin(center, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography, radius_meters + $3);
	`, zoneColumns)
	return r.queryZones(ctx, query, lon, lat, bandMeters)
}

// ActiveZonesWithinBox возвращает активные зоны с центром внутри рамки
func (r *ZoneRepository) ActiveZonesWithinBox(ctx context.Context, minLat, minLon, maxLat, maxLon float64) ([]*models.HotspotZone, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM hotspot_zones
		WHERE is_active
			AND ST_Intersects(center::geometry, ST_MakeEnvelope($1, $2, $3, $4, 4326));
	`, zoneColumns)
	return r.queryZones(ctx, query, minLon, minLat, maxLon, maxLat)
}

// ListActiveZones возвращает все активные зоны
func (r *ZoneRepository) ListActiveZones(ctx context.Context) ([]*models.HotspotZone, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM hotspot_zones
		WHERE is_active
		ORDER BY updated_at DESC;
	`, zoneColumns)
	return r.queryZones(ctx, query)
}

func (r *ZoneRepository) queryZones(ctx context.Context, query string, args ...any) ([]*models.HotspotZone, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query zones: %w", err)
	}
	defer rows.Close()

	zones := make([]*models.HotspotZone, 0)
	for rows.Next() {
		zone := &models.HotspotZone{}
		err := rows.Scan(
			&zone.ID,
			&zone.ZoneType,
			&zone.Latitude,
			&zone.Longitude,
			&zone.RadiusMeters,
			&zone.IncidentCount,
			&zone.RiskLevel,
			&zone.IsActive,
			&zone.LastIncidentAt,
			&zone.CreatedAt,
			&zone.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan zone row: %w", err)
		}
		zones = append(zones, zone)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating zones: %w", err)
	}
	return zones, nil
}
