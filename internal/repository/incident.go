package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/street_safety_system/internal/models"
	"github.com/shenikar/street_safety_system/internal/service"
)

const (
	pgUniqueViolation = "23505"
	incidentCacheTTL  = 5 * time.Minute
)

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Create создает новую запись об инциденте в бд
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (incident_type, description, location, reporter_id, expires_at)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326), $5, $6)
		RETURNING id, verification_count, is_verified, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		incident.Type,
		incident.Description,
		incident.Longitude,
		incident.Latitude,
		incident.ReporterID,
		incident.ExpiresAt,
	).Scan(&incident.ID, &incident.VerificationCount, &incident.IsVerified, &incident.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// GetByID возвращает инцидент по его UUID
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	incident := &models.Incident{}
	query := `
		SELECT
			id,
			incident_type,
			description,
			ST_Y(location::geometry) AS latitude,
			ST_X(location::geometry) AS longitude,
			reporter_id,
			verification_count,
			is_verified,
			created_at,
			expires_at
		FROM incidents
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&incident.ID,
		&incident.Type,
		&incident.Description,
		&incident.Latitude,
		&incident.Longitude,
		&incident.ReporterID,
		&incident.VerificationCount,
		&incident.IsVerified,
		&incident.CreatedAt,
		&incident.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// AddVerification регистрирует голос в одной транзакции: блокирует строку
// инцидента, проверяет доменные правила, инкрементирует счетчик и применяет
// авто-верификацию. Инкремент и проверка выполняются как одно атомарное
// изменение строки, конкурентные голоса не теряются.
func (r *IncidentRepository) AddVerification(ctx context.Context, incidentID uuid.UUID, voterID string, autoVerifyVotes int, autoVerifyWindow time.Duration) (*models.Verification, *models.Incident, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin vote transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var reporterID string
	err = tx.QueryRow(ctx, `SELECT reporter_id FROM incidents WHERE id = $1 FOR UPDATE;`, incidentID).Scan(&reporterID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, fmt.Errorf("incident %s: %w", incidentID, service.ErrNotFound)
		}
		return nil, nil, fmt.Errorf("failed to lock incident for vote: %w", err)
	}

	if reporterID == voterID {
		return nil, nil, service.ErrSelfVote
	}

	verification := &models.Verification{
		IncidentID: incidentID,
		VoterID:    voterID,
	}
	err = tx.QueryRow(ctx, `
		INSERT INTO incident_verifications (incident_id, voter_id)
		VALUES ($1, $2)
		RETURNING id, created_at;
	`, incidentID, voterID).Scan(&verification.ID, &verification.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, nil, service.ErrDuplicateVote
		}
		return nil, nil, fmt.Errorf("failed to insert verification: %w", err)
	}

	incident := &models.Incident{ID: incidentID, ReporterID: reporterID}
	err = tx.QueryRow(ctx, `
		UPDATE incidents SET
			verification_count = verification_count + 1,
			is_verified = is_verified OR (verification_count + 1 >= $2 AND now() - created_at <= $3)
		WHERE id = $1
		RETURNING incident_type, verification_count, is_verified, created_at, expires_at;
	`, incidentID, autoVerifyVotes, autoVerifyWindow).Scan(
		&incident.Type,
		&incident.VerificationCount,
		&incident.IsVerified,
		&incident.CreatedAt,
		&incident.ExpiresAt,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to increment verification count: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to commit vote transaction: %w", err)
	}
	return verification, incident, nil
}

// DeleteExpired удаляет истекшие инциденты без подтверждений.
// Подтвержденные сообществом отчеты остаются для истории.
func (r *IncidentRepository) DeleteExpired(ctx context.Context) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `
		DELETE FROM incidents
		WHERE expires_at <= now() AND verification_count = 0;
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired incidents: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// FindRecentWithinBox возвращает неистекшие инциденты в прямоугольнике,
// созданные не раньше since
func (r *IncidentRepository) FindRecentWithinBox(ctx context.Context, minLat, minLon, maxLat, maxLon float64, since time.Time) ([]*models.Incident, error) {
	query := `
		SELECT
			id,
			incident_type,
			description,
			ST_Y(location::geometry) AS latitude,
			ST_X(location::geometry) AS longitude,
			reporter_id,
			verification_count,
			is_verified,
			created_at,
			expires_at
		FROM incidents
		WHERE created_at >= $5
			AND expires_at > now()
			AND ST_Intersects(location::geometry, ST_MakeEnvelope($1, $2, $3, $4, 4326));
	`
	rows, err := r.db.Query(ctx, query, minLon, minLat, maxLon, maxLat, since)
	if err != nil {
		return nil, fmt.Errorf("failed to find incidents within box: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident := &models.Incident{}
		err := rows.Scan(
			&incident.ID,
			&incident.Type,
			&incident.Description,
			&incident.Latitude,
			&incident.Longitude,
			&incident.ReporterID,
			&incident.VerificationCount,
			&incident.IsVerified,
			&incident.CreatedAt,
			&incident.ExpiresAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating incidents within box: %w", err)
	}
	return incidents, nil
}

// GetIncidentFromCache пытается получить инцидент из Redis
func (r *IncidentRepository) GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	key := fmt.Sprintf("incident:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// SetIncidentCache сохраняет инцидент в Redis
func (r *IncidentRepository) SetIncidentCache(ctx context.Context, incident *models.Incident) error {
	key := fmt.Sprintf("incident:%s", incident.ID.String())
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, incidentCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// InvalidateIncidentCache удаляет инцидент из Redis кэша
func (r *IncidentRepository) InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf("incident:%s", id.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}
