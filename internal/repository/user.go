package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/street_safety_system/internal/models"
	"github.com/shenikar/street_safety_system/internal/service"
)

type UserRepository struct {
	db                 *pgxpool.Pool
	defaultAlertRadius int
}

func NewUserRepository(db *pgxpool.Pool, defaultAlertRadiusMeters int) service.UserRepository {
	return &UserRepository{
		db:                 db,
		defaultAlertRadius: defaultAlertRadiusMeters,
	}
}

// SaveLocation сохраняет последнюю известную позицию пользователя
func (r *UserRepository) SaveLocation(ctx context.Context, update models.LocationUpdate) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO user_locations (user_id, location, is_premium, updated_at)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326), $4, now())
		ON CONFLICT (user_id) DO UPDATE SET
			location = EXCLUDED.location,
			is_premium = EXCLUDED.is_premium,
			updated_at = now();
	`, update.UserID, update.Longitude, update.Latitude, update.IsPremium)
	if err != nil {
		return fmt.Errorf("failed to save user location: %w", err)
	}
	return nil
}

// FindAlertCandidates подбирает получателей рассылки по новому инциденту:
// последняя известная позиция в пределах персонального alert_radius,
// автор исключен, переключатель типа учтен (по умолчанию включен,
// если профиль не заведен)
func (r *UserRepository) FindAlertCandidates(ctx context.Context, incident *models.Incident) ([]*models.AlertCandidate, error) {
	query := `
		SELECT l.user_id, d.token, d.platform
		FROM user_locations l
		LEFT JOIN user_alert_profiles p ON p.user_id = l.user_id
		JOIN device_tokens d ON d.user_id = l.user_id
		WHERE l.user_id <> $1
			AND ST_DWithin(
				l.location,
				ST_SetSRID(ST_MakePoint($2, $3), 4326)::geography,
				COALESCE(p.alert_radius_meters, $5)
			)
			AND COALESCE(
				CASE $4
					WHEN 'hijacking' THEN p.notify_hijacking
					WHEN 'mugging' THEN p.notify_mugging
					WHEN 'accident' THEN p.notify_accident
				END,
				TRUE
			);
	`
	rows, err := r.db.Query(ctx, query,
		incident.ReporterID,
		incident.Longitude,
		incident.Latitude,
		incident.Type,
		r.defaultAlertRadius,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find alert candidates: %w", err)
	}
	defer rows.Close()

	candidates := make([]*models.AlertCandidate, 0)
	for rows.Next() {
		candidate := &models.AlertCandidate{}
		if err := rows.Scan(&candidate.UserID, &candidate.Token, &candidate.Platform); err != nil {
			return nil, fmt.Errorf("failed to scan alert candidate row: %w", err)
		}
		candidates = append(candidates, candidate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating alert candidates: %w", err)
	}
	return candidates, nil
}

// GetAlertProfile возвращает профиль оповещений пользователя. Если профиль
// не заведен, возвращается профиль по умолчанию со всеми включенными типами.
func (r *UserRepository) GetAlertProfile(ctx context.Context, userID string) (*models.UserAlertProfile, error) {
	profile := &models.UserAlertProfile{}
	err := r.db.QueryRow(ctx, `
		SELECT user_id, alert_radius_meters, zone_alerts_enabled,
			notify_hijacking, notify_mugging, notify_accident, is_premium
		FROM user_alert_profiles
		WHERE user_id = $1;
	`, userID).Scan(
		&profile.UserID,
		&profile.AlertRadiusMeters,
		&profile.ZoneAlertsEnabled,
		&profile.NotifyHijacking,
		&profile.NotifyMugging,
		&profile.NotifyAccident,
		&profile.IsPremium,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.DefaultAlertProfile(userID, r.defaultAlertRadius), nil
		}
		return nil, fmt.Errorf("failed to get alert profile: %w", err)
	}
	return profile, nil
}

// ListDeviceTokens возвращает push-токены всех устройств пользователя
func (r *UserRepository) ListDeviceTokens(ctx context.Context, userID string) ([]*models.DeviceToken, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, token, platform, created_at
		FROM device_tokens
		WHERE user_id = $1;
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list device tokens: %w", err)
	}
	defer rows.Close()

	tokens := make([]*models.DeviceToken, 0)
	for rows.Next() {
		token := &models.DeviceToken{}
		if err := rows.Scan(&token.ID, &token.UserID, &token.Token, &token.Platform, &token.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan device token row: %w", err)
		}
		tokens = append(tokens, token)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating device tokens: %w", err)
	}
	return tokens, nil
}

// CountActiveUsers возвращает количество пользователей, приславших локацию
// за последние minutes минут
func (r *UserRepository) CountActiveUsers(ctx context.Context, windowMinutes int) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM user_locations
		WHERE updated_at >= now() - ($1 * INTERVAL '1 minute');
	`, windowMinutes).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to count active users: %w", err)
	}
	return count, nil
}
