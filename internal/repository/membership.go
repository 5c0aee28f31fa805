package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/street_safety_system/internal/models"
	"github.com/shenikar/street_safety_system/internal/service"
)

type MembershipRepository struct {
	db *pgxpool.Pool
}

func NewMembershipRepository(db *pgxpool.Pool) service.MembershipRepository {
	return &MembershipRepository{db: db}
}

// Open создает открытую запись о нахождении в зоне. Частичный уникальный
// индекс на (user_id, zone_id) WHERE exited_at IS NULL гарантирует не больше
// одной открытой записи на пару даже при конкурентных обновлениях локации:
// проигравшая вставка молча уступает и возвращает существующую запись.
func (r *MembershipRepository) Open(ctx context.Context, userID string, zoneID uuid.UUID) (*models.ZoneMembership, bool, error) {
	membership := &models.ZoneMembership{
		UserID: userID,
		ZoneID: zoneID,
	}

	err := r.db.QueryRow(ctx, `
		INSERT INTO zone_memberships (user_id, zone_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, zone_id) WHERE exited_at IS NULL DO NOTHING
		RETURNING id, entered_at, notification_sent;
	`, userID, zoneID).Scan(&membership.ID, &membership.EnteredAt, &membership.NotificationSent)
	if err == nil {
		return membership, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("failed to open membership: %w", err)
	}

	// Вставка не прошла по конфликту - возвращаем существующую открытую запись
	err = r.db.QueryRow(ctx, `
		SELECT id, user_id, zone_id, entered_at, exited_at, notification_sent
		FROM zone_memberships
		WHERE user_id = $1 AND zone_id = $2 AND exited_at IS NULL;
	`, userID, zoneID).Scan(
		&membership.ID,
		&membership.UserID,
		&membership.ZoneID,
		&membership.EnteredAt,
		&membership.ExitedAt,
		&membership.NotificationSent,
	)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load existing membership: %w", err)
	}
	return membership, false, nil
}

// Close закрывает открытую запись о нахождении в зоне
func (r *MembershipRepository) Close(ctx context.Context, userID string, zoneID uuid.UUID) (*models.ZoneMembership, error) {
	membership := &models.ZoneMembership{
		UserID: userID,
		ZoneID: zoneID,
	}

	err := r.db.QueryRow(ctx, `
		UPDATE zone_memberships SET
			exited_at = now()
		WHERE user_id = $1 AND zone_id = $2 AND exited_at IS NULL
		RETURNING id, entered_at, exited_at, notification_sent;
	`, userID, zoneID).Scan(
		&membership.ID,
		&membership.EnteredAt,
		&membership.ExitedAt,
		&membership.NotificationSent,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("open membership for user %s in zone %s: %w", userID, zoneID, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to close membership: %w", err)
	}
	return membership, nil
}

// OpenZoneIDs возвращает идентификаторы зон, внутри которых пользователь
// находится сейчас
func (r *MembershipRepository) OpenZoneIDs(ctx context.Context, userID string) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `
		SELECT zone_id
		FROM zone_memberships
		WHERE user_id = $1 AND exited_at IS NULL;
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list open memberships: %w", err)
	}
	defer rows.Close()

	zoneIDs := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan open membership row: %w", err)
		}
		zoneIDs = append(zoneIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating open memberships: %w", err)
	}
	return zoneIDs, nil
}

// MarkNotified помечает запись как уведомленную; повторные пинги локации
// внутри зоны не порождают новых оповещений
func (r *MembershipRepository) MarkNotified(ctx context.Context, membershipID int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE zone_memberships SET notification_sent = TRUE WHERE id = $1;
	`, membershipID)
	if err != nil {
		return fmt.Errorf("failed to mark membership notified: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("membership %d: %w", membershipID, service.ErrNotFound)
	}
	return nil
}
