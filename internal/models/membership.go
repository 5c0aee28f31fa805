package models

import (
	"time"

	"github.com/google/uuid"
)

// ZoneMembership - запись о нахождении пользователя внутри зоны.
// ExitedAt == nil означает "сейчас внутри"; на пару (user_id, zone_id)
// может быть открыта максимум одна запись.
type ZoneMembership struct {
	ID               int64      `json:"id"`
	UserID           string     `json:"user_id"`
	ZoneID           uuid.UUID  `json:"zone_id"`
	EnteredAt        time.Time  `json:"entered_at"`
	ExitedAt         *time.Time `json:"exited_at,omitempty"`
	NotificationSent bool       `json:"notification_sent"`
}

// LocationUpdate - событие фида локаций пользователей
type LocationUpdate struct {
	UserID    string
	Latitude  float64
	Longitude float64
	IsPremium bool
}

// LocationStatus - результат обработки одного обновления локации
type LocationStatus struct {
	Inside      []*HotspotZone `json:"inside"`
	Entered     []*HotspotZone `json:"entered"`
	Exited      []*HotspotZone `json:"exited"`
	Approaching []*HotspotZone `json:"approaching"`
}
