package models

import "time"

const (
	PlatformIOS     = "ios"
	PlatformAndroid = "android"
)

// UserAlertProfile - настройки оповещений пользователя (ведется внешним сервисом)
type UserAlertProfile struct {
	UserID            string `json:"user_id"`
	AlertRadiusMeters int    `json:"alert_radius_meters"`
	ZoneAlertsEnabled bool   `json:"zone_alerts_enabled"`
	NotifyHijacking   bool   `json:"notify_hijacking"`
	NotifyMugging     bool   `json:"notify_mugging"`
	NotifyAccident    bool   `json:"notify_accident"`
	IsPremium         bool   `json:"is_premium"`
}

// DefaultAlertProfile возвращает профиль по умолчанию: все типы оповещений включены
func DefaultAlertProfile(userID string, alertRadiusMeters int) *UserAlertProfile {
	return &UserAlertProfile{
		UserID:            userID,
		AlertRadiusMeters: alertRadiusMeters,
		ZoneAlertsEnabled: true,
		NotifyHijacking:   true,
		NotifyMugging:     true,
		NotifyAccident:    true,
	}
}

// WantsType сообщает, включены ли у пользователя оповещения для данного типа инцидента
func (p *UserAlertProfile) WantsType(t IncidentType) bool {
	switch t {
	case IncidentHijacking:
		return p.NotifyHijacking
	case IncidentMugging:
		return p.NotifyMugging
	case IncidentAccident:
		return p.NotifyAccident
	}
	return true
}

// DeviceToken - push-токен устройства пользователя; устройств может быть несколько
type DeviceToken struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"-"`
	Token     string    `json:"-"`
	Platform  string    `json:"platform"`
	CreatedAt time.Time `json:"created_at"`
}

// UserLocation - последняя известная позиция пользователя, обновляется фидом локаций
type UserLocation struct {
	UserID    string    `json:"user_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	IsPremium bool      `json:"is_premium"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AlertCandidate - строка выборки кандидатов на push-рассылку по новому инциденту
type AlertCandidate struct {
	UserID   string
	Token    string
	Platform string
}
