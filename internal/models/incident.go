package models

import (
	"time"

	"github.com/google/uuid"
)

// IncidentType - тип уличного инцидента
type IncidentType string

const (
	IncidentHijacking IncidentType = "hijacking"
	IncidentMugging   IncidentType = "mugging"
	IncidentAccident  IncidentType = "accident"
)

// IncidentTypes возвращает все поддерживаемые типы инцидентов
func IncidentTypes() []IncidentType {
	return []IncidentType{IncidentHijacking, IncidentMugging, IncidentAccident}
}

// Valid проверяет, что тип входит в перечень поддерживаемых
func (t IncidentType) Valid() bool {
	switch t {
	case IncidentHijacking, IncidentMugging, IncidentAccident:
		return true
	}
	return false
}

type Incident struct {
	ID                uuid.UUID    `json:"id"`
	Type              IncidentType `json:"type"`
	Description       string       `json:"description,omitempty"`
	Latitude          float64      `json:"latitude"`
	Longitude         float64      `json:"longitude"`
	ReporterID        string       `json:"reporter_id"`
	VerificationCount int          `json:"verification_count"`
	IsVerified        bool         `json:"is_verified"`
	CreatedAt         time.Time    `json:"created_at"`
	ExpiresAt         time.Time    `json:"expires_at"`
}

// Verification - подтверждение инцидента другим пользователем.
// Уникально по паре (incident_id, voter_id).
type Verification struct {
	ID         uuid.UUID `json:"id"`
	IncidentID uuid.UUID `json:"incident_id"`
	VoterID    string    `json:"voter_id"`
	CreatedAt  time.Time `json:"created_at"`
}
