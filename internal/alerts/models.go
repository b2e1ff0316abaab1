package alerts

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Well-known alert kinds. Kind is an open string so integrations can add
// their own without a migration.
const (
	KindTriageRequest = "triage_request"
	KindLabCritical   = "lab_critical"
)

// Alert is a hospital-wide notification: a triage request from a patient, a
// critical lab value, an integration event. Payload is schemaless JSON.
type Alert struct {
	ID         uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	HospitalID uuid.UUID `json:"hospital_id" gorm:"type:uuid;not null;index"`
	Kind       string    `json:"kind" gorm:"not null;size:100;index"`
	Payload    string    `json:"payload" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at" gorm:"index"`
}

func (Alert) TableName() string {
	return "alerts"
}

// Event is the wire form published to Kafka alongside the database write.
type Event struct {
	AlertID    uuid.UUID `json:"alert_id"`
	HospitalID uuid.UUID `json:"hospital_id"`
	Kind       string    `json:"kind"`
	Payload    string    `json:"payload"`
	CreatedAt  time.Time `json:"created_at"`
}

func (e *Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// PartitionKey routes all of one hospital's alerts to the same partition so
// consumers see them in order.
func (e *Event) PartitionKey() string {
	return e.HospitalID.String()
}

type TriageRequest struct {
	Symptoms string `json:"symptoms" binding:"required,min=1,max=2000"`
	Severity string `json:"severity" binding:"omitempty,oneof=low medium high"`
}
