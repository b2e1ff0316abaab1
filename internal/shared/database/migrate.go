package database

import (
	"mediflow/internal/alerts"
	"mediflow/internal/appointments"
	"mediflow/internal/ehr"
	"mediflow/internal/hospitals"
	"mediflow/internal/messages"
	"mediflow/internal/patients"
	"mediflow/internal/prescriptions"
	"mediflow/internal/tasks"
	"mediflow/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	// uuid_generate_v4 defaults require the extension.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&hospitals.Hospital{},
		&users.User{},
		&patients.Patient{},
		&appointments.Appointment{},
		&tasks.Task{},
		&messages.Message{},
		&prescriptions.Prescription{},
		&ehr.Record{},
		&alerts.Alert{},
	)
}
