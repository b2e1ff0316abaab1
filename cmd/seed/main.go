package main

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"mediflow/internal/alerts"
	"mediflow/internal/appointments"
	"mediflow/internal/ehr"
	"mediflow/internal/hospitals"
	"mediflow/internal/patients"
	"mediflow/internal/shared/config"
	"mediflow/internal/shared/database"
	"mediflow/internal/tasks"
	"mediflow/internal/users"
)

type Seeder struct {
	db *database.DB
}

const demoPassword = "Password123!"

func main() {
	fmt.Println("🌱 Starting MediFlow Database Seeder...")

	// Load configuration
	cfg := config.MustLoad()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	// Clean database
	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	// Seed data
	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Demo accounts use password:", demoPassword)
}

// CleanDatabase truncates all tables in reverse dependency order
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"alerts",
		"ehr_records",
		"prescriptions",
		"messages",
		"tasks",
		"appointments",
		"users",
		"patients",
		"hospitals",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit().Error
}

// SeedAll seeds the demo hospital with one account per role plus sample
// clinical data, so every dashboard has something to show after login.
func (s *Seeder) SeedAll() error {
	hospital, err := s.SeedHospital()
	if err != nil {
		return fmt.Errorf("failed to seed hospital: %w", err)
	}

	patient, err := s.SeedPatient(hospital.ID)
	if err != nil {
		return fmt.Errorf("failed to seed patient: %w", err)
	}

	accounts, err := s.SeedUsers(hospital.ID, patient.ID)
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	if err := s.SeedClinicalData(hospital.ID, patient.ID, accounts); err != nil {
		return fmt.Errorf("failed to seed clinical data: %w", err)
	}

	return nil
}

func (s *Seeder) SeedHospital() (*hospitals.Hospital, error) {
	hospital := &hospitals.Hospital{
		Code:   "HOS-123",
		Name:   "General Hospital",
		Config: `{"timezone":"UTC","features":["triage","messaging"]}`,
	}
	if err := s.db.PostgreSQL.Create(hospital).Error; err != nil {
		return nil, err
	}
	fmt.Printf("  Hospital: %s (%s)\n", hospital.Name, hospital.Code)
	return hospital, nil
}

func (s *Seeder) SeedPatient(hospitalID uuid.UUID) (*patients.Patient, error) {
	patient := &patients.Patient{
		HospitalID:  hospitalID,
		Name:        "Jane Patient",
		DOB:         time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
		ContactInfo: `{"phone":"+1-555-0100","address":"12 Elm Street"}`,
	}
	if err := s.db.PostgreSQL.Create(patient).Error; err != nil {
		return nil, err
	}
	fmt.Printf("  Patient: %s\n", patient.Name)
	return patient, nil
}

// SeedUsers creates one demo account per role and returns them keyed by role.
func (s *Seeder) SeedUsers(hospitalID, patientID uuid.UUID) (map[users.Role]*users.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), 10)
	if err != nil {
		return nil, err
	}

	accounts := map[users.Role]*users.User{
		users.RoleAdmin:     {Email: "admin@demo.local", Role: users.RoleAdmin},
		users.RoleDoctor:    {Email: "doctor@demo.local", Role: users.RoleDoctor},
		users.RoleFrontDesk: {Email: "frontdesk@demo.local", Role: users.RoleFrontDesk},
		users.RolePatient:   {Email: "patient@demo.local", Role: users.RolePatient, PatientID: &patientID},
	}

	for _, account := range accounts {
		account.HospitalID = hospitalID
		account.Password = string(hash)
		if err := s.db.PostgreSQL.Create(account).Error; err != nil {
			return nil, err
		}
		fmt.Printf("  User: %s (%s)\n", account.Email, account.Role)
	}

	return accounts, nil
}

func (s *Seeder) SeedClinicalData(hospitalID, patientID uuid.UUID, accounts map[users.Role]*users.User) error {
	doctor := accounts[users.RoleDoctor]

	appointment := &appointments.Appointment{
		HospitalID: hospitalID,
		PatientID:  patientID,
		DoctorID:   doctor.ID,
		StartAt:    time.Now().Add(24 * time.Hour),
		EndAt:      time.Now().Add(24*time.Hour + 30*time.Minute),
		Reason:     "Annual checkup",
		Status:     appointments.StatusScheduled,
	}
	if err := s.db.PostgreSQL.Create(appointment).Error; err != nil {
		return err
	}
	fmt.Println("  Appointment: annual checkup (tomorrow)")

	dueAt := time.Now().Add(8 * time.Hour)
	task := &tasks.Task{
		HospitalID: hospitalID,
		AssigneeID: doctor.ID,
		Title:      "Review lab results for Jane Patient",
		Status:     tasks.StatusTodo,
		DueAt:      &dueAt,
	}
	if err := s.db.PostgreSQL.Create(task).Error; err != nil {
		return err
	}
	fmt.Println("  Task: review lab results")

	record := &ehr.Record{
		HospitalID: hospitalID,
		PatientID:  patientID,
		AuthorID:   doctor.ID,
		Type:       "visit_note",
		Payload:    `{"note":"Patient reports mild fatigue. Ordered CBC panel."}`,
	}
	if err := s.db.PostgreSQL.Create(record).Error; err != nil {
		return err
	}
	fmt.Println("  EHR record: visit note")

	alert := &alerts.Alert{
		HospitalID: hospitalID,
		Kind:       alerts.KindLabCritical,
		Payload:    `{"patient":"Jane Patient","test":"potassium","value":"6.2 mmol/L"}`,
	}
	if err := s.db.PostgreSQL.Create(alert).Error; err != nil {
		return err
	}
	fmt.Println("  Alert: critical lab value")

	return nil
}
