package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// No foreign key constraints: rows may reference ids that no longer exist,
// and the reference policy in the service layer decides what to do about it.

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS patients (
		id              SERIAL PRIMARY KEY,
		name            VARCHAR(100) NOT NULL,
		age             INTEGER NOT NULL,
		medical_history TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS doctors (
		id             SERIAL PRIMARY KEY,
		name           VARCHAR(100) NOT NULL,
		specialization VARCHAR(100)
	)`,
	`CREATE TABLE IF NOT EXISTS appointments (
		id         SERIAL PRIMARY KEY,
		patient_id INTEGER,
		doctor_id  INTEGER,
		date       TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS billings (
		id             SERIAL PRIMARY KEY,
		appointment_id INTEGER,
		amount         NUMERIC(12, 2)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_appointments_patient_id ON appointments (patient_id)`,
	`CREATE INDEX IF NOT EXISTS idx_appointments_doctor_id ON appointments (doctor_id)`,
	`CREATE INDEX IF NOT EXISTS idx_billings_appointment_id ON billings (appointment_id)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS patients (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		name            VARCHAR(100) NOT NULL,
		age             INTEGER NOT NULL,
		medical_history TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS doctors (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		name           VARCHAR(100) NOT NULL,
		specialization VARCHAR(100)
	)`,
	`CREATE TABLE IF NOT EXISTS appointments (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		patient_id INTEGER,
		doctor_id  INTEGER,
		date       DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS billings (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		appointment_id INTEGER,
		amount         REAL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_appointments_patient_id ON appointments (patient_id)`,
	`CREATE INDEX IF NOT EXISTS idx_appointments_doctor_id ON appointments (doctor_id)`,
	`CREATE INDEX IF NOT EXISTS idx_billings_appointment_id ON billings (appointment_id)`,
}

// Migrate creates the tables if they do not exist yet. It is safe to run on
// every startup.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	statements := postgresSchema
	if db.DriverName() == "sqlite" {
		statements = sqliteSchema
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
