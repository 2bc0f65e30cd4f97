package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/jwalitptl/clinic-records/internal/model"
	"github.com/jwalitptl/clinic-records/internal/repository"
)

const patientColumns = `id, name, age, COALESCE(medical_history, '') AS medical_history`

type patientRepository struct {
	BaseRepository
}

func NewPatientRepository(base BaseRepository) repository.PatientRepository {
	return &patientRepository{base}
}

func (r *patientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	start := time.Now()

	patients := []*model.Patient{}
	err := r.selectAll(ctx, &patients, `SELECT `+patientColumns+` FROM patients ORDER BY id`)
	r.observe("patient.list", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

func (r *patientRepository) Get(ctx context.Context, id int64) (*model.Patient, error) {
	start := time.Now()

	var patient model.Patient
	err := r.get(ctx, &patient, `SELECT `+patientColumns+` FROM patients WHERE id = ?`, id)
	r.observe("patient.get", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to get patient %d: %w", id, err)
	}
	return &patient, nil
}

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	start := time.Now()

	query := `
		INSERT INTO patients (name, age, medical_history)
		VALUES (?, ?, ?)
		RETURNING id
	`
	id, err := r.insert(ctx, query, patient.Name, patient.Age, patient.MedicalHistory)
	r.observe("patient.create", start, err)
	if err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	patient.ID = id
	return nil
}

func (r *patientRepository) Delete(ctx context.Context, id int64) error {
	start := time.Now()

	err := r.exec(ctx, `DELETE FROM patients WHERE id = ?`, id)
	r.observe("patient.delete", start, err)
	if err != nil {
		return fmt.Errorf("failed to delete patient %d: %w", id, err)
	}
	return nil
}

func (r *patientRepository) DeleteCascade(ctx context.Context, id int64) error {
	start := time.Now()

	err := r.execTx(ctx, []interface{}{id},
		`DELETE FROM billings WHERE appointment_id IN (SELECT id FROM appointments WHERE patient_id = ?)`,
		`DELETE FROM appointments WHERE patient_id = ?`,
		`DELETE FROM patients WHERE id = ?`,
	)
	r.observe("patient.delete_cascade", start, err)
	if err != nil {
		return fmt.Errorf("failed to delete patient %d with dependents: %w", id, err)
	}
	return nil
}
