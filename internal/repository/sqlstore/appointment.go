package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/jwalitptl/clinic-records/internal/model"
	"github.com/jwalitptl/clinic-records/internal/repository"
)

const appointmentSelect = `
	SELECT a.id, a.patient_id, a.doctor_id, a.date,
		   COALESCE(p.name, '') AS patient_name,
		   COALESCE(d.name, '') AS doctor_name
	FROM appointments a
	LEFT JOIN patients p ON p.id = a.patient_id
	LEFT JOIN doctors d ON d.id = a.doctor_id
`

type appointmentRepository struct {
	BaseRepository
}

func NewAppointmentRepository(base BaseRepository) repository.AppointmentRepository {
	return &appointmentRepository{base}
}

func (r *appointmentRepository) List(ctx context.Context) ([]*model.Appointment, error) {
	start := time.Now()

	appointments := []*model.Appointment{}
	err := r.selectAll(ctx, &appointments, appointmentSelect+` ORDER BY a.id`)
	r.observe("appointment.list", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) Get(ctx context.Context, id int64) (*model.Appointment, error) {
	start := time.Now()

	var appointment model.Appointment
	err := r.get(ctx, &appointment, appointmentSelect+` WHERE a.id = ?`, id)
	r.observe("appointment.get", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment %d: %w", id, err)
	}
	return &appointment, nil
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	start := time.Now()

	if appointment.Date.IsZero() {
		appointment.Date = time.Now().UTC()
	}

	query := `
		INSERT INTO appointments (patient_id, doctor_id, date)
		VALUES (?, ?, ?)
		RETURNING id
	`
	id, err := r.insert(ctx, query, appointment.PatientID, appointment.DoctorID, appointment.Date)
	r.observe("appointment.create", start, err)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	appointment.ID = id
	return nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id int64) error {
	start := time.Now()

	err := r.exec(ctx, `DELETE FROM appointments WHERE id = ?`, id)
	r.observe("appointment.delete", start, err)
	if err != nil {
		return fmt.Errorf("failed to delete appointment %d: %w", id, err)
	}
	return nil
}

func (r *appointmentRepository) DeleteCascade(ctx context.Context, id int64) error {
	start := time.Now()

	err := r.execTx(ctx, []interface{}{id},
		`DELETE FROM billings WHERE appointment_id = ?`,
		`DELETE FROM appointments WHERE id = ?`,
	)
	r.observe("appointment.delete_cascade", start, err)
	if err != nil {
		return fmt.Errorf("failed to delete appointment %d with dependents: %w", id, err)
	}
	return nil
}

func (r *appointmentRepository) CountByPatient(ctx context.Context, patientID int64) (int, error) {
	start := time.Now()

	n, err := r.count(ctx, `SELECT COUNT(*) FROM appointments WHERE patient_id = ?`, patientID)
	r.observe("appointment.count_by_patient", start, err)
	if err != nil {
		return 0, fmt.Errorf("failed to count appointments of patient %d: %w", patientID, err)
	}
	return n, nil
}

func (r *appointmentRepository) CountByDoctor(ctx context.Context, doctorID int64) (int, error) {
	start := time.Now()

	n, err := r.count(ctx, `SELECT COUNT(*) FROM appointments WHERE doctor_id = ?`, doctorID)
	r.observe("appointment.count_by_doctor", start, err)
	if err != nil {
		return 0, fmt.Errorf("failed to count appointments of doctor %d: %w", doctorID, err)
	}
	return n, nil
}
