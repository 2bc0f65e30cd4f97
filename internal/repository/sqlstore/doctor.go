package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/jwalitptl/clinic-records/internal/model"
	"github.com/jwalitptl/clinic-records/internal/repository"
)

const doctorColumns = `id, name, COALESCE(specialization, '') AS specialization`

type doctorRepository struct {
	BaseRepository
}

func NewDoctorRepository(base BaseRepository) repository.DoctorRepository {
	return &doctorRepository{base}
}

func (r *doctorRepository) List(ctx context.Context) ([]*model.Doctor, error) {
	start := time.Now()

	doctors := []*model.Doctor{}
	err := r.selectAll(ctx, &doctors, `SELECT `+doctorColumns+` FROM doctors ORDER BY id`)
	r.observe("doctor.list", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}

func (r *doctorRepository) Get(ctx context.Context, id int64) (*model.Doctor, error) {
	start := time.Now()

	var doctor model.Doctor
	err := r.get(ctx, &doctor, `SELECT `+doctorColumns+` FROM doctors WHERE id = ?`, id)
	r.observe("doctor.get", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to get doctor %d: %w", id, err)
	}
	return &doctor, nil
}

func (r *doctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	start := time.Now()

	query := `
		INSERT INTO doctors (name, specialization)
		VALUES (?, ?)
		RETURNING id
	`
	id, err := r.insert(ctx, query, doctor.Name, doctor.Specialization)
	r.observe("doctor.create", start, err)
	if err != nil {
		return fmt.Errorf("failed to create doctor: %w", err)
	}
	doctor.ID = id
	return nil
}

func (r *doctorRepository) Delete(ctx context.Context, id int64) error {
	start := time.Now()

	err := r.exec(ctx, `DELETE FROM doctors WHERE id = ?`, id)
	r.observe("doctor.delete", start, err)
	if err != nil {
		return fmt.Errorf("failed to delete doctor %d: %w", id, err)
	}
	return nil
}

func (r *doctorRepository) DeleteCascade(ctx context.Context, id int64) error {
	start := time.Now()

	err := r.execTx(ctx, []interface{}{id},
		`DELETE FROM billings WHERE appointment_id IN (SELECT id FROM appointments WHERE doctor_id = ?)`,
		`DELETE FROM appointments WHERE doctor_id = ?`,
		`DELETE FROM doctors WHERE id = ?`,
	)
	r.observe("doctor.delete_cascade", start, err)
	if err != nil {
		return fmt.Errorf("failed to delete doctor %d with dependents: %w", id, err)
	}
	return nil
}
