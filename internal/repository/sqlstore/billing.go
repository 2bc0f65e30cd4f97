package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/jwalitptl/clinic-records/internal/model"
	"github.com/jwalitptl/clinic-records/internal/repository"
)

const billingSelect = `
	SELECT b.id, b.appointment_id, COALESCE(b.amount, 0) AS amount,
		   a.date AS appointment_date
	FROM billings b
	LEFT JOIN appointments a ON a.id = b.appointment_id
`

type billingRepository struct {
	BaseRepository
}

func NewBillingRepository(base BaseRepository) repository.BillingRepository {
	return &billingRepository{base}
}

func (r *billingRepository) List(ctx context.Context) ([]*model.Billing, error) {
	start := time.Now()

	billings := []*model.Billing{}
	err := r.selectAll(ctx, &billings, billingSelect+` ORDER BY b.id`)
	r.observe("billing.list", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to list billings: %w", err)
	}
	return billings, nil
}

func (r *billingRepository) Get(ctx context.Context, id int64) (*model.Billing, error) {
	start := time.Now()

	var billing model.Billing
	err := r.get(ctx, &billing, billingSelect+` WHERE b.id = ?`, id)
	r.observe("billing.get", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to get billing %d: %w", id, err)
	}
	return &billing, nil
}

func (r *billingRepository) Create(ctx context.Context, billing *model.Billing) error {
	start := time.Now()

	query := `
		INSERT INTO billings (appointment_id, amount)
		VALUES (?, ?)
		RETURNING id
	`
	id, err := r.insert(ctx, query, billing.AppointmentID, billing.Amount)
	r.observe("billing.create", start, err)
	if err != nil {
		return fmt.Errorf("failed to create billing: %w", err)
	}
	billing.ID = id
	return nil
}

func (r *billingRepository) Delete(ctx context.Context, id int64) error {
	start := time.Now()

	err := r.exec(ctx, `DELETE FROM billings WHERE id = ?`, id)
	r.observe("billing.delete", start, err)
	if err != nil {
		return fmt.Errorf("failed to delete billing %d: %w", id, err)
	}
	return nil
}

func (r *billingRepository) CountByAppointment(ctx context.Context, appointmentID int64) (int, error) {
	start := time.Now()

	n, err := r.count(ctx, `SELECT COUNT(*) FROM billings WHERE appointment_id = ?`, appointmentID)
	r.observe("billing.count_by_appointment", start, err)
	if err != nil {
		return 0, fmt.Errorf("failed to count billings of appointment %d: %w", appointmentID, err)
	}
	return n, nil
}
