package model

import (
	"time"
)

type Billing struct {
	ID            int64   `db:"id" json:"id"`
	AppointmentID int64   `db:"appointment_id" json:"appointment_id"`
	Amount        float64 `db:"amount" json:"amount"`

	// Filled on listing; nil when the referenced appointment does not exist.
	AppointmentDate *time.Time `db:"appointment_date" json:"appointment_date,omitempty"`
}

type CreateBillingRequest struct {
	AppointmentID *int64   `form:"appointment_id" binding:"required"`
	Amount        *float64 `form:"amount" binding:"required"`
}

func (r *CreateBillingRequest) ToBilling() *Billing {
	return &Billing{
		AppointmentID: *r.AppointmentID,
		Amount:        *r.Amount,
	}
}
