package model

import (
	"time"
)

// AppointmentDateLayout is the layout of the date field submitted by the
// appointment form (an HTML datetime-local input).
const AppointmentDateLayout = "2006-01-02T15:04"

type Appointment struct {
	ID        int64     `db:"id" json:"id"`
	PatientID int64     `db:"patient_id" json:"patient_id"`
	DoctorID  int64     `db:"doctor_id" json:"doctor_id"`
	Date      time.Time `db:"date" json:"date"`

	// Filled on listing; empty when the referenced row does not exist.
	PatientName string `db:"patient_name" json:"patient_name,omitempty"`
	DoctorName  string `db:"doctor_name" json:"doctor_name,omitempty"`
}

type CreateAppointmentRequest struct {
	PatientID *int64    `form:"patient_id" binding:"required"`
	DoctorID  *int64    `form:"doctor_id" binding:"required"`
	Date      time.Time `form:"date" binding:"required" time_format:"2006-01-02T15:04" time_utc:"1"`
}

func (r *CreateAppointmentRequest) ToAppointment() *Appointment {
	return &Appointment{
		PatientID: *r.PatientID,
		DoctorID:  *r.DoctorID,
		Date:      r.Date,
	}
}

// AppointmentFormData holds the choices offered by the new appointment form.
type AppointmentFormData struct {
	Patients []*Patient
	Doctors  []*Doctor
}
