package repository

import (
	"context"
	"errors"

	"github.com/jwalitptl/clinic-records/internal/model"
)

// ErrNotFound is returned by Get when no row has the requested id.
var ErrNotFound = errors.New("record not found")

// All repository interfaces in one file
type (
	// PatientRepository handles patient rows
	PatientRepository interface {
		List(ctx context.Context) ([]*model.Patient, error)
		Get(ctx context.Context, id int64) (*model.Patient, error)
		Create(ctx context.Context, patient *model.Patient) error
		Delete(ctx context.Context, id int64) error
		// DeleteCascade removes the patient, its appointments and their billings.
		DeleteCascade(ctx context.Context, id int64) error
	}

	DoctorRepository interface {
		List(ctx context.Context) ([]*model.Doctor, error)
		Get(ctx context.Context, id int64) (*model.Doctor, error)
		Create(ctx context.Context, doctor *model.Doctor) error
		Delete(ctx context.Context, id int64) error
		// DeleteCascade removes the doctor, its appointments and their billings.
		DeleteCascade(ctx context.Context, id int64) error
	}

	AppointmentRepository interface {
		List(ctx context.Context) ([]*model.Appointment, error)
		Get(ctx context.Context, id int64) (*model.Appointment, error)
		Create(ctx context.Context, appointment *model.Appointment) error
		Delete(ctx context.Context, id int64) error
		// DeleteCascade removes the appointment and its billings.
		DeleteCascade(ctx context.Context, id int64) error
		CountByPatient(ctx context.Context, patientID int64) (int, error)
		CountByDoctor(ctx context.Context, doctorID int64) (int, error)
	}

	BillingRepository interface {
		List(ctx context.Context) ([]*model.Billing, error)
		Get(ctx context.Context, id int64) (*model.Billing, error)
		Create(ctx context.Context, billing *model.Billing) error
		Delete(ctx context.Context, id int64) error
		CountByAppointment(ctx context.Context, appointmentID int64) (int, error)
	}
)
