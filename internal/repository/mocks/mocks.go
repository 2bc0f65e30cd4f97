// Package mocks provides testify mocks of the repository interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jwalitptl/clinic-records/internal/model"
	"github.com/jwalitptl/clinic-records/internal/repository"
)

var (
	_ repository.PatientRepository     = (*PatientRepository)(nil)
	_ repository.DoctorRepository      = (*DoctorRepository)(nil)
	_ repository.AppointmentRepository = (*AppointmentRepository)(nil)
	_ repository.BillingRepository     = (*BillingRepository)(nil)
)

type PatientRepository struct {
	mock.Mock
}

func (m *PatientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*model.Patient), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PatientRepository) Get(ctx context.Context, id int64) (*model.Patient, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*model.Patient), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PatientRepository) Create(ctx context.Context, record *model.Patient) error {
	return m.Called(ctx, record).Error(0)
}

func (m *PatientRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *PatientRepository) DeleteCascade(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type DoctorRepository struct {
	mock.Mock
}

func (m *DoctorRepository) List(ctx context.Context) ([]*model.Doctor, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*model.Doctor), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *DoctorRepository) Get(ctx context.Context, id int64) (*model.Doctor, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*model.Doctor), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *DoctorRepository) Create(ctx context.Context, record *model.Doctor) error {
	return m.Called(ctx, record).Error(0)
}

func (m *DoctorRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *DoctorRepository) DeleteCascade(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type AppointmentRepository struct {
	mock.Mock
}

func (m *AppointmentRepository) List(ctx context.Context) ([]*model.Appointment, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*model.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AppointmentRepository) Get(ctx context.Context, id int64) (*model.Appointment, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*model.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AppointmentRepository) Create(ctx context.Context, record *model.Appointment) error {
	return m.Called(ctx, record).Error(0)
}

func (m *AppointmentRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *AppointmentRepository) DeleteCascade(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *AppointmentRepository) CountByPatient(ctx context.Context, patientID int64) (int, error) {
	args := m.Called(ctx, patientID)
	return args.Int(0), args.Error(1)
}

func (m *AppointmentRepository) CountByDoctor(ctx context.Context, doctorID int64) (int, error) {
	args := m.Called(ctx, doctorID)
	return args.Int(0), args.Error(1)
}

type BillingRepository struct {
	mock.Mock
}

func (m *BillingRepository) List(ctx context.Context) ([]*model.Billing, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*model.Billing), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BillingRepository) Get(ctx context.Context, id int64) (*model.Billing, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*model.Billing), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BillingRepository) Create(ctx context.Context, record *model.Billing) error {
	return m.Called(ctx, record).Error(0)
}

func (m *BillingRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *BillingRepository) CountByAppointment(ctx context.Context, appointmentID int64) (int, error) {
	args := m.Called(ctx, appointmentID)
	return args.Int(0), args.Error(1)
}
