package appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/clinic-records/internal/model"
	"github.com/jwalitptl/clinic-records/internal/repository"
	apperrors "github.com/jwalitptl/clinic-records/pkg/errors"
)

type Service struct {
	repo        repository.AppointmentRepository
	patientRepo repository.PatientRepository
	doctorRepo  repository.DoctorRepository
	billingRepo repository.BillingRepository
	policy      model.ReferencePolicy
}

func NewService(
	repo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	billingRepo repository.BillingRepository,
	policy model.ReferencePolicy,
) *Service {
	return &Service{
		repo:        repo,
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
		billingRepo: billingRepo,
		policy:      policy,
	}
}

func (s *Service) ListAppointments(ctx context.Context) ([]*model.Appointment, error) {
	appointments, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return appointments, nil
}

// FormData returns every patient and doctor for the new appointment form.
func (s *Service) FormData(ctx context.Context) (*model.AppointmentFormData, error) {
	patients, err := s.patientRepo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	doctors, err := s.doctorRepo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return &model.AppointmentFormData{Patients: patients, Doctors: doctors}, nil
}

func (s *Service) CreateAppointment(ctx context.Context, apt *model.Appointment) error {
	if s.policy == model.ReferencePolicyReject {
		if err := s.checkReferences(ctx, apt); err != nil {
			return err
		}
	}

	if err := s.repo.Create(ctx, apt); err != nil {
		return apperrors.Internal(err)
	}

	log.Ctx(ctx).Debug().
		Int64("appointment_id", apt.ID).
		Int64("patient_id", apt.PatientID).
		Int64("doctor_id", apt.DoctorID).
		Msg("appointment created")
	return nil
}

func (s *Service) checkReferences(ctx context.Context, apt *model.Appointment) error {
	if _, err := s.patientRepo.Get(ctx, apt.PatientID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.BadRequest(fmt.Sprintf("patient %d does not exist", apt.PatientID), nil)
		}
		return apperrors.Internal(err)
	}
	if _, err := s.doctorRepo.Get(ctx, apt.DoctorID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.BadRequest(fmt.Sprintf("doctor %d does not exist", apt.DoctorID), nil)
		}
		return apperrors.Internal(err)
	}
	return nil
}

func (s *Service) DeleteAppointment(ctx context.Context, id int64) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return apperrors.Internal(err)
	}

	var err error
	switch s.policy {
	case model.ReferencePolicyReject:
		n, cerr := s.billingRepo.CountByAppointment(ctx, id)
		if cerr != nil {
			return apperrors.Internal(cerr)
		}
		if n > 0 {
			return apperrors.Conflict(fmt.Sprintf("appointment %d still has %d billing(s)", id, n), nil)
		}
		err = s.repo.Delete(ctx, id)
	case model.ReferencePolicyCascade:
		err = s.repo.DeleteCascade(ctx, id)
	default:
		err = s.repo.Delete(ctx, id)
	}
	if err != nil {
		return apperrors.Internal(err)
	}
	return nil
}
