package patient

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
	repo            repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	policy          model.ReferencePolicy
}

func NewService(repo repository.PatientRepository, appointmentRepo repository.AppointmentRepository, policy model.ReferencePolicy) *Service {
	return &Service{
		repo:            repo,
		appointmentRepo: appointmentRepo,
		policy:          policy,
	}
}

func (s *Service) ListPatients(ctx context.Context) ([]*model.Patient, error) {
	patients, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return patients, nil
}

func (s *Service) CreatePatient(ctx context.Context, patient *model.Patient) error {
	if err := s.repo.Create(ctx, patient); err != nil {
		return apperrors.Internal(err)
	}

	log.Ctx(ctx).Debug().Int64("patient_id", patient.ID).Msg("patient created")
	return nil
}

// DeletePatient removes the patient if it exists. Deleting an absent id is a no-op.
func (s *Service) DeletePatient(ctx context.Context, id int64) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Ctx(ctx).Debug().Int64("patient_id", id).Msg("patient already absent")
			return nil
		}
		return apperrors.Internal(err)
	}

	var err error
	switch s.policy {
	case model.ReferencePolicyReject:
		n, cerr := s.appointmentRepo.CountByPatient(ctx, id)
		if cerr != nil {
			return apperrors.Internal(cerr)
		}
		if n > 0 {
			return apperrors.Conflict(fmt.Sprintf("patient %d still has %d appointment(s)", id, n), nil)
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

	log.Ctx(ctx).Debug().Int64("patient_id", id).Msg("patient deleted")
	return nil
}
