package doctor

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
	repo            repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
	policy          model.ReferencePolicy
}

func NewService(repo repository.DoctorRepository, appointmentRepo repository.AppointmentRepository, policy model.ReferencePolicy) *Service {
	return &Service{
		repo:            repo,
		appointmentRepo: appointmentRepo,
		policy:          policy,
	}
}

func (s *Service) ListDoctors(ctx context.Context) ([]*model.Doctor, error) {
	doctors, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return doctors, nil
}

func (s *Service) CreateDoctor(ctx context.Context, doctor *model.Doctor) error {
	if err := s.repo.Create(ctx, doctor); err != nil {
		return apperrors.Internal(err)
	}

	log.Ctx(ctx).Debug().Int64("doctor_id", doctor.ID).Msg("doctor created")
	return nil
}

func (s *Service) DeleteDoctor(ctx context.Context, id int64) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return apperrors.Internal(err)
	}

	var err error
	switch s.policy {
	case model.ReferencePolicyReject:
		n, cerr := s.appointmentRepo.CountByDoctor(ctx, id)
		if cerr != nil {
			return apperrors.Internal(cerr)
		}
		if n > 0 {
			return apperrors.Conflict(fmt.Sprintf("doctor %d still has %d appointment(s)", id, n), nil)
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
