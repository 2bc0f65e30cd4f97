package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/jwalitptl/clinic-records/internal/model"
	"github.com/jwalitptl/clinic-records/internal/repository"
	apperrors "github.com/jwalitptl/clinic-records/pkg/errors"
)

type Service struct {
	repo            repository.BillingRepository
	appointmentRepo repository.AppointmentRepository
	policy          model.ReferencePolicy
}

func NewService(repo repository.BillingRepository, appointmentRepo repository.AppointmentRepository, policy model.ReferencePolicy) *Service {
	return &Service{
		repo:            repo,
		appointmentRepo: appointmentRepo,
		policy:          policy,
	}
}

func (s *Service) ListBillings(ctx context.Context) ([]*model.Billing, error) {
	billings, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return billings, nil
}

// FormAppointments returns every appointment for the new billing form.
func (s *Service) FormAppointments(ctx context.Context) ([]*model.Appointment, error) {
	appointments, err := s.appointmentRepo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return appointments, nil
}

func (s *Service) CreateBilling(ctx context.Context, billing *model.Billing) error {
	if s.policy == model.ReferencePolicyReject {
		if _, err := s.appointmentRepo.Get(ctx, billing.AppointmentID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return apperrors.BadRequest(fmt.Sprintf("appointment %d does not exist", billing.AppointmentID), nil)
			}
			return apperrors.Internal(err)
		}
	}

	if err := s.repo.Create(ctx, billing); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// DeleteBilling removes the billing if it exists. Nothing references billings,
// so the reference policy does not apply.
func (s *Service) DeleteBilling(ctx context.Context, id int64) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return apperrors.Internal(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}
