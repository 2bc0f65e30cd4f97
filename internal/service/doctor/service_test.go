package doctor

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-records/internal/model"
	"github.com/jwalitptl/clinic-records/internal/repository"
	"github.com/jwalitptl/clinic-records/internal/repository/mocks"
	apperrors "github.com/jwalitptl/clinic-records/pkg/errors"
)

func TestCreateAndListDoctors(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.DoctorRepository{}
	svc := NewService(repo, &mocks.AppointmentRepository{}, model.ReferencePolicyIgnore)

	d := &model.Doctor{Name: "Dr. Lee"}
	repo.On("Create", ctx, d).Return(nil)
	repo.On("List", ctx).Return([]*model.Doctor{d}, nil)

	require.NoError(t, svc.CreateDoctor(ctx, d))
	got, err := svc.ListDoctors(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Empty(t, got[0].Specialization)
}

func TestDeleteDoctor(t *testing.T) {
	ctx := context.Background()
	existing := &model.Doctor{ID: 3, Name: "Dr. Lee", Specialization: "Cardiology"}

	tests := []struct {
		name       string
		policy     model.ReferencePolicy
		found      bool
		references int
		wantStatus int
		wantCall   string
	}{
		{name: "absent id is a no-op", policy: model.ReferencePolicyIgnore},
		{name: "ignore", policy: model.ReferencePolicyIgnore, found: true, references: 4, wantCall: "Delete"},
		{name: "reject referenced", policy: model.ReferencePolicyReject, found: true, references: 1, wantStatus: http.StatusConflict},
		{name: "reject unreferenced", policy: model.ReferencePolicyReject, found: true, wantCall: "Delete"},
		{name: "cascade", policy: model.ReferencePolicyCascade, found: true, references: 2, wantCall: "DeleteCascade"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mocks.DoctorRepository{}
			apts := &mocks.AppointmentRepository{}
			svc := NewService(repo, apts, tt.policy)

			if tt.found {
				repo.On("Get", ctx, int64(3)).Return(existing, nil)
			} else {
				repo.On("Get", ctx, int64(3)).Return(nil, repository.ErrNotFound)
			}
			apts.On("CountByDoctor", ctx, int64(3)).Return(tt.references, nil)
			repo.On("Delete", ctx, int64(3)).Return(nil)
			repo.On("DeleteCascade", ctx, int64(3)).Return(nil)

			err := svc.DeleteDoctor(ctx, 3)
			if tt.wantStatus != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantStatus, apperrors.StatusOf(err))
				repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)

			if tt.wantCall == "" {
				repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
				repo.AssertNotCalled(t, "DeleteCascade", mock.Anything, mock.Anything)
				return
			}
			repo.AssertCalled(t, tt.wantCall, ctx, int64(3))
		})
	}
}
