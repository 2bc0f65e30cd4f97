package appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jwalitptl/clinic-records/internal/middleware"
	"github.com/jwalitptl/clinic-records/internal/model"
	"github.com/jwalitptl/clinic-records/internal/web"
	apperrors "github.com/jwalitptl/clinic-records/pkg/errors"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) ListAppointments(ctx context.Context) ([]*model.Appointment, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*model.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) FormData(ctx context.Context) (*model.AppointmentFormData, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.(*model.AppointmentFormData), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) CreateAppointment(ctx context.Context, apt *model.Appointment) error {
	return m.Called(ctx, apt).Error(0)
}

func (m *mockService) DeleteAppointment(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func setupRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(web.MustTemplates())
	r.Use(middleware.ErrorHandler())

	h := NewHandler(svc)
	h.now = func() time.Time { return time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC) }
	h.RegisterRoutes(r)
	return r
}

func do(r http.Handler, method, target string, values url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	return w
}

func TestNewAppointmentForm(t *testing.T) {
	svc := &mockService{}
	svc.On("FormData", mock.Anything).Return(&model.AppointmentFormData{
		Patients: []*model.Patient{{ID: 1, Name: "Ann"}},
		Doctors:  []*model.Doctor{{ID: 2, Name: "Dr. Lee"}},
	}, nil)
	r := setupRouter(svc)

	w := do(r, http.MethodGet, "/add_appointment", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `<option value="1">Ann</option>`)
	assert.Contains(t, body, `<option value="2">Dr. Lee</option>`)
	assert.Contains(t, body, `value="2024-03-15T09:30"`)
}

func TestCreateAppointment(t *testing.T) {
	svc := &mockService{}
	want := &model.Appointment{
		PatientID: 1,
		DoctorID:  2,
		Date:      time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC),
	}
	svc.On("CreateAppointment", mock.Anything, want).Return(nil)
	r := setupRouter(svc)

	w := do(r, http.MethodPost, "/add_appointment", url.Values{
		"patient_id": {"1"},
		"doctor_id":  {"2"},
		"date":       {"2024-03-15T09:30"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/appointments", w.Header().Get("Location"))
	svc.AssertExpectations(t)
}

func TestCreateAppointment_InvalidForm(t *testing.T) {
	tests := map[string]url.Values{
		"bad date":        {"patient_id": {"1"}, "doctor_id": {"2"}, "date": {"15/03/2024"}},
		"missing date":    {"patient_id": {"1"}, "doctor_id": {"2"}},
		"missing patient": {"doctor_id": {"2"}, "date": {"2024-03-15T09:30"}},
		"blank doctor":    {"patient_id": {"1"}, "doctor_id": {""}, "date": {"2024-03-15T09:30"}},
		"non-int patient": {"patient_id": {"one"}, "doctor_id": {"2"}, "date": {"2024-03-15T09:30"}},
	}

	for name, values := range tests {
		t.Run(name, func(t *testing.T) {
			svc := &mockService{}
			r := setupRouter(svc)

			w := do(r, http.MethodPost, "/add_appointment", values)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			svc.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateAppointment_RejectedReference(t *testing.T) {
	svc := &mockService{}
	svc.On("CreateAppointment", mock.Anything, mock.Anything).Return(apperrors.BadRequest("patient 9 does not exist", nil))
	r := setupRouter(svc)

	w := do(r, http.MethodPost, "/add_appointment", url.Values{
		"patient_id": {"9"},
		"doctor_id":  {"2"},
		"date":       {"2024-03-15T09:30"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "patient 9 does not exist")
}

func TestDeleteAppointment(t *testing.T) {
	svc := &mockService{}
	svc.On("DeleteAppointment", mock.Anything, int64(4)).Return(nil)
	r := setupRouter(svc)

	w := do(r, http.MethodPost, "/delete_appointment/4", nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/appointments", w.Header().Get("Location"))
}
