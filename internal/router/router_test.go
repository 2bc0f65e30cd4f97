package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-records/internal/config"
	"github.com/jwalitptl/clinic-records/internal/model"
	"github.com/jwalitptl/clinic-records/internal/repository"
	"github.com/jwalitptl/clinic-records/internal/repository/sqlstore"
	"github.com/jwalitptl/clinic-records/pkg/metrics"
)

type testApp struct {
	handler      http.Handler
	patients     repository.PatientRepository
	doctors      repository.DoctorRepository
	appointments repository.AppointmentRepository
	billings     repository.BillingRepository
}

func testConfig(policy string) *config.Config {
	return &config.Config{
		Server:     config.ServerConfig{Mode: "test", Port: 5000},
		Database:   config.DatabaseConfig{Driver: "sqlite", ReferencePolicy: policy},
		Security:   config.SecurityConfig{MaxBodySize: 1 << 20},
		Monitoring: config.MonitoringConfig{PrometheusEnabled: true, MetricsPath: "/metrics"},
	}
}

func newTestApp(t *testing.T, policy string) *testApp {
	t.Helper()

	cfg := testConfig(policy)
	cfg.Database.Path = filepath.Join(t.TempDir(), "healthcare.db")

	db, err := sqlstore.NewDB(cfg.Database)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqlstore.Migrate(context.Background(), db))

	m := metrics.New("test")
	r, err := Build(db, cfg, m, nil)
	require.NoError(t, err)

	base := sqlstore.NewBaseRepository(db, m)
	return &testApp{
		handler:      r.Engine(),
		patients:     sqlstore.NewPatientRepository(base),
		doctors:      sqlstore.NewDoctorRepository(base),
		appointments: sqlstore.NewAppointmentRepository(base),
		billings:     sqlstore.NewBillingRepository(base),
	}
}

func (a *testApp) get(target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	a.handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func (a *testApp) post(target string, values url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	a.handler.ServeHTTP(w, req)
	return w
}

func (a *testApp) listPatients(t *testing.T) []*model.Patient {
	t.Helper()
	patients, err := a.patients.List(context.Background())
	require.NoError(t, err)
	return patients
}

func requireRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	require.Equal(t, http.StatusFound, w.Code, w.Body.String())
	assert.Equal(t, location, w.Header().Get("Location"))
}

func TestHomeAndForms(t *testing.T) {
	app := newTestApp(t, "ignore")

	for _, path := range []string{"/", "/patients", "/add_patient", "/doctors", "/add_doctor",
		"/appointments", "/add_appointment", "/billings", "/add_billing"} {
		w := app.get(path)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html", path)
		assert.Equal(t, "private, no-store", w.Header().Get("Cache-Control"), path)
	}
}

func TestAddPatientThenList(t *testing.T) {
	app := newTestApp(t, "ignore")

	w := app.post("/add_patient", url.Values{
		"name":            {"Ann Smith"},
		"age":             {"42"},
		"medical_history": {"asthma"},
	})
	requireRedirect(t, w, "/patients")

	w = app.post("/add_patient", url.Values{"name": {"Bob"}, "age": {"30"}})
	requireRedirect(t, w, "/patients")

	patients := app.listPatients(t)
	require.Len(t, patients, 2)
	assert.Equal(t, "Ann Smith", patients[0].Name)
	assert.Equal(t, 42, patients[0].Age)
	assert.Equal(t, "asthma", patients[0].MedicalHistory)
	assert.Empty(t, patients[1].MedicalHistory)
	assert.NotEqual(t, patients[0].ID, patients[1].ID)

	body := app.get("/patients").Body.String()
	assert.Contains(t, body, "Ann Smith")
	assert.Contains(t, body, "/delete_patient/"+strconv.FormatInt(patients[0].ID, 10))
}

func TestAddPatient_InvalidFormStoresNothing(t *testing.T) {
	app := newTestApp(t, "ignore")

	w := app.post("/add_patient", url.Values{"name": {"Ann"}, "age": {"forty"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	assert.Empty(t, app.listPatients(t))
}

func TestDeletePatient(t *testing.T) {
	app := newTestApp(t, "ignore")

	requireRedirect(t, app.post("/add_patient", url.Values{"name": {"A"}, "age": {"1"}}), "/patients")
	requireRedirect(t, app.post("/add_patient", url.Values{"name": {"B"}, "age": {"2"}}), "/patients")
	patients := app.listPatients(t)
	require.Len(t, patients, 2)

	t.Run("absent id is a no-op", func(t *testing.T) {
		requireRedirect(t, app.post("/delete_patient/9999", nil), "/patients")
		assert.Len(t, app.listPatients(t), 2)
	})

	t.Run("removes exactly that row", func(t *testing.T) {
		target := "/delete_patient/" + strconv.FormatInt(patients[0].ID, 10)
		requireRedirect(t, app.post(target, nil), "/patients")

		remaining := app.listPatients(t)
		require.Len(t, remaining, 1)
		assert.Equal(t, patients[1].ID, remaining[0].ID)

		requireRedirect(t, app.post(target, nil), "/patients")
		assert.Len(t, app.listPatients(t), 1)
	})

	t.Run("non-integer id", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, app.post("/delete_patient/abc", nil).Code)
	})

	t.Run("wrong method", func(t *testing.T) {
		assert.Equal(t, http.StatusMethodNotAllowed, app.get("/delete_patient/1").Code)
	})
}

func TestCreateDeleteCreate(t *testing.T) {
	app := newTestApp(t, "ignore")

	requireRedirect(t, app.post("/add_doctor", url.Values{"name": {"Dr. A"}}), "/doctors")
	doctors, err := app.doctors.List(context.Background())
	require.NoError(t, err)
	require.Len(t, doctors, 1)

	requireRedirect(t, app.post("/delete_doctor/"+strconv.FormatInt(doctors[0].ID, 10), nil), "/doctors")
	requireRedirect(t, app.post("/add_doctor", url.Values{"name": {"Dr. B"}, "specialization": {"Cardiology"}}), "/doctors")

	doctors, err = app.doctors.List(context.Background())
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, "Dr. B", doctors[0].Name)
	assert.Equal(t, "Cardiology", doctors[0].Specialization)

	body := app.get("/doctors").Body.String()
	assert.Contains(t, body, "Dr. B")
	assert.NotContains(t, body, "Dr. A")
}

func TestAddAppointmentDate(t *testing.T) {
	app := newTestApp(t, "ignore")

	w := app.post("/add_appointment", url.Values{
		"patient_id": {"1"},
		"doctor_id":  {"1"},
		"date":       {"2024-03-15T09:30"},
	})
	requireRedirect(t, w, "/appointments")

	appointments, err := app.appointments.List(context.Background())
	require.NoError(t, err)
	require.Len(t, appointments, 1)
	assert.True(t, appointments[0].Date.Equal(time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)))
	assert.Contains(t, app.get("/appointments").Body.String(), "2024-03-15 09:30")

	for _, bad := range []string{"2024-03-15", "15/03/2024 09:30", "2024-03-15T09:30:00", "", "tomorrow"} {
		w := app.post("/add_appointment", url.Values{
			"patient_id": {"1"},
			"doctor_id":  {"1"},
			"date":       {bad},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code, bad)
	}

	appointments, err = app.appointments.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, appointments, 1)
}

func TestAddBilling(t *testing.T) {
	app := newTestApp(t, "ignore")

	requireRedirect(t, app.post("/add_appointment", url.Values{
		"patient_id": {"1"},
		"doctor_id":  {"1"},
		"date":       {"2024-03-15T09:30"},
	}), "/appointments")
	appointments, err := app.appointments.List(context.Background())
	require.NoError(t, err)
	require.Len(t, appointments, 1)

	requireRedirect(t, app.post("/add_billing", url.Values{
		"appointment_id": {strconv.FormatInt(appointments[0].ID, 10)},
		"amount":         {"150.50"},
	}), "/billings")

	billings, err := app.billings.List(context.Background())
	require.NoError(t, err)
	require.Len(t, billings, 1)
	assert.InDelta(t, 150.50, billings[0].Amount, 0.0001)
	assert.Contains(t, app.get("/billings").Body.String(), "150.50")
}

func TestReferencePolicies(t *testing.T) {
	t.Run("ignore keeps dangling references", func(t *testing.T) {
		app := newTestApp(t, "ignore")

		requireRedirect(t, app.post("/add_patient", url.Values{"name": {"Ann"}, "age": {"40"}}), "/patients")
		requireRedirect(t, app.post("/add_appointment", url.Values{
			"patient_id": {"1"}, "doctor_id": {"77"}, "date": {"2024-03-15T09:30"},
		}), "/appointments")
		requireRedirect(t, app.post("/delete_patient/1", nil), "/patients")

		appointments, err := app.appointments.List(context.Background())
		require.NoError(t, err)
		require.Len(t, appointments, 1)
		assert.Empty(t, appointments[0].PatientName)
		assert.Equal(t, http.StatusOK, app.get("/appointments").Code)
	})

	t.Run("reject", func(t *testing.T) {
		app := newTestApp(t, "reject")

		w := app.post("/add_appointment", url.Values{
			"patient_id": {"1"}, "doctor_id": {"1"}, "date": {"2024-03-15T09:30"},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "patient 1 does not exist")

		requireRedirect(t, app.post("/add_patient", url.Values{"name": {"Ann"}, "age": {"40"}}), "/patients")
		requireRedirect(t, app.post("/add_doctor", url.Values{"name": {"Dr. Lee"}}), "/doctors")
		requireRedirect(t, app.post("/add_appointment", url.Values{
			"patient_id": {"1"}, "doctor_id": {"1"}, "date": {"2024-03-15T09:30"},
		}), "/appointments")

		w = app.post("/delete_patient/1", nil)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Len(t, app.listPatients(t), 1)

		assert.Equal(t, http.StatusBadRequest, app.post("/add_billing", url.Values{
			"appointment_id": {"5"}, "amount": {"10"},
		}).Code)
	})

	t.Run("cascade", func(t *testing.T) {
		app := newTestApp(t, "cascade")

		requireRedirect(t, app.post("/add_patient", url.Values{"name": {"Ann"}, "age": {"40"}}), "/patients")
		requireRedirect(t, app.post("/add_appointment", url.Values{
			"patient_id": {"1"}, "doctor_id": {"1"}, "date": {"2024-03-15T09:30"},
		}), "/appointments")
		requireRedirect(t, app.post("/add_billing", url.Values{
			"appointment_id": {"1"}, "amount": {"99.99"},
		}), "/billings")

		requireRedirect(t, app.post("/delete_patient/1", nil), "/patients")

		appointments, err := app.appointments.List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, appointments)
		billings, err := app.billings.List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, billings)
	})
}

func TestUnknownPathAndOpsEndpoints(t *testing.T) {
	app := newTestApp(t, "ignore")

	w := app.get("/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	w = app.get("/health/live")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"UP"}`, w.Body.String())

	assert.Equal(t, http.StatusOK, app.get("/health/ready").Code)

	app.get("/patients")
	w = app.get("/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "test_http_requests_total")
	assert.Contains(t, w.Body.String(), "test_database_operations_total")
}

func TestSecurityHeadersOnPages(t *testing.T) {
	app := newTestApp(t, "ignore")

	w := app.get("/patients")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Contains(t, w.Header().Get("Content-Security-Policy"), "default-src 'self'")
}
