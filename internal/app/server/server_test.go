package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrdesk/internal/app/server"
	"hrdesk/internal/contract"
	"hrdesk/internal/platform/config"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Addr:               ":0",
		Environment:        "test",
		StoreDriver:        config.StoreDriverMemory,
		FrontendDir:        t.TempDir(),
		MaxBodyBytes:       1 << 20,
		RateLimitPerMinute: 10000,
		MetricsEnabled:     true,
		EmailFrom:          "no-reply@example.com",
		NotifyTimeout:      time.Second,
	}
}

func startApp(t *testing.T, cfg config.Config) *httptest.Server {
	t.Helper()
	app, err := server.New(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(app.Close)
	ts := httptest.NewServer(app.Router)
	t.Cleanup(ts.Close)
	return ts
}

func call(t *testing.T, ts *httptest.Server, method, path string, payload any) (int, []byte) {
	t.Helper()
	var body io.Reader
	switch p := payload.(type) {
	case nil:
	case string:
		body = bytes.NewBufferString(p)
	default:
		raw, err := json.Marshal(p)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, ts.URL+path, body)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}

func employeePayload(first, email string) map[string]any {
	return map[string]any{
		"firstName":  first,
		"lastName":   "Ntulo",
		"email":      email,
		"idNumber":   "8501015000087",
		"position":   "Senior Safety Consultant",
		"department": "Risk Management",
	}
}

func createEmployee(t *testing.T, ts *httptest.Server, first string) contract.Employee {
	t.Helper()
	status, raw := call(t, ts, http.MethodPost, "/api/employees", employeePayload(first, first+"@example.com"))
	require.Equal(t, http.StatusCreated, status, string(raw))
	return decode[contract.Employee](t, raw)
}

func TestEmployeeCreateGetAndDefaults(t *testing.T) {
	ts := startApp(t, testConfig(t))

	payload := employeePayload("Khensani", "k.ntulo@devpulse-hr.com")
	payload["id"] = 999
	payload["createdAt"] = "1999-01-01T00:00:00Z"
	status, raw := call(t, ts, http.MethodPost, "/api/employees", payload)
	require.Equal(t, http.StatusCreated, status, string(raw))
	created := decode[contract.Employee](t, raw)
	assert.Equal(t, int64(1), created.ID)
	assert.True(t, created.IsActive)
	assert.True(t, created.CreatedAt.After(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.NoError(t, contract.Validate(&created))

	status, raw = call(t, ts, http.MethodGet, contract.BuildURL("/api/employees/{id}", map[string]any{"id": created.ID}), nil)
	require.Equal(t, http.StatusOK, status)
	got := decode[contract.Employee](t, raw)
	assert.Equal(t, created.Email, got.Email)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
}

func TestEmployeeValidationFailures(t *testing.T) {
	ts := startApp(t, testConfig(t))

	status, raw := call(t, ts, http.MethodPost, "/api/employees", employeePayload("Thabo", "not-an-email"))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"message":"Invalid email address","field":"email"}`, string(raw))

	payload := employeePayload("Thabo", "t.molefe@devpulse-hr.com")
	payload["idNumber"] = ""
	status, raw = call(t, ts, http.MethodPost, "/api/employees", payload)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"message":"ID Number is required","field":"idNumber"}`, string(raw))

	status, raw = call(t, ts, http.MethodPost, "/api/employees", `{"firstName":`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"message":"invalid request payload"}`, string(raw))

	status, raw = call(t, ts, http.MethodGet, "/api/employees", nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestEmployeeNotFound(t *testing.T) {
	ts := startApp(t, testConfig(t))
	for _, path := range []string{"/api/employees/42", "/api/employees/abc", "/api/employees/42/details"} {
		status, raw := call(t, ts, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, status, path)
		assert.JSONEq(t, `{"message":"Employee not found"}`, string(raw), path)
	}
	status, _ := call(t, ts, http.MethodPut, "/api/employees/42", map[string]any{"department": "Finance"})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestEmployeePartialUpdate(t *testing.T) {
	ts := startApp(t, testConfig(t))
	created := createEmployee(t, ts, "lerato")

	status, raw := call(t, ts, http.MethodPut, "/api/employees/1", map[string]any{"department": "Finance"})
	require.Equal(t, http.StatusOK, status, string(raw))
	updated := decode[contract.Employee](t, raw)
	assert.Equal(t, "Finance", updated.Department)
	assert.Equal(t, created.Email, updated.Email)
	assert.Equal(t, created.IsActive, updated.IsActive)
	assert.Equal(t, created.FirstName, updated.FirstName)

	status, raw = call(t, ts, http.MethodPut, "/api/employees/1", map[string]any{"email": "broken"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"message":"Invalid email address","field":"email"}`, string(raw))
}

func TestLeaveLifecycleAndNotifications(t *testing.T) {
	ts := startApp(t, testConfig(t))
	emp := createEmployee(t, ts, "khensani")

	status, raw := call(t, ts, http.MethodPost, "/api/leave-requests", map[string]any{
		"employeeId": emp.ID, "startDate": "2024-05-01", "endDate": "2024-05-05",
		"type": "Annual", "reason": "Family holiday", "status": "Approved",
	})
	require.Equal(t, http.StatusCreated, status, string(raw))
	long := decode[contract.LeaveRequest](t, raw)
	assert.Equal(t, contract.LeaveStatusPending, long.Status)

	status, raw = call(t, ts, http.MethodPost, "/api/leave-requests", map[string]any{
		"employeeId": emp.ID, "startDate": "2024-06-01", "endDate": "2024-06-01",
		"type": "Sick", "reason": "Flu",
	})
	require.Equal(t, http.StatusCreated, status, string(raw))
	short := decode[contract.LeaveRequest](t, raw)

	status, raw = call(t, ts, http.MethodGet, "/api/notifications", nil)
	require.Equal(t, http.StatusOK, status)
	notes := decode[[]contract.Notification](t, raw)
	require.Len(t, notes, 1)
	assert.Equal(t, long.ID, notes[0].LeaveRequestID)
	assert.False(t, notes[0].Delivered)

	status, raw = call(t, ts, http.MethodPatch, "/api/leave-requests/"+itoa(long.ID)+"/status", map[string]any{"status": "Approved"})
	require.Equal(t, http.StatusOK, status, string(raw))
	assert.Equal(t, contract.LeaveStatusApproved, decode[contract.LeaveRequest](t, raw).Status)

	status, raw = call(t, ts, http.MethodGet, "/api/leave-requests", nil)
	require.Equal(t, http.StatusOK, status)
	list := decode[[]contract.LeaveRequest](t, raw)
	require.Len(t, list, 2)
	assert.Equal(t, short.ID, list[0].ID)
	assert.Equal(t, contract.LeaveStatusApproved, list[1].Status)

	status, raw = call(t, ts, http.MethodPatch, "/api/leave-requests/99/status", map[string]any{"status": "Rejected"})
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"message":"Leave request not found"}`, string(raw))

	status, raw = call(t, ts, http.MethodPatch, "/api/leave-requests/1/status", map[string]any{"status": "Cancelled"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"message":"Status must be one of: Pending, Approved, Rejected","field":"status"}`, string(raw))
}

func TestLeaveCreateValidation(t *testing.T) {
	ts := startApp(t, testConfig(t))
	createEmployee(t, ts, "sipho")

	cases := map[string]map[string]any{
		"endDate":    {"employeeId": 1, "startDate": "2024-05-05", "endDate": "2024-05-01", "type": "Annual", "reason": "x"},
		"type":       {"employeeId": 1, "startDate": "2024-05-01", "endDate": "2024-05-01", "type": "Sabbatical", "reason": "x"},
		"employeeId": {"employeeId": 7, "startDate": "2024-05-01", "endDate": "2024-05-01", "type": "Annual", "reason": "x"},
		"reason":     {"employeeId": 1, "startDate": "2024-05-01", "endDate": "2024-05-01", "type": "Annual"},
	}
	for field, payload := range cases {
		status, raw := call(t, ts, http.MethodPost, "/api/leave-requests", payload)
		assert.Equal(t, http.StatusBadRequest, status, field)
		assert.Equal(t, field, decode[contract.ErrorBody](t, raw).Field)
	}

	status, raw := call(t, ts, http.MethodPost, "/api/leave-requests", `{"employeeId":"one"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "employeeId", decode[contract.ErrorBody](t, raw).Field)
}

func TestRecordListsAreMostRecentFirst(t *testing.T) {
	ts := startApp(t, testConfig(t))
	createEmployee(t, ts, "a")

	for _, action := range []string{"A", "B", "C"} {
		status, raw := call(t, ts, http.MethodPost, "/api/disciplinary-records", map[string]any{
			"employeeId": 1, "incidentDate": "2024-02-15", "description": "Late", "actionTaken": action,
		})
		require.Equal(t, http.StatusCreated, status, string(raw))
	}
	status, raw := call(t, ts, http.MethodGet, "/api/disciplinary-records", nil)
	require.Equal(t, http.StatusOK, status)
	records := decode[[]contract.DisciplinaryRecord](t, raw)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"C", "B", "A"}, []string{records[0].ActionTaken, records[1].ActionTaken, records[2].ActionTaken})

	status, raw = call(t, ts, http.MethodPost, "/api/training-records", map[string]any{
		"employeeId": 1, "trainingName": "First Aid Level 1", "completionDate": "2024-01-10", "expiryDate": "2026-01-10",
	})
	require.Equal(t, http.StatusCreated, status, string(raw))
	trainingRec := decode[contract.TrainingRecord](t, raw)
	require.NotNil(t, trainingRec.ExpiryDate)
	assert.Nil(t, trainingRec.CertificateURL)

	status, raw = call(t, ts, http.MethodGet, "/api/training-records", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]contract.TrainingRecord](t, raw), 1)
}

func TestSeedDashboardAndDetails(t *testing.T) {
	cfg := testConfig(t)
	cfg.RunSeed = true
	ts := startApp(t, cfg)

	status, raw := call(t, ts, http.MethodGet, "/api/dashboard/summary", nil)
	require.Equal(t, http.StatusOK, status)
	summary := decode[contract.DashboardSummaryBody](t, raw)
	assert.Equal(t, 2, summary.ActiveEmployees)
	assert.Equal(t, 1, summary.PendingLeave)
	assert.Equal(t, 1, summary.DisciplinaryTotal)
	assert.Len(t, summary.Departments, 2)

	status, raw = call(t, ts, http.MethodGet, "/api/employees/1/details", nil)
	require.Equal(t, http.StatusOK, status)
	details := decode[contract.EmployeeWithDetails](t, raw)
	assert.Equal(t, "Khensani", details.FirstName)
	assert.Len(t, details.LeaveRequests, 1)
	assert.Len(t, details.DisciplinaryRecords, 1)
	assert.Len(t, details.TrainingRecords, 1)

	status, raw = call(t, ts, http.MethodGet, "/api/notifications", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]contract.Notification](t, raw), 1)
}

func TestExports(t *testing.T) {
	cfg := testConfig(t)
	cfg.RunSeed = true
	ts := startApp(t, cfg)

	resp, err := ts.Client().Get(ts.URL + "/api/employees/1/profile.pdf")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	resp, err = ts.Client().Get(ts.URL + "/api/reports/workforce.xlsx")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "workforce-")
}

func TestContractAndLeaveTypes(t *testing.T) {
	ts := startApp(t, testConfig(t))

	status, raw := call(t, ts, http.MethodGet, "/api/leave-types", nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `["Annual","Sick","Family","Unpaid"]`, string(raw))

	status, raw = call(t, ts, http.MethodGet, "/api/contract", nil)
	require.Equal(t, http.StatusOK, status)
	docs := decode[[]contract.EndpointDoc](t, raw)
	assert.Len(t, docs, len(contract.Endpoints))
}

func TestOperationalRoutes(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.FrontendDir, "index.html"), []byte("<html>hrdesk</html>"), 0o644))
	ts := startApp(t, cfg)

	status, raw := call(t, ts, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", string(raw))

	status, _ = call(t, ts, http.MethodGet, "/readyz", nil)
	assert.Equal(t, http.StatusOK, status)

	status, raw = call(t, ts, http.MethodGet, "/api/nothing-here", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"message":"Not found"}`, string(raw))

	status, raw = call(t, ts, http.MethodGet, "/employees", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(raw), "hrdesk")

	status, raw = call(t, ts, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, status)
	snapshot := decode[map[string]any](t, raw)
	assert.Contains(t, snapshot, "requestsTotal")
	assert.Contains(t, snapshot, "notificationsFailedTotal")
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.StoreDriver = "sqlite"
	_, err := server.New(context.Background(), cfg)
	assert.Error(t, err)
}

func itoa(id int64) string {
	return contract.BuildURL("{id}", map[string]any{"id": id})
}
