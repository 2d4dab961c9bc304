package contract

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEmployeeInput() EmployeeInput {
	return EmployeeInput{
		FirstName:  "Khensani",
		LastName:   "Ntulo",
		Email:      "k.ntulo@example.com",
		IDNumber:   "8501015000087",
		Position:   "Senior Safety Consultant",
		Department: "Risk Management",
	}
}

func requireValidationError(t *testing.T, err error) *ValidationError {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	return verr
}

func TestValidateEmployeeInput(t *testing.T) {
	in := validEmployeeInput()
	require.NoError(t, Validate(&in))
	assert.True(t, in.Active(), "isActive defaults to true")

	inactive := false
	in.IsActive = &inactive
	assert.False(t, in.Active())
}

func TestValidateEmployeeRejectsMalformedEmail(t *testing.T) {
	in := validEmployeeInput()
	in.Email = "not-an-email"

	verr := requireValidationError(t, Validate(&in))
	assert.Equal(t, "email", verr.Field)
	assert.Equal(t, "Invalid email address", verr.Message)
}

func TestValidateEmployeeRejectsBlankIDNumber(t *testing.T) {
	in := validEmployeeInput()
	in.IDNumber = "   "

	verr := requireValidationError(t, Validate(&in))
	assert.Equal(t, "idNumber", verr.Field)
	assert.Equal(t, "ID Number is required", verr.Message)
}

func TestValidateReportsFirstFailingField(t *testing.T) {
	verr := requireValidationError(t, Validate(&EmployeeInput{}))
	assert.Equal(t, "firstName", verr.Field)
	assert.Equal(t, "First name is required", verr.Message)
	assert.Len(t, verr.Issues, 6)
}

func TestValidateEmployeePatch(t *testing.T) {
	dept := "Operations"
	require.NoError(t, Validate(&EmployeePatch{Department: &dept}))
	require.NoError(t, Validate(&EmployeePatch{}))

	empty := ""
	verr := requireValidationError(t, Validate(&EmployeePatch{IDNumber: &empty}))
	assert.Equal(t, "idNumber", verr.Field)

	bad := "nope"
	verr = requireValidationError(t, Validate(&EmployeePatch{Email: &bad}))
	assert.Equal(t, "email", verr.Field)
}

func TestEmployeePatchApplyOnlyTouchesSuppliedFields(t *testing.T) {
	emp := Employee{ID: 1, FirstName: "A", Email: "a@example.com", Department: "HR", IsActive: true}
	dept := "Finance"
	EmployeePatch{Department: &dept}.Apply(&emp)

	assert.Equal(t, "Finance", emp.Department)
	assert.Equal(t, "a@example.com", emp.Email)
	assert.True(t, emp.IsActive)
}

func TestValidateLeaveRequestInput(t *testing.T) {
	in := LeaveRequestInput{EmployeeID: 1, StartDate: "2024-05-01", EndDate: "2024-05-05", Type: "Annual", Reason: "Family holiday"}
	require.NoError(t, Validate(&in))

	start, end := in.Period()
	assert.Equal(t, 4*24*time.Hour, end.Sub(start))
}

func TestValidateLeaveRequestRules(t *testing.T) {
	cases := map[string]struct {
		mutate func(*LeaveRequestInput)
		field  string
	}{
		"missing employee": {func(in *LeaveRequestInput) { in.EmployeeID = 0 }, "employeeId"},
		"bad start date":   {func(in *LeaveRequestInput) { in.StartDate = "05/01/2024" }, "startDate"},
		"unknown type":     {func(in *LeaveRequestInput) { in.Type = "Sabbatical" }, "type"},
		"end before start": {func(in *LeaveRequestInput) { in.EndDate = "2024-04-30" }, "endDate"},
		"blank reason":     {func(in *LeaveRequestInput) { in.Reason = " " }, "reason"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			in := LeaveRequestInput{EmployeeID: 1, StartDate: "2024-05-01", EndDate: "2024-05-05", Type: "Sick", Reason: "Flu"}
			tc.mutate(&in)
			verr := requireValidationError(t, Validate(&in))
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestLeaveDateOrderMessage(t *testing.T) {
	in := LeaveRequestInput{EmployeeID: 1, StartDate: "2024-05-02", EndDate: "2024-05-01", Type: "Sick", Reason: "Flu"}
	verr := requireValidationError(t, Validate(&in))
	assert.Equal(t, "End date must be on or after start date", verr.Message)
}

func TestValidateLeaveStatusUpdate(t *testing.T) {
	for _, status := range LeaveStatuses {
		require.NoError(t, Validate(&LeaveStatusUpdate{Status: status}))
	}
	verr := requireValidationError(t, Validate(&LeaveStatusUpdate{Status: "Cancelled"}))
	assert.Equal(t, "status", verr.Field)
	assert.Equal(t, "Status must be one of: Pending, Approved, Rejected", verr.Message)
}

func TestLeaveTypesMatchOneOfRule(t *testing.T) {
	field, ok := reflect.TypeOf(LeaveRequestInput{}).FieldByName("Type")
	require.True(t, ok)
	assert.Contains(t, field.Tag.Get("validate"), "oneof="+strings.Join(LeaveTypes, " "))
}

func TestTrainingInputOptionalFields(t *testing.T) {
	blank := "  "
	in := TrainingRecordInput{EmployeeID: 3, TrainingName: "First Aid Level 1", CompletionDate: "2024-01-10", ExpiryDate: &blank}
	require.NoError(t, Validate(&in))
	assert.Nil(t, in.ExpiryDate)

	bad := "next year"
	in.ExpiryDate = &bad
	verr := requireValidationError(t, Validate(&in))
	assert.Equal(t, "expiryDate", verr.Field)
}

func TestValidateDisciplinaryInput(t *testing.T) {
	in := DisciplinaryRecordInput{EmployeeID: 1, IncidentDate: "2024-02-15", Description: "Late arrival", ActionTaken: "Verbal Warning"}
	require.NoError(t, Validate(&in))

	in.ActionTaken = ""
	verr := requireValidationError(t, Validate(&in))
	assert.Equal(t, "actionTaken", verr.Field)
	assert.Equal(t, "Action taken is required", verr.Message)
}

func TestDecodeMalformedJSON(t *testing.T) {
	var in EmployeeInput
	verr := requireValidationError(t, Decode(strings.NewReader("{"), &in))
	assert.Equal(t, "invalid request payload", verr.Message)

	verr = requireValidationError(t, Decode(strings.NewReader(`{"employeeId":"7"}`), &LeaveRequestInput{}))
	assert.Equal(t, "employeeId", verr.Field)
}

func TestDecodeIgnoresServerAssignedFields(t *testing.T) {
	var in LeaveRequestInput
	body := `{"id":99,"createdAt":"2020-01-01T00:00:00Z","status":"Approved","employeeId":1,
		"startDate":"2024-05-01","endDate":"2024-05-01","type":"Family","reason":"School event"}`
	require.NoError(t, Decode(strings.NewReader(body), &in))
	assert.Equal(t, int64(1), in.EmployeeID)
}

func TestEntitiesValidateAgainstResponseSchema(t *testing.T) {
	now := time.Now()
	expiry := "2026-01-10"
	entities := []any{
		&Employee{ID: 1, FirstName: "A", LastName: "B", Email: "a@b.co", IDNumber: "1", Position: "P", Department: "D", CreatedAt: now},
		&LeaveRequest{ID: 1, EmployeeID: 1, StartDate: "2024-05-01", EndDate: "2024-05-05", Type: "Annual", Reason: "R", Status: LeaveStatusPending, CreatedAt: now},
		&DisciplinaryRecord{ID: 1, EmployeeID: 1, IncidentDate: "2024-02-15", Description: "D", ActionTaken: "A", CreatedAt: now},
		&TrainingRecord{ID: 1, EmployeeID: 1, TrainingName: "T", CompletionDate: "2024-01-10", ExpiryDate: &expiry, CreatedAt: now},
	}
	for _, entity := range entities {
		assert.NoError(t, Validate(entity), "%T", entity)
	}

	assert.Error(t, Validate(&Employee{FirstName: "A"}))
}
