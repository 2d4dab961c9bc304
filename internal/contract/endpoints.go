package contract

import (
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

const (
	EmployeesList       = "employees.list"
	EmployeesGet        = "employees.get"
	EmployeesCreate     = "employees.create"
	EmployeesUpdate     = "employees.update"
	LeaveList           = "leave.list"
	LeaveCreate         = "leave.create"
	LeaveUpdateStatus   = "leave.updateStatus"
	DisciplineList      = "discipline.list"
	DisciplineCreate    = "discipline.create"
	TrainingList        = "training.list"
	TrainingCreate      = "training.create"
	EmployeesDetails    = "employees.details"
	EmployeesProfilePDF = "employees.profilePdf"
	LeaveTypesList      = "leave.types"
	DashboardSummary    = "dashboard.summary"
	NotificationsList   = "notifications.list"
	WorkforceExport     = "reports.workforce"
	ContractDescribe    = "contract.describe"
)

// Endpoint binds an operation name to its method, chi-style path template, input shape and
// the response shape per status code.
type Endpoint struct {
	Name      string
	Method    string
	Path      string
	Input     any
	Responses map[int]any
}

type binary struct{}

var Endpoints = []Endpoint{
	{Name: EmployeesList, Method: http.MethodGet, Path: "/api/employees",
		Responses: map[int]any{http.StatusOK: []Employee{}}},
	{Name: EmployeesGet, Method: http.MethodGet, Path: "/api/employees/{id}",
		Responses: map[int]any{http.StatusOK: Employee{}, http.StatusNotFound: ErrorBody{}}},
	{Name: EmployeesCreate, Method: http.MethodPost, Path: "/api/employees", Input: EmployeeInput{},
		Responses: map[int]any{http.StatusCreated: Employee{}, http.StatusBadRequest: ErrorBody{}}},
	{Name: EmployeesUpdate, Method: http.MethodPut, Path: "/api/employees/{id}", Input: EmployeePatch{},
		Responses: map[int]any{http.StatusOK: Employee{}, http.StatusBadRequest: ErrorBody{}, http.StatusNotFound: ErrorBody{}}},
	{Name: EmployeesDetails, Method: http.MethodGet, Path: "/api/employees/{id}/details",
		Responses: map[int]any{http.StatusOK: EmployeeWithDetails{}, http.StatusNotFound: ErrorBody{}}},
	{Name: EmployeesProfilePDF, Method: http.MethodGet, Path: "/api/employees/{id}/profile.pdf",
		Responses: map[int]any{http.StatusOK: binary{}, http.StatusNotFound: ErrorBody{}}},
	{Name: LeaveList, Method: http.MethodGet, Path: "/api/leave-requests",
		Responses: map[int]any{http.StatusOK: []LeaveRequest{}}},
	{Name: LeaveCreate, Method: http.MethodPost, Path: "/api/leave-requests", Input: LeaveRequestInput{},
		Responses: map[int]any{http.StatusCreated: LeaveRequest{}, http.StatusBadRequest: ErrorBody{}}},
	{Name: LeaveUpdateStatus, Method: http.MethodPatch, Path: "/api/leave-requests/{id}/status", Input: LeaveStatusUpdate{},
		Responses: map[int]any{http.StatusOK: LeaveRequest{}, http.StatusBadRequest: ErrorBody{}, http.StatusNotFound: ErrorBody{}}},
	{Name: LeaveTypesList, Method: http.MethodGet, Path: "/api/leave-types",
		Responses: map[int]any{http.StatusOK: []string{}}},
	{Name: DisciplineList, Method: http.MethodGet, Path: "/api/disciplinary-records",
		Responses: map[int]any{http.StatusOK: []DisciplinaryRecord{}}},
	{Name: DisciplineCreate, Method: http.MethodPost, Path: "/api/disciplinary-records", Input: DisciplinaryRecordInput{},
		Responses: map[int]any{http.StatusCreated: DisciplinaryRecord{}, http.StatusBadRequest: ErrorBody{}}},
	{Name: TrainingList, Method: http.MethodGet, Path: "/api/training-records",
		Responses: map[int]any{http.StatusOK: []TrainingRecord{}}},
	{Name: TrainingCreate, Method: http.MethodPost, Path: "/api/training-records", Input: TrainingRecordInput{},
		Responses: map[int]any{http.StatusCreated: TrainingRecord{}, http.StatusBadRequest: ErrorBody{}}},
	{Name: DashboardSummary, Method: http.MethodGet, Path: "/api/dashboard/summary",
		Responses: map[int]any{http.StatusOK: DashboardSummaryBody{}}},
	{Name: NotificationsList, Method: http.MethodGet, Path: "/api/notifications",
		Responses: map[int]any{http.StatusOK: []Notification{}}},
	{Name: WorkforceExport, Method: http.MethodGet, Path: "/api/reports/workforce.xlsx",
		Responses: map[int]any{http.StatusOK: binary{}}},
	{Name: ContractDescribe, Method: http.MethodGet, Path: "/api/contract",
		Responses: map[int]any{http.StatusOK: []EndpointDoc{}}},
}

// Lookup returns the endpoint registered under name.
func Lookup(name string) (Endpoint, bool) {
	for _, ep := range Endpoints {
		if ep.Name == name {
			return ep, true
		}
	}
	return Endpoint{}, false
}

// BuildURL substitutes {param} placeholders in a path template.
func BuildURL(path string, params map[string]any) string {
	for key, value := range params {
		var s string
		switch v := value.(type) {
		case string:
			s = v
		case int:
			s = strconv.Itoa(v)
		case int64:
			s = strconv.FormatInt(v, 10)
		default:
			continue
		}
		path = strings.ReplaceAll(path, "{"+key+"}", url.PathEscape(s))
	}
	return path
}

type FieldDoc struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Rules    string `json:"rules,omitempty"`
	Optional bool   `json:"optional"`
}

type SchemaDoc struct {
	Name   string     `json:"name"`
	Fields []FieldDoc `json:"fields,omitempty"`
}

type EndpointDoc struct {
	Name      string               `json:"name"`
	Method    string               `json:"method"`
	Path      string               `json:"path"`
	Input     *SchemaDoc           `json:"input,omitempty"`
	Responses map[string]SchemaDoc `json:"responses"`
}

// Describe renders the endpoint table so clients can mirror the same rules.
func Describe() []EndpointDoc {
	docs := make([]EndpointDoc, 0, len(Endpoints))
	for _, ep := range Endpoints {
		doc := EndpointDoc{Name: ep.Name, Method: ep.Method, Path: ep.Path, Responses: map[string]SchemaDoc{}}
		if ep.Input != nil {
			schema := describeType(reflect.TypeOf(ep.Input))
			doc.Input = &schema
		}
		for status, shape := range ep.Responses {
			doc.Responses[strconv.Itoa(status)] = describeType(reflect.TypeOf(shape))
		}
		docs = append(docs, doc)
	}
	return docs
}

func describeType(t reflect.Type) SchemaDoc {
	if t == reflect.TypeOf(binary{}) {
		return SchemaDoc{Name: "binary"}
	}
	if t.Kind() == reflect.Slice {
		inner := describeType(t.Elem())
		inner.Name = "[]" + inner.Name
		return inner
	}
	doc := SchemaDoc{Name: t.Name()}
	if t.Kind() != reflect.Struct {
		return doc
	}
	doc.Fields = describeFields(t)
	return doc
}

func describeFields(t reflect.Type) []FieldDoc {
	var fields []FieldDoc
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			fields = append(fields, describeFields(f.Type)...)
			continue
		}
		name, opts, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		rules := f.Tag.Get("validate")
		fields = append(fields, FieldDoc{
			Name:     name,
			Type:     jsonType(f.Type),
			Rules:    rules,
			Optional: f.Type.Kind() == reflect.Pointer || strings.Contains(opts, "omitempty") || !strings.Contains(rules, "required"),
		})
	}
	return fields
}

func jsonType(t reflect.Type) string {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int32, reflect.Int64, reflect.Float64:
		return "number"
	case reflect.Slice:
		return "array"
	case reflect.Struct:
		if t.PkgPath() == "time" {
			return "string"
		}
		return "object"
	default:
		return t.Kind().String()
	}
}
