package contract

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// ErrorBody is the response shape for 400 and 404 responses.
type ErrorBody struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every failing field; Field and Message describe the first one.
type ValidationError struct {
	Field   string
	Message string
	Issues  []Issue
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Body() ErrorBody {
	return ErrorBody{Message: e.Message, Field: e.Field}
}

// Invalid builds a single-field ValidationError.
func Invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message, Issues: []Issue{{Field: field, Message: message}}}
}

type normalizer interface {
	normalize()
}

var labels = map[string]string{
	"firstName":      "First name",
	"lastName":       "Last name",
	"email":          "Email",
	"idNumber":       "ID Number",
	"position":       "Position",
	"department":     "Department",
	"employeeId":     "Employee",
	"startDate":      "Start date",
	"endDate":        "End date",
	"type":           "Leave type",
	"reason":         "Reason",
	"status":         "Status",
	"incidentDate":   "Incident date",
	"description":    "Description",
	"actionTaken":    "Action taken",
	"trainingName":   "Training name",
	"completionDate": "Completion date",
	"expiryDate":     "Expiry date",
	"id":             "ID",
	"createdAt":      "Created at",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(validateLeavePeriod, LeaveRequestInput{})
	return v
}

func validateLeavePeriod(sl validator.StructLevel) {
	in := sl.Current().Interface().(LeaveRequestInput)
	start, errStart := ParseDate(in.StartDate)
	end, errEnd := ParseDate(in.EndDate)
	if errStart != nil || errEnd != nil {
		return
	}
	if end.Before(start) {
		sl.ReportError(in.EndDate, "endDate", "EndDate", "dateorder", "startDate")
	}
}

// Validate normalizes payload in place and checks it against its rules.
// payload must be a pointer to one of the contract structs.
func Validate(payload any) error {
	if n, ok := payload.(normalizer); ok {
		n.normalize()
	}
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate payload")
	}

	issues := make([]Issue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, Issue{Field: fe.Field(), Message: message(fe)})
	}
	return &ValidationError{Field: issues[0].Field, Message: issues[0].Message, Issues: issues}
}

// Decode reads a JSON body into payload and validates it.
func Decode(body io.Reader, payload any) error {
	if err := json.NewDecoder(body).Decode(payload); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return Invalid(typeErr.Field, fmt.Sprintf("%s has an invalid type", label(typeErr.Field)))
		}
		return Invalid("", "invalid request payload")
	}
	return Validate(payload)
}

func label(field string) string {
	if l, ok := labels[field]; ok {
		return l
	}
	return field
}

func message(fe validator.FieldError) string {
	name := label(fe.Field())
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "email":
		return "Invalid email address"
	case "min":
		return name + " cannot be empty"
	case "gt":
		return name + " must be a positive number"
	case "datetime":
		return name + " must be a valid date in YYYY-MM-DD format"
	case "oneof":
		return name + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "dateorder":
		return name + " must be on or after " + strings.ToLower(label(fe.Param()))
	default:
		return name + " is invalid"
	}
}
