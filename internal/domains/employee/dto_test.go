package employee

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() EmployeeRequest {
	salary := decimal.NewFromInt(50000)
	return EmployeeRequest{
		EmployeeCode:   "E100",
		FirstName:      "Ana",
		LastName:       "Silva",
		DateOfBirth:    "1990-01-01",
		DateOfJoining:  "2020-01-01",
		Department:     "Engineering",
		Designation:    "Engineer",
		Email:          "ana@x.com",
		PhoneNumber:    "+5511999990000",
		EmploymentType: EmploymentFullTime,
		Salary:         &salary,
		Status:         StatusActive,
	}
}

func TestValidateAcceptsValidRequest(t *testing.T) {
	require.NoError(t, validRequest().Validate())
}

func TestValidateOptionalFieldsMayBeEmpty(t *testing.T) {
	req := validRequest()
	req.LastName = ""
	req.Department = ""
	req.Designation = ""
	req.PhoneNumber = ""
	req.EmploymentType = ""
	req.Salary = nil

	require.NoError(t, req.Validate())
}

func TestValidateRejectsMissingRequiredFields(t *testing.T) {
	req := EmployeeRequest{}
	err := req.Validate()
	require.Error(t, err)

	messages := ValidationMessages(err)
	assert.Contains(t, messages, "dateOfBirth: date of birth is required")
	assert.Contains(t, messages, "dateOfJoining: date of joining is required")
	assert.Contains(t, messages, "email: email is required")
	assert.Contains(t, messages, "employeeCode: employee code is required")
	assert.Contains(t, messages, "firstName: first name is required")
	assert.Contains(t, messages, "status: status is required")
}

func TestValidateRejectsMalformedFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*EmployeeRequest)
		message string
	}{
		{
			name:    "bad email",
			mutate:  func(r *EmployeeRequest) { r.Email = "not-an-email" },
			message: "email: invalid email format",
		},
		{
			name:    "bad date of birth",
			mutate:  func(r *EmployeeRequest) { r.DateOfBirth = "01/01/1990" },
			message: "dateOfBirth: date of birth must be in YYYY-MM-DD format",
		},
		{
			name:    "bad date of joining",
			mutate:  func(r *EmployeeRequest) { r.DateOfJoining = "yesterday" },
			message: "dateOfJoining: date of joining must be in YYYY-MM-DD format",
		},
		{
			name:    "unknown status",
			mutate:  func(r *EmployeeRequest) { r.Status = "Retired" },
			message: "status: status must be Active, Inactive, Terminated or On Leave",
		},
		{
			name:    "unknown employment type",
			mutate:  func(r *EmployeeRequest) { r.EmploymentType = "Freelance" },
			message: "employmentType: employment type must be Full-Time, Part-Time or Contract",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := req.Validate()
			require.Error(t, err)
			assert.Contains(t, ValidationMessages(err), tt.message)
		})
	}
}

func TestValidationMessagesAreSorted(t *testing.T) {
	err := EmployeeRequest{}.Validate()
	require.Error(t, err)

	messages := ValidationMessages(err)
	require.True(t, len(messages) > 1)

	for i := 1; i < len(messages); i++ {
		assert.LessOrEqual(t, messages[i-1], messages[i])
	}
}

func TestToEmployeeParsesDates(t *testing.T) {
	emp, err := validRequest().ToEmployee()
	require.NoError(t, err)

	assert.Equal(t, 1990, emp.DateOfBirth.Year())
	assert.Equal(t, 2020, emp.DateOfJoining.Year())
	assert.Equal(t, "E100", emp.EmployeeCode)
}

func TestResponseRoundTripsDates(t *testing.T) {
	emp, err := validRequest().ToEmployee()
	require.NoError(t, err)

	resp := NewEmployeeResponse(emp)
	assert.Equal(t, "1990-01-01", resp.DateOfBirth)
	assert.Equal(t, "2020-01-01", resp.DateOfJoining)
}
