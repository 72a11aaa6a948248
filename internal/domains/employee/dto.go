package employee

import (
	"fmt"
	"sort"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// dateLayout is the wire format for the two civil dates.
const dateLayout = "2006-01-02"

// EmployeeRequest is the payload accepted by the add and update endpoints.
// Dates travel as YYYY-MM-DD strings; the id may be omitted on create.
type EmployeeRequest struct {
	ID             *uuid.UUID       `json:"id,omitempty"`
	EmployeeCode   string           `json:"employeeCode"`
	FirstName      string           `json:"firstName"`
	LastName       string           `json:"lastName,omitempty"`
	DateOfBirth    string           `json:"dateOfBirth"`
	DateOfJoining  string           `json:"dateOfJoining"`
	Department     string           `json:"department,omitempty"`
	Designation    string           `json:"designation,omitempty"`
	Email          string           `json:"email"`
	PhoneNumber    string           `json:"phoneNumber,omitempty"`
	Address        string           `json:"address,omitempty"`
	City           string           `json:"city,omitempty"`
	State          string           `json:"state,omitempty"`
	PostalCode     string           `json:"postalCode,omitempty"`
	Country        string           `json:"country,omitempty"`
	EmploymentType string           `json:"employmentType,omitempty"`
	Salary         *decimal.Decimal `json:"salary,omitempty"`
	Status         string           `json:"status"`
}

// Validate checks required fields and formats before the service layer is
// invoked. Failures never reach storage.
func (r EmployeeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.EmployeeCode,
			validation.Required.Error("employee code is required"),
			validation.Length(1, 50),
		),
		validation.Field(&r.FirstName,
			validation.Required.Error("first name is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.LastName, validation.Length(0, 100)),
		validation.Field(&r.DateOfBirth,
			validation.Required.Error("date of birth is required"),
			validation.Date(dateLayout).Error("date of birth must be in YYYY-MM-DD format"),
		),
		validation.Field(&r.DateOfJoining,
			validation.Required.Error("date of joining is required"),
			validation.Date(dateLayout).Error("date of joining must be in YYYY-MM-DD format"),
		),
		validation.Field(&r.Department, validation.Length(0, 100)),
		validation.Field(&r.Designation, validation.Length(0, 100)),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
			validation.Length(5, 150),
		),
		validation.Field(&r.PhoneNumber, validation.Length(0, 15)),
		validation.Field(&r.Address, validation.Length(0, 200)),
		validation.Field(&r.City, validation.Length(0, 100)),
		validation.Field(&r.State, validation.Length(0, 100)),
		validation.Field(&r.PostalCode, validation.Length(0, 20)),
		validation.Field(&r.Country, validation.Length(0, 100)),
		validation.Field(&r.EmploymentType,
			validation.In(EmploymentFullTime, EmploymentPartTime, EmploymentContract).
				Error("employment type must be Full-Time, Part-Time or Contract"),
		),
		validation.Field(&r.Status,
			validation.Required.Error("status is required"),
			validation.In(StatusActive, StatusInactive, StatusTerminated, StatusOnLeave).
				Error("status must be Active, Inactive, Terminated or On Leave"),
		),
	)
}

// ToEmployee converts a validated request into the domain model.
func (r EmployeeRequest) ToEmployee() (*Employee, error) {
	dob, err := time.Parse(dateLayout, r.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("invalid date of birth: %w", err)
	}

	doj, err := time.Parse(dateLayout, r.DateOfJoining)
	if err != nil {
		return nil, fmt.Errorf("invalid date of joining: %w", err)
	}

	emp := &Employee{
		EmployeeCode:   r.EmployeeCode,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		DateOfBirth:    dob,
		DateOfJoining:  doj,
		Department:     r.Department,
		Designation:    r.Designation,
		Email:          r.Email,
		PhoneNumber:    r.PhoneNumber,
		Address:        r.Address,
		City:           r.City,
		State:          r.State,
		PostalCode:     r.PostalCode,
		Country:        r.Country,
		EmploymentType: r.EmploymentType,
		Salary:         r.Salary,
		Status:         r.Status,
	}

	if r.ID != nil {
		emp.ID = *r.ID
	}

	return emp, nil
}

// EmployeeResponse is the wire representation of an employee record.
type EmployeeResponse struct {
	ID             uuid.UUID        `json:"id"`
	EmployeeCode   string           `json:"employeeCode"`
	FirstName      string           `json:"firstName"`
	LastName       string           `json:"lastName,omitempty"`
	DateOfBirth    string           `json:"dateOfBirth"`
	DateOfJoining  string           `json:"dateOfJoining"`
	Department     string           `json:"department,omitempty"`
	Designation    string           `json:"designation,omitempty"`
	Email          string           `json:"email"`
	PhoneNumber    string           `json:"phoneNumber,omitempty"`
	Address        string           `json:"address,omitempty"`
	City           string           `json:"city,omitempty"`
	State          string           `json:"state,omitempty"`
	PostalCode     string           `json:"postalCode,omitempty"`
	Country        string           `json:"country,omitempty"`
	EmploymentType string           `json:"employmentType,omitempty"`
	Salary         *decimal.Decimal `json:"salary,omitempty"`
	Status         string           `json:"status"`
}

// NewEmployeeResponse converts a domain model into its wire representation.
func NewEmployeeResponse(e *Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		EmployeeCode:   e.EmployeeCode,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		DateOfBirth:    e.DateOfBirth.Format(dateLayout),
		DateOfJoining:  e.DateOfJoining.Format(dateLayout),
		Department:     e.Department,
		Designation:    e.Designation,
		Email:          e.Email,
		PhoneNumber:    e.PhoneNumber,
		Address:        e.Address,
		City:           e.City,
		State:          e.State,
		PostalCode:     e.PostalCode,
		Country:        e.Country,
		EmploymentType: e.EmploymentType,
		Salary:         e.Salary,
		Status:         e.Status,
	}
}

// ValidationMessages flattens an ozzo validation error into a sorted list of
// "field: message" strings for the structured error payload.
func ValidationMessages(err error) []string {
	verrs, ok := err.(validation.Errors)
	if !ok {
		return []string{err.Error()}
	}

	fields := make([]string, 0, len(verrs))
	for field := range verrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	messages := make([]string, 0, len(verrs))
	for _, field := range fields {
		messages = append(messages, fmt.Sprintf("%s: %s", field, verrs[field].Error()))
	}

	return messages
}
