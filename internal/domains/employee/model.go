package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Employment status values.
const (
	StatusActive     = "Active"
	StatusInactive   = "Inactive"
	StatusTerminated = "Terminated"
	StatusOnLeave    = "On Leave"
)

// Employment type values.
const (
	EmploymentFullTime = "Full-Time"
	EmploymentPartTime = "Part-Time"
	EmploymentContract = "Contract"
)

// Employee is the persisted employee record. ID is the internal identifier,
// generated at insert when absent and immutable afterwards. EmployeeCode is
// the business key all client-facing lookups, updates and deletes go through.
type Employee struct {
	ID             uuid.UUID
	EmployeeCode   string
	FirstName      string
	LastName       string
	DateOfBirth    time.Time
	DateOfJoining  time.Time
	Department     string
	Designation    string
	Email          string
	PhoneNumber    string
	Address        string
	City           string
	State          string
	PostalCode     string
	Country        string
	EmploymentType string
	Salary         *decimal.Decimal
	Status         string
}
