package employee

import "context"

// Service orchestrates lookups and mutations against the repository.
//
// "Not found" on update and delete is reported as a false return, not an
// error; the handler layer translates it into a 404 envelope. Only
// unexpected storage faults travel back as errors.
type Service interface {
	// ListAll returns every employee currently stored.
	ListAll(ctx context.Context) ([]EmployeeResponse, error)

	// Create persists a new record. The request must already be validated.
	Create(ctx context.Context, req *EmployeeRequest) (bool, error)

	// Update replaces the record matching req.EmployeeCode wholesale.
	// Returns false with no side effect when the code is unknown.
	Update(ctx context.Context, req *EmployeeRequest) (bool, error)

	// Delete removes the record matching the business code.
	// Returns false with no side effect when the code is unknown.
	Delete(ctx context.Context, employeeCode string) (bool, error)
}
