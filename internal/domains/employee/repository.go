package employee

import "context"

// Repository is the persistence contract consumed by the service layer.
type Repository interface {
	// FindAll returns every stored employee, unordered. Empty is valid.
	FindAll(ctx context.Context) ([]*Employee, error)

	// FindByCode looks up an employee by business code. Absence is a valid,
	// non-error outcome: (nil, nil).
	FindByCode(ctx context.Context, code string) (*Employee, error)

	// Save inserts the record when the id is zero (assigning one), otherwise
	// replaces the stored record wholesale. Idempotent on identical input.
	Save(ctx context.Context, emp *Employee) (*Employee, error)

	// Delete removes the record. Callers are expected to confirm existence
	// first; deleting an absent record returns ErrEmployeeNotFound.
	Delete(ctx context.Context, emp *Employee) error
}
