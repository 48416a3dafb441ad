package salary

import "context"

type StoreIface interface {
	ReferenceForEmployee(ctx context.Context, employeeID string) (Reference, error)
	SaveReference(ctx context.Context, ref Reference) error
}
