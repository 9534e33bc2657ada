package testdrive

import "context"

// Repository defines the interface for test drive request data access.
// Requests are never deleted, only cancelled via status update.
type Repository interface {
	Create(ctx context.Context, r *Request) error
	Get(ctx context.Context, id string) (*Request, error)
	// List returns all requests newest first.
	List(ctx context.Context) ([]*Request, error)
	Update(ctx context.Context, id string, changes map[string]any) (*Request, error)
}
