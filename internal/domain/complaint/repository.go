package complaint

import "context"

// Repository is the record-store contract the core depends on. The
// backing store owns identity and creation timestamps; the core only
// consumes this capability set.
type Repository interface {
	// List returns all complaints, newest first. Used for full-snapshot
	// reconciliation.
	List(ctx context.Context) ([]*Complaint, error)

	// FindByID returns a single complaint by its store-assigned ID.
	FindByID(ctx context.Context, id uint) (*Complaint, error)

	// Create persists a new complaint and assigns its ID.
	Create(ctx context.Context, c *Complaint) error

	// SetReadState updates the read-state flag. Idempotent: setting an
	// already-read record to read again is a no-op success.
	SetReadState(ctx context.Context, id uint, read bool) error

	// Delete removes a complaint. Terminal.
	Delete(ctx context.Context, id uint) error
}
