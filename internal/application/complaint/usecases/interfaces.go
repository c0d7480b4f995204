package usecases

import (
	"context"
	"io"

	"complaintbox/internal/domain/complaint"
)

// Notifier alerts the administrator about a new complaint. Invoked in
// the background; failures never affect the submission.
type Notifier interface {
	NotifyNewComplaint(c *complaint.Complaint) error
}

// AttachmentManager covers the blob side of the complaint lifecycle.
type AttachmentManager interface {
	Attach(ctx context.Context, filename string, size int64, r io.Reader) (string, error)
	Detach(ctx context.Context, attachmentURL *string)
}
