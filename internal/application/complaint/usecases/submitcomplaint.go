package usecases

import (
	"context"
	"io"
	"time"

	"complaintbox/internal/domain/complaint"
	"complaintbox/internal/shared/errors"
	"complaintbox/internal/shared/goroutine"
	"complaintbox/internal/shared/logger"
)

type AttachmentUpload struct {
	Filename string
	Size     int64
	Reader   io.Reader
}

type SubmitComplaintCommand struct {
	Name       string
	Email      string
	Subject    string
	Body       string
	Attachment *AttachmentUpload
}

type SubmitComplaintResult struct {
	ComplaintID   uint
	AttachmentURL *string
	CreatedAt     time.Time
}

// SubmitComplaintUseCase accepts an anonymous submission. The attachment
// blob is uploaded before the record is created; if record creation then
// fails the blob is left stranded rather than risking a record that
// points at nothing.
type SubmitComplaintUseCase struct {
	complaintRepo complaint.Repository
	attachments   AttachmentManager
	notifier      Notifier
	logger        logger.Interface
}

func NewSubmitComplaintUseCase(
	complaintRepo complaint.Repository,
	attachments AttachmentManager,
	notifier Notifier,
	logger logger.Interface,
) *SubmitComplaintUseCase {
	return &SubmitComplaintUseCase{
		complaintRepo: complaintRepo,
		attachments:   attachments,
		notifier:      notifier,
		logger:        logger,
	}
}

func (uc *SubmitComplaintUseCase) Execute(ctx context.Context, cmd SubmitComplaintCommand) (*SubmitComplaintResult, error) {
	var attachmentURL *string
	if cmd.Attachment != nil {
		url, err := uc.attachments.Attach(ctx, cmd.Attachment.Filename, cmd.Attachment.Size, cmd.Attachment.Reader)
		if err != nil {
			uc.logger.Warnw("attachment rejected", "error", err)
			return nil, err
		}
		attachmentURL = &url
	}

	newComplaint, err := complaint.NewComplaint(cmd.Name, cmd.Email, cmd.Subject, cmd.Body, attachmentURL)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.complaintRepo.Create(ctx, newComplaint); err != nil {
		uc.logger.Errorw("failed to create complaint", "error", err)
		return nil, err
	}

	uc.logger.Infow("complaint submitted",
		"complaint_id", newComplaint.ID(),
		"has_attachment", newComplaint.HasAttachment(),
	)

	if uc.notifier != nil {
		goroutine.SafeGo(uc.logger, "complaint-notify", func() {
			if err := uc.notifier.NotifyNewComplaint(newComplaint); err != nil {
				uc.logger.Warnw("failed to send complaint notification",
					"complaint_id", newComplaint.ID(),
					"error", err,
				)
			}
		})
	}

	return &SubmitComplaintResult{
		ComplaintID:   newComplaint.ID(),
		AttachmentURL: attachmentURL,
		CreatedAt:     newComplaint.CreatedAt(),
	}, nil
}
