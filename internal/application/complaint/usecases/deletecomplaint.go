package usecases

import (
	"context"

	"complaintbox/internal/domain/complaint"
	"complaintbox/internal/shared/logger"
)

// DeleteComplaintUseCase removes a complaint and its attachment. The
// blob is detached first, best-effort: a blob-store failure is logged
// and never blocks deletion of the record.
type DeleteComplaintUseCase struct {
	complaintRepo complaint.Repository
	attachments   AttachmentManager
	logger        logger.Interface
}

func NewDeleteComplaintUseCase(
	complaintRepo complaint.Repository,
	attachments AttachmentManager,
	logger logger.Interface,
) *DeleteComplaintUseCase {
	return &DeleteComplaintUseCase{
		complaintRepo: complaintRepo,
		attachments:   attachments,
		logger:        logger,
	}
}

func (uc *DeleteComplaintUseCase) Execute(ctx context.Context, id uint) error {
	existing, err := uc.complaintRepo.FindByID(ctx, id)
	if err != nil {
		uc.logger.Warnw("failed to load complaint for deletion",
			"complaint_id", id,
			"error", err,
		)
		return err
	}

	uc.attachments.Detach(ctx, existing.AttachmentURL())

	if err := uc.complaintRepo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete complaint",
			"complaint_id", id,
			"error", err,
		)
		return err
	}

	uc.logger.Infow("complaint deleted", "complaint_id", id)
	return nil
}
