package usecases

import (
	"context"

	"complaintbox/internal/domain/complaint"
	"complaintbox/internal/shared/logger"
)

// MarkComplaintReadUseCase flips a complaint's read-state flag in the
// store. Idempotent: marking an already-read complaint succeeds.
type MarkComplaintReadUseCase struct {
	complaintRepo complaint.Repository
	logger        logger.Interface
}

func NewMarkComplaintReadUseCase(complaintRepo complaint.Repository, logger logger.Interface) *MarkComplaintReadUseCase {
	return &MarkComplaintReadUseCase{
		complaintRepo: complaintRepo,
		logger:        logger,
	}
}

func (uc *MarkComplaintReadUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.complaintRepo.SetReadState(ctx, id, true); err != nil {
		uc.logger.Errorw("failed to mark complaint as read",
			"complaint_id", id,
			"error", err,
		)
		return err
	}

	uc.logger.Debugw("complaint marked as read", "complaint_id", id)
	return nil
}
