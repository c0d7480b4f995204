package usecases

import (
	"context"

	"complaintbox/internal/application/complaint/dto"
	"complaintbox/internal/domain/complaint"
	"complaintbox/internal/shared/logger"
)

// ListComplaintsUseCase returns the full complaint set, newest first.
// It backs the dashboard engine's snapshot reloads; filtering and
// pagination are view concerns the engine handles per session, so the
// set comes back whole as domain entities.
type ListComplaintsUseCase struct {
	complaintRepo complaint.Repository
	logger        logger.Interface
}

func NewListComplaintsUseCase(complaintRepo complaint.Repository, logger logger.Interface) *ListComplaintsUseCase {
	return &ListComplaintsUseCase{
		complaintRepo: complaintRepo,
		logger:        logger,
	}
}

func (uc *ListComplaintsUseCase) Execute(ctx context.Context) ([]*complaint.Complaint, error) {
	complaints, err := uc.complaintRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list complaints", "error", err)
		return nil, err
	}
	return complaints, nil
}

// ToDTO maps a domain complaint to its wire form.
func ToDTO(c *complaint.Complaint) dto.ComplaintDTO {
	return dto.ComplaintDTO{
		ID:            c.ID(),
		Name:          c.Name(),
		Email:         c.Email(),
		Subject:       c.Subject(),
		Complaint:     c.Body(),
		IsNew:         c.IsNew(),
		AttachmentURL: c.AttachmentURL(),
		CreatedAt:     c.CreatedAt(),
	}
}
