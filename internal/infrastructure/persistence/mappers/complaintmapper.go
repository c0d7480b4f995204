package mappers

import (
	"time"

	"complaintbox/internal/domain/complaint"
	"complaintbox/internal/infrastructure/persistence/models"
)

type ComplaintMapper struct{}

func NewComplaintMapper() ComplaintMapper {
	return ComplaintMapper{}
}

func (ComplaintMapper) ToModel(c *complaint.Complaint) *models.ComplaintModel {
	return &models.ComplaintModel{
		ID:            c.ID(),
		Name:          c.Name(),
		Email:         c.Email(),
		Subject:       c.Subject(),
		Body:          c.Body(),
		IsNew:         c.IsNew(),
		AttachmentURL: c.AttachmentURL(),
		CreatedAt:     c.CreatedAt().UnixMilli(),
	}
}

func (ComplaintMapper) ToDomain(m *models.ComplaintModel) (*complaint.Complaint, error) {
	return complaint.ReconstructComplaint(
		m.ID,
		m.Name,
		m.Email,
		m.Subject,
		m.Body,
		m.IsNew,
		m.AttachmentURL,
		time.UnixMilli(m.CreatedAt).UTC(),
	)
}
