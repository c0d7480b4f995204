package repository

import (
	"context"
	stderrors "errors"
	"time"

	"gorm.io/gorm"

	"complaintbox/internal/domain/complaint"
	"complaintbox/internal/infrastructure/persistence/mappers"
	"complaintbox/internal/infrastructure/persistence/models"
	"complaintbox/internal/shared/errors"
	"complaintbox/internal/shared/logger"
)

// ComplaintRepository is the gorm-backed record store for complaints.
// After each successful mutation it publishes a coarse change event so
// live dashboard sessions can reconcile. Event publishing is best-effort
// and never fails the write.
type ComplaintRepository struct {
	db        *gorm.DB
	mapper    mappers.ComplaintMapper
	publisher complaint.ChangePublisher
	logger    logger.Interface
}

func NewComplaintRepository(db *gorm.DB, publisher complaint.ChangePublisher, log logger.Interface) *ComplaintRepository {
	return &ComplaintRepository{
		db:        db,
		mapper:    mappers.NewComplaintMapper(),
		publisher: publisher,
		logger:    log,
	}
}

func (r *ComplaintRepository) List(ctx context.Context) ([]*complaint.Complaint, error) {
	var rows []models.ComplaintModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, errors.NewStoreError("failed to list complaints", err.Error())
	}

	complaints := make([]*complaint.Complaint, 0, len(rows))
	for i := range rows {
		c, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, errors.NewStoreError("failed to map complaint", err.Error())
		}
		complaints = append(complaints, c)
	}

	return complaints, nil
}

func (r *ComplaintRepository) FindByID(ctx context.Context, id uint) (*complaint.Complaint, error) {
	var row models.ComplaintModel
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("complaint not found")
		}
		return nil, errors.NewStoreError("failed to find complaint", err.Error())
	}

	return r.mapper.ToDomain(&row)
}

func (r *ComplaintRepository) Create(ctx context.Context, c *complaint.Complaint) error {
	model := r.mapper.ToModel(c)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return errors.NewStoreError("failed to create complaint", err.Error())
	}

	if err := c.SetID(model.ID); err != nil {
		return errors.NewStoreError("failed to assign complaint ID", err.Error())
	}

	r.publish(ctx, complaint.EventInsert)
	return nil
}

// SetReadState updates the read-state flag. Idempotent: re-setting an
// already-read record succeeds without complaint.
func (r *ComplaintRepository) SetReadState(ctx context.Context, id uint, read bool) error {
	result := r.db.WithContext(ctx).
		Model(&models.ComplaintModel{}).
		Where("id = ?", id).
		Update("is_new", !read)

	if result.Error != nil {
		return errors.NewStoreError("failed to update read state", result.Error.Error())
	}

	// RowsAffected may be 0 when the value is unchanged; that is the
	// idempotent no-op case, not an error.

	r.publish(ctx, complaint.EventUpdate)
	return nil
}

func (r *ComplaintRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ComplaintModel{}, id)
	if result.Error != nil {
		return errors.NewStoreError("failed to delete complaint", result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("complaint not found")
	}

	r.publish(ctx, complaint.EventDelete)
	return nil
}

func (r *ComplaintRepository) publish(ctx context.Context, eventType complaint.EventType) {
	if r.publisher == nil {
		return
	}

	event := complaint.ChangeEvent{
		Type:      eventType,
		Table:     models.ComplaintModel{}.TableName(),
		Timestamp: time.Now().UTC().Unix(),
	}

	if err := r.publisher.Publish(ctx, event); err != nil {
		r.logger.Warnw("failed to publish change event",
			"event_type", eventType,
			"error", err,
		)
	}
}
