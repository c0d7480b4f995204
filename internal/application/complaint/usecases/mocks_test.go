package usecases

import (
	"context"
	"io"

	"complaintbox/internal/domain/complaint"
	"complaintbox/internal/shared/logger"
)

type mockRepository struct {
	ListFunc         func(ctx context.Context) ([]*complaint.Complaint, error)
	FindByIDFunc     func(ctx context.Context, id uint) (*complaint.Complaint, error)
	CreateFunc       func(ctx context.Context, c *complaint.Complaint) error
	SetReadStateFunc func(ctx context.Context, id uint, read bool) error
	DeleteFunc       func(ctx context.Context, id uint) error
}

func (m *mockRepository) List(ctx context.Context) ([]*complaint.Complaint, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockRepository) FindByID(ctx context.Context, id uint) (*complaint.Complaint, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRepository) Create(ctx context.Context, c *complaint.Complaint) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockRepository) SetReadState(ctx context.Context, id uint, read bool) error {
	if m.SetReadStateFunc != nil {
		return m.SetReadStateFunc(ctx, id, read)
	}
	return nil
}

func (m *mockRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockAttachmentManager struct {
	AttachFunc func(ctx context.Context, filename string, size int64, r io.Reader) (string, error)
	DetachFunc func(ctx context.Context, attachmentURL *string)
}

func (m *mockAttachmentManager) Attach(ctx context.Context, filename string, size int64, r io.Reader) (string, error) {
	if m.AttachFunc != nil {
		return m.AttachFunc(ctx, filename, size, r)
	}
	return "", nil
}

func (m *mockAttachmentManager) Detach(ctx context.Context, attachmentURL *string) {
	if m.DetachFunc != nil {
		m.DetachFunc(ctx, attachmentURL)
	}
}

type mockNotifier struct {
	NotifyNewComplaintFunc func(c *complaint.Complaint) error
}

func (m *mockNotifier) NotifyNewComplaint(c *complaint.Complaint) error {
	if m.NotifyNewComplaintFunc != nil {
		return m.NotifyNewComplaintFunc(c)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
