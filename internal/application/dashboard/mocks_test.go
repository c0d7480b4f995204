package dashboard

import (
	"context"
	"sync"

	"complaintbox/internal/domain/complaint"
	"complaintbox/internal/shared/logger"
)

type mockLister struct {
	ExecuteFunc func(ctx context.Context) ([]*complaint.Complaint, error)
}

func (m *mockLister) Execute(ctx context.Context) ([]*complaint.Complaint, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx)
	}
	return nil, nil
}

type mockMarker struct {
	ExecuteFunc func(ctx context.Context, id uint) error
}

func (m *mockMarker) Execute(ctx context.Context, id uint) error {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, id)
	}
	return nil
}

type mockDeleter struct {
	ExecuteFunc func(ctx context.Context, id uint) error
}

func (m *mockDeleter) Execute(ctx context.Context, id uint) error {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, id)
	}
	return nil
}

// mockFeed captures the subscriber handler so tests can inject change
// events directly.
type mockFeed struct {
	mu      sync.Mutex
	handler func(complaint.ChangeEvent)
	closed  int
}

func (f *mockFeed) Subscribe(_ context.Context, handler func(complaint.ChangeEvent)) (complaint.Subscription, error) {
	f.mu.Lock()
	f.handler = handler
	f.mu.Unlock()
	return &mockSubscription{feed: f}, nil
}

func (f *mockFeed) emit(event complaint.ChangeEvent) {
	f.mu.Lock()
	handler := f.handler
	f.mu.Unlock()
	if handler != nil {
		handler(event)
	}
}

type mockSubscription struct {
	feed *mockFeed
	once sync.Once
}

func (s *mockSubscription) Close() {
	s.once.Do(func() {
		s.feed.mu.Lock()
		s.feed.closed++
		s.feed.mu.Unlock()
	})
}

type mockLogger struct{}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
