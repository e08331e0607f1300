package mocks

import (
	"context"

	"github.com/eventboard/eventboard-api/internal/platform/imghost"
)

// MockImageService implements imghost.Service for testing
type MockImageService struct {
	// UploadFn allows test cases to mock the Upload behavior
	UploadFn func(ctx context.Context, data []byte) (*imghost.UploadResult, error)

	// DeleteFn allows test cases to mock the Delete behavior
	DeleteFn func(ctx context.Context, deleteURL string) error

	// Default values used when functions aren't explicitly defined
	Result    *imghost.UploadResult
	UploadErr error
	DeleteErr error

	// LastDeleteURL records the most recent Delete call for assertions.
	LastDeleteURL string
}

// Upload implements the imghost.Service interface
func (m *MockImageService) Upload(ctx context.Context, data []byte) (*imghost.UploadResult, error) {
	if m.UploadFn != nil {
		return m.UploadFn(ctx, data)
	}
	if m.UploadErr != nil {
		return nil, m.UploadErr
	}
	return m.Result, nil
}

// Delete implements the imghost.Service interface
func (m *MockImageService) Delete(ctx context.Context, deleteURL string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, deleteURL)
	}
	m.LastDeleteURL = deleteURL
	return m.DeleteErr
}

// Verify interface compliance at compile time.
var _ imghost.Service = (*MockImageService)(nil)
