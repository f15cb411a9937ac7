package extract

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockExtractor is a mock implementation of Extractor using testify/mock.
type MockExtractor struct {
	mock.Mock
}

func (m *MockExtractor) Extract(ctx context.Context, f File) (Result, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(Result), args.Error(1)
}

// MockOCR is a mock implementation of OCR using testify/mock.
type MockOCR struct {
	mock.Mock
}

func (m *MockOCR) Recognize(ctx context.Context, img []byte) (string, error) {
	args := m.Called(ctx, img)
	return args.String(0), args.Error(1)
}
