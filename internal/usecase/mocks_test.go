package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dispenser-locator/internal/domain"
)

// MockDirectoryRepository is a mock of DirectoryRepository
type MockDirectoryRepository struct {
	mock.Mock
}

func (m *MockDirectoryRepository) FetchDirectory(ctx context.Context, cfg domain.ProviderConfig) ([]domain.ServicePoint, error) {
	args := m.Called(ctx, cfg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServicePoint), args.Error(1)
}

// MockLookupPublisher is a mock of LookupPublisher
type MockLookupPublisher struct {
	mock.Mock
}

func (m *MockLookupPublisher) PublishLookup(ctx context.Context, event domain.LookupEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
