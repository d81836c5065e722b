package notifications

import (
	"context"

	"github.com/stretchr/testify/mock"

	"printfeed/models"
)

// MockNotificationsUseCase is a mock implementation of the
// usecases.NotificationsUseCaseInterface
type MockNotificationsUseCase struct {
	mock.Mock
}

func (m *MockNotificationsUseCase) ProcessMessageEvent(ctx context.Context, event models.RawMessageEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
