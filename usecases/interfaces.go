package usecases

import (
	"context"

	"printfeed/models"
)

// NotificationsUseCaseInterface defines the interface for the notification
// pipeline operations
type NotificationsUseCaseInterface interface {
	ProcessMessageEvent(ctx context.Context, event models.RawMessageEvent) error
}
