package repository

import (
	"context"

	"github.com/dispenser-locator/internal/domain"
)

// LookupPublisher публикует события о выполненных поисках
type LookupPublisher interface {
	// PublishLookup отправляет событие в стрим
	PublishLookup(ctx context.Context, event domain.LookupEvent) error
}
