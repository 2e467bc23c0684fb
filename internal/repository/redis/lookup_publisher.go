package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dispenser-locator/internal/domain"
	"github.com/dispenser-locator/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type lookupPublisher struct {
	client *redis.Client
	stream string
	logger *zap.Logger
}

// NewLookupPublisher создает публикатор событий поиска в Redis Stream
func NewLookupPublisher(client *redis.Client, stream string, logger *zap.Logger) repository.LookupPublisher {
	if stream == "" {
		stream = domain.StreamDispenserLookups
	}
	return &lookupPublisher{
		client: client,
		stream: stream,
		logger: logger,
	}
}

// PublishLookup публикует событие в стрим, JSON кладётся в поле "data"
func (p *lookupPublisher) PublishLookup(ctx context.Context, event domain.LookupEvent) error {
	jsonData, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to marshal lookup event",
			zap.String("stream", p.stream),
			zap.Error(err))
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	result, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]interface{}{
			"data": string(jsonData),
		},
	}).Result()

	if err != nil {
		p.logger.Error("Failed to publish to stream",
			zap.String("stream", p.stream),
			zap.Error(err))
		return fmt.Errorf("failed to publish to stream: %w", err)
	}

	p.logger.Debug("Lookup event published",
		zap.String("stream", p.stream),
		zap.String("event_id", event.ID.String()),
		zap.String("message_id", result))
	return nil
}
