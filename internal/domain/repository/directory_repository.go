package repository

import (
	"context"

	"github.com/dispenser-locator/internal/domain"
)

// DirectoryRepository определяет методы для получения справочника точек обслуживания
type DirectoryRepository interface {
	// FetchDirectory загружает актуальный справочник с endpoint из конфигурации.
	// Каждый вызов выполняет один запрос, результат не кешируется.
	FetchDirectory(ctx context.Context, cfg domain.ProviderConfig) ([]domain.ServicePoint, error)
}
