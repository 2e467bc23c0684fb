package usecase

import "github.com/dispenser-locator/internal/domain"

// StatusUseCase возвращает статус провайдера с метаданными сборки
type StatusUseCase struct {
	version string
	builtAt string
}

func NewStatusUseCase(version, builtAt string) *StatusUseCase {
	return &StatusUseCase{
		version: version,
		builtAt: builtAt,
	}
}

func (uc *StatusUseCase) GetStatus() domain.ProviderStatus {
	return domain.ProviderStatus{
		Success: true,
		Version: uc.version,
		BuiltAt: uc.builtAt,
	}
}
