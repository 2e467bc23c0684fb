package domain

// ProviderConfig - конфигурация провайдера, передаётся вместе с каждым запросом
type ProviderConfig struct {
	Endpoint   string `json:"endpoint" validate:"required"`
	Accept     bool   `json:"accept"`
	NumRetries int    `json:"numRetries" validate:"min=0,max=10"`
}
