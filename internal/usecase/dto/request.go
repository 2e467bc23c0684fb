package dto

import (
	"encoding/json"

	"github.com/dispenser-locator/internal/domain"
)

// QueryRequest - тело запроса к провайдеру: данные запроса и конфигурация
type QueryRequest struct {
	QueryData json.RawMessage       `json:"query_data" swaggertype:"object"`
	Config    domain.ProviderConfig `json:"config"`
}

// ClosestDispenserRequest - запрос на поиск ближайшего дозатора.
// Координаты передаются строками и разбираются при выполнении запроса.
type ClosestDispenserRequest struct {
	Latitude  string `json:"latitude" example:"52.3740300"`
	Longitude string `json:"longitude" example:"4.8896900"`
}
