package errors

import (
	"fmt"
	"net/http"
)

const (
	CodeConfig           = "CONFIG_ERROR"
	CodeDeserialization  = "DESERIALIZATION_ERROR"
	CodeTransport        = "TRANSPORT_ERROR"
	CodeUnsupportedQuery = "UNSUPPORTED_QUERY_TYPE"
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeNotFound         = "NOT_FOUND"
	CodeInternalServer   = "INTERNAL_SERVER_ERROR"
)

// Шаблоны для сравнения через errors.Is. Не модифицировать, для новых ошибок
// использовать конструкторы ниже.
var (
	ErrConfig = New(
		CodeConfig,
		"Invalid provider configuration",
		http.StatusBadRequest,
	)

	ErrDeserialization = New(
		CodeDeserialization,
		"Could not deserialize data",
		http.StatusBadRequest,
	)

	ErrTransport = New(
		CodeTransport,
		"Directory request failed",
		http.StatusBadGateway,
	)

	ErrUnsupportedQuery = New(
		CodeUnsupportedQuery,
		"Unsupported query type",
		http.StatusNotFound,
	)

	ErrInvalidRequest = New(
		CodeInvalidRequest,
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		CodeInternalServer,
		"Internal server error",
		http.StatusInternalServerError,
	)
)

// ConfigError - ошибка конфигурации провайдера (endpoint, numRetries)
func ConfigError(format string, args ...interface{}) *AppError {
	return New(CodeConfig, fmt.Sprintf(format, args...), http.StatusBadRequest)
}

// DeserializationError - ошибка разбора входных данных или ответа справочника
func DeserializationError(format string, args ...interface{}) *AppError {
	return New(CodeDeserialization, fmt.Sprintf(format, args...), http.StatusBadRequest)
}

// TransportError - сетевая ошибка, таймаут или неуспешный статус справочника
func TransportError(format string, args ...interface{}) *AppError {
	return New(CodeTransport, fmt.Sprintf(format, args...), http.StatusBadGateway)
}

// UnsupportedQueryError - запрошен незарегистрированный тип запроса
func UnsupportedQueryError(queryType string) *AppError {
	return New(CodeUnsupportedQuery, fmt.Sprintf("Unsupported query type: %s", queryType), http.StatusNotFound)
}

// InvalidRequestError - некорректное тело запроса
func InvalidRequestError(format string, args ...interface{}) *AppError {
	return New(CodeInvalidRequest, fmt.Sprintf(format, args...), http.StatusBadRequest)
}
