package handler

import (
	"encoding/json"
	"sort"

	"github.com/dispenser-locator/internal/domain"
	"github.com/dispenser-locator/internal/pkg/errors"
	"github.com/dispenser-locator/internal/pkg/utils"
	"github.com/dispenser-locator/internal/usecase"
	"github.com/dispenser-locator/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// queryFunc выполняет запрос и возвращает документ-результат
type queryFunc func(c *fiber.Ctx, req dto.QueryRequest) (interface{}, error)

// queryType - зарегистрированный тип запроса
type queryType struct {
	label     string
	mimeTypes []string
	fields    []dto.QueryField
	handle    queryFunc
}

// QueryHandler - обработчик запросов провайдера. Типы запросов сопоставляются
// с обработчиками через явную таблицу.
type QueryHandler struct {
	closestUC  *usecase.ClosestDispenserUseCase
	statusUC   *usecase.StatusUseCase
	queryTypes map[string]queryType
	logger     *zap.Logger
}

// NewQueryHandler - создание нового QueryHandler
func NewQueryHandler(
	closestUC *usecase.ClosestDispenserUseCase,
	statusUC *usecase.StatusUseCase,
	logger *zap.Logger,
) *QueryHandler {
	h := &QueryHandler{
		closestUC: closestUC,
		statusUC:  statusUC,
		logger:    logger,
	}

	h.queryTypes = map[string]queryType{
		domain.ClosestDispenserQueryType: {
			label:     "Catnip: find closest dispenser",
			mimeTypes: []string{domain.CellsMIMEType},
			fields: []dto.QueryField{
				{Name: "latitude", Label: "Latitude (must be a floating point number)", Placeholder: "52.3740300"},
				{Name: "longitude", Label: "Longitude (must be a floating point number)", Placeholder: "4.8896900"},
			},
			handle: h.closestDispenser,
		},
		domain.StatusQueryType: {
			mimeTypes: []string{domain.StatusMIMEType},
			fields:    []dto.QueryField{},
			handle:    h.status,
		},
	}

	return h
}

// ListQueryTypes godoc
// @Summary Список типов запросов
// @Description Возвращает зарегистрированные типы запросов, их поля и MIME типы результатов
// @Tags Queries
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.QueryTypeResponse}
// @Router /api/v1/queries [get]
func (h *QueryHandler) ListQueryTypes(c *fiber.Ctx) error {
	names := make([]string, 0, len(h.queryTypes))
	for name := range h.queryTypes {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]dto.QueryTypeResponse, 0, len(names))
	for _, name := range names {
		qt := h.queryTypes[name]
		result = append(result, dto.QueryTypeResponse{
			Type:               name,
			Label:              qt.label,
			SupportedMimeTypes: qt.mimeTypes,
			Fields:             qt.fields,
		})
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result),
	})
}

// Invoke godoc
// @Summary Выполнение запроса
// @Description Выполняет запрос указанного типа. Для x-closest-dispenser возвращает документ с одной текстовой ячейкой.
// @Tags Queries
// @Accept json
// @Produce json
// @Param type path string true "Тип запроса" Enums(x-closest-dispenser, status)
// @Param request body dto.QueryRequest true "Данные запроса и конфигурация провайдера"
// @Success 200 {object} domain.Document
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/queries/{type} [post]
func (h *QueryHandler) Invoke(c *fiber.Ctx) error {
	name := c.Params("type")
	qt, ok := h.queryTypes[name]
	if !ok {
		return utils.SendError(c, errors.UnsupportedQueryError(name))
	}

	var req dto.QueryRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return utils.SendError(c, errors.InvalidRequestError("Invalid request body: %v", err))
		}
	}

	result, err := qt.handle(c, req)
	if err != nil {
		h.logger.Warn("Query failed",
			zap.String("query_type", name),
			zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendDocument(c, qt.mimeTypes[0], result)
}

// GetStatus godoc
// @Summary Статус провайдера
// @Description Возвращает версию и время сборки
// @Tags Status
// @Produce json
// @Success 200 {object} domain.ProviderStatus
// @Router /api/v1/status [get]
func (h *QueryHandler) GetStatus(c *fiber.Ctx) error {
	return utils.SendDocument(c, domain.StatusMIMEType, h.statusUC.GetStatus())
}

func (h *QueryHandler) closestDispenser(c *fiber.Ctx, req dto.QueryRequest) (interface{}, error) {
	var query dto.ClosestDispenserRequest
	if len(req.QueryData) > 0 {
		if err := json.Unmarshal(req.QueryData, &query); err != nil {
			return nil, errors.DeserializationError("Invalid query data: %v", err).WithCause(err)
		}
	}

	return h.closestUC.FindClosest(c.UserContext(), query, req.Config)
}

func (h *QueryHandler) status(_ *fiber.Ctx, _ dto.QueryRequest) (interface{}, error) {
	return h.statusUC.GetStatus(), nil
}
