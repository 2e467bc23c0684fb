package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/dispenser-locator/internal/domain"
	"github.com/dispenser-locator/internal/domain/repository"
	"github.com/dispenser-locator/internal/pkg/errors"
	"github.com/dispenser-locator/internal/pkg/utils"
	"github.com/dispenser-locator/internal/usecase/dto"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotFoundMessage - текст результата для пустого справочника
const NotFoundMessage = "No dispenser was found!"

const resultTemplate = "The closest dispenser to you (%s, %s) is\n%s (%s)\n\t%s %s\n\t%s %s"

// ClosestDispenserUseCase ищет ближайший к координате дозатор
type ClosestDispenserUseCase struct {
	directoryRepo repository.DirectoryRepository
	publisher     repository.LookupPublisher
	logger        *zap.Logger
	now           func() time.Time
}

// NewClosestDispenserUseCase создает use case. publisher может быть nil,
// тогда события поиска не публикуются.
func NewClosestDispenserUseCase(
	directoryRepo repository.DirectoryRepository,
	publisher repository.LookupPublisher,
	logger *zap.Logger,
) *ClosestDispenserUseCase {
	return &ClosestDispenserUseCase{
		directoryRepo: directoryRepo,
		publisher:     publisher,
		logger:        logger,
		now:           time.Now,
	}
}

// FindClosest разбирает координаты, загружает справочник и формирует документ
// с ближайшей точкой. Ошибки справочника возвращаются без изменений.
func (uc *ClosestDispenserUseCase) FindClosest(
	ctx context.Context,
	req dto.ClosestDispenserRequest,
	cfg domain.ProviderConfig,
) (*domain.Document, error) {
	target, err := parseTarget(req)
	if err != nil {
		return nil, err
	}

	points, err := uc.directoryRepo.FetchDirectory(ctx, cfg)
	if err != nil {
		uc.logger.Warn("Failed to fetch directory", zap.Error(err))
		return nil, err
	}

	match, found := domain.Closest(target, points)

	uc.logger.Debug("Closest dispenser resolved",
		zap.Int("points_count", len(points)),
		zap.Bool("found", found),
		zap.Float64("distance", match.Distance))

	uc.publishLookup(ctx, req, match, found)

	return domain.NewTextDocument(RenderResult(req, match, found)), nil
}

// RenderResult формирует текст результата. Координаты выводятся в том виде,
// в котором их передал клиент.
func RenderResult(req dto.ClosestDispenserRequest, match domain.Match, found bool) string {
	if !found {
		return NotFoundMessage
	}

	address := match.Point.Address
	return fmt.Sprintf(resultTemplate,
		req.Latitude,
		req.Longitude,
		match.Point.Name,
		utils.FormatDistance(match.Distance),
		address.Street,
		address.Suite,
		address.City,
		address.Zipcode,
	)
}

// parseTarget разбирает широту, затем долготу; первая ошибка прерывает разбор
func parseTarget(req dto.ClosestDispenserRequest) (domain.GeoLocation, error) {
	latitude, err := utils.ParseCoordinate(req.Latitude)
	if err != nil {
		return domain.GeoLocation{}, errors.DeserializationError("latitude is an invalid number: %v", err).
			WithCause(err).
			WithDetails(map[string]interface{}{"field": "latitude", "value": req.Latitude})
	}

	longitude, err := utils.ParseCoordinate(req.Longitude)
	if err != nil {
		return domain.GeoLocation{}, errors.DeserializationError("longitude is an invalid number: %v", err).
			WithCause(err).
			WithDetails(map[string]interface{}{"field": "longitude", "value": req.Longitude})
	}

	return domain.GeoLocation{Latitude: latitude, Longitude: longitude}, nil
}

// publishLookup отправляет событие о поиске. Ошибка публикации не влияет на результат.
func (uc *ClosestDispenserUseCase) publishLookup(
	ctx context.Context,
	req dto.ClosestDispenserRequest,
	match domain.Match,
	found bool,
) {
	if uc.publisher == nil {
		return
	}

	event := domain.LookupEvent{
		ID:         uuid.New(),
		QueryType:  domain.ClosestDispenserQueryType,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Found:      found,
		ResolvedAt: uc.now().UTC(),
	}
	if found {
		event.Name = match.Point.Name
		event.Distance = utils.FormatDistance(match.Distance)
	}

	if err := uc.publisher.PublishLookup(ctx, event); err != nil {
		uc.logger.Warn("Failed to publish lookup event",
			zap.String("event_id", event.ID.String()),
			zap.Error(err))
	}
}
