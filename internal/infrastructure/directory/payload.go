package directory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dispenser-locator/internal/domain"
	"github.com/dispenser-locator/internal/pkg/errors"
	"github.com/dispenser-locator/internal/pkg/utils"
	"github.com/dispenser-locator/internal/pkg/validator"
)

// Ответ справочника. Все поля обязательны, поэтому используются указатели:
// отсутствующее поле остаётся nil и не проходит валидацию.
type servicePointPayload struct {
	ID       *int64          `json:"id" validate:"required,min=0"`
	Name     *string         `json:"name" validate:"required"`
	Username *string         `json:"username" validate:"required"`
	Email    *string         `json:"email" validate:"required"`
	Address  *addressPayload `json:"address" validate:"required"`
	Phone    *string         `json:"phone" validate:"required"`
	Website  *string         `json:"website" validate:"required"`
	Company  *companyPayload `json:"company" validate:"required"`
}

type addressPayload struct {
	Street  *string     `json:"street" validate:"required"`
	Suite   *string     `json:"suite" validate:"required"`
	City    *string     `json:"city" validate:"required"`
	Zipcode *string     `json:"zipcode" validate:"required"`
	Geo     *geoPayload `json:"geo" validate:"required"`
}

type geoPayload struct {
	Lat *coordinate `json:"lat" validate:"required"`
	Lng *coordinate `json:"lng" validate:"required"`
}

type companyPayload struct {
	Name        *string `json:"name" validate:"required"`
	CatchPhrase *string `json:"catchPhrase" validate:"required"`
	BS          *string `json:"bs" validate:"required"`
}

// coordinate принимает как JSON число, так и число в строке ("-37.3159")
type coordinate float64

func (c *coordinate) UnmarshalJSON(data []byte) error {
	raw := string(bytes.TrimSpace(data))
	if len(raw) > 0 && raw[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	}

	value, err := utils.ParseCoordinate(raw)
	if err != nil {
		return fmt.Errorf("invalid coordinate %s: %w", string(data), err)
	}

	*c = coordinate(value)
	return nil
}

// DecodeDirectory разбирает тело ответа справочника. Ошибка в любой записи
// отклоняет весь справочник.
func DecodeDirectory(body []byte) ([]domain.ServicePoint, error) {
	var payload []servicePointPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, deserializationError(err)
	}

	points := make([]domain.ServicePoint, 0, len(payload))
	for i := range payload {
		if err := validator.Validate(&payload[i]); err != nil {
			return nil, deserializationError(fmt.Errorf("record %d: %s", i, validator.Describe(err)))
		}
		points = append(points, payload[i].toDomain())
	}

	return points, nil
}

func deserializationError(err error) *errors.AppError {
	return errors.DeserializationError("Could not deserialize payload: %v", err).
		WithCause(err).
		WithStatus(http.StatusBadGateway)
}

func (p *servicePointPayload) toDomain() domain.ServicePoint {
	return domain.ServicePoint{
		ID:       *p.ID,
		Name:     *p.Name,
		Username: *p.Username,
		Email:    *p.Email,
		Address: domain.Address{
			Street:  *p.Address.Street,
			Suite:   *p.Address.Suite,
			City:    *p.Address.City,
			Zipcode: *p.Address.Zipcode,
			Geocode: domain.GeoLocation{
				Latitude:  float64(*p.Address.Geo.Lat),
				Longitude: float64(*p.Address.Geo.Lng),
			},
		},
		Phone:   *p.Phone,
		Website: *p.Website,
		Company: domain.Company{
			Name:        *p.Company.Name,
			CatchPhrase: *p.Company.CatchPhrase,
			BS:          *p.Company.BS,
		},
	}
}
