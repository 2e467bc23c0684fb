package directory

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/dispenser-locator/internal/domain"
	"github.com/dispenser-locator/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDirectory_Sample(t *testing.T) {
	points, err := DecodeDirectory([]byte(sampleDirectory))
	require.NoError(t, err)
	require.Len(t, points, 1)

	expected := domain.ServicePoint{
		ID:       1,
		Name:     "Leanne Graham",
		Username: "Bret",
		Email:    "Sincere@april.biz",
		Address: domain.Address{
			Street:  "Kulas Light",
			Suite:   "Apt. 556",
			City:    "Gwenborough",
			Zipcode: "92998-3874",
			Geocode: domain.GeoLocation{Latitude: -37.3159, Longitude: 81.1496},
		},
		Phone:   "1-770-736-8031 x56442",
		Website: "hildegard.org",
		Company: domain.Company{
			Name:        "Romaguera-Crona",
			CatchPhrase: "Multi-layered client-server neural-net",
			BS:          "harness real-time e-markets",
		},
	}
	assert.Equal(t, expected, points[0])
}

func TestDecodeDirectory_RoundTrip(t *testing.T) {
	original := []domain.ServicePoint{
		{
			ID:       7,
			Name:     "Depot A",
			Username: "depot-a",
			Email:    "a@example.com",
			Address: domain.Address{
				Street:  "Damrak",
				Suite:   "1",
				City:    "Amsterdam",
				Zipcode: "1012 LG",
				Geocode: domain.GeoLocation{Latitude: 52.37403, Longitude: 4.88969},
			},
			Phone:   "+31 20 000 0000",
			Website: "example.com",
			Company: domain.Company{Name: "Catnip", CatchPhrase: "Always near", BS: "dispense"},
		},
		{ID: 8, Name: "Empty fields"},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	decoded, err := DecodeDirectory(data)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestDecodeDirectory_Empty(t *testing.T) {
	points, err := DecodeDirectory([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestDecodeDirectory_Errors(t *testing.T) {
	valid := sampleDirectory

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{
			name:    "malformed json",
			body:    `[{"id": 1,`,
			message: "Could not deserialize payload",
		},
		{
			name:    "object instead of array",
			body:    `{}`,
			message: "Could not deserialize payload",
		},
		{
			name:    "non numeric coordinate",
			body:    strings.Replace(valid, `"-37.3159"`, `"south"`, 1),
			message: "invalid coordinate",
		},
		{
			name:    "non finite coordinate",
			body:    strings.Replace(valid, `"-37.3159"`, `"NaN"`, 1),
			message: "not a finite number",
		},
		{
			name:    "hex coordinate",
			body:    strings.Replace(valid, `"-37.3159"`, `"0x1p0"`, 1),
			message: "not a decimal number",
		},
		{
			name:    "coordinate with digit separators",
			body:    strings.Replace(valid, `"-37.3159"`, `"-37_3159"`, 1),
			message: "not a decimal number",
		},
		{
			name:    "missing coordinate",
			body:    strings.Replace(valid, `"lat": "-37.3159", `, ``, 1),
			message: "address.geo.lat: is required",
		},
		{
			name:    "missing name",
			body:    strings.Replace(valid, `"name": "Leanne Graham",`, ``, 1),
			message: "record 0: name: is required",
		},
		{
			name:    "missing company",
			body:    `[{"id":1,"name":"n","username":"u","email":"e","phone":"p","website":"w","address":{"street":"s","suite":"s","city":"c","zipcode":"z","geo":{"lat":1,"lng":2}}}]`,
			message: "company: is required",
		},
		{
			name:    "negative id",
			body:    strings.Replace(valid, `"id": 1,`, `"id": -1,`, 1),
			message: "id: must be at least 0",
		},
		{
			name:    "one bad record fails the whole directory",
			body:    `[` + strings.Trim(valid, "[]\n ") + `, {"id": 2}]`,
			message: "record 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, err := DecodeDirectory([]byte(tt.body))
			assert.Nil(t, points)
			appErr := requireAppError(t, err, errors.CodeDeserialization)
			assert.Contains(t, appErr.Message, tt.message)
		})
	}
}

func TestCoordinate_UnmarshalJSON(t *testing.T) {
	var c coordinate

	require.NoError(t, json.Unmarshal([]byte(`"-37.3159"`), &c))
	assert.Equal(t, coordinate(-37.3159), c)

	require.NoError(t, json.Unmarshal([]byte(`81.1496`), &c))
	assert.Equal(t, coordinate(81.1496), c)

	assert.Error(t, json.Unmarshal([]byte(`true`), &c))
	assert.Error(t, json.Unmarshal([]byte(`""`), &c))
}
