package domain

import (
	"time"

	"github.com/google/uuid"
)

// StreamDispenserLookups - стрим с результатами поиска ближайшего дозатора
const StreamDispenserLookups = "stream:dispenser:lookups"

// LookupEvent - событие о выполненном поиске. Distance хранится в том же
// текстовом виде, что и в результате, и пуст, если точка не найдена.
type LookupEvent struct {
	ID         uuid.UUID `json:"id"`
	QueryType  string    `json:"query_type"`
	Latitude   string    `json:"latitude"`
	Longitude  string    `json:"longitude"`
	Found      bool      `json:"found"`
	Name       string    `json:"name,omitempty"`
	Distance   string    `json:"distance"`
	ResolvedAt time.Time `json:"resolved_at"`
}
