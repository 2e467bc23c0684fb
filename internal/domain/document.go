package domain

// Типы запросов провайдера
const (
	ClosestDispenserQueryType = "x-closest-dispenser"
	StatusQueryType           = "status"
)

// MIME типы документов-результатов
const (
	CellsMIMEType  = "application/vnd.fiberplane.cells"
	StatusMIMEType = "application/vnd.fiberplane.provider-status"
)

const (
	TextCellType = "text"
	ResultCellID = "result"
)

// Document - документ-результат запроса, набор ячеек
type Document struct {
	Cells []Cell `json:"cells"`
}

// Cell - текстовая ячейка документа
type Cell struct {
	Type       string       `json:"type"`
	ID         string       `json:"id"`
	Content    string       `json:"content"`
	Formatting []Annotation `json:"formatting"`
}

// Annotation - разметка внутри текста ячейки
type Annotation struct {
	Offset int    `json:"offset"`
	Type   string `json:"type"`
}

// NewTextDocument создает документ из одной текстовой ячейки без разметки
func NewTextDocument(content string) *Document {
	return &Document{
		Cells: []Cell{
			{
				Type:       TextCellType,
				ID:         ResultCellID,
				Content:    content,
				Formatting: []Annotation{},
			},
		},
	}
}

// ProviderStatus - статус провайдера с информацией о сборке
type ProviderStatus struct {
	Success bool   `json:"success"`
	Version string `json:"version"`
	BuiltAt string `json:"builtAt"`
}
