package dto

// QueryTypeResponse - описание зарегистрированного типа запроса
type QueryTypeResponse struct {
	Type               string       `json:"type"`
	Label              string       `json:"label,omitempty"`
	SupportedMimeTypes []string     `json:"supported_mime_types"`
	Fields             []QueryField `json:"fields"`
}

// QueryField - поле формы запроса
type QueryField struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Placeholder string `json:"placeholder,omitempty"`
}
