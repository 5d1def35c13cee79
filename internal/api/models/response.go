package models

// DayInfo describes one weekday for the day picker: identifier, localized
// label and the pin color used for markets on that day.
type DayInfo struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// NeighborhoodInfo describes one neighborhood present in the dataset.
type NeighborhoodInfo struct {
	Slug  string `json:"slug"`
	Label string `json:"label"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
