package dto

// ErrorResponse HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RowError identifies one failed row in a multi-row operation (pillar sync
// reports per-row results instead of aborting the whole batch).
type RowError struct {
	ID    string `json:"id,omitempty"`
	Title string `json:"title,omitempty"`
	Error string `json:"error"`
}
