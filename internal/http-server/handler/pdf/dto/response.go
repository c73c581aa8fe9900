package dto

// ErrorResponse is the JSON envelope for every failed request. Details is
// only present for multi-field validation failures.
type ErrorResponse struct {
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
