package common

// ErrorResponse represents the error body returned by every endpoint
type ErrorResponse struct {
	Code    interface{}       `json:"code,omitempty" swaggertype:"integer" example:"2000"`
	Message string            `json:"message,omitempty" example:"Call summary not found"`
	Info    string            `json:"info,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// MessageResponse represents a plain message body
type MessageResponse struct {
	Message string `json:"message" example:"Welcome to CareIn AI Call Summary API"`
}

// HealthResponse represents the liveness body
type HealthResponse struct {
	Status      string `json:"status" example:"ok"`
	Environment string `json:"environment" example:"development"`
}
