package domain

type ServerErrorType string

const (
	CommonError     ServerErrorType = "COMMON_ERROR"
	ValidationError ServerErrorType = "VALIDATION_ERROR"
)

type ErrorDetail struct {
	Property string   `json:"property"`
	Messages []string `json:"messages"`
}

// ServerError is the structured failure shape of the backend error contract.
// Failures whose body does not match this shape are never converted into a
// ServerError; they propagate to the caller instead.
type ServerError struct {
	Status    int             `json:"status,omitempty"`
	ErrorType ServerErrorType `json:"errorType"`
	Message   string          `json:"message"`
	Details   []ErrorDetail   `json:"details,omitempty"`
}
