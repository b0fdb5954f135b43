package models

// ErrorResponse is the standard error body for every endpoint. Details is only
// present on validation failures and maps field name to message.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}
