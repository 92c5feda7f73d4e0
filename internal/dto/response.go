package dto

// Error kinds returned in the error envelope. Machine readable; the message
// next to them is for humans.
const (
	ErrKindUnauthorized = "unauthorized"
	ErrKindNotFound     = "not_found"
	ErrKindValidation   = "validation_error"
	ErrKindConflict     = "conflict"
	ErrKindInternal     = "internal"
)

// Envelope is the uniform success wrapper. Data is omitted for operations
// with no payload (transaction delete), which keeps every success response
// the same shape.
type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

// ErrorBody carries a machine-readable kind plus a user-presentable message.
type ErrorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// ErrorEnvelope is the uniform failure wrapper.
type ErrorEnvelope struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

// OK wraps a payload in the success envelope.
func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// OKEmpty is the bare success envelope with no payload.
func OKEmpty() Envelope {
	return Envelope{Success: true}
}

// Err builds the failure envelope.
func Err(kind, message string) ErrorEnvelope {
	return ErrorEnvelope{Success: false, Error: ErrorBody{Kind: kind, Message: message}}
}
