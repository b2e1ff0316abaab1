package response

// StandardApiResponse is the envelope every JSON endpoint answers with.
type StandardApiResponse struct {
	Status     string      `json:"status"`           // "success" or "error"
	StatusCode int         `json:"status_code"`      // HTTP status code
	Code       string      `json:"code,omitempty"`   // Machine-readable error identifier
	Message    string      `json:"message"`          // Human-readable message
	Data       interface{} `json:"data,omitempty"`   // Payload for success
	Errors     interface{} `json:"errors,omitempty"` // Validation or error details
}

// Machine-readable error identifiers. API consumers branch on these, never on
// message text, and the status pairing (401 unauthenticated / 403 forbidden)
// is fixed across every endpoint.
const (
	CodeUnauthenticated    = "unauthenticated"
	CodeForbidden          = "forbidden"
	CodeInvalidCredentials = "invalid_credentials"
	CodeValidationError    = "validation_error"
	CodeNotFound           = "not_found"
	CodeConflict           = "conflict"
	CodeInternalError      = "internal_error"
)
