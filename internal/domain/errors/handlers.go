package errors

// ItemError reports the failure of one item inside a batch operation.
type ItemError struct {
	ID      string `json:"id"`
	Intent  string `json:"intent,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewItemError translates err into a per-item report.
func NewItemError(id string, err error) ItemError {
	return ItemError{
		ID:      id,
		Code:    CodeOf(err),
		Message: MessageOf(err),
	}
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "PAGE_NOT_FOUND"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// Response is the unified JSON envelope written by the HTTP error handler.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
