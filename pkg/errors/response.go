package errors

// ErrorResponse is the JSON envelope for 400, 401 and 429 responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// UnexpectedErrorResponse is the JSON envelope for 500 responses.
type UnexpectedErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

// NewUnexpectedErrorResponse builds the 500 envelope around a failure message.
func NewUnexpectedErrorResponse(detail string) UnexpectedErrorResponse {
	return UnexpectedErrorResponse{
		Error:  MsgUnexpected,
		Detail: detail,
	}
}
