package pkg

// AppError is the HTTP-facing error envelope used by all handlers.
//
// Code is a stable machine-readable identifier; Message is safe to render
// in a UI. Err keeps the underlying cause for logs and is never serialized.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPError is the JSON body returned to clients.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ToHTTPError strips the internal cause, leaving only the stable code and
// the user-facing message.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}

// NewDomainError wraps an underlying cause with a stable code.
func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

// NewDomainErrorSimple builds an AppError without an underlying cause.
func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}
