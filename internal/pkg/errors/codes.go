package errors

import "net/http"

// Code represents an error code with HTTP status and message
type Code struct {
	Code    int    // Business error code
	Status  int    // HTTP status code
	Message string // Error message
}

// Error codes for different modules
const (
	// Success
	Success = 0

	// Common errors (1000-1999)
	ErrInternalServer  = 1000
	ErrInvalidParams   = 1001
	ErrNotFound        = 1002
	ErrTooManyRequests = 1003
	ErrBadRequest      = 1004
	ErrServiceUnavail  = 1005

	// Search errors (2000-2999)
	ErrSearchMissingQuery  = 2000
	ErrSearchInvalidParams = 2001
	ErrSearchUnavailable   = 2002
	ErrSearchRateLimited   = 2003
)

// codeMap maps error codes to their details
var codeMap = map[int]Code{
	Success: {Success, http.StatusOK, "Success"},

	// Common errors
	ErrInternalServer:  {ErrInternalServer, http.StatusInternalServerError, "Internal server error"},
	ErrInvalidParams:   {ErrInvalidParams, http.StatusBadRequest, "Invalid parameters"},
	ErrNotFound:        {ErrNotFound, http.StatusNotFound, "Endpoint not found"},
	ErrTooManyRequests: {ErrTooManyRequests, http.StatusTooManyRequests, "Too many requests"},
	ErrBadRequest:      {ErrBadRequest, http.StatusBadRequest, "Bad request"},
	ErrServiceUnavail:  {ErrServiceUnavail, http.StatusServiceUnavailable, "Service unavailable"},

	// Search errors
	ErrSearchMissingQuery:  {ErrSearchMissingQuery, http.StatusBadRequest, "Missing 'q' parameter"},
	ErrSearchInvalidParams: {ErrSearchInvalidParams, http.StatusBadRequest, "Invalid parameter format"},
	ErrSearchUnavailable:   {ErrSearchUnavailable, http.StatusServiceUnavailable, "Search service temporarily unavailable"},
	ErrSearchRateLimited:   {ErrSearchRateLimited, http.StatusTooManyRequests, "Rate limit exceeded. Try again in a minute."},
}

// GetCode returns the Code for a given error code
func GetCode(code int) Code {
	if c, ok := codeMap[code]; ok {
		return c
	}
	return codeMap[ErrInternalServer]
}

// GetHTTPStatus returns HTTP status for a given error code
func GetHTTPStatus(code int) int {
	return GetCode(code).Status
}

// GetMessage returns the message for a given error code
func GetMessage(code int) string {
	return GetCode(code).Message
}

// IsSuccess checks if the code represents success
func IsSuccess(code int) bool {
	return code == Success
}
