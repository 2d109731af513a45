package collabsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error codes returned by the service.
const (
	ErrorCodeInvalidRequest     = "INVALID_REQUEST"
	ErrorCodeProjectNotFound    = "PROJECT_NOT_FOUND"
	ErrorCodeMemberNotFound     = "MEMBER_NOT_FOUND"
	ErrorCodeUnauthorizedMember = "INVITE_UNAUTHORIZED_MEMBER"
	ErrorCodeGenerationFailed   = "INVITE_CODE_GENERATION_FAILED"
	ErrorCodeInvalidInviteCode  = "INVALID_INVITE_CODE"
	ErrorCodeAlreadyInvited     = "INVITE_ALREADY_INVITED"
	ErrorCodeHandleTaken        = "HANDLE_ALREADY_TAKEN"
	ErrorCodeProjectNameTaken   = "PROJECT_NAME_TAKEN"
	ErrorCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrorCodeUnauthorized       = "UNAUTHORIZED"
	ErrorCodeRateLimitExceeded  = "RATE_LIMIT_EXCEEDED"
	ErrorCodeServerError        = "SERVER_ERROR"
)

// APIError is a typed error for non-2xx responses from the service.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s (http %d)", e.Code, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s (http %d)", e.Code, e.StatusCode)
}

// IsCode reports whether err is an APIError carrying the given code.
func IsCode(err error, code string) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Code == code
}

func parseErrorResponse(resp *http.Response, body []byte) error {
	var envelope ErrorResponse
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error == "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       ErrorCodeServerError,
			Message:    http.StatusText(resp.StatusCode),
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Code:       envelope.Error,
		Message:    envelope.Message,
	}
}
