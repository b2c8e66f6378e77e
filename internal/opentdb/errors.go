package opentdb

import "fmt"

// Response codes returned by the API in the response_code field.
const (
	CodeSuccess          = 0
	CodeNoResults        = 1
	CodeInvalidParameter = 2
	CodeTokenNotFound    = 3
	CodeTokenEmpty       = 4
	CodeRateLimit        = 5
)

// codeMessages carries the documented explanation for each response code.
var codeMessages = map[int]string{
	CodeSuccess:          "Success: Returned results successfully.",
	CodeNoResults:        "No Results: Could not return results. The API doesn't have enough questions for your query. (Ex. Asking for 50 Questions in a Category that only has 20.)",
	CodeInvalidParameter: "Invalid Parameter: Contains an invalid parameter. Arguments passed in aren't valid. (Ex. Amount = Five)",
	CodeTokenNotFound:    "Token Not Found: Session Token does not exist.",
	CodeTokenEmpty:       "Token Empty: Session Token has returned all possible questions for the specified query. Resetting the Token is necessary.",
	CodeRateLimit:        "Rate Limit: Too many requests have occurred. Each IP can only access the API once every 5 seconds.",
}

// AuthError indicates session-token acquisition failed. The scraper
// treats it as fatal: without a token the loop never starts.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("acquire session token: %v", e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// APIError is a non-success response_code from the question endpoint.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string { return e.Message }

// Retryable reports whether the condition could clear on a later request
// (rate limiting, an exhausted token, a temporarily thin result set).
// The scraper itself does not retry; callers that want to can use this
// to decide.
func (e *APIError) Retryable() bool {
	switch e.Code {
	case CodeNoResults, CodeTokenEmpty, CodeRateLimit:
		return true
	}
	return false
}

// newAPIError builds an APIError for code, falling back to a generic
// message carrying the HTTP status when the code is undocumented.
func newAPIError(code, httpStatus int) *APIError {
	msg, ok := codeMessages[code]
	if !ok {
		msg = fmt.Sprintf("Unknown Error: HTTP status %d with response_code %d.", httpStatus, code)
	}
	return &APIError{Code: code, Message: msg}
}
