package llm

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	anthropic "github.com/liushuangls/go-anthropic/v2"
	"google.golang.org/api/googleapi"
)

// Kind classifies a provider failure.
type Kind string

const (
	KindAuth       Kind = "authentication"
	KindBadRequest Kind = "bad_request"
	KindUnknown    Kind = "unknown"
)

// Error is a classified provider error.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int
	Cause      error
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (HTTP %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Classify categorizes a provider error so callers can branch on failure shape
// without knowing which SDK produced it.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}

	var classified *Error
	if errors.As(err, &classified) {
		return classified
	}

	var apiErr *anthropic.APIError
	if errors.As(err, &apiErr) {
		kind := KindUnknown
		switch {
		case apiErr.IsAuthenticationErr(), apiErr.IsPermissionErr():
			kind = KindAuth
		case apiErr.IsInvalidRequestErr():
			kind = KindBadRequest
		}
		return &Error{Kind: kind, Message: apiErr.Message, Cause: err}
	}

	var reqErr *anthropic.RequestError
	if errors.As(err, &reqErr) {
		return &Error{
			Kind:       kindForStatus(reqErr.StatusCode),
			Message:    err.Error(),
			StatusCode: reqErr.StatusCode,
			Cause:      err,
		}
	}

	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		return &Error{
			Kind:       kindForStatus(gErr.Code),
			Message:    gErr.Message,
			StatusCode: gErr.Code,
			Cause:      err,
		}
	}

	// Last resort: sniff the message for authentication-shaped failures.
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "api key") || strings.Contains(msg, "unauthorized") || strings.Contains(msg, "authentication") {
		return &Error{Kind: KindAuth, Message: err.Error(), Cause: err}
	}

	return &Error{Kind: KindUnknown, Message: err.Error(), Cause: err}
}

func kindForStatus(code int) Kind {
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return KindAuth
	case http.StatusBadRequest:
		return KindBadRequest
	default:
		return KindUnknown
	}
}

// IsAuthError reports whether err is an authentication failure.
func IsAuthError(err error) bool {
	if err == nil {
		return false
	}
	return Classify(err).Kind == KindAuth
}

// IsBadRequestError reports whether err is a malformed-request failure.
func IsBadRequestError(err error) bool {
	if err == nil {
		return false
	}
	return Classify(err).Kind == KindBadRequest
}
