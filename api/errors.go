package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/sivajeyabalan/blogapi/auth"
	"github.com/sivajeyabalan/blogapi/shared"
)

type errorResponseBody struct {
	Message string `json:"message"`
}

// handleApiError turns a failed authorized response into an ApiError. A 401
// means the token is no longer valid: the session is cleared right here, in
// one place, so every call site inherits the forced sign-out without its own
// handling. The next guarded command then redirects to sign-in.
func handleApiError(r *http.Response, errBody []byte) *shared.ApiError {
	if r.StatusCode == http.StatusUnauthorized {
		auth.SignOut()
		return &shared.ApiError{
			Type:   shared.ApiErrorTypeExpiredToken,
			Status: r.StatusCode,
			Msg:    "session expired",
		}
	}

	return apiError(r, errBody)
}

// apiError decodes the server error body without the 401 policy. Used
// directly by the unauthenticated endpoints, where a 401 just means the
// credentials were wrong.
func apiError(r *http.Response, errBody []byte) *shared.ApiError {
	msg := strings.TrimSpace(string(errBody))

	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		var body errorResponseBody
		if err := json.Unmarshal(errBody, &body); err == nil && body.Message != "" {
			msg = body.Message
		}
	}

	return &shared.ApiError{
		Type:   shared.ApiErrorTypeOther,
		Status: r.StatusCode,
		Msg:    msg,
	}
}

func networkError(err error) *shared.ApiError {
	return &shared.ApiError{
		Type: shared.ApiErrorTypeNetwork,
		Msg:  fmt.Sprintf("error sending request: %v", err),
	}
}
