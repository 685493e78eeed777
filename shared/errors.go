package shared

type ApiErrorType string

const (
	// credentials rejected or duplicate email on register
	ApiErrorTypeAuth ApiErrorType = "auth"

	// an authorized call returned 401, meaning the session is no longer valid
	ApiErrorTypeExpiredToken ApiErrorType = "expired_token"

	// the request never completed
	ApiErrorTypeNetwork ApiErrorType = "network"

	// blocked client-side before anything was sent
	ApiErrorTypeValidation ApiErrorType = "validation"

	ApiErrorTypeOther ApiErrorType = "other"
)

type ApiError struct {
	Type   ApiErrorType `json:"type"`
	Status int          `json:"status"`
	Msg    string       `json:"msg"`
}

func (e *ApiError) Error() string {
	return e.Msg
}

func (e *ApiError) IsExpiredToken() bool {
	return e != nil && e.Type == ApiErrorTypeExpiredToken
}
