package errors

import "net/http"

const (
	StatusUnauthorized = http.StatusUnauthorized
)

const (
	// MessageUnauthorized is the default message for 401.
	MessageUnauthorized = "Unauthorized"
)
