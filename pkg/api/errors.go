package api

import (
	"errors"
	"fmt"
)

// ErrNoBaseURL is returned by NewClient when no API base URL is configured.
var ErrNoBaseURL = errors.New("api base url is empty")

// StatusError reports a response outside the 2xx range.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: API returned status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: API returned status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == 404
}
