package calendar

import (
	"errors"
	"fmt"
)

// Error codes for calendar operations. Callers relay Message text to the end
// user verbatim, so each constructor produces conversational phrasing.
const (
	CodeInvalidDateFormat   = "invalidDateFormat"
	CodeInvalidTimezone     = "invalidTimezone"
	CodeCalendarUnavailable = "calendarUnavailable"
	CodeMissingContactInfo  = "missingContactInfo"
	CodeCalendarWriteFailed = "calendarWriteFailed"
)

type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// CodeOf extracts the calendar error code from err, or returns "" when err is
// not a calendar error.
func CodeOf(err error) string {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr.Code
	}
	return ""
}
