package pushover

import (
	"fmt"
	"net/http"
	"strings"
)

// absentRequestID is rendered in place of a missing request id.
const absentRequestID = "None"

// Result is the interpreted provider response.
type Result struct {
	HTTPStatus int
	Status     int
	// Request is the provider request id, nil when the body carried none.
	Request *string
	Errors  []string
}

// OK reports whether the provider accepted the message.
func (r Result) OK() bool {
	return r.HTTPStatus == http.StatusOK && r.Status == 1
}

// RequestID returns the provider request id, or "" when absent.
func (r Result) RequestID() string {
	if r.Request == nil {
		return ""
	}
	return *r.Request
}

// String renders the caller-facing outcome sentence. A success without a
// request id reads "(request id: None)".
func (r Result) String() string {
	if r.OK() {
		id := absentRequestID
		if r.Request != nil {
			id = *r.Request
		}
		return fmt.Sprintf("Notification sent successfully (request id: %s)", id)
	}
	return "Failed to send notification: " + strings.Join(r.Errors, ", ")
}
