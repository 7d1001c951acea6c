// Package pushover sends push notifications through the Pushover messages API.
package pushover

import (
	"net/url"
	"strconv"

	"github.com/shaharia-lab/pushover-mcp/internal/config"
)

// Priority levels accepted by the provider.
const (
	PriorityLowest    = -2
	PriorityLow       = -1
	PriorityNormal    = 0
	PriorityHigh      = 1
	PriorityEmergency = 2
)

// Emergency messages repeat every EmergencyRetry seconds until acknowledged,
// for at most EmergencyExpire seconds.
const (
	EmergencyRetry  = 60
	EmergencyExpire = 3600
)

// Request is a single notification to deliver. Nil optional fields are
// left out of the provider payload.
type Request struct {
	Message  string
	Title    *string
	Priority int
	Sound    *string
	URL      *string
	URLTitle *string
	HTML     bool
	Device   *string
}

// BuildPayload maps a request and credentials to the form fields posted to
// the provider. It has no side effects.
func BuildPayload(req Request, creds config.Credentials) url.Values {
	form := url.Values{}
	form.Set("token", creds.Token)
	form.Set("user", creds.User)
	form.Set("message", req.Message)

	setOptional(form, "title", req.Title)
	if req.Priority != PriorityNormal {
		form.Set("priority", strconv.Itoa(req.Priority))
	}
	if req.Priority == PriorityEmergency {
		form.Set("retry", strconv.Itoa(EmergencyRetry))
		form.Set("expire", strconv.Itoa(EmergencyExpire))
	}
	setOptional(form, "sound", req.Sound)
	setOptional(form, "url", req.URL)
	setOptional(form, "url_title", req.URLTitle)
	if req.HTML {
		form.Set("html", "1")
	}
	setOptional(form, "device", req.Device)

	return form
}

func setOptional(form url.Values, key string, value *string) {
	if value != nil {
		form.Set(key, *value)
	}
}
