package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/google/uuid"
	mcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/shaharia-lab/pushover-mcp/internal/config"
	"github.com/shaharia-lab/pushover-mcp/internal/pushover"
)

// SendPushToolName is the name under which the notification tool is exposed.
const SendPushToolName = "send_push"

const sendPushDescription = "Send a push notification to your phone via Pushover. " +
	"Supports title, message, priority, sound, URL, and HTML formatting."

// Sender delivers a notification to the provider.
type Sender interface {
	Send(ctx context.Context, req pushover.Request, creds config.Credentials) (pushover.Result, error)
}

// SendPushParams is the input schema for the send_push tool.
type SendPushParams struct {
	Message  string  `json:"message" jsonschema:"The notification body text"`
	Title    *string `json:"title,omitempty" jsonschema:"Optional title for the notification"`
	Priority int     `json:"priority,omitempty" jsonschema:"-2 (lowest), -1 (low), 0 (normal), 1 (high), 2 (emergency). Emergency repeats every 60 seconds for up to 1 hour until acknowledged"`
	Sound    *string `json:"sound,omitempty" jsonschema:"Notification sound name, e.g. pushover, bike, bugle, cashregister, classical, cosmic, falling, gamelan, incoming, intermission, magic, mechanical, pianobar, siren, spacealarm, tugboat, alien, climb, persistent, echo, updown, vibrate, none"`
	URL      *string `json:"url,omitempty" jsonschema:"Supplementary URL to include with the message"`
	URLTitle *string `json:"url_title,omitempty" jsonschema:"Title for the supplementary URL"`
	HTML     bool    `json:"html,omitempty" jsonschema:"Enable HTML formatting in the message body"`
	Device   *string `json:"device,omitempty" jsonschema:"Target a specific device name instead of all devices"`
}

func (p SendPushParams) request() pushover.Request {
	return pushover.Request{
		Message:  p.Message,
		Title:    p.Title,
		Priority: p.Priority,
		Sound:    p.Sound,
		URL:      p.URL,
		URLTitle: p.URLTitle,
		HTML:     p.HTML,
		Device:   p.Device,
	}
}

// validate checks the arguments the input schema does not constrain. The
// priority bounds are also in the schema; the check here covers callers that
// reach the handler without schema validation.
func (p SendPushParams) validate() error {
	if p.Message == "" {
		return &ValidationError{Field: "message", Message: "must not be empty"}
	}
	if p.Priority < pushover.PriorityLowest || p.Priority > pushover.PriorityEmergency {
		return &ValidationError{
			Field:   "priority",
			Message: fmt.Sprintf("must be between %d and %d, got %d", pushover.PriorityLowest, pushover.PriorityEmergency, p.Priority),
		}
	}
	return nil
}

// sendPushSchema infers the input schema from SendPushParams and adds the
// bounds and defaults that struct tags cannot express.
func sendPushSchema() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[SendPushParams](nil)
	if err != nil {
		return nil, err
	}

	priority, ok := schema.Properties["priority"]
	if !ok {
		return nil, fmt.Errorf("priority property missing from inferred schema")
	}
	priority.Minimum = floatPtr(pushover.PriorityLowest)
	priority.Maximum = floatPtr(pushover.PriorityEmergency)
	priority.Default = json.RawMessage("0")

	html, ok := schema.Properties["html"]
	if !ok {
		return nil, fmt.Errorf("html property missing from inferred schema")
	}
	html.Default = json.RawMessage("false")

	return schema, nil
}

func floatPtr(v int) *float64 {
	f := float64(v)
	return &f
}

type sendPushHandler struct {
	sender    Sender
	loadCreds config.CredentialsLoader
	logger    *slog.Logger
}

// handle serves one send_push call. Missing credentials, invalid input and
// transport failures are returned as errors; provider rejections are a
// normal text result.
func (h *sendPushHandler) handle(
	ctx context.Context, _ *mcp.CallToolRequest, params SendPushParams,
) (*mcp.CallToolResult, any, error) {
	logger := h.logger.With(
		slog.String("tool", SendPushToolName),
		slog.String("invocation_id", uuid.NewString()),
	)

	if err := params.validate(); err != nil {
		logger.Warn("invalid send_push arguments", "error", err)
		return nil, nil, err
	}

	creds, err := h.loadCreds()
	if err != nil {
		logger.Error("pushover credentials unavailable", "error", err)
		return nil, nil, err
	}

	logger.Info("sending push notification",
		slog.Int("priority", params.Priority),
		slog.Bool("has_title", params.Title != nil),
		slog.Bool("html", params.HTML),
		slog.Bool("device_targeted", params.Device != nil),
	)

	res, err := h.sender.Send(ctx, params.request(), creds)
	if err != nil {
		logger.Error("push notification transport failure", "error", err)
		return nil, nil, fmt.Errorf("sending notification: %w", err)
	}

	if !res.OK() {
		logger.Warn("push notification rejected",
			slog.Int("http_status", res.HTTPStatus),
			slog.Any("errors", res.Errors),
		)
	}

	return textResult(res.String())
}

// textResult is a helper that wraps a string in an MCP CallToolResult.
func textResult(text string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}, nil, nil
}
