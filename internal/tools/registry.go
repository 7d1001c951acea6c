package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/shaharia-lab/pushover-mcp/internal/build"
	"github.com/shaharia-lab/pushover-mcp/internal/config"
)

// ServerName is the MCP implementation name reported to clients.
const ServerName = "push"

// NewServer creates the MCP server and registers the send_push tool.
// Credentials are resolved through loadCreds on every call.
func NewServer(sender Sender, loadCreds config.CredentialsLoader, logger *slog.Logger) (*mcp.Server, error) {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: build.Version,
	}, nil)

	schema, err := sendPushSchema()
	if err != nil {
		return nil, fmt.Errorf("building %s input schema: %w", SendPushToolName, err)
	}

	h := &sendPushHandler{sender: sender, loadCreds: loadCreds, logger: logger}
	mcp.AddTool(server, &mcp.Tool{
		Name:        SendPushToolName,
		Description: sendPushDescription,
		InputSchema: schema,
	}, h.handle)

	return server, nil
}

// Serve runs the server over stdin/stdout until the client disconnects or
// ctx is canceled.
func Serve(ctx context.Context, server *mcp.Server) error {
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("running stdio MCP server: %w", err)
	}
	return nil
}
