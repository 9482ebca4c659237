// Package tools exposes Harvest time-tracking operations as MCP tools.
package tools

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/time/rate"

	"github.com/harvestlab/harvest-mcp-server/internal/audit"
	"github.com/harvestlab/harvest-mcp-server/internal/harvest"
	"github.com/harvestlab/harvest-mcp-server/internal/security"
)

// Builder constructs an MCP server with the Harvest tool set.
type Builder struct {
	// Logger is used for structured logging.
	Logger *slog.Logger
	// Audit records tool events.
	Audit audit.Logger
	// Ambient holds fallback credentials from the environment.
	Ambient harvest.Credentials
	// BaseURL is the Harvest API endpoint; empty selects production.
	BaseURL string

	limiter *rate.Limiter
}

// Build creates an MCP server with all Harvest tools registered.
func (b *Builder) Build(name, version string) *mcp.Server {
	if b.limiter == nil {
		b.limiter = harvest.NewLimiter()
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    name,
		Version: version,
	}, nil)

	readOnly := &mcp.ToolAnnotations{ReadOnlyHint: true}
	destructive := &mcp.ToolAnnotations{DestructiveHint: boolPtr(true)}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_my_profile",
		Description: "Get the authenticated Harvest user's identity.",
		Annotations: readOnly,
	}, b.getMyProfile)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_active_projects",
		Description: "List active project and task assignments for the authenticated user.",
		Annotations: readOnly,
	}, b.listActiveProjects)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "log_time",
		Description: "Log a completed block of time against a project task.",
	}, b.logTime)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_time_entries",
		Description: "List time entries in a date range with their total hours.",
		Annotations: readOnly,
	}, b.getTimeEntries)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_time_entry",
		Description: "Delete a time entry by id.",
		Annotations: destructive,
	}, b.deleteTimeEntry)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "start_timer",
		Description: "Start a running timer on a project task.",
	}, b.startTimer)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "stop_timer",
		Description: "Stop a running timer, finalizing its elapsed hours.",
	}, b.stopTimer)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "restart_timer",
		Description: "Resume tracking on a previously stopped time entry.",
	}, b.restartTimer)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_running_timer",
		Description: "Report whether a timer is currently running and its elapsed time.",
		Annotations: readOnly,
	}, b.getRunningTimer)

	return server
}

// authArgs are accepted by every tool to override ambient credentials.
type authArgs struct {
	// AccessToken overrides the HARVEST_ACCESS_TOKEN environment value.
	AccessToken string `json:"access_token,omitempty" jsonschema:"Harvest personal access token; overrides the server's ambient token"`
	// AccountID overrides the HARVEST_ACCOUNT_ID environment value.
	AccountID string `json:"account_id,omitempty" jsonschema:"Harvest account id; overrides the server's ambient account id"`
}

func (a authArgs) credentials() harvest.Credentials {
	return harvest.Credentials{AccessToken: a.AccessToken, AccountID: a.AccountID}
}

// run is the shared execution envelope: resolve credentials, invoke the
// tool body with an authenticated client, and map every failure to an
// error result. No handler returns a protocol-level error.
func (b *Builder) run(ctx context.Context, tool string, input any, explicit harvest.Credentials, fn func(context.Context, *harvest.Client) (string, error)) (*mcp.CallToolResult, any, error) {
	correlationID := uuid.NewString()

	if b.Logger != nil {
		b.Logger.Info("tool call", "tool", tool, "correlation_id", correlationID, "args", security.RedactArguments(argsMap(input)))
	}
	if b.Audit != nil {
		b.Audit.Record(ctx, audit.Event{Type: audit.TypeToolCall, Tool: tool, CorrelationID: correlationID})
	}

	creds := b.Ambient.Merge(explicit)
	if err := creds.Validate(); err != nil {
		if b.Audit != nil {
			b.Audit.Record(ctx, audit.Event{Type: audit.TypeAuthError, Tool: tool, CorrelationID: correlationID, Detail: err.Error()})
		}
		return errorResult(err.Error()), nil, nil
	}

	client := harvest.NewClient(b.BaseURL, creds, b.limiter)
	message, err := fn(ctx, client)
	if err != nil {
		if b.Logger != nil {
			b.Logger.Warn("tool failed", "tool", tool, "correlation_id", correlationID, "error", err)
		}
		if b.Audit != nil {
			b.Audit.Record(ctx, audit.Event{Type: audit.TypeToolError, Tool: tool, CorrelationID: correlationID, Detail: err.Error()})
		}
		return errorResult(err.Error()), nil, nil
	}

	if b.Audit != nil {
		b.Audit.Record(ctx, audit.Event{Type: audit.TypeToolOK, Tool: tool, CorrelationID: correlationID})
	}
	return textResult(message), nil, nil
}

func textResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: message}},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: message}},
	}
}

// argsMap flattens a typed input into a map for redacted logging.
func argsMap(input any) map[string]any {
	data, err := json.Marshal(input)
	if err != nil {
		return nil
	}
	var values map[string]any
	if err := json.Unmarshal(data, &values); err != nil {
		return nil
	}
	return values
}

func boolPtr(v bool) *bool {
	return &v
}
