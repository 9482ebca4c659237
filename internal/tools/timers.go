package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harvestlab/harvest-mcp-server/internal/harvest"
)

type startTimerInput struct {
	authArgs
	// ProjectID selects the project.
	ProjectID int64 `json:"project_id" jsonschema:"Harvest project id"`
	// TaskID selects the task.
	TaskID int64 `json:"task_id" jsonschema:"Harvest task id"`
	// SpentDate is the date for the entry, defaulting to today.
	SpentDate string `json:"spent_date,omitempty" jsonschema:"Date for the entry; accepts YYYY-MM-DD or relative phrases like yesterday, 2 days ago, last monday (default today)"`
	// Notes is optional free-form text.
	Notes string `json:"notes,omitempty" jsonschema:"Optional entry notes"`
}

func (b *Builder) startTimer(ctx context.Context, _ *mcp.CallToolRequest, input startTimerInput) (*mcp.CallToolResult, any, error) {
	return b.run(ctx, "start_timer", input, input.credentials(), func(ctx context.Context, client *harvest.Client) (string, error) {
		// Omitting hours makes Harvest create a running timer.
		entry, err := client.CreateEntry(ctx, harvest.CreateTimeEntry{
			ProjectID: input.ProjectID,
			TaskID:    input.TaskID,
			SpentDate: resolveOrToday(input.SpentDate),
			Notes:     input.Notes,
		})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Started timer %d on %s (%s)", entry.ID, projectTask(entry), entry.SpentDate), nil
	})
}

type timerInput struct {
	authArgs
	// TimeEntryID identifies the entry to act on.
	TimeEntryID int64 `json:"time_entry_id" jsonschema:"Id of the time entry"`
}

func (b *Builder) stopTimer(ctx context.Context, _ *mcp.CallToolRequest, input timerInput) (*mcp.CallToolResult, any, error) {
	return b.run(ctx, "stop_timer", input, input.credentials(), func(ctx context.Context, client *harvest.Client) (string, error) {
		entry, err := client.StopEntry(ctx, input.TimeEntryID)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Stopped timer %d: %.2f hours recorded on %s", entry.ID, entry.Hours, entry.SpentDate), nil
	})
}

func (b *Builder) restartTimer(ctx context.Context, _ *mcp.CallToolRequest, input timerInput) (*mcp.CallToolResult, any, error) {
	return b.run(ctx, "restart_timer", input, input.credentials(), func(ctx context.Context, client *harvest.Client) (string, error) {
		entry, err := client.RestartEntry(ctx, input.TimeEntryID)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Restarted timer %d on %s, %.2f hours so far", entry.ID, projectTask(entry), entry.Hours), nil
	})
}

type runningTimerInput struct {
	authArgs
}

func (b *Builder) getRunningTimer(ctx context.Context, _ *mcp.CallToolRequest, input runningTimerInput) (*mcp.CallToolResult, any, error) {
	return b.run(ctx, "get_running_timer", input, input.credentials(), func(ctx context.Context, client *harvest.Client) (string, error) {
		page, err := client.TimeEntries(ctx, harvest.TimeEntriesQuery{RunningOnly: true})
		if err != nil {
			return "", err
		}
		if len(page.TimeEntries) == 0 {
			return "No timer is currently running.", nil
		}

		entry := page.TimeEntries[0]
		message := fmt.Sprintf("Timer %d is running on %s, %.2f hours elapsed", entry.ID, projectTask(&entry), entry.Hours)
		if entry.TimerStartedAt != "" {
			message += fmt.Sprintf(" (started %s)", entry.TimerStartedAt)
		}
		if entry.Notes != "" {
			message += ": " + entry.Notes
		}
		return message, nil
	})
}
