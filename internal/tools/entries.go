package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harvestlab/harvest-mcp-server/internal/dateparse"
	"github.com/harvestlab/harvest-mcp-server/internal/harvest"
)

type logTimeInput struct {
	authArgs
	// ProjectID selects the project.
	ProjectID int64 `json:"project_id" jsonschema:"Harvest project id"`
	// TaskID selects the task.
	TaskID int64 `json:"task_id" jsonschema:"Harvest task id"`
	// Hours is the completed duration.
	Hours float64 `json:"hours" jsonschema:"Hours to log, e.g. 2.5"`
	// SpentDate is the date for the entry, defaulting to today.
	SpentDate string `json:"spent_date,omitempty" jsonschema:"Date for the entry; accepts YYYY-MM-DD or relative phrases like yesterday, 2 days ago, last monday (default today)"`
	// Notes is optional free-form text.
	Notes string `json:"notes,omitempty" jsonschema:"Optional entry notes"`
}

func (b *Builder) logTime(ctx context.Context, _ *mcp.CallToolRequest, input logTimeInput) (*mcp.CallToolResult, any, error) {
	return b.run(ctx, "log_time", input, input.credentials(), func(ctx context.Context, client *harvest.Client) (string, error) {
		hours := input.Hours
		entry, err := client.CreateEntry(ctx, harvest.CreateTimeEntry{
			ProjectID: input.ProjectID,
			TaskID:    input.TaskID,
			SpentDate: resolveOrToday(input.SpentDate),
			Hours:     &hours,
			Notes:     input.Notes,
		})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Logged %.2f hours to %s on %s (entry %d)",
			entry.Hours, projectTask(entry), entry.SpentDate, entry.ID), nil
	})
}

type getTimeEntriesInput struct {
	authArgs
	// From bounds the range start, defaulting to today.
	From string `json:"from,omitempty" jsonschema:"Range start date; accepts YYYY-MM-DD or relative phrases like yesterday, 2 days ago, last monday (default today)"`
	// To bounds the range end, defaulting to the resolved from value.
	To string `json:"to,omitempty" jsonschema:"Range end date; accepts the same forms as from (default equals from)"`
	// ProjectID optionally filters by project.
	ProjectID int64 `json:"project_id,omitempty" jsonschema:"Only return entries for this project id"`
	// UserID optionally filters by user.
	UserID int64 `json:"user_id,omitempty" jsonschema:"Only return entries for this user id"`
}

func (b *Builder) getTimeEntries(ctx context.Context, _ *mcp.CallToolRequest, input getTimeEntriesInput) (*mcp.CallToolResult, any, error) {
	return b.run(ctx, "get_time_entries", input, input.credentials(), func(ctx context.Context, client *harvest.Client) (string, error) {
		from := resolveOrToday(input.From)
		// An omitted end bound collapses the range to a single day.
		to := from
		if strings.TrimSpace(input.To) != "" {
			to = dateparse.Resolve(input.To)
		}

		page, err := client.TimeEntries(ctx, harvest.TimeEntriesQuery{
			From:      from,
			To:        to,
			ProjectID: input.ProjectID,
			UserID:    input.UserID,
		})
		if err != nil {
			return "", err
		}

		entries := page.TimeEntries
		if len(entries) == 0 {
			return fmt.Sprintf("No time entries between %s and %s.", from, to), nil
		}

		var total float64
		var sb strings.Builder
		for _, entry := range entries {
			total += entry.Hours
			fmt.Fprintf(&sb, "- [%d] %s %s: %.2f hours", entry.ID, entry.SpentDate, projectTask(&entry), entry.Hours)
			if entry.IsRunning {
				sb.WriteString(" (running)")
			}
			if entry.Notes != "" {
				fmt.Fprintf(&sb, " — %s", entry.Notes)
			}
			sb.WriteString("\n")
		}

		return fmt.Sprintf("%d entries between %s and %s, %.2f hours total:\n%s",
			len(entries), from, to, total, strings.TrimRight(sb.String(), "\n")), nil
	})
}

type deleteEntryInput struct {
	authArgs
	// TimeEntryID identifies the entry to remove.
	TimeEntryID int64 `json:"time_entry_id" jsonschema:"Id of the time entry to delete"`
}

func (b *Builder) deleteTimeEntry(ctx context.Context, _ *mcp.CallToolRequest, input deleteEntryInput) (*mcp.CallToolResult, any, error) {
	return b.run(ctx, "delete_time_entry", input, input.credentials(), func(ctx context.Context, client *harvest.Client) (string, error) {
		if err := client.DeleteEntry(ctx, input.TimeEntryID); err != nil {
			return "", err
		}
		return fmt.Sprintf("Deleted time entry %d", input.TimeEntryID), nil
	})
}

// resolveOrToday resolves an optional date argument, defaulting to the
// current local day.
func resolveOrToday(value string) string {
	if strings.TrimSpace(value) == "" {
		return dateparse.Resolve("today")
	}
	return dateparse.Resolve(value)
}

// projectTask renders "Project / Task" with fallbacks for sparse payloads.
func projectTask(entry *harvest.TimeEntry) string {
	project := entry.Project.Name
	if project == "" {
		project = fmt.Sprintf("project %d", entry.Project.ID)
	}
	task := entry.Task.Name
	if task == "" {
		task = fmt.Sprintf("task %d", entry.Task.ID)
	}
	return project + " / " + task
}
