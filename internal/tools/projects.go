package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harvestlab/harvest-mcp-server/internal/harvest"
)

type listProjectsInput struct {
	authArgs
	// Format selects the output shape.
	Format string `json:"format,omitempty" jsonschema:"Output format: compact (default) groups tasks by client and project, full returns the raw assignment JSON"`
}

func (b *Builder) listActiveProjects(ctx context.Context, _ *mcp.CallToolRequest, input listProjectsInput) (*mcp.CallToolResult, any, error) {
	return b.run(ctx, "list_active_projects", input, input.credentials(), func(ctx context.Context, client *harvest.Client) (string, error) {
		assignments, err := client.MyProjectAssignments(ctx)
		if err != nil {
			return "", err
		}

		active := assignments[:0:0]
		for _, assignment := range assignments {
			if assignment.IsActive {
				active = append(active, assignment)
			}
		}
		if len(active) == 0 {
			return "No active project assignments.", nil
		}

		if strings.EqualFold(strings.TrimSpace(input.Format), "full") {
			raw, err := json.MarshalIndent(active, "", "  ")
			if err != nil {
				return "", fmt.Errorf("encode assignments: %w", err)
			}
			return string(raw), nil
		}
		return formatCompactAssignments(active), nil
	})
}

// formatCompactAssignments groups assignments by client, then project,
// listing each project's tasks with their ids.
func formatCompactAssignments(assignments []harvest.ProjectAssignment) string {
	var order []string
	byClient := make(map[string][]harvest.ProjectAssignment)
	for _, assignment := range assignments {
		client := assignment.Client.Name
		if _, seen := byClient[client]; !seen {
			order = append(order, client)
		}
		byClient[client] = append(byClient[client], assignment)
	}

	var sb strings.Builder
	for _, client := range order {
		fmt.Fprintf(&sb, "%s\n", client)
		for _, assignment := range byClient[client] {
			fmt.Fprintf(&sb, "  %s [project %d", assignment.Project.Name, assignment.Project.ID)
			if assignment.Project.Code != "" {
				fmt.Fprintf(&sb, ", code %s", assignment.Project.Code)
			}
			sb.WriteString("]\n")

			var tasks []string
			for _, task := range assignment.TaskAssignments {
				if !task.IsActive {
					continue
				}
				tasks = append(tasks, fmt.Sprintf("%s (task %d)", task.Task.Name, task.Task.ID))
			}
			if len(tasks) > 0 {
				fmt.Fprintf(&sb, "    tasks: %s\n", strings.Join(tasks, ", "))
			}
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}
