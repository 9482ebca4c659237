package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harvestlab/harvest-mcp-server/internal/harvest"
)

type profileInput struct {
	authArgs
}

func (b *Builder) getMyProfile(ctx context.Context, _ *mcp.CallToolRequest, input profileInput) (*mcp.CallToolResult, any, error) {
	return b.run(ctx, "get_my_profile", input, input.credentials(), func(ctx context.Context, client *harvest.Client) (string, error) {
		user, err := client.Me(ctx)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Logged in as %s %s (%s), user id %d, timezone %s",
			user.FirstName, user.LastName, user.Email, user.ID, user.Timezone), nil
	})
}
