package harvest

import (
	"errors"
	"strings"
)

// ErrMissingCredentials is returned when neither per-call arguments nor the
// ambient environment supply a complete credential pair.
var ErrMissingCredentials = errors.New(
	"missing Harvest credentials: access_token and account_id are required; " +
		"pass them as tool arguments or set HARVEST_ACCESS_TOKEN and HARVEST_ACCOUNT_ID")

// Credentials authenticates requests against one Harvest account.
type Credentials struct {
	// AccessToken is a Harvest personal access token.
	AccessToken string
	// AccountID selects the Harvest account for the token.
	AccountID string
}

// Merge overlays explicit per-call values on top of ambient ones. A non-empty
// explicit field always wins over the ambient field.
func (c Credentials) Merge(explicit Credentials) Credentials {
	merged := c
	if strings.TrimSpace(explicit.AccessToken) != "" {
		merged.AccessToken = explicit.AccessToken
	}
	if strings.TrimSpace(explicit.AccountID) != "" {
		merged.AccountID = explicit.AccountID
	}
	return merged
}

// Validate reports ErrMissingCredentials unless both fields are set.
func (c Credentials) Validate() error {
	if strings.TrimSpace(c.AccessToken) == "" || strings.TrimSpace(c.AccountID) == "" {
		return ErrMissingCredentials
	}
	return nil
}
