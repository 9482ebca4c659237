package harvest

import (
	"errors"
	"strings"
	"testing"
)

func TestCredentials_MergeExplicitWins(t *testing.T) {
	t.Parallel()

	ambient := Credentials{AccessToken: "env-token", AccountID: "env-account"}

	merged := ambient.Merge(Credentials{AccessToken: "arg-token", AccountID: "arg-account"})
	if merged.AccessToken != "arg-token" || merged.AccountID != "arg-account" {
		t.Fatalf("explicit values not preferred: %+v", merged)
	}
}

func TestCredentials_MergePerField(t *testing.T) {
	t.Parallel()

	ambient := Credentials{AccessToken: "env-token", AccountID: "env-account"}

	merged := ambient.Merge(Credentials{AccessToken: "arg-token"})
	if merged.AccessToken != "arg-token" {
		t.Errorf("explicit token lost: %+v", merged)
	}
	if merged.AccountID != "env-account" {
		t.Errorf("ambient account id lost: %+v", merged)
	}

	// Empty and whitespace-only explicit values fall back to ambient.
	merged = ambient.Merge(Credentials{AccessToken: "  ", AccountID: ""})
	if merged != ambient {
		t.Errorf("blank explicit values overrode ambient: %+v", merged)
	}
}

func TestCredentials_Validate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		creds Credentials
		ok    bool
	}{
		{"both set", Credentials{AccessToken: "t", AccountID: "a"}, true},
		{"missing token", Credentials{AccountID: "a"}, false},
		{"missing account", Credentials{AccessToken: "t"}, false},
		{"both missing", Credentials{}, false},
		{"whitespace only", Credentials{AccessToken: " ", AccountID: "\t"}, false},
	}
	for _, tc := range cases {
		err := tc.creds.Validate()
		if tc.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
		if !tc.ok {
			if !errors.Is(err, ErrMissingCredentials) {
				t.Errorf("%s: want ErrMissingCredentials, got %v", tc.name, err)
			}
			if !strings.Contains(err.Error(), "access_token") || !strings.Contains(err.Error(), "account_id") {
				t.Errorf("%s: message must name both fields: %v", tc.name, err)
			}
		}
	}
}
