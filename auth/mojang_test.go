package auth_test

import (
	"testing"

	"github.com/mwath/mcli/auth"
)

func TestValidateAccessToken(t *testing.T) {
	tests := []struct {
		token    string
		expected bool
	}{
		{"validtoken123456", true},
		{"a_very_long_access_token_that_is_longer_than_usual_access_token_but_should_still_be_valid", true},
		{"", false},
		{"short", false},
		{string(make([]byte, 3000)), false},
	}

	for _, test := range tests {
		result := auth.ValidateAccessToken(test.token)
		if result != test.expected {
			t.Errorf("ValidateAccessToken(%q) = %v, expected %v", test.token, result, test.expected)
		}
	}
}

func TestNewMojangSessionAuthenticator(t *testing.T) {
	user := auth.User{Name: "Notch", ID: "069a79f444e94726a5befca90e38aaf5"}
	a := auth.NewMojangSessionAuthenticator(user, "some-access-token")

	if got := a.User(); got != user {
		t.Errorf("User() = %+v, expected %+v", got, user)
	}
	if err := a.Refresh(); err != nil {
		t.Errorf("Refresh() = %v, expected nil", err)
	}
}

func TestJoinRejectsInvalidProfile(t *testing.T) {
	user := auth.User{Name: "Notch", ID: "not-a-uuid"}
	a := auth.NewMojangSessionAuthenticator(user, "a-sufficiently-long-access-token")

	if err := a.Join("deadbeef"); err == nil {
		t.Error("Join() with invalid profile id = nil, expected error")
	}
}

func TestJoinRejectsMalformedToken(t *testing.T) {
	user := auth.User{Name: "Notch", ID: "069a79f444e94726a5befca90e38aaf5"}
	a := auth.NewMojangSessionAuthenticator(user, "short")

	if err := a.Join("deadbeef"); err == nil {
		t.Error("Join() with malformed token = nil, expected error")
	}
}
