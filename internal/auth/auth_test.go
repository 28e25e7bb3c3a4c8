package auth

import (
	"encoding/base64"
	"errors"
	"testing"
)

func basicHeader(payload string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(payload))
}

func TestParseBasicCredentials(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantUser string
		wantPass string
		wantErr  error
	}{
		{
			name:     "valid pair",
			header:   basicHeader("alice=s3cret"),
			wantUser: "alice",
			wantPass: "s3cret",
		},
		{
			name:     "password containing separator",
			header:   basicHeader("alice=pa=ss"),
			wantUser: "alice",
			wantPass: "pa=ss",
		},
		{
			name:    "empty header",
			header:  "",
			wantErr: ErrMalformedHeader,
		},
		{
			name:    "bearer scheme",
			header:  "Bearer abc123",
			wantErr: ErrMalformedHeader,
		},
		{
			name:    "invalid base64",
			header:  "Basic !!!",
			wantErr: ErrMalformedCredentials,
		},
		{
			name:    "no separator",
			header:  basicHeader("alicepass"),
			wantErr: ErrMalformedCredentials,
		},
		{
			name:    "empty username",
			header:  basicHeader("=pass"),
			wantErr: ErrMalformedCredentials,
		},
		{
			name:    "empty password",
			header:  basicHeader("alice="),
			wantErr: ErrMalformedCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, pass, err := ParseBasicCredentials(tt.header)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if user != tt.wantUser || pass != tt.wantPass {
				t.Errorf("got %q/%q, want %q/%q", user, pass, tt.wantUser, tt.wantPass)
			}
		})
	}
}

func TestAuthorize(t *testing.T) {
	authorizer := NewAuthorizer(map[string]string{"alice": "s3cret"})

	tests := []struct {
		name          string
		header        string
		wantPrincipal string
		wantAllowed   bool
	}{
		{
			name:          "valid credentials",
			header:        basicHeader("alice=s3cret"),
			wantPrincipal: "alice",
			wantAllowed:   true,
		},
		{
			name:          "wrong password",
			header:        basicHeader("alice=wrong"),
			wantPrincipal: "unknown",
		},
		{
			name:          "unknown user",
			header:        basicHeader("bob=s3cret"),
			wantPrincipal: "unknown",
		},
		{
			name:          "missing header",
			header:        "",
			wantPrincipal: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			principal, allowed := authorizer.Authorize(tt.header)
			if principal != tt.wantPrincipal || allowed != tt.wantAllowed {
				t.Errorf("Authorize() = %q/%v, want %q/%v", principal, allowed, tt.wantPrincipal, tt.wantAllowed)
			}
		})
	}
}

func TestNewPolicy(t *testing.T) {
	policy := NewPolicy("alice", EffectAllow, "arn:aws:execute-api:*")

	if policy.PrincipalID != "alice" {
		t.Errorf("principal = %q, want alice", policy.PrincipalID)
	}
	if len(policy.PolicyDocument.Statement) != 1 {
		t.Fatal("expected one policy statement")
	}

	stmt := policy.PolicyDocument.Statement[0]
	if stmt.Effect != EffectAllow {
		t.Errorf("effect = %q, want Allow", stmt.Effect)
	}
	if len(stmt.Resource) != 1 || stmt.Resource[0] != "arn:aws:execute-api:*" {
		t.Errorf("resource = %v", stmt.Resource)
	}
}
