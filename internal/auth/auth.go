// Package auth implements the HTTP Basic credential scheme shared by the
// API Gateway custom authorizer and the server-mode middleware.
package auth

import (
	"encoding/base64"
	"errors"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"
)

// Credential parsing errors
var (
	// ErrMalformedHeader is returned for a missing or non-Basic header
	ErrMalformedHeader = errors.New("invalid or missing Authorization header")

	// ErrMalformedCredentials is returned when the decoded payload is not
	// a user=password pair
	ErrMalformedCredentials = errors.New("malformed credentials payload")
)

// ParseBasicCredentials extracts the username and password from a Basic
// authorization header. The decoded payload is a "user=password" pair.
func ParseBasicCredentials(header string) (string, string, error) {
	if header == "" || !strings.HasPrefix(header, "Basic ") {
		return "", "", ErrMalformedHeader
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, "Basic "))
	if err != nil {
		return "", "", ErrMalformedCredentials
	}

	username, password, ok := strings.Cut(string(decoded), "=")
	if !ok || username == "" || password == "" {
		return "", "", ErrMalformedCredentials
	}

	return username, password, nil
}

// Authorizer checks Basic credentials against a configured credential table
type Authorizer struct {
	credentials map[string]string
}

// NewAuthorizer creates an authorizer over the given username→password table
func NewAuthorizer(credentials map[string]string) *Authorizer {
	return &Authorizer{credentials: credentials}
}

// Authorize parses the header and checks the credential pair. It returns the
// authenticated principal and whether access is allowed; a failure of any
// kind denies rather than errors, matching gateway authorizer semantics.
func (a *Authorizer) Authorize(header string) (string, bool) {
	username, password, err := ParseBasicCredentials(header)
	if err != nil {
		logrus.WithField("error", err).Warn("Rejected authorization header")
		return "unknown", false
	}

	expected, ok := a.credentials[username]
	if !ok || expected != password {
		logrus.WithField("username", username).Warn("Invalid credentials")
		return "unknown", false
	}

	return username, true
}

// Policy effects
const (
	EffectAllow = "Allow"
	EffectDeny  = "Deny"
)

// NewPolicy builds the IAM policy document returned to API Gateway
func NewPolicy(principalID, effect, resource string) events.APIGatewayCustomAuthorizerResponse {
	return events.APIGatewayCustomAuthorizerResponse{
		PrincipalID: principalID,
		PolicyDocument: events.APIGatewayCustomAuthorizerPolicy{
			Version: "2012-10-17",
			Statement: []events.IAMPolicyStatement{
				{
					Action:   []string{"execute-api:Invoke"},
					Effect:   effect,
					Resource: []string{resource},
				},
			},
		},
	}
}
