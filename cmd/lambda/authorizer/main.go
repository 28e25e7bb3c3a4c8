package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"shop-catalog-api/internal/auth"
	"shop-catalog-api/internal/config"
)

var authorizer *auth.Authorizer

func init() {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	authorizer = auth.NewAuthorizer(cfg.Auth.Credentials)
}

// handler checks the Basic credentials on gateway requests to the import
// endpoint and answers with an IAM policy for the requested method ARN.
func handler(_ context.Context, event events.APIGatewayCustomAuthorizerRequest) (events.APIGatewayCustomAuthorizerResponse, error) {
	principal, allowed := authorizer.Authorize(event.AuthorizationToken)

	effect := auth.EffectDeny
	if allowed {
		effect = auth.EffectAllow
	}

	logrus.WithFields(logrus.Fields{
		"principal": principal,
		"effect":    effect,
	}).Info("Authorization decision")

	return auth.NewPolicy(principal, effect, event.MethodArn), nil
}

func main() {
	awslambda.Start(handler)
}
