// Package cognito implements the identity provider client against an
// AWS Cognito user pool, using only the unauthenticated app-client API.
//
// Use New with a Config to obtain an auth.IdentityClient, and
// NewTokenValidator for server-side verification of pool-issued tokens.
package cognito
