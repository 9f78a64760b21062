package repo

import (
	"context"
)

// GitHubRepository is a starred repository as reported by the GitHub API.
// Pointer fields are nil when the upstream payload omits them or sends null.
type GitHubRepository struct {
	Name        *string
	Description *string
	HTMLURL     *string
	License     *GitHubLicense
	Topics      []string
}

// GitHubLicense is the license object attached to a GitHub repository
type GitHubLicense struct {
	Name *string
}

// GitHubService is a domain service interface for interacting with GitHub
// Implementation will be in infrastructure layer
type GitHubService interface {
	// AuthorizationURL returns the URL the user is sent to in order to grant access
	AuthorizationURL() string

	// ExchangeCode trades an authorization code for an access token
	ExchangeCode(ctx context.Context, code string) (string, error)

	// FetchStarredRepositories lists the repositories starred by the token's owner
	FetchStarredRepositories(ctx context.Context, accessToken string) ([]*GitHubRepository, error)
}
