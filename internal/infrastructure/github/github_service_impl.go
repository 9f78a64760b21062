package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Tupsu-jy/star-retriever/internal/domain/repo"
	"github.com/Tupsu-jy/star-retriever/internal/github"
)

// GitHubServiceImpl implements the domain repo.GitHubService interface
type GitHubServiceImpl struct {
	client *github.Client
}

// NewGitHubService creates a new GitHub service implementation
func NewGitHubService(client *github.Client) repo.GitHubService {
	return &GitHubServiceImpl{client: client}
}

// AuthorizationURL returns the GitHub authorize URL for this OAuth application
func (g *GitHubServiceImpl) AuthorizationURL() string {
	return g.client.AuthCodeURL()
}

// ExchangeCode exchanges an authorization code for an access token.
// Every failure, including a response without access_token, is an
// UPSTREAM_TOKEN_ERROR.
func (g *GitHubServiceImpl) ExchangeCode(ctx context.Context, code string) (string, error) {
	token, err := g.client.ExchangeCode(ctx, code)
	if err != nil {
		return "", repo.ErrUpstreamToken(err)
	}
	if token.AccessToken == "" {
		return "", repo.ErrUpstreamToken(errors.New("token response missing access_token"))
	}
	return token.AccessToken, nil
}

// FetchStarredRepositories fetches the starred repositories of the token owner.
// A 2xx body that cannot be decoded is a RESPONSE_SCHEMA_ERROR; everything
// else is an UPSTREAM_LISTING_ERROR.
func (g *GitHubServiceImpl) FetchStarredRepositories(ctx context.Context, accessToken string) ([]*repo.GitHubRepository, error) {
	githubRepos, err := g.client.GetStarredRepositories(ctx, accessToken)
	if err != nil {
		if schemaErr := decodeError(err); schemaErr != nil {
			return nil, schemaErr
		}
		return nil, repo.ErrUpstreamListing(err)
	}

	// Convert to domain GitHub repositories
	domainRepos := make([]*repo.GitHubRepository, len(githubRepos))
	for i, ghRepo := range githubRepos {
		if ghRepo == nil {
			continue
		}
		var license *repo.GitHubLicense
		if ghRepo.License != nil {
			license = &repo.GitHubLicense{Name: ghRepo.License.Name}
		}
		domainRepos[i] = &repo.GitHubRepository{
			Name:        ghRepo.Name,
			Description: ghRepo.Description,
			HTMLURL:     ghRepo.HTMLURL,
			License:     license,
			Topics:      ghRepo.Topics,
		}
	}

	return domainRepos, nil
}

// decodeError maps a successful listing response that is not an array, or
// fails to decode, to a schema error naming the offending field.
func decodeError(err error) *repo.DomainError {
	if errors.Is(err, github.ErrListingNotArray) {
		return repo.ErrResponseSchema("body", err)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return repo.ErrResponseSchema(field, fmt.Errorf("expected %s, got %s", typeErr.Type, typeErr.Value))
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return repo.ErrResponseSchema("body", fmt.Errorf("malformed JSON at offset %d", syntaxErr.Offset))
	}

	return nil
}
